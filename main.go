package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"mazebench/bench"
	"mazebench/maze"
	"mazebench/report"
	"mazebench/search"
	"mazebench/server"
	"mazebench/tui"
)

func main() {
	var (
		// Mode flags
		benchMode = flag.Bool("bench", false, "Run a benchmark suite and write report files")
		serveMode = flag.Bool("serve", false, "Serve the HTTP solve API")
		viewMode  = flag.Bool("view", false, "Open the interactive terminal viewer")

		// Solve flags
		mazeFile      = flag.String("maze", "", "Maze file in token grid format")
		algorithm     = flag.String("algo", "BFS", "Search algorithm: BFS, DFS, A*, Greedy")
		heuristicName = flag.String("heuristic", "", "Heuristic for A* and Greedy: manhattan, euclidean, zero")
		withMetrics   = flag.Bool("metrics", false, "Print the metrics row after the solved grid")
		withOracle    = flag.Bool("oracle", false, "Judge completeness and optimality against a reference search")

		// Bench flags
		suiteFile = flag.String("suite", "", "Suite config YAML (default: the six canonical runs)")
		outDir    = flag.String("out", "metrics", "Directory for metrics.txt and charts.txt in -bench mode")

		// Serve flags
		addr       = flag.String("addr", ":8080", "Listen address for -serve")
		historyDir = flag.String("history", "", "Run history directory for -serve (default: in-memory)")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Solve token-grid mazes with BFS, DFS, A* and Greedy best-first search\nunder uniform instrumentation.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -maze maze.txt                                 # solve with BFS\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -maze maze.txt -algo A* -heuristic euclidean -metrics -oracle\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -bench -maze maze.txt                          # the six-run experiment\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -bench -suite suite.yaml -out reports\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -serve -addr :8080 -history ./history\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -view -maze maze.txt\n", os.Args[0])
	}
	flag.Parse()

	var err error
	switch {
	case *serveMode:
		err = runServe(*addr, *historyDir)
	case *benchMode:
		err = runBench(*suiteFile, *mazeFile, *outDir)
	case *viewMode:
		err = runView(*mazeFile)
	default:
		err = runSolve(*mazeFile, *algorithm, *heuristicName, *withMetrics, *withOracle)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runSolve executes a single search and prints the solved grid.
func runSolve(mazeFile, algorithm, heuristicName string, withMetrics, withOracle bool) error {
	if mazeFile == "" {
		return fmt.Errorf("-maze is required")
	}
	m, err := maze.Load(mazeFile)
	if err != nil {
		return err
	}
	spec := bench.RunSpec{Algorithm: canonicalAlgorithm(algorithm), Heuristic: heuristicName}
	if err := spec.Validate(); err != nil {
		return err
	}
	res, err := bench.Execute(m, spec, withOracle)
	if err != nil {
		return err
	}

	fmt.Println(res.Rendered)
	if res.Metrics.Found {
		fmt.Printf("\nPath: %s\nCost: %d\n", res.Path, res.Metrics.PathCost)
	} else {
		fmt.Println("\nNo path found.")
	}
	if withMetrics {
		fmt.Println()
		fmt.Println(report.Table([]report.Row{res.Row()}))
	}
	return nil
}

// runBench executes a suite, prints the per-maze tables and writes the
// report files.
func runBench(suiteFile, mazeFile, outDir string) error {
	cfg, err := bench.LoadConfig(suiteFile)
	if err != nil {
		return err
	}
	if mazeFile != "" {
		cfg.Mazes = append(cfg.Mazes, mazeFile)
	}
	if outDir != "" {
		cfg.OutputDir = outDir
	}
	suite, err := bench.NewSuite(cfg)
	if err != nil {
		return err
	}
	results, err := suite.Run(context.Background())
	if err != nil {
		return err
	}

	groups := groupByMaze(results)
	for _, g := range groups {
		if len(groups) > 1 {
			fmt.Printf("Maze: %s\n", g.name)
		}
		fmt.Println(report.Table(g.rows))
		fmt.Println()
	}

	if cfg.OutputDir == "" {
		return nil
	}
	if len(groups) == 1 {
		err = report.WriteFiles(cfg.OutputDir, groups[0].rows)
	} else {
		err = writeGroupedReport(cfg.OutputDir, groups)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", cfg.OutputDir)
	return nil
}

// runServe opens the run history store and serves the HTTP API until
// interrupted.
func runServe(addr, historyDir string) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	store, err := server.OpenStore(historyDir)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(store, log).Run(ctx, addr)
}

// runView opens the interactive viewer on a maze file.
func runView(mazeFile string) error {
	if mazeFile == "" {
		return fmt.Errorf("-maze is required")
	}
	m, err := maze.Load(mazeFile)
	if err != nil {
		return err
	}
	return tui.Run(m)
}

// canonicalAlgorithm maps common spellings onto the exported algorithm
// names. Unknown names pass through so validation can report them.
func canonicalAlgorithm(name string) string {
	switch strings.ToLower(name) {
	case "bfs":
		return search.AlgorithmBFS
	case "dfs":
		return search.AlgorithmDFS
	case "a*", "astar":
		return search.AlgorithmAStar
	case "greedy":
		return search.AlgorithmGreedy
	}
	return name
}

type mazeGroup struct {
	name string
	rows []report.Row
}

// groupByMaze splits suite results into per-maze row groups, preserving
// run order.
func groupByMaze(results []bench.Result) []mazeGroup {
	var groups []mazeGroup
	for _, res := range results {
		if len(groups) == 0 || groups[len(groups)-1].name != res.Maze {
			groups = append(groups, mazeGroup{name: res.Maze})
		}
		g := &groups[len(groups)-1]
		g.rows = append(g.rows, res.Row())
	}
	return groups
}

// writeGroupedReport writes metrics.txt and charts.txt with one titled
// section per maze.
func writeGroupedReport(dir string, groups []mazeGroup) error {
	var metricsText, chartsText strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&metricsText, "Maze: %s\n%s\n\n", g.name, report.Table(g.rows))
		fmt.Fprintf(&chartsText, "Maze: %s\n%s\n", g.name, report.Charts(g.rows))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "metrics.txt"), []byte(metricsText.String()), 0o644); err != nil {
		return fmt.Errorf("write metrics table: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "charts.txt"), []byte(chartsText.String()), 0o644); err != nil {
		return fmt.Errorf("write charts: %w", err)
	}
	return nil
}
