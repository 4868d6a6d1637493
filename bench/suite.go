package bench

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"mazebench/core"
	"mazebench/heuristic"
	"mazebench/maze"
	"mazebench/report"
	"mazebench/search"
)

// Result is the outcome of a single run over a single maze.
type Result struct {
	ID        string // unique per run record
	Maze      string // source file path, empty for ad-hoc runs
	Algorithm string
	Heuristic string // display name: "-", "Manhattan", "Euclidean"
	Metrics   search.SearchMetrics
	Path      string // labeled path, "-" when no path was found
	Rendered  string // grid with the path overlaid
}

// Row converts the result into its report table row.
func (r Result) Row() report.Row {
	return report.Row{
		Algorithm: r.Algorithm,
		Heuristic: r.Heuristic,
		Metrics:   r.Metrics,
		Path:      r.Path,
	}
}

// Suite executes every configured run over every configured maze.
type Suite struct {
	cfg Config
}

// NewSuite validates the configuration and wraps it in a runnable suite.
func NewSuite(cfg Config) (*Suite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(cfg.Mazes) == 0 {
		return nil, fmt.Errorf("no mazes configured")
	}
	return &Suite{cfg: cfg}, nil
}

type mazeSource struct {
	name string
	text string
}

// Run reads every maze file and executes the configured runs concurrently.
// Each run parses its own copy of the maze, so no grid state is shared
// between goroutines. Results come back grouped by maze, in run
// declaration order, regardless of completion order.
func (s *Suite) Run(ctx context.Context) ([]Result, error) {
	sources := make([]mazeSource, len(s.cfg.Mazes))
	for i, path := range s.cfg.Mazes {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read maze: %w", err)
		}
		sources[i] = mazeSource{name: path, text: string(data)}
	}

	results := make([]Result, len(sources)*len(s.cfg.Runs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)

	for mi := range sources {
		for ri := range s.cfg.Runs {
			mi, ri := mi, ri
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				src := sources[mi]
				m, err := maze.Parse(strings.NewReader(src.text))
				if err != nil {
					return fmt.Errorf("parse maze %s: %w", src.name, err)
				}
				res, err := Execute(m, s.cfg.Runs[ri], s.cfg.Oracle)
				if err != nil {
					return fmt.Errorf("maze %s: %w", src.name, err)
				}
				res.Maze = src.name
				results[mi*len(s.cfg.Runs)+ri] = res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Execute performs one instrumented run over an already parsed maze. The
// caller fills in Result.Maze; everything else is set here.
func Execute(m *maze.Maze, spec RunSpec, oracle bool) (Result, error) {
	var opts []search.Option
	if oracle {
		opts = append(opts, search.WithOracle())
	}

	var (
		path    core.Path
		metrics search.SearchMetrics
		display = "-"
	)
	switch spec.Algorithm {
	case search.AlgorithmBFS:
		path, metrics = search.BreadthFirstWithMetrics(m, opts...)
	case search.AlgorithmDFS:
		path, metrics = search.DepthFirstWithMetrics(m, opts...)
	case search.AlgorithmAStar, search.AlgorithmGreedy:
		h, ok := heuristic.ByName(spec.Heuristic)
		if !ok {
			return Result{}, fmt.Errorf("unknown heuristic %q", spec.Heuristic)
		}
		display = displayHeuristic(spec.Heuristic)
		if spec.Algorithm == search.AlgorithmAStar {
			path, metrics = search.AStarWithMetrics(m, h, opts...)
		} else {
			path, metrics = search.GreedyBestFirstWithMetrics(m, h, opts...)
		}
	default:
		return Result{}, fmt.Errorf("unknown algorithm %q", spec.Algorithm)
	}

	rendered, err := m.RenderPath(path)
	if err != nil {
		return Result{}, fmt.Errorf("render path: %w", err)
	}
	return Result{
		ID:        uuid.NewString(),
		Algorithm: spec.Algorithm,
		Heuristic: display,
		Metrics:   metrics,
		Path:      m.FormatPath(path),
		Rendered:  rendered,
	}, nil
}

// displayHeuristic maps a config-level heuristic name to its table
// caption. The empty string means the Manhattan default.
func displayHeuristic(name string) string {
	if name == "" {
		return "Manhattan"
	}
	name = strings.ToLower(name)
	return strings.ToUpper(name[:1]) + name[1:]
}
