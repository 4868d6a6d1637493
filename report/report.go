// Package report formats search run results as aligned text tables and
// ASCII bar charts, the plain-text counterparts of the experiment's
// original tabular output.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mazebench/search"
)

// Row is one table line: a single instrumented run plus its display
// strings.
type Row struct {
	Algorithm string
	Heuristic string // "-" for the uninformed strategies
	Metrics   search.SearchMetrics
	Path      string // labeled path, or "-" when no path was found
}

// Label combines algorithm and heuristic the way charts caption a run:
// "BFS", "A* (Manhattan)".
func Label(algorithm, heuristic string) string {
	if heuristic == "" || heuristic == "-" {
		return algorithm
	}
	return fmt.Sprintf("%s (%s)", algorithm, heuristic)
}

var tableHeaders = []string{
	"Algorithm", "Heuristic", "Time(ms)", "Expanded", "Generated",
	"Explored peak", "Frontier peak", "Peak structures", "Complete",
	"Optimal", "Cost", "Path",
}

// Table renders rows as a left-aligned text table with a dashed rule
// under the header. Column widths stretch to the widest cell.
func Table(rows []Row) string {
	data := make([][]string, len(rows))
	for i, r := range rows {
		m := r.Metrics
		data[i] = []string{
			r.Algorithm,
			r.Heuristic,
			fmt.Sprintf("%.3f", float64(m.Elapsed.Nanoseconds())/1e6),
			fmt.Sprintf("%d", m.Expanded),
			fmt.Sprintf("%d", m.Generated),
			fmt.Sprintf("%d", m.MaxExplored),
			fmt.Sprintf("%d", m.MaxFrontier),
			fmt.Sprintf("%d", m.MaxStructures),
			m.Completeness.String(),
			m.Optimality.String(),
			fmt.Sprintf("%d", m.PathCost),
			r.Path,
		}
	}

	return Format(tableHeaders, data)
}

// Format renders arbitrary cells as a left-aligned text table with a
// dashed rule under the header. Column widths stretch to the widest cell.
func Format(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	pad := func(cols []string) string {
		parts := make([]string, len(cols))
		for i, c := range cols {
			parts[i] = c + strings.Repeat(" ", widths[i]-len(c))
		}
		return strings.Join(parts, " | ")
	}

	rules := make([]string, len(widths))
	for i, w := range widths {
		rules[i] = strings.Repeat("-", w)
	}

	lines := []string{pad(headers), strings.Join(rules, "-+-")}
	for _, row := range rows {
		lines = append(lines, pad(row))
	}
	return strings.Join(lines, "\n")
}

// WriteFiles writes the table to metrics.txt and the charts to charts.txt
// inside dir, creating the directory if needed.
func WriteFiles(dir string, rows []Row) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "metrics.txt"), []byte(Table(rows)+"\n"), 0o644); err != nil {
		return fmt.Errorf("write metrics table: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "charts.txt"), []byte(Charts(rows)), 0o644); err != nil {
		return fmt.Errorf("write charts: %w", err)
	}
	return nil
}
