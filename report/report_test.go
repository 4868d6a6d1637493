package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mazebench/search"
)

func sampleRows() []Row {
	return []Row{
		{
			Algorithm: search.AlgorithmBFS,
			Heuristic: "-",
			Metrics: search.SearchMetrics{
				Algorithm:     search.AlgorithmBFS,
				Elapsed:       1500 * time.Microsecond,
				Expanded:      10,
				Generated:     12,
				MaxFrontier:   4,
				MaxExplored:   13,
				MaxStructures: 17,
				Found:         true,
				Completeness:  search.Yes,
				Optimality:    search.Yes,
				PathCost:      5,
				PathLength:    6,
			},
			Path: "A(S) -> B -> C(G)",
		},
		{
			Algorithm: search.AlgorithmAStar,
			Heuristic: "Manhattan",
			Metrics: search.SearchMetrics{
				Algorithm:     search.AlgorithmAStar,
				Elapsed:       250 * time.Microsecond,
				Expanded:      7,
				Generated:     9,
				MaxFrontier:   3,
				MaxExplored:   8,
				MaxStructures: 11,
				Found:         true,
				Completeness:  search.Yes,
				Optimality:    search.Yes,
				PathCost:      5,
				PathLength:    6,
			},
			Path: "A(S) -> B -> C(G)",
		},
	}
}

func TestTable_Layout(t *testing.T) {
	table := Table(sampleRows())
	lines := strings.Split(table, "\n")

	if len(lines) != 4 {
		t.Fatalf("Expected header, rule and 2 rows, got %d lines:\n%s", len(lines), table)
	}

	header := lines[0]
	for _, col := range tableHeaders {
		if !strings.Contains(header, col) {
			t.Errorf("Header missing column %q", col)
		}
	}

	// Every padded line is the same length, and the column separators sit
	// at the same offsets all the way down.
	for i, line := range lines[1:] {
		if len(line) != len(header) {
			t.Errorf("Line %d length %d, want %d", i+1, len(line), len(header))
		}
	}
	for off := 0; off < len(header); off++ {
		if header[off] != '|' {
			continue
		}
		if lines[1][off] != '+' {
			t.Errorf("Rule line misaligned at offset %d", off)
		}
		for i, line := range lines[2:] {
			if line[off] != '|' {
				t.Errorf("Row %d misaligned at offset %d", i, off)
			}
		}
	}

	for _, want := range []string{"1.500", "0.250", "Manhattan", "yes", "A(S) -> B -> C(G)"} {
		if !strings.Contains(table, want) {
			t.Errorf("Expected table to contain %q:\n%s", want, table)
		}
	}
}

func TestFormat(t *testing.T) {
	got := Format([]string{"Name", "N"}, [][]string{{"a", "10"}, {"longer", "7"}})
	want := strings.Join([]string{
		"Name   | N ",
		"-------+---",
		"a      | 10",
		"longer | 7 ",
	}, "\n")
	if got != want {
		t.Errorf("Expected table:\n%s\ngot:\n%s", want, got)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		algorithm, heuristic, want string
	}{
		{"BFS", "-", "BFS"},
		{"BFS", "", "BFS"},
		{"A*", "Manhattan", "A* (Manhattan)"},
		{"Greedy", "Euclidean", "Greedy (Euclidean)"},
	}

	for _, tt := range tests {
		if got := Label(tt.algorithm, tt.heuristic); got != tt.want {
			t.Errorf("Label(%q, %q) = %q, want %q", tt.algorithm, tt.heuristic, got, tt.want)
		}
	}
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "metrics")

	if err := WriteFiles(dir, sampleRows()); err != nil {
		t.Fatalf("WriteFiles failed: %v", err)
	}

	table, err := os.ReadFile(filepath.Join(dir, "metrics.txt"))
	if err != nil {
		t.Fatalf("metrics.txt missing: %v", err)
	}
	if !strings.Contains(string(table), "Algorithm") {
		t.Error("metrics.txt missing the table header")
	}

	charts, err := os.ReadFile(filepath.Join(dir, "charts.txt"))
	if err != nil {
		t.Fatalf("charts.txt missing: %v", err)
	}
	if !strings.Contains(string(charts), "Expanded nodes") {
		t.Error("charts.txt missing the chart titles")
	}
}
