package search

import (
	"testing"

	"mazebench/core"
)

func TestEvaluate(t *testing.T) {
	corridor := gridFromMap(t, `S.G`)
	walled := gridFromMap(t, `S#G`)
	room := openGrid(3, 3, core.Position{0, 0}, core.Position{0, 2})

	tests := []struct {
		name         string
		grid         Grid
		candidate    core.Path
		completeness Verdict
		optimality   Verdict
	}{
		{
			name:         "both agree nothing exists",
			grid:         walled,
			candidate:    core.Path{},
			completeness: Yes,
			optimality:   Unknown,
		},
		{
			name:         "candidate missed an existing path",
			grid:         corridor,
			candidate:    core.Path{},
			completeness: No,
			optimality:   Unknown,
		},
		{
			name:         "candidate claims a path where none exists",
			grid:         walled,
			candidate:    core.Path{{0, 0}, {0, 2}},
			completeness: No,
			optimality:   Unknown,
		},
		{
			name:         "candidate matches the minimum",
			grid:         corridor,
			candidate:    core.Path{{0, 0}, {0, 1}, {0, 2}},
			completeness: Yes,
			optimality:   Yes,
		},
		{
			name:         "candidate longer than the minimum",
			grid:         room,
			candidate:    core.Path{{0, 0}, {1, 0}, {1, 1}, {1, 2}, {0, 2}},
			completeness: Yes,
			optimality:   No,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completeness, optimality := Evaluate(tt.grid, tt.candidate)
			if completeness != tt.completeness {
				t.Errorf("Expected completeness %v, got %v", tt.completeness, completeness)
			}
			if optimality != tt.optimality {
				t.Errorf("Expected optimality %v, got %v", tt.optimality, optimality)
			}
		})
	}
}
