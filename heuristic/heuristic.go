// Package heuristic provides the distance estimates used to direct the
// informed search strategies. All functions are pure, non-negative, and
// admissible under the unit step-cost model; Manhattan is additionally
// consistent on 4-connected grids.
package heuristic

import (
	"math"
	"strings"

	"mazebench/core"
)

// Manhattan calculates the Manhattan distance between two positions.
func Manhattan(a, b core.Position) float64 {
	return float64(abs(a.Row-b.Row) + abs(a.Col-b.Col))
}

// Euclidean calculates the straight-line distance between two positions.
func Euclidean(a, b core.Position) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// Zero estimates nothing. A* degenerates to uniform-cost expansion with it
// and still returns an optimal-cost path.
func Zero(a, b core.Position) float64 {
	return 0
}

// ByName resolves a heuristic from its report name, case-insensitively.
// The empty string maps to Manhattan, the default used throughout the
// runners.
func ByName(name string) (func(a, b core.Position) float64, bool) {
	switch strings.ToLower(name) {
	case "", "manhattan":
		return Manhattan, true
	case "euclidean":
		return Euclidean, true
	case "zero":
		return Zero, true
	default:
		return nil, false
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
