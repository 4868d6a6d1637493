// Package search implements the four maze search strategies: breadth-first,
// depth-first, A*, and greedy best-first. Every strategy consumes the same
// Grid contract, returns an empty path when no solution exists, and has an
// instrumented variant that reports uniform run metrics.
package search

import "mazebench/core"

// Grid is the read-only contract every strategy consumes. Neighbors must
// enumerate reachable adjacent cells in a fixed deterministic order and keep
// them in bounds; edges may be asymmetric (A reaching B does not imply B
// reaching A). Strategies never mutate a Grid.
type Grid interface {
	Start() core.Position
	Goal() core.Position
	InBounds(pos core.Position) bool
	Passable(pos core.Position) bool
	Neighbors(pos core.Position) []core.Position
	StepCost(from, to core.Position) int
}

// Heuristic estimates the remaining cost from a to b. It must be
// non-negative; A* additionally assumes it is admissible and consistent for
// its optimality guarantee. Neither property is verified at runtime.
type Heuristic func(a, b core.Position) float64

// Algorithm names reported in metrics records and accepted by callers that
// select a strategy by name.
const (
	AlgorithmBFS    = "BFS"
	AlgorithmDFS    = "DFS"
	AlgorithmAStar  = "A*"
	AlgorithmGreedy = "Greedy"
)
