package search

import "mazebench/core"

// Reconstruct rebuilds the start→goal path from a predecessor map.
// A start equal to goal yields the single-element path regardless of the
// map contents. A goal with no predecessor entry yields the empty path,
// the universal no-solution signal. The walk always terminates: each
// position gains at most one causal predecessor per run and is never its
// own predecessor, so the chain back to start is acyclic.
func Reconstruct(predecessors map[core.Position]core.Position, start, goal core.Position) core.Path {
	if start == goal {
		return core.Path{start}
	}
	if _, ok := predecessors[goal]; !ok {
		return core.Path{}
	}

	path := core.Path{goal}
	current := goal
	for current != start {
		current = predecessors[current]
		path = append(path, current)
	}

	// Walked backwards from goal; flip into start→goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
