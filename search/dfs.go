package search

import (
	"time"

	"mazebench/core"
)

// DepthFirst returns some path from the grid's start to its goal, or an
// empty path when the goal is unreachable. It is complete on finite grids
// but makes no promise about path length.
func DepthFirst(g Grid) core.Path {
	return depthFirst(g, nopCollector{})
}

// DepthFirstWithMetrics runs DepthFirst with metrics collection.
func DepthFirstWithMetrics(g Grid, opts ...Option) (core.Path, SearchMetrics) {
	cfg := newRunConfig(opts)
	rec := newMetricsCollector(1, 1)

	started := time.Now()
	path := depthFirst(g, rec)
	elapsed := time.Since(started)

	return path, rec.finalize(AlgorithmDFS, elapsed, g, path, cfg.oracle)
}

func depthFirst(g Grid, rec collector) core.Path {
	start, goal := g.Start(), g.Goal()
	if start == goal {
		return core.Path{start}
	}

	stack := []core.Position{start}
	visited := map[core.Position]bool{start: true}
	predecessors := make(map[core.Position]core.Position)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current == goal {
			break
		}
		rec.expand()

		// Push in reverse of the grid's order so the first-listed
		// neighbor is on top of the stack and explored first. Visited and
		// predecessor are recorded at push time to prevent duplicates.
		neighbors := g.Neighbors(current)
		for i := len(neighbors) - 1; i >= 0; i-- {
			nb := neighbors[i]
			if visited[nb] {
				continue
			}
			visited[nb] = true
			predecessors[nb] = current
			stack = append(stack, nb)
			rec.generate()
		}
		rec.observeFrontier(len(stack))
		rec.observeExplored(len(visited))
	}

	return Reconstruct(predecessors, start, goal)
}
