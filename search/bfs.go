package search

import (
	"time"

	"mazebench/core"
)

// BreadthFirst returns a minimum-hop path from the grid's start to its
// goal, or an empty path when the goal is unreachable. It is also the
// ground truth the oracle measures every other strategy against.
func BreadthFirst(g Grid) core.Path {
	return breadthFirst(g, nopCollector{})
}

// BreadthFirstWithMetrics runs BreadthFirst with metrics collection.
func BreadthFirstWithMetrics(g Grid, opts ...Option) (core.Path, SearchMetrics) {
	cfg := newRunConfig(opts)
	rec := newMetricsCollector(1, 1)

	started := time.Now()
	path := breadthFirst(g, rec)
	elapsed := time.Since(started)

	return path, rec.finalize(AlgorithmBFS, elapsed, g, path, cfg.oracle)
}

func breadthFirst(g Grid, rec collector) core.Path {
	start, goal := g.Start(), g.Goal()
	if start == goal {
		return core.Path{start}
	}

	queue := []core.Position{start}
	visited := map[core.Position]bool{start: true}
	predecessors := make(map[core.Position]core.Position)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == goal {
			break
		}
		rec.expand()

		// Neighbors arrive in the grid's fixed order; predecessor and
		// visited are recorded at enqueue time, exactly once per position.
		for _, nb := range g.Neighbors(current) {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			predecessors[nb] = current
			queue = append(queue, nb)
			rec.generate()
		}
		rec.observeFrontier(len(queue))
		rec.observeExplored(len(visited))
	}

	return Reconstruct(predecessors, start, goal)
}
