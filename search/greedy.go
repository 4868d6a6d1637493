package search

import (
	"container/heap"
	"time"

	"mazebench/core"
)

// GreedyBestFirst returns a path from the grid's start to its goal chasing
// the heuristic alone, or an empty path when the frontier exhausts. It can
// walk into heuristic traps and return a path far longer than optimal, or
// none at all where one exists on the heuristic's terms; completeness on
// finite grids is all it promises.
func GreedyBestFirst(g Grid, h Heuristic) core.Path {
	return greedyBestFirst(g, h, nopCollector{})
}

// GreedyBestFirstWithMetrics runs GreedyBestFirst with metrics collection.
func GreedyBestFirstWithMetrics(g Grid, h Heuristic, opts ...Option) (core.Path, SearchMetrics) {
	cfg := newRunConfig(opts)
	rec := newMetricsCollector(1, 0)

	started := time.Now()
	path := greedyBestFirst(g, h, rec)
	elapsed := time.Since(started)

	return path, rec.finalize(AlgorithmGreedy, elapsed, g, path, cfg.oracle)
}

func greedyBestFirst(g Grid, h Heuristic, rec collector) core.Path {
	start, goal := g.Start(), g.Goal()
	if start == goal {
		return core.Path{start}
	}

	open := &frontier{}
	heap.Init(open)
	order := 0

	bestH := map[core.Position]float64{start: h(start, goal)}
	visited := make(map[core.Position]bool)
	predecessors := make(map[core.Position]core.Position)

	heap.Push(open, &frontierEntry{pos: start, priority: bestH[start], order: order})
	order++

	for open.Len() > 0 {
		entry := heap.Pop(open).(*frontierEntry)
		current := entry.pos

		// Same lazy deletion as A*, keyed on h alone.
		if entry.priority > bestH[current] {
			continue
		}
		if current == goal {
			break
		}

		visited[current] = true
		rec.expand()

		for _, nb := range g.Neighbors(current) {
			// The visited guard stays exactly as in BFS/DFS: positions
			// already expanded are skipped even if their estimate would
			// improve. Loosening this changes termination behavior.
			if visited[nb] {
				continue
			}
			estimate := h(nb, goal)
			if known, ok := bestH[nb]; ok && estimate >= known {
				continue
			}
			bestH[nb] = estimate
			predecessors[nb] = current
			heap.Push(open, &frontierEntry{pos: nb, priority: estimate, order: order})
			order++
			rec.generate()
		}
		rec.observeFrontier(open.Len())
		rec.observeExplored(len(visited))
	}

	return Reconstruct(predecessors, start, goal)
}
