package search

import (
	"container/heap"
	"time"

	"mazebench/core"
)

// AStar returns a path from the grid's start to its goal directed by
// f = g + h, or an empty path when the goal is unreachable. The result is
// cost-optimal when the heuristic is admissible and consistent; neither
// property is checked here, and a violating heuristic silently costs the
// guarantee.
func AStar(g Grid, h Heuristic) core.Path {
	return aStar(g, h, nopCollector{})
}

// AStarWithMetrics runs AStar with metrics collection.
func AStarWithMetrics(g Grid, h Heuristic, opts ...Option) (core.Path, SearchMetrics) {
	cfg := newRunConfig(opts)
	rec := newMetricsCollector(1, 0)

	started := time.Now()
	path := aStar(g, h, rec)
	elapsed := time.Since(started)

	return path, rec.finalize(AlgorithmAStar, elapsed, g, path, cfg.oracle)
}

func aStar(g Grid, h Heuristic, rec collector) core.Path {
	start, goal := g.Start(), g.Goal()
	if start == goal {
		return core.Path{start}
	}

	open := &frontier{}
	heap.Init(open)
	order := 0

	gScore := map[core.Position]int{start: 0}
	bestF := map[core.Position]float64{start: h(start, goal)}
	closed := make(map[core.Position]bool)
	predecessors := make(map[core.Position]core.Position)

	heap.Push(open, &frontierEntry{pos: start, priority: bestF[start], order: order})
	order++

	for open.Len() > 0 {
		entry := heap.Pop(open).(*frontierEntry)
		current := entry.pos

		// Lazy deletion: relaxing a position pushes a fresh entry instead
		// of re-keying the old one, so a pop whose priority is worse than
		// the best known f for that position is stale. Skip it without
		// counting an expansion.
		if entry.priority > bestF[current] {
			continue
		}
		if current == goal {
			break
		}

		closed[current] = true
		rec.expand()

		for _, nb := range g.Neighbors(current) {
			// Once expanded as the best-known entry, a position is never
			// relaxed again.
			if closed[nb] {
				continue
			}
			candidate := gScore[current] + g.StepCost(current, nb)
			if known, ok := gScore[nb]; ok && candidate >= known {
				continue
			}
			gScore[nb] = candidate
			predecessors[nb] = current
			f := float64(candidate) + h(nb, goal)
			bestF[nb] = f
			heap.Push(open, &frontierEntry{pos: nb, priority: f, order: order})
			order++
			rec.generate()
		}
		rec.observeFrontier(open.Len())
		rec.observeExplored(len(closed))
	}

	return Reconstruct(predecessors, start, goal)
}
