package search

import (
	"reflect"
	"testing"

	"mazebench/core"
	"mazebench/heuristic"
)

func TestAStar_OptimalUnderAdmissibleHeuristics(t *testing.T) {
	heuristics := []struct {
		name string
		h    Heuristic
	}{
		{"manhattan", heuristic.Manhattan},
		{"euclidean", heuristic.Euclidean},
		{"zero", heuristic.Zero},
	}

	layouts := []struct {
		name   string
		layout string
	}{
		{
			name: "open room",
			layout: `
S....
.....
.....
....G`,
		},
		{
			name: "wall detour",
			layout: `
S....
.###.
.#...
.#.#.
...#G`,
		},
		{
			name: "serpentine",
			layout: `
S....
####.
.....
.####
....G`,
		},
	}

	for _, tt := range layouts {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFromMap(t, tt.layout)
			want := BreadthFirst(g).Cost()

			for _, hh := range heuristics {
				path := AStar(g, hh.h)
				assertValidPath(t, g, path)
				if path.Cost() != want {
					t.Errorf("Expected cost %d with %s heuristic, got %d", want, hh.name, path.Cost())
				}
			}
		})
	}
}

func TestAStar_OpenGridCost(t *testing.T) {
	g := openGrid(3, 3, core.Position{0, 0}, core.Position{2, 2})

	path := AStar(g, heuristic.Manhattan)
	if path.Cost() != 4 {
		t.Errorf("Expected cost 4, got %d", path.Cost())
	}
	if path.Length() != 5 {
		t.Errorf("Expected 5 positions, got %d", path.Length())
	}
}

func TestAStar_RespectsStepCosts(t *testing.T) {
	// Entering any middle-row interior cell costs 5, so the cheapest route
	// is the seven-position detour along an outer row, not the four-step
	// straight line.
	g := gridFromMap(t, `
.....
S...G
.....`)
	g.weights = map[core.Position]int{
		{1, 1}: 5,
		{1, 2}: 5,
		{1, 3}: 5,
	}

	path := AStar(g, heuristic.Manhattan)
	assertValidPath(t, g, path)
	if path.Length() != 7 {
		t.Fatalf("Expected the detour around the weighted cells, got %v", path)
	}
	for _, pos := range path {
		if g.weights[pos] != 0 {
			t.Errorf("Path enters weighted cell %v", pos)
		}
	}
}

func TestAStar_SkipsStaleEntriesWithoutExpanding(t *testing.T) {
	// s discovers a expensively before b relaxes it down to cost 2,
	// leaving the original frontier entry stale. The stale pop must be
	// skipped silently: a is expanded once and the expansion count stays
	// at the four genuine pops.
	s := core.Position{0, 0}
	a := core.Position{0, 1}
	b := core.Position{1, 0}
	c := core.Position{0, 2}
	goal := core.Position{0, 3}

	g := &directedGrid{
		start: s,
		goal:  goal,
		edges: map[core.Position][]core.Position{
			s:    {a, b},
			a:    {c},
			b:    {a},
			c:    {goal},
			goal: {},
		},
		costs: map[[2]core.Position]int{
			{s, a}: 10,
			{s, b}: 1,
			{b, a}: 1,
			{a, c}: 8,
		},
	}

	path, m := AStarWithMetrics(g, heuristic.Zero)

	want := core.Path{s, b, a, c, goal}
	if !reflect.DeepEqual(path, want) {
		t.Fatalf("Expected %v, got %v", want, path)
	}
	if m.Expanded != 4 {
		t.Errorf("Expected 4 expansions, got %d", m.Expanded)
	}
	if m.Generated != 5 {
		t.Errorf("Expected 5 generations including the relaxation, got %d", m.Generated)
	}
}

func BenchmarkAStar(b *testing.B) {
	g := benchmarkGrid(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AStar(g, heuristic.Manhattan)
	}
}

func BenchmarkAStarWithMetrics(b *testing.B) {
	g := benchmarkGrid(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AStarWithMetrics(g, heuristic.Manhattan)
	}
}
