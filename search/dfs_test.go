package search

import (
	"reflect"
	"testing"

	"mazebench/core"
)

func TestDepthFirst_ExploresFirstListedDirectionFirst(t *testing.T) {
	// With the goal two steps east, depth-first still dives south first
	// because south is listed before east, and only unwinds to the goal
	// after exhausting that branch.
	g := openGrid(3, 3, core.Position{0, 0}, core.Position{0, 2})

	path := DepthFirst(g)
	want := core.Path{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2}}
	if !reflect.DeepEqual(path, want) {
		t.Fatalf("Expected %v, got %v", want, path)
	}
}

func TestDepthFirst_ValidButNotOptimal(t *testing.T) {
	g := openGrid(3, 3, core.Position{0, 0}, core.Position{0, 2})

	deep, m := DepthFirstWithMetrics(g, WithOracle())
	truth := BreadthFirst(g)

	if deep.Cost() <= truth.Cost() {
		t.Fatalf("Expected depth-first cost above the minimum %d, got %d", truth.Cost(), deep.Cost())
	}
	if m.Completeness != Yes {
		t.Errorf("Expected completeness yes, got %v", m.Completeness)
	}
	if m.Optimality != No {
		t.Errorf("Expected optimality no, got %v", m.Optimality)
	}
}

func BenchmarkDepthFirst(b *testing.B) {
	g := benchmarkGrid(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DepthFirst(g)
	}
}
