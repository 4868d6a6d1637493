package search

import (
	"reflect"
	"testing"

	"mazebench/core"
)

func TestReconstruct(t *testing.T) {
	a := core.Position{0, 0}
	b := core.Position{0, 1}
	c := core.Position{1, 1}

	tests := []struct {
		name         string
		predecessors map[core.Position]core.Position
		start, goal  core.Position
		want         core.Path
	}{
		{
			name:         "start equals goal ignores the map",
			predecessors: map[core.Position]core.Position{b: a},
			start:        a,
			goal:         a,
			want:         core.Path{a},
		},
		{
			name:         "goal never reached yields empty",
			predecessors: map[core.Position]core.Position{b: a},
			start:        a,
			goal:         c,
			want:         core.Path{},
		},
		{
			name:         "chain comes back in start to goal order",
			predecessors: map[core.Position]core.Position{b: a, c: b},
			start:        a,
			goal:         c,
			want:         core.Path{a, b, c},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconstruct(tt.predecessors, tt.start, tt.goal)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
