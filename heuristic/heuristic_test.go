package heuristic

import (
	"testing"

	"mazebench/core"
)

func TestManhattan(t *testing.T) {
	tests := []struct {
		a, b core.Position
		want float64
	}{
		{core.Position{0, 0}, core.Position{0, 0}, 0},
		{core.Position{0, 0}, core.Position{2, 2}, 4},
		{core.Position{2, 2}, core.Position{0, 0}, 4},
		{core.Position{5, 1}, core.Position{1, 4}, 7},
		{core.Position{-2, 0}, core.Position{1, 0}, 3},
	}

	for _, tt := range tests {
		if got := Manhattan(tt.a, tt.b); got != tt.want {
			t.Errorf("Manhattan(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEuclidean(t *testing.T) {
	tests := []struct {
		a, b core.Position
		want float64
	}{
		{core.Position{0, 0}, core.Position{0, 0}, 0},
		{core.Position{0, 0}, core.Position{3, 4}, 5},
		{core.Position{3, 4}, core.Position{0, 0}, 5},
		{core.Position{1, 1}, core.Position{1, 4}, 3},
	}

	for _, tt := range tests {
		if got := Euclidean(tt.a, tt.b); got != tt.want {
			t.Errorf("Euclidean(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEuclideanNeverExceedsManhattan(t *testing.T) {
	positions := []core.Position{
		{0, 0}, {1, 3}, {4, 2}, {7, 7}, {2, 9},
	}

	for _, a := range positions {
		for _, b := range positions {
			if Euclidean(a, b) > Manhattan(a, b) {
				t.Errorf("Euclidean(%v, %v) exceeds Manhattan: %v > %v",
					a, b, Euclidean(a, b), Manhattan(a, b))
			}
		}
	}
}

func TestByName(t *testing.T) {
	goal := core.Position{3, 3}

	tests := []struct {
		name string
		ok   bool
		want float64 // estimate from (0, 0) to goal when ok
	}{
		{"manhattan", true, 6},
		{"Manhattan", true, 6},
		{"euclidean", true, 4.242640687119285},
		{"zero", true, 0},
		{"", true, 6},
		{"chebyshev", false, 0},
	}

	for _, tt := range tests {
		h, ok := ByName(tt.name)
		if ok != tt.ok {
			t.Errorf("ByName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if got := h(core.Position{0, 0}, goal); got != tt.want {
			t.Errorf("ByName(%q) estimate = %v, want %v", tt.name, got, tt.want)
		}
	}
}
