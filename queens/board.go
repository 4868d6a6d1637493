// Package queens implements the eight queens puzzle as a local search
// problem: hill climbing with sideways moves, plus random restarts.
package queens

import (
	"fmt"
	"math/rand"
	"strings"
)

// Board places one queen per column; the value at index c is the row of
// the queen in column c.
type Board []int

// Random returns a board of size n with every queen on a uniformly random
// row. The rng is caller-owned; nothing in this package seeds or touches
// the global source.
func Random(rng *rand.Rand, n int) Board {
	b := make(Board, n)
	for c := range b {
		b[c] = rng.Intn(n)
	}
	return b
}

// Conflicts counts the pairs of queens attacking each other along a row
// or a diagonal. A solved board returns 0.
func (b Board) Conflicts() int {
	count := 0
	for c1 := 0; c1 < len(b); c1++ {
		for c2 := c1 + 1; c2 < len(b); c2++ {
			if b[c1] == b[c2] || abs(c1-c2) == abs(b[c1]-b[c2]) {
				count++
			}
		}
	}
	return count
}

// Move relocates the queen in column Col to row Row.
type Move struct {
	Col int
	Row int
}

// Neighbors enumerates every single-queen move in column-major,
// row-ascending order, skipping each queen's current row.
func (b Board) Neighbors() []Move {
	moves := make([]Move, 0, len(b)*(len(b)-1))
	for c, cur := range b {
		for row := 0; row < len(b); row++ {
			if row != cur {
				moves = append(moves, Move{Col: c, Row: row})
			}
		}
	}
	return moves
}

// Apply returns a copy of the board with the move applied. The receiver
// is left untouched.
func (b Board) Apply(mv Move) Board {
	nb := make(Board, len(b))
	copy(nb, b)
	nb[mv.Col] = mv.Row
	return nb
}

// String renders the rows column by column, "3 1 6 2 5 7 4 0" style.
func (b Board) String() string {
	parts := make([]string, len(b))
	for i, row := range b {
		parts[i] = fmt.Sprintf("%d", row)
	}
	return strings.Join(parts, " ")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
