// Package core contains the fundamental types used throughout the mazebench
// search engine.
package core

// Position identifies a grid cell by row and column. It is a value type:
// two Positions are equal iff both coordinates match, and it can be used
// directly as a map key.
type Position struct {
	Row, Col int
}

// Move returns the Position one step in the given direction.
func (p Position) Move(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Direction represents a cardinal direction. The declaration order matches
// the maze token bit order and the neighbor enumeration order.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists all cardinal directions in enumeration order.
var Directions = [4]Direction{North, South, East, West}

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the row and column offsets of one step in the direction.
// Rows grow downward, columns grow rightward.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Path is an ordered sequence of Positions from start to goal inclusive.
// An empty Path is the universal "no solution" signal.
type Path []Position

// Length returns the number of positions in the path.
func (p Path) Length() int {
	return len(p)
}

// IsEmpty returns true if the path has no positions.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// Cost returns the number of steps along the path under the unit step-cost
// model. Empty and single-position paths both cost zero.
func (p Path) Cost() int {
	if len(p) <= 1 {
		return 0
	}
	return len(p) - 1
}
