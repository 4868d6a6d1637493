// Package maze loads and represents adjacency-mask mazes.
//
// A maze file is a whitespace-separated grid of tokens. Each token carries
// four binary digits in N,S,E,W order ('1' = movement allowed in that
// direction from the cell) optionally followed by 'S' (start) or 'G'
// (goal), e.g. 1010, 1111S, 0101G. The grid must be rectangular and must
// contain exactly one S and one G.
//
// Adjacency is read from the origin cell's mask alone; reciprocity is
// never checked, so edges may be one-way.
package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mazebench/core"
)

// Common errors
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrEmpty       = errors.New("maze is empty or only blank lines")
)

// mask records the open sides of one cell, indexed by core.Direction.
type mask [4]bool

// Maze is an immutable rectangular grid of adjacency masks with a fixed
// start and goal. It satisfies the grid contract the search strategies
// consume; all methods are safe for concurrent reads.
type Maze struct {
	height, width int
	cells         [][]mask
	start, goal   core.Position
}

// Load reads and parses the maze file at path.
func Load(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open maze: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// Parse reads a maze from r. Blank lines are skipped entirely, so leading
// and trailing empty lines (and separators between rows) are harmless.
func Parse(r io.Reader) (*Maze, error) {
	scanner := bufio.NewScanner(r)
	var lines [][]string
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		lines = append(lines, tokens)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read maze: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmpty
	}
	return fromTokens(lines)
}

func fromTokens(lines [][]string) (*Maze, error) {
	m := &Maze{
		height: len(lines),
		width:  len(lines[0]),
		cells:  make([][]mask, len(lines)),
	}
	startCount, goalCount := 0, 0

	for r, tokens := range lines {
		if len(tokens) != m.width {
			return nil, fmt.Errorf("row %d has %d tokens, want %d", r, len(tokens), m.width)
		}
		row := make([]mask, m.width)
		for c, token := range tokens {
			cell, isStart, isGoal, err := parseToken(token)
			if err != nil {
				return nil, fmt.Errorf("token %q at (%d,%d): %w", token, r, c, err)
			}
			row[c] = cell
			if isStart {
				if startCount == 0 {
					m.start = core.Position{Row: r, Col: c}
				}
				startCount++
			}
			if isGoal {
				if goalCount == 0 {
					m.goal = core.Position{Row: r, Col: c}
				}
				goalCount++
			}
		}
		m.cells[r] = row
	}

	if startCount != 1 || goalCount != 1 {
		return nil, fmt.Errorf("want exactly one S and one G, found S=%d G=%d", startCount, goalCount)
	}
	return m, nil
}

// parseToken splits a token into its direction mask and start/goal
// markers. The first four bytes are the N,S,E,W bits; anything after is
// the marker suffix. A token may carry both markers (start and goal on
// the same cell) but never the same marker twice.
func parseToken(token string) (m mask, isStart, isGoal bool, err error) {
	if len(token) < 4 {
		return m, false, false, errors.New("shorter than the 4 direction bits")
	}
	for i := 0; i < 4; i++ {
		switch token[i] {
		case '1':
			m[i] = true
		case '0':
		default:
			return m, false, false, errors.New("direction bits must be 0 or 1")
		}
	}
	for _, ch := range token[4:] {
		switch ch {
		case 'S':
			if isStart {
				return m, false, false, errors.New("repeated S marker")
			}
			isStart = true
		case 'G':
			if isGoal {
				return m, false, false, errors.New("repeated G marker")
			}
			isGoal = true
		default:
			return m, false, false, fmt.Errorf("invalid suffix character %q", ch)
		}
	}
	return m, isStart, isGoal, nil
}

// Start returns the start position.
func (m *Maze) Start() core.Position { return m.start }

// Goal returns the goal position.
func (m *Maze) Goal() core.Position { return m.goal }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// InBounds reports whether pos lies inside the grid.
func (m *Maze) InBounds(pos core.Position) bool {
	return pos.Row >= 0 && pos.Row < m.height && pos.Col >= 0 && pos.Col < m.width
}

// Passable reports whether the cell has at least one open side. A 0000
// cell can never be left, though a neighbor's mask may still point into
// it.
func (m *Maze) Passable(pos core.Position) bool {
	cell := m.cells[pos.Row][pos.Col]
	return cell[core.North] || cell[core.South] || cell[core.East] || cell[core.West]
}

// Neighbors enumerates the positions reachable from pos in N,S,E,W order:
// the directions whose bit is set on pos's own mask and whose destination
// stays in bounds. pos must be in bounds.
func (m *Maze) Neighbors(pos core.Position) []core.Position {
	cell := m.cells[pos.Row][pos.Col]
	var out []core.Position
	for _, d := range core.Directions {
		if !cell[d] {
			continue
		}
		nb := pos.Move(d)
		if m.InBounds(nb) {
			out = append(out, nb)
		}
	}
	return out
}

// StepCost is the uniform movement cost.
func (m *Maze) StepCost(from, to core.Position) int { return 1 }
