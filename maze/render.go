package maze

import (
	"fmt"
	"strings"

	"mazebench/core"
)

// RenderPath draws the maze as a character grid: 'S' and 'G' at start and
// goal, 'o' on path cells, '.' everywhere else. Rows are joined by
// newlines without a trailing one. A path position outside the grid
// returns ErrOutOfBounds.
func (m *Maze) RenderPath(path core.Path) (string, error) {
	rows := make([][]rune, m.height)
	for r := range rows {
		rows[r] = make([]rune, m.width)
		for c := range rows[r] {
			rows[r][c] = '.'
		}
	}
	rows[m.start.Row][m.start.Col] = 'S'
	rows[m.goal.Row][m.goal.Col] = 'G'

	for _, pos := range path {
		if !m.InBounds(pos) {
			return "", fmt.Errorf("path position (%d,%d): %w", pos.Row, pos.Col, ErrOutOfBounds)
		}
		if pos != m.start && pos != m.goal {
			rows[pos.Row][pos.Col] = 'o'
		}
	}

	var sb strings.Builder
	sb.Grow(m.height * (m.width + 1))
	for r, row := range rows {
		if r > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String(), nil
}

// LabelAt names a cell in row-major spreadsheet style: A through Z, then
// AA, AB and so on. Positions outside the grid label as "?".
func (m *Maze) LabelAt(pos core.Position) string {
	if !m.InBounds(pos) {
		return "?"
	}
	idx := pos.Row*m.width + pos.Col
	label := ""
	for {
		label = string(rune('A'+idx%26)) + label
		idx = idx/26 - 1
		if idx < 0 {
			break
		}
	}
	return label
}

// FormatPath prints a path as its label sequence, marking the endpoints,
// e.g. "A(S) -> F -> K(G)". An empty path prints as "-".
func (m *Maze) FormatPath(path core.Path) string {
	if path.IsEmpty() {
		return "-"
	}
	labels := make([]string, 0, len(path))
	for _, pos := range path {
		label := m.LabelAt(pos)
		switch pos {
		case m.start:
			label += "(S)"
		case m.goal:
			label += "(G)"
		}
		labels = append(labels, label)
	}
	return strings.Join(labels, " -> ")
}

// String reproduces the maze in its token form, one row per line.
func (m *Maze) String() string {
	var sb strings.Builder
	sb.Grow(m.height * m.width * 5)
	for r := 0; r < m.height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < m.width; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := m.cells[r][c]
			for _, d := range core.Directions {
				if cell[d] {
					sb.WriteByte('1')
				} else {
					sb.WriteByte('0')
				}
			}
			pos := core.Position{Row: r, Col: c}
			if pos == m.start {
				sb.WriteByte('S')
			}
			if pos == m.goal {
				sb.WriteByte('G')
			}
		}
	}
	return sb.String()
}
