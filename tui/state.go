package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"mazebench/bench"
	"mazebench/maze"
	"mazebench/report"
	"mazebench/search"
)

// state is the viewer model: the maze, the current strategy selection and
// the last solve. All methods are synchronous; the event loop owns it.
type state struct {
	m          *maze.Maze
	algorithms []string
	heuristics []string
	algIdx     int
	heurIdx    int
	result     bench.Result
	solveErr   error
}

func newState(m *maze.Maze) *state {
	s := &state{
		m: m,
		algorithms: []string{
			search.AlgorithmBFS,
			search.AlgorithmDFS,
			search.AlgorithmAStar,
			search.AlgorithmGreedy,
		},
		heuristics: []string{"manhattan", "euclidean", "zero"},
	}
	s.solve()
	return s
}

func (s *state) solve() {
	spec := bench.RunSpec{Algorithm: s.algorithms[s.algIdx]}
	if spec.Algorithm == search.AlgorithmAStar || spec.Algorithm == search.AlgorithmGreedy {
		spec.Heuristic = s.heuristics[s.heurIdx]
	}
	s.result, s.solveErr = bench.Execute(s.m, spec, true)
}

// handleKey applies one key event and reports whether the viewer should
// exit.
func (s *state) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	switch r := ev.Rune(); r {
	case 'q':
		return true
	case 'h':
		s.heurIdx = (s.heurIdx + 1) % len(s.heuristics)
		s.solve()
	case 'r':
		s.solve()
	case '1', '2', '3', '4':
		s.algIdx = int(r - '1')
		s.solve()
	}
	return false
}

// lines renders the screen content: the solved grid, a blank spacer, the
// status line and the key help.
func (s *state) lines() []string {
	var out []string
	out = append(out, strings.Split(s.result.Rendered, "\n")...)
	out = append(out, "", s.statusLine(), helpLine)
	return out
}

const helpLine = "1-4 algorithm  h heuristic  r rerun  q quit"

func (s *state) statusLine() string {
	if s.solveErr != nil {
		return fmt.Sprintf("error: %v", s.solveErr)
	}
	m := s.result.Metrics
	label := report.Label(s.result.Algorithm, s.result.Heuristic)
	if !m.Found {
		return fmt.Sprintf("%s | no path | expanded %d | generated %d | %.3f ms",
			label, m.Expanded, m.Generated, elapsedMs(m))
	}
	return fmt.Sprintf("%s | cost %d | length %d | expanded %d | generated %d | %.3f ms",
		label, m.PathCost, m.PathLength, m.Expanded, m.Generated, elapsedMs(m))
}

func elapsedMs(m search.SearchMetrics) float64 {
	return float64(m.Elapsed.Nanoseconds()) / 1e6
}
