// Package tui is an interactive terminal viewer for solved mazes: it
// draws the grid with the current strategy's path overlaid and re-solves
// on demand. Keys 1-4 pick the strategy, h cycles the heuristic, r
// re-runs, q or ESC quits.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"mazebench/maze"
)

var (
	stylePath   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleMarker = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Run opens a tcell screen on the maze and blocks until the user quits.
func Run(m *maze.Maze) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	st := newState(m)
	for {
		draw(screen, st)
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if st.handleKey(ev) {
				return nil
			}
		}
	}
}

func draw(screen tcell.Screen, st *state) {
	screen.Clear()
	lines := st.lines()
	gridRows := st.m.Height()
	for y, line := range lines {
		for x, r := range line {
			style := tcell.StyleDefault
			if y < gridRows {
				style = styleFor(r)
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}

func styleFor(r rune) tcell.Style {
	switch r {
	case 'o':
		return stylePath
	case 'S', 'G':
		return styleMarker
	default:
		return tcell.StyleDefault
	}
}
