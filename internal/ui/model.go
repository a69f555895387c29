// Package ui is the interactive host for a terminal session: a Bubble Tea
// program that polls the PTY every tick, feeds the interpreter, and draws
// the resulting grid. It only consumes the grid's read-only snapshot; all
// mutation happens inside the tick update.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenatx/nart/internal/ptyx"
	"github.com/thenatx/nart/internal/term"
)

// tickInterval paces the redraw loop. Each tick performs exactly one
// non-blocking PTY read.
const tickInterval = 16 * time.Millisecond

type tickMsg time.Time

// Model hosts one terminal session.
type Model struct {
	sess   *ptyx.Session
	grid   *term.Grid
	interp *term.Interpreter

	width, height int
	exited        bool
}

// NewModel wires a session to a grid through a fresh interpreter.
func NewModel(sess *ptyx.Session, grid *term.Grid) Model {
	return Model{sess: sess, grid: grid, interp: term.NewInterpreter(grid)}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		rows := msg.Height - 1 // bottom line is the status bar
		if rows < 1 {
			rows = 1
		}
		// The host draws character cells, so the grid's "pixel" cell is 1x1.
		m.grid.Resize(msg.Width, rows, 1, 1)
		m.sess.Resize(rows, msg.Width)
		return m, nil

	case tickMsg:
		if data := m.sess.Read(); len(data) > 0 {
			m.interp.Feed(data)
		}
		if !m.sess.Alive() {
			m.exited = true
			return m, tea.Quit
		}
		return m, tick()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlQ {
			return m, tea.Quit
		}
		if b := keyBytes(msg); len(b) > 0 {
			m.sess.Write(b)
		}
		return m, nil
	}
	return m, nil
}
