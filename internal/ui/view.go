package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenatx/nart/internal/term"
	appver "github.com/thenatx/nart/internal/version"
)

var statusBarStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#343433", Dark: "#C1C6B2"}).
	Background(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#353533"})

func (m Model) View() string {
	if m.exited {
		return "session ended\n"
	}
	cells := m.grid.Cells()
	cur := m.grid.Cursor()
	var b strings.Builder
	for r, row := range cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(renderRow(row, r == cur.Row, cur.Col))
	}
	b.WriteByte('\n')
	b.WriteString(m.statusBar())
	return b.String()
}

// renderRow groups runs of equally styled cells so each run costs a
// single style application. The cell under the cursor renders reversed.
func renderRow(row []term.Cell, hasCursor bool, curCol int) string {
	var out strings.Builder
	var run strings.Builder
	var runStyle term.Style
	runCursor := false
	started := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		st := lipgloss.NewStyle().Foreground(termColor(runStyle.Foreground))
		if runCursor {
			st = st.Reverse(true)
		}
		out.WriteString(st.Render(run.String()))
		run.Reset()
	}

	for i, c := range row {
		if c.IsContinuation() {
			continue
		}
		onCursor := hasCursor && i == curCol
		if !started || !c.Style.Equals(runStyle) || onCursor != runCursor {
			flush()
			runStyle, runCursor, started = c.Style, onCursor, true
		}
		run.WriteRune(c.Rune)
	}
	flush()
	return out.String()
}

// termColor maps a grid color to a lipgloss terminal color: named colors
// to their ANSI palette index, RGB to hex.
func termColor(c term.Color) lipgloss.Color {
	if c.Type == term.ColorRGB {
		return lipgloss.Color(c.Hex())
	}
	return lipgloss.Color(strconv.Itoa(int(c.Name)))
}

func (m Model) statusBar() string {
	left := "nart v" + appver.AppVersion
	right := "ctrl+q quits"
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return statusBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}
