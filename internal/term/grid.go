// Package term is the terminal emulation core: the screen grid, the
// escape sequence interpreter that mutates it, and the SGR color
// resolver. It owns no I/O; bytes come in through the interpreter and
// the rendering side reads the grid back out.
package term

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cursor addresses a grid position. Both coordinates are zero-based and
// always clamped to the grid bounds.
type Cursor struct {
	Row, Col int
}

// Grid is the terminal screen model: a fixed rows x cols matrix of cells,
// a cursor, and the currently active style. It is mutated only by the
// escape sequence interpreter; the rendering side reads it through
// snapshot accessors. There is no scrollback: content pushed past the top
// row is dropped.
type Grid struct {
	rows, cols int
	cells      [][]Cell
	cursor     Cursor
	style      Style

	// cellWidth/cellHeight are the pixel dimensions of one cell, supplied
	// by the host's font layer. They are only used to convert grid
	// coordinates to pixel coordinates.
	cellWidth, cellHeight float64
}

// NewGrid returns a blank grid of the given dimensions.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{style: DefaultStyle(), cellWidth: 1, cellHeight: 1}
	g.setSize(rows, cols)
	return g
}

// Size returns the grid dimensions as (rows, cols).
func (g *Grid) Size() (int, int) {
	return g.rows, g.cols
}

// Cursor returns the current cursor position.
func (g *Grid) Cursor() Cursor {
	return g.cursor
}

// Style returns the currently active style.
func (g *Grid) Style() Style {
	return g.style
}

// SetStyle replaces the active style applied to subsequently printed
// cells. Cells already written keep the style they were written with.
func (g *Grid) SetStyle(s Style) {
	g.style = s
}

// CellAt returns the cell at (row, col), reporting false when the
// position is out of bounds.
func (g *Grid) CellAt(row, col int) (Cell, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Cell{}, false
	}
	return g.cells[row][col], true
}

// Cells returns a deep copy of the cell matrix, safe to hold across later
// grid mutations.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := range out {
		out[r] = make([]Cell, g.cols)
		copy(out[r], g.cells[r])
	}
	return out
}

// Row returns the text content of one row with trailing blanks removed.
func (g *Grid) Row(r int) string {
	if r < 0 || r >= g.rows {
		return ""
	}
	runes := make([]rune, 0, g.cols)
	for _, c := range g.cells[r] {
		if c.IsContinuation() {
			continue
		}
		runes = append(runes, c.Rune)
	}
	return strings.TrimRight(string(runes), " ")
}

// Content returns the visible text of the whole grid, rows joined by
// newlines.
func (g *Grid) Content() string {
	rows := make([]string, g.rows)
	for r := range rows {
		rows[r] = g.Row(r)
	}
	return strings.Join(rows, "\n")
}

// CursorPixel converts the cursor position to pixel coordinates using the
// configured cell size.
func (g *Grid) CursorPixel() (x, y float64) {
	return float64(g.cursor.Col) * g.cellWidth, float64(g.cursor.Row) * g.cellHeight
}

// Resize recomputes the grid dimensions from pixel dimensions divided by
// the cell size, truncating toward zero. Content inside the new bounds is
// preserved; the rest is truncated. The cursor is clamped back in range.
func (g *Grid) Resize(pixelWidth, pixelHeight int, cellWidth, cellHeight float64) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return
	}
	g.cellWidth, g.cellHeight = cellWidth, cellHeight
	g.setSize(int(float64(pixelHeight)/cellHeight), int(float64(pixelWidth)/cellWidth))
}

func (g *Grid) setSize(rows, cols int) {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	next := make([][]Cell, rows)
	for r := range next {
		next[r] = blankLine(cols)
		if r < len(g.cells) {
			copy(next[r], g.cells[r])
		}
	}
	g.cells = next
	g.rows, g.cols = rows, cols
	g.clampCursor()
}

// Print writes r at the cursor with the active style and advances the
// cursor, wrapping to column 0 of the next row when the current row is
// full. Wrapping past the last row drops the top row.
func (g *Grid) Print(r rune) {
	if g.rows == 0 || g.cols == 0 {
		return
	}
	w := runewidth.RuneWidth(r)
	if w == 0 {
		// Combining marks and other zero-width runes do not occupy a cell.
		return
	}
	if g.cursor.Col+w > g.cols {
		g.wrap()
	}
	row := g.cells[g.cursor.Row]
	row[g.cursor.Col] = Cell{Rune: r, Width: w, Style: g.style}
	if w == 2 && g.cursor.Col+1 < g.cols {
		row[g.cursor.Col+1] = continuationCell(g.style)
	}
	g.cursor.Col += w
	if g.cursor.Col >= g.cols {
		g.wrap()
	}
}

// LineFeed moves the cursor to column 0 of the next row, dropping the top
// row when the cursor is already on the last one.
func (g *Grid) LineFeed() {
	if g.rows == 0 {
		return
	}
	g.wrap()
}

func (g *Grid) wrap() {
	g.cursor.Col = 0
	if g.cursor.Row+1 >= g.rows {
		g.scrollUp()
		return
	}
	g.cursor.Row++
}

// scrollUp discards the top row and appends a blank one at the bottom.
func (g *Grid) scrollUp() {
	if g.rows == 0 {
		return
	}
	copy(g.cells, g.cells[1:])
	g.cells[g.rows-1] = blankLine(g.cols)
}

// MoveUp moves the cursor up by n rows, clamping at the top edge.
func (g *Grid) MoveUp(n int) {
	g.moveTo(g.cursor.Row-positive(n), g.cursor.Col)
}

// MoveDown moves the cursor down by n rows, clamping at the bottom edge.
func (g *Grid) MoveDown(n int) {
	g.moveTo(g.cursor.Row+positive(n), g.cursor.Col)
}

// MoveForward moves the cursor right by n columns, clamping at the right
// edge.
func (g *Grid) MoveForward(n int) {
	g.moveTo(g.cursor.Row, g.cursor.Col+positive(n))
}

// MoveBack moves the cursor left by n columns, clamping at column 0.
func (g *Grid) MoveBack(n int) {
	g.moveTo(g.cursor.Row, g.cursor.Col-positive(n))
}

// NextLine moves the cursor to column 0, n rows down.
func (g *Grid) NextLine(n int) {
	g.moveTo(g.cursor.Row+positive(n), 0)
}

// PrevLine moves the cursor to column 0, n rows up.
func (g *Grid) PrevLine(n int) {
	g.moveTo(g.cursor.Row-positive(n), 0)
}

// SetColumn moves the cursor to an absolute column on the current row.
func (g *Grid) SetColumn(col int) {
	g.moveTo(g.cursor.Row, col)
}

// SetPosition moves the cursor to an absolute (row, col).
func (g *Grid) SetPosition(row, col int) {
	g.moveTo(row, col)
}

func (g *Grid) moveTo(row, col int) {
	g.cursor = Cursor{Row: row, Col: col}
	g.clampCursor()
}

func (g *Grid) clampCursor() {
	g.cursor.Row = clamp(g.cursor.Row, 0, g.rows-1)
	g.cursor.Col = clamp(g.cursor.Col, 0, g.cols-1)
}

// EraseDisplay handles CSI J. Only mode 3 is implemented: it blanks every
// cell without moving the cursor. Modes 0, 1 and 2 involve scrollback
// regions this grid does not keep, so they are accepted as no-ops.
func (g *Grid) EraseDisplay(mode int) {
	if mode != 3 {
		return
	}
	for r := range g.cells {
		g.cells[r] = blankLine(g.cols)
	}
}

// EraseLine handles CSI K on the cursor's row: mode 0 clears from the
// cursor to the end of the line, mode 1 from the start of the line up to
// the cursor, mode 2 the whole line.
func (g *Grid) EraseLine(mode int) {
	if g.rows == 0 || g.cols == 0 {
		return
	}
	row := g.cells[g.cursor.Row]
	switch mode {
	case 0:
		for c := g.cursor.Col; c < g.cols; c++ {
			row[c] = EmptyCell()
		}
	case 1:
		for c := 0; c < g.cursor.Col; c++ {
			row[c] = EmptyCell()
		}
	case 2:
		for c := range row {
			row[c] = EmptyCell()
		}
	}
}

func positive(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
