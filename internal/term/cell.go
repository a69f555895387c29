package term

import "github.com/mattn/go-runewidth"

// Cell is one grid position: the rune displayed there and the style that
// was active when it was written. The style persists with the cell,
// independent of later style changes.
type Cell struct {
	Rune rune

	// Width is the display width: 1 for normal runes, 2 for wide (CJK)
	// runes, 0 for the continuation half of a wide rune.
	Width int

	Style Style
}

// EmptyCell returns a blank cell with the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewCell returns a cell holding r written with the given style.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: runewidth.RuneWidth(r), Style: style}
}

// continuationCell fills the second column of a wide rune.
func continuationCell(style Style) Cell {
	return Cell{Rune: 0, Width: 0, Style: style}
}

// IsContinuation reports whether this cell is the trailing half of a wide
// rune.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Rune == 0
}

// Equals reports whether two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune && c.Width == other.Width && c.Style.Equals(other.Style)
}

func blankLine(cols int) []Cell {
	line := make([]Cell, cols)
	for i := range line {
		line[i] = EmptyCell()
	}
	return line
}
