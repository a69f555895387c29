package term

import "testing"

func printString(g *Grid, s string) {
	for _, r := range s {
		g.Print(r)
	}
}

func TestPrintRowVerbatim(t *testing.T) {
	g := NewGrid(24, 80)
	printString(g, "hello world")
	if got := g.Row(0); got != "hello world" {
		t.Fatalf("Row(0) = %q", got)
	}
	for col := range "hello world" {
		cell, ok := g.CellAt(0, col)
		if !ok || !cell.Style.Equals(DefaultStyle()) {
			t.Fatalf("cell %d carries style %v", col, cell.Style)
		}
	}
	if cur := g.Cursor(); cur.Row != 0 || cur.Col != len("hello world") {
		t.Fatalf("cursor = %+v", cur)
	}
}

func TestPrintStyleStaysWithCell(t *testing.T) {
	g := NewGrid(2, 10)
	g.SetStyle(Style{Foreground: Named(Red)})
	printString(g, "a")
	g.SetStyle(Style{Foreground: Named(Blue)})
	printString(g, "b")
	a, _ := g.CellAt(0, 0)
	b, _ := g.CellAt(0, 1)
	if !a.Style.Foreground.Equals(Named(Red)) || !b.Style.Foreground.Equals(Named(Blue)) {
		t.Fatalf("cell styles = %v, %v", a.Style, b.Style)
	}
}

func TestPrintWrapsAtRowEnd(t *testing.T) {
	g := NewGrid(24, 5)
	printString(g, "abcde")
	if cur := g.Cursor(); cur.Row != 1 || cur.Col != 0 {
		t.Fatalf("cursor after full row = %+v, want (1,0)", cur)
	}
	printString(g, "f")
	if got := g.Row(1); got != "f" {
		t.Fatalf("Row(1) = %q, want %q", got, "f")
	}
	if got := g.Row(0); got != "abcde" {
		t.Fatalf("Row(0) = %q", got)
	}
}

func TestPrintPastLastRowDropsTop(t *testing.T) {
	g := NewGrid(2, 3)
	printString(g, "abcdefg")
	if got := g.Row(0); got != "def" {
		t.Fatalf("Row(0) = %q, want %q", got, "def")
	}
	if got := g.Row(1); got != "g" {
		t.Fatalf("Row(1) = %q, want %q", got, "g")
	}
	if cur := g.Cursor(); cur.Row != 1 || cur.Col != 1 {
		t.Fatalf("cursor = %+v", cur)
	}
}

func TestPrintWideRune(t *testing.T) {
	g := NewGrid(2, 4)
	printString(g, "a日b")
	if got := g.Row(0); got != "a日b" {
		t.Fatalf("Row(0) = %q", got)
	}
	cont, _ := g.CellAt(0, 2)
	if !cont.IsContinuation() {
		t.Fatalf("cell (0,2) should be a continuation, got %+v", cont)
	}
	// A wide rune never straddles the row edge.
	g2 := NewGrid(2, 3)
	printString(g2, "ab日")
	if got := g2.Row(1); got != "日" {
		t.Fatalf("wide rune should wrap whole, Row(1) = %q", got)
	}
}

func TestLineFeed(t *testing.T) {
	g := NewGrid(3, 10)
	printString(g, "ab")
	g.LineFeed()
	if cur := g.Cursor(); cur.Row != 1 || cur.Col != 0 {
		t.Fatalf("cursor after LF = %+v, want (1,0)", cur)
	}
	// LF on the last row scrolls instead of moving past the edge.
	g.SetPosition(2, 4)
	g.LineFeed()
	if cur := g.Cursor(); cur.Row != 2 || cur.Col != 0 {
		t.Fatalf("cursor after LF at bottom = %+v, want (2,0)", cur)
	}
	if got := g.Row(0); got != "" {
		t.Fatalf("top row should have scrolled away, got %q", got)
	}
}

func TestCursorMovesClamp(t *testing.T) {
	g := NewGrid(24, 80)
	g.MoveUp(5)
	if cur := g.Cursor(); cur.Row != 0 {
		t.Fatalf("MoveUp past top = %+v", cur)
	}
	g.MoveDown(100)
	if cur := g.Cursor(); cur.Row != 23 {
		t.Fatalf("MoveDown past bottom = %+v", cur)
	}
	g.MoveForward(200)
	if cur := g.Cursor(); cur.Col != 79 {
		t.Fatalf("MoveForward past edge = %+v", cur)
	}
	g.MoveBack(500)
	if cur := g.Cursor(); cur.Col != 0 {
		t.Fatalf("MoveBack past edge = %+v", cur)
	}
	// Negative distances never move the cursor backwards.
	g.SetPosition(10, 10)
	g.MoveDown(-3)
	if cur := g.Cursor(); cur.Row != 10 {
		t.Fatalf("negative distance moved cursor: %+v", cur)
	}
}

func TestNextPrevLine(t *testing.T) {
	g := NewGrid(24, 80)
	g.SetPosition(5, 30)
	g.NextLine(2)
	if cur := g.Cursor(); cur.Row != 7 || cur.Col != 0 {
		t.Fatalf("NextLine = %+v, want (7,0)", cur)
	}
	g.SetPosition(5, 30)
	g.PrevLine(10)
	if cur := g.Cursor(); cur.Row != 0 || cur.Col != 0 {
		t.Fatalf("PrevLine clamped = %+v, want (0,0)", cur)
	}
}

func TestEraseLineModes(t *testing.T) {
	setup := func() *Grid {
		g := NewGrid(2, 10)
		printString(g, "abcdefghij")
		g.SetPosition(0, 4)
		return g
	}

	g := setup()
	g.EraseLine(0)
	if got := g.Row(0); got != "abcd" {
		t.Fatalf("EL 0 = %q, want %q", got, "abcd")
	}

	g = setup()
	g.EraseLine(1)
	if got := g.Row(0); got != "    efghij" {
		t.Fatalf("EL 1 = %q", got)
	}

	g = setup()
	g.EraseLine(2)
	if got := g.Row(0); got != "" {
		t.Fatalf("EL 2 = %q, want empty", got)
	}
	if cur := g.Cursor(); cur.Row != 0 || cur.Col != 4 {
		t.Fatalf("erase must not move the cursor: %+v", cur)
	}
}

func TestEraseDisplay(t *testing.T) {
	g := NewGrid(3, 10)
	printString(g, "abcdefghijklmno")
	g.SetPosition(1, 2)
	g.EraseDisplay(3)
	for r := 0; r < 3; r++ {
		if got := g.Row(r); got != "" {
			t.Fatalf("row %d not cleared: %q", r, got)
		}
	}
	if cur := g.Cursor(); cur.Row != 1 || cur.Col != 2 {
		t.Fatalf("cursor moved by erase: %+v", cur)
	}

	// Modes 0-2 are accepted but leave the grid untouched.
	g = NewGrid(2, 10)
	printString(g, "keep")
	for _, mode := range []int{0, 1, 2} {
		g.EraseDisplay(mode)
	}
	if got := g.Row(0); got != "keep" {
		t.Fatalf("ED %q", got)
	}
}

func TestResizeTruncatesAndClamps(t *testing.T) {
	g := NewGrid(24, 80)
	printString(g, "first row")
	g.SetPosition(20, 60)

	g.Resize(40, 12, 1, 1)
	if rows, cols := g.Size(); rows != 12 || cols != 40 {
		t.Fatalf("Size = (%d,%d), want (12,40)", rows, cols)
	}
	if got := g.Row(0); got != "first row" {
		t.Fatalf("in-bounds content lost: %q", got)
	}
	if cur := g.Cursor(); cur.Row != 11 || cur.Col != 39 {
		t.Fatalf("cursor not clamped: %+v", cur)
	}

	// Growing pads with blanks.
	g.Resize(100, 30, 1, 1)
	if rows, cols := g.Size(); rows != 30 || cols != 100 {
		t.Fatalf("Size = (%d,%d)", rows, cols)
	}
	if got := g.Row(0); got != "first row" {
		t.Fatalf("content lost on grow: %q", got)
	}
	if got := g.Row(29); got != "" {
		t.Fatalf("padded row not blank: %q", got)
	}
}

func TestResizeFromPixels(t *testing.T) {
	g := NewGrid(0, 0)
	g.Resize(805, 607, 10, 20)
	if rows, cols := g.Size(); rows != 30 || cols != 80 {
		t.Fatalf("Size = (%d,%d), want (30,80)", rows, cols)
	}
	g.SetPosition(2, 3)
	x, y := g.CursorPixel()
	if x != 30 || y != 40 {
		t.Fatalf("CursorPixel = (%v,%v), want (30,40)", x, y)
	}
}

func TestZeroSizeGridIsInert(t *testing.T) {
	g := NewGrid(0, 0)
	printString(g, "abc")
	g.LineFeed()
	g.MoveDown(3)
	g.EraseLine(2)
	g.EraseDisplay(3)
	if rows, cols := g.Size(); rows != 0 || cols != 0 {
		t.Fatalf("Size = (%d,%d)", rows, cols)
	}
}

func TestCellsSnapshotIsDetached(t *testing.T) {
	g := NewGrid(2, 5)
	printString(g, "abc")
	snap := g.Cells()
	printString(g, "XYZ")
	if snap[0][3].Rune != ' ' {
		t.Fatalf("snapshot mutated by later writes: %q", snap[0][3].Rune)
	}
}
