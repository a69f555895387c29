package term

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/ansi/parser"

	"github.com/thenatx/nart/internal/system"
)

// Interpreter applies a shell's output byte stream to a Grid. It wraps a
// streaming ANSI parser that classifies bytes into printable runes,
// single-byte controls and CSI sequences; everything else is tolerated
// and dropped. The parser state persists across Feed calls, so a sequence
// split between two reads resumes where it left off.
type Interpreter struct {
	grid   *Grid
	parser *ansi.Parser
}

// NewInterpreter returns an interpreter that mutates g.
func NewInterpreter(g *Grid) *Interpreter {
	in := &Interpreter{grid: g}
	p := ansi.NewParser()
	p.SetParamsSize(parser.MaxParamsSize)
	p.SetDataSize(0) // OSC/DCS payloads are not interpreted
	p.SetHandler(ansi.Handler{
		Print:     in.print,
		Execute:   in.execute,
		HandleCsi: in.csiDispatch,
	})
	in.parser = p
	return in
}

// Feed advances the parser over data, one byte at a time. It accepts
// arbitrary fragmentation, including sequences truncated at the end of
// the slice.
func (in *Interpreter) Feed(data []byte) {
	for i := range data {
		in.parser.Advance(data[i])
	}
}

func (in *Interpreter) print(r rune) {
	in.grid.Print(r)
}

func (in *Interpreter) execute(b byte) {
	switch b {
	case '\n':
		in.grid.LineFeed()
	default:
		system.Logger.Debug("ignoring control byte", "byte", b)
	}
}

func (in *Interpreter) csiDispatch(cmd ansi.Cmd, params ansi.Params) {
	if cmd.Prefix() != 0 || cmd.Intermediate() != 0 {
		// Private-mode and intermediate forms are outside the supported
		// subset; tolerate them silently.
		return
	}
	ps := numericParams(params)
	switch cmd.Final() {
	case 'A':
		in.grid.MoveUp(param(ps, 0, 0))
	case 'B':
		in.grid.MoveDown(param(ps, 0, 0))
	case 'C':
		in.grid.MoveForward(param(ps, 0, 0))
	case 'D':
		in.grid.MoveBack(param(ps, 0, 0))
	case 'E':
		in.grid.NextLine(param(ps, 0, 1))
	case 'F':
		in.grid.PrevLine(param(ps, 0, 1))
	case 'G':
		in.grid.SetColumn(param(ps, 0, 0))
	case 'H', 'f':
		in.grid.SetPosition(param(ps, 0, 0), param(ps, 1, 0))
	case 'J':
		in.grid.EraseDisplay(param(ps, 0, 0))
	case 'K':
		in.grid.EraseLine(param(ps, 0, 0))
	case 'm':
		in.grid.SetStyle(ResolveSGR(ps, in.grid.Style()))
	default:
		system.Logger.Debug("ignoring CSI sequence",
			"final", string(rune(cmd.Final())), "params", ps)
	}
}

func numericParams(params ansi.Params) []int {
	out := make([]int, len(params))
	for i, p := range params {
		out[i] = p.Param(0)
	}
	return out
}

func param(ps []int, i, def int) int {
	if i < len(ps) {
		return ps[i]
	}
	return def
}
