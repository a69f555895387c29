package term

import "testing"

func TestResolveSGRNamed(t *testing.T) {
	s := ResolveSGR([]int{31}, DefaultStyle())
	if !s.Foreground.Equals(Named(Red)) {
		t.Fatalf("31 = %v, want red", s.Foreground)
	}
	s = ResolveSGR([]int{96}, DefaultStyle())
	if !s.Foreground.Equals(Named(BrightCyan)) {
		t.Fatalf("96 = %v, want bright-cyan", s.Foreground)
	}
}

func TestResolveSGRReset(t *testing.T) {
	red := Style{Foreground: Named(Red)}
	if s := ResolveSGR([]int{0}, red); !s.Foreground.Equals(DefaultForeground) {
		t.Fatalf("0 = %v, want default", s.Foreground)
	}
	if s := ResolveSGR([]int{39}, red); !s.Foreground.Equals(DefaultForeground) {
		t.Fatalf("39 = %v, want default", s.Foreground)
	}
	// An empty list is a full reset.
	if s := ResolveSGR(nil, red); !s.Foreground.Equals(DefaultForeground) {
		t.Fatalf("empty = %v, want default", s.Foreground)
	}
}

func TestResolveSGRTruecolor(t *testing.T) {
	s := ResolveSGR([]int{38, 2, 10, 20, 30}, DefaultStyle())
	if !s.Foreground.Equals(RGB(10, 20, 30)) {
		t.Fatalf("38;2;10;20;30 = %v", s.Foreground)
	}
	// Channel values are clamped into range.
	s = ResolveSGR([]int{38, 2, 300, -5, 128}, DefaultStyle())
	if !s.Foreground.Equals(RGB(255, 0, 128)) {
		t.Fatalf("clamped = %v", s.Foreground)
	}
}

func TestResolveSGRIndexed(t *testing.T) {
	s := ResolveSGR([]int{38, 5, 232}, DefaultStyle())
	if !s.Foreground.Equals(RGB(8, 8, 8)) {
		t.Fatalf("38;5;232 = %v, want #080808", s.Foreground)
	}
	s = ResolveSGR([]int{38, 5, 9}, DefaultStyle())
	if !s.Foreground.Equals(Named(BrightRed)) {
		t.Fatalf("38;5;9 = %v, want bright-red", s.Foreground)
	}
}

func TestResolveSGRConsumption(t *testing.T) {
	// The extended form's parameters must not be re-read as standalone
	// codes: here 30 is the blue channel, not "set black".
	s := ResolveSGR([]int{38, 2, 10, 20, 30, 32}, DefaultStyle())
	if !s.Foreground.Equals(Named(Green)) {
		t.Fatalf("trailing 32 should win, got %v", s.Foreground)
	}
	s = ResolveSGR([]int{38, 5, 196, 34}, DefaultStyle())
	if !s.Foreground.Equals(Named(Blue)) {
		t.Fatalf("trailing 34 should win, got %v", s.Foreground)
	}
}

func TestResolveSGRUnknownCodesSkipped(t *testing.T) {
	red := Style{Foreground: Named(Red)}
	s := ResolveSGR([]int{1, 4, 7, 45, 105}, red)
	if !s.Foreground.Equals(Named(Red)) {
		t.Fatalf("unsupported codes must not alter the style, got %v", s.Foreground)
	}
}

func TestResolveSGRTruncatedExtended(t *testing.T) {
	red := Style{Foreground: Named(Red)}
	for _, params := range [][]int{{38}, {38, 2}, {38, 2, 10, 20}, {38, 5}} {
		if s := ResolveSGR(params, red); !s.Foreground.Equals(Named(Red)) {
			t.Fatalf("truncated %v must resolve to nothing, got %v", params, s.Foreground)
		}
	}
	// Unknown colorspace identifiers skip only themselves.
	s := ResolveSGR([]int{38, 4, 31}, DefaultStyle())
	if !s.Foreground.Equals(Named(Red)) {
		t.Fatalf("38;4;31 should fall through to 31, got %v", s.Foreground)
	}
}
