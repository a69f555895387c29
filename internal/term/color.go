package term

import "fmt"

// NamedColor identifies one of the 16 base ANSI palette entries:
// indices 0-7 are the normal colors, 8-15 the bright variants.
type NamedColor uint8

// The 16 named ANSI colors.
const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var namedColorNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

func (n NamedColor) String() string {
	if int(n) < len(namedColorNames) {
		return namedColorNames[n]
	}
	return fmt.Sprintf("named(%d)", uint8(n))
}

// ColorType discriminates the Color variant.
type ColorType uint8

const (
	// ColorNamed is one of the 16 named ANSI colors.
	ColorNamed ColorType = iota
	// ColorRGB is a 24-bit truecolor value.
	ColorRGB
)

// Color is a terminal color: either a named ANSI color or a direct RGB
// value. 256-color indexed parameters are resolved into one of these two
// forms at parse time; palette indices are never stored.
type Color struct {
	Type ColorType

	// Name holds the palette entry when Type is ColorNamed.
	Name NamedColor

	// R, G, B hold the channel values when Type is ColorRGB.
	R, G, B uint8
}

// DefaultForeground is the terminal's base foreground color.
var DefaultForeground = Named(White)

// Named returns one of the 16 ANSI colors.
func Named(n NamedColor) Color {
	return Color{Type: ColorNamed, Name: n}
}

// RGB returns a 24-bit truecolor value.
func RGB(r, g, b uint8) Color {
	return Color{Type: ColorRGB, R: r, G: g, B: b}
}

// Equals reports whether two colors are the same variant and value.
func (c Color) Equals(other Color) bool {
	if c.Type != other.Type {
		return false
	}
	if c.Type == ColorNamed {
		return c.Name == other.Name
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Hex returns the "#RRGGBB" form of an RGB color, or the empty string for
// named colors, which have no fixed channel values.
func (c Color) Hex() string {
	if c.Type != ColorRGB {
		return ""
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	if c.Type == ColorNamed {
		return c.Name.String()
	}
	return c.Hex()
}

// ParseHex parses a "#RRGGBB" string into an RGB color.
func ParseHex(s string) (Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil || len(s) != 7 {
		return Color{}, fmt.Errorf("invalid hex color: %q", s)
	}
	return RGB(r, g, b), nil
}

// xterm256 maps every 256-color palette index to its resolved Color. The
// table is pure data, built once at startup and read-only afterwards.
var xterm256 = buildXterm256()

// FromIndex resolves a 256-color palette index: 0-15 map to the named ANSI
// colors, 16-231 through the 6x6x6 color cube, and 232-255 along the
// grayscale ramp.
func FromIndex(n uint8) Color {
	return xterm256[n]
}

func buildXterm256() [256]Color {
	var table [256]Color
	for i := 0; i < 16; i++ {
		table[i] = Named(NamedColor(i))
	}
	for i := 16; i < 232; i++ {
		idx := i - 16
		table[i] = RGB(cubeChannel(idx/36), cubeChannel(idx/6%6), cubeChannel(idx%6))
	}
	for i := 232; i < 256; i++ {
		gray := uint8(8 + 10*(i-232))
		table[i] = RGB(gray, gray, gray)
	}
	return table
}

// cubeChannel converts a 0-5 cube coordinate to its channel value.
func cubeChannel(idx int) uint8 {
	if idx == 0 {
		return 0
	}
	return uint8(55 + 40*idx)
}
