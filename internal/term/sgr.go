package term

// ResolveSGR folds an SGR (CSI ... m) parameter list into a style,
// iterating left to right:
//
//	0, 39           default foreground
//	30-37           named ANSI colors
//	90-97           bright variants
//	38;2;r;g;b      direct 24-bit color
//	38;5;n          256-color palette lookup
//
// Unsupported codes are skipped without altering the style, matching how
// real terminals tolerate unknown renditions. An empty parameter list is
// the same as a single 0 (full reset).
func ResolveSGR(params []int, style Style) Style {
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		switch p := params[i]; {
		case p == 0 || p == 39:
			style.Foreground = DefaultForeground
		case p >= 30 && p <= 37:
			style.Foreground = Named(NamedColor(p - 30))
		case p >= 90 && p <= 97:
			style.Foreground = Named(NamedColor(p - 90 + 8))
		case p == 38:
			color, consumed, ok := resolveExtended(params[i+1:])
			if ok {
				style.Foreground = color
			}
			i += consumed
		}
	}
	return style
}

// resolveExtended handles the parameters following a 38 introducer and
// reports how many of them were consumed, so the caller can advance past
// the whole form. A truncated form consumes what remains and resolves to
// nothing.
func resolveExtended(rest []int) (Color, int, bool) {
	if len(rest) == 0 {
		return Color{}, 0, false
	}
	switch rest[0] {
	case 2: // 38;2;r;g;b
		if len(rest) < 4 {
			return Color{}, len(rest), false
		}
		return RGB(channel(rest[1]), channel(rest[2]), channel(rest[3])), 4, true
	case 5: // 38;5;n
		if len(rest) < 2 {
			return Color{}, len(rest), false
		}
		return FromIndex(channel(rest[1])), 2, true
	default:
		// Unknown colorspace identifier; skip the identifier only.
		return Color{}, 1, false
	}
}

// channel clamps an SGR parameter into the 0-255 channel range.
func channel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
