package term

// Style is the graphic rendition state applied to printed cells. Only the
// foreground color is modeled; background colors and attributes such as
// bold or underline are not supported.
type Style struct {
	Foreground Color
}

// DefaultStyle returns the style used before any SGR sequence arrives.
func DefaultStyle() Style {
	return Style{Foreground: DefaultForeground}
}

// Equals reports whether two styles are identical.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground)
}
