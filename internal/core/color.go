package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Attr is the brightness attribute of a cell.
type Attr uint8

const (
	AttrNormal Attr = iota
	AttrDim
	AttrBold
)

// String returns a human-readable name for the attribute.
func (a Attr) String() string {
	switch a {
	case AttrNormal:
		return "normal"
	case AttrDim:
		return "dim"
	case AttrBold:
		return "bold"
	default:
		return "unknown"
	}
}

// Style combines a color with a brightness attribute.
// The zero value is the terminal's default look.
type Style struct {
	Color Color
	Attr  Attr
}

// StyleDefault is the plain, unstyled cell look.
var StyleDefault = Style{}

// WithAttr returns a copy of the style with the given attribute.
func (s Style) WithAttr(a Attr) Style {
	s.Attr = a
	return s
}
