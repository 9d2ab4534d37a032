package core

// Color represents a foreground color for a screen cell.
// Frontends map it onto their own palette (lipgloss, tcell).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorGray

	numColors // Keep last
)

// Colors returns every color in declaration order.
func Colors() []Color {
	all := make([]Color, 0, numColors)
	for c := ColorDefault; c < numColors; c++ {
		all = append(all, c)
	}
	return all
}

// ansiIndex is the xterm 256-color palette index of each color.
var ansiIndex = [numColors]int{
	ColorDefault:     -1,
	ColorRed:         1,
	ColorGreen:       2,
	ColorYellow:      3,
	ColorCyan:        6,
	ColorWhite:       7,
	ColorBrightRed:   9,
	ColorBrightGreen: 10,
	ColorGray:        245,
}

// ANSI returns the 256-color palette index of c, or -1 for the terminal default.
func (c Color) ANSI() int {
	if c >= numColors {
		return -1
	}
	return ansiIndex[c]
}

// String returns the color name as used in config files.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightRed:
		return "bright-red"
	case ColorBrightGreen:
		return "bright-green"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}

// ParseColor returns the color for a config name.
// Unknown names yield ColorDefault and false.
func ParseColor(name string) (Color, bool) {
	for c := ColorDefault; c < numColors; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return ColorDefault, false
}
