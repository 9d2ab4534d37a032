package snake

import (
	"fmt"
	"strings"
)

// Position is a cell on the board in grid coordinates.
type Position struct {
	X, Y int
}

// Add returns the position one step along h.
func (p Position) Add(h Heading) Position {
	return Position{X: p.X + h.DX, Y: p.Y + h.DY}
}

// String returns "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Heading is a unit step on the grid, or the neutral zero value before play starts.
type Heading struct {
	DX, DY int
}

// The four movement headings and the neutral heading.
var (
	None  = Heading{}
	Up    = Heading{DX: 0, DY: -1}
	Down  = Heading{DX: 0, DY: 1}
	Left  = Heading{DX: -1, DY: 0}
	Right = Heading{DX: 1, DY: 0}
)

// IsNeutral reports whether h is the zero heading.
func (h Heading) IsNeutral() bool {
	return h == None
}

// Valid reports whether h is neutral or one of the four unit headings.
func (h Heading) Valid() bool {
	switch h {
	case None, Up, Down, Left, Right:
		return true
	}
	return false
}

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	return Heading{DX: -h.DX, DY: -h.DY}
}

// Reverses reports whether h is the exact reverse of prev.
// Neutral headings never reverse anything.
func (h Heading) Reverses(prev Heading) bool {
	return !h.IsNeutral() && !prev.IsNeutral() && h == prev.Opposite()
}

// String returns the heading name.
func (h Heading) String() string {
	switch h {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("(%d,%d)", h.DX, h.DY)
	}
}

// ParseHeading returns the heading for "up", "down", "left", "right" or "none".
func ParseHeading(name string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "none", "":
		return None, nil
	}
	return None, fmt.Errorf("snake: unknown heading %q", name)
}

// MarshalText implements encoding.TextMarshaler so headings read well in YAML.
func (h Heading) MarshalText() ([]byte, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("snake: invalid heading %v", h)
	}
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Heading) UnmarshalText(text []byte) error {
	parsed, err := ParseHeading(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
