package input

import (
	"image"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Swipe turns a pointer gesture into at most one heading.
// Coordinates are canvas pixels.
type Swipe struct {
	threshold int
	start     image.Point
	tracking  bool
}

// NewSwipe creates a tracker that needs more than threshold pixels of travel
// along the dominant axis to resolve.
func NewSwipe(threshold int) *Swipe {
	return &Swipe{threshold: threshold}
}

// Begin records the start point of a gesture.
func (s *Swipe) Begin(p image.Point) {
	s.start = p
	s.tracking = true
}

// Move samples the gesture. Once it resolves to a heading the start point is
// cleared, so later moves of the same gesture yield nothing.
func (s *Swipe) Move(p image.Point) (snake.Heading, bool) {
	if !s.tracking {
		return snake.None, false
	}

	dx, dy := p.X-s.start.X, p.Y-s.start.Y
	var h snake.Heading
	// Ties go to the vertical axis
	if core.Abs(dx) > core.Abs(dy) {
		switch {
		case dx > s.threshold:
			h = snake.Right
		case dx < -s.threshold:
			h = snake.Left
		}
	} else {
		switch {
		case dy > s.threshold:
			h = snake.Down
		case dy < -s.threshold:
			h = snake.Up
		}
	}

	if h.IsNeutral() {
		return snake.None, false
	}
	s.tracking = false
	return h, true
}

// End drops the gesture.
func (s *Swipe) End() {
	s.tracking = false
}

// Tracking reports whether a gesture is waiting to resolve.
func (s *Swipe) Tracking() bool {
	return s.tracking
}
