package input

import (
	"image"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Steerer accepts or rejects a candidate heading.
type Steerer interface {
	Steer(h snake.Heading) bool
}

// Router feeds every input source into one Steerer.
type Router struct {
	steer Steerer
	swipe *Swipe
}

// NewRouter creates a router whose swipes use the given pixel threshold.
func NewRouter(steer Steerer, swipeThreshold int) *Router {
	return &Router{
		steer: steer,
		swipe: NewSwipe(swipeThreshold),
	}
}

// Key steers by key name. It returns false for unknown keys and rejected headings.
func (r *Router) Key(name string) bool {
	h, ok := Key(name)
	if !ok {
		return false
	}
	return r.steer.Steer(h)
}

// Button steers by button id.
func (r *Router) Button(id string) bool {
	h, ok := Button(id)
	if !ok {
		return false
	}
	return r.steer.Steer(h)
}

// TouchStart begins a swipe at p.
func (r *Router) TouchStart(p image.Point) {
	r.swipe.Begin(p)
}

// TouchMove samples the swipe and steers once it resolves.
func (r *Router) TouchMove(p image.Point) bool {
	h, ok := r.swipe.Move(p)
	if !ok {
		return false
	}
	return r.steer.Steer(h)
}

// TouchEnd finishes the swipe.
func (r *Router) TouchEnd() {
	r.swipe.End()
}
