// Package input translates raw signals from keyboards, pointer gestures and
// on-screen buttons into candidate headings.
package input

import (
	"strings"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// keyHeadings maps lower-cased key names to headings. It covers DOM key
// names, terminal key names and the usual WASD and vi letters.
var keyHeadings = map[string]snake.Heading{
	"arrowup":    snake.Up,
	"up":         snake.Up,
	"w":          snake.Up,
	"k":          snake.Up,
	"arrowdown":  snake.Down,
	"down":       snake.Down,
	"s":          snake.Down,
	"j":          snake.Down,
	"arrowleft":  snake.Left,
	"left":       snake.Left,
	"a":          snake.Left,
	"h":          snake.Left,
	"arrowright": snake.Right,
	"right":      snake.Right,
	"d":          snake.Right,
	"l":          snake.Right,
}

// buttonHeadings maps on-screen button ids to headings.
var buttonHeadings = map[string]snake.Heading{
	"up":    snake.Up,
	"down":  snake.Down,
	"left":  snake.Left,
	"right": snake.Right,
}

// Key returns the heading for a key name. Matching is case-insensitive.
func Key(name string) (snake.Heading, bool) {
	h, ok := keyHeadings[strings.ToLower(name)]
	return h, ok
}

// Button returns the heading for a directional button id.
func Button(id string) (snake.Heading, bool) {
	h, ok := buttonHeadings[id]
	return h, ok
}

// ButtonIDs lists the directional button ids in drawing order.
func ButtonIDs() []string {
	return []string{"up", "left", "right", "down"}
}
