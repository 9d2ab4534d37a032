// Package view lays out and draws a snake session into a core.Screen.
// Nothing here knows about a terminal library; frontends only copy the
// screen buffer out and feed pointer coordinates back through Layout.
package view

import (
	"image"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// TileWidth is the number of terminal columns per board tile, which keeps
// tiles roughly square in a terminal font.
const TileWidth = 2

const (
	hudHeight  = 1
	panelGap   = 2
	panelWidth = 15
)

// Button ids. The directional ids match input.Button.
const (
	ButtonStart = "start"
	ButtonUp    = "up"
	ButtonLeft  = "left"
	ButtonRight = "right"
	ButtonDown  = "down"
)

// Button is a clickable on-screen control.
type Button struct {
	ID    string
	Label string
	Rect  core.Rect
}

// Layout places the HUD, board and control panel on a screen of a given size.
type Layout struct {
	Width    int
	Height   int
	Tiles    int
	GridSize int // canvas pixels per tile
	TooSmall bool

	HUD     core.Rect
	Board   core.Rect // Board frame, border included
	Panel   core.Rect
	Buttons []Button
}

// MinSize returns the smallest screen that fits a board of the given tile count.
func MinSize(tiles int) (w, h int) {
	return tiles*TileWidth + 2 + panelGap + panelWidth, hudHeight + tiles + 2
}

// NewLayout computes the layout for a width x height screen.
func NewLayout(width, height, tiles, gridSize int) Layout {
	l := Layout{
		Width:    width,
		Height:   height,
		Tiles:    tiles,
		GridSize: gridSize,
	}

	minW, minH := MinSize(tiles)
	if width < minW || height < minH {
		l.TooSmall = true
		return l
	}

	// Center the board and panel as one block
	x := (width - minW) / 2
	y := (height - minH) / 2

	l.HUD = core.NewRect(x, y, minW, hudHeight)
	l.Board = core.NewRect(x, y+hudHeight, tiles*TileWidth+2, tiles+2)
	l.Panel = core.NewRect(l.Board.Right()+panelGap, l.Board.Y, panelWidth, l.Board.H)

	px, py := l.Panel.X, l.Panel.Y
	l.Buttons = []Button{
		{ID: ButtonStart, Label: "[  Start  ]", Rect: core.NewRect(px+2, py+1, 11, 1)},
		{ID: ButtonUp, Label: "[ ^ ]", Rect: core.NewRect(px+5, py+4, 5, 1)},
		{ID: ButtonLeft, Label: "[ < ]", Rect: core.NewRect(px, py+5, 5, 1)},
		{ID: ButtonRight, Label: "[ > ]", Rect: core.NewRect(px+10, py+5, 5, 1)},
		{ID: ButtonDown, Label: "[ v ]", Rect: core.NewRect(px+5, py+6, 5, 1)},
	}
	return l
}

// Inner returns the rectangle of board tiles inside the frame.
func (l Layout) Inner() core.Rect {
	return core.NewRect(l.Board.X+1, l.Board.Y+1, l.Board.W-2, l.Board.H-2)
}

// TileCell returns the screen cell of the left half of tile p.
func (l Layout) TileCell(p snake.Position) (x, y int) {
	in := l.Inner()
	return in.X + p.X*TileWidth, in.Y + p.Y
}

// OnBoard reports whether the screen cell lies on a board tile.
func (l Layout) OnBoard(x, y int) bool {
	return !l.TooSmall && l.Inner().Contains(x, y)
}

// ButtonAt returns the id of the button covering the screen cell.
func (l Layout) ButtonAt(x, y int) (string, bool) {
	for _, b := range l.Buttons {
		if b.Rect.Contains(x, y) {
			return b.ID, true
		}
	}
	return "", false
}

// Button returns the button with the given id.
func (l Layout) Button(id string) (Button, bool) {
	for _, b := range l.Buttons {
		if b.ID == id {
			return b, true
		}
	}
	return Button{}, false
}

// CanvasPoint converts a screen cell to canvas pixels relative to the board
// origin, so pointer gestures can be measured against a pixel threshold.
// Points outside the board are extrapolated.
func (l Layout) CanvasPoint(x, y int) image.Point {
	in := l.Inner()
	return image.Pt((x-in.X)*l.GridSize/TileWidth, (y-in.Y)*l.GridSize)
}
