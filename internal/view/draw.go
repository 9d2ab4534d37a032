package view

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Cell glyphs, TileWidth runes each.
const (
	snakeGlyph = "██"
	foodGlyph  = "()"
)

// State is everything Draw needs besides the layout.
type State struct {
	Frame   snake.Frame
	Score   int
	Best    int
	Tempo   time.Duration
	Running bool
	Overlay []string // Modal message lines; empty hides the overlay
}

// Draw paints a full frame: HUD, board, snake, food, controls and overlay.
func Draw(dst *core.Screen, l Layout, st State, p config.Palette) {
	dst.Clear()

	if l.TooSmall {
		minW, minH := MinSize(l.Tiles)
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "Terminal too small", p.Text)
		dst.DrawTextCentered(mid, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, l.Width, l.Height), p.Text)
		return
	}

	drawHUD(dst, l, st, p)
	dst.DrawBox(l.Board, p.Border)

	if st.Frame.HasFood {
		x, y := l.TileCell(st.Frame.Food)
		dst.DrawTextColored(x, y, foodGlyph, p.Food)
	}

	// Tail first so the head wins on any overlap
	for i := len(st.Frame.Snake) - 1; i >= 0; i-- {
		c := p.Snake
		if i == 0 {
			c = p.Head
		}
		x, y := l.TileCell(st.Frame.Snake[i])
		dst.DrawTextColored(x, y, snakeGlyph, c)
	}

	drawButtons(dst, l, st, p)

	switch {
	case len(st.Overlay) > 0:
		drawOverlay(dst, l, st.Overlay, p)
	case !st.Running:
		in := l.Inner()
		hint := "Press Enter or click Start"
		dst.DrawTextColored(in.X+(in.W-len(hint))/2, in.Y+in.H/2, hint, p.Text)
	}
}

// ScoreText is the score line shown in the HUD.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func drawHUD(dst *core.Screen, l Layout, st State, p config.Palette) {
	hud := fmt.Sprintf("%s  Best: %d  Tempo: %s", ScoreText(st.Score), st.Best, st.Tempo)
	dst.DrawTextColored(l.HUD.X+1, l.HUD.Y, hud, p.Text)
}

// drawButtons draws the control panel. Start is hidden while a session runs.
func drawButtons(dst *core.Screen, l Layout, st State, p config.Palette) {
	for _, b := range l.Buttons {
		if b.ID == ButtonStart && st.Running {
			continue
		}
		dst.DrawTextColored(b.Rect.X, b.Rect.Y, b.Label, p.Text)
	}
	dst.DrawTextColored(l.Panel.X, l.Panel.Bottom()-1, "t: scores", core.ColorGray)
}

// drawOverlay draws a modal box centered on the board.
func drawOverlay(dst *core.Screen, l Layout, lines []string, p config.Palette) {
	maxLen := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}

	in := l.Inner()
	boxW := min(maxLen+4, in.W)
	boxH := len(lines) + 2
	box := core.NewRect(in.X+(in.W-boxW)/2, in.Y+(in.H-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, p.Border)
	for i, line := range lines {
		n := len([]rune(line))
		dst.DrawTextColored(box.X+(box.W-n)/2, box.Y+1+i, line, p.Text)
	}
}
