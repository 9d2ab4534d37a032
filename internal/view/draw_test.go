package view

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func testState() State {
	return State{
		Frame: snake.Frame{
			Tiles:   20,
			Snake:   []snake.Position{{X: 7, Y: 7}, {X: 6, Y: 7}},
			Food:    snake.Position{X: 0, Y: 0},
			HasFood: true,
			Score:   3,
		},
		Score:   3,
		Best:    9,
		Tempo:   185 * time.Millisecond,
		Running: true,
	}
}

func TestDrawBoard(t *testing.T) {
	p := config.DefaultPalette()
	l := NewLayout(80, 24, 20, 15)
	scr := core.NewScreen(80, 24)

	Draw(scr, l, testState(), p)

	if got := scr.Row(0); !strings.Contains(got, "Score: 3  Best: 9  Tempo: 185ms") {
		t.Errorf("HUD row = %q", got)
	}
	if c := scr.GetCell(10, 1); c.Rune != '┌' || c.Color != p.Border {
		t.Errorf("board corner = %+v", c)
	}

	tests := []struct {
		name  string
		x, y  int
		rune  rune
		color core.Color
	}{
		{"head", 25, 9, '█', p.Head},
		{"head right half", 26, 9, '█', p.Head},
		{"body", 23, 9, '█', p.Snake},
		{"food", 11, 2, '(', p.Food},
		{"food right half", 12, 2, ')', p.Food},
		{"empty tile", 30, 15, ' ', core.ColorDefault},
	}
	for _, tc := range tests {
		c := scr.GetCell(tc.x, tc.y)
		if c.Rune != tc.rune || c.Color != tc.color {
			t.Errorf("%s at (%d,%d) = %q/%v, expected %q/%v", tc.name, tc.x, tc.y, c.Rune, c.Color, tc.rune, tc.color)
		}
	}
}

func TestDrawStartButtonHiddenWhileRunning(t *testing.T) {
	p := config.DefaultPalette()
	l := NewLayout(80, 24, 20, 15)
	scr := core.NewScreen(80, 24)
	st := testState()

	Draw(scr, l, st, p)
	if strings.Contains(scr.Row(2), "Start") {
		t.Error("start button drawn while running")
	}
	if !strings.Contains(scr.Row(5), "[ ^ ]") {
		t.Errorf("up button missing: %q", scr.Row(5))
	}

	st.Running = false
	Draw(scr, l, st, p)
	if !strings.Contains(scr.Row(2), "Start") {
		t.Error("start button missing while idle")
	}
	if !strings.Contains(scr.String(), "Press Enter or click Start") {
		t.Error("idle hint missing")
	}
}

func TestDrawOverlay(t *testing.T) {
	p := config.DefaultPalette()
	l := NewLayout(80, 24, 20, 15)
	scr := core.NewScreen(80, 24)
	st := testState()
	st.Running = false
	st.Overlay = []string{"Game over! Your score: 3", "Press Enter"}

	Draw(scr, l, st, p)

	out := scr.String()
	if !strings.Contains(out, "Game over! Your score: 3") || !strings.Contains(out, "Press Enter") {
		t.Errorf("overlay text missing:\n%s", out)
	}
	if strings.Contains(out, "click Start") {
		t.Error("idle hint drawn under the overlay")
	}
}

func TestDrawTooSmall(t *testing.T) {
	l := NewLayout(40, 10, 20, 15)
	scr := core.NewScreen(40, 10)

	Draw(scr, l, testState(), config.DefaultPalette())

	out := scr.String()
	if !strings.Contains(out, "Terminal too small") || !strings.Contains(out, "Need 59x23, have 40x10") {
		t.Errorf("resize message missing:\n%s", out)
	}
	if strings.Contains(out, "█") {
		t.Error("board drawn on a screen that is too small")
	}
}

func TestScoreText(t *testing.T) {
	if got := ScoreText(12); got != "Score: 12" {
		t.Errorf("ScoreText(12) = %q", got)
	}
}
