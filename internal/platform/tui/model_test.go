package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/cabinet"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/scheduler"
	"github.com/vovakirdan/tui-snake/internal/storage"
	"github.com/vovakirdan/tui-snake/internal/view"
)

type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64) {}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(cabinet.Config{
		Rules:   config.DefaultRules(),
		Palette: config.DefaultPalette(),
		Player:  "tester",
		Store:   store,
		Width:   80,
		Height:  25,
	}, scheduler.WithSource(zeroSource{}))
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestEnterStartsAndQueuesTick(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Cabinet().Running() {
		t.Fatal("enter should start a session")
	}
	if cmd == nil {
		t.Fatal("start should queue a tick command")
	}

	m, _ = update(t, m, TickMsg{ID: 1})
	if got := m.Cabinet().Paint().GetCell(27, 9).Rune; got != '█' {
		t.Errorf("head not drawn at (8,7) after one tick, got %q", got)
	}

	// Stale ids from an older timer do nothing
	m, cmd = update(t, m, TickMsg{ID: 99})
	if cmd != nil {
		t.Error("stale tick should not re-arm anything")
	}
}

func TestArrowKeysSteer(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, TickMsg{ID: 1})

	// Head moved from (7,7) to (7,6)
	if got := m.Cabinet().Paint().GetCell(25, 8).Rune; got != '█' {
		t.Errorf("snake did not turn up, cell = %q", got)
	}
}

func TestGameOverFlow(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m, _ = update(t, m, keyRune(' '))
	for i := 0; i < 13; i++ {
		m, _ = update(t, m, TickMsg{ID: 1})
	}

	if !strings.Contains(m.View(), "Game over! Your score: 0") {
		t.Fatal("game over overlay missing")
	}

	// Scoreboard opens between sessions and lists the run
	m, _ = update(t, m, keyRune('t'))
	out := m.View()
	if !strings.Contains(out, "TOP RUNS") || !strings.Contains(out, "tester") {
		t.Errorf("scoreboard view:\n%s", out)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if strings.Contains(m.View(), "TOP RUNS") {
		t.Error("esc should close the scoreboard")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Cabinet().Running() || !m.Cabinet().Armed() {
		t.Error("first enter should only acknowledge the game over")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Cabinet().Running() {
		t.Error("second enter should start a new session")
	}
}

func TestScoresIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, keyRune('t'))

	if strings.Contains(m.View(), "TOP RUNS") {
		t.Error("scoreboard opened during a session")
	}
}

func TestMouseClickStart(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 25})

	l := view.NewLayout(80, 24, 20, 15)
	btn, _ := l.Button(view.ButtonStart)
	m, cmd := update(t, m, tea.MouseMsg{X: btn.Rect.X, Y: btn.Rect.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if !m.Cabinet().Running() || cmd == nil {
		t.Fatal("clicking start should start a session")
	}

	// Swipe up on the board: three rows is 45 canvas pixels
	in := l.Inner()
	m, _ = update(t, m, tea.MouseMsg{X: in.X + 4, Y: in.Y + 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: in.X + 4, Y: in.Y + 9, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: in.X + 4, Y: in.Y + 9, Action: tea.MouseActionRelease})
	m, _ = update(t, m, TickMsg{ID: 1})

	if got := m.Cabinet().Paint().GetCell(25, 8).Rune; got != '█' {
		t.Errorf("swipe did not turn the snake up, cell = %q", got)
	}
}

func TestQuitStopsSession(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, keyRune('q'))

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.Cabinet().Running() {
		t.Error("quit left the session running")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}
