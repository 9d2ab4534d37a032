package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/cabinet"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/scheduler"
)

// helpHeight is the number of rows under the game screen used by the help line.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one player.
type Model struct {
	cab    *cabinet.Cabinet
	clock  *scheduler.QueuedClock
	ticks  *tickQueue
	keys   KeyMap
	help   help.Model
	scores *ScoreboardModel // Non-nil while the run log is shown
	width  int
	height int

	quitting bool
}

// NewModel creates a model around a new cabinet. cfg.Width and cfg.Height
// are the full terminal size.
func NewModel(cfg cabinet.Config, opts ...scheduler.Option) (Model, error) {
	ticks := &tickQueue{}
	clock := scheduler.NewQueuedClock(ticks.arm)

	width, height := cfg.Width, cfg.Height
	cfg.Height = max(0, height-helpHeight)
	cab, err := cabinet.New(cfg, clock, opts...)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = width

	return Model{
		cab:    cab,
		clock:  clock,
		ticks:  ticks,
		keys:   DefaultKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}, nil
}

// Init implements tea.Model. The session waits for the start control.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case TickMsg:
		m.clock.Fire(msg.ID)

	case tea.WindowSizeMsg:
		m = m.handleResize(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	// Ticks the clock asked for while handling msg
	return m, tea.Batch(cmd, m.ticks.drain())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.scores != nil {
		return m.updateScores(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Start):
		m.cab.Do(core.ActionConfirm)

	case key.Matches(msg, m.keys.Scores):
		// The run log only opens between sessions
		if !m.cab.Running() {
			sb := NewScoreboardModel(m.cab.Store(), m.width, m.height)
			m.scores = &sb
		}

	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right):
		m.cab.Key(msg.String())
	}

	return m, nil
}

// updateScores forwards a message to the open scoreboard.
func (m Model) updateScores(msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case sb.IsQuitting():
		return m.quit()
	case sb.IsGoingBack():
		m.scores = nil
	default:
		m.scores = &sb
	}
	return m, cmd
}

// handleMouse turns presses into clicks and swipes.
func (m Model) handleMouse(msg tea.MouseMsg) {
	if m.scores != nil {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.cab.Press(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			m.cab.Drag(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		m.cab.Release()
	}
}

// handleResize processes window resize events. The session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.cab.Resize(msg.Width, max(0, msg.Height-helpHeight))

	if m.scores != nil {
		m, _ = m.updateScores(msg)
	}
	return m
}

func (m Model) quit() (Model, tea.Cmd) {
	m.cab.Close()
	m.quitting = true
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	return RenderScreen(m.cab.Paint()) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Cabinet returns the model's cabinet.
func (m Model) Cabinet() *cabinet.Cabinet {
	return m.cab
}

// Run starts the Bubble Tea program on the local terminal and blocks until
// the player quits.
func Run(cfg cabinet.Config, opts ...scheduler.Option) error {
	model, err := NewModel(cfg, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks and drags for buttons and swipes
	)

	_, err = p.Run()
	return err
}
