// Package tui is the Bubble Tea frontend. Each Model drives one cabinet; the
// scheduler's timers become tea.Tick commands so every step runs inside Update.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg delivers one fire for a scheduler timer.
type TickMsg struct {
	ID uint64
}

// tickQueue collects the tick commands the clock asks for during an Update.
// It is shared by every copy of a Model value.
type tickQueue struct {
	cmds []tea.Cmd
}

// arm is the scheduler.ArmFunc of the model's clock.
func (q *tickQueue) arm(id uint64, d time.Duration) {
	q.cmds = append(q.cmds, tickCmd(id, d))
}

// drain returns the queued commands as one and empties the queue.
func (q *tickQueue) drain() tea.Cmd {
	cmds := q.cmds
	q.cmds = nil
	return tea.Batch(cmds...)
}

// tickCmd returns a command that delivers a TickMsg for id after d.
func tickCmd(id uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{ID: id}
	})
}
