// Package term is the tcell frontend. It runs the same cabinet as the Bubble
// Tea frontend but owns the event loop itself: scheduler timers are
// time.AfterFunc goroutines that hand their id back to the loop, so every
// step still runs on the loop goroutine.
package term

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/cabinet"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/scheduler"
	"github.com/vovakirdan/tui-snake/internal/storage"
	"github.com/vovakirdan/tui-snake/internal/view"
)

// Frontend drives a cabinet on a tcell screen.
type Frontend struct {
	screen tcell.Screen
	cab    *cabinet.Cabinet
	clock  *scheduler.QueuedClock
	cfg    cabinet.Config
	log    *log.Logger
	styles map[core.Color]tcell.Style

	ticks chan uint64
	done  chan struct{}

	runs    *core.Screen // Run log page, non-nil while shown
	pointer bool         // Primary button held
}

// New creates a frontend on an initialized screen.
func New(screen tcell.Screen, cfg cabinet.Config, opts ...scheduler.Option) (*Frontend, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	f := &Frontend{
		screen: screen,
		cfg:    cfg,
		log:    logger,
		styles: buildStyles(),
		ticks:  make(chan uint64, 16),
		done:   make(chan struct{}),
	}
	f.clock = scheduler.NewQueuedClock(f.arm)

	cfg.Width, cfg.Height = screen.Size()
	cab, err := cabinet.New(cfg, f.clock, opts...)
	if err != nil {
		return nil, err
	}
	f.cab = cab
	return f, nil
}

// Play opens the terminal and runs the game until the player quits or ctx ends.
func Play(ctx context.Context, cfg cabinet.Config, opts ...scheduler.Option) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: cannot init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	f, err := New(screen, cfg, opts...)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Run(ctx)
}

// arm is the scheduler.ArmFunc: the fire comes back through f.ticks.
func (f *Frontend) arm(id uint64, d time.Duration) {
	time.AfterFunc(d, func() {
		select {
		case f.ticks <- id:
		case <-f.done:
		}
	})
}

// Run is the event loop. It returns when the player quits, the screen
// stops delivering events or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go f.screen.ChannelEvents(events, quit)
	defer close(quit)

	f.draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case id := <-f.ticks:
			f.clock.Fire(id)

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if f.handle(ev) {
				return nil
			}
		}
		f.draw()
	}
}

// Close stops the session and releases pending timer goroutines.
func (f *Frontend) Close() {
	f.cab.Close()
	select {
	case <-f.done:
	default:
		close(f.done)
	}
}

// Cabinet returns the frontend's cabinet.
func (f *Frontend) Cabinet() *cabinet.Cabinet {
	return f.cab
}

// handle applies one event and reports whether the player asked to quit.
func (f *Frontend) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		f.cab.Resize(w, h)
		if f.runs != nil {
			f.openRuns()
		}
		f.screen.Sync()

	case *tcell.EventKey:
		return f.handleKey(ev)

	case *tcell.EventMouse:
		f.handleMouse(ev)
	}
	return false
}

// keyNames maps tcell special keys to input router names.
var keyNames = map[tcell.Key]string{
	tcell.KeyUp:    "up",
	tcell.KeyDown:  "down",
	tcell.KeyLeft:  "left",
	tcell.KeyRight: "right",
}

// keyAction maps a key event to a control action.
func keyAction(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyEnter:
		return core.ActionConfirm
	case tcell.KeyEsc:
		return core.ActionBack
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return core.ActionQuit
		case ' ':
			return core.ActionConfirm
		case 't':
			return core.ActionScores
		case 'b':
			return core.ActionBack
		}
	}
	return core.ActionNone
}

func (f *Frontend) handleKey(ev *tcell.EventKey) bool {
	action := keyAction(ev)
	if action == core.ActionQuit {
		return true
	}

	if f.runs != nil {
		switch action {
		case core.ActionBack, core.ActionConfirm, core.ActionScores:
			f.runs = nil
		}
		return false
	}

	switch action {
	case core.ActionConfirm:
		f.cab.Do(action)
	case core.ActionScores:
		// The run log only opens between sessions
		if !f.cab.Running() {
			f.openRuns()
		}
	case core.ActionNone:
		if name, ok := keyNames[ev.Key()]; ok {
			f.cab.Key(name)
		} else if ev.Key() == tcell.KeyRune {
			f.cab.Key(string(ev.Rune()))
		}
	}
	return false
}

// handleMouse turns button edges into press, drag and release.
func (f *Frontend) handleMouse(ev *tcell.EventMouse) {
	if f.runs != nil {
		return
	}

	x, y := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0
	switch {
	case held && !f.pointer:
		f.pointer = true
		f.cab.Press(x, y)
	case held:
		f.cab.Drag(x, y)
	case f.pointer:
		f.pointer = false
		f.cab.Release()
	}
}

// openRuns renders the run log page.
func (f *Frontend) openRuns() {
	w, h := f.screen.Size()
	page := core.NewScreen(w, h)
	var (
		runs  []storage.Run
		stats storage.Stats
		err   error
	)
	if store := f.cab.Store(); store != nil {
		if runs, err = store.TopRuns(h); err != nil {
			f.log.Warn("cannot load runs", "err", err)
		}
		if stats, err = store.Stats(); err != nil {
			f.log.Warn("cannot load stats", "err", err)
		}
	}
	view.DrawRuns(page, runs, stats, f.cfg.Palette)
	f.runs = page
}

// draw copies the current page to the terminal.
func (f *Frontend) draw() {
	src := f.runs
	if src == nil {
		src = f.cab.Paint()
	}

	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			cell := src.GetCell(x, y)
			f.screen.SetContent(x, y, cell.Rune, nil, f.styles[cell.Color])
		}
	}
	f.screen.Show()
}

// buildStyles maps core colors onto the terminal palette.
func buildStyles() map[core.Color]tcell.Style {
	styles := make(map[core.Color]tcell.Style)
	for _, c := range core.Colors() {
		style := tcell.StyleDefault
		if idx := c.ANSI(); idx >= 0 {
			style = style.Foreground(tcell.PaletteColor(idx))
		}
		styles[c] = style
	}
	return styles
}
