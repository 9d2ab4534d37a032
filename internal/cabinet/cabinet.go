// Package cabinet is the platform-neutral controller of one player's screen.
// It owns the scheduler and input router, turns scheduler output into view
// state, records finished runs and handles the start and game-over controls.
// Frontends translate their events into Cabinet calls and copy Paint's
// screen out; all calls must come from a single goroutine.
package cabinet

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/scheduler"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
	"github.com/vovakirdan/tui-snake/internal/view"
)

// Config configures a Cabinet.
type Config struct {
	Rules   config.Rules
	Palette config.Palette
	Player  string         // Recorded with each run
	Store   *storage.Store // Optional run log
	Logger  *log.Logger
	Seed    int64 // Zero picks a time-based seed
	Width   int
	Height  int
}

// Cabinet runs sessions for one player.
type Cabinet struct {
	rules   config.Rules
	palette config.Palette
	player  string
	store   *storage.Store
	log     *log.Logger

	sched  *scheduler.Scheduler
	router *input.Router
	layout view.Layout
	screen *core.Screen

	frame    snake.Frame
	score    int
	best     int
	armed    bool     // Start control enabled
	overlay  []string // Game-over acknowledgement, modal while set
	pointer  bool     // Pointer is down on the board
	last     scheduler.Result
	finished int
}

// New creates a cabinet with the start control armed. Extra scheduler
// options are applied after the seed.
func New(cfg Config, clock scheduler.Clock, opts ...scheduler.Option) (*Cabinet, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Cabinet{
		rules:   cfg.Rules,
		palette: cfg.Palette,
		player:  cfg.Player,
		store:   cfg.Store,
		log:     logger,
		screen:  core.NewScreen(cfg.Width, cfg.Height),
		armed:   true,
	}

	schedOpts := append([]scheduler.Option{
		scheduler.WithSeed(cfg.Seed),
		scheduler.WithLogger(logger),
	}, opts...)
	sched, err := scheduler.New(cfg.Rules, clock, scheduler.Sinks{Render: c, Score: c, GameOver: c}, schedOpts...)
	if err != nil {
		return nil, fmt.Errorf("cabinet: %w", err)
	}
	c.sched = sched
	c.router = input.NewRouter(sched, cfg.Rules.SwipeThreshold)
	c.frame = sched.Frame()
	c.layout = view.NewLayout(cfg.Width, cfg.Height, cfg.Rules.TileCount(), cfg.Rules.GridSize)
	c.refreshBest()
	return c, nil
}

// Render implements scheduler.RenderSink.
func (c *Cabinet) Render(f snake.Frame) {
	c.frame = f
}

// ShowScore implements scheduler.ScoreSink.
func (c *Cabinet) ShowScore(score int) {
	c.score = score
}

// GameOver implements scheduler.GameOverSink. It records the run and raises
// the acknowledgement overlay; the start control stays disabled until the
// overlay is acknowledged.
func (c *Cabinet) GameOver(res scheduler.Result) {
	c.last = res
	c.finished++
	c.frame = c.sched.Frame()
	c.pointer = false
	c.router.TouchEnd()

	personal := res.Score
	if c.store != nil {
		_, err := c.store.Record(storage.Run{
			SessionID: res.SessionID.String(),
			Player:    c.player,
			Score:     res.Score,
			Length:    res.Length,
			Ticks:     res.Ticks,
			Duration:  res.Duration,
			Cleared:   res.Cleared,
		})
		if err != nil {
			c.log.Warn("failed to record run", "session", res.SessionID, "err", err)
		}
		if pb, err := c.store.PlayerBest(c.player); err == nil {
			personal = max(personal, pb)
		}
	}
	if res.Score > c.best {
		c.best = res.Score
	}
	c.refreshBest()

	c.log.Info("run finished",
		"session", res.SessionID,
		"player", c.player,
		"score", res.Score,
		"ticks", res.Ticks,
		"cleared", res.Cleared,
		"personal_best", personal,
	)

	headline := fmt.Sprintf("Game over! Your score: %d", res.Score)
	if res.Cleared {
		headline = fmt.Sprintf("Board cleared! Your score: %d", res.Score)
	}
	c.overlay = []string{headline, "Press Enter to continue"}
	c.armed = false
}

// Do applies a control action and reports whether it changed anything.
// Quit, scores and back belong to the frontend and are ignored here.
func (c *Cabinet) Do(a core.Action) bool {
	switch a {
	case core.ActionStart:
		return c.start()
	case core.ActionConfirm:
		if len(c.overlay) > 0 {
			c.overlay = nil
			c.armed = true
			return true
		}
		return c.start()
	}
	return false
}

// start begins a session if the start control is armed.
func (c *Cabinet) start() bool {
	if !c.armed || len(c.overlay) > 0 || c.sched.Running() {
		return false
	}
	if err := c.sched.Start(); err != nil {
		c.log.Error("failed to start session", "err", err)
		return false
	}
	c.armed = false
	c.log.Debug("session started", "session", c.sched.SessionID(), "player", c.player)
	return true
}

// Key steers by key name and reports whether the heading was accepted.
func (c *Cabinet) Key(name string) bool {
	return c.router.Key(name)
}

// Press handles a pointer press at a screen cell: buttons are clicked,
// presses on the board begin a swipe.
func (c *Cabinet) Press(x, y int) bool {
	if id, ok := c.layout.ButtonAt(x, y); ok {
		if id == view.ButtonStart {
			return c.Do(core.ActionStart)
		}
		return c.router.Button(id)
	}
	if c.layout.OnBoard(x, y) {
		c.pointer = true
		c.router.TouchStart(c.layout.CanvasPoint(x, y))
	}
	return false
}

// Drag samples an ongoing swipe and reports whether it steered.
func (c *Cabinet) Drag(x, y int) bool {
	if !c.pointer {
		return false
	}
	return c.router.TouchMove(c.layout.CanvasPoint(x, y))
}

// Release ends the pointer gesture.
func (c *Cabinet) Release() {
	c.pointer = false
	c.router.TouchEnd()
}

// Resize adapts the screen and layout to a new terminal size.
func (c *Cabinet) Resize(width, height int) {
	c.screen.Resize(width, height)
	c.layout = view.NewLayout(width, height, c.rules.TileCount(), c.rules.GridSize)
}

// Paint draws the current state and returns the screen buffer.
func (c *Cabinet) Paint() *core.Screen {
	view.Draw(c.screen, c.layout, view.State{
		Frame:   c.frame,
		Score:   c.score,
		Best:    c.best,
		Tempo:   c.sched.Tempo(),
		Running: c.sched.Running(),
		Overlay: c.overlay,
	}, c.palette)
	return c.screen
}

// Close stops any running session.
func (c *Cabinet) Close() {
	c.sched.Stop()
}

// Running reports whether a session is in progress.
func (c *Cabinet) Running() bool {
	return c.sched.Running()
}

// Armed reports whether the start control is enabled.
func (c *Cabinet) Armed() bool {
	return c.armed
}

// Overlay returns the acknowledgement lines, empty when none is shown.
func (c *Cabinet) Overlay() []string {
	return c.overlay
}

// Score returns the score of the current or last session.
func (c *Cabinet) Score() int {
	return c.score
}

// Best returns the best score known to this cabinet.
func (c *Cabinet) Best() int {
	return c.best
}

// LastResult returns the most recent finished session.
func (c *Cabinet) LastResult() (scheduler.Result, bool) {
	return c.last, c.finished > 0
}

// Store returns the run log, which may be nil.
func (c *Cabinet) Store() *storage.Store {
	return c.store
}

// Player returns the player name.
func (c *Cabinet) Player() string {
	return c.player
}

// refreshBest pulls the best score from the run log.
func (c *Cabinet) refreshBest() {
	if c.store == nil {
		return
	}
	best, err := c.store.Best()
	if err != nil {
		c.log.Warn("failed to read best score", "err", err)
		return
	}
	if best > c.best {
		c.best = best
	}
}
