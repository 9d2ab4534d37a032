package scheduler

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// RenderSink receives a frame after every step that did not end the session.
type RenderSink interface {
	Render(f snake.Frame)
}

// ScoreSink receives the score whenever it changes.
type ScoreSink interface {
	ShowScore(score int)
}

// GameOverSink is told once per session when it ends.
type GameOverSink interface {
	GameOver(r Result)
}

// Sinks are the outputs of a session. Nil sinks are skipped.
type Sinks struct {
	Render   RenderSink
	Score    ScoreSink
	GameOver GameOverSink
}

// Result describes a finished session.
type Result struct {
	SessionID uuid.UUID
	Score     int
	Length    int
	Ticks     int
	Duration  time.Duration
	Cleared   bool // Snake filled the board; no collision happened
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithSeed seeds food placement. Zero picks a time-based seed.
func WithSeed(seed int64) Option {
	return func(s *Scheduler) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSource sets the random source for food placement.
func WithSource(src rand.Source) Option {
	return func(s *Scheduler) {
		s.rng = rand.New(src)
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// WithNow overrides the wall clock used for session durations.
func WithNow(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// Scheduler runs one session at a time.
// It is not safe for concurrent use: Start, Stop, Steer and timer fires must
// all happen on the same goroutine, which QueuedClock guarantees for ticks.
type Scheduler struct {
	rules config.Rules
	tempo Tempo
	clock Clock
	sinks Sinks
	log   *log.Logger
	rng   *rand.Rand
	now   func() time.Time

	board    *snake.Board
	pending  snake.Heading
	interval time.Duration
	timer    Timer
	ticks    int
	session  uuid.UUID
	started  time.Time
}

// New creates an idle scheduler. Call Start to begin a session.
func New(rules config.Rules, clock Clock, sinks Sinks, opts ...Option) (*Scheduler, error) {
	if clock == nil {
		return nil, errors.New("scheduler: nil clock")
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	s := &Scheduler{
		rules: rules,
		tempo: TempoFromRules(rules.Tempo),
		clock: clock,
		sinks: sinks,
		log:   log.New(io.Discard),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		WithSeed(0)(s)
	}
	s.interval = s.tempo.Base
	return s, nil
}

// Start resets the session and arms the timer at the base tempo.
// A session already running is cancelled first.
func (s *Scheduler) Start() error {
	s.Stop()

	board, err := snake.NewBoard(s.rules.TileCount(), s.rules.StartPosition(), s.rules.Start.Heading, s.rng)
	if err != nil {
		return fmt.Errorf("scheduler: failed to reset board: %w", err)
	}

	s.board = board
	s.pending = s.rules.Start.Heading
	s.interval = s.tempo.Base
	s.ticks = 0
	s.session = uuid.New()
	s.started = s.now()

	s.log.Debug("session started", "session", s.session, "tempo", s.interval)

	s.showScore(0)
	s.render()
	s.timer = s.clock.Every(s.interval, s.tick)
	return nil
}

// Stop cancels the active timer. It is idempotent.
func (s *Scheduler) Stop() {
	if s.timer == nil {
		return
	}
	s.timer.Stop()
	s.timer = nil
}

// Steer sets the pending heading unless it reverses the heading applied on
// the last step. The latest accepted candidate wins. It returns whether the
// candidate was accepted.
func (s *Scheduler) Steer(h snake.Heading) bool {
	if !s.Running() || !h.Valid() || h.IsNeutral() {
		return false
	}
	if h.Reverses(s.board.Heading()) {
		return false
	}
	s.pending = h
	return true
}

// Running reports whether a session is in progress.
func (s *Scheduler) Running() bool {
	return s.timer != nil
}

// Tempo returns the current step interval.
func (s *Scheduler) Tempo() time.Duration {
	return s.interval
}

// Pending returns the heading the next step will apply.
func (s *Scheduler) Pending() snake.Heading {
	return s.pending
}

// SessionID returns the id of the current or last session.
func (s *Scheduler) SessionID() uuid.UUID {
	return s.session
}

// Frame returns the drawable state. Before the first session it holds only
// the tile count.
func (s *Scheduler) Frame() snake.Frame {
	if s.board == nil {
		return snake.Frame{Tiles: s.rules.TileCount()}
	}
	return s.board.Frame()
}

// Snapshot returns the board snapshot, or the zero value before the first session.
func (s *Scheduler) Snapshot() snake.Snapshot {
	if s.board == nil {
		return snake.Snapshot{}
	}
	return s.board.Snapshot()
}

// tick is the timer callback: one step, then the reaction to its outcome.
func (s *Scheduler) tick() {
	if s.board == nil || s.timer == nil {
		return
	}
	s.ticks++

	switch s.board.Step(s.pending) {
	case snake.Collision:
		s.finish(false)
		return

	case snake.Grew:
		s.showScore(s.board.Score())
		if s.board.Full() {
			s.render()
			s.finish(true)
			return
		}
		// Replace the timer; the old one is cancelled before the new one exists
		s.interval = s.tempo.Next(s.interval)
		s.timer.Stop()
		s.timer = s.clock.Every(s.interval, s.tick)
		s.log.Debug("tempo changed", "session", s.session, "score", s.board.Score(), "tempo", s.interval)
	}

	s.render()
}

func (s *Scheduler) finish(cleared bool) {
	s.Stop()

	res := Result{
		SessionID: s.session,
		Score:     s.board.Score(),
		Length:    s.board.Len(),
		Ticks:     s.ticks,
		Duration:  s.now().Sub(s.started),
		Cleared:   cleared,
	}
	s.log.Debug("session over", "session", res.SessionID, "score", res.Score, "ticks", res.Ticks, "cleared", res.Cleared)

	if s.sinks.GameOver != nil {
		s.sinks.GameOver.GameOver(res)
	}
}

func (s *Scheduler) render() {
	if s.sinks.Render != nil {
		s.sinks.Render.Render(s.board.Frame())
	}
}

func (s *Scheduler) showScore(score int) {
	if s.sinks.Score != nil {
		s.sinks.Score.ShowScore(score)
	}
}
