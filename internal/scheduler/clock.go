package scheduler

import "time"

// Timer is a handle to a repeating callback.
type Timer interface {
	// Stop cancels the timer. After Stop returns the callback never runs again.
	// Calling Stop more than once is harmless.
	Stop()
}

// Clock starts repeating timers.
type Clock interface {
	// Every runs fn every d until the returned Timer is stopped.
	Every(d time.Duration, fn func()) Timer
}

// ArmFunc asks a frontend to deliver one fire for the timer id after d.
// The frontend answers by calling QueuedClock.Fire(id) on its loop goroutine.
type ArmFunc func(id uint64, d time.Duration)

// QueuedClock is a Clock for event-loop frontends. Timers never run on their
// own goroutine: each arm request is turned into a message by the frontend
// and handed back through Fire. Every timer gets a fresh id, so fires that
// were already in flight for a stopped or replaced timer are dropped.
//
// QueuedClock is not safe for concurrent use; call it from the loop goroutine.
type QueuedClock struct {
	arm    ArmFunc
	nextID uint64
	timers map[uint64]*queuedTimer
}

type queuedTimer struct {
	clock    *QueuedClock
	id       uint64
	interval time.Duration
	fn       func()
}

// NewQueuedClock creates a clock that forwards arm requests to arm.
func NewQueuedClock(arm ArmFunc) *QueuedClock {
	return &QueuedClock{
		arm:    arm,
		timers: make(map[uint64]*queuedTimer),
	}
}

// Every implements Clock.
func (c *QueuedClock) Every(d time.Duration, fn func()) Timer {
	c.nextID++
	t := &queuedTimer{
		clock:    c,
		id:       c.nextID,
		interval: d,
		fn:       fn,
	}
	c.timers[t.id] = t
	c.arm(t.id, d)
	return t
}

// Fire runs the callback of timer id and re-arms it if the callback left it
// active. It returns false, doing nothing, for unknown or stopped ids.
func (c *QueuedClock) Fire(id uint64) bool {
	t, ok := c.timers[id]
	if !ok {
		return false
	}
	t.fn()
	if _, still := c.timers[id]; still {
		c.arm(id, t.interval)
	}
	return true
}

// Active returns the number of armed timers.
func (c *QueuedClock) Active() int {
	return len(c.timers)
}

// Stop implements Timer.
func (t *queuedTimer) Stop() {
	delete(t.clock.timers, t.id)
}
