package scheduler

import (
	"testing"
	"time"
)

type arming struct {
	id uint64
	d  time.Duration
}

func newRecordingClock() (*QueuedClock, *[]arming) {
	var armed []arming
	c := NewQueuedClock(func(id uint64, d time.Duration) {
		armed = append(armed, arming{id: id, d: d})
	})
	return c, &armed
}

func TestQueuedClockRearmsAfterFire(t *testing.T) {
	c, armed := newRecordingClock()
	calls := 0
	timer := c.Every(100*time.Millisecond, func() { calls++ })

	if len(*armed) != 1 || (*armed)[0].d != 100*time.Millisecond {
		t.Fatalf("expected one arm at 100ms, got %+v", *armed)
	}
	id := (*armed)[0].id

	for i := 0; i < 3; i++ {
		if !c.Fire(id) {
			t.Fatalf("Fire(%d) dropped on round %d", id, i)
		}
	}
	if calls != 3 {
		t.Errorf("callback ran %d times, expected 3", calls)
	}
	if len(*armed) != 4 {
		t.Errorf("expected 4 arm requests, got %d", len(*armed))
	}

	timer.Stop()
	if c.Fire(id) {
		t.Error("fire after Stop should be dropped")
	}
	if calls != 3 {
		t.Error("callback ran after Stop")
	}
	timer.Stop()
	if c.Active() != 0 {
		t.Errorf("Active() = %d, expected 0", c.Active())
	}
}

func TestQueuedClockStopInsideCallback(t *testing.T) {
	c, armed := newRecordingClock()
	var timer Timer
	timer = c.Every(time.Second, func() { timer.Stop() })

	c.Fire((*armed)[0].id)
	if len(*armed) != 1 {
		t.Errorf("timer stopped in its callback was re-armed: %+v", *armed)
	}
}

func TestQueuedClockReplaceDropsStaleFire(t *testing.T) {
	c, armed := newRecordingClock()
	var old Timer
	replaced := false
	old = c.Every(200*time.Millisecond, func() {
		old.Stop()
		c.Every(195*time.Millisecond, func() {})
		replaced = true
	})
	oldID := (*armed)[0].id

	c.Fire(oldID)
	if !replaced {
		t.Fatal("callback did not run")
	}
	if c.Active() != 1 {
		t.Fatalf("Active() = %d, expected exactly one timer", c.Active())
	}
	last := (*armed)[len(*armed)-1]
	if last.id == oldID || last.d != 195*time.Millisecond {
		t.Errorf("expected fresh id armed at 195ms, got %+v", last)
	}
	if c.Fire(oldID) {
		t.Error("in-flight fire for the replaced timer should be dropped")
	}
}
