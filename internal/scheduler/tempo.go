// Package scheduler drives a snake session in time. It owns the single
// session object, applies the pending heading once per tick and keeps exactly
// one repeating timer armed at the current tempo.
package scheduler

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Tempo is the speed ramp: the step interval starts at Base, drops by Step
// for every food eaten and never goes below Floor.
type Tempo struct {
	Base  time.Duration
	Step  time.Duration
	Floor time.Duration
}

// TempoFromRules builds the ramp from the rules' tempo section.
func TempoFromRules(r config.TempoRules) Tempo {
	return Tempo{Base: r.Base, Step: r.Step, Floor: r.Floor}
}

// Next returns the interval that follows cur after one more food.
func (t Tempo) Next(cur time.Duration) time.Duration {
	return t.clamp(cur - t.Step)
}

// At returns the interval for a given score.
func (t Tempo) At(score int) time.Duration {
	if score <= 0 {
		return t.clamp(t.Base)
	}
	// Past this many foods the ramp is pinned at the floor anyway
	if t.Step > 0 && score > int((t.Base-t.Floor)/t.Step)+1 {
		return t.Floor
	}
	return t.clamp(t.Base - time.Duration(score)*t.Step)
}

func (t Tempo) clamp(d time.Duration) time.Duration {
	if d < t.Floor {
		return t.Floor
	}
	return d
}
