// Package config provides the fixed game rules, compiled in from YAML, and
// the runtime application config loaded from disk.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

//go:embed defaults/rules.yaml
var defaultRulesYAML []byte

// ErrInvalidRules is wrapped by every rules validation failure.
var ErrInvalidRules = errors.New("config: invalid rules")

// Rules are the fixed game constants. They are not runtime configurable.
type Rules struct {
	GridSize       int        `yaml:"grid_size"`
	CanvasSize     int        `yaml:"canvas_size"`
	Start          StartRules `yaml:"start"`
	Tempo          TempoRules `yaml:"tempo"`
	SwipeThreshold int        `yaml:"swipe_threshold"`
}

// StartRules defines where a session begins.
type StartRules struct {
	X       int           `yaml:"x"`
	Y       int           `yaml:"y"`
	Heading snake.Heading `yaml:"heading"`
}

// TempoRules defines the speed ramp: the step interval starts at Base and
// drops by Step per food, never below Floor.
type TempoRules struct {
	Base  time.Duration `yaml:"base"`
	Step  time.Duration `yaml:"step"`
	Floor time.Duration `yaml:"floor"`
}

// DefaultRules returns the hardcoded rules, used if the embedded YAML is unusable.
func DefaultRules() Rules {
	return Rules{
		GridSize:   15,
		CanvasSize: 300,
		Start: StartRules{
			X:       7,
			Y:       7,
			Heading: snake.Right,
		},
		Tempo: TempoRules{
			Base:  200 * time.Millisecond,
			Step:  5 * time.Millisecond,
			Floor: 50 * time.Millisecond,
		},
		SwipeThreshold: 30,
	}
}

// LoadRules returns the compiled-in rules.
// Falls back to DefaultRules if the embedded YAML fails to parse or validate.
func LoadRules() Rules {
	r, err := ParseRules(defaultRulesYAML)
	if err != nil {
		return DefaultRules()
	}
	return r
}

// ParseRules decodes and validates rules YAML. Unknown keys are rejected.
func ParseRules(data []byte) (Rules, error) {
	var r Rules
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		return Rules{}, fmt.Errorf("config: failed to parse rules: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

// TileCount returns the board edge length in tiles.
func (r Rules) TileCount() int {
	if r.GridSize <= 0 {
		return 0
	}
	return r.CanvasSize / r.GridSize
}

// StartPosition returns the head position of a fresh snake.
func (r Rules) StartPosition() snake.Position {
	return snake.Position{X: r.Start.X, Y: r.Start.Y}
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	switch {
	case r.GridSize <= 0:
		return fmt.Errorf("%w: grid_size must be positive, got %d", ErrInvalidRules, r.GridSize)
	case r.TileCount() < 2:
		return fmt.Errorf("%w: canvas_size %d gives fewer than 2 tiles", ErrInvalidRules, r.CanvasSize)
	case r.Start.X < 0 || r.Start.X >= r.TileCount() || r.Start.Y < 0 || r.Start.Y >= r.TileCount():
		return fmt.Errorf("%w: start (%d,%d) is off the %d tile board", ErrInvalidRules, r.Start.X, r.Start.Y, r.TileCount())
	case r.Tempo.Floor <= 0:
		return fmt.Errorf("%w: tempo floor must be positive, got %s", ErrInvalidRules, r.Tempo.Floor)
	case r.Tempo.Base < r.Tempo.Floor:
		return fmt.Errorf("%w: tempo base %s is below floor %s", ErrInvalidRules, r.Tempo.Base, r.Tempo.Floor)
	case r.Tempo.Step < 0:
		return fmt.Errorf("%w: tempo step must not be negative, got %s", ErrInvalidRules, r.Tempo.Step)
	case r.SwipeThreshold < 0:
		return fmt.Errorf("%w: swipe_threshold must not be negative", ErrInvalidRules)
	}
	return nil
}
