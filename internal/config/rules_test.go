package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestEmbeddedRulesMatchDefaults(t *testing.T) {
	r, err := ParseRules(defaultRulesYAML)
	if err != nil {
		t.Fatalf("embedded rules do not parse: %v", err)
	}
	if r != DefaultRules() {
		t.Errorf("embedded rules %+v differ from DefaultRules %+v", r, DefaultRules())
	}
	if LoadRules() != r {
		t.Error("LoadRules should return the embedded rules")
	}
}

func TestRulesDerivedValues(t *testing.T) {
	r := DefaultRules()

	if got := r.TileCount(); got != 20 {
		t.Errorf("TileCount() = %d, expected 20", got)
	}
	if got := r.StartPosition(); got != (snake.Position{X: 7, Y: 7}) {
		t.Errorf("StartPosition() = %v", got)
	}
	if r.Start.Heading != snake.Right {
		t.Errorf("start heading = %v, expected right", r.Start.Heading)
	}
	if r.Tempo.Base != 200*time.Millisecond || r.Tempo.Step != 5*time.Millisecond || r.Tempo.Floor != 50*time.Millisecond {
		t.Errorf("tempo = %+v", r.Tempo)
	}
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Rules)
	}{
		{"zero grid", func(r *Rules) { r.GridSize = 0 }},
		{"tiny canvas", func(r *Rules) { r.CanvasSize = 15 }},
		{"start off board", func(r *Rules) { r.Start.X = 20 }},
		{"negative start", func(r *Rules) { r.Start.Y = -1 }},
		{"zero floor", func(r *Rules) { r.Tempo.Floor = 0 }},
		{"base below floor", func(r *Rules) { r.Tempo.Base = 10 * time.Millisecond }},
		{"negative step", func(r *Rules) { r.Tempo.Step = -time.Millisecond }},
		{"negative swipe", func(r *Rules) { r.SwipeThreshold = -1 }},
	}

	if err := DefaultRules().Validate(); err != nil {
		t.Fatalf("default rules invalid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := DefaultRules()
			tc.mutate(&r)
			if err := r.Validate(); !errors.Is(err, ErrInvalidRules) {
				t.Errorf("Validate() = %v, expected ErrInvalidRules", err)
			}
		})
	}
}

func TestParseRulesRejectsUnknownKeys(t *testing.T) {
	data := string(defaultRulesYAML) + "\nlives: 3\n"
	if _, err := ParseRules([]byte(data)); err == nil {
		t.Error("unknown key should be rejected")
	}
}

func TestParseRulesRejectsBadHeading(t *testing.T) {
	data := strings.Replace(string(defaultRulesYAML), "heading: right", "heading: sideways", 1)
	if _, err := ParseRules([]byte(data)); err == nil {
		t.Error("bad start heading should be rejected")
	}
}
