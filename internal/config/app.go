package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Backend names accepted by play.backend.
const (
	BackendTea   = "tea"
	BackendTcell = "tcell"
)

// AppConfig is the runtime configuration. It covers logging, the frontend,
// the SSH server and colors; game rules are fixed and live in Rules.
type AppConfig struct {
	Log    LogConfig    `yaml:"log"`
	Play   PlayConfig   `yaml:"play"`
	Server ServerConfig `yaml:"server"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // play mode logs here; empty discards
}

// PlayConfig controls the local frontend.
type PlayConfig struct {
	Backend string `yaml:"backend"` // "tea" or "tcell"
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // empty means ~/.snake/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// ThemeConfig names the colors used for each element.
type ThemeConfig struct {
	Snake  string `yaml:"snake"`
	Head   string `yaml:"head"`
	Food   string `yaml:"food"`
	Border string `yaml:"border"`
	Text   string `yaml:"text"`
}

// Palette is a resolved theme.
type Palette struct {
	Snake  core.Color
	Head   core.Color
	Food   core.Color
	Border core.Color
	Text   core.Color
}

// DefaultApp returns the built-in runtime configuration.
func DefaultApp() AppConfig {
	return AppConfig{
		Log: LogConfig{
			Level: "info",
		},
		Play: PlayConfig{
			Backend: BackendTea,
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Theme: ThemeConfig{
			Snake:  "green",
			Head:   "bright-green",
			Food:   "bright-red",
			Border: "gray",
			Text:   "white",
		},
	}
}

// DefaultPalette returns the palette of the default theme.
func DefaultPalette() Palette {
	p, _ := DefaultApp().Theme.Palette()
	return p
}

// Validate checks enumerated fields.
func (c AppConfig) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Play.Backend {
	case BackendTea, BackendTcell:
	default:
		return fmt.Errorf("config: unknown backend %q (want %q or %q)", c.Play.Backend, BackendTea, BackendTcell)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: idle_timeout must not be negative, got %s", c.Server.IdleTimeout)
	}
	if _, err := c.Theme.Palette(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured log level.
func (c AppConfig) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: %w", err)
	}
	return lvl, nil
}

// Palette resolves the theme's color names.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		dst  *core.Color
	}{
		{t.Snake, &p.Snake},
		{t.Head, &p.Head},
		{t.Food, &p.Food},
		{t.Border, &p.Border},
		{t.Text, &p.Text},
	}
	for _, f := range fields {
		c, ok := core.ParseColor(f.name)
		if !ok {
			return Palette{}, fmt.Errorf("config: unknown color %q", f.name)
		}
		*f.dst = c
	}
	return p, nil
}
