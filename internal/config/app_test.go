package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestExampleMatchesDefaults(t *testing.T) {
	cfg := AppConfig{}
	if err := yaml.Unmarshal(ExampleApp(), &cfg); err != nil {
		t.Fatalf("example config does not parse: %v", err)
	}
	if cfg != DefaultApp() {
		t.Errorf("example config %+v differs from DefaultApp %+v", cfg, DefaultApp())
	}
}

func TestLoadAppCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	writeFile(t, path, "server:\n  idle_timeout: 5m\nplay:\n  backend: tcell\n")

	cfg, err := LoadApp(path)
	if err != nil {
		t.Fatalf("LoadApp() failed: %v", err)
	}
	if cfg.Server.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %s, expected 5m", cfg.Server.IdleTimeout)
	}
	if cfg.Play.Backend != BackendTcell {
		t.Errorf("Backend = %q, expected tcell", cfg.Play.Backend)
	}
	// Untouched sections keep defaults
	if cfg.Server.Address != ":23234" || cfg.Theme.Food != "bright-red" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadAppMissingCustomPath(t *testing.T) {
	_, err := LoadApp(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("LoadApp() error = %v, expected read failure", err)
	}
}

func TestLoadAppUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".snake", "config.yaml"), "log:\n  level: debug\n")

	cfg, err := LoadApp("")
	if err != nil {
		t.Fatalf("LoadApp() failed: %v", err)
	}
	lvl, err := cfg.LogLevel()
	if err != nil || lvl != log.DebugLevel {
		t.Errorf("LogLevel() = %v, %v; expected debug", lvl, err)
	}
}

func TestLoadAppDefaultsWithoutFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadApp("")
	if err != nil {
		t.Fatalf("LoadApp() failed: %v", err)
	}
	if cfg != DefaultApp() {
		t.Errorf("LoadApp() = %+v, expected defaults", cfg)
	}
}

func TestAppValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *AppConfig)
	}{
		{"bad level", func(c *AppConfig) { c.Log.Level = "loud" }},
		{"bad backend", func(c *AppConfig) { c.Play.Backend = "gtk" }},
		{"negative timeout", func(c *AppConfig) { c.Server.IdleTimeout = -time.Second }},
		{"bad color", func(c *AppConfig) { c.Theme.Head = "mauve" }},
	}

	if err := DefaultApp().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultApp()
			tc.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if p.Snake != core.ColorGreen || p.Head != core.ColorBrightGreen || p.Food != core.ColorBrightRed {
		t.Errorf("DefaultPalette() = %+v", p)
	}
}
