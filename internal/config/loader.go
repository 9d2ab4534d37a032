package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/snake.yaml
var exampleAppYAML []byte

// ExampleApp returns a commented example config file matching DefaultApp.
func ExampleApp() []byte {
	return exampleAppYAML
}

// LoadApp loads the runtime configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> defaults.
// Files are decoded over DefaultApp, so a partial file keeps the other defaults.
func LoadApp(customPath string) (AppConfig, error) {
	cfg := DefaultApp()

	// Try custom path first; a missing custom file is an error
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultApp()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return candidate, candidate.Validate()
	}

	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userPath("config.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "snake.yaml"))
}

// userPath returns a path under ~/.snake, or empty if home is unavailable.
func userPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", name)
}

// DefaultHostKeyPath returns ~/.snake/host_key.
func DefaultHostKeyPath() (string, error) {
	p := userPath("host_key")
	if p == "" {
		return "", fmt.Errorf("config: cannot resolve home directory for host key")
	}
	return p, nil
}
