// snake is a grid snake game for the terminal.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play in the local terminal
//	snake serve              - Start SSH server for remote play
//	snake rules              - Show the fixed game rules
//	snake config             - Print an example config file
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Log file for play mode
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer, eat, grow",
	Long: `Snake is a single-player grid snake game for the terminal.

Steer with the arrow keys (or WASD/HJKL), the on-screen buttons, or by
dragging across the board with the mouse. Each food speeds the game up.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  rules    - Show the fixed game rules
  config   - Print an example config file

Examples:
  snake
  snake play --backend tcell
  snake serve --ssh :2222
  snake --seed 42`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play mode (default: discard)")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the app config and applies the global flag overrides.
func loadConfig() (config.AppConfig, error) {
	cfg, err := config.LoadApp(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	return cfg, cfg.Validate()
}

// newLogger builds a logger writing to w at the configured level.
func newLogger(w io.Writer, cfg config.AppConfig) (*log.Logger, error) {
	lvl, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	}), nil
}
