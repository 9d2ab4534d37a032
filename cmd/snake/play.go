package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/cabinet"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	termui "github.com/vovakirdan/tui-snake/internal/platform/term"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagBackend string
	flagPlayer  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD/HJKL  - Steer
  Mouse drag        - Swipe to steer
  Enter/Space       - Start, or dismiss the game-over message
  T                 - Show this session's runs
  Q/Ctrl+C          - Quit

Backends:
  tea    - Bubble Tea (default)
  tcell  - tcell screen

Examples:
  snake play
  snake play --backend tcell
  snake play --seed 42 --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagBackend, "backend", "", "UI backend: tea or tcell (default from config)")
	cmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for the run log (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	appCfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagBackend != "" {
		appCfg.Play.Backend = flagBackend
		if err := appCfg.Validate(); err != nil {
			return err
		}
	}

	// The UI owns the terminal, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if appCfg.Log.File != "" {
		f, err := os.OpenFile(appCfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, appCfg)
	if err != nil {
		return err
	}

	palette, err := appCfg.Theme.Palette()
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		// The game still works without a run log
		logger.Warn("run log unavailable", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Get terminal size early so the first frame has a layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := cabinet.Config{
		Rules:   config.LoadRules(),
		Palette: palette,
		Player:  playerName(),
		Store:   store,
		Logger:  logger,
		Seed:    flagSeed,
		Width:   width,
		Height:  height,
	}

	logger.Info("starting", "backend", appCfg.Play.Backend, "size", fmt.Sprintf("%dx%d", width, height))

	switch appCfg.Play.Backend {
	case config.BackendTcell:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = termui.Play(ctx, cfg)
	default:
		err = tui.Run(cfg)
	}
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	if store != nil {
		printSummary(os.Stdout, store)
	}
	return nil
}

// playerName picks the run log name: --player, then $USER.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// printSummary writes the runs of this process as a table.
func printSummary(w io.Writer, store *storage.Store) {
	runs, err := store.TopRuns(10)
	if err != nil || len(runs) == 0 {
		return
	}
	stats, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Fprintln(w, summaryTable(runs))
	fmt.Fprintf(w, "%d runs, best %d, average %.1f\n", stats.Runs, stats.Best, stats.AvgScore)
}

var (
	summaryHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Padding(0, 1)
	summaryCell   = lipgloss.NewStyle().Padding(0, 1)
	summaryBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// summaryTable renders runs best first.
func summaryTable(runs []storage.Run) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(summaryBorder).
		Headers("#", "Score", "Length", "Time", "Result").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return summaryHeader
			}
			return summaryCell
		})

	for i, r := range runs {
		result := "crashed"
		if r.Cleared {
			result = "cleared"
		}
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Length),
			r.Duration.Round(time.Second).String(),
			result,
		)
	}
	return t.String()
}
