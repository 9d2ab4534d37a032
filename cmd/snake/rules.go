package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the game rules",
	Long:  `Shows the fixed rule constants every game is played with.`,
	Args:  cobra.NoArgs,
	Run:   runRules,
}

func runRules(cmd *cobra.Command, _ []string) {
	r := config.LoadRules()
	out := cmd.OutOrStdout()

	rows := [][2]string{
		{"Board", fmt.Sprintf("%dx%d tiles", r.TileCount(), r.TileCount())},
		{"Start", fmt.Sprintf("(%d,%d) heading %s", r.Start.X, r.Start.Y, r.Start.Heading)},
		{"Tempo", fmt.Sprintf("%s per step", r.Tempo.Base)},
		{"Speed-up", fmt.Sprintf("-%s per food, floor %s", r.Tempo.Step, r.Tempo.Floor)},
		{"Swipe", fmt.Sprintf("%d px", r.SwipeThreshold)},
	}

	// Calculate column widths
	maxKeyLen := 0
	for _, row := range rows {
		if len(row[0]) > maxKeyLen {
			maxKeyLen = len(row[0])
		}
	}

	fmt.Fprintln(out, "Rules:")
	fmt.Fprintln(out)
	for _, row := range rows {
		fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, row[0], row[1])
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Eat food to grow. Hitting a wall or yourself ends the run.")
}
