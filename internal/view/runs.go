package view

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// DrawRuns paints a plain run log listing for frontends without a table widget.
func DrawRuns(dst *core.Screen, runs []storage.Run, stats storage.Stats, p config.Palette) {
	dst.Clear()

	dst.DrawTextCentered(0, "Top runs", p.Head)
	dst.DrawTextCentered(1, fmt.Sprintf("%d runs  best %d  cleared %d", stats.Runs, stats.Best, stats.Cleared), core.ColorGray)

	if len(runs) == 0 {
		dst.DrawTextCentered(dst.Height()/2, "No runs yet", p.Text)
	}

	header := fmt.Sprintf("%-5s %-12s %6s %6s %8s", "Rank", "Player", "Score", "Length", "Time")
	x := max(0, (dst.Width()-len(header))/2)
	dst.DrawTextColored(x, 3, header, p.Border)

	// Leave the last row for the hint
	for i, r := range runs {
		y := 4 + i
		if y >= dst.Height()-1 {
			break
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		line := fmt.Sprintf("%-5s %-12.12s %6d %6d %8s", fmt.Sprintf("#%d", i+1), player, r.Score, r.Length, r.Duration.Round(time.Second))
		dst.DrawTextColored(x, y, line, p.Text)
	}

	dst.DrawTextCentered(dst.Height()-1, "esc: back  q: quit", core.ColorGray)
}
