package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ldruskis/go-rating-sim/internal/report"
	"github.com/ldruskis/go-rating-sim/internal/storage"
)

var playerTrajectory bool

var playerCmd = &cobra.Command{
	Use:   "player <id> <mode>",
	Short: "Show one player's aggregate stats for a mode",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlayer,
}

func init() {
	playerCmd.Flags().BoolVar(&playerTrajectory, "trajectory", false, "also print the per-game rating history")
}

func runPlayer(cmd *cobra.Command, args []string) error {
	playerID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid player id %q", args[0])
	}
	mode, err := parseMode(args[1])
	if err != nil {
		return err
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	stats, err := db.ModeStats(playerID, mode)
	if err != nil {
		return fmt.Errorf("player stats: %w", err)
	}

	report.PrintPlayerStats(os.Stdout, fmt.Sprintf("Player_%d", playerID), stats)

	if playerTrajectory {
		points, err := db.Trajectory(playerID, mode)
		if err != nil {
			return fmt.Errorf("trajectory: %w", err)
		}
		report.PrintTrajectory(os.Stdout, playerID, mode, points)
	}
	return nil
}
