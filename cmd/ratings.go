package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ldruskis/go-rating-sim/internal/report"
	"github.com/ldruskis/go-rating-sim/internal/storage"
)

var ratingsLimit int

var ratingsCmd = &cobra.Command{
	Use:   "ratings <mode>",
	Short: "Show the leaderboard for a mode",
	Args:  cobra.ExactArgs(1),
	RunE:  runRatings,
}

func init() {
	ratingsCmd.Flags().IntVar(&ratingsLimit, "limit", 25, "number of players to show")
}

func runRatings(cmd *cobra.Command, args []string) error {
	mode, err := parseMode(args[0])
	if err != nil {
		return err
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	stats, err := db.Leaderboard(mode, ratingsLimit)
	if err != nil {
		return fmt.Errorf("leaderboard: %w", err)
	}
	if len(stats) == 0 {
		fmt.Fprintln(os.Stdout, "No ratings stored yet. Run 'ratingsim simulate' first.")
		return nil
	}

	names := make(map[int64]string, len(stats))
	players, err := db.ListPlayers(1 << 20)
	if err != nil {
		return fmt.Errorf("list players: %w", err)
	}
	for _, p := range players {
		names[p.ID] = p.Name
	}

	report.PrintLeaderboard(os.Stdout, mode, stats, names)
	return nil
}
