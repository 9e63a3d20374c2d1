package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ldruskis/go-rating-sim/internal/report"
	"github.com/ldruskis/go-rating-sim/internal/storage"
)

var gamesLimit int

var gamesCmd = &cobra.Command{
	Use:   "games <mode>",
	Short: "List stored games for a mode",
	Args:  cobra.ExactArgs(1),
	RunE:  runGames,
}

func init() {
	gamesCmd.Flags().IntVar(&gamesLimit, "limit", 20, "number of games to show")
}

func runGames(cmd *cobra.Command, args []string) error {
	mode, err := parseMode(args[0])
	if err != nil {
		return err
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	total, err := db.CountGames(mode)
	if err != nil {
		return fmt.Errorf("count games: %w", err)
	}
	if total == 0 {
		fmt.Fprintln(os.Stdout, "No games stored yet. Run 'ratingsim simulate' first.")
		return nil
	}

	games, err := db.ListGames(mode, gamesLimit)
	if err != nil {
		return fmt.Errorf("list games: %w", err)
	}

	fmt.Fprintf(os.Stdout, "%d games total\n", total)
	report.PrintGameTable(os.Stdout, mode, games)
	return nil
}
