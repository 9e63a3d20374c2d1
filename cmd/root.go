package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ldruskis/go-rating-sim/internal/config"
	"github.com/ldruskis/go-rating-sim/internal/model"
)

var (
	cfg    = config.Load()
	dbPath string
)

var rootCmd = &cobra.Command{
	Use:   "ratingsim",
	Short: "Matchmaking rating simulator",
	Long:  "Simulate a rated player population across game modes and inspect how the rating systems track scripted skill changes.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := cfg.DBPath
	if defaultDB == "ratingsim.db" {
		defaultDB = filepath.Join(mustUserHome(), ".ratingsim", "sim.db")
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(ratingsCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(dropCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func parseMode(s string) (model.Mode, error) {
	m := model.Mode(s)
	switch m {
	case model.ModeTDM, model.ModeFFA, model.ModeDomination,
		model.ModeBR1v99, model.ModeBR4v96, model.ModeSAD:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}
