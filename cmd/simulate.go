package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ldruskis/go-rating-sim/internal/gamemode"
	"github.com/ldruskis/go-rating-sim/internal/logger"
	"github.com/ldruskis/go-rating-sim/internal/sim"
	"github.com/ldruskis/go-rating-sim/internal/storage"
)

var (
	simSeed    uint64
	simPlayers int
	simMode    string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the full simulation",
	Long: "Create the player population with fabricated per-mode history, then play every " +
		"reference scenario across the configured game modes, updating all rating systems " +
		"after each game. Resumes the population bootstrap if the store already holds it.",
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", cfg.Seed, "random seed")
	simulateCmd.Flags().IntVar(&simPlayers, "players", cfg.Players, "population size")
	simulateCmd.Flags().StringVar(&simMode, "mode", "", "simulate a single mode instead of all")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	log := logger.New(cfg.LogLevel)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	start := time.Now().UTC()
	o := sim.New(db, simSeed, simPlayers, start, log)

	log.Info().
		Uint64("seed", simSeed).
		Int("players", simPlayers).
		Str("db", dbPath).
		Msg("simulation starting")

	if err := o.Bootstrap(); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	if simMode != "" {
		mode, err := parseMode(simMode)
		if err != nil {
			return err
		}
		def, _ := gamemode.ByMode(mode)
		return o.RunMode(def)
	}
	return o.Run()
}
