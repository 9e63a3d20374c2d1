package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ldruskis/go-rating-sim/internal/gamemode"
	"github.com/ldruskis/go-rating-sim/internal/report"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the configured game modes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		report.PrintModeTable(os.Stdout, gamemode.All)
	},
}
