package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Singly reinforced rectangular beam analysis and design",
	Long: `Analyze and design singly reinforced rectangular concrete beams
per ACI 318-19.

Subcommands:
  analyze  - Calculate moment capacity for a given reinforcement
  design   - Calculate required reinforcement for a given moment

Units: inches, in², psi; moments in lb-in with kip-ft companions.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
