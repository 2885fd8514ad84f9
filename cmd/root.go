package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexiusacademia/acibeam/internal/config"
	"github.com/alexiusacademia/acibeam/internal/version"
)

var (
	cfgFile string
	noColor bool

	v   = viper.New()
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "acibeam",
	Short: "Flexural strength of rectangular RC beams per ACI 318-19",
	Long: `acibeam - Rectangular Reinforced Concrete Beam Flexure (ACI 318-19)

A CLI tool for the flexural analysis of singly reinforced rectangular
concrete beams in US customary units (in, psi, lb-in, kip-ft).

This tool helps structural engineers:
  - Compute stress block depth, neutral axis depth and steel strain
  - Classify sections as tension-controlled, transition or
    compression-controlled and pick the strength reduction factor
  - Check minimum and maximum reinforcement limits
  - Size tension steel for a factored moment
  - Run batches of trial sections and serve the engine over HTTP

All calculations follow ACI 318-19 Chapters 9, 21 and 22.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   acibeam v%-47s║\n", version.Version)
		fmt.Println("  ║   RC Beam Flexure per ACI 318-19                          ║")
		fmt.Printf("  ║   %-56s║\n", version.Author+" © "+version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Flexural capacity φMn with section classification")
		fmt.Println("    • Reinforcement limit checks and diagnostic warnings")
		fmt.Println("    • Required steel and bar suggestions for a target Mu")
		fmt.Println("    • Factored moments from ACI 318-19 load combinations")
		fmt.Println("    • Calculation sheets (text, PDF) and XLSX batch results")
		fmt.Println()
		fmt.Println("  Use 'acibeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ./acibeam.yaml or ~/.config/acibeam/acibeam.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// initConfig reads the config file and ACIBEAM_* environment variables.
func initConfig() {
	config.Init(v, cfgFile)

	used, err := config.Read(v)
	cobra.CheckErr(err)
	if used != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", used)
	}

	cfg, err = config.Load(v)
	cobra.CheckErr(err)
}
