package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/acibeam/internal/aci"
	"github.com/alexiusacademia/acibeam/internal/report"
)

var (
	// Unfactored moments (kip-ft)
	momentDead       float64
	momentLive       float64
	momentRoof       float64
	momentSnow       float64
	momentRain       float64
	momentWind       float64
	momentEarthquake float64

	// Options
	showAll     bool
	gravityOnly bool
)

var momentCmd = &cobra.Command{
	Use:   "moment",
	Short: "Calculate factored moment using ACI 318-19 load combinations",
	Long: `Calculate the factored moment (Mu) from the basic load combinations
of ACI 318-19 Table 5.3.1.

Provide unfactored moments from different load types and this command will
compute the factored moment for every combination. Terms written as
"(Lr or S or R)" take the largest of the three.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  S  - Snow load
  R  - Rain load
  W  - Wind load
  E  - Earthquake load

Examples:
  # Simple gravity loads (dead + live)
  acibeam moment --dead 80 --live 60

  # With wind load, listing every combination
  acibeam moment --dead 80 --live 60 --wind 40 --all`,
	RunE: runMoment,
}

func init() {
	rootCmd.AddCommand(momentCmd)

	// Load moment flags
	momentCmd.Flags().Float64VarP(&momentDead, "dead", "D", 0, "Moment due to dead load (kip-ft)")
	momentCmd.Flags().Float64VarP(&momentLive, "live", "L", 0, "Moment due to live load (kip-ft)")
	momentCmd.Flags().Float64Var(&momentRoof, "roof", 0, "Moment due to roof live load (kip-ft)")
	momentCmd.Flags().Float64VarP(&momentSnow, "snow", "S", 0, "Moment due to snow load (kip-ft)")
	momentCmd.Flags().Float64VarP(&momentRain, "rain", "R", 0, "Moment due to rain load (kip-ft)")
	momentCmd.Flags().Float64VarP(&momentWind, "wind", "W", 0, "Moment due to wind load (kip-ft)")
	momentCmd.Flags().Float64VarP(&momentEarthquake, "earthquake", "E", 0, "Moment due to earthquake load (kip-ft)")

	// Options
	momentCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	momentCmd.Flags().BoolVarP(&gravityOnly, "gravity", "g", false, "Use gravity combinations only (1.4D and 1.2D+1.6L+0.5(Lr or S or R))")
}

func runMoment(cmd *cobra.Command, args []string) error {
	moments := aci.LoadMoments{
		Dead:       momentDead,
		Live:       momentLive,
		Roof:       momentRoof,
		Snow:       momentSnow,
		Rain:       momentRain,
		Wind:       momentWind,
		Earthquake: momentEarthquake,
	}

	if moments.IsZero() {
		return errors.New("provide at least one unfactored moment (see 'acibeam moment --help')")
	}

	// Select which combinations to use
	combinations := aci.LoadCombinations
	if gravityOnly {
		combinations = aci.GravityCombinations
	}

	n := func(v float64) string { return report.Num(v, report.DecKipFt) }

	// Print header
	fmt.Println()
	fmt.Println(banner("ACI 318-19 FACTORED MOMENT CALCULATION"))
	fmt.Println()

	// Print input moments
	fmt.Println(heading("UNFACTORED MOMENTS (kip-ft)"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, m := range []struct {
		label string
		value float64
	}{
		{"Dead Load (D)", moments.Dead},
		{"Live Load (L)", moments.Live},
		{"Roof Live Load (Lr)", moments.Roof},
		{"Snow Load (S)", moments.Snow},
		{"Rain Load (R)", moments.Rain},
		{"Wind Load (W)", moments.Wind},
		{"Earthquake Load (E)", moments.Earthquake},
	} {
		if m.value != 0 {
			fmt.Fprintf(w, "  %s:\t%s\n", m.label, n(m.value))
		}
	}
	w.Flush()
	fmt.Println()

	// Calculate governing moment
	maxMu, governing := aci.GoverningMoment(moments, combinations)

	if showAll {
		fmt.Println(heading("LOAD COMBINATIONS (ACI 318-19 Table 5.3.1)"))
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tMu (kip-ft)\n")
		fmt.Fprintf(w, "  ─\t───────────\t───────────\n")
		for _, combo := range combinations {
			marker := ""
			if combo.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s%s\n", combo.ID, combo.Description, n(combo.FactoredMoment(moments)), marker)
		}
		w.Flush()
		fmt.Println()
	}

	// Print result
	fmt.Println(heading("RESULT"))
	fmt.Printf("  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Println()
	fmt.Println(box("GOVERNING COMBINATION "+governing.ID, fmt.Sprintf("FACTORED MOMENT (Mu) = %s kip-ft", n(maxMu))))
	fmt.Println()
	return nil
}
