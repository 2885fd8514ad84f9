package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/acibeam/internal/aci"
	"github.com/alexiusacademia/acibeam/internal/beam"
	"github.com/alexiusacademia/acibeam/internal/report"
)

var (
	// Design inputs
	designWidth float64
	designDepth float64
	designFc    float64
	designFy    float64
	designMu    float64
)

var beamDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Design reinforcement for a singly reinforced beam",
	Long: `Calculate the required tension reinforcement area (As) for a
singly reinforced rectangular beam given the factored moment (Mu).

The solver assumes a tension-controlled section (φ = 0.90) and solves
the stress block equilibrium for ρ:

  Rn = Mu / (φ·b·d²)
  ρ  = (0.85·f'c/fy)·(1 - √(1 - 2·Rn/(0.85·f'c)))

The result is rejected when ρ exceeds ρmax (εt = 0.004). Verify the
chosen bars with 'acibeam beam analyze'.

Examples:
  # Design a 12 in wide beam with d = 21.5 in for Mu = 250 kip-ft
  acibeam beam design -b 12 -d 21.5 --fc 4000 --fy 60000 --mu 250`,
	RunE: runBeamDesign,
}

func init() {
	beamCmd.AddCommand(beamDesignCmd)

	// Geometry flags
	beamDesignCmd.Flags().Float64VarP(&designWidth, "width", "b", 0, "Beam width b (in) [required]")
	beamDesignCmd.Flags().Float64VarP(&designDepth, "depth", "d", 0, "Effective depth d (in) [required]")

	// Material flags
	beamDesignCmd.Flags().Float64Var(&designFc, "fc", 0, "Concrete compressive strength f'c (psi), default from config")
	beamDesignCmd.Flags().Float64Var(&designFy, "fy", 0, "Steel yield strength fy (psi), default from config")

	// Loading flag
	beamDesignCmd.Flags().Float64VarP(&designMu, "mu", "m", 0, "Factored moment Mu (kip-ft) [required]")

	// Mark required flags
	beamDesignCmd.MarkFlagRequired("width")
	beamDesignCmd.MarkFlagRequired("depth")
	beamDesignCmd.MarkFlagRequired("mu")
}

func runBeamDesign(cmd *cobra.Command, args []string) error {
	in := beam.RequiredSteelInput{
		Mu: aci.LbIn(designMu),
		B:  designWidth,
		D:  designDepth,
		Fc: flagOr(cmd, "fc", designFc, cfg.Materials.Fc),
		Fy: flagOr(cmd, "fy", designFy, cfg.Materials.Fy),
	}
	if err := in.Validate(); err != nil {
		return fmt.Errorf("invalid design input:\n%w", err)
	}

	result := beam.RequiredSteel(in)
	n := report.Num

	// Print results
	fmt.Println()
	fmt.Println(banner("SINGLY REINFORCED BEAM DESIGN - ACI 318-19"))
	fmt.Println()

	// Input summary
	fmt.Println(heading("INPUT DATA"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam Width (b):\t%s in\n", n(in.B, report.DecLength))
	fmt.Fprintf(w, "  Effective Depth (d):\t%s in\n", n(in.D, report.DecLength))
	fmt.Fprintf(w, "  f'c:\t%s psi\n", n(in.Fc, report.DecStress))
	fmt.Fprintf(w, "  fy:\t%s psi\n", n(in.Fy, report.DecStress))
	fmt.Fprintf(w, "  Factored Moment (Mu):\t%s kip-ft\t%s lb-in\n",
		n(designMu, report.DecKipFt), n(in.Mu, report.DecLbIn))
	w.Flush()
	fmt.Println()

	rhoMin := aci.RhoMin(in.Fc, in.Fy)
	rhoMax := aci.RhoMax(aci.Beta1(in.Fc), in.Fc, in.Fy)

	// Reinforcement ratios
	fmt.Println(heading("REINFORCEMENT RATIOS"))
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Rn:\t%s psi\n", n(result.Rn, 1))
	fmt.Fprintf(w, "  ρ_min:\t%s\n", n(rhoMin, report.DecRatio))
	fmt.Fprintf(w, "  ρ_max (εt = 0.004):\t%s\n", n(rhoMax, report.DecRatio))
	if result.RhoRequired > 0 {
		fmt.Fprintf(w, "  ρ_required:\t%s\n", n(result.RhoRequired, report.DecRatio))
	}
	w.Flush()
	fmt.Println()

	// Steel area limits
	fmt.Println(heading("STEEL AREA LIMITS"))
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  As,min:\t%s in²\n", n(rhoMin*in.B*in.D, report.DecArea))
	fmt.Fprintf(w, "  As,max:\t%s in²\n", n(rhoMax*in.B*in.D, report.DecArea))
	w.Flush()
	fmt.Println()

	// Design result
	fmt.Println(heading("DESIGN RESULT"))
	if !result.IsValid {
		fmt.Println(box("DESIGN NOT ADEQUATE"))
		fmt.Println()
		fmt.Printf("  %s\n", paint(errorStyle, result.Message))
		fmt.Println()
		return nil
	}

	asDesign := result.AsRequired
	if asMin := rhoMin * in.B * in.D; asDesign < asMin {
		fmt.Printf("  %s\n", paint(warningStyle, fmt.Sprintf(
			"Warning: As,required = %s in² is below As,min; minimum steel governs.",
			n(asDesign, report.DecArea))))
		fmt.Println()
		asDesign = asMin
	}

	fmt.Println(box("DESIGN RESULT", fmt.Sprintf("REQUIRED As = %s in²", n(asDesign, report.DecArea))))
	fmt.Println()
	fmt.Printf("  Status: %s\n", result.Message)
	fmt.Println()

	printBarSuggestions(asDesign)
	return nil
}

func printBarSuggestions(asRequired float64) {
	suggestions := aci.SuggestBars(asRequired)
	if len(suggestions) == 0 {
		return
	}

	fmt.Println(heading("SUGGESTED BAR COMBINATIONS"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bars\tAs Provided\tRatio\n")
	fmt.Fprintf(w, "  ────\t───────────\t─────\n")
	for _, s := range suggestions {
		fmt.Fprintf(w, "  %d - #%d\t%s in²\t%s\n",
			s.Count, s.Bar.Size, report.Num(s.Area(), report.DecArea), report.Num(s.Area()/asRequired, 2))
	}
	w.Flush()
	fmt.Println()
}
