package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/acibeam/internal/beam"
	"github.com/alexiusacademia/acibeam/internal/diagram"
	"github.com/alexiusacademia/acibeam/internal/report"
	"github.com/alexiusacademia/acibeam/internal/server"
)

var (
	// Analysis inputs
	analyzeWidth   float64
	analyzeHeight  float64
	analyzeDepth   float64
	analyzeCover   float64
	analyzeFc      float64
	analyzeFy      float64
	analyzeEs      float64
	analyzeAs      float64
	analyzeAsPrime float64
	analyzeDPrime  float64

	// Output options
	analyzeShowDiagram bool
	analyzeShowCurve   bool
	analyzeExportFile  string
	analyzeStrainFile  string
	analyzeSheetFile   string
	analyzeJSON        bool
	analyzeProject     string
	analyzeEngineer    string
)

var beamAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze moment capacity of a singly reinforced beam",
	Long: `Calculate the design moment capacity (φMn) of a singly reinforced
rectangular beam given the tension reinforcement area (As).

The analysis follows ACI 318-19:
  - 22.2.2.4: Equivalent rectangular stress block and β1
  - 21.2.2:   Strength reduction factor from net tensile strain
  - 9.6.1.2:  Minimum flexural reinforcement
  - 9.3.3.1:  Net tensile strain limit εt ≥ 0.004

Material defaults come from the config file (materials.fc, materials.fy,
materials.es). When --depth is omitted, d = h - cover (geometry.cover).

Examples:
  # Analyze a 12x24 in beam with 3 in² of steel at d = 21.5 in
  acibeam beam analyze -b 12 -H 24 -d 21.5 --fc 4000 --fy 60000 --as 3

  # Show diagrams and write a PDF calculation sheet
  acibeam beam analyze -b 12 -H 24 --as 3 --diagram --sheet calc.pdf

  # Export section and strain plots
  acibeam beam analyze -b 12 -H 24 --as 3 -o section.png --strain-output strain.svg

  # Machine readable output
  acibeam beam analyze -b 12 -H 24 --as 3 --json`,
	RunE: runBeamAnalyze,
}

func init() {
	beamCmd.AddCommand(beamAnalyzeCmd)

	// Geometry flags
	beamAnalyzeCmd.Flags().Float64VarP(&analyzeWidth, "width", "b", 0, "Beam width b (in) [required]")
	beamAnalyzeCmd.Flags().Float64VarP(&analyzeHeight, "height", "H", 0, "Beam total depth h (in) [required]")
	beamAnalyzeCmd.Flags().Float64VarP(&analyzeDepth, "depth", "d", 0, "Effective depth d (in), default h - cover")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeCover, "cover", 0, "Bottom fiber to tension steel centroid (in), default from config")

	// Material flags
	beamAnalyzeCmd.Flags().Float64Var(&analyzeFc, "fc", 0, "Concrete compressive strength f'c (psi), default from config")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeFy, "fy", 0, "Steel yield strength fy (psi), default from config")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeEs, "es", 0, "Steel elastic modulus Es (psi), default from config")

	// Reinforcement flags
	beamAnalyzeCmd.Flags().Float64Var(&analyzeAs, "as", 0, "Tension reinforcement area As (in²) [required]")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeAsPrime, "as-prime", 0, "Compression reinforcement area As' (in²), drawn only")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeDPrime, "d-prime", 0, "Depth to compression steel d' (in), drawn only")

	// Output flags
	beamAnalyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII section and strain diagrams")
	beamAnalyzeCmd.Flags().BoolVar(&analyzeShowCurve, "curve", false, "Plot φMn against As up to the balanced area")
	beamAnalyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
	beamAnalyzeCmd.Flags().StringVar(&analyzeStrainFile, "strain-output", "", "Export strain distribution to file (png, svg, pdf)")
	beamAnalyzeCmd.Flags().StringVar(&analyzeSheetFile, "sheet", "", "Write calculation sheet to file (txt, pdf)")
	beamAnalyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print input and results as JSON")
	beamAnalyzeCmd.Flags().StringVar(&analyzeProject, "project", "", "Project name for the calculation sheet")
	beamAnalyzeCmd.Flags().StringVar(&analyzeEngineer, "engineer", "", "Engineer name for the calculation sheet")

	// Mark required flags
	beamAnalyzeCmd.MarkFlagRequired("width")
	beamAnalyzeCmd.MarkFlagRequired("height")
	beamAnalyzeCmd.MarkFlagRequired("as")
}

// flagOr returns the flag value when it was set on the command line and
// fallback otherwise.
func flagOr(cmd *cobra.Command, name string, value, fallback float64) float64 {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

func analyzeInput(cmd *cobra.Command) beam.Input {
	cover := flagOr(cmd, "cover", analyzeCover, cfg.Geometry.Cover)
	return beam.Input{
		B:       analyzeWidth,
		H:       analyzeHeight,
		D:       flagOr(cmd, "depth", analyzeDepth, analyzeHeight-cover),
		DPrime:  analyzeDPrime,
		Fc:      flagOr(cmd, "fc", analyzeFc, cfg.Materials.Fc),
		Fy:      flagOr(cmd, "fy", analyzeFy, cfg.Materials.Fy),
		Es:      flagOr(cmd, "es", analyzeEs, cfg.Materials.Es),
		As:      analyzeAs,
		AsPrime: analyzeAsPrime,
	}
}

func runBeamAnalyze(cmd *cobra.Command, args []string) error {
	in := analyzeInput(cmd)
	if err := beam.Validate(in); err != nil {
		return fmt.Errorf("invalid beam input:\n%w", err)
	}

	r := beam.Analyze(in)

	if analyzeJSON {
		out, err := json.MarshalIndent(server.AnalyzeResponse{Input: in, Results: r}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		printAnalysis(in, r)
	}

	data := diagram.NewSectionData(in, r)
	if analyzeShowDiagram {
		fmt.Println(diagram.DrawASCIISectionDiagram(data))
		fmt.Println(diagram.DrawStrainDiagram(data))
	}
	if analyzeShowCurve {
		fmt.Println(diagram.DrawCapacityCurve(beam.CapacityCurve(in, 60)))
		fmt.Println()
	}

	if analyzeExportFile != "" {
		path, err := diagram.ExportSectionDiagram(data, analyzeExportFile)
		if err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Diagram exported to: %s\n", path)
	}

	if analyzeStrainFile != "" {
		path, err := diagram.ExportStrainDiagram(data, analyzeStrainFile)
		if err != nil {
			return fmt.Errorf("exporting strain diagram: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Strain diagram exported to: %s\n", path)
	}

	if analyzeSheetFile != "" {
		meta := report.Meta{Project: analyzeProject, Engineer: analyzeEngineer, Date: time.Now()}
		if err := writeSheet(analyzeSheetFile, meta, report.Build(in, r)); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Calculation sheet written to: %s\n", analyzeSheetFile)
	}

	return nil
}

// writeSheet writes a PDF sheet for .pdf files and plain text otherwise.
func writeSheet(path string, meta report.Meta, sections []report.Section) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		err = report.WritePDF(f, meta, sections)
	} else {
		err = report.WriteText(f, meta, sections)
	}
	if err != nil {
		return fmt.Errorf("writing sheet: %w", err)
	}
	return f.Close()
}

func printAnalysis(in beam.Input, r beam.Results) {
	n := report.Num

	fmt.Println()
	fmt.Println(banner("SINGLY REINFORCED BEAM ANALYSIS - ACI 318-19"))
	fmt.Println()

	// Input summary
	fmt.Println(heading("INPUT DATA"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam Width (b):\t%s in\n", n(in.B, report.DecLength))
	fmt.Fprintf(w, "  Beam Depth (h):\t%s in\n", n(in.H, report.DecLength))
	fmt.Fprintf(w, "  Effective Depth (d):\t%s in\n", n(in.D, report.DecLength))
	fmt.Fprintf(w, "  f'c:\t%s psi\n", n(in.Fc, report.DecStress))
	fmt.Fprintf(w, "  fy:\t%s psi\n", n(in.Fy, report.DecStress))
	fmt.Fprintf(w, "  Es:\t%s psi\n", n(in.Es, report.DecStress))
	fmt.Fprintf(w, "  Reinforcement (As):\t%s in²\n", n(in.As, report.DecArea))
	if in.AsPrime > 0 {
		fmt.Fprintf(w, "  Compression steel (As'):\t%s in² at d' = %s in (not used in capacity)\n",
			n(in.AsPrime, report.DecArea), n(in.DPrime, report.DecLength))
	}
	w.Flush()
	fmt.Println()

	// Section analysis
	fmt.Println(heading("SECTION PROPERTIES"))
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  β1:\t%s\n", n(r.Beta1, report.DecBeta1))
	fmt.Fprintf(w, "  Compression block depth (a):\t%s in\n", n(r.A, report.DecLength))
	fmt.Fprintf(w, "  Neutral axis depth (c):\t%s in\n", n(r.C, report.DecLength))
	fmt.Fprintf(w, "  Concrete crushing strain (εcu):\t%s\n", n(r.EpsilonCU, report.DecStrain))
	fmt.Fprintf(w, "  Yield strain (εy):\t%s\n", n(r.EpsilonY, report.DecStrain))
	fmt.Fprintf(w, "  Tensile strain (εt):\t%s\n", n(r.EpsilonT, report.DecStrain))
	fmt.Fprintf(w, "  Strength reduction factor (φ):\t%s\n", n(r.Phi, report.DecPhi))
	fmt.Fprintf(w, "  Classification:\t%s\n", sectionLabel(r.SectionType))
	w.Flush()
	fmt.Println()

	// Reinforcement ratios
	fmt.Println(heading("REINFORCEMENT RATIOS"))
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ρ_min:\t%s\n", n(r.RhoMin, report.DecRatio))
	fmt.Fprintf(w, "  ρ_max (εt = 0.004):\t%s\n", n(r.RhoMax, report.DecRatio))
	fmt.Fprintf(w, "  ρ_bal:\t%s\n", n(r.RhoB, report.DecRatio))
	fmt.Fprintf(w, "  ρ_actual:\t%s\n", n(r.Rho, report.DecRatio))
	w.Flush()
	fmt.Println()

	// Steel area limits
	fmt.Println(heading("STEEL AREA LIMITS"))
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  As,min:\t%s in²\n", n(r.RhoMin*in.B*in.D, report.DecArea))
	fmt.Fprintf(w, "  As,max:\t%s in²\n", n(r.RhoMax*in.B*in.D, report.DecArea))
	fmt.Fprintf(w, "  As,provided:\t%s in²\n", n(in.As, report.DecArea))
	w.Flush()
	fmt.Println()

	// Moment capacity
	fmt.Println(heading("MOMENT CAPACITY"))
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nominal Moment (Mn):\t%s lb-in\t%s kip-ft\n",
		n(r.Mn, report.DecLbIn), n(r.MnKipFt, report.DecKipFt))
	w.Flush()
	fmt.Println()

	fmt.Println(box("DESIGN CAPACITY",
		fmt.Sprintf("φMn = %s kip-ft", n(r.PhiMnKipFt, report.DecKipFt)),
		fmt.Sprintf("    = %s lb-in", n(r.PhiMn, report.DecLbIn)),
	))
	fmt.Println()

	// Code checks
	fmt.Println(heading("CODE CHECKS"))
	fmt.Printf("  %s\n", status(r.SteelYields, "Steel yields (εt ≥ εy)", "Steel does not yield (εt < εy)"))
	fmt.Printf("  %s\n", status(r.IsAdequatelyReinforced, "ρ ≥ ρmin", "ρ < ρmin"))
	fmt.Printf("  %s\n", status(r.IsNotOverReinforced, "ρ ≤ ρmax", "ρ > ρmax"))
	fmt.Println()

	printWarnings(r.Warnings)
}

func printWarnings(warnings []beam.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println(heading("WARNINGS"))
	for _, wn := range warnings {
		fmt.Printf("  • %s\n", paint(severityStyle(wn.Severity), wn.String()))
	}
	fmt.Println()
}
