package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/acibeam/internal/batch"
	"github.com/alexiusacademia/acibeam/internal/report"
)

var batchOutputFile string

var batchCmd = &cobra.Command{
	Use:   "batch <trials.yaml|trials.xlsx>",
	Short: "Analyze a file of trial sections",
	Long: `Analyze every trial section listed in a YAML or XLSX file and print
a comparison table. Trials that fail validation are reported and skipped.

YAML format:
  defaults:
    fc: 4000
    fy: 60000
    cover: 2.5
  trials:
    - name: B1
      b: 12
      h: 24
      As: 3.0
    - name: B2
      b: 14
      h: 28
      d: 25.5
      As: 4.0

XLSX format: the first sheet with a header row naming the columns
(name, b, h, d, cover, fc, fy, Es, As, As_prime, d_prime).

Examples:
  acibeam batch trials.yaml
  acibeam batch trials.xlsx -o results.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchOutputFile, "output", "o", "", "Write results workbook (xlsx)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file, err := batch.Load(args[0])
	if err != nil {
		return err
	}

	fallback := batch.Defaults{
		Fc:    cfg.Materials.Fc,
		Fy:    cfg.Materials.Fy,
		Es:    cfg.Materials.Es,
		Cover: &cfg.Geometry.Cover,
	}
	outcomes := batch.Run(file.Resolve(fallback))

	printBatch(outcomes)

	if batchOutputFile != "" {
		f, err := os.Create(batchOutputFile)
		if err != nil {
			return fmt.Errorf("creating workbook: %w", err)
		}
		defer f.Close()
		if err := report.WriteWorkbook(f, outcomes); err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Results written to: %s\n", batchOutputFile)
	}
	return nil
}

func printBatch(outcomes []batch.Outcome) {
	n := report.Num

	fmt.Println()
	fmt.Println(banner("BATCH ANALYSIS - ACI 318-19"))
	fmt.Println()

	fmt.Println(heading(fmt.Sprintf("RESULTS (%d trials)", len(outcomes))))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Trial\tb x h (in)\td (in)\tAs (in²)\tεt\tφ\tφMn (kip-ft)\tSection\tChecks\n")
	fmt.Fprintf(w, "  ─────\t──────────\t──────\t────────\t──\t─\t────────────\t───────\t──────\n")

	var failed []batch.Outcome
	for _, o := range outcomes {
		t := o.Trial
		if o.Err != nil {
			failed = append(failed, o)
			fmt.Fprintf(w, "  %s\t%s x %s\t%s\t%s\t-\t-\t-\t%s\t\n",
				t.Name, n(t.B, 1), n(t.H, 1), n(t.D, 2), n(t.As, report.DecArea), paint(errorStyle, "invalid"))
			continue
		}

		r := o.Results
		checks := "ok"
		if !r.SteelYields || !r.IsAdequatelyReinforced || !r.IsNotOverReinforced {
			checks = paint(warningStyle, fmt.Sprintf("%d warning(s)", len(r.Warnings)))
		}
		fmt.Fprintf(w, "  %s\t%s x %s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.Name, n(t.B, 1), n(t.H, 1), n(t.D, 2), n(t.As, report.DecArea),
			n(r.EpsilonT, report.DecStrain), n(r.Phi, report.DecPhi), n(r.PhiMnKipFt, report.DecKipFt),
			sectionLabel(r.SectionType), checks)
	}
	w.Flush()
	fmt.Println()

	for _, o := range outcomes {
		if o.Err == nil && len(o.Results.Warnings) > 0 {
			fmt.Println(paint(headingStyle, o.Trial.Name))
			printWarnings(o.Results.Warnings)
		}
	}

	if len(failed) > 0 {
		fmt.Println(heading("SKIPPED TRIALS"))
		for _, o := range failed {
			msg := strings.ReplaceAll(o.Err.Error(), "\n", "; ")
			fmt.Printf("  • %s: %s\n", o.Trial.Name, paint(errorStyle, msg))
		}
		fmt.Println()
	}
}
