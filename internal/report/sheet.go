package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alexiusacademia/acibeam/internal/aci"
	"github.com/alexiusacademia/acibeam/internal/beam"
)

// Meta is the document header of a calculation sheet.
type Meta struct {
	Title    string
	Project  string
	Engineer string
	Date     time.Time
}

func (m Meta) title() string {
	if m.Title == "" {
		return "Flexural Strength of Rectangular RC Beam - ACI 318-19"
	}
	return m.Title
}

// Line is one row of a calculation sheet: a quantity, the formula with
// substituted values, and the result.
type Line struct {
	Label   string
	Formula string
	Value   string
}

// Section groups the lines of one step of the calculation.
type Section struct {
	Title string
	Lines []Line
	// Notes are free-text rows (warnings) printed after the lines.
	Notes []beam.Warning
}

func pass(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

// Build lays out the calculation sheet for an analysis. Every number
// printed comes straight from in or r.
func Build(in beam.Input, r beam.Results) []Section {
	f := Num

	sections := []Section{
		{
			Title: "Input Data",
			Lines: []Line{
				{"Width, b", "", f(in.B, DecLength) + " in"},
				{"Total depth, h", "", f(in.H, DecLength) + " in"},
				{"Effective depth, d", "", f(in.D, DecLength) + " in"},
				{"Concrete strength, f'c", "", f(in.Fc, DecStress) + " psi"},
				{"Steel yield strength, fy", "", f(in.Fy, DecStress) + " psi"},
				{"Steel modulus, Es", "", f(in.Es, DecStress) + " psi"},
				{"Tension steel, As", "", f(in.As, DecArea) + " in²"},
			},
		},
		{
			Title: "Equivalent Stress Block (ACI 318-19 22.2)",
			Lines: []Line{
				{"β1", beta1Formula(in.Fc), f(r.Beta1, DecBeta1)},
				{"a", fmt.Sprintf("As·fy / (0.85·f'c·b) = %s × %s / (0.85 × %s × %s)",
					f(in.As, DecArea), f(in.Fy, DecStress), f(in.Fc, DecStress), f(in.B, DecLength)),
					f(r.A, DecLength) + " in"},
				{"c", fmt.Sprintf("a / β1 = %s / %s", f(r.A, DecLength), f(r.Beta1, DecBeta1)),
					f(r.C, DecLength) + " in"},
			},
		},
		{
			Title: "Strain Compatibility",
			Lines: []Line{
				{"εcu", "", f(r.EpsilonCU, DecStrain)},
				{"εy", fmt.Sprintf("fy / Es = %s / %s", f(in.Fy, DecStress), f(in.Es, DecStress)),
					f(r.EpsilonY, DecStrain)},
				{"εt", fmt.Sprintf("εcu·(d − c) / c = %s × (%s − %s) / %s",
					f(r.EpsilonCU, DecStrain), f(in.D, DecLength), f(r.C, DecLength), f(r.C, DecLength)),
					f(r.EpsilonT, DecStrain)},
			},
		},
		{
			Title: "Strength Reduction Factor (ACI 318-19 21.2.2)",
			Lines: []Line{
				{"Classification", phiFormula(r), string(r.SectionType)},
				{"φ", "", f(r.Phi, DecPhi)},
			},
		},
		{
			Title: "Reinforcement Ratios",
			Lines: []Line{
				{"ρ", fmt.Sprintf("As / (b·d) = %s / (%s × %s)", f(in.As, DecArea), f(in.B, DecLength), f(in.D, DecLength)),
					f(r.Rho, DecRatio)},
				{"ρb", fmt.Sprintf("0.85·β1·(f'c/fy)·εcu/(εcu + εy) = 0.85 × %s × (%s/%s) × %s/(%s + %s)",
					f(r.Beta1, DecBeta1), f(in.Fc, DecStress), f(in.Fy, DecStress),
					f(r.EpsilonCU, DecStrain), f(r.EpsilonCU, DecStrain), f(r.EpsilonY, DecStrain)),
					f(r.RhoB, DecRatio)},
				{"ρmax", fmt.Sprintf("0.85·β1·(f'c/fy)·εcu/(εcu + 0.004) = 0.85 × %s × (%s/%s) × %s/(%s + 0.004)",
					f(r.Beta1, DecBeta1), f(in.Fc, DecStress), f(in.Fy, DecStress),
					f(r.EpsilonCU, DecStrain), f(r.EpsilonCU, DecStrain)),
					f(r.RhoMax, DecRatio)},
				{"ρmin", fmt.Sprintf("max(3√f'c / fy, 200 / fy) = max(3√%s / %s, 200 / %s)",
					f(in.Fc, DecStress), f(in.Fy, DecStress), f(in.Fy, DecStress)),
					f(r.RhoMin, DecRatio)},
			},
		},
		{
			Title: "Moment Capacity",
			Lines: []Line{
				{"Mn", fmt.Sprintf("As·fy·(d − a/2) = %s × %s × (%s − %s/2)",
					f(in.As, DecArea), f(in.Fy, DecStress), f(in.D, DecLength), f(r.A, DecLength)),
					f(r.Mn, DecLbIn) + " lb-in = " + f(r.MnKipFt, DecKipFt) + " kip-ft"},
				{"φMn", fmt.Sprintf("φ·Mn = %s × %s", f(r.Phi, DecPhi), f(r.Mn, DecLbIn)),
					f(r.PhiMn, DecLbIn) + " lb-in = " + f(r.PhiMnKipFt, DecKipFt) + " kip-ft"},
			},
		},
		{
			Title: "Code Checks",
			Lines: []Line{
				{"Steel yields", fmt.Sprintf("εt = %s ≥ εy = %s", f(r.EpsilonT, DecStrain), f(r.EpsilonY, DecStrain)),
					pass(r.SteelYields)},
				{"Minimum steel", fmt.Sprintf("ρ = %s ≥ ρmin = %s", f(r.Rho, DecRatio), f(r.RhoMin, DecRatio)),
					pass(r.IsAdequatelyReinforced)},
				{"Maximum steel", fmt.Sprintf("ρ = %s ≤ ρmax = %s", f(r.Rho, DecRatio), f(r.RhoMax, DecRatio)),
					pass(r.IsNotOverReinforced)},
			},
		},
	}

	if len(r.Warnings) > 0 {
		sections = append(sections, Section{Title: "Warnings", Notes: r.Warnings})
	}

	return sections
}

func beta1Formula(fc float64) string {
	if fc <= aci.Beta1RefFc {
		return fmt.Sprintf("f'c = %s ≤ 4000 psi", Num(fc, DecStress))
	}
	return fmt.Sprintf("max(0.65, 0.85 − 0.05·(%s − 4000)/1000)", Num(fc, DecStress))
}

func phiFormula(r beam.Results) string {
	switch r.SectionType {
	case aci.TensionControlled:
		return fmt.Sprintf("εt = %s ≥ 0.005", Num(r.EpsilonT, DecStrain))
	case aci.CompressionControlled:
		return fmt.Sprintf("εt = %s ≤ εy = %s", Num(r.EpsilonT, DecStrain), Num(r.EpsilonY, DecStrain))
	}
	return fmt.Sprintf("0.65 + 0.25·(εt − εy)/(0.005 − εy) = 0.65 + 0.25 × (%s − %s)/(0.005 − %s)",
		Num(r.EpsilonT, DecStrain), Num(r.EpsilonY, DecStrain), Num(r.EpsilonY, DecStrain))
}

const rule = "───────────────────────────────────────────────────────────────"

// WriteText writes a plain-text calculation sheet.
func WriteText(w io.Writer, meta Meta, sections []Section) error {
	var sb strings.Builder

	sb.WriteString("═══════════════════════════════════════════════════════════════\n")
	fmt.Fprintf(&sb, "  %s\n", strings.ToUpper(meta.title()))
	sb.WriteString("═══════════════════════════════════════════════════════════════\n")
	if meta.Project != "" {
		fmt.Fprintf(&sb, "  Project:  %s\n", meta.Project)
	}
	if meta.Engineer != "" {
		fmt.Fprintf(&sb, "  Engineer: %s\n", meta.Engineer)
	}
	if !meta.Date.IsZero() {
		fmt.Fprintf(&sb, "  Date:     %s\n", meta.Date.Format("2006-01-02"))
	}

	for _, s := range sections {
		fmt.Fprintf(&sb, "\n%s:\n%s\n", strings.ToUpper(s.Title), rule)

		tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		for _, l := range s.Lines {
			if l.Formula == "" {
				fmt.Fprintf(tw, "  %s:\t%s\n", l.Label, l.Value)
				continue
			}
			fmt.Fprintf(tw, "  %s:\t%s\t= %s\n", l.Label, l.Formula, l.Value)
		}
		tw.Flush()

		for _, n := range s.Notes {
			fmt.Fprintf(&sb, "  • %s\n", n)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
