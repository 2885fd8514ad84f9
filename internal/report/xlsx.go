package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/acibeam/internal/batch"
)

const resultsSheet = "Results"

var workbookHeader = []any{
	"Trial", "b (in)", "h (in)", "d (in)", "f'c (psi)", "fy (psi)", "Es (psi)", "As (in²)",
	"β1", "a (in)", "c (in)", "εt", "εy", "φ", "Section",
	"ρ", "ρb", "ρmax", "ρmin",
	"Mn (kip-ft)", "φMn (kip-ft)",
	"ρ ≥ ρmin", "ρ ≤ ρmax", "Steel yields", "Warnings",
}

// cell keeps finite numbers numeric and renders the rest as NA.
func cell(v float64, decimals int) any {
	s := Num(v, decimals)
	if s == NA {
		return NA
	}
	return v
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

// WriteWorkbook writes one row per batch outcome to an XLSX workbook.
// Trials that failed validation carry their error in the Warnings column.
func WriteWorkbook(w io.Writer, outcomes []batch.Outcome) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if err := f.SetSheetRow(resultsSheet, "A1", &workbookHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(workbookHeader))
	if err := f.SetCellStyle(resultsSheet, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	if err := f.SetPanes(resultsSheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header: %w", err)
	}

	for i, o := range outcomes {
		row := outcomeRow(o)
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(resultsSheet, addr, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(resultsSheet, "A", "A", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(resultsSheet, lastCol, lastCol, 80); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func outcomeRow(o batch.Outcome) []any {
	in := o.Trial.Input
	row := []any{o.Trial.Name, in.B, in.H, in.D, in.Fc, in.Fy, in.Es, in.As}

	if o.Err != nil {
		row = append(row, make([]any, len(workbookHeader)-len(row)-1)...)
		return append(row, "invalid input: "+o.Err.Error())
	}

	r := o.Results
	var warnings string
	for i, w := range r.Warnings {
		if i > 0 {
			warnings += "; "
		}
		warnings += w.String()
	}

	return append(row,
		cell(r.Beta1, DecBeta1), cell(r.A, DecLength), cell(r.C, DecLength),
		cell(r.EpsilonT, DecStrain), cell(r.EpsilonY, DecStrain), cell(r.Phi, DecPhi),
		string(r.SectionType),
		cell(r.Rho, DecRatio), cell(r.RhoB, DecRatio), cell(r.RhoMax, DecRatio), cell(r.RhoMin, DecRatio),
		cell(r.MnKipFt, DecKipFt), cell(r.PhiMnKipFt, DecKipFt),
		yesNo(r.IsAdequatelyReinforced), yesNo(r.IsNotOverReinforced), yesNo(r.SteelYields),
		warnings,
	)
}
