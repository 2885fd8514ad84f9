package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/acibeam/internal/beam"
)

// WritePDF writes the calculation sheet as an A4 PDF document. The core
// PDF fonts are Latin-1 only, so all text goes through ASCII.
func WritePDF(w io.Writer, meta Meta, sections []Section) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 7, ASCII(meta.title()), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	if meta.Project != "" {
		pdf.CellFormat(0, 5, "Project: "+ASCII(meta.Project), "", 1, "L", false, 0, "")
	}
	if meta.Engineer != "" {
		pdf.CellFormat(0, 5, "Engineer: "+ASCII(meta.Engineer), "", 1, "L", false, 0, "")
	}
	if !meta.Date.IsZero() {
		pdf.CellFormat(0, 5, "Date: "+meta.Date.Format("2006-01-02"), "", 1, "L", false, 0, "")
	}

	const (
		labelW   = 40.0
		valueW   = 45.0
		rowH     = 5.5
		pageW    = 210.0 - 30.0
		formulaW = pageW - labelW - valueW
	)

	for _, s := range sections {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(0, 7, ASCII(s.Title), "", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for _, l := range s.Lines {
			pdf.CellFormat(labelW, rowH, ASCII(l.Label), "B", 0, "L", false, 0, "")
			pdf.CellFormat(formulaW, rowH, ASCII(l.Formula), "B", 0, "L", false, 0, "")
			setValueColor(pdf, l.Value)
			pdf.CellFormat(valueW, rowH, ASCII(l.Value), "B", 1, "R", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}

		for _, n := range s.Notes {
			setSeverityColor(pdf, n.Severity)
			pdf.MultiCell(0, rowH, "- "+ASCII(n.String()), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("building pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func setValueColor(pdf *gofpdf.Fpdf, value string) {
	switch value {
	case "PASS":
		pdf.SetTextColor(0, 128, 0)
	case "FAIL":
		pdf.SetTextColor(192, 0, 0)
	}
}

func setSeverityColor(pdf *gofpdf.Fpdf, s beam.Severity) {
	switch s {
	case beam.SeverityError:
		pdf.SetTextColor(192, 0, 0)
	case beam.SeverityWarning:
		pdf.SetTextColor(180, 100, 0)
	default:
		pdf.SetTextColor(60, 60, 60)
	}
}
