package diagram

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/alexiusacademia/acibeam/internal/report"
)

const (
	widthChars  = 30
	heightChars = 20
)

// row returns the text row index of a depth measured from the top.
func row(depth, height float64, rows int) int {
	return int(depth / height * float64(rows))
}

// placeBars overwrites the middle of fill with a bar marker.
func placeBars(fill []rune, marker string) {
	m := []rune(marker)
	start := (len(fill) - len(m)) / 2
	copy(fill[start:], m)
}

// DrawASCIISectionDiagram creates an ASCII representation of beam section with stress block
func DrawASCIISectionDiagram(data SectionDiagramData) string {
	var sb strings.Builder

	// -1 marks elements that cannot be drawn
	naLine, aLine, compLine := -1, -1, -1
	if data.HasNeutralAxis() {
		naLine = row(data.NeutralAxisDepth, data.Height, heightChars)
	}
	if data.HasStressBlock() {
		aLine = row(data.StressBlockDepth, data.Height, heightChars)
	}
	if data.HasCompSteel() {
		compLine = row(data.CompSteelDepth, data.Height, heightChars)
	}
	tensionLine := row(data.TensionSteelDepth, data.Height, heightChars)

	sb.WriteString("\n")
	sb.WriteString("  BEAM SECTION                        STRAIN\n")
	sb.WriteString("  ────────────                        ──────\n")

	for i := 0; i <= heightChars; i++ {
		var line string
		switch i {
		case 0:
			line = fmt.Sprintf("  ┌%s┐", strings.Repeat("─", widthChars))
		case heightChars:
			line = fmt.Sprintf("  └%s┘", strings.Repeat("─", widthChars))
		default:
			// Stress block shading
			ch := ' '
			if i <= aLine {
				ch = '░'
			}
			fill := []rune(strings.Repeat(string(ch), widthChars))

			if i == compLine {
				placeBars(fill, "●──●")
			}
			if i == tensionLine {
				placeBars(fill, "●────●")
			}
			line = fmt.Sprintf("  │%s│", string(fill))
		}

		// Neutral axis marker
		if i == naLine {
			line += " ◄─ N.A."
		} else {
			line += "        "
		}

		// Strain column
		switch {
		case i == 0:
			line += fmt.Sprintf("  ├── εcu = %s", report.Num(data.EpsilonCU, report.DecStrain))
		case i == naLine:
			line += "  ├── ε = 0"
		case i == tensionLine:
			yieldMark := ""
			if data.TensionYields {
				yieldMark = " (yields)"
			}
			line += fmt.Sprintf("  ├── εt = %s%s", report.Num(data.EpsilonT, report.DecStrain), yieldMark)
		case i == compLine:
			line += "  ├── compression steel"
		case i < heightChars:
			line += "  │"
		}

		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = Compression zone (stress block)\n")
	sb.WriteString("  ●●● = Reinforcement\n")
	if naLine >= 0 {
		sb.WriteString(fmt.Sprintf("  N.A. = Neutral Axis at c = %s in from top\n", report.Num(data.NeutralAxisDepth, 2)))
	} else {
		sb.WriteString(fmt.Sprintf("  N.A. not drawn: c = %s in lies outside the section\n", report.Num(data.NeutralAxisDepth, 2)))
	}
	if aLine >= 0 {
		sb.WriteString(fmt.Sprintf("  Stress block depth a = %s in\n", report.Num(data.StressBlockDepth, 2)))
	} else {
		sb.WriteString(fmt.Sprintf("  Stress block not drawn: a = %s in\n", report.Num(data.StressBlockDepth, 2)))
	}

	return sb.String()
}

// DrawStrainDiagram creates an ASCII strain distribution diagram
func DrawStrainDiagram(data SectionDiagramData) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  STRAIN DISTRIBUTION DIAGRAM\n")
	sb.WriteString("  ───────────────────────────\n\n")

	if !data.HasNeutralAxis() || !data.HasTensionStrain() {
		sb.WriteString(fmt.Sprintf("  Not drawn: c = %s in, εt = %s\n",
			report.Num(data.NeutralAxisDepth, 2), report.Num(data.EpsilonT, report.DecStrain)))
		return sb.String()
	}

	const (
		height = 15
		width  = 40
	)

	// Scale strains to fit; the bottom fiber carries the largest tension
	bottomStrain := data.EpsilonCU * (data.Height - data.NeutralAxisDepth) / data.NeutralAxisDepth
	scale := float64(width-10) / max(data.EpsilonCU, bottomStrain)

	naLine := row(data.NeutralAxisDepth, data.Height, height)
	tensionLine := row(data.TensionSteelDepth, data.Height, height)

	for i := 0; i <= height; i++ {
		depth := float64(i) / float64(height) * data.Height

		// Compression above the neutral axis, tension below, both drawn positive
		strain := data.EpsilonCU * (data.NeutralAxisDepth - depth) / data.NeutralAxisDepth
		if strain < 0 {
			strain = -strain
		}
		bar := strings.Repeat("█", max(0, int(strain*scale)))

		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  Top    │%s▶ εcu=%s\n", bar, report.Num(data.EpsilonCU, 4)))
		case i == naLine:
			sb.WriteString(fmt.Sprintf("  N.A.   ├%s (ε=0)\n", strings.Repeat("─", 5)))
		case i == tensionLine:
			mark := ""
			if data.TensionYields {
				mark = " ✓yields"
			}
			sb.WriteString(fmt.Sprintf("  Steel  │%s▶ εt=%s%s\n", bar, report.Num(data.EpsilonT, 4), mark))
		case i == height:
			sb.WriteString(fmt.Sprintf("  Bottom │%s\n", bar))
		default:
			sb.WriteString(fmt.Sprintf("         │%s\n", bar))
		}
	}

	// Yield strain reference
	yieldBar := max(0, int(data.EpsilonY*scale))
	sb.WriteString(fmt.Sprintf("\n  εy = %s %s┤ (yield strain)\n", report.Num(data.EpsilonY, 4), strings.Repeat("─", yieldBar)))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := runewidth.StringWidth(title)
	for _, line := range lines {
		maxLen = max(maxLen, runewidth.StringWidth(line))
	}
	maxLen += 4

	pad := func(s string) string {
		return runewidth.FillRight(s, maxLen-2)
	}

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
