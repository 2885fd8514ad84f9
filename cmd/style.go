package cmd

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexiusacademia/acibeam/internal/aci"
	"github.com/alexiusacademia/acibeam/internal/beam"
	"github.com/alexiusacademia/acibeam/internal/diagram"
)

var (
	titler = cases.Title(language.English)

	headingStyle = lipgloss.NewStyle().Bold(true)
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	capacityBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(0, 2).
			MarginLeft(2)
)

// useColor reports whether styled output should be written to stdout.
func useColor() bool {
	if noColor || (cfg != nil && !cfg.Output.Color) {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func paint(style lipgloss.Style, s string) string {
	if !useColor() {
		return s
	}
	return style.Render(s)
}

func severityStyle(s beam.Severity) lipgloss.Style {
	switch s {
	case beam.SeverityError:
		return errorStyle
	case beam.SeverityWarning:
		return warningStyle
	default:
		return noteStyle
	}
}

// sectionLabel turns "tension-controlled" into "Tension Controlled".
func sectionLabel(t aci.SectionType) string {
	return titler.String(strings.ReplaceAll(string(t), "-", " "))
}

// heading prints a section title with the rule line beneath it.
func heading(title string) string {
	return paint(headingStyle, title+":") + "\n" +
		"───────────────────────────────────────────────────────────────"
}

// banner prints the boxed title at the top of a command's output.
func banner(title string) string {
	rule := "═══════════════════════════════════════════════════════════════"
	return rule + "\n     " + title + "\n" + rule
}

// box renders a titled result box: a lipgloss border on a color terminal,
// the plain box-drawing summary otherwise.
func box(title string, lines ...string) string {
	if !useColor() {
		return strings.TrimRight(diagram.DrawSummaryBox(title, lines), "\n")
	}
	return capacityBox.Render(strings.Join(append([]string{paint(headingStyle, title)}, lines...), "\n"))
}

func status(ok bool, pass, fail string) string {
	if ok {
		return paint(passStyle, "✓ "+pass)
	}
	return paint(errorStyle, "✗ "+fail)
}
