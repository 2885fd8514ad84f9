package beam

import (
	"encoding/json"
	"fmt"

	"github.com/alexiusacademia/acibeam/internal/aci"
)

// Severity classifies a Warning.
type Severity int

const (
	SeverityNote Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityNote:
		return "Note"
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// MarshalText encodes the severity as its lower-case name.
func (s Severity) MarshalText() ([]byte, error) {
	switch s {
	case SeverityNote:
		return []byte("note"), nil
	case SeverityWarning:
		return []byte("warning"), nil
	case SeverityError:
		return []byte("error"), nil
	}
	return nil, fmt.Errorf("unknown severity %d", int(s))
}

// UnmarshalText parses a lower-case severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "note":
		*s = SeverityNote
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	default:
		return fmt.Errorf("unknown severity %q", text)
	}
	return nil
}

// Warning is a diagnostic attached to Results. Message carries no
// severity prefix; String adds it.
type Warning struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (w Warning) String() string {
	return w.Severity.String() + ": " + w.Message
}

// MarshalJSON includes the rendered text alongside severity and message.
func (w Warning) MarshalJSON() ([]byte, error) {
	type plain Warning
	return json.Marshal(struct {
		plain
		Text string `json:"text"`
	}{plain(w), w.String()})
}

// buildWarnings appends diagnostics in a fixed order regardless of how
// many trigger.
func buildWarnings(in Input, r *Results) []Warning {
	warnings := []Warning{}

	if !r.SteelYields {
		warnings = append(warnings, Warning{SeverityWarning,
			"Steel does not yield (εt < εy). Section is over-reinforced."})
	}
	if !r.IsAdequatelyReinforced {
		warnings = append(warnings, Warning{SeverityWarning, fmt.Sprintf(
			"Reinforcement ratio ρ = %.3f%% is below minimum ρmin = %.3f%% (ACI 318-19 9.6.1.2).",
			r.Rho*100, r.RhoMin*100)})
	}
	if !r.IsNotOverReinforced {
		warnings = append(warnings, Warning{SeverityWarning, fmt.Sprintf(
			"Reinforcement ratio ρ = %.3f%% exceeds maximum ρmax = %.3f%% (εt ≥ 0.004, ACI 318-19 9.3.3.1).",
			r.Rho*100, r.RhoMax*100)})
	}
	switch r.SectionType {
	case aci.CompressionControlled:
		warnings = append(warnings, Warning{SeverityWarning,
			"Section is compression-controlled (φ = 0.65). Brittle failure mode; increase section depth or reduce As."})
	case aci.Transition:
		warnings = append(warnings, Warning{SeverityNote, fmt.Sprintf(
			"Section is in the transition zone (φ = %.3f).", r.Phi)})
	}
	if r.A > in.D {
		warnings = append(warnings, Warning{SeverityError,
			"Stress block depth exceeds effective depth (a > d)."})
	}
	if r.C >= in.D {
		warnings = append(warnings, Warning{SeverityError,
			"Neutral axis at or below tension steel (c ≥ d); invalid configuration."})
	}

	return warnings
}
