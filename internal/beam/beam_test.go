package beam

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/acibeam/internal/aci"
)

func referenceInput() Input {
	return Input{
		B:  12,
		H:  24,
		D:  21.5,
		Fc: 4000,
		Fy: 60000,
		Es: 29000000,
		As: 3.0,
	}
}

func severities(ws []Warning) []Severity {
	out := make([]Severity, len(ws))
	for i, w := range ws {
		out[i] = w.Severity
	}
	return out
}

func TestAnalyzeReferenceSection(t *testing.T) {
	r := Analyze(referenceInput())

	assert.Equal(t, 0.85, r.Beta1)
	assert.InDelta(t, 4.4118, r.A, 1e-3)
	assert.InDelta(t, 5.1903, r.C, 1e-3)
	assert.InDelta(t, 0.009427, r.EpsilonT, 1e-5)
	assert.InDelta(t, 0.0020690, r.EpsilonY, 1e-6)
	assert.Equal(t, aci.EpsilonCU, r.EpsilonCU)

	assert.Equal(t, aci.TensionControlled, r.SectionType)
	assert.Equal(t, 0.90, r.Phi)

	assert.InDelta(t, 3472941, r.Mn, 10)
	assert.InDelta(t, 289.4, r.MnKipFt, 0.05)
	assert.InDelta(t, 260.5, r.PhiMnKipFt, 0.05)
	assert.InDelta(t, r.Phi*r.Mn, r.PhiMn, 1e-6)
	assert.InDelta(t, r.Mn/12000, r.MnKipFt, 1e-9)

	assert.InDelta(t, 3.0/(12*21.5), r.Rho, 1e-12)
	assert.True(t, r.SteelYields)
	assert.True(t, r.IsAdequatelyReinforced)
	assert.True(t, r.IsNotOverReinforced)
	assert.Empty(t, r.Warnings)
	assert.False(t, r.HasErrors())
}

func TestAnalyzeChecksMatchSourceFields(t *testing.T) {
	for _, as := range []float64{0, 0.5, 1, 3, 4.97, 6, 10, 20} {
		in := referenceInput()
		in.As = as
		r := Analyze(in)

		assert.Equal(t, r.EpsilonT >= r.EpsilonY, r.SteelYields, "As=%v", as)
		assert.Equal(t, r.Rho >= r.RhoMin, r.IsAdequatelyReinforced, "As=%v", as)
		assert.Equal(t, r.Rho <= r.RhoMax, r.IsNotOverReinforced, "As=%v", as)
		assert.Equal(t, aci.Classify(r.EpsilonT, r.EpsilonY), r.SectionType, "As=%v", as)
	}
}

func TestAnalyzeZeroSteel(t *testing.T) {
	in := referenceInput()
	in.As = 0
	r := Analyze(in)

	assert.Equal(t, 0.0, r.A)
	assert.Equal(t, 0.0, r.C)
	assert.True(t, math.IsInf(r.EpsilonT, 1))
	assert.Equal(t, 0.0, r.Rho)
	assert.Equal(t, aci.TensionControlled, r.SectionType)
	assert.False(t, r.IsAdequatelyReinforced)

	require.Len(t, r.Warnings, 1)
	assert.Equal(t, SeverityWarning, r.Warnings[0].Severity)
	assert.Contains(t, r.Warnings[0].Message, "below minimum")
	assert.Contains(t, r.Warnings[0].Message, "0.000%")
	assert.Contains(t, r.Warnings[0].Message, "0.333%")
}

func TestAnalyzeNeutralAxisBelowSteel(t *testing.T) {
	in := referenceInput()
	in.As = 20
	r := Analyze(in)

	assert.GreaterOrEqual(t, r.C, in.D)
	assert.Less(t, r.EpsilonT, 0.0)
	assert.Equal(t, aci.CompressionControlled, r.SectionType)
	assert.Equal(t, 0.65, r.Phi)
	assert.False(t, math.IsNaN(r.Mn))
	assert.True(t, r.HasErrors())

	assert.Equal(t, []Severity{
		SeverityWarning, // steel does not yield
		SeverityWarning, // over maximum
		SeverityWarning, // compression-controlled
		SeverityError,   // a > d
		SeverityError,   // c >= d
	}, severities(r.Warnings))
	assert.Contains(t, r.Warnings[3].Message, "Stress block depth exceeds effective depth")
	assert.Contains(t, r.Warnings[4].Message, "Neutral axis at or below tension steel")
	assert.Equal(t, "Error: "+r.Warnings[4].Message, r.Warnings[4].String())
}

func TestAnalyzeTransitionZone(t *testing.T) {
	in := referenceInput()
	in.As = 4.97
	r := Analyze(in)

	assert.Equal(t, aci.Transition, r.SectionType)
	assert.InDelta(t, 0.0045012, r.EpsilonT, 1e-6)
	assert.InDelta(t, 0.8575, r.Phi, 1e-3)
	assert.True(t, r.IsNotOverReinforced)

	require.Len(t, r.Warnings, 1)
	assert.Equal(t, SeverityNote, r.Warnings[0].Severity)
	assert.Equal(t, "Note: Section is in the transition zone (φ = 0.857).", r.Warnings[0].String())
}

func TestAnalyzeWarningOrder(t *testing.T) {
	in := referenceInput()
	in.As = 6
	r := Analyze(in)

	assert.True(t, r.SteelYields)
	assert.False(t, r.IsNotOverReinforced)
	require.Len(t, r.Warnings, 2)
	assert.Contains(t, r.Warnings[0].Message, "exceeds maximum")
	assert.Equal(t, SeverityNote, r.Warnings[1].Severity)
}

func TestAnalyzeMonotonicInSteel(t *testing.T) {
	prev := Analyze(Input{B: 12, H: 24, D: 21.5, Fc: 4000, Fy: 60000, Es: 29000000, As: 0.5})
	for as := 1.0; as <= 12; as += 0.5 {
		in := referenceInput()
		in.As = as
		r := Analyze(in)

		assert.Greater(t, r.A, prev.A, "As=%v", as)
		assert.Greater(t, r.C, prev.C, "As=%v", as)
		assert.Less(t, r.EpsilonT, prev.EpsilonT, "As=%v", as)
		prev = r
	}
	assert.Equal(t, aci.CompressionControlled, prev.SectionType)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	for _, as := range []float64{0, 3, 20} {
		in := referenceInput()
		in.As = as
		first := Analyze(in)
		second := Analyze(in)
		assert.Empty(t, cmp.Diff(first, second, cmpopts.EquateNaNs()), "As=%v", as)
	}
}

func TestAnalyzeIgnoresCompressionSteel(t *testing.T) {
	in := referenceInput()
	base := Analyze(in)

	in.AsPrime = 1.2
	in.DPrime = 2.5
	with := Analyze(in)

	assert.Empty(t, cmp.Diff(base, with))
}

func TestAnalyzeDegenerateWidth(t *testing.T) {
	in := referenceInput()
	in.B = 0

	assert.NotPanics(t, func() {
		r := Analyze(in)
		assert.True(t, math.IsInf(r.A, 1))
		assert.True(t, r.HasErrors())
	})
}

func TestResultsJSONNonFinite(t *testing.T) {
	in := referenceInput()
	in.As = 0

	data, err := json.Marshal(Analyze(in))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded["epsilon_t"])
	assert.Equal(t, 0.0, decoded["a"])
	assert.Equal(t, "tension-controlled", decoded["sectionType"])
	assert.Equal(t, false, decoded["isAdequatelyReinforced"])

	warnings, ok := decoded["warnings"].([]any)
	require.True(t, ok)
	require.Len(t, warnings, 1)
	w := warnings[0].(map[string]any)
	assert.Equal(t, "warning", w["severity"])
	assert.Contains(t, w["text"], "Warning: Reinforcement ratio")
}

func TestSeverityText(t *testing.T) {
	for _, s := range []Severity{SeverityNote, SeverityWarning, SeverityError} {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var back Severity
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, s, back)
	}

	var s Severity
	assert.Error(t, s.UnmarshalText([]byte("fatal")))
}
