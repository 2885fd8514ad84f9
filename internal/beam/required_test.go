package beam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredSteelRoundTrip(t *testing.T) {
	r := Analyze(referenceInput())

	got := RequiredSteel(RequiredSteelInput{Mu: r.PhiMn, B: 12, D: 21.5, Fc: 4000, Fy: 60000})

	assert.True(t, got.IsValid)
	assert.Equal(t, "OK", got.Message)
	assert.InDelta(t, 3.0, got.AsRequired, 1e-6)
	assert.InDelta(t, r.Rho, got.RhoRequired, 1e-9)
	assert.InDelta(t, r.RhoMax, got.RhoMax, 1e-12)
	assert.Equal(t, 0.90, got.Phi)
}

func TestRequiredSteelMomentTooLarge(t *testing.T) {
	got := RequiredSteel(RequiredSteelInput{Mu: 1e8, B: 12, D: 21.5, Fc: 4000, Fy: 60000})

	assert.False(t, got.IsValid)
	assert.Equal(t, 0.0, got.AsRequired)
	assert.NotEmpty(t, got.Message)
	assert.Greater(t, 2*got.Rn, 0.85*4000.0)
}

func TestRequiredSteelExceedsRhoMax(t *testing.T) {
	got := RequiredSteel(RequiredSteelInput{Mu: 5.8e6, B: 12, D: 21.5, Fc: 4000, Fy: 60000})

	assert.False(t, got.IsValid)
	assert.InDelta(t, 0.02478, got.RhoRequired, 1e-4)
	assert.Greater(t, got.AsRequired, 0.0)
	assert.Contains(t, got.Message, "ρmax")
}

func TestRequiredSteelZeroMoment(t *testing.T) {
	got := RequiredSteel(RequiredSteelInput{Mu: 0, B: 12, D: 21.5, Fc: 4000, Fy: 60000})

	assert.True(t, got.IsValid)
	assert.Equal(t, 0.0, got.AsRequired)
}

func TestRequiredSteelDegenerate(t *testing.T) {
	assert.NotPanics(t, func() {
		got := RequiredSteel(RequiredSteelInput{Mu: 0, B: 0, D: 0, Fc: 4000, Fy: 60000})
		assert.False(t, got.IsValid)
		assert.NotEmpty(t, got.Message)
	})
}
