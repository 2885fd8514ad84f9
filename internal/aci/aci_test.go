package aci

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeta1(t *testing.T) {
	for _, fc := range []float64{2500, 3000, 4000} {
		assert.Equal(t, 0.85, Beta1(fc), "f'c=%v", fc)
	}
	assert.InDelta(t, 0.80, Beta1(5000), 1e-12)
	assert.InDelta(t, 0.75, Beta1(6000), 1e-12)
	assert.Equal(t, 0.65, Beta1(8000))
	assert.Equal(t, 0.65, Beta1(10000))
}

func TestTensionStrain(t *testing.T) {
	assert.InDelta(t, 0.009427, TensionStrain(21.5, 5.1903), 1e-5)
	assert.True(t, math.IsInf(TensionStrain(21.5, 0), 1))
	assert.True(t, math.IsInf(TensionStrain(21.5, -1), 1))
	assert.Less(t, TensionStrain(10, 12), 0.0)
}

func TestPhi(t *testing.T) {
	ey := YieldStrain(60000, DefaultEs)

	assert.Equal(t, PhiTension, Phi(0.005, ey))
	assert.Equal(t, PhiTension, Phi(0.02, ey))
	assert.Equal(t, PhiCompression, Phi(ey, ey))
	assert.Equal(t, PhiCompression, Phi(0.001, ey))
	assert.Equal(t, PhiTension, Phi(math.Inf(1), ey))

	mid := (ey + EpsilonTC) / 2
	assert.InDelta(t, 0.775, Phi(mid, ey), 1e-12)
}

func TestPhiContinuity(t *testing.T) {
	ey := YieldStrain(60000, DefaultEs)
	transition := func(et float64) float64 {
		return PhiCompression + (PhiTension-PhiCompression)*(et-ey)/(EpsilonTC-ey)
	}

	assert.InDelta(t, PhiCompression, transition(ey), 1e-15)
	assert.InDelta(t, PhiTension, transition(EpsilonTC), 1e-15)

	below := Phi(math.Nextafter(EpsilonTC, 0), ey)
	assert.InDelta(t, PhiTension, below, 1e-9)
	above := Phi(math.Nextafter(ey, 1), ey)
	assert.InDelta(t, PhiCompression, above, 1e-9)
}

func TestClassifyAgreesWithPhi(t *testing.T) {
	ey := YieldStrain(60000, DefaultEs)
	for _, et := range []float64{-0.001, 0, 0.001, ey, 0.0025, 0.004, 0.005, 0.01, math.Inf(1)} {
		switch Classify(et, ey) {
		case TensionControlled:
			assert.Equal(t, PhiTension, Phi(et, ey), "εt=%v", et)
		case CompressionControlled:
			assert.Equal(t, PhiCompression, Phi(et, ey), "εt=%v", et)
		case Transition:
			phi := Phi(et, ey)
			assert.Greater(t, phi, PhiCompression, "εt=%v", et)
			assert.Less(t, phi, PhiTension, "εt=%v", et)
		}
	}
}

func TestHighYieldStrainHasNoTransition(t *testing.T) {
	ey := 0.006
	assert.Equal(t, TensionControlled, Classify(0.0055, ey))
	assert.Equal(t, CompressionControlled, Classify(0.0049, ey))
	assert.Equal(t, PhiCompression, Phi(0.0049, ey))
}

func TestReinforcementRatios(t *testing.T) {
	beta1 := Beta1(4000)
	ey := YieldStrain(60000, DefaultEs)

	assert.InDelta(t, 0.0033333, RhoMin(4000, 60000), 1e-6)
	// 3√f'c governs above f'c = 4444 psi
	assert.InDelta(t, 3*math.Sqrt(6000)/60000, RhoMin(6000, 60000), 1e-12)

	assert.InDelta(t, 0.020640, RhoMax(beta1, 4000, 60000), 1e-5)
	assert.InDelta(t, 0.028508, RhoBalanced(beta1, 4000, 60000, ey), 1e-5)
	assert.Greater(t, RhoBalanced(beta1, 4000, 60000, ey), RhoMax(beta1, 4000, 60000))

	assert.Equal(t, 0.0, Rho(0, 12, 21.5))
	assert.InDelta(t, 3.0/(12*21.5), Rho(3.0, 12, 21.5), 1e-15)
}

func TestStressBlockAndMoment(t *testing.T) {
	a := StressBlockDepth(3.0, 60000, 4000, 12)
	assert.InDelta(t, 4.4118, a, 1e-3)
	assert.InDelta(t, 5.1903, NeutralAxisDepth(a, 0.85), 1e-3)

	mn := NominalMoment(3.0, 60000, 21.5, a)
	assert.InDelta(t, 3472941, mn, 10)
	assert.InDelta(t, 289.41, KipFt(mn), 0.01)
	assert.InDelta(t, mn, LbIn(KipFt(mn)), 1e-6)

	assert.True(t, math.IsInf(StressBlockDepth(3.0, 60000, 4000, 0), 1))
}
