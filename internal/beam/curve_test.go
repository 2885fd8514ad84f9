package beam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/acibeam/internal/aci"
)

func TestCapacityCurve(t *testing.T) {
	in := referenceInput()
	pts := CapacityCurve(in, 21)
	require.Len(t, pts, 21)

	assert.Zero(t, pts[0].As)
	assert.Zero(t, pts[0].PhiMnKipFt)
	assert.Equal(t, aci.PhiTension, pts[0].Phi)

	// Last sample sits at the balanced area: εt = εy, compression-controlled.
	last := pts[len(pts)-1]
	assert.InDelta(t, 0.028507*12*21.5, last.As, 1e-3)
	assert.InDelta(t, aci.PhiCompression, last.Phi, 1e-9)

	for i := 1; i < len(pts); i++ {
		assert.Greater(t, pts[i].As, pts[i-1].As)
	}
}

func TestCapacityCurveDegenerate(t *testing.T) {
	assert.Nil(t, CapacityCurve(referenceInput(), 1))

	in := referenceInput()
	in.B = 0
	assert.Nil(t, CapacityCurve(in, 10))
}
