package beam

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsReference(t *testing.T) {
	assert.NoError(t, Validate(referenceInput()))

	in := referenceInput()
	in.As = 0
	assert.NoError(t, Validate(in))
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Input)
		field string
	}{
		{"zero width", func(in *Input) { in.B = 0 }, "b"},
		{"negative fc", func(in *Input) { in.Fc = -1 }, "fc"},
		{"zero modulus", func(in *Input) { in.Es = 0 }, "Es"},
		{"negative steel", func(in *Input) { in.As = -0.1 }, "As"},
		{"d beyond h", func(in *Input) { in.D = 25 }, "d"},
		{"d' outside section", func(in *Input) { in.DPrime = 30 }, "d_prime"},
		{"high strength steel", func(in *Input) { in.Fy = 150000 }, "fy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := referenceInput()
			tt.mod(&in)

			err := Validate(in)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	err := Validate(Input{})
	require.Error(t, err)
	for _, field := range []string{"b:", "h:", "d:", "fc:", "fy:", "Es:"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestRequiredSteelInputValidate(t *testing.T) {
	assert.NoError(t, RequiredSteelInput{Mu: 1e6, B: 12, D: 21.5, Fc: 4000, Fy: 60000}.Validate())
	assert.Error(t, RequiredSteelInput{Mu: -1, B: 12, D: 21.5, Fc: 4000, Fy: 60000}.Validate())
	assert.Error(t, RequiredSteelInput{Mu: 1e6, D: 21.5, Fc: 4000, Fy: 60000}.Validate())
}
