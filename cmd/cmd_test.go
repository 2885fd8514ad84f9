package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/acibeam/internal/aci"
	"github.com/alexiusacademia/acibeam/internal/config"
)

func TestSectionLabel(t *testing.T) {
	assert.Equal(t, "Tension Controlled", sectionLabel(aci.TensionControlled))
	assert.Equal(t, "Transition", sectionLabel(aci.Transition))
	assert.Equal(t, "Compression Controlled", sectionLabel(aci.CompressionControlled))
}

func TestFlagOr(t *testing.T) {
	c := &cobra.Command{Use: "x"}
	var fc float64
	c.Flags().Float64Var(&fc, "fc", 0, "")

	assert.Equal(t, 4000.0, flagOr(c, "fc", fc, 4000))

	require.NoError(t, c.Flags().Set("fc", "5000"))
	assert.Equal(t, 5000.0, flagOr(c, "fc", fc, 4000))
}

func TestAnalyzeInputUsesConfigDefaults(t *testing.T) {
	cfg = &config.Config{
		Materials: config.Materials{Fc: 5000, Fy: 60000, Es: 29000000},
		Geometry:  config.Geometry{Cover: 2.5},
	}
	t.Cleanup(func() { cfg = nil })

	c := &cobra.Command{Use: "analyze"}
	c.Flags().AddFlagSet(beamAnalyzeCmd.Flags())
	require.NoError(t, c.Flags().Set("width", "12"))
	require.NoError(t, c.Flags().Set("height", "24"))
	require.NoError(t, c.Flags().Set("as", "3"))

	in := analyzeInput(c)
	assert.Equal(t, 12.0, in.B)
	assert.Equal(t, 21.5, in.D)
	assert.Equal(t, 5000.0, in.Fc)
	assert.Equal(t, 29000000.0, in.Es)

	require.NoError(t, c.Flags().Set("depth", "20"))
	assert.Equal(t, 20.0, analyzeInput(c).D)
}

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"beam", "analyze"},
		{"beam", "design"},
		{"moment"},
		{"batch"},
		{"serve"},
		{"version"},
	} {
		c, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], c.Name())
	}
}

func TestBoxPlainOutput(t *testing.T) {
	noColor = true
	t.Cleanup(func() { noColor = false })

	out := box("DESIGN CAPACITY", "φMn = 260.47 kip-ft")
	assert.Contains(t, out, "╔")
	assert.Contains(t, out, "╠")
	assert.Contains(t, out, "DESIGN CAPACITY")
	assert.Contains(t, out, "φMn = 260.47 kip-ft")
}
