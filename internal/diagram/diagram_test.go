package diagram

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/acibeam/internal/beam"
)

func sectionData(as float64) SectionDiagramData {
	in := beam.Input{B: 12, H: 24, D: 21.5, DPrime: 2.5, Fc: 4000, Fy: 60000, Es: 29000000, As: as, AsPrime: 0.62}
	return NewSectionData(in, beam.Analyze(in))
}

func TestSectionDataVisibility(t *testing.T) {
	d := sectionData(3.0)
	assert.True(t, d.HasStressBlock())
	assert.True(t, d.HasNeutralAxis())
	assert.True(t, d.HasCompSteel())
	assert.True(t, d.HasTensionStrain())

	// c exceeds h
	d = sectionData(20)
	assert.False(t, d.HasStressBlock())
	assert.False(t, d.HasNeutralAxis())

	// a = c = 0 and εt = +Inf
	d = sectionData(0)
	assert.False(t, d.HasStressBlock())
	assert.False(t, d.HasNeutralAxis())
	assert.False(t, d.HasTensionStrain())
}

func TestDrawASCIISectionDiagram(t *testing.T) {
	out := DrawASCIISectionDiagram(sectionData(3.0))
	assert.Contains(t, out, "◄─ N.A.")
	assert.Contains(t, out, "░")
	assert.Contains(t, out, "●────●")
	assert.Contains(t, out, "●──●")
	assert.Contains(t, out, "εt = 0.00943 (yields)")

	out = DrawASCIISectionDiagram(sectionData(20))
	assert.NotContains(t, out, "◄─ N.A.")
	assert.NotContains(t, out, "░░░░")
	assert.Contains(t, out, "N.A. not drawn")

	out = DrawASCIISectionDiagram(sectionData(0))
	assert.Contains(t, out, "εt = N/A")
}

func TestDrawStrainDiagram(t *testing.T) {
	out := DrawStrainDiagram(sectionData(3.0))
	assert.Contains(t, out, "N.A.   ├")
	assert.Contains(t, out, "✓yields")
	assert.Contains(t, out, "yield strain")

	out = DrawStrainDiagram(sectionData(0))
	assert.Contains(t, out, "Not drawn")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("DESIGN CAPACITY", []string{"φMn = 260.47 kip-ft", "Mn = 289.41 kip-ft"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top, title, separator, two body lines, bottom
	require.Len(t, lines, 6)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "line %q", l)
	}
}

func TestWriteStrainSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStrainSVG(&buf, sectionData(3.0)))
	assert.Contains(t, buf.String(), "<svg")

	buf.Reset()
	err := WriteStrainSVG(&buf, sectionData(0))
	require.ErrorIs(t, err, ErrNotDrawable)
	assert.Zero(t, buf.Len())
}

func TestWriteSectionSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSectionSVG(&buf, sectionData(3.0)))
	assert.Contains(t, buf.String(), "<svg")

	buf.Reset()
	require.NoError(t, WriteSectionSVG(&buf, sectionData(0)))
	assert.Contains(t, buf.String(), "<svg")
}

func TestExportDiagrams(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportSectionDiagram(sectionData(3.0), filepath.Join(dir, "out", "section"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "section.png"), path)
	_, err = os.Stat(path)
	assert.NoError(t, err)

	path, err = ExportStrainDiagram(sectionData(3.0), filepath.Join(dir, "strain.svg"))
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)

	_, err = ExportStrainDiagram(sectionData(0), filepath.Join(dir, "none.svg"))
	assert.ErrorIs(t, err, ErrNotDrawable)
}

func TestDrawCapacityCurve(t *testing.T) {
	in := beam.Input{B: 12, H: 24, D: 21.5, Fc: 4000, Fy: 60000, Es: 29000000, As: 3}
	out := DrawCapacityCurve(beam.CapacityCurve(in, 40))

	assert.Contains(t, out, "φMn (kip-ft) vs As")
	assert.Greater(t, strings.Count(out, "\n"), 10)

	assert.Empty(t, DrawCapacityCurve(nil))
}
