package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/acibeam/internal/batch"
	"github.com/alexiusacademia/acibeam/internal/beam"
)

func sampleInput() beam.Input {
	return beam.Input{B: 12, H: 24, D: 21.5, Fc: 4000, Fy: 60000, Es: 29000000, As: 3.0}
}

var sampleMeta = Meta{
	Project:  "Warehouse Mezzanine",
	Engineer: "J. Cruz",
	Date:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
}

func TestBuildUsesResultValues(t *testing.T) {
	in := sampleInput()
	r := beam.Analyze(in)
	sections := Build(in, r)

	var all []string
	for _, s := range sections {
		for _, l := range s.Lines {
			all = append(all, l.Label+" "+l.Formula+" "+l.Value)
		}
	}
	text := strings.Join(all, "\n")

	assert.Contains(t, text, "4.412 in")
	assert.Contains(t, text, "5.190 in")
	assert.Contains(t, text, "289.41 kip-ft")
	assert.Contains(t, text, "260.47 kip-ft")
	assert.Contains(t, text, "tension-controlled")
	assert.NotContains(t, text, "FAIL")

	for _, s := range sections {
		assert.NotEqual(t, "Warnings", s.Title, "no warnings section for a passing design")
	}
}

func TestBuildNonFinite(t *testing.T) {
	in := sampleInput()
	in.As = 0
	r := beam.Analyze(in)
	sections := Build(in, r)

	last := sections[len(sections)-1]
	assert.Equal(t, "Warnings", last.Title)
	require.Len(t, last.Notes, 1)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleMeta, sections))
	out := buf.String()

	assert.Contains(t, out, "εt")
	assert.Contains(t, out, NA)
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "Warning: Reinforcement ratio ρ = 0.000%")
	assert.Contains(t, out, "Project:  Warehouse Mezzanine")
	assert.Contains(t, out, "2026-03-14")
}

func TestWritePDF(t *testing.T) {
	in := sampleInput()
	in.As = 20
	r := beam.Analyze(in)

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sampleMeta, Build(in, r)))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestWriteWorkbook(t *testing.T) {
	good := batch.Trial{Name: "B1", Input: sampleInput()}
	bad := batch.Trial{Name: "B2", Input: beam.Input{H: 24}}
	outcomes := []batch.Outcome{
		{Trial: good, Results: beam.Analyze(good.Input)},
		{Trial: bad, Err: errors.New("b: must be a positive number, got 0")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, outcomes))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(resultsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Trial", rows[0][0])
	assert.Equal(t, "B1", rows[1][0])
	assert.Equal(t, "tension-controlled", rows[1][14])
	assert.Equal(t, "yes", rows[1][21])

	last := rows[2][len(rows[2])-1]
	assert.Equal(t, "invalid input: b: must be a positive number, got 0", last)
}

func TestWorkbookNonFiniteCell(t *testing.T) {
	in := sampleInput()
	in.As = 0
	out := batch.Outcome{Trial: batch.Trial{Name: "zero", Input: in}, Results: beam.Analyze(in)}

	row := outcomeRow(out)
	require.Len(t, row, len(workbookHeader))
	assert.Equal(t, NA, row[11])
}
