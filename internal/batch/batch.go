// Package batch reads sets of trial sections from YAML or XLSX files and
// analyzes each one.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/acibeam/internal/beam"
)

// Defaults fill in material and geometry values a trial leaves at zero.
// Cover is a pointer so that an explicit zero cover is kept.
type Defaults struct {
	Fc    float64  `yaml:"fc"`
	Fy    float64  `yaml:"fy"`
	Es    float64  `yaml:"Es"`
	Cover *float64 `yaml:"cover"` // d = h - cover when d is omitted
}

// merge returns d with zero fields taken from fallback.
func (d Defaults) merge(fallback Defaults) Defaults {
	if d.Fc == 0 {
		d.Fc = fallback.Fc
	}
	if d.Fy == 0 {
		d.Fy = fallback.Fy
	}
	if d.Es == 0 {
		d.Es = fallback.Es
	}
	if d.Cover == nil {
		d.Cover = fallback.Cover
	}
	return d
}

// Trial is one named section to analyze.
type Trial struct {
	Name       string   `yaml:"name"`
	Cover      *float64 `yaml:"cover,omitempty"`
	beam.Input `yaml:",inline"`
}

// File is the contents of a trial file.
type File struct {
	Defaults Defaults `yaml:"defaults"`
	Trials   []Trial  `yaml:"trials"`
}

// Resolve applies file defaults, then fallback, to every trial and derives
// d from the cover when d is missing.
func (f *File) Resolve(fallback Defaults) []Trial {
	def := f.Defaults.merge(fallback)

	out := make([]Trial, len(f.Trials))
	for i, t := range f.Trials {
		if t.Name == "" {
			t.Name = fmt.Sprintf("T%d", i+1)
		}
		if t.Fc == 0 {
			t.Fc = def.Fc
		}
		if t.Fy == 0 {
			t.Fy = def.Fy
		}
		if t.Es == 0 {
			t.Es = def.Es
		}
		if t.D == 0 && t.H > 0 {
			var cover float64
			switch {
			case t.Cover != nil:
				cover = *t.Cover
			case def.Cover != nil:
				cover = *def.Cover
			}
			t.D = t.H - cover
		}
		out[i] = t
	}
	return out
}

// Outcome is the analysis of one trial. Err holds the validation error of
// a trial that was not analyzed.
type Outcome struct {
	Trial   Trial
	Results beam.Results
	Err     error
}

// Run validates and analyzes every trial in order.
func Run(trials []Trial) []Outcome {
	out := make([]Outcome, 0, len(trials))
	for _, t := range trials {
		o := Outcome{Trial: t}
		if err := beam.Validate(t.Input); err != nil {
			o.Err = err
		} else {
			o.Results = beam.Analyze(t.Input)
		}
		out = append(out, o)
	}
	return out
}

// Load reads a trial file, choosing the format from its extension.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trial file: %w", err)
	}
	defer fh.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ReadYAML(fh)
	case ".xlsx":
		return ReadXLSX(fh)
	default:
		return nil, fmt.Errorf("unsupported trial file format %q (want .yaml, .yml or .xlsx)", ext)
	}
}
