package diagram

import (
	"math"

	"github.com/alexiusacademia/acibeam/internal/beam"
)

// SectionDiagramData holds data for drawing a beam section diagram
type SectionDiagramData struct {
	// Beam dimensions (in)
	Width  float64
	Height float64

	// Analysis results, depths from top (in)
	NeutralAxisDepth float64 // c
	StressBlockDepth float64 // a

	// Reinforcement, depths from top (in), areas (in²)
	TensionSteelDepth float64 // d
	TensionSteelArea  float64
	CompSteelDepth    float64 // d', 0 if none
	CompSteelArea     float64 // 0 if none

	// Strains
	EpsilonCU float64
	EpsilonT  float64
	EpsilonY  float64

	// Stresses (psi)
	Fc float64 // 0.85 f'c
	Fy float64

	TensionYields bool
}

// NewSectionData collects the drawing data from an analysis.
func NewSectionData(in beam.Input, r beam.Results) SectionDiagramData {
	return SectionDiagramData{
		Width:             in.B,
		Height:            in.H,
		NeutralAxisDepth:  r.C,
		StressBlockDepth:  r.A,
		TensionSteelDepth: in.D,
		TensionSteelArea:  in.As,
		CompSteelDepth:    in.DPrime,
		CompSteelArea:     in.AsPrime,
		EpsilonCU:         r.EpsilonCU,
		EpsilonT:          r.EpsilonT,
		EpsilonY:          r.EpsilonY,
		Fc:                0.85 * in.Fc,
		Fy:                in.Fy,
		TensionYields:     r.SteelYields,
	}
}

// within reports whether depth can be drawn inside a section of height h.
func within(depth, h float64) bool {
	return !math.IsNaN(depth) && !math.IsInf(depth, 0) && depth > 0 && depth <= h
}

// HasStressBlock reports whether the stress block fits the section.
func (d SectionDiagramData) HasStressBlock() bool {
	return within(d.StressBlockDepth, d.Height)
}

// HasNeutralAxis reports whether the neutral axis lies inside the section.
func (d SectionDiagramData) HasNeutralAxis() bool {
	return within(d.NeutralAxisDepth, d.Height)
}

// HasCompSteel reports whether compression bars should be drawn.
func (d SectionDiagramData) HasCompSteel() bool {
	return d.CompSteelArea > 0 && within(d.CompSteelDepth, d.Height)
}

// HasTensionStrain reports whether the tension steel strain is drawable.
func (d SectionDiagramData) HasTensionStrain() bool {
	return !math.IsNaN(d.EpsilonT) && !math.IsInf(d.EpsilonT, 0)
}
