package aci

import "math"

// LoadCombination represents an ACI 318-19 strength design load combination
// Table 5.3.1
type LoadCombination struct {
	ID          string
	Description string

	// Load factors for each load type
	Dead  float64 // D
	Live  float64 // L
	Wind  float64 // W
	Quake float64 // E

	// RoofSnowRain applies to the governing of Lr, S and R
	RoofSnowRain float64
	// Snow is the separate snow factor of combination 5.3.1e
	Snow         float64
	// LiveOrWind uses the larger of 1.0L and 0.5W instead of Live and Wind
	LiveOrWind   bool
}

// LoadCombinations lists the basic combinations of Table 5.3.1
var LoadCombinations = []LoadCombination{
	{ID: "5.3.1a", Description: "1.4D", Dead: 1.4},
	{ID: "5.3.1b", Description: "1.2D + 1.6L + 0.5(Lr or S or R)", Dead: 1.2, Live: 1.6, RoofSnowRain: 0.5},
	{ID: "5.3.1c", Description: "1.2D + 1.6(Lr or S or R) + (1.0L or 0.5W)", Dead: 1.2, RoofSnowRain: 1.6, LiveOrWind: true},
	{ID: "5.3.1d", Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or S or R)", Dead: 1.2, Wind: 1.0, Live: 1.0, RoofSnowRain: 0.5},
	{ID: "5.3.1e", Description: "1.2D + 1.0E + 1.0L + 0.2S", Dead: 1.2, Quake: 1.0, Live: 1.0, Snow: 0.2},
	{ID: "5.3.1f", Description: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
	{ID: "5.3.1g", Description: "0.9D + 1.0E", Dead: 0.9, Quake: 1.0},
}

// GravityCombinations are the combinations that govern most beams
// under dead and live load only.
var GravityCombinations = LoadCombinations[:2]

// LoadMoments holds unfactored moments from different load types (kip-ft)
type LoadMoments struct {
	Dead       float64 `json:"dead" yaml:"dead"`
	Live       float64 `json:"live" yaml:"live"`
	Roof       float64 `json:"roof" yaml:"roof"`
	Snow       float64 `json:"snow" yaml:"snow"`
	Rain       float64 `json:"rain" yaml:"rain"`
	Wind       float64 `json:"wind" yaml:"wind"`
	Earthquake float64 `json:"earthquake" yaml:"earthquake"`
}

// IsZero reports whether no moment was supplied.
func (m LoadMoments) IsZero() bool {
	return m == LoadMoments{}
}

// FactoredMoment calculates the factored moment for the combination.
func (lc LoadCombination) FactoredMoment(m LoadMoments) float64 {
	roofSnowRain := math.Max(m.Roof, math.Max(m.Snow, m.Rain))

	mu := lc.Dead*m.Dead +
		lc.RoofSnowRain*roofSnowRain +
		lc.Snow*m.Snow +
		lc.Quake*m.Earthquake

	if lc.LiveOrWind {
		return mu + math.Max(1.0*m.Live, 0.5*m.Wind)
	}
	return mu + lc.Live*m.Live + lc.Wind*m.Wind
}

// GoverningMoment finds the maximum factored moment from all combinations
func GoverningMoment(m LoadMoments, combinations []LoadCombination) (float64, LoadCombination) {
	var maxMoment float64
	var governing LoadCombination

	for i, combo := range combinations {
		mu := combo.FactoredMoment(m)
		if i == 0 || mu > maxMoment {
			maxMoment = mu
			governing = combo
		}
	}

	return maxMoment, governing
}
