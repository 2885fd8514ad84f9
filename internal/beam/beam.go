// Package beam analyzes singly reinforced rectangular concrete sections
// for flexure per ACI 318-19.
//
// Analyze and RequiredSteel are pure: they never fail, never validate and
// never block. Physically invalid but computable configurations are
// reported as error-severity warnings on the result. Callers that accept
// user input should run Validate first.
package beam

import "github.com/alexiusacademia/acibeam/internal/aci"

// Input is a rectangular section with its materials and reinforcement.
// Lengths in inches, stresses in psi, areas in in².
type Input struct {
	// Geometry
	B      float64 `json:"b" yaml:"b"`             // width
	H      float64 `json:"h" yaml:"h"`             // total depth
	D      float64 `json:"d" yaml:"d"`             // effective depth to tension steel centroid
	DPrime float64 `json:"d_prime" yaml:"d_prime"` // depth to compression steel centroid

	// Materials
	Fc float64 `json:"fc" yaml:"fc"` // f'c - concrete compressive strength
	Fy float64 `json:"fy" yaml:"fy"` // steel yield strength
	Es float64 `json:"Es" yaml:"Es"` // steel elastic modulus

	// Reinforcement
	As      float64 `json:"As" yaml:"As"`             // tension steel area
	AsPrime float64 `json:"As_prime" yaml:"As_prime"` // compression steel area, display only
}

// Results holds every quantity derived by Analyze.
// Moments are in lb-in, with kip-ft companions.
type Results struct {
	Beta1     float64 `json:"beta1"`
	A         float64 `json:"a"` // depth of compression block (in)
	C         float64 `json:"c"` // neutral axis depth (in)
	EpsilonT  float64 `json:"epsilon_t"`
	EpsilonY  float64 `json:"epsilon_y"`
	EpsilonCU float64 `json:"epsilon_cu"`

	Rho    float64 `json:"rho"`
	RhoB   float64 `json:"rho_b"`
	RhoMax float64 `json:"rho_max"`
	RhoMin float64 `json:"rho_min"`

	Mn         float64 `json:"Mn"`
	MnKipFt    float64 `json:"Mn_kip_ft"`
	Phi        float64 `json:"phi"`
	PhiMn      float64 `json:"phiMn"`
	PhiMnKipFt float64 `json:"phiMn_kip_ft"`

	SectionType aci.SectionType `json:"sectionType"`

	IsAdequatelyReinforced bool `json:"isAdequatelyReinforced"`
	IsNotOverReinforced    bool `json:"isNotOverReinforced"`
	SteelYields            bool `json:"steelYields"`

	Warnings []Warning `json:"warnings"`
}

// HasErrors reports whether any warning is of error severity.
func (r Results) HasErrors() bool {
	for _, w := range r.Warnings {
		if w.Severity == SeverityError {
			return true
		}
	}
	return false
}
