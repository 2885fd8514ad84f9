package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/acibeam/internal/aci"
)

// RequiredSteelInput is the data needed to size tension steel for a target
// factored moment. Mu is in lb-in.
type RequiredSteelInput struct {
	Mu float64 `json:"Mu" yaml:"Mu"`
	B  float64 `json:"b" yaml:"b"`
	D  float64 `json:"d" yaml:"d"`
	Fc float64 `json:"fc" yaml:"fc"`
	Fy float64 `json:"fy" yaml:"fy"`
}

// RequiredSteelResult holds the outcome of RequiredSteel. An infeasible
// section is reported with IsValid false and AsRequired zero when no real
// solution exists.
type RequiredSteelResult struct {
	AsRequired  float64 `json:"As_required"` // in²
	RhoRequired float64 `json:"rho_required"`
	RhoMax      float64 `json:"rho_max"`
	Rn          float64 `json:"Rn"` // psi
	Phi         float64 `json:"phi"`
	IsValid     bool    `json:"isValid"`
	Message     string  `json:"message"`
}

// RequiredSteel solves the stress block quadratic for the tension steel
// needed to reach Mu, assuming a tension-controlled section (φ = 0.90).
func RequiredSteel(in RequiredSteelInput) RequiredSteelResult {
	phi := aci.PhiTension
	result := RequiredSteelResult{Phi: phi}

	// Rn = Mu / (φ * b * d²)
	result.Rn = in.Mu / (phi * in.B * in.D * in.D)

	// ρ = (0.85*f'c/fy) * (1 - √(1 - 2*Rn/(0.85*f'c)))
	radicand := 1 - 2*result.Rn/(0.85*in.Fc)
	if radicand < 0 {
		result.Message = fmt.Sprintf(
			"Section inadequate: Rn = %.1f psi exceeds the capacity of a singly reinforced section. Increase b or d.",
			result.Rn)
		return result
	}

	rho := (0.85 * in.Fc / in.Fy) * (1 - math.Sqrt(radicand))
	if rho < 0 || math.IsNaN(rho) {
		result.Message = "No valid reinforcement ratio for the given moment."
		return result
	}

	result.RhoRequired = rho
	result.AsRequired = rho * in.B * in.D
	result.RhoMax = aci.RhoMax(aci.Beta1(in.Fc), in.Fc, in.Fy)

	if rho > result.RhoMax {
		result.Message = fmt.Sprintf(
			"Required ρ = %.5f exceeds ρmax = %.5f. Increase section size or use compression steel.",
			rho, result.RhoMax)
		return result
	}

	result.IsValid = true
	result.Message = "OK"
	return result
}
