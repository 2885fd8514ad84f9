// Package aci implements the ACI 318-19 flexural provisions used for singly
// reinforced rectangular sections. All functions are pure and work in
// US customary units (in, in², psi, lb-in).
package aci

import "math"

// ACI 318-19 constants

const (
	// Beta1 factors for equivalent rectangular stress block
	// Table 22.2.2.4.3
	Beta1Max   = 0.85   // for f'c <= 4000 psi
	Beta1Min   = 0.65   // lower bound
	Beta1RefFc = 4000.0 // psi

	// Strain limits
	EpsilonCU      = 0.003 // Ultimate concrete strain (22.2.2.1)
	EpsilonTC      = 0.005 // Tension-controlled limit (Table 21.2.2)
	EpsilonMinFlex = 0.004 // Minimum net tensile strain for beams (9.3.3.1)

	// Strength reduction factors (Table 21.2.2)
	PhiTension     = 0.90
	PhiCompression = 0.65 // tied

	// Typical material properties (psi)
	DefaultFc = 4000.0
	DefaultFy = 60000.0    // Grade 60
	DefaultEs = 29000000.0 // 20.2.2.2

	// LbInPerKipFt converts lb-in to kip-ft (1000 lb/kip * 12 in/ft)
	LbInPerKipFt = 12000.0

	stressBlockCoeff = 0.85
)

// SectionType is the ductility classification of a section.
type SectionType string

const (
	TensionControlled     SectionType = "tension-controlled"
	Transition            SectionType = "transition"
	CompressionControlled SectionType = "compression-controlled"
)

// Classify returns the section classification for the given net tensile
// strain and yield strain. It agrees with Phi on every branch.
func Classify(epsilonT, epsilonY float64) SectionType {
	if epsilonT >= EpsilonTC {
		return TensionControlled
	} else if epsilonT <= epsilonY {
		return CompressionControlled
	}
	return Transition
}

// Beta1 calculates the factor for equivalent rectangular stress block
func Beta1(fc float64) float64 {
	if fc <= Beta1RefFc {
		return Beta1Max
	}
	// β1 = 0.85 - 0.05(f'c - 4000)/1000
	beta1 := Beta1Max - 0.05*(fc-Beta1RefFc)/1000
	return math.Max(Beta1Min, beta1)
}

// YieldStrain returns εy = fy/Es.
func YieldStrain(fy, es float64) float64 {
	return fy / es
}

// StressBlockDepth returns a from T = C → As*fy = 0.85*f'c*b*a.
// A zero width or f'c gives a non-finite result.
func StressBlockDepth(as, fy, fc, b float64) float64 {
	return (as * fy) / (stressBlockCoeff * fc * b)
}

// NeutralAxisDepth returns c = a/β1.
func NeutralAxisDepth(a, beta1 float64) float64 {
	return a / beta1
}

// TensionStrain returns the net tensile strain in the extreme tension steel
// from strain compatibility. A non-positive c yields +Inf.
func TensionStrain(d, c float64) float64 {
	if c <= 0 {
		return math.Inf(1)
	}
	return EpsilonCU * (d - c) / c
}

// Phi calculates the strength reduction factor based on strain
// Table 21.2.2
func Phi(epsilonT, epsilonY float64) float64 {
	if epsilonT >= EpsilonTC {
		return PhiTension
	} else if epsilonT <= epsilonY {
		return PhiCompression
	}
	// Transition zone
	return PhiCompression + (PhiTension-PhiCompression)*(epsilonT-epsilonY)/(EpsilonTC-epsilonY)
}

// Rho returns the actual tension reinforcement ratio As/(b*d).
func Rho(as, b, d float64) float64 {
	return as / (b * d)
}

// RhoBalanced calculates balanced reinforcement ratio
func RhoBalanced(beta1, fc, fy, epsilonY float64) float64 {
	// c/d at balanced = εcu / (εcu + εy)
	return stressBlockCoeff * beta1 * fc / fy * (EpsilonCU / (EpsilonCU + epsilonY))
}

// RhoMax calculates the maximum reinforcement ratio for beams,
// i.e. the ratio at which εt = 0.004.
// 9.3.3.1
func RhoMax(beta1, fc, fy float64) float64 {
	return stressBlockCoeff * beta1 * fc / fy * (EpsilonCU / (EpsilonCU + EpsilonMinFlex))
}

// RhoMin calculates minimum reinforcement ratio
// 9.6.1.2
func RhoMin(fc, fy float64) float64 {
	// ρmin = max(3√f'c / fy, 200/fy)
	return math.Max(3*math.Sqrt(fc)/fy, 200/fy)
}

// NominalMoment returns Mn = As*fy*(d - a/2) in lb-in.
func NominalMoment(as, fy, d, a float64) float64 {
	return as * fy * (d - a/2)
}

// KipFt converts a moment in lb-in to kip-ft.
func KipFt(lbIn float64) float64 {
	return lbIn / LbInPerKipFt
}

// LbIn converts a moment in kip-ft to lb-in.
func LbIn(kipFt float64) float64 {
	return kipFt * LbInPerKipFt
}
