package beam

import "github.com/alexiusacademia/acibeam/internal/aci"

// CurvePoint is one sample of the capacity curve.
type CurvePoint struct {
	As         float64 `json:"As"`
	Phi        float64 `json:"phi"`
	PhiMnKipFt float64 `json:"phiMn_kip_ft"`
}

// CapacityCurve samples φMn for As from zero up to the balanced steel area
// of the section, keeping every other field of in. It returns nil when
// points < 2 or the balanced area is not positive.
func CapacityCurve(in Input, points int) []CurvePoint {
	if points < 2 {
		return nil
	}
	epsY := aci.YieldStrain(in.Fy, in.Es)
	asBal := aci.RhoBalanced(aci.Beta1(in.Fc), in.Fc, in.Fy, epsY) * in.B * in.D
	if !(asBal > 0) {
		return nil
	}

	out := make([]CurvePoint, points)
	for i := range out {
		trial := in
		trial.As = asBal * float64(i) / float64(points-1)
		r := Analyze(trial)
		out[i] = CurvePoint{As: trial.As, Phi: r.Phi, PhiMnKipFt: r.PhiMnKipFt}
	}
	return out
}
