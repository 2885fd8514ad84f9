package beam

import "github.com/alexiusacademia/acibeam/internal/aci"

// Analyze calculates the flexural capacity of the section for the given
// tension reinforcement. Compression steel (AsPrime, DPrime) is ignored.
//
// Analyze does not validate its input; non-positive dimensions or moduli
// produce non-finite values rather than an error.
func Analyze(in Input) Results {
	r := Results{EpsilonCU: aci.EpsilonCU}

	// Equivalent stress block and strain compatibility
	r.Beta1 = aci.Beta1(in.Fc)
	r.EpsilonY = aci.YieldStrain(in.Fy, in.Es)
	r.A = aci.StressBlockDepth(in.As, in.Fy, in.Fc, in.B)
	r.C = aci.NeutralAxisDepth(r.A, r.Beta1)
	r.EpsilonT = aci.TensionStrain(in.D, r.C)

	r.Phi = aci.Phi(r.EpsilonT, r.EpsilonY)
	r.SectionType = aci.Classify(r.EpsilonT, r.EpsilonY)

	// Reinforcement ratios
	r.Rho = aci.Rho(in.As, in.B, in.D)
	r.RhoB = aci.RhoBalanced(r.Beta1, in.Fc, in.Fy, r.EpsilonY)
	r.RhoMax = aci.RhoMax(r.Beta1, in.Fc, in.Fy)
	r.RhoMin = aci.RhoMin(in.Fc, in.Fy)

	// Moment capacity
	r.Mn = aci.NominalMoment(in.As, in.Fy, in.D, r.A)
	r.MnKipFt = aci.KipFt(r.Mn)
	r.PhiMn = r.Phi * r.Mn
	r.PhiMnKipFt = aci.KipFt(r.PhiMn)

	r.SteelYields = r.EpsilonT >= r.EpsilonY
	r.IsAdequatelyReinforced = r.Rho >= r.RhoMin
	r.IsNotOverReinforced = r.Rho <= r.RhoMax

	r.Warnings = buildWarnings(in, &r)

	return r
}
