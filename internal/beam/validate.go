package beam

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/acibeam/internal/aci"
)

// ValidationError reports a single input field that Analyze cannot
// meaningfully work with.
type ValidationError struct {
	Field string
	msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.msg)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, msg: fmt.Sprintf(format, args...)}
}

// Validate checks the preconditions Analyze relies on. It is meant for
// input collection layers; Analyze itself never calls it. All violations
// are returned joined.
func Validate(in Input) error {
	var errs []error

	positive := []struct {
		field string
		value float64
	}{
		{"b", in.B},
		{"h", in.H},
		{"d", in.D},
		{"fc", in.Fc},
		{"fy", in.Fy},
		{"Es", in.Es},
	}
	for _, p := range positive {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			errs = append(errs, invalid(p.field, "must be a positive number, got %g", p.value))
		}
	}

	if !(in.As >= 0) || math.IsInf(in.As, 0) {
		errs = append(errs, invalid("As", "must be zero or positive, got %g", in.As))
	}
	if !(in.AsPrime >= 0) || math.IsInf(in.AsPrime, 0) {
		errs = append(errs, invalid("As_prime", "must be zero or positive, got %g", in.AsPrime))
	}
	if in.DPrime < 0 || (in.H > 0 && in.DPrime > in.H) {
		errs = append(errs, invalid("d_prime", "must lie within the section depth, got %g", in.DPrime))
	}
	if in.D > 0 && in.H > 0 && in.D > in.H {
		errs = append(errs, invalid("d", "effective depth %g exceeds total depth %g", in.D, in.H))
	}
	if in.Fy > 0 && in.Es > 0 {
		if ey := aci.YieldStrain(in.Fy, in.Es); ey >= aci.EpsilonTC {
			errs = append(errs, invalid("fy",
				"yield strain fy/Es = %.5f is not below the tension-controlled limit %.3f; steel is unsupported",
				ey, aci.EpsilonTC))
		}
	}

	return errors.Join(errs...)
}

// Validate checks the solver inputs.
func (in RequiredSteelInput) Validate() error {
	var errs []error
	for _, p := range []struct {
		field string
		value float64
	}{
		{"b", in.B},
		{"d", in.D},
		{"fc", in.Fc},
		{"fy", in.Fy},
	} {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			errs = append(errs, invalid(p.field, "must be a positive number, got %g", p.value))
		}
	}
	if !(in.Mu >= 0) || math.IsInf(in.Mu, 0) {
		errs = append(errs, invalid("Mu", "must be zero or positive, got %g", in.Mu))
	}
	return errors.Join(errs...)
}
