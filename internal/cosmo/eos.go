package cosmo

import "math"

// EquationOfState is the log-oscillatory dark energy model
//
//	w(z) = -1 + A * exp(-z/z_tau) * cos(omega * ln(1+z) + delta)
//
// With Amplitude = 0 it reduces to the cosmological constant w = -1.
type EquationOfState struct {
	Amplitude float64 // oscillation amplitude A
	Omega     float64 // angular frequency in ln(1+z)
	Delta     float64 // phase offset
	ZTau      float64 // redshift decay scale, must be non-zero
}

// NewEquationOfState returns the nominal model used throughout the paper
// figures: omega = 2.5, zero phase, decay scale 2.
func NewEquationOfState(amplitude float64) EquationOfState {
	return EquationOfState{
		Amplitude: amplitude,
		Omega:     2.5,
		Delta:     0.0,
		ZTau:      2.0,
	}
}

// Validate reports parameter values outside the model's domain.
func (e EquationOfState) Validate() error {
	if e.ZTau == 0 {
		return &ParamError{Name: "z_tau", Value: e.ZTau, Wrapped: ErrZeroDecayScale}
	}
	return nil
}

// At evaluates w at a single redshift. The caller is responsible for
// z > -1; below that ln(1+z) leaves the real line and the result is NaN.
func (e EquationOfState) At(z float64) float64 {
	return -1.0 + e.Amplitude*math.Exp(-z/e.ZTau)*math.Cos(e.Omega*math.Log(1+z)+e.Delta)
}

// Eval evaluates w elementwise over a redshift axis.
func (e EquationOfState) Eval(zs []float64) []float64 {
	out := make([]float64, len(zs))
	for i, z := range zs {
		out[i] = e.At(z)
	}
	return out
}

// Linspace returns n evenly spaced samples over [start, stop], endpoints
// included. n must be at least 2 for the axis to be strictly increasing.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// CheckAxis verifies an axis is non-empty and strictly increasing.
func CheckAxis(axis []float64) error {
	if len(axis) == 0 {
		return ErrBadAxis
	}
	for i := 1; i < len(axis); i++ {
		if axis[i] <= axis[i-1] {
			return ErrBadAxis
		}
	}
	return nil
}
