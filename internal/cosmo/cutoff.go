package cosmo

import "math"

// Cutoff is the geometric noise-suppression window
//
//	S(z) = 1 / (1 + exp((z - z_c) / dz))
//
// For positive Width it falls monotonically from 1 at low redshift to 0
// at high redshift, crossing exactly 0.5 at the center. A negative Width
// mirrors the window so the high-redshift side is active.
type Cutoff struct {
	Center float64 // transition redshift z_c
	Width  float64 // transition width, must be non-zero
}

// NewCutoff returns the nominal window: z_c = 4, width 0.5.
func NewCutoff() Cutoff {
	return Cutoff{Center: 4.0, Width: 0.5}
}

// Validate reports parameter values outside the model's domain.
func (c Cutoff) Validate() error {
	if c.Width == 0 {
		return &ParamError{Name: "width", Value: c.Width, Wrapped: ErrZeroWidth}
	}
	return nil
}

// At evaluates S at a single redshift.
func (c Cutoff) At(z float64) float64 {
	return 1.0 / (1.0 + math.Exp((z-c.Center)/c.Width))
}

// Eval evaluates S elementwise over a redshift axis.
func (c Cutoff) Eval(zs []float64) []float64 {
	out := make([]float64, len(zs))
	for i, z := range zs {
		out[i] = c.At(z)
	}
	return out
}
