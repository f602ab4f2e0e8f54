package valley

import (
	"math"
	"math/rand"
)

// Attractor is the simulated variance of the stochastic attractor as a
// function of memory timescale tau*H0 and oscillation frequency omega.
//
// The deterministic component is a base variance reduced by a Gaussian
// valley in the coupling ratio R = tau*H0 * omega, plus flat penalties
// when either parameter leaves its resilient range. Sampling adds
// Gaussian noise and clamps to a floor.
type Attractor struct {
	ValleyCenter float64 // coupling ratio at the valley bottom
	ValleyWidth  float64 // Gaussian width of the valley in R
	BaseVariance float64 // variance far from the valley
	ValleyDepth  float64 // reduction at the valley bottom
	Penalty      float64 // added per out-of-range parameter
	TauMin       float64 // resilient tau*H0 range
	TauMax       float64
	OmegaMin     float64 // resilient omega range
	OmegaMax     float64
	NoiseSigma   float64 // standard deviation of sampling noise
	Floor        float64 // minimum returned variance
	Amplitude    float64 // noise amplitude A; carried for provenance, not used by the formula
}

// NewAttractor returns the model with the parameter values used for the
// published figure.
func NewAttractor() *Attractor {
	return &Attractor{
		ValleyCenter: 2.0,
		ValleyWidth:  3.0,
		BaseVariance: 0.15,
		ValleyDepth:  0.12,
		Penalty:      0.1,
		TauMin:       0.3,
		TauMax:       6.0,
		OmegaMin:     0.5,
		OmegaMax:     6.0,
		NoiseSigma:   0.01,
		Floor:        0.01,
		Amplitude:    0.02,
	}
}

// Deterministic returns the noise-free variance component at (tau, omega).
// At R = ValleyCenter with both parameters in range this is exactly
// BaseVariance - ValleyDepth.
func (a *Attractor) Deterministic(tau, omega float64) float64 {
	r := tau * omega

	g := (r - a.ValleyCenter) / a.ValleyWidth
	variance := a.BaseVariance - a.ValleyDepth*math.Exp(-g*g)

	if tau < a.TauMin || tau > a.TauMax {
		variance += a.Penalty
	}
	if omega < a.OmegaMin || omega > a.OmegaMax {
		variance += a.Penalty
	}
	return variance
}

// Sample draws one noisy variance estimate at (tau, omega). The generator
// is passed explicitly so grid traversal order alone determines the
// stream; there is no package-level random state.
func (a *Attractor) Sample(tau, omega float64, rng *rand.Rand) float64 {
	v := a.Deterministic(tau, omega) + a.NoiseSigma*rng.NormFloat64()
	return math.Max(a.Floor, v)
}
