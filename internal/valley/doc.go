// Package valley implements the phenomenological variance model behind
// the resilience-valley surface: attractor variance is minimized along
// the ridge tau*H0 * omega = 2 and penalized at parameter extremes.
//
// The surface is illustrative, not derived from first principles; the
// only load-bearing properties are the valley location, the penalty
// bands, and reproducibility of the sampled grid under a fixed seed.
package valley
