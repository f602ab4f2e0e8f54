package valley

import (
	"errors"
	"fmt"
	"math/rand"
)

// Grid errors.
var (
	// ErrEmptyAxis indicates a coordinate axis with no samples.
	ErrEmptyAxis = errors.New("valley: coordinate axis is empty")

	// ErrAxisOrder indicates an axis that is not strictly increasing.
	ErrAxisOrder = errors.New("valley: coordinate axis must be strictly increasing")
)

// Field is a variance surface sampled over a rectangular (tau*H0, omega)
// grid. Data is indexed [omega row][tau column], matching the axes.
type Field struct {
	Tau   []float64
	Omega []float64
	Data  [][]float64
}

// Evaluate samples the attractor over the Cartesian product of the two
// axes. Traversal is row-major: omega rows ascending, tau columns
// ascending within each row. The order is load-bearing: together with a
// seeded generator it is what makes the sampled surface reproducible.
func Evaluate(a *Attractor, tau, omega []float64, rng *rand.Rand) (*Field, error) {
	if err := checkAxis(tau); err != nil {
		return nil, fmt.Errorf("tau axis: %w", err)
	}
	if err := checkAxis(omega); err != nil {
		return nil, fmt.Errorf("omega axis: %w", err)
	}

	f := &Field{
		Tau:   tau,
		Omega: omega,
		Data:  make([][]float64, len(omega)),
	}
	for i, w := range omega {
		row := make([]float64, len(tau))
		for j, t := range tau {
			row[j] = a.Sample(t, w, rng)
		}
		f.Data[i] = row
	}
	return f, nil
}

func checkAxis(axis []float64) error {
	if len(axis) == 0 {
		return ErrEmptyAxis
	}
	for i := 1; i < len(axis); i++ {
		if axis[i] <= axis[i-1] {
			return ErrAxisOrder
		}
	}
	return nil
}

// Dims returns the grid extent as (columns, rows). Together with X, Y
// and Z this satisfies the grid contract of the plotting layer.
func (f *Field) Dims() (c, r int) { return len(f.Tau), len(f.Omega) }

// X returns the tau*H0 coordinate of column c.
func (f *Field) X(c int) float64 { return f.Tau[c] }

// Y returns the omega coordinate of row r.
func (f *Field) Y(r int) float64 { return f.Omega[r] }

// Z returns the sampled variance at column c, row r.
func (f *Field) Z(c, r int) float64 { return f.Data[r][c] }

// Min returns the grid cell with the lowest sampled variance.
func (f *Field) Min() (tau, omega, v float64) {
	tau, omega, v = f.Tau[0], f.Omega[0], f.Data[0][0]
	for i, row := range f.Data {
		for j, val := range row {
			if val < v {
				tau, omega, v = f.Tau[j], f.Omega[i], val
			}
		}
	}
	return tau, omega, v
}

// Range returns the minimum and maximum sampled variance.
func (f *Field) Range() (lo, hi float64) {
	lo, hi = f.Data[0][0], f.Data[0][0]
	for _, row := range f.Data {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

// CurvePoint is one sample along a constant-coupling curve.
type CurvePoint struct {
	Tau, Omega, Variance float64
}

// ValleyCurve samples the ridge omega = r/tau for tau in [tauMin, tauMax]
// using the deterministic component, so the overlay is noise-free.
func ValleyCurve(a *Attractor, r, tauMin, tauMax float64, n int) []CurvePoint {
	if n < 2 {
		n = 2
	}
	pts := make([]CurvePoint, n)
	step := (tauMax - tauMin) / float64(n-1)
	for i := range pts {
		t := tauMin + float64(i)*step
		if i == n-1 {
			t = tauMax
		}
		w := r / t
		pts[i] = CurvePoint{Tau: t, Omega: w, Variance: a.Deterministic(t, w)}
	}
	return pts
}
