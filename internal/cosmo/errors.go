package cosmo

import (
	"errors"
	"fmt"
)

// Domain errors for background model parameters.
var (
	// ErrZeroDecayScale indicates z_tau = 0, which makes exp(-z/z_tau) undefined.
	ErrZeroDecayScale = errors.New("cosmo: decay scale z_tau must be non-zero")

	// ErrZeroWidth indicates a cutoff width of zero.
	ErrZeroWidth = errors.New("cosmo: cutoff width must be non-zero")

	// ErrBadAxis indicates a sample axis that is empty or not strictly increasing.
	ErrBadAxis = errors.New("cosmo: axis must be non-empty and strictly increasing")
)

// ParamError wraps a domain error with the offending value.
type ParamError struct {
	Name    string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v (%s=%g)", e.Wrapped, e.Name, e.Value)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
