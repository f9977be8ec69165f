package ecarith

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// Common errors returned by the curve arithmetic packages.
var (
	ErrInvalidPoint       = errors.New("point is not on the curve")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrInvariantViolation = errors.New("internal invariant violated")
	ErrInfinity           = errors.New("point at infinity has no affine coordinates")
	ErrSingularCurve      = errors.New("curve parameters define a singular curve")
	ErrCurveMismatch      = errors.New("point does not belong to this curve's field")
	ErrNotPrime           = errors.New("modulus is not prime")
	ErrNoSquareRoot       = errors.New("element is not a quadratic residue")
	ErrUnknownModel       = errors.New("unknown curve model")
	ErrUnknownPreset      = errors.New("unknown curve preset")
	ErrGeneratorCount     = errors.New("generator count does not match Euler's totient")
	ErrInvalidParameters  = errors.New("invalid curve parameters")
)

// PointError reports coordinates that do not satisfy a curve equation.
// It unwraps to ErrInvalidPoint.
type PointError struct {
	Curve string
	X, Y  *big.Int
}

func (e *PointError) Error() string {
	return fmt.Sprintf("(%s, %s) is not on %s: %v", e.X, e.Y, e.Curve, ErrInvalidPoint)
}

func (e *PointError) Unwrap() error {
	return ErrInvalidPoint
}

// NewPointError creates a new PointError.
func NewPointError(curve string, x, y *big.Int) *PointError {
	return &PointError{
		Curve: curve,
		X:     new(big.Int).Set(x),
		Y:     new(big.Int).Set(y),
	}
}
