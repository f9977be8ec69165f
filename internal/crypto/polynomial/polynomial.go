package polynomial

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

// Polynomial represents a polynomial f(x) = a_0 + a_1*x + ... + a_t*x^t
// over a prime field.
type Polynomial struct {
	Coefficients []field.Element
	Field        *field.Field
}

// New generates a random polynomial of given degree with the constant term (secret) provided.
// If secret is nil, a random constant term is generated. A nil rnd means crypto/rand.
func New(f *field.Field, degree int, secret *big.Int, rnd io.Reader) (*Polynomial, error) {
	if degree < 0 {
		return nil, errors.Wrapf(ecarith.ErrInvalidParameters, "polynomial degree %d", degree)
	}
	coeffs := make([]field.Element, degree+1)
	var err error

	// a_0 is the secret
	if secret == nil {
		coeffs[0], err = f.Random(rnd)
		if err != nil {
			return nil, err
		}
	} else {
		coeffs[0] = f.Element(secret)
	}

	for i := 1; i <= degree; i++ {
		coeffs[i], err = f.Random(rnd)
		if err != nil {
			return nil, err
		}
	}

	return &Polynomial{
		Coefficients: coeffs,
		Field:        f,
	}, nil
}

// FromInt64 builds the polynomial with the given coefficients, constant term first.
func FromInt64(f *field.Field, coeffs ...int64) *Polynomial {
	p := &Polynomial{Coefficients: make([]field.Element, len(coeffs)), Field: f}
	for i, c := range coeffs {
		p.Coefficients[i] = f.Int64(c)
	}
	return p
}

// Degree returns the index of the highest coefficient, zero or not.
func (p *Polynomial) Degree() int {
	return len(p.Coefficients) - 1
}

// Secret returns f(0).
func (p *Polynomial) Secret() field.Element {
	return p.Coefficients[0]
}

// Evaluate calculates f(x) using Horner's method.
func (p *Polynomial) Evaluate(x field.Element) field.Element {
	degree := p.Degree()
	result := p.Coefficients[degree]
	for i := degree - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.Coefficients[i])
	}
	return result
}

// EvaluateMulti calculates f(x) for multiple x values
func (p *Polynomial) EvaluateMulti(xs []field.Element) []field.Element {
	results := make([]field.Element, len(xs))
	for i, x := range xs {
		results[i] = p.Evaluate(x)
	}
	return results
}

// InterpolateAt evaluates at x the unique polynomial of degree < len(xs)
// passing through the points (xs[i], ys[i]), by Lagrange interpolation.
// Repeated abscissae fail with ErrDivisionByZero.
func InterpolateAt(xs, ys []field.Element, x field.Element) (field.Element, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return field.Element{}, errors.Wrapf(ecarith.ErrInvalidParameters,
			"interpolation needs matching non-empty inputs, got %d and %d", len(xs), len(ys))
	}
	f := x.Field()
	sum := f.Zero()
	for i := range xs {
		num, den := f.One(), f.One()
		for j := range xs {
			if i == j {
				continue
			}
			num = num.Mul(x.Sub(xs[j]))
			den = den.Mul(xs[i].Sub(xs[j]))
		}
		l, err := num.Div(den)
		if err != nil {
			return field.Element{}, errors.WithMessagef(err, "abscissa %s is repeated", xs[i])
		}
		sum = sum.Add(ys[i].Mul(l))
	}
	return sum, nil
}
