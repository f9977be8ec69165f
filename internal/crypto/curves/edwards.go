package curves

import (
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

// TwistedEdwards is the curve a*x^2 + y^2 = 1 + d*x^2*y^2 over a prime
// field. Its neutral element is the affine point (0, 1).
type TwistedEdwards struct {
	base
	a, d field.Element
}

// NewTwistedEdwards builds the twisted Edwards curve with parameters a and
// d over GF(prime). It fails with ErrSingularCurve unless a and d are
// distinct and nonzero.
func NewTwistedEdwards(a, d, prime *big.Int, opts ...Option) (*TwistedEdwards, error) {
	f, err := field.New(prime)
	if err != nil {
		return nil, err
	}
	return NewTwistedEdwardsOver(f, f.Element(a), f.Element(d), opts...)
}

// NewTwistedEdwardsOver builds a twisted Edwards curve from parameters that
// already live in f.
func NewTwistedEdwardsOver(f *field.Field, a, d field.Element, opts ...Option) (*TwistedEdwards, error) {
	switch {
	case a.IsZero():
		return nil, errors.Wrap(ecarith.ErrSingularCurve, "twisted edwards: a = 0")
	case d.IsZero():
		return nil, errors.Wrap(ecarith.ErrSingularCurve, "twisted edwards: d = 0")
	case a.Equal(d):
		return nil, errors.Wrapf(ecarith.ErrSingularCurve, "twisted edwards: a = d = %s", a)
	}
	return &TwistedEdwards{base: newBase(f, opts), a: a, d: d}, nil
}

// A returns the curve parameter a.
func (e *TwistedEdwards) A() field.Element { return e.a }

// D returns the curve parameter d.
func (e *TwistedEdwards) D() field.Element { return e.d }

func (e *TwistedEdwards) Model() ecarith.Model { return ecarith.TwistedEdwards }

func (e *TwistedEdwards) Name() string {
	if e.name != "" {
		return e.name
	}
	return e.String()
}

func (e *TwistedEdwards) String() string {
	return fmt.Sprintf("%s*x^2 + y^2 = 1 + %s*x^2*y^2 over %s", e.a, e.d, e.f)
}

// Identity returns (0, 1).
func (e *TwistedEdwards) Identity() Point {
	return Affine(e.f.Zero(), e.f.One())
}

// IsComplete reports whether a is a square and d is not, in which case the
// addition law has no exceptional points and Add never fails.
func (e *TwistedEdwards) IsComplete() bool {
	return e.a.IsSquare() && !e.d.IsSquare()
}

// normalize reads the infinity tag as the neutral element.
func (e *TwistedEdwards) normalize(p Point) Point {
	if p.inf {
		return e.Identity()
	}
	return p
}

// NewPoint returns (x, y) if it satisfies the curve equation, and a
// *ecarith.PointError otherwise.
func (e *TwistedEdwards) NewPoint(x, y *big.Int) (Point, error) {
	return e.newPoint(e, x, y)
}

// IsOnCurve evaluates a*x^2 + y^2 == 1 + d*x^2*y^2.
func (e *TwistedEdwards) IsOnCurve(p Point) bool {
	p = e.normalize(p)
	if e.checkField(p) != nil {
		return false
	}
	xx, yy := p.x.Square(), p.y.Square()
	lhs := e.a.Mul(xx).Add(yy)
	rhs := e.f.One().Add(e.d.Mul(xx).Mul(yy))
	return lhs.Equal(rhs)
}

// Inverse returns (-x, y).
func (e *TwistedEdwards) Inverse(p Point) Point {
	p = e.normalize(p)
	return Affine(p.x.Neg(), p.y)
}

// Add applies the unified twisted Edwards addition law
//
//	x_R = (x_P*y_Q + y_P*x_Q) / (1 + d*x_P*x_Q*y_P*y_Q)
//	y_R = (y_P*y_Q - a*x_P*x_Q) / (1 - d*x_P*x_Q*y_P*y_Q)
//
// which also covers doubling. On curves that are not complete some pairs
// of points make a divisor vanish; Add then fails with ErrDivisionByZero.
func (e *TwistedEdwards) Add(p, q Point) (Point, error) {
	p, q = e.normalize(p), e.normalize(q)
	if err := e.checkField(p, q); err != nil {
		return Point{}, err
	}

	x1x2 := p.x.Mul(q.x)
	y1y2 := p.y.Mul(q.y)
	t := e.d.Mul(x1x2).Mul(y1y2)
	one := e.f.One()

	x, err := p.x.Mul(q.y).Add(p.y.Mul(q.x)).Div(one.Add(t))
	if err != nil {
		return Point{}, errors.WithMessagef(err, "adding %s and %s", p, q)
	}
	y, err := y1y2.Sub(e.a.Mul(x1x2)).Div(one.Sub(t))
	if err != nil {
		return Point{}, errors.WithMessagef(err, "adding %s and %s", p, q)
	}
	r := Affine(x, y)

	e.verify(e, "add", r)
	return r, nil
}

// Sub returns p - q.
func (e *TwistedEdwards) Sub(p, q Point) (Point, error) {
	return e.Add(p, e.Inverse(q))
}

// Double returns p + p.
func (e *TwistedEdwards) Double(p Point) (Point, error) {
	return e.Add(p, p)
}

func (e *TwistedEdwards) ScalarMult(p Point, k *big.Int) (Point, error) {
	return scalarMult(e, p, k)
}

// RecoverX solves the curve equation for x given y:
//
//	x^2 = (1 - y^2) / (a - d*y^2)
//
// and returns the root with the requested parity. A zero root cannot be
// odd, which is reported as ErrNoSquareRoot.
func (e *TwistedEdwards) RecoverX(y field.Element, odd bool) (field.Element, error) {
	yy := y.Square()
	xx, err := e.f.One().Sub(yy).Div(e.a.Sub(e.d.Mul(yy)))
	if err != nil {
		return field.Element{}, err
	}
	x, err := xx.Sqrt()
	if err != nil {
		return field.Element{}, err
	}
	if x.IsZero() && odd {
		return field.Element{}, errors.Wrap(ecarith.ErrNoSquareRoot, "x = 0 has no odd root")
	}
	return withParity(x, odd), nil
}

// RandomPoint returns a uniformly random affine point.
func (e *TwistedEdwards) RandomPoint(rnd io.Reader) (Point, error) {
	y, x, err := sampleOnCurve(e.f, rnd, e.RecoverX)
	if err != nil {
		return Point{}, err
	}
	return Affine(x, y), nil
}
