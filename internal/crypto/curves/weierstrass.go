package curves

import (
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

// ShortWeierstrass is the curve y^2 = x^3 + a*x + b over a prime field,
// with the point at infinity as neutral element.
type ShortWeierstrass struct {
	base
	a, b field.Element
}

// NewShortWeierstrass builds y^2 = x^3 + a*x + b over GF(prime). It fails
// with ErrSingularCurve if 4a^3 + 27b^2 = 0.
func NewShortWeierstrass(a, b, prime *big.Int, opts ...Option) (*ShortWeierstrass, error) {
	f, err := field.New(prime)
	if err != nil {
		return nil, err
	}
	return NewShortWeierstrassOver(f, f.Element(a), f.Element(b), opts...)
}

// NewShortWeierstrassOver builds a short Weierstrass curve from parameters
// that already live in f.
func NewShortWeierstrassOver(f *field.Field, a, b field.Element, opts ...Option) (*ShortWeierstrass, error) {
	disc := a.Cube().MulInt64(4).Add(b.Square().MulInt64(27))
	if disc.IsZero() {
		return nil, errors.Wrapf(ecarith.ErrSingularCurve, "short weierstrass: 4a^3 + 27b^2 = 0 (a = %s, b = %s)", a, b)
	}
	return &ShortWeierstrass{base: newBase(f, opts), a: a, b: b}, nil
}

// A returns the curve parameter a.
func (w *ShortWeierstrass) A() field.Element { return w.a }

// B returns the curve parameter b.
func (w *ShortWeierstrass) B() field.Element { return w.b }

func (w *ShortWeierstrass) Model() ecarith.Model { return ecarith.ShortWeierstrass }

func (w *ShortWeierstrass) Name() string {
	if w.name != "" {
		return w.name
	}
	return w.String()
}

func (w *ShortWeierstrass) String() string {
	return fmt.Sprintf("y^2 = x^3 + %s*x + %s over %s", w.a, w.b, w.f)
}

// Identity returns the point at infinity.
func (w *ShortWeierstrass) Identity() Point {
	return Infinity()
}

func (w *ShortWeierstrass) NewPoint(x, y *big.Int) (Point, error) {
	return w.newPoint(w, x, y)
}

// IsOnCurve evaluates y^2 == x^3 + a*x + b.
func (w *ShortWeierstrass) IsOnCurve(p Point) bool {
	if p.inf {
		return true
	}
	if w.checkField(p) != nil {
		return false
	}
	return p.y.Square().Equal(w.rhs(p.x))
}

func (w *ShortWeierstrass) rhs(x field.Element) field.Element {
	return x.Cube().Add(w.a.Mul(x)).Add(w.b)
}

// Inverse returns (x, -y).
func (w *ShortWeierstrass) Inverse(p Point) Point {
	if p.inf {
		return p
	}
	return Affine(p.x, p.y.Neg())
}

// AddAffine adds two affine points with the chord-and-tangent law. It
// fails with ErrDivisionByZero when the sum is the point at infinity.
func (w *ShortWeierstrass) AddAffine(p, q Point) (Point, error) {
	if err := w.checkField(p, q); err != nil {
		return Point{}, err
	}
	if p.inf || q.inf {
		return Point{}, errors.Wrap(ecarith.ErrInfinity, "short weierstrass affine addition")
	}

	var (
		l   field.Element
		err error
	)
	switch {
	case !p.x.Equal(q.x):
		l, err = q.y.Sub(p.y).Div(q.x.Sub(p.x))
	case p.y.Equal(q.y):
		l, err = p.x.Square().MulInt64(3).Add(w.a).Div(p.y.MulInt64(2))
	default:
		err = errors.Wrap(ecarith.ErrDivisionByZero, "x_Q - x_P = 0")
	}
	if err != nil {
		return Point{}, errors.WithMessagef(err, "adding %s and %s", p, q)
	}

	x := l.Square().Sub(p.x).Sub(q.x)
	y := l.Mul(p.x.Sub(x)).Sub(p.y)
	r := Affine(x, y)

	w.verify(w, "add", r)
	return r, nil
}

// Add is the total group law.
func (w *ShortWeierstrass) Add(p, q Point) (Point, error) {
	if err := w.checkField(p, q); err != nil {
		return Point{}, err
	}
	switch {
	case p.inf:
		return q, nil
	case q.inf:
		return p, nil
	case p.x.Equal(q.x) && p.y.Equal(q.y.Neg()):
		return Infinity(), nil
	}
	return w.AddAffine(p, q)
}

// Sub returns p - q.
func (w *ShortWeierstrass) Sub(p, q Point) (Point, error) {
	return w.Add(p, w.Inverse(q))
}

// Double returns p + p.
func (w *ShortWeierstrass) Double(p Point) (Point, error) {
	return w.Add(p, p)
}

func (w *ShortWeierstrass) ScalarMult(p Point, k *big.Int) (Point, error) {
	return scalarMult(w, p, k)
}

// RecoverY solves the curve equation for y with the requested parity.
func (w *ShortWeierstrass) RecoverY(x field.Element, odd bool) (field.Element, error) {
	y, err := w.rhs(x).Sqrt()
	if err != nil {
		return field.Element{}, err
	}
	return withParity(y, odd), nil
}

// RandomPoint returns a uniformly random affine point.
func (w *ShortWeierstrass) RandomPoint(rnd io.Reader) (Point, error) {
	x, y, err := sampleOnCurve(w.f, rnd, w.RecoverY)
	if err != nil {
		return Point{}, err
	}
	return Affine(x, y), nil
}
