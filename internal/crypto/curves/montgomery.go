package curves

import (
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

// Montgomery is the curve B*y^2 = x^3 + A*x^2 + x over a prime field,
// with the point at infinity as neutral element.
type Montgomery struct {
	base
	a, b field.Element
}

// NewMontgomery builds the Montgomery curve with parameters A and B over
// GF(prime). It fails with ErrSingularCurve if B = 0 or A^2 = 4.
func NewMontgomery(A, B, prime *big.Int, opts ...Option) (*Montgomery, error) {
	f, err := field.New(prime)
	if err != nil {
		return nil, err
	}
	return NewMontgomeryOver(f, f.Element(A), f.Element(B), opts...)
}

// NewMontgomeryOver builds a Montgomery curve from parameters that already
// live in f.
func NewMontgomeryOver(f *field.Field, A, B field.Element, opts ...Option) (*Montgomery, error) {
	if B.IsZero() {
		return nil, errors.Wrap(ecarith.ErrSingularCurve, "montgomery: B = 0")
	}
	if A.Square().Equal(f.Int64(4)) {
		return nil, errors.Wrapf(ecarith.ErrSingularCurve, "montgomery: A^2 = 4 (A = %s)", A)
	}
	return &Montgomery{base: newBase(f, opts), a: A, b: B}, nil
}

// A returns the curve parameter A.
func (m *Montgomery) A() field.Element { return m.a }

// B returns the curve parameter B.
func (m *Montgomery) B() field.Element { return m.b }

func (m *Montgomery) Model() ecarith.Model { return ecarith.Montgomery }

func (m *Montgomery) Name() string {
	if m.name != "" {
		return m.name
	}
	return m.String()
}

func (m *Montgomery) String() string {
	return fmt.Sprintf("%s*y^2 = x^3 + %s*x^2 + x over %s", m.b, m.a, m.f)
}

// Identity returns the point at infinity.
func (m *Montgomery) Identity() Point {
	return Infinity()
}

// NewPoint returns (x, y) if it satisfies the curve equation, and a
// *ecarith.PointError otherwise.
func (m *Montgomery) NewPoint(x, y *big.Int) (Point, error) {
	return m.newPoint(m, x, y)
}

// IsOnCurve evaluates B*y^2 == x^3 + A*x^2 + x.
// The point at infinity is on every curve.
func (m *Montgomery) IsOnCurve(p Point) bool {
	if p.inf {
		return true
	}
	if m.checkField(p) != nil {
		return false
	}
	return m.rhs(p.x).Equal(m.b.Mul(p.y.Square()))
}

func (m *Montgomery) rhs(x field.Element) field.Element {
	return x.Cube().Add(m.a.Mul(x.Square())).Add(x)
}

// Inverse returns (x, -y). It does not check that p is on the curve.
func (m *Montgomery) Inverse(p Point) Point {
	if p.inf {
		return p
	}
	return Affine(p.x, p.y.Neg())
}

// AddAffine adds two affine points with the chord-and-tangent law and
// nothing else:
//
//	x_P != x_Q: l = (y_Q - y_P) / (x_Q - x_P)
//	P == Q:     l = (3x_P^2 + 2A*x_P + 1) / (2B*y_P)
//	x_R = B*l^2 - (x_P + x_Q) - A
//	y_R = l*(x_P - x_R) - y_P
//
// When the sum is the point at infinity one of the divisors is zero and
// AddAffine fails with ErrDivisionByZero. Infinity inputs fail with
// ErrInfinity. Use Add for the total group law.
func (m *Montgomery) AddAffine(p, q Point) (Point, error) {
	if err := m.checkField(p, q); err != nil {
		return Point{}, err
	}
	if p.inf || q.inf {
		return Point{}, errors.Wrap(ecarith.ErrInfinity, "montgomery affine addition")
	}

	var (
		l   field.Element
		err error
	)
	switch {
	case !p.x.Equal(q.x):
		l, err = q.y.Sub(p.y).Div(q.x.Sub(p.x))
	case p.y.Equal(q.y):
		num := p.x.Square().MulInt64(3).Add(m.a.Mul(p.x).MulInt64(2)).AddInt64(1)
		l, err = num.Div(m.b.Mul(p.y).MulInt64(2))
	default:
		err = errors.Wrap(ecarith.ErrDivisionByZero, "x_Q - x_P = 0")
	}
	if err != nil {
		return Point{}, errors.WithMessagef(err, "adding %s and %s", p, q)
	}

	x := m.b.Mul(l.Square()).Sub(p.x.Add(q.x)).Sub(m.a)
	y := l.Mul(p.x.Sub(x)).Sub(p.y)
	r := Affine(x, y)

	m.verify(m, "add", r)
	return r, nil
}

// Add is the total group law: the point at infinity is handled explicitly,
// and P + (-P) is the point at infinity, including doubling a point of
// order two.
func (m *Montgomery) Add(p, q Point) (Point, error) {
	if err := m.checkField(p, q); err != nil {
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
	return m.AddAffine(p, q)
}

// Sub returns p - q.
func (m *Montgomery) Sub(p, q Point) (Point, error) {
	return m.Add(p, m.Inverse(q))
}

// Double returns p + p.
func (m *Montgomery) Double(p Point) (Point, error) {
	return m.Add(p, p)
}

func (m *Montgomery) ScalarMult(p Point, k *big.Int) (Point, error) {
	return scalarMult(m, p, k)
}

// RecoverY solves the curve equation for y with the requested parity.
func (m *Montgomery) RecoverY(x field.Element, odd bool) (field.Element, error) {
	y2, err := m.rhs(x).Div(m.b)
	if err != nil {
		return field.Element{}, err
	}
	y, err := y2.Sqrt()
	if err != nil {
		return field.Element{}, err
	}
	return withParity(y, odd), nil
}

// RandomPoint returns a uniformly random affine point. It never returns
// the point at infinity.
func (m *Montgomery) RandomPoint(rnd io.Reader) (Point, error) {
	x, y, err := sampleOnCurve(m.f, rnd, m.RecoverY)
	if err != nil {
		return Point{}, err
	}
	return Affine(x, y), nil
}
