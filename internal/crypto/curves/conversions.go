package curves

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

// MontgomeryToTwistedEdwards returns the twisted Edwards curve birationally
// equivalent to m: a = (A+2)/B, d = (A-2)/B.
func MontgomeryToTwistedEdwards(m *Montgomery, opts ...Option) (*TwistedEdwards, error) {
	bInv, err := m.b.Inv()
	if err != nil {
		return nil, err
	}
	a := m.a.AddInt64(2).Mul(bInv)
	d := m.a.AddInt64(-2).Mul(bInv)
	return NewTwistedEdwardsOver(m.f, a, d, opts...)
}

// TwistedEdwardsToMontgomery returns the Montgomery curve birationally
// equivalent to e: A = 2(a+d)/(a-d), B = 4/(a-d).
func TwistedEdwardsToMontgomery(e *TwistedEdwards, opts ...Option) (*Montgomery, error) {
	adInv, err := e.a.Sub(e.d).Inv()
	if err != nil {
		return nil, err
	}
	A := e.a.Add(e.d).MulInt64(2).Mul(adInv)
	B := adInv.MulInt64(4)
	return NewMontgomeryOver(e.f, A, B, opts...)
}

// MontgomeryToShortWeierstrass returns the short Weierstrass curve
// isomorphic to m:
//
//	a = (3 - A^2) / (3B^2)
//	b = (2A^3 - 9A) / (27B^3)
//
// It needs 3 to be invertible, so it fails over GF(3).
func MontgomeryToShortWeierstrass(m *Montgomery, opts ...Option) (*ShortWeierstrass, error) {
	a, err := m.f.Int64(3).Sub(m.a.Square()).Div(m.b.Square().MulInt64(3))
	if err != nil {
		return nil, errors.WithMessage(err, "montgomery to short weierstrass")
	}
	b, err := m.a.Cube().MulInt64(2).Sub(m.a.MulInt64(9)).Div(m.b.Cube().MulInt64(27))
	if err != nil {
		return nil, errors.WithMessage(err, "montgomery to short weierstrass")
	}
	return NewShortWeierstrassOver(m.f, a, b, opts...)
}

// MontgomeryToTwistedEdwardsPoint maps p on m to the curve returned by
// MontgomeryToTwistedEdwards(m):
//
//	(u, v) -> (u/v, (u-1)/(u+1))
//
// The point at infinity maps to (0, 1) and (0, 0) to (0, -1). The other
// points with v = 0 or u = -1 have no affine image and fail with
// ErrDivisionByZero.
func MontgomeryToTwistedEdwardsPoint(m *Montgomery, p Point) (Point, error) {
	if err := m.checkField(p); err != nil {
		return Point{}, err
	}
	f := m.f
	if p.inf {
		return Affine(f.Zero(), f.One()), nil
	}
	if p.x.IsZero() && p.y.IsZero() {
		return Affine(f.Zero(), f.One().Neg()), nil
	}

	x, err := p.x.Div(p.y)
	if err != nil {
		return Point{}, errors.WithMessagef(err, "mapping %s to twisted edwards", p)
	}
	y, err := p.x.AddInt64(-1).Div(p.x.AddInt64(1))
	if err != nil {
		return Point{}, errors.WithMessagef(err, "mapping %s to twisted edwards", p)
	}
	return Affine(x, y), nil
}

// TwistedEdwardsToMontgomeryPoint maps p on e to the curve returned by
// TwistedEdwardsToMontgomery(e):
//
//	(x, y) -> ((1+y)/(1-y), (1+y)/((1-y)x))
//
// It is the inverse of MontgomeryToTwistedEdwardsPoint.
func TwistedEdwardsToMontgomeryPoint(e *TwistedEdwards, p Point) (Point, error) {
	p = e.normalize(p)
	if err := e.checkField(p); err != nil {
		return Point{}, err
	}
	f := e.f
	if p.x.IsZero() {
		switch {
		case p.y.IsOne():
			return Infinity(), nil
		case p.y.Equal(f.One().Neg()):
			return Affine(f.Zero(), f.Zero()), nil
		}
	}

	u, err := montgomeryU(p.y)
	if err != nil {
		return Point{}, errors.WithMessagef(err, "mapping %s to montgomery", p)
	}
	v, err := u.Div(p.x)
	if err != nil {
		return Point{}, errors.WithMessagef(err, "mapping %s to montgomery", p)
	}
	return Affine(u, v), nil
}

// montgomeryU is the u-coordinate (1+y)/(1-y) of an Edwards y-coordinate.
func montgomeryU(y field.Element) (field.Element, error) {
	one := y.Field().One()
	return one.Add(y).Div(one.Sub(y))
}

// MontgomeryToShortWeierstrassPoint maps p on m to the curve returned by
// MontgomeryToShortWeierstrass(m): (u, v) -> (u/B + A/(3B), v/B).
func MontgomeryToShortWeierstrassPoint(m *Montgomery, p Point) (Point, error) {
	if err := m.checkField(p); err != nil {
		return Point{}, err
	}
	if p.inf {
		return p, nil
	}
	bInv, err := m.b.Inv()
	if err != nil {
		return Point{}, err
	}
	shift, err := m.a.Div(m.b.MulInt64(3))
	if err != nil {
		return Point{}, errors.WithMessagef(err, "mapping %s to short weierstrass", p)
	}
	return Affine(p.x.Mul(bInv).Add(shift), p.y.Mul(bInv)), nil
}

// Convert returns the curve of model `to` equivalent to c, together with a
// point map from c to it. Converting to the same model returns c itself.
func Convert(c Curve, to ecarith.Model) (Curve, func(Point) (Point, error), error) {
	identity := func(p Point) (Point, error) { return p, nil }
	if c.Model() == to {
		return c, identity, nil
	}

	switch src := c.(type) {
	case *Montgomery:
		switch to {
		case ecarith.TwistedEdwards:
			dst, err := MontgomeryToTwistedEdwards(src)
			if err != nil {
				return nil, nil, err
			}
			return dst, func(p Point) (Point, error) { return MontgomeryToTwistedEdwardsPoint(src, p) }, nil
		case ecarith.ShortWeierstrass:
			dst, err := MontgomeryToShortWeierstrass(src)
			if err != nil {
				return nil, nil, err
			}
			return dst, func(p Point) (Point, error) { return MontgomeryToShortWeierstrassPoint(src, p) }, nil
		}
	case *TwistedEdwards:
		mont, err := TwistedEdwardsToMontgomery(src)
		if err != nil {
			return nil, nil, err
		}
		toMont := func(p Point) (Point, error) { return TwistedEdwardsToMontgomeryPoint(src, p) }
		switch to {
		case ecarith.Montgomery:
			return mont, toMont, nil
		case ecarith.ShortWeierstrass:
			dst, err := MontgomeryToShortWeierstrass(mont)
			if err != nil {
				return nil, nil, err
			}
			return dst, func(p Point) (Point, error) {
				q, err := toMont(p)
				if err != nil {
					return Point{}, err
				}
				return MontgomeryToShortWeierstrassPoint(mont, q)
			}, nil
		}
	}
	return nil, nil, errors.Wrapf(ecarith.ErrUnknownModel, "cannot convert %s to %s", c.Model(), to)
}
