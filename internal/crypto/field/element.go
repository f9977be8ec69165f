package field

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

// Element is an integer reduced modulo the prime of its field.
// The zero value is not usable; elements are obtained from a Field.
type Element struct {
	f *Field
	v *big.Int
}

// Field returns the field e belongs to.
func (e Element) Field() *Field {
	return e.f
}

// Order returns the order of the field e belongs to.
func (e Element) Order() *big.Int {
	return e.f.Order()
}

// Int returns a copy of the canonical representative of e in [0, p).
func (e Element) Int() *big.Int {
	return new(big.Int).Set(e.v)
}

// Valid reports whether e was obtained from a field.
func (e Element) Valid() bool {
	return e.f != nil && e.v != nil
}

func (e Element) mustMatch(o Element) {
	if !e.f.Equal(o.f) {
		panic("field: mixing elements of " + e.f.String() + " and " + o.f.String())
	}
}

func (e Element) reduce(v *big.Int) Element {
	return Element{f: e.f, v: v.Mod(v, e.f.p)}
}

// Add returns e + o.
func (e Element) Add(o Element) Element {
	e.mustMatch(o)
	return e.reduce(new(big.Int).Add(e.v, o.v))
}

// Sub returns e - o.
func (e Element) Sub(o Element) Element {
	e.mustMatch(o)
	return e.reduce(new(big.Int).Sub(e.v, o.v))
}

// Mul returns e * o.
func (e Element) Mul(o Element) Element {
	e.mustMatch(o)
	return e.reduce(new(big.Int).Mul(e.v, o.v))
}

// MulInt64 returns e * k.
func (e Element) MulInt64(k int64) Element {
	return e.reduce(new(big.Int).Mul(e.v, big.NewInt(k)))
}

// AddInt64 returns e + k.
func (e Element) AddInt64(k int64) Element {
	return e.reduce(new(big.Int).Add(e.v, big.NewInt(k)))
}

// Neg returns -e.
func (e Element) Neg() Element {
	return e.reduce(new(big.Int).Neg(e.v))
}

// Square returns e^2.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Cube returns e^3.
func (e Element) Cube() Element {
	return e.Square().Mul(e)
}

// Exp returns e^k. Negative exponents invert first and fail with
// ErrDivisionByZero when e is zero.
func (e Element) Exp(k *big.Int) (Element, error) {
	if k.Sign() < 0 {
		inv, err := e.Inv()
		if err != nil {
			return Element{}, err
		}
		return inv.Exp(new(big.Int).Neg(k))
	}
	return Element{f: e.f, v: new(big.Int).Exp(e.v, k, e.f.p)}, nil
}

// Inv returns 1/e.
func (e Element) Inv() (Element, error) {
	if e.IsZero() {
		return Element{}, errors.Wrapf(ecarith.ErrDivisionByZero, "inverting zero in %s", e.f)
	}
	return Element{f: e.f, v: new(big.Int).ModInverse(e.v, e.f.p)}, nil
}

// Div returns e / o. It fails with ErrDivisionByZero when o is zero.
func (e Element) Div(o Element) (Element, error) {
	e.mustMatch(o)
	inv, err := o.Inv()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv), nil
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.v.Sign() == 0
}

// IsOne reports whether e is the multiplicative identity.
func (e Element) IsOne() bool {
	return e.v.Cmp(big.NewInt(1)) == 0
}

// IsOdd reports whether the canonical representative of e is odd.
func (e Element) IsOdd() bool {
	return e.v.Bit(0) == 1
}

// Equal reports whether e and o are the same element of the same field.
func (e Element) Equal(o Element) bool {
	return e.f.Equal(o.f) && e.v.Cmp(o.v) == 0
}

// IsSquare reports whether e is a quadratic residue (zero included).
func (e Element) IsSquare() bool {
	if e.IsZero() || e.f.p.Cmp(big.NewInt(2)) == 0 {
		return true
	}
	return big.Jacobi(e.v, e.f.p) == 1
}

// Sqrt returns a square root of e. Which of the two roots is returned is
// unspecified; callers pick the sign they need with Neg.
func (e Element) Sqrt() (Element, error) {
	if e.f.p.Cmp(big.NewInt(2)) == 0 {
		return e, nil
	}
	r := new(big.Int).ModSqrt(e.v, e.f.p)
	if r == nil {
		return Element{}, errors.Wrapf(ecarith.ErrNoSquareRoot, "%s in %s", e.v, e.f)
	}
	return Element{f: e.f, v: r}, nil
}

// Text returns the representative of e in the given base.
func (e Element) Text(base int) string {
	return e.v.Text(base)
}

func (e Element) String() string {
	if !e.Valid() {
		return "<nil>"
	}
	return e.v.String()
}
