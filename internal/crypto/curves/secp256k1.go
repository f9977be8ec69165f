package curves

import (
	"math/big"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

var (
	secp256k1Once  sync.Once
	secp256k1Curve *ShortWeierstrass
)

// Secp256k1 returns y^2 = x^3 + 7 over the secp256k1 base field, with the
// parameters taken from decred's implementation.
func Secp256k1() *ShortWeierstrass {
	secp256k1Once.Do(func() {
		params := secp256k1.S256().Params()
		w, err := NewShortWeierstrass(big.NewInt(0), params.B, params.P, WithName("secp256k1"))
		if err != nil {
			panic(err)
		}
		secp256k1Curve = w
	})
	return secp256k1Curve
}

// Secp256k1Base returns the secp256k1 generator G.
func Secp256k1Base() Point {
	params := secp256k1.S256().Params()
	return Secp256k1().lift(params.Gx, params.Gy)
}

// Secp256k1Order returns the order N of the secp256k1 generator.
func Secp256k1Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().N)
}

// ToJacobian converts p to decred's Jacobian representation with Z = 1.
// The point at infinity is (0, 0, 0).
func ToJacobian(p Point) (*secp256k1.JacobianPoint, error) {
	var j secp256k1.JacobianPoint
	if p.inf {
		return &j, nil
	}
	if err := Secp256k1().checkField(p); err != nil {
		return nil, err
	}
	if j.X.SetByteSlice(p.x.Int().Bytes()) || j.Y.SetByteSlice(p.y.Int().Bytes()) {
		return nil, errors.Wrapf(ecarith.ErrCurveMismatch, "%s overflows the secp256k1 field", p)
	}
	j.Z.SetInt(1)
	return &j, nil
}

// FromJacobian converts a decred Jacobian point to an affine point on
// Secp256k1(). The argument is not modified.
func FromJacobian(j *secp256k1.JacobianPoint) Point {
	if (j.X.IsZero() && j.Y.IsZero()) || j.Z.IsZero() {
		return Infinity()
	}
	a := *j
	a.ToAffine()
	a.X.Normalize()
	a.Y.Normalize()

	x := new(big.Int).SetBytes(a.X.Bytes()[:])
	y := new(big.Int).SetBytes(a.Y.Bytes()[:])
	return Secp256k1().lift(x, y)
}
