package curves

import (
	"math/big"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
)

// Point represents a point on an elliptic curve in affine coordinates, or
// the point at infinity of the models that cannot express their neutral
// element as a pair (x, y).
//
// A Point does not know its curve. Points are values and are never
// modified after construction.
type Point struct {
	x, y field.Element
	inf  bool
}

// Affine returns the point (x, y). It does not check any curve equation;
// use Curve.NewPoint for that.
func Affine(x, y field.Element) Point {
	return Point{x: x, y: y}
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{inf: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// X returns the x-coordinate. It is invalid for the point at infinity.
func (p Point) X() field.Element {
	return p.x
}

// Y returns the y-coordinate. It is invalid for the point at infinity.
func (p Point) Y() field.Element {
	return p.y
}

// Coordinates returns copies of the affine coordinates, or nil, nil for
// the point at infinity.
func (p Point) Coordinates() (*big.Int, *big.Int) {
	if p.inf {
		return nil, nil
	}
	return p.x.Int(), p.y.Int()
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

func (p Point) String() string {
	if p.inf {
		return "inf"
	}
	return "(" + p.x.String() + ", " + p.y.String() + ")"
}
