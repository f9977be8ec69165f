package curves

import (
	"math/big"
	"sync"

	"filippo.io/edwards25519"
	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

var (
	// p = 2^255 - 19
	p25519 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

	// l = 2^252 + 27742317777372353535851937790883648493
	ed25519Order, _ = new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

	ed25519Once  sync.Once
	ed25519Curve *TwistedEdwards
	ed25519Base  Point
)

func initEd25519() {
	f := field.MustNew(p25519)

	// d = -121665/121666
	d, err := f.Int64(-121665).Div(f.Int64(121666))
	if err != nil {
		panic(err)
	}
	ed25519Curve, err = NewTwistedEdwardsOver(f, f.Int64(-1), d, WithName("ed25519"))
	if err != nil {
		panic(err)
	}

	// The base point has y = 4/5 and an even x.
	y, err := f.Int64(4).Div(f.Int64(5))
	if err != nil {
		panic(err)
	}
	x, err := ed25519Curve.RecoverX(y, false)
	if err != nil {
		panic(err)
	}
	ed25519Base = Affine(x, y)
}

// Ed25519 returns the twisted Edwards curve -x^2 + y^2 = 1 + d*x^2*y^2 over
// GF(2^255 - 19) with d = -121665/121666.
func Ed25519() *TwistedEdwards {
	ed25519Once.Do(initEd25519)
	return ed25519Curve
}

// Ed25519Base returns the standard Ed25519 base point.
func Ed25519Base() Point {
	ed25519Once.Do(initEd25519)
	return ed25519Base
}

// Ed25519Order returns the order of the Ed25519 base point.
func Ed25519Order() *big.Int {
	return new(big.Int).Set(ed25519Order)
}

// Curve25519 returns the Montgomery curve y^2 = x^3 + 486662x^2 + x over
// GF(2^255 - 19).
func Curve25519() *Montgomery {
	m, err := NewMontgomery(big.NewInt(486662), big.NewInt(1), p25519, WithName("curve25519"))
	if err != nil {
		panic(err)
	}
	return m
}

// EncodeEd25519 returns the 32-byte encoding of p: y in little-endian with
// the parity of x in the top bit.
func EncodeEd25519(p Point) ([]byte, error) {
	c := Ed25519()
	p = c.normalize(p)
	if err := c.checkField(p); err != nil {
		return nil, err
	}

	out := littleEndian32(p.y.Int())
	if p.x.IsOdd() {
		out[31] |= 0x80
	}
	return out, nil
}

// DecodeEd25519 parses a 32-byte point encoding. Non-canonical y values and
// encodings that do not decode to a curve point are rejected.
func DecodeEd25519(b []byte) (Point, error) {
	if len(b) != 32 {
		return Point{}, errors.Wrapf(ecarith.ErrInvalidPoint, "ed25519: encoding is %d bytes, want 32", len(b))
	}
	c := Ed25519()

	buf := make([]byte, 32)
	copy(buf, b)
	odd := buf[31]&0x80 != 0
	buf[31] &= 0x7f

	yInt := fromLittleEndian(buf)
	if yInt.Cmp(p25519) >= 0 {
		return Point{}, errors.Wrap(ecarith.ErrInvalidPoint, "ed25519: non-canonical y")
	}
	y := c.f.Element(yInt)
	x, err := c.RecoverX(y, odd)
	if err != nil {
		return Point{}, errors.Wrap(ecarith.ErrInvalidPoint, err.Error())
	}
	return Affine(x, y), nil
}

// FromEdwards25519 converts a filippo.io/edwards25519 point to an affine
// point on Ed25519().
func FromEdwards25519(p *edwards25519.Point) (Point, error) {
	return DecodeEd25519(p.Bytes())
}

// ToEdwards25519 converts an affine point on Ed25519() to a
// filippo.io/edwards25519 point.
func ToEdwards25519(p Point) (*edwards25519.Point, error) {
	b, err := EncodeEd25519(p)
	if err != nil {
		return nil, err
	}
	q, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return nil, errors.Wrap(ecarith.ErrInvalidPoint, err.Error())
	}
	return q, nil
}

// Ed25519Scalar converts n to an edwards25519 scalar, reducing it modulo
// the base point order first.
func Ed25519Scalar(n *big.Int) (*edwards25519.Scalar, error) {
	r := new(big.Int).Mod(n, ed25519Order)
	s, err := edwards25519.NewScalar().SetCanonicalBytes(littleEndian32(r))
	if err != nil {
		return nil, errors.Wrap(err, "ed25519 scalar")
	}
	return s, nil
}

// Ed25519MontgomeryU returns the little-endian Curve25519 u-coordinate
// (1+y)/(1-y) of p, the same value as edwards25519's BytesMontgomery.
func Ed25519MontgomeryU(p Point) ([]byte, error) {
	c := Ed25519()
	p = c.normalize(p)
	if err := c.checkField(p); err != nil {
		return nil, err
	}
	u, err := montgomeryU(p.y)
	if err != nil {
		// (1-y) = 0 is the identity, which edwards25519 maps to u = 0.
		return make([]byte, 32), nil
	}
	return littleEndian32(u.Int()), nil
}

// littleEndian32 encodes n < 2^256 as 32 little-endian bytes.
// big.Int.Bytes() is big-endian, so the bytes are reversed.
func littleEndian32(n *big.Int) []byte {
	var buf [32]byte
	n.FillBytes(buf[:])
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:]
}

func fromLittleEndian(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be)
}
