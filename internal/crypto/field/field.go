// Package field implements arithmetic in prime fields GF(p) on top of
// math/big. Elements are immutable values: every operation returns a new
// element and never modifies its operands.
package field

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

// primalityRounds is the number of Miller-Rabin rounds used to accept a
// modulus (big.Int.ProbablyPrime also runs a Baillie-PSW test).
const primalityRounds = 20

// Field is the prime field GF(p).
type Field struct {
	p *big.Int
}

// New returns GF(p). It fails with ErrNotPrime if p is not prime.
func New(p *big.Int) (*Field, error) {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 || !p.ProbablyPrime(primalityRounds) {
		return nil, errors.Wrapf(ecarith.ErrNotPrime, "%v", p)
	}
	return &Field{p: new(big.Int).Set(p)}, nil
}

// MustNew is like New but panics on a composite modulus.
// It is meant for package level presets.
func MustNew(p *big.Int) *Field {
	f, err := New(p)
	if err != nil {
		panic(err)
	}
	return f
}

// Order returns the number of elements of the field, i.e. the modulus.
func (f *Field) Order() *big.Int {
	return new(big.Int).Set(f.p)
}

// Equal reports whether f and g have the same modulus.
func (f *Field) Equal(g *Field) bool {
	if f == g {
		return true
	}
	if f == nil || g == nil {
		return false
	}
	return f.p.Cmp(g.p) == 0
}

// Element lifts n into the field, reducing it modulo p.
// Negative values are mapped to their non-negative residue.
func (f *Field) Element(n *big.Int) Element {
	v := new(big.Int).Mod(n, f.p)
	return Element{f: f, v: v}
}

// Int64 lifts a machine integer into the field.
func (f *Field) Int64(n int64) Element {
	return f.Element(big.NewInt(n))
}

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	return Element{f: f, v: new(big.Int)}
}

// One returns the multiplicative identity.
func (f *Field) One() Element {
	return Element{f: f, v: big.NewInt(1)}
}

// Random returns a uniformly random element read from rnd.
// A nil reader means crypto/rand.Reader.
func (f *Field) Random(rnd io.Reader) (Element, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	v, err := rand.Int(rnd, f.p)
	if err != nil {
		return Element{}, errors.Wrap(err, "field: sampling random element")
	}
	return Element{f: f, v: v}, nil
}

func (f *Field) String() string {
	return "GF(" + f.p.String() + ")"
}
