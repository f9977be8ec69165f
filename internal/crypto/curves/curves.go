package curves

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

// Curve defines the affine group law shared by every curve model.
// Curves are immutable and safe for concurrent use.
type Curve interface {
	// Name returns a human readable name (the equation unless overridden).
	Name() string

	// Model returns the equation family of the curve.
	Model() ecarith.Model

	// Field returns the base field.
	Field() *field.Field

	// Identity returns the neutral element of the group law.
	Identity() Point

	// NewPoint lifts (x, y) into the base field and checks the curve equation.
	NewPoint(x, y *big.Int) (Point, error)

	// IsOnCurve reports whether p satisfies the curve equation.
	IsOnCurve(p Point) bool

	// Inverse returns -p.
	Inverse(p Point) Point

	// Add combines two points
	Add(p, q Point) (Point, error)

	// ScalarMult computes k * p by double-and-add.
	ScalarMult(p Point, k *big.Int) (Point, error)

	// RandomPoint samples a uniformly random affine point.
	RandomPoint(rnd io.Reader) (Point, error)

	String() string
}

// Option configures a curve at construction.
type Option func(*options)

type options struct {
	name     string
	noChecks bool
}

// WithName overrides the name reported by Name and used in errors.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithoutInvariantChecks disables the post-condition that every computed
// sum lies on the curve.
func WithoutInvariantChecks() Option {
	return func(o *options) {
		o.noChecks = true
	}
}

// base carries what every curve model shares.
type base struct {
	f      *field.Field
	name   string
	checks bool
}

func newBase(f *field.Field, opts []Option) base {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return base{f: f, name: o.name, checks: !o.noChecks}
}

func (b *base) Field() *field.Field {
	return b.f
}

// checkField rejects points whose coordinates live in another field.
func (b *base) checkField(points ...Point) error {
	for _, p := range points {
		if p.inf {
			continue
		}
		if !p.x.Valid() || !p.y.Valid() || !p.x.Field().Equal(b.f) || !p.y.Field().Equal(b.f) {
			return errors.Wrapf(ecarith.ErrCurveMismatch, "%s is not over %s", p, b.f)
		}
	}
	return nil
}

func (b *base) lift(x, y *big.Int) Point {
	return Affine(b.f.Element(x), b.f.Element(y))
}

// verify panics with ErrInvariantViolation if r is off the curve, unless
// the curve was built WithoutInvariantChecks.
func (b *base) verify(c Curve, op string, r Point) {
	if b.checks && !c.IsOnCurve(r) {
		panic(errors.Wrapf(ecarith.ErrInvariantViolation, "%s: %s produced %s", c.Name(), op, r))
	}
}

func (b *base) newPoint(c Curve, x, y *big.Int) (Point, error) {
	if x == nil || y == nil {
		return Point{}, errors.Wrap(ecarith.ErrInvalidParameters, "nil coordinate")
	}
	p := b.lift(x, y)
	if !c.IsOnCurve(p) {
		return Point{}, ecarith.NewPointError(c.Name(), p.x.Int(), p.y.Int())
	}
	return p, nil
}

// scalarMult is left-to-right double-and-add over c's group law.
func scalarMult(c Curve, p Point, k *big.Int) (Point, error) {
	if k.Sign() < 0 {
		p = c.Inverse(p)
		k = new(big.Int).Neg(k)
	}

	acc := c.Identity()
	var err error
	for i := k.BitLen() - 1; i >= 0; i-- {
		if acc, err = c.Add(acc, acc); err != nil {
			return Point{}, err
		}
		if k.Bit(i) == 1 {
			if acc, err = c.Add(acc, p); err != nil {
				return Point{}, err
			}
		}
	}
	return acc, nil
}
