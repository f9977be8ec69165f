package curves

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
)

// RandomPoints samples two random points p, q on c such that neither is the
// identity and q != -p, so that p + q is not the identity either.
//
// Sampling rejects and retries, so termination is probabilistic. On any
// curve with more than three points the expected number of draws is small.
func RandomPoints(c Curve, rnd io.Reader) (Point, Point, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	identity := c.Identity()

	p, err := c.RandomPoint(rnd)
	for err == nil && p.Equal(identity) {
		p, err = c.RandomPoint(rnd)
	}
	if err != nil {
		return Point{}, Point{}, err
	}

	negP := c.Inverse(p)
	q, err := c.RandomPoint(rnd)
	for err == nil && (q.Equal(identity) || q.Equal(negP)) {
		q, err = c.RandomPoint(rnd)
	}
	if err != nil {
		return Point{}, Point{}, err
	}
	return p, q, nil
}

func randomBit(rnd io.Reader) (bool, error) {
	var b [1]byte
	if _, err := io.ReadFull(rnd, b[:]); err != nil {
		return false, errors.Wrap(err, "reading random bit")
	}
	return b[0]&1 == 1, nil
}

// withParity returns whichever of r and -r has the requested parity.
func withParity(r field.Element, odd bool) field.Element {
	if r.IsOdd() != odd {
		return r.Neg()
	}
	return r
}

// sampleOnCurve draws t uniformly and asks solve for the other coordinate
// with a random parity. Zero solutions are only accepted with even parity
// so that every affine point is equally likely.
func sampleOnCurve(f *field.Field, rnd io.Reader, solve func(t field.Element, odd bool) (field.Element, error)) (field.Element, field.Element, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	for {
		t, err := f.Random(rnd)
		if err != nil {
			return field.Element{}, field.Element{}, err
		}
		odd, err := randomBit(rnd)
		if err != nil {
			return field.Element{}, field.Element{}, err
		}
		s, err := solve(t, odd)
		if err != nil {
			continue
		}
		if s.IsZero() && odd {
			continue
		}
		return t, s, nil
	}
}
