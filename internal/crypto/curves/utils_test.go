package curves

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// allPoints enumerates the affine points of a curve over a small field.
func allPoints(t *testing.T, c Curve) []Point {
	t.Helper()
	p := c.Field().Order().Int64()
	var points []Point
	for x := int64(0); x < p; x++ {
		for y := int64(0); y < p; y++ {
			pt, err := c.NewPoint(big.NewInt(x), big.NewInt(y))
			if err == nil {
				points = append(points, pt)
			}
		}
	}
	return points
}

func mustPoint(t *testing.T, c Curve, x, y int64) Point {
	t.Helper()
	p, err := c.NewPoint(big.NewInt(x), big.NewInt(y))
	require.NoError(t, err)
	return p
}

func requirePoint(t *testing.T, want Point, got Point, err error) {
	t.Helper()
	require.NoError(t, err)
	require.True(t, want.Equal(got), "want %s, got %s", want, got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source exhausted")
}
