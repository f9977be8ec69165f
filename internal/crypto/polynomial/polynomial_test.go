package polynomial

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

// 2^255 - 19
func largeField(t *testing.T) *field.Field {
	p := new(big.Int).Lsh(big.NewInt(1), 255)
	p.Sub(p, big.NewInt(19))
	f, err := field.New(p)
	require.NoError(t, err)
	return f
}

func TestNew(t *testing.T) {
	f := largeField(t)

	t.Run("with random secret", func(t *testing.T) {
		poly, err := New(f, 2, nil, nil)
		if err != nil {
			t.Fatalf("Failed to create polynomial: %v", err)
		}

		if len(poly.Coefficients) != 3 {
			t.Errorf("Expected 3 coefficients for degree 2, got %d", len(poly.Coefficients))
		}

		for i, c := range poly.Coefficients {
			if !c.Valid() {
				t.Errorf("Coefficient %d is not set", i)
			}
			if c.Int().Cmp(f.Order()) >= 0 {
				t.Errorf("Coefficient %d is out of range", i)
			}
		}
	})

	t.Run("with provided secret", func(t *testing.T) {
		secret := big.NewInt(12345)
		poly, err := New(f, 2, secret, nil)
		if err != nil {
			t.Fatalf("Failed to create polynomial: %v", err)
		}

		if poly.Secret().Int().Cmp(secret) != 0 {
			t.Errorf("Expected a_0 = %s, got %s", secret, poly.Secret())
		}
	})

	t.Run("degree 0", func(t *testing.T) {
		poly, err := New(f, 0, big.NewInt(999), nil)
		if err != nil {
			t.Fatalf("Failed to create polynomial: %v", err)
		}
		assert.Equal(t, 0, poly.Degree())
	})

	t.Run("negative degree", func(t *testing.T) {
		_, err := New(f, -1, nil, nil)
		assert.True(t, errors.Is(err, ecarith.ErrInvalidParameters))
	})

	t.Run("entropy failure", func(t *testing.T) {
		_, err := New(f, 1, big.NewInt(1), emptyReader{})
		assert.Error(t, err)
	})
}

type emptyReader struct{}

func (emptyReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestEvaluate(t *testing.T) {
	f := largeField(t)

	tests := []struct {
		name   string
		coeffs []int64
		x      int64
		want   int64
	}{
		{"constant at 0", []int64{5}, 0, 5},
		{"constant at 100", []int64{5}, 100, 5},
		{"linear at 0", []int64{3, 2}, 0, 3},
		{"linear at 5", []int64{3, 2}, 5, 13},
		{"quadratic at 1", []int64{1, 2, 3}, 1, 6},
		{"quadratic at 3", []int64{1, 2, 3}, 3, 34},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromInt64(f, tt.coeffs...).Evaluate(f.Int64(tt.x))
			if got.Int().Int64() != tt.want {
				t.Errorf("f(%d) = %s, expected %d", tt.x, got, tt.want)
			}
		})
	}

	t.Run("modular reduction", func(t *testing.T) {
		// f(x) = (p-1) + 2x, so f(1) = p+1 = 1
		poly := FromInt64(f, -1, 2)
		assert.True(t, poly.Evaluate(f.One()).IsOne())
	})

	t.Run("small field", func(t *testing.T) {
		g := field.MustNew(big.NewInt(23))
		// 1 + 6 + 27 = 34 = 11 mod 23
		assert.Equal(t, int64(11), FromInt64(g, 1, 2, 3).Evaluate(g.Int64(3)).Int().Int64())
	})
}

func TestEvaluateMulti(t *testing.T) {
	f := largeField(t)

	// f(x) = 5 + 3x
	poly := FromInt64(f, 5, 3)
	xs := []field.Element{f.Int64(0), f.Int64(1), f.Int64(2), f.Int64(10)}
	expected := []int64{5, 8, 11, 35}

	results := poly.EvaluateMulti(xs)
	if len(results) != len(expected) {
		t.Fatalf("Expected %d results, got %d", len(expected), len(results))
	}
	for i, r := range results {
		if r.Int().Int64() != expected[i] {
			t.Errorf("f(%s) = %s, expected %d", xs[i], r, expected[i])
		}
	}
}

func TestInterpolateAt(t *testing.T) {
	f := field.MustNew(big.NewInt(23))

	t.Run("agrees with the polynomial everywhere", func(t *testing.T) {
		poly := FromInt64(f, 4, 0, 7, 1)
		xs := []field.Element{f.Int64(1), f.Int64(5), f.Int64(9), f.Int64(20)}
		ys := poly.EvaluateMulti(xs)

		for x := int64(0); x < 23; x++ {
			got, err := InterpolateAt(xs, ys, f.Int64(x))
			require.NoError(t, err)
			assert.True(t, got.Equal(poly.Evaluate(f.Int64(x))), "x = %d", x)
		}
	})

	t.Run("repeated abscissa", func(t *testing.T) {
		xs := []field.Element{f.Int64(2), f.Int64(25)}
		ys := []field.Element{f.One(), f.One()}
		_, err := InterpolateAt(xs, ys, f.Zero())
		assert.True(t, errors.Is(err, ecarith.ErrDivisionByZero))
	})

	t.Run("mismatched inputs", func(t *testing.T) {
		_, err := InterpolateAt([]field.Element{f.One()}, nil, f.Zero())
		assert.True(t, errors.Is(err, ecarith.ErrInvalidParameters))
	})
}

func TestShamirSecretSharing(t *testing.T) {
	f := largeField(t)

	secret := big.NewInt(42)
	poly, err := New(f, 2, secret, nil) // degree 2, so 3 shares are needed
	if err != nil {
		t.Fatalf("Failed to create polynomial: %v", err)
	}

	xs := []field.Element{f.Int64(1), f.Int64(2), f.Int64(3)}
	shares := poly.EvaluateMulti(xs)

	reconstructed, err := InterpolateAt(xs, shares, f.Zero())
	require.NoError(t, err)
	if reconstructed.Int().Cmp(secret) != 0 {
		t.Errorf("Reconstructed secret = %s, expected %s", reconstructed, secret)
	}

	// Two shares of a degree 2 polynomial say nothing useful about f(0).
	partial, err := InterpolateAt(xs[:2], shares[:2], f.Zero())
	require.NoError(t, err)
	assert.NotEqual(t, secret.String(), partial.Int().String())
}
