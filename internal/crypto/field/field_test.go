package field

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

func TestNew(t *testing.T) {
	f, err := New(big.NewInt(23))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(23), f.Order())
	assert.Equal(t, "GF(23)", f.String())

	for _, n := range []int64{0, 1, 21, 25} {
		_, err := New(big.NewInt(n))
		assert.True(t, errors.Is(err, ecarith.ErrNotPrime), "modulus %d", n)
	}

	_, err = New(nil)
	assert.True(t, errors.Is(err, ecarith.ErrNotPrime))
}

func TestElementArithmetic(t *testing.T) {
	f := MustNew(big.NewInt(23))

	a := f.Int64(9)
	b := f.Int64(20)

	assert.Equal(t, "6", a.Add(b).String())
	assert.Equal(t, "12", a.Sub(b).String())
	assert.Equal(t, "19", a.Mul(b).String()) // 180 = 7*23 + 19
	assert.Equal(t, "14", a.Neg().String())
	assert.Equal(t, "12", a.Square().String()) // 81 = 3*23 + 12
	assert.Equal(t, "16", a.Cube().String())   // 729 = 31*23 + 16

	t.Run("negative lift", func(t *testing.T) {
		assert.True(t, f.Int64(-1).Equal(f.Int64(22)))
	})

	t.Run("division", func(t *testing.T) {
		q, err := f.Int64(244).Div(f.Int64(10))
		require.NoError(t, err)
		assert.Equal(t, "6", q.String())
		assert.True(t, q.MulInt64(10).Equal(f.Int64(244)))
	})

	t.Run("division by zero", func(t *testing.T) {
		_, err := a.Div(f.Zero())
		assert.True(t, errors.Is(err, ecarith.ErrDivisionByZero))

		_, err = f.Zero().Inv()
		assert.True(t, errors.Is(err, ecarith.ErrDivisionByZero))
	})

	t.Run("exponent", func(t *testing.T) {
		e, err := f.Int64(5).Exp(big.NewInt(22))
		require.NoError(t, err)
		assert.True(t, e.IsOne())

		inv, err := f.Int64(10).Exp(big.NewInt(-1))
		require.NoError(t, err)
		assert.Equal(t, "7", inv.String())

		_, err = f.Zero().Exp(big.NewInt(-2))
		assert.True(t, errors.Is(err, ecarith.ErrDivisionByZero))
	})

	t.Run("operands are not modified", func(t *testing.T) {
		_ = a.Add(b)
		_ = a.Mul(b)
		assert.Equal(t, "9", a.String())
		assert.Equal(t, "20", b.String())
	})
}

func TestSqrt(t *testing.T) {
	f := MustNew(big.NewInt(13))

	for i := int64(0); i < 13; i++ {
		e := f.Int64(i)
		r, err := e.Sqrt()
		if e.IsSquare() {
			require.NoError(t, err, "sqrt(%d)", i)
			assert.True(t, r.Square().Equal(e), "sqrt(%d)^2", i)
		} else {
			assert.True(t, errors.Is(err, ecarith.ErrNoSquareRoot), "sqrt(%d)", i)
		}
	}

	// p = 2^255 - 19 is 5 mod 8
	p := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))
	g := MustNew(p)
	x := g.Int64(123456789)
	r, err := x.Square().Sqrt()
	require.NoError(t, err)
	assert.True(t, r.Equal(x) || r.Equal(x.Neg()))
}

func TestRandom(t *testing.T) {
	f := MustNew(big.NewInt(1009))
	for i := 0; i < 100; i++ {
		e, err := f.Random(nil)
		require.NoError(t, err)
		assert.True(t, e.Int().Cmp(f.Order()) < 0)
		assert.True(t, e.Int().Sign() >= 0)
	}
}

func TestMixedFieldsPanic(t *testing.T) {
	f := MustNew(big.NewInt(13))
	g := MustNew(big.NewInt(23))

	assert.Panics(t, func() { f.One().Add(g.One()) })
	assert.False(t, f.One().Equal(g.One()))
	assert.True(t, f.Equal(MustNew(big.NewInt(13))))
}
