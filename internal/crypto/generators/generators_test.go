package generators

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

func TestFactorize(t *testing.T) {
	for n, want := range map[int64]string{
		1:    "1",
		2:    "2",
		22:   "2 * 11",
		360:  "2^3 * 3^2 * 5",
		1009: "1009",
		1008: "2^4 * 3^2 * 7",
	} {
		assert.Equal(t, want, FormatFactors(Factorize(big.NewInt(n))), "n = %d", n)
	}

	assert.Nil(t, Factorize(big.NewInt(0)))
}

func TestEulerPhi(t *testing.T) {
	for n, want := range map[int64]int64{
		1:   1,
		12:  4,
		22:  10,
		36:  12,
		97:  96,
		360: 96,
	} {
		assert.Equal(t, want, EulerPhi(Factorize(big.NewInt(n))).Int64(), "phi(%d)", n)
	}
}

func TestIsGenerator(t *testing.T) {
	f := field.MustNew(big.NewInt(23))
	factors := Factorize(big.NewInt(22))

	assert.True(t, IsGenerator(f.Int64(5), factors))
	assert.False(t, IsGenerator(f.Int64(2), factors)) // 2^11 = 1
	assert.False(t, IsGenerator(f.Int64(22), factors))
	assert.False(t, IsGenerator(f.Zero(), factors))
	assert.False(t, IsGenerator(f.One(), factors))
}

func TestFindGenerators(t *testing.T) {
	t.Run("p = 23", func(t *testing.T) {
		gens, err := FindGenerators(context.Background(), big.NewInt(23))
		require.NoError(t, err)

		want := []int64{5, 7, 10, 11, 14, 15, 17, 19, 20, 21}
		require.Len(t, gens, len(want))
		for i, g := range gens {
			assert.Equal(t, want[i], g.Int64())
		}
	})

	t.Run("worker count does not change the result", func(t *testing.T) {
		one, err := FindGenerators(context.Background(), big.NewInt(1009), WithWorkers(1))
		require.NoError(t, err)
		many, err := FindGenerators(context.Background(), big.NewInt(1009), WithWorkers(7))
		require.NoError(t, err)
		assert.Equal(t, one, many)
		assert.Len(t, one, 288) // phi(1008)
	})

	t.Run("p = 2", func(t *testing.T) {
		gens, err := FindGenerators(context.Background(), big.NewInt(2))
		require.NoError(t, err)
		require.Len(t, gens, 1)
		assert.Equal(t, int64(1), gens[0].Int64())
	})

	t.Run("composite", func(t *testing.T) {
		_, err := FindGenerators(context.Background(), big.NewInt(21))
		assert.True(t, errors.Is(err, ecarith.ErrNotPrime))
	})

	t.Run("too large", func(t *testing.T) {
		p := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1))
		_, err := FindGenerators(context.Background(), p)
		assert.True(t, errors.Is(err, ecarith.ErrInvalidParameters))
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := FindGenerators(ctx, big.NewInt(1000003), WithWorkers(2))
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestFindGeneratorsLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := FindGenerators(context.Background(), big.NewInt(23), WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("factored group order").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "2 * 11", entries[0].ContextMap()["factors"])
}
