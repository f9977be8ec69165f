package ecarith

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModel(t *testing.T) {
	for in, want := range map[string]Model{
		"montgomery":        Montgomery,
		"Mont":              Montgomery,
		"edwards":           TwistedEdwards,
		"twisted-edwards":   TwistedEdwards,
		" sw ":              ShortWeierstrass,
		"short-weierstrass": ShortWeierstrass,
	} {
		got, err := ParseModel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseModel("hessian")
	assert.True(t, errors.Is(err, ErrUnknownModel))
}

func TestLoadParametersFromYAML(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	err := v.ReadConfig(strings.NewReader(`
curve:
  model: montgomery
  prime: "0x17"
  a: 0
  b: 1
`))
	require.NoError(t, err)

	params, err := LoadParameters(v)
	require.NoError(t, err)
	assert.Equal(t, Montgomery, params.Model)
	assert.Equal(t, 0, params.Prime.Cmp(big.NewInt(23)))
	assert.Equal(t, 0, params.A.Sign())
	assert.Equal(t, 0, params.B.Cmp(big.NewInt(1)))
}

func TestLoadParametersPreset(t *testing.T) {
	v := viper.New()
	v.Set(KeyPreset, "curve25519")

	params, err := LoadParameters(v)
	require.NoError(t, err)
	assert.Equal(t, "curve25519", params.Preset)
	assert.Nil(t, params.Prime)
}

func TestLoadParametersInvalid(t *testing.T) {
	t.Run("missing model", func(t *testing.T) {
		v := viper.New()
		v.Set(KeyPrime, "23")
		_, err := LoadParameters(v)
		assert.True(t, errors.Is(err, ErrInvalidParameters))
	})

	t.Run("missing coefficient", func(t *testing.T) {
		v := viper.New()
		v.Set(KeyModel, "edwards")
		v.Set(KeyPrime, "13")
		v.Set(KeyA, "3")
		_, err := LoadParameters(v)
		assert.True(t, errors.Is(err, ErrInvalidParameters))
	})

	t.Run("not an integer", func(t *testing.T) {
		v := viper.New()
		v.Set(KeyModel, "edwards")
		v.Set(KeyPrime, "thirteen")
		_, err := LoadParameters(v)
		assert.True(t, errors.Is(err, ErrInvalidParameters))
	})
}

func TestPointError(t *testing.T) {
	err := NewPointError("y^2 = x^3 + x", big.NewInt(1), big.NewInt(2))

	assert.True(t, errors.Is(err, ErrInvalidPoint))
	assert.Contains(t, err.Error(), "(1, 2)")

	var pe *PointError
	require.True(t, errors.As(error(err), &pe))
	assert.Equal(t, "y^2 = x^3 + x", pe.Curve)
}
