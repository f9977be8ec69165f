package ecarith

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Model names the equation family of a curve.
type Model string

const (
	// Montgomery is B*y^2 = x^3 + A*x^2 + x.
	Montgomery Model = "montgomery"
	// TwistedEdwards is a*x^2 + y^2 = 1 + d*x^2*y^2.
	TwistedEdwards Model = "twisted-edwards"
	// ShortWeierstrass is y^2 = x^3 + a*x + b.
	ShortWeierstrass Model = "short-weierstrass"
)

// ParseModel maps a user supplied model name to a Model.
// A few common spellings are accepted.
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "montgomery", "mont":
		return Montgomery, nil
	case "twisted-edwards", "twistededwards", "edwards", "ed":
		return TwistedEdwards, nil
	case "short-weierstrass", "shortweierstrass", "weierstrass", "sw":
		return ShortWeierstrass, nil
	}
	return "", errors.Wrapf(ErrUnknownModel, "%q", s)
}

// Parameters holds the configuration of a curve.
// Either Preset is set, or Model, Prime, A and B all are.
// For Twisted Edwards curves A and B carry a and d.
type Parameters struct {
	Preset string
	Model  Model
	Prime  *big.Int
	A      *big.Int
	B      *big.Int
}

// Validate checks that the parameters are complete.
func (p *Parameters) Validate() error {
	if p.Preset != "" {
		return nil
	}
	if p.Model == "" {
		return errors.Wrap(ErrInvalidParameters, "either a preset or a model is required")
	}
	if _, err := ParseModel(string(p.Model)); err != nil {
		return err
	}
	if p.Prime == nil || p.A == nil || p.B == nil {
		return errors.Wrapf(ErrInvalidParameters, "%s curve needs prime, a and b", p.Model)
	}
	return nil
}

// Configuration keys read by LoadParameters.
const (
	KeyPreset = "curve.preset"
	KeyModel  = "curve.model"
	KeyPrime  = "curve.prime"
	KeyA      = "curve.a"
	KeyB      = "curve.b"
)

// LoadParameters reads curve parameters from v.
// Integers are accepted in any base understood by big.Int.SetString with
// base 0 (decimal, 0x, 0o, 0b).
func LoadParameters(v *viper.Viper) (*Parameters, error) {
	params := &Parameters{
		Preset: strings.TrimSpace(v.GetString(KeyPreset)),
	}

	if m := v.GetString(KeyModel); m != "" {
		model, err := ParseModel(m)
		if err != nil {
			return nil, err
		}
		params.Model = model
	}

	var err error
	if params.Prime, err = parseInt(v, KeyPrime); err != nil {
		return nil, err
	}
	if params.A, err = parseInt(v, KeyA); err != nil {
		return nil, err
	}
	if params.B, err = parseInt(v, KeyB); err != nil {
		return nil, err
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

func parseInt(v *viper.Viper, key string) (*big.Int, error) {
	s := strings.TrimSpace(v.GetString(key))
	if s == "" {
		return nil, nil
	}
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidParameters, "%s: %q is not an integer", key, s)
	}
	return n, nil
}
