package curves

import (
	"math/big"
	"sort"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

// TinyJubJub13Edwards is the MoonMath manual's TinyJubJub curve over GF(13)
// in twisted Edwards form, 3x^2 + y^2 = 1 + 8x^2y^2.
func TinyJubJub13Edwards() *TwistedEdwards {
	return mustEdwards(3, 8, 13, "tinyjubjub13-edwards")
}

// TinyJubJub13Montgomery is TinyJubJub in Montgomery form, 7y^2 = x^3 + 6x^2 + x.
func TinyJubJub13Montgomery() *Montgomery {
	return mustMontgomery(6, 7, 13, "tinyjubjub13-montgomery")
}

// TinyJubJub13Weierstrass is TinyJubJub in short Weierstrass form, y^2 = x^3 + 8x + 8.
func TinyJubJub13Weierstrass() *ShortWeierstrass {
	return mustWeierstrass(8, 8, 13, "tinyjubjub13-weierstrass")
}

// Toy23Montgomery is y^2 = x^3 + x over GF(23). It has 24 points.
func Toy23Montgomery() *Montgomery {
	return mustMontgomery(0, 1, 23, "toy23")
}

var presets = map[string]func() Curve{
	"toy23":                    func() Curve { return Toy23Montgomery() },
	"tinyjubjub13-edwards":     func() Curve { return TinyJubJub13Edwards() },
	"tinyjubjub13-montgomery":  func() Curve { return TinyJubJub13Montgomery() },
	"tinyjubjub13-weierstrass": func() Curve { return TinyJubJub13Weierstrass() },
	"curve25519":               func() Curve { return Curve25519() },
	"ed25519":                  func() Curve { return Ed25519() },
	"secp256k1":                func() Curve { return Secp256k1() },
}

// Preset returns a named curve.
func Preset(name string) (Curve, error) {
	mk, ok := presets[name]
	if !ok {
		return nil, errors.Wrapf(ecarith.ErrUnknownPreset, "%q", name)
	}
	return mk(), nil
}

// PresetNames returns the names accepted by Preset, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromParameters builds the curve described by params.
func FromParameters(params *ecarith.Parameters, opts ...Option) (Curve, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.Preset != "" {
		return Preset(params.Preset)
	}

	model, err := ecarith.ParseModel(string(params.Model))
	if err != nil {
		return nil, err
	}
	switch model {
	case ecarith.Montgomery:
		return NewMontgomery(params.A, params.B, params.Prime, opts...)
	case ecarith.TwistedEdwards:
		return NewTwistedEdwards(params.A, params.B, params.Prime, opts...)
	default:
		return NewShortWeierstrass(params.A, params.B, params.Prime, opts...)
	}
}

func mustMontgomery(A, B, p int64, name string) *Montgomery {
	m, err := NewMontgomery(big.NewInt(A), big.NewInt(B), big.NewInt(p), WithName(name))
	if err != nil {
		panic(err)
	}
	return m
}

func mustEdwards(a, d, p int64, name string) *TwistedEdwards {
	e, err := NewTwistedEdwards(big.NewInt(a), big.NewInt(d), big.NewInt(p), WithName(name))
	if err != nil {
		panic(err)
	}
	return e
}

func mustWeierstrass(a, b, p int64, name string) *ShortWeierstrass {
	w, err := NewShortWeierstrass(big.NewInt(a), big.NewInt(b), big.NewInt(p), WithName(name))
	if err != nil {
		panic(err)
	}
	return w
}
