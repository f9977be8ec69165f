//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecarith/internal/crypto/curves"
	"github.com/smallyu/go-ecarith/internal/crypto/generators"
	"github.com/smallyu/go-ecarith/internal/format"
	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

func main() {
	c := make(chan struct{})

	fmt.Println("Go ECArith WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECArith", map[string]interface{}{
		"Add":        js.FuncOf(Add),
		"ScalarMult": js.FuncOf(ScalarMult),
		"Generators": js.FuncOf(Generators),
	})

	<-c
}

// CurveDTO selects a curve. Integers are strings so that JS does not lose
// precision; any base accepted by big.Int.SetString with base 0 works.
type CurveDTO struct {
	Preset string `json:"preset,omitempty"`
	Model  string `json:"model,omitempty"`
	Prime  string `json:"prime,omitempty"`
	A      string `json:"a,omitempty"`
	B      string `json:"b,omitempty"`
}

// PointDTO is an affine point, or the point at infinity when Infinity is set.
type PointDTO struct {
	X        string `json:"x,omitempty"`
	Y        string `json:"y,omitempty"`
	Infinity bool   `json:"infinity,omitempty"`
}

// Add adds two points.
// Arguments:
// 0: JSON {"curve": CurveDTO, "p": PointDTO, "q": PointDTO}
// Returns:
// JSON PointDTO or an "error: ..." string
func Add(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonRequest)"
	}
	var req struct {
		Curve CurveDTO `json:"curve"`
		P     PointDTO `json:"p"`
		Q     PointDTO `json:"q"`
	}
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	c, err := req.Curve.build()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	p, err := req.P.decode(c)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	q, err := req.Q.decode(c)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	r, err := c.Add(p, q)
	if err != nil {
		return fmt.Sprintf("error: add failed: %v", err)
	}
	return marshal(encodePoint(r))
}

// ScalarMult multiplies a point by an integer.
// Arguments:
// 0: JSON {"curve": CurveDTO, "p": PointDTO, "k": "decimal or 0x string"}
// Returns:
// JSON PointDTO or an "error: ..." string
func ScalarMult(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonRequest)"
	}
	var req struct {
		Curve CurveDTO `json:"curve"`
		P     PointDTO `json:"p"`
		K     string   `json:"k"`
	}
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	c, err := req.Curve.build()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	p, err := req.P.decode(c)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	k, ok := new(big.Int).SetString(req.K, 0)
	if !ok {
		return fmt.Sprintf("error: invalid scalar %q", req.K)
	}
	r, err := c.ScalarMult(p, k)
	if err != nil {
		return fmt.Sprintf("error: scalar multiplication failed: %v", err)
	}
	return marshal(encodePoint(r))
}

// Generators lists the generators of GF(p)*.
// Arguments:
// 0: p as a decimal or 0x string
// Returns:
// JSON array of hex strings or an "error: ..." string
func Generators(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (prime)"
	}
	p, ok := new(big.Int).SetString(args[0].String(), 0)
	if !ok {
		return fmt.Sprintf("error: invalid prime %q", args[0].String())
	}
	gens, err := generators.FindGenerators(context.Background(), p, generators.WithWorkers(1))
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return marshal(format.HexArr(gens))
}

// Helpers

func (d CurveDTO) build() (curves.Curve, error) {
	params := &ecarith.Parameters{Preset: d.Preset, Model: ecarith.Model(d.Model)}
	for _, f := range []struct {
		s   string
		dst **big.Int
	}{{d.Prime, &params.Prime}, {d.A, &params.A}, {d.B, &params.B}} {
		if f.s == "" {
			continue
		}
		n, ok := new(big.Int).SetString(f.s, 0)
		if !ok {
			return nil, fmt.Errorf("invalid integer %q", f.s)
		}
		*f.dst = n
	}
	return curves.FromParameters(params)
}

func (d PointDTO) decode(c curves.Curve) (curves.Point, error) {
	if d.Infinity {
		return c.Identity(), nil
	}
	x, ok := new(big.Int).SetString(d.X, 0)
	if !ok {
		return curves.Point{}, fmt.Errorf("invalid x %q", d.X)
	}
	y, ok := new(big.Int).SetString(d.Y, 0)
	if !ok {
		return curves.Point{}, fmt.Errorf("invalid y %q", d.Y)
	}
	return c.NewPoint(x, y)
}

func encodePoint(p curves.Point) PointDTO {
	if p.IsInfinity() {
		return PointDTO{Infinity: true}
	}
	x, y := p.Coordinates()
	return PointDTO{X: x.String(), Y: y.String()}
}

func marshal(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: marshal failed: %v", err)
	}
	return string(b)
}
