// Package format renders numbers the way the experiments print them.
package format

import (
	"math/big"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
)

// Hex formats n like Python's hex(): lowercase digits with a 0x prefix,
// and a leading minus sign for negative values.
func Hex(n *big.Int) string {
	if n.Sign() < 0 {
		return "-0x" + new(big.Int).Neg(n).Text(16)
	}
	return "0x" + n.Text(16)
}

// HexArr applies Hex to every value.
func HexArr(values []*big.Int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Hex(v)
	}
	return out
}

// HexInts is HexArr for machine integers.
func HexInts[T constraints.Integer](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if v < 0 {
			out[i] = "-0x" + strconv.FormatUint(uint64(-int64(v)), 16)
		} else {
			out[i] = "0x" + strconv.FormatUint(uint64(v), 16)
		}
	}
	return out
}

// HexElements is HexArr for field elements, using their canonical
// representatives.
func HexElements(values []field.Element) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = "0x" + v.Text(16)
	}
	return out
}
