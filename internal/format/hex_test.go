package format

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
)

func TestHexArr(t *testing.T) {
	values := []*big.Int{big.NewInt(0), big.NewInt(10), big.NewInt(255), big.NewInt(-26)}
	assert.Equal(t, []string{"0x0", "0xa", "0xff", "-0x1a"}, HexArr(values))

	p, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	assert.Equal(t, "0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", Hex(p))

	assert.Empty(t, HexArr(nil))
}

func TestHexInts(t *testing.T) {
	assert.Equal(t, []string{"0x5", "0x7", "0x15"}, HexInts([]int{5, 7, 21}))
	assert.Equal(t, []string{"-0x1", "-0x8000000000000000"}, HexInts([]int64{-1, math.MinInt64}))
	assert.Equal(t, []string{"0xffffffffffffffff"}, HexInts([]uint64{math.MaxUint64}))
	assert.Equal(t, []string{"0x80"}, HexInts([]uint8{128}))
}

func TestHexElements(t *testing.T) {
	f := field.MustNew(big.NewInt(23))
	assert.Equal(t, []string{"0x16", "0x0"}, HexElements([]field.Element{f.Int64(-1), f.Int64(23)}))
}
