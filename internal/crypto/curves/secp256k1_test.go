package curves

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecp256k1ScalarBaseMult(t *testing.T) {
	curve := Secp256k1()
	g := Secp256k1Base()
	require.True(t, curve.IsOnCurve(g))

	random, err := rand.Int(rand.Reader, Secp256k1Order())
	require.NoError(t, err)

	for _, k := range []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(7), random} {
		ours, err := curve.ScalarMult(g, k)
		require.NoError(t, err)

		var kScalar secp256k1.ModNScalar
		kScalar.SetByteSlice(k.Bytes())
		var theirs secp256k1.JacobianPoint
		secp256k1.ScalarBaseMultNonConst(&kScalar, &theirs)

		assert.True(t, FromJacobian(&theirs).Equal(ours), "k = %s", k)
	}
}

func TestSecp256k1Add(t *testing.T) {
	curve := Secp256k1()

	p, q, err := RandomPoints(curve, nil)
	require.NoError(t, err)

	ours, err := curve.Add(p, q)
	require.NoError(t, err)

	jp, err := ToJacobian(p)
	require.NoError(t, err)
	jq, err := ToJacobian(q)
	require.NoError(t, err)
	var sum secp256k1.JacobianPoint
	secp256k1.AddNonConst(jp, jq, &sum)
	assert.True(t, FromJacobian(&sum).Equal(ours))

	// The big.Int API of the same library agrees as well.
	px, py := p.Coordinates()
	qx, qy := q.Coordinates()
	sx, sy := secp256k1.S256().Add(px, py, qx, qy)
	want, err := curve.NewPoint(sx, sy)
	require.NoError(t, err)
	assert.True(t, want.Equal(ours))
}

func TestSecp256k1Jacobian(t *testing.T) {
	g := Secp256k1Base()

	j, err := ToJacobian(g)
	require.NoError(t, err)
	assert.True(t, FromJacobian(j).Equal(g))

	inf, err := ToJacobian(Infinity())
	require.NoError(t, err)
	assert.True(t, FromJacobian(inf).IsInfinity())

	r, err := Secp256k1().ScalarMult(g, Secp256k1Order())
	requirePoint(t, Infinity(), r, err)
}
