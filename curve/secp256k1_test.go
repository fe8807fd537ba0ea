package curve_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estevao-braga/ecdsacore/bignat"
	"github.com/estevao-braga/ecdsacore/curve"
)

// TestSecp256k1AgainstBtcec cross-checks this package's from-scratch affine
// point arithmetic against btcec's production Jacobian-coordinate
// implementation, the same role sammyne/secp256k1's koblitz package plays
// as an independent oracle for crypto/elliptic's Curve interface: an
// implementation this module never imports outside of tests.
func TestSecp256k1AgainstBtcec(t *testing.T) {
	c := curve.Secp256k1()
	g := curve.Secp256k1Generator()
	refCurve := btcec.S256()

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		kBytes := make([]byte, 32)
		r.Read(kBytes)
		k := new(big.Int).SetBytes(kBytes)
		if k.Sign() == 0 {
			continue
		}

		got, err := c.ScalarMul(g, bignat.New(k))
		require.NoError(t, err)
		require.False(t, got.IsIdentity())
		gotX, gotY := got.XY()

		wantX, wantY := refCurve.ScalarBaseMult(kBytes)

		assert.Equal(t, wantX.String(), gotX.String(), "x mismatch for k=%s", k)
		assert.Equal(t, wantY.String(), gotY.String(), "y mismatch for k=%s", k)
	}
}
