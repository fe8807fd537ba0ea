package ecdsa_test

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estevao-braga/ecdsacore/bignat"
	"github.com/estevao-braga/ecdsacore/curve"
	"github.com/estevao-braga/ecdsacore/ecdsa"
	"github.com/estevao-braga/ecdsacore/hashsource"
	"github.com/estevao-braga/ecdsacore/randsource"
)

// f17Signer builds a Signer over a small hand-verifiable curve:
// y^2 = x^3 + 2x + 2 over F_17, generator A = (5, 1), order q = 19.
func f17Signer() ecdsa.Signer {
	c := curve.New(bignat.FromUint64(2), bignat.FromUint64(2), bignat.FromUint64(17))
	a := curve.Affine(bignat.FromUint64(5), bignat.FromUint64(1))
	q := bignat.FromUint64(19)
	return ecdsa.New(c, a, q)
}

func TestSignerSelfCheck(t *testing.T) {
	assert.NoError(t, f17Signer().SelfCheck())
}

func TestSignVerifyRoundTrip(t *testing.T) {
	s := f17Signer()
	d := bignat.FromUint64(7)
	k := bignat.FromUint64(18)

	pub, err := s.DerivePublicKey(d)
	require.NoError(t, err)

	h := ecdsa.ReduceMessage(hashsource.SHA256{}, []byte("Bob -> 1 BTC -> Alice"), s.Order)

	sig, err := s.Sign(h, d, k)
	require.NoError(t, err, "sign failed: %s", spew.Sdump(sig))

	assert.True(t, s.Verify(h, pub, sig), "expected signature to verify")
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	s := f17Signer()
	d := bignat.FromUint64(7)
	k := bignat.FromUint64(18)

	pub, err := s.DerivePublicKey(d)
	require.NoError(t, err)

	h := ecdsa.ReduceMessage(hashsource.SHA256{}, []byte("Bob -> 1 BTC -> Alice"), s.Order)
	sig, err := s.Sign(h, d, k)
	require.NoError(t, err)

	tamperedH := ecdsa.ReduceMessage(hashsource.SHA256{}, []byte("Bob -> 2 BTC -> Alice"), s.Order)
	assert.False(t, s.Verify(tamperedH, pub, sig), "tampered message must not verify")
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	s := f17Signer()
	d := bignat.FromUint64(7)
	k := bignat.FromUint64(4)

	pub, err := s.DerivePublicKey(d)
	require.NoError(t, err)

	h := ecdsa.ReduceMessage(hashsource.SHA256{}, []byte("Bob -> 1 BTC -> Alice"), s.Order)
	sig, err := s.Sign(h, d, k)
	require.NoError(t, err)

	tamperedR := sig.R.Add(bignat.One()).Mod(s.Order)
	tampered := ecdsa.Signature{R: tamperedR, S: sig.S}
	assert.False(t, s.Verify(h, pub, tampered), "tampered signature must not verify")
}

func TestSignPreconditions(t *testing.T) {
	s := f17Signer()
	valid := bignat.FromUint64(5)
	outOfRange := bignat.FromUint64(19) // == q

	_, err := s.Sign(outOfRange, valid, valid)
	assert.ErrorIs(t, err, ecdsa.ErrScalarOutOfRange)

	_, err = s.Sign(valid, outOfRange, valid)
	assert.ErrorIs(t, err, ecdsa.ErrScalarOutOfRange)

	_, err = s.Sign(valid, valid, bignat.Zero())
	assert.ErrorIs(t, err, ecdsa.ErrScalarOutOfRange)
}

func TestVerifyNeverPanicsOnBadInput(t *testing.T) {
	s := f17Signer()
	pub := curve.Affine(bignat.FromUint64(5), bignat.FromUint64(1))

	assert.False(t, s.Verify(bignat.Zero(), pub, ecdsa.Signature{R: bignat.One(), S: bignat.One()}))
	assert.False(t, s.Verify(bignat.One(), curve.Identity(), ecdsa.Signature{R: bignat.One(), S: bignat.One()}))
	assert.False(t, s.Verify(bignat.One(), pub, ecdsa.Signature{R: bignat.Zero(), S: bignat.One()}))
	assert.False(t, s.Verify(bignat.One(), pub, ecdsa.Signature{R: bignat.One(), S: bignat.Zero()}))

	offCurve := curve.Affine(bignat.FromUint64(1), bignat.FromUint64(1))
	assert.False(t, s.Verify(bignat.One(), offCurve, ecdsa.Signature{R: bignat.One(), S: bignat.One()}))
}

func TestGenerateKeyPairAndRoundTrip(t *testing.T) {
	s := f17Signer()
	rng := randsource.Deterministic{Value: big.NewInt(11)}

	kp, err := s.GenerateKeyPair(rng)
	require.NoError(t, err)
	assert.False(t, kp.PublicKey.IsIdentity())

	onCurve, err := s.Curve.OnCurve(kp.PublicKey)
	require.NoError(t, err)
	assert.True(t, onCurve)

	h := ecdsa.ReduceMessage(hashsource.SHA256{}, []byte("hello"), s.Order)
	k := bignat.FromUint64(9)
	sig, err := s.Sign(h, kp.PrivateKey, k)
	require.NoError(t, err)
	assert.True(t, s.Verify(h, kp.PublicKey, sig))
}

func TestVerifyBatch(t *testing.T) {
	s := f17Signer()
	d := bignat.FromUint64(7)
	pub, err := s.DerivePublicKey(d)
	require.NoError(t, err)

	h1 := ecdsa.ReduceMessage(hashsource.SHA256{}, []byte("msg one"), s.Order)
	sig1, err := s.Sign(h1, d, bignat.FromUint64(6))
	require.NoError(t, err)

	h2 := ecdsa.ReduceMessage(hashsource.SHA256{}, []byte("msg two"), s.Order)
	sig2, err := s.Sign(h2, d, bignat.FromUint64(8))
	require.NoError(t, err)

	badSig := ecdsa.Signature{R: sig2.R.Add(bignat.One()).Mod(s.Order), S: sig2.S}

	results, failed := ecdsa.VerifyBatch(s, []ecdsa.VerificationRequest{
		{H: h1, Pub: pub, Sig: sig1},
		{H: h2, Pub: pub, Sig: badSig},
	})

	assert.Equal(t, []bool{true, false}, results)
	assert.Equal(t, []int{1}, failed)
	assert.Error(t, ecdsa.AllVerified(results))
}

func TestReduceMessageInRange(t *testing.T) {
	s := f17Signer()
	h := ecdsa.ReduceMessage(hashsource.SHA256{}, []byte("anything"), s.Order)
	assert.False(t, h.IsZero())
	assert.True(t, h.LessThan(s.Order))
}
