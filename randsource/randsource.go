// Package randsource defines the RNG collaborator contract consumed by
// package ecdsa, plus a crypto/rand-backed production implementation and a
// deterministic implementation for tests.
package randsource

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"

	"github.com/estevao-braga/ecdsacore/bignat"
)

// Source returns a uniform sample in [lo, hi). Implementations must be safe
// for concurrent use if the Signer they back is shared across goroutines.
type Source interface {
	Uniform(lo, hi bignat.BigNat) (bignat.BigNat, error)
}

// CryptoRand is a Source backed by crypto/rand, suitable for production use.
type CryptoRand struct{}

// Uniform returns a cryptographically secure uniform sample in [lo, hi).
func (CryptoRand) Uniform(lo, hi bignat.BigNat) (bignat.BigNat, error) {
	if !lo.LessThan(hi) {
		return bignat.BigNat{}, errors.New("randsource: lo must be less than hi")
	}
	span := hi.Sub(lo)
	n, err := rand.Int(rand.Reader, span.Int())
	if err != nil {
		return bignat.BigNat{}, errors.Wrap(err, "randsource: crypto/rand failed")
	}
	return lo.Add(bignat.New(n)), nil
}

// Deterministic is a Source that replays a fixed scalar regardless of the
// requested range, letting tests drive sign/verify with a known nonce.
type Deterministic struct {
	Value *big.Int
}

// Uniform always returns Value mod (hi - lo), offset by lo, ignoring true
// randomness. It is an error for tests to rely on uniformity from this
// source — it exists only to make a specific scalar reproducible.
func (d Deterministic) Uniform(lo, hi bignat.BigNat) (bignat.BigNat, error) {
	if !lo.LessThan(hi) {
		return bignat.BigNat{}, errors.New("randsource: lo must be less than hi")
	}
	span := hi.Sub(lo)
	v := bignat.New(d.Value).Mod(span)
	return lo.Add(v), nil
}
