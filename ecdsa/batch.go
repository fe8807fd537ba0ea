package ecdsa

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/estevao-braga/ecdsacore/bignat"
	"github.com/estevao-braga/ecdsacore/curve"
)

// VerificationRequest bundles one (message scalar, public key, signature)
// triple for VerifyBatch.
type VerificationRequest struct {
	H   bignat.BigNat
	Pub curve.Point
	Sig Signature
}

// VerifyBatch verifies each request against s independently and reports
// which requests failed, in terms of their index in reqs. It performs no
// cryptographic batching optimization (no aggregate pairing/Shamir's trick
// and no shared randomization) — this is bookkeeping convenience over a
// slice of ordinary Verify calls, not a distinct cryptographic primitive.
func VerifyBatch(s Signer, reqs []VerificationRequest) (results []bool, failedIndices []int) {
	results = make([]bool, len(reqs))
	for i, req := range reqs {
		results[i] = s.Verify(req.H, req.Pub, req.Sig)
		if !results[i] {
			failedIndices = append(failedIndices, i)
		}
	}
	return results, failedIndices
}

// AllVerified reports whether every result in results is true, erroring out
// with the first failing index for a readable diagnostic.
func AllVerified(results []bool) error {
	if idx := slices.Index(results, false); idx != -1 {
		return errors.Errorf("ecdsa: verification failed at index %d", idx)
	}
	return nil
}
