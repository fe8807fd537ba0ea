// Package ecdsa implements the Elliptic Curve Digital Signature Algorithm
// (ANSI X9.62 / SEC 1) over a chosen curve, generator point A of prime order
// q, and a privately held scalar d. Every call is pure given its RNG/Hash
// collaborators; Signer itself holds no internal state machine.
package ecdsa

import (
	"github.com/pkg/errors"

	"github.com/estevao-braga/ecdsacore/bignat"
	"github.com/estevao-braga/ecdsacore/curve"
	"github.com/estevao-braga/ecdsacore/field"
	"github.com/estevao-braga/ecdsacore/hashsource"
	"github.com/estevao-braga/ecdsacore/randsource"
)

// ErrScalarOutOfRange indicates a scalar argument to Sign is zero or >= q.
var ErrScalarOutOfRange = errors.New("ecdsa: scalar out of range [1, q-1]")

// ErrBadNonce indicates signing with the supplied nonce k yielded r == 0,
// s == 0, or R == Identity. The caller must retry with a fresh k; Signer
// does not own the RNG and so cannot choose a new one unilaterally.
var ErrBadNonce = errors.New("ecdsa: nonce produced a degenerate signature, retry with a fresh k")

// Signature is the ordered pair (r, s) produced by Sign and checked by
// Verify, both in [1, q-1].
type Signature struct {
	R, S bignat.BigNat
}

// KeyPair is a private scalar d in [1, q-1] and the corresponding public
// point B = d*A.
type KeyPair struct {
	PrivateKey bignat.BigNat
	PublicKey  curve.Point
}

// Signer is the immutable record (Curve, A, q): the curve, its generator
// point, and the generator's prime order. Construction does not verify
// A != Identity or q*A == Identity — call SelfCheck to verify those
// invariants explicitly when the caller wants the guarantee.
type Signer struct {
	Curve     curve.Curve
	Generator curve.Point
	Order     bignat.BigNat
}

// New constructs a Signer from its curve, generator point, and the
// generator's prime order.
func New(c curve.Curve, generator curve.Point, order bignat.BigNat) Signer {
	return Signer{Curve: c, Generator: generator, Order: order}
}

// SelfCheck verifies the construction invariants a caller-supplied Signer
// is expected to satisfy: A is on the curve, A != Identity, and
// q*A == Identity.
func (s Signer) SelfCheck() error {
	if s.Generator.IsIdentity() {
		return errors.New("ecdsa: generator must not be the identity point")
	}
	onCurve, err := s.Curve.OnCurve(s.Generator)
	if err != nil {
		return errors.Wrap(err, "ecdsa: self-check")
	}
	if !onCurve {
		return errors.Wrap(curve.ErrPointNotOnCurve, "ecdsa: self-check: generator not on curve")
	}
	qA, err := s.Curve.ScalarMul(s.Generator, s.Order)
	if err != nil {
		return errors.Wrap(err, "ecdsa: self-check")
	}
	if !qA.IsIdentity() {
		return errors.New("ecdsa: self-check: q*A != Identity, q is not the generator's order")
	}
	return nil
}

// GeneratePrivateKey samples d uniformly from [1, q-1] via rng. Split out
// from GenerateKeyPair so a caller restoring d from secure storage can
// derive B without re-sampling.
func (s Signer) GeneratePrivateKey(rng randsource.Source) (bignat.BigNat, error) {
	d, err := rng.Uniform(bignat.One(), s.Order)
	if err != nil {
		return bignat.BigNat{}, errors.Wrap(err, "ecdsa: generate private key")
	}
	return d, nil
}

// DerivePublicKey returns B = d*A for the given private scalar d. Guarantee:
// B != Identity, which follows from d in [1, q-1] and q being A's order.
func (s Signer) DerivePublicKey(d bignat.BigNat) (curve.Point, error) {
	b, err := s.Curve.ScalarMul(s.Generator, d)
	if err != nil {
		return curve.Point{}, errors.Wrap(err, "ecdsa: derive public key")
	}
	return b, nil
}

// GenerateKeyPair samples a fresh private scalar d and derives the
// corresponding public point B = d*A.
func (s Signer) GenerateKeyPair(rng randsource.Source) (KeyPair, error) {
	d, err := s.GeneratePrivateKey(rng)
	if err != nil {
		return KeyPair{}, err
	}
	b, err := s.DerivePublicKey(d)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{PrivateKey: d, PublicKey: b}, nil
}

func checkScalarRange(name string, v, q bignat.BigNat) error {
	if v.IsZero() || !v.LessThan(q) {
		return errors.Wrapf(ErrScalarOutOfRange, "%s", name)
	}
	return nil
}

// Sign computes the signature (r, s) over the already-reduced message
// scalar h, using private key d and per-signature nonce k.
//
// Preconditions: 0 < h < q, 0 < d < q, 0 < k < q; violations return
// ErrScalarOutOfRange. If R = k*A is Identity, or the resulting r or s is
// zero, Sign returns ErrBadNonce — the caller must retry with a fresh k.
func (s Signer) Sign(h, d, k bignat.BigNat) (Signature, error) {
	if err := checkScalarRange("h", h, s.Order); err != nil {
		return Signature{}, err
	}
	if err := checkScalarRange("d", d, s.Order); err != nil {
		return Signature{}, err
	}
	if err := checkScalarRange("k", k, s.Order); err != nil {
		return Signature{}, err
	}

	r, err := s.computeR(k)
	if err != nil {
		return Signature{}, err
	}
	if r.IsZero() {
		return Signature{}, ErrBadNonce
	}

	sVal, err := s.computeS(h, d, k, r)
	if err != nil {
		return Signature{}, err
	}
	if sVal.IsZero() {
		return Signature{}, ErrBadNonce
	}

	return Signature{R: r, S: sVal}, nil
}

func (s Signer) computeR(k bignat.BigNat) (bignat.BigNat, error) {
	rPoint, err := s.Curve.ScalarMul(s.Generator, k)
	if err != nil {
		return bignat.BigNat{}, errors.Wrap(err, "ecdsa: sign")
	}
	if rPoint.IsIdentity() {
		return bignat.BigNat{}, ErrBadNonce
	}
	x, _ := rPoint.XY()
	return x.Mod(s.Order), nil
}

// computeS computes s = ((h + r*d) * k^-1) mod q via FieldArith with
// modulus q — the group order, never the curve's field prime p; conflating
// the two moduli here would silently corrupt every signature.
func (s Signer) computeS(h, d, k, r bignat.BigNat) (bignat.BigNat, error) {
	rd, err := field.Mul(r, d, s.Order)
	if err != nil {
		return bignat.BigNat{}, errors.Wrap(err, "ecdsa: sign")
	}
	sum, err := field.Add(h, rd, s.Order)
	if err != nil {
		return bignat.BigNat{}, errors.Wrap(err, "ecdsa: sign")
	}
	kInv, err := field.InvMul(k, s.Order)
	if err != nil {
		return bignat.BigNat{}, errors.Wrap(err, "ecdsa: sign")
	}
	return field.Mul(sum, kInv, s.Order)
}

// Verify checks signature (r, s) against public key B for reduced message
// scalar h. Verify never returns an error: any precondition failure or
// internal degenerate case — including a point failing OnCurve — collapses
// into a plain false, so an attacker cannot learn why verification failed
// via differential error returns.
func (s Signer) Verify(h bignat.BigNat, b curve.Point, sig Signature) bool {
	if h.IsZero() || !h.LessThan(s.Order) {
		return false
	}
	if sig.R.IsZero() || !sig.R.LessThan(s.Order) {
		return false
	}
	if sig.S.IsZero() || !sig.S.LessThan(s.Order) {
		return false
	}
	if b.IsIdentity() {
		return false
	}
	onCurve, err := s.Curve.OnCurve(b)
	if err != nil || !onCurve {
		return false
	}

	w, err := field.InvMul(sig.S, s.Order)
	if err != nil {
		return false
	}
	u1, err := field.Mul(h, w, s.Order)
	if err != nil {
		return false
	}
	u2, err := field.Mul(sig.R, w, s.Order)
	if err != nil {
		return false
	}

	p1, err := s.Curve.ScalarMul(s.Generator, u1)
	if err != nil {
		return false
	}
	p2, err := s.Curve.ScalarMul(b, u2)
	if err != nil {
		return false
	}
	x, err := s.Curve.Add(p1, p2)
	if err != nil {
		return false
	}
	if x.IsIdentity() {
		return false
	}

	xCoord, _ := x.XY()
	return xCoord.Mod(s.Order).Equal(sig.R)
}

// ReduceMessage applies h to msg and reduces the digest to a scalar h in
// [1, q-1]: h = (H mod (q-1)) + 1, where H is the digest interpreted as a
// big-endian non-negative integer. This is a pragmatic, slightly-biased
// choice (documented as such, not a bug) — an implementation targeting
// interoperability with production ECDSA deployments should instead take
// the leftmost ceil(log2 q) bits of H modulo q.
func ReduceMessage(h hashsource.Hash, msg []byte, q bignat.BigNat) bignat.BigNat {
	digest := h.Digest(msg)
	hBig := bignat.FromBytes(digest)
	qMinus1 := q.Sub(bignat.One())
	return hBig.Mod(qMinus1).Add(bignat.One())
}
