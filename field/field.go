// Package field implements FieldArith: modular arithmetic over Z/pZ for a
// fixed odd prime p, on the arbitrary-precision non-negative integers of
// package bignat. Every operation is pure and takes its modulus explicitly;
// there is no hidden state beyond what's passed per call.
package field

import (
	"github.com/pkg/errors"

	"github.com/estevao-braga/ecdsacore/bignat"
)

// ErrPreconditionViolated indicates an operand was not already reduced
// modulo the supplied p (v >= p), violating every FieldArith operation's
// precondition.
var ErrPreconditionViolated = errors.New("field: operand not reduced modulo p")

// ErrNoMultiplicativeInverse indicates an attempt to invert or divide by
// zero, which has no multiplicative inverse in any field.
var ErrNoMultiplicativeInverse = errors.New("field: zero has no multiplicative inverse")

func checkReduced(name string, v, p bignat.BigNat) error {
	if !v.LessThan(p) {
		return errors.Wrapf(ErrPreconditionViolated, "%s: %s >= modulus %s", name, v, p)
	}
	return nil
}

// Add returns (a + b) mod p. Preconditions: a < p, b < p.
func Add(a, b, p bignat.BigNat) (bignat.BigNat, error) {
	if err := checkReduced("add", a, p); err != nil {
		return bignat.BigNat{}, err
	}
	if err := checkReduced("add", b, p); err != nil {
		return bignat.BigNat{}, err
	}
	return a.Add(b).Mod(p), nil
}

// Sub returns (a + invAdd(b, p)) mod p, i.e. a - b mod p, computed via
// additive inverse so no signed arithmetic is needed. Preconditions: a < p,
// b < p.
func Sub(a, b, p bignat.BigNat) (bignat.BigNat, error) {
	if err := checkReduced("sub", a, p); err != nil {
		return bignat.BigNat{}, err
	}
	if err := checkReduced("sub", b, p); err != nil {
		return bignat.BigNat{}, err
	}
	if b.IsZero() {
		return a, nil
	}
	negB, err := InvAdd(b, p)
	if err != nil {
		return bignat.BigNat{}, err
	}
	return a.Add(negB).Mod(p), nil
}

// Mul returns (a * b) mod p. Preconditions: a < p, b < p.
func Mul(a, b, p bignat.BigNat) (bignat.BigNat, error) {
	if err := checkReduced("mul", a, p); err != nil {
		return bignat.BigNat{}, err
	}
	if err := checkReduced("mul", b, p); err != nil {
		return bignat.BigNat{}, err
	}
	return a.Mul(b).Mod(p), nil
}

// InvAdd returns the additive inverse of a modulo p: p - a when a != 0,
// else 0. Property: Add(a, InvAdd(a, p), p) == 0. Precondition: a < p.
func InvAdd(a, p bignat.BigNat) (bignat.BigNat, error) {
	if err := checkReduced("inv_add", a, p); err != nil {
		return bignat.BigNat{}, err
	}
	if a.IsZero() {
		return bignat.Zero(), nil
	}
	return p.Sub(a), nil
}

// InvMul returns the multiplicative inverse of a modulo p, computed as
// a^(p-2) mod p via Fermat's little theorem (square-and-multiply modular
// exponentiation, delegated to bignat.ModPow). Preconditions: a < p, a != 0,
// p prime (not checked — the caller's responsibility). Returns
// ErrNoMultiplicativeInverse if a == 0.
func InvMul(a, p bignat.BigNat) (bignat.BigNat, error) {
	if err := checkReduced("inv_mul", a, p); err != nil {
		return bignat.BigNat{}, err
	}
	if a.IsZero() {
		return bignat.BigNat{}, errors.Wrap(ErrNoMultiplicativeInverse, "inv_mul: a is zero")
	}
	pMinus2 := p.Sub(bignat.FromUint64(2))
	return a.ModPow(pMinus2, p), nil
}

// Div returns (a * inv_mul(b, p)) mod p. Preconditions: a < p, b < p, b != 0.
// Returns ErrNoMultiplicativeInverse if b == 0.
func Div(a, b, p bignat.BigNat) (bignat.BigNat, error) {
	if err := checkReduced("div", a, p); err != nil {
		return bignat.BigNat{}, err
	}
	bInv, err := InvMul(b, p)
	if err != nil {
		return bignat.BigNat{}, errors.Wrap(err, "div")
	}
	return Mul(a, bInv, p)
}
