// Package bignat provides BigNat, a named arbitrary-precision non-negative
// integer used throughout field, curve, and ecdsa so call sites speak in
// domain terms instead of passing bare *big.Int around.
package bignat

import (
	"math/big"

	"github.com/pkg/errors"
)

// BigNat is an arbitrary-precision non-negative integer. The zero value is
// not valid; use New, FromBytes, FromString, or FromUint64.
type BigNat struct {
	v *big.Int
}

// New wraps a *big.Int as a BigNat. Panics if v is negative: a negative
// value is a programmer error, never a runtime condition a caller recovers
// from.
func New(v *big.Int) BigNat {
	if v.Sign() < 0 {
		panic("bignat: negative value")
	}
	return BigNat{v: new(big.Int).Set(v)}
}

// Zero returns the BigNat value 0.
func Zero() BigNat { return BigNat{v: big.NewInt(0)} }

// One returns the BigNat value 1.
func One() BigNat { return BigNat{v: big.NewInt(1)} }

// FromUint64 builds a BigNat from a machine integer.
func FromUint64(v uint64) BigNat {
	return BigNat{v: new(big.Int).SetUint64(v)}
}

// FromBytes interprets b as a big-endian non-negative integer.
func FromBytes(b []byte) BigNat {
	return BigNat{v: new(big.Int).SetBytes(b)}
}

// FromString parses a base-10 decimal string. Returns an error if s is not
// a valid non-negative decimal integer.
func FromString(s string) (BigNat, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigNat{}, errors.Errorf("bignat: invalid decimal string %q", s)
	}
	if v.Sign() < 0 {
		return BigNat{}, errors.Errorf("bignat: negative value %q", s)
	}
	return BigNat{v: v}, nil
}

// Int returns the underlying *big.Int. The returned value is a defensive
// copy; mutating it does not affect b.
func (b BigNat) Int() *big.Int {
	return new(big.Int).Set(b.v)
}

// Bytes returns the big-endian byte serialization of b, with no leading
// zero byte (matches big.Int.Bytes semantics; the zero value serializes to
// an empty slice).
func (b BigNat) Bytes() []byte {
	return b.v.Bytes()
}

// BitLen returns the number of bits required to represent b, the same
// convention as big.Int.BitLen (zero for the value 0).
func (b BigNat) BitLen() int {
	return b.v.BitLen()
}

// Bit returns the value of the i-th bit of b (0 or 1), 0-indexed from the
// least significant bit.
func (b BigNat) Bit(i int) uint {
	return b.v.Bit(i)
}

// Cmp compares b and other, returning -1, 0, or +1 per the usual ordering.
func (b BigNat) Cmp(other BigNat) int {
	return b.v.Cmp(other.v)
}

// Equal reports whether b and other represent the same integer.
func (b BigNat) Equal(other BigNat) bool {
	return b.v.Cmp(other.v) == 0
}

// IsZero reports whether b is the value 0.
func (b BigNat) IsZero() bool {
	return b.v.Sign() == 0
}

// LessThan reports whether b < other.
func (b BigNat) LessThan(other BigNat) bool {
	return b.v.Cmp(other.v) < 0
}

// Add returns b + other (unbounded, not reduced modulo anything).
func (b BigNat) Add(other BigNat) BigNat {
	return BigNat{v: new(big.Int).Add(b.v, other.v)}
}

// Sub returns b - other. Panics if the result would be negative: BigNat is
// non-negative by contract, and FieldArith's Sub never calls this on
// operands that would underflow (it routes through additive inverse
// instead).
func (b BigNat) Sub(other BigNat) BigNat {
	r := new(big.Int).Sub(b.v, other.v)
	if r.Sign() < 0 {
		panic("bignat: subtraction underflow")
	}
	return BigNat{v: r}
}

// Mul returns b * other (unbounded).
func (b BigNat) Mul(other BigNat) BigNat {
	return BigNat{v: new(big.Int).Mul(b.v, other.v)}
}

// Mod returns b mod m.
func (b BigNat) Mod(m BigNat) BigNat {
	return BigNat{v: new(big.Int).Mod(b.v, m.v)}
}

// ModPow returns b^e mod m, delegated to math/big's Exp (square-and-multiply
// for single-word exponents, a windowed variant of it for larger ones).
func (b BigNat) ModPow(e, m BigNat) BigNat {
	return BigNat{v: new(big.Int).Exp(b.v, e.v, m.v)}
}

// String returns the base-10 decimal representation of b.
func (b BigNat) String() string {
	return b.v.String()
}
