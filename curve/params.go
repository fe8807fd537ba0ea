package curve

import "github.com/estevao-braga/ecdsacore/bignat"

// mustBigNat parses a base-10 decimal string into a BigNat,
// panicking on malformed input. Only used for hard-coded package-level
// constants, so a panic here means a bug in this source file, detected at
// init time — never a runtime condition a caller triggers.
func mustBigNat(s string) bignat.BigNat {
	n, err := bignat.FromString(s)
	if err != nil {
		panic("curve: invalid constant: " + err.Error())
	}
	return n
}

// Secp256k1 returns the short-Weierstrass curve y^2 = x^3 + 7 (a = 0, b = 7)
// over the secp256k1 prime field, per the SECG parameters ([SECG] "SEC 2:
// Recommended Elliptic Curve Domain Parameters", section 2.4.1).
func Secp256k1() Curve {
	p := mustBigNat("115792089237316195423570985008687907853269984665640564039457584007908834671663")
	return New(bignat.Zero(), bignat.FromUint64(7), p)
}

// Secp256k1Generator returns the standard secp256k1 base point G.
func Secp256k1Generator() Point {
	gx := mustBigNat("55066263022277343669578718895168534326250603453777594175500187360389116729240")
	gy := mustBigNat("32670510020758816978083085130507043184471273380659243275938904335757337482424")
	return Affine(gx, gy)
}

// Secp256k1Order returns q, the prime order of the secp256k1 generator.
func Secp256k1Order() bignat.BigNat {
	return mustBigNat("115792089237316195423570985008687907852837564279074904382605163141518161494337")
}

// F17Toy returns the curve y^2 = x^3 + 2x + 2 over F_17, a small curve
// whose arithmetic is easy to hand-verify — useful for worked examples and
// unit tests, where secp256k1's 256-bit coordinates would be unwieldy.
func F17Toy() Curve {
	return New(bignat.FromUint64(2), bignat.FromUint64(2), bignat.FromUint64(17))
}

// F17ToyGenerator returns the point (5, 1), a generator of F17Toy.
func F17ToyGenerator() Point {
	return Affine(bignat.FromUint64(5), bignat.FromUint64(1))
}

// F17ToyOrder returns the order (19) of F17ToyGenerator.
func F17ToyOrder() bignat.BigNat {
	return bignat.FromUint64(19)
}
