// Package curve implements the elliptic curve group (E(F_p), +) for a short
// Weierstrass curve y^2 = x^3 + ax + b over a prime field. Every coordinate
// computation is delegated to package field; Curve itself holds no state
// beyond the immutable parameters supplied at construction.
package curve

import (
	"github.com/pkg/errors"

	"github.com/estevao-braga/ecdsacore/bignat"
	"github.com/estevao-braga/ecdsacore/field"
)

// ErrPointNotOnCurve indicates a point presented to a Curve operation fails
// the on-curve predicate.
var ErrPointNotOnCurve = errors.New("curve: point not on curve")

// ErrInvalidOperand indicates an underlying field operation's precondition
// was violated, aborting the whole point operation.
var ErrInvalidOperand = errors.New("curve: invalid operand")

// ErrDegenerateCurve indicates 4a^3 + 27b^2 ≡ 0 (mod p), i.e. the curve
// equation describes a singular (non-group) curve.
var ErrDegenerateCurve = errors.New("curve: singular curve parameters")

// Curve is the immutable record (a, b, p) for a short Weierstrass curve
// y^2 = x^3 + ax + b over F_p.
type Curve struct {
	A, B, P bignat.BigNat
}

// New constructs a Curve from its parameters. It does not itself verify
// non-singularity or primality of p — use CheckNonSingular for an explicit,
// opt-in construction-time check.
func New(a, b, p bignat.BigNat) Curve {
	return Curve{A: a, B: b, P: p}
}

// CheckNonSingular verifies 4a^3 + 27b^2 !≡ 0 (mod p). Returns
// ErrDegenerateCurve if the check fails.
func (c Curve) CheckNonSingular() error {
	a3, err := field.Mul(c.A, c.A, c.P)
	if err != nil {
		return errors.Wrap(ErrInvalidOperand, err.Error())
	}
	a3, err = field.Mul(a3, c.A, c.P)
	if err != nil {
		return errors.Wrap(ErrInvalidOperand, err.Error())
	}
	fourA3, err := field.Mul(a3, bignat.FromUint64(4), c.P)
	if err != nil {
		return errors.Wrap(ErrInvalidOperand, err.Error())
	}

	b2, err := field.Mul(c.B, c.B, c.P)
	if err != nil {
		return errors.Wrap(ErrInvalidOperand, err.Error())
	}
	twentySevenB2, err := field.Mul(b2, bignat.FromUint64(27), c.P)
	if err != nil {
		return errors.Wrap(ErrInvalidOperand, err.Error())
	}

	disc, err := field.Add(fourA3, twentySevenB2, c.P)
	if err != nil {
		return errors.Wrap(ErrInvalidOperand, err.Error())
	}
	if disc.IsZero() {
		return ErrDegenerateCurve
	}
	return nil
}

// OnCurve reports whether p satisfies the curve equation. Identity is
// always on the curve. Operands are assumed already reduced modulo P; a
// reduction violation surfaces as ErrInvalidOperand rather than being
// silently tolerated, since OnCurve is relied on as a security boundary by
// Signer.Verify.
func (c Curve) OnCurve(p Point) (bool, error) {
	if p.IsIdentity() {
		return true, nil
	}
	x, y := p.XY()

	y2, err := field.Mul(y, y, c.P)
	if err != nil {
		return false, errors.Wrap(ErrInvalidOperand, err.Error())
	}

	x2, err := field.Mul(x, x, c.P)
	if err != nil {
		return false, errors.Wrap(ErrInvalidOperand, err.Error())
	}
	x3, err := field.Mul(x2, x, c.P)
	if err != nil {
		return false, errors.Wrap(ErrInvalidOperand, err.Error())
	}
	ax, err := field.Mul(c.A, x, c.P)
	if err != nil {
		return false, errors.Wrap(ErrInvalidOperand, err.Error())
	}
	rhs, err := field.Add(x3, ax, c.P)
	if err != nil {
		return false, errors.Wrap(ErrInvalidOperand, err.Error())
	}
	rhs, err = field.Add(rhs, c.B, c.P)
	if err != nil {
		return false, errors.Wrap(ErrInvalidOperand, err.Error())
	}

	return y2.Equal(rhs), nil
}

// Add implements the affine chord-and-tangent group law with all case
// splits explicit. It internally detects the equal-point case and routes to
// Double — callers must not be required to special-case P == Q themselves,
// since scalar multiplication naturally produces P == Q inputs during
// doubling-and-add.
func (c Curve) Add(p, q Point) (Point, error) {
	if p.IsIdentity() {
		return q, nil
	}
	if q.IsIdentity() {
		return p, nil
	}

	x1, y1 := p.XY()
	x2, y2 := q.XY()

	if x1.Equal(x2) {
		ySum, err := field.Add(y1, y2, c.P)
		if err != nil {
			return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
		}
		if ySum.IsZero() {
			return Identity(), nil
		}
		// x1 == x2 and y1 + y2 != 0 (mod p) implies y1 == y2: the same
		// point doubled. Route to Double rather than dividing by a zero
		// x2 - x1.
		return c.Double(p)
	}

	// Chord formula: s = (y2 - y1) / (x2 - x1); x3 = s^2 - x1 - x2;
	// y3 = s*(x1 - x3) - y1.
	yDiff, err := field.Sub(y2, y1, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}
	xDiff, err := field.Sub(x2, x1, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}
	s, err := field.Div(yDiff, xDiff, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}

	s2, err := field.Mul(s, s, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}
	x3, err := field.Sub(s2, x1, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}
	x3, err = field.Sub(x3, x2, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}

	x1MinusX3, err := field.Sub(x1, x3, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}
	y3, err := field.Mul(s, x1MinusX3, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}
	y3, err = field.Sub(y3, y1, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}

	return Affine(x3, y3), nil
}

// Double returns 2*p. Identity doubles to Identity; a point with y == 0
// (order-2 point) doubles to Identity per the tangent line being vertical.
func (c Curve) Double(p Point) (Point, error) {
	if p.IsIdentity() {
		return Identity(), nil
	}
	x, y := p.XY()
	if y.IsZero() {
		return Identity(), nil
	}

	// s = (3x^2 + a) / (2y); x3 = s^2 - 2x; y3 = s*(x - x3) - y.
	x2, err := field.Mul(x, x, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}
	threeX2, err := field.Mul(x2, bignat.FromUint64(3), c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}
	num, err := field.Add(threeX2, c.A, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}

	twoY, err := field.Add(y, y, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}
	s, err := field.Div(num, twoY, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}

	s2, err := field.Mul(s, s, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}
	twoX, err := field.Add(x, x, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}
	x3, err := field.Sub(s2, twoX, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}

	xMinusX3, err := field.Sub(x, x3, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}
	y3, err := field.Mul(s, xMinusX3, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}
	y3, err = field.Sub(y3, y, c.P)
	if err != nil {
		return Point{}, errors.Wrap(ErrInvalidOperand, err.Error())
	}

	return Affine(x3, y3), nil
}

// ScalarMul returns k*p via MSB-first double-and-add over the binary
// expansion of k: R starts at Identity, and for each bit of k from most to
// least significant, R = Double(R), then R = Add(R, p) if the bit is 1.
// k == 0 or p == Identity both yield Identity.
//
// During the add step the accumulator may coincide with p (e.g. when k is
// not below the order of p, so a doubling wraps around to p); Add's
// internal equal-point routing to Double
// handles this, so ScalarMul itself never needs to branch on it.
func (c Curve) ScalarMul(p Point, k bignat.BigNat) (Point, error) {
	if k.IsZero() || p.IsIdentity() {
		return Identity(), nil
	}

	r := Identity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		var err error
		r, err = c.Double(r)
		if err != nil {
			return Point{}, err
		}
		if k.Bit(i) == 1 {
			r, err = c.Add(r, p)
			if err != nil {
				return Point{}, err
			}
		}
	}
	return r, nil
}
