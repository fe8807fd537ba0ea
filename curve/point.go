package curve

import (
	"fmt"

	"github.com/estevao-braga/ecdsacore/bignat"
)

// Point is a tagged variant over the two cases a short-Weierstrass curve
// point can take: the identity (point at infinity), or an affine (x, y)
// pair. There is no null-ish coordinate sentinel for the identity case —
// callers must switch on IsIdentity rather than checking for a magic (0, 0).
type Point struct {
	identity bool
	x, y     bignat.BigNat
}

// Identity returns the group identity element (point at infinity).
func Identity() Point {
	return Point{identity: true}
}

// Affine returns the affine point (x, y).
func Affine(x, y bignat.BigNat) Point {
	return Point{x: x, y: y}
}

// IsIdentity reports whether p is the identity element.
func (p Point) IsIdentity() bool {
	return p.identity
}

// XY returns the affine coordinates of p. Panics if p is the identity —
// callers must check IsIdentity first, since Identity carries no
// coordinates of its own.
func (p Point) XY() (x, y bignat.BigNat) {
	if p.identity {
		panic("curve: XY called on identity point")
	}
	return p.x, p.y
}

// Equal reports whether two points are the same. Two Affine points are
// equal iff both coordinates match; Identity equals only Identity.
func (p Point) Equal(q Point) bool {
	if p.identity || q.identity {
		return p.identity == q.identity
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// String renders p for diagnostics and test failure messages.
func (p Point) String() string {
	if p.identity {
		return "Identity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
