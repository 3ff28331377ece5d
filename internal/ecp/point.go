package ecp

import (
	"fmt"
	"math/big"
)

// Point is an affine curve point. The zero value, with both coordinates nil,
// is the point at infinity.
type Point struct {
	X *big.Int
	Y *big.Int
}

// NewPoint returns the finite point (x, y). It does not check the curve
// equation; see Curve.IsOnCurve.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// Infinity returns the identity element.
func Infinity() Point {
	return Point{}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.X == nil && p.Y == nil
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

func (p Point) String() string {
	if p.IsInfinity() {
		return "(infinity)"
	}
	return fmt.Sprintf("(%s, %s)", p.X.Text(16), p.Y.Text(16))
}

// Negate returns -p = (x, p - y).
func (c *Curve) Negate(p Point) Point {
	if p.IsInfinity() {
		return Infinity()
	}
	y := new(big.Int).Neg(p.Y)
	y.Mod(y, c.P)
	return Point{X: new(big.Int).Set(p.X), Y: y}
}

// Add returns p1 + p2. Equal inputs are doubled and antipodal inputs give the
// point at infinity, so no inversion of zero is ever attempted.
func (c *Curve) Add(p1, p2 Point) Point {
	if p1.IsInfinity() {
		return p2
	}
	if p2.IsInfinity() {
		return p1
	}

	if p1.X.Cmp(p2.X) == 0 {
		if p1.Y.Cmp(p2.Y) == 0 {
			return c.Double(p1)
		}
		// Same x, different y: p2 = -p1.
		return Infinity()
	}

	// slope = (y2 - y1) / (x2 - x1) mod p
	dy := new(big.Int).Sub(p2.Y, p1.Y)
	dy.Mod(dy, c.P)
	dx := new(big.Int).Sub(p2.X, p1.X)
	dx.Mod(dx, c.P)
	dx.ModInverse(dx, c.P)

	m := new(big.Int).Mul(dy, dx)
	m.Mod(m, c.P)

	return c.fromSlope(m, p1, p2.X)
}

// Double returns 2p. Points with y = 0 have order two and double to infinity.
func (c *Curve) Double(p Point) Point {
	if p.IsInfinity() || p.Y.Sign() == 0 {
		return Infinity()
	}

	// slope = (3x² + a) / 2y mod p
	num := new(big.Int).Mul(p.X, p.X)
	num.Mul(num, three)
	num.Add(num, c.A)
	num.Mod(num, c.P)

	den := new(big.Int).Mul(p.Y, two)
	den.Mod(den, c.P)
	den.ModInverse(den, c.P)

	m := new(big.Int).Mul(num, den)
	m.Mod(m, c.P)

	return c.fromSlope(m, p, p.X)
}

// fromSlope finishes addition or doubling of p1 with a point whose
// x-coordinate is x2, given the chord or tangent slope m.
func (c *Curve) fromSlope(m *big.Int, p1 Point, x2 *big.Int) Point {
	// x3 = m² - x1 - x2 mod p
	x3 := new(big.Int).Mul(m, m)
	x3.Sub(x3, p1.X)
	x3.Sub(x3, x2)
	x3.Mod(x3, c.P)

	// y3 = m(x1 - x3) - y1 mod p
	y3 := new(big.Int).Sub(p1.X, x3)
	y3.Mul(y3, m)
	y3.Sub(y3, p1.Y)
	y3.Mod(y3, c.P)

	return Point{X: x3, Y: y3}
}

// ScalarMult returns k·p, scanning k from the least significant bit upward.
// k = 0 gives the point at infinity; a negative k multiplies -p by |k|.
func (c *Curve) ScalarMult(k *big.Int, p Point) Point {
	if k.Sign() == 0 || p.IsInfinity() {
		return Infinity()
	}
	if k.Sign() < 0 {
		return c.ScalarMult(new(big.Int).Neg(k), c.Negate(p))
	}

	acc := Infinity()
	doubler := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			acc = c.Add(acc, doubler)
		}
		if i+1 < k.BitLen() {
			doubler = c.Double(doubler)
		}
	}
	return acc
}
