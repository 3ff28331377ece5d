// Package ecp implements affine point arithmetic on short Weierstrass curves
// y² = x³ + ax + b over a prime field, together with the modular square root
// and the compressed point codec built on it.
//
// Arithmetic is variable time and intended for protocol logic, not for
// handling long-lived secrets on shared hardware.
package ecp

import (
	"errors"
	"math/big"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Curve holds the parameters of y² = x³ + ax + b (mod P). A and B are kept
// reduced into [0, P).
type Curve struct {
	P *big.Int
	A *big.Int
	B *big.Int
}

// NewCurve returns the curve y² = x³ + ax + b over Z_p. Negative coefficients
// are normalised mod p.
func NewCurve(p, a, b *big.Int) (*Curve, error) {
	if p == nil || a == nil || b == nil {
		return nil, errors.New("ecp: nil curve parameter")
	}
	if p.Cmp(three) <= 0 || p.Bit(0) == 0 {
		return nil, errors.New("ecp: field characteristic must be an odd prime greater than 3")
	}

	c := &Curve{
		P: new(big.Int).Set(p),
		A: new(big.Int).Mod(a, p),
		B: new(big.Int).Mod(b, p),
	}

	// 4a³ + 27b² ≠ 0 (mod p)
	disc := new(big.Int).Exp(c.A, three, p)
	disc.Mul(disc, big.NewInt(4))
	b2 := new(big.Int).Mul(c.B, c.B)
	b2.Mul(b2, big.NewInt(27))
	disc.Add(disc, b2)
	disc.Mod(disc, p)
	if disc.Sign() == 0 {
		return nil, errors.New("ecp: singular curve")
	}

	return c, nil
}

// ByteLen is the length in bytes of a field element.
func (c *Curve) ByteLen() int {
	return (c.P.BitLen() + 7) / 8
}

// Polynomial returns x³ + ax + b (mod p).
func (c *Curve) Polynomial(x *big.Int) *big.Int {
	t := new(big.Int).Mul(x, x)
	t.Add(t, c.A) // x² + a
	t.Mul(t, x)   // x³ + ax
	t.Add(t, c.B) // x³ + ax + b
	return t.Mod(t, c.P)
}

// IsOnCurve reports whether p satisfies the curve equation. The point at
// infinity is on every curve.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	if !c.inField(p.X) || !c.inField(p.Y) {
		return false
	}

	y2 := new(big.Int).Mul(p.Y, p.Y)
	y2.Mod(y2, c.P)

	return c.Polynomial(p.X).Cmp(y2) == 0
}

func (c *Curve) inField(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(c.P) < 0
}

// Equal reports whether both curves describe the same equation.
func (c *Curve) Equal(o *Curve) bool {
	return c.P.Cmp(o.P) == 0 && c.A.Cmp(o.A) == 0 && c.B.Cmp(o.B) == 0
}
