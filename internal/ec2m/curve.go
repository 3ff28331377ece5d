package ec2m

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/mahdiidarabi/gost-ecc/internal/retry"
	"github.com/mahdiidarabi/gost-ecc/internal/rnd"
)

// Curve is y² + xy = x³ + Ax² + B over Field, with N the order of the
// subgroup base points are drawn from.
type Curve struct {
	Field *Field
	A     Element
	B     Element
	N     *big.Int
}

// NewCurve returns the curve with coefficients a and b over f. b must be
// non-zero and n positive.
func NewCurve(f *Field, a, b, n *big.Int) (*Curve, error) {
	ae, err := f.Element(a)
	if err != nil {
		return nil, fmt.Errorf("ec2m: coefficient A: %w", err)
	}
	be, err := f.Element(b)
	if err != nil {
		return nil, fmt.Errorf("ec2m: coefficient B: %w", err)
	}
	if be.IsZero() {
		return nil, errors.New("ec2m: coefficient B must be non-zero")
	}
	if n == nil || n.Sign() <= 0 {
		return nil, errors.New("ec2m: subgroup order must be positive")
	}
	return &Curve{Field: f, A: ae, B: be, N: new(big.Int).Set(n)}, nil
}

// Point is an affine point. The zero value is the point at infinity.
type Point struct {
	X, Y   Element
	finite bool
}

// NewPoint returns the finite point (x, y).
func NewPoint(x, y Element) Point {
	return Point{X: x, Y: y, finite: true}
}

// Infinity returns the identity element.
func Infinity() Point {
	return Point{}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return !p.finite
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

func (p Point) String() string {
	if p.IsInfinity() {
		return "(infinity)"
	}
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// rhs returns x³ + Ax² + B.
func (c *Curve) rhs(x Element) Element {
	f := c.Field
	x2 := f.Square(x)
	return f.Add(f.Add(f.Mul(x2, x), f.Mul(c.A, x2)), c.B)
}

// IsOnCurve reports whether p satisfies y² + xy = x³ + Ax² + B.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	f := c.Field
	if p.X.int().BitLen() > f.M || p.Y.int().BitLen() > f.M {
		return false
	}
	lhs := f.Add(f.Square(p.Y), f.Mul(p.X, p.Y))
	return lhs.Equal(c.rhs(p.X))
}

// Negate returns -p = (x, x + y).
func (c *Curve) Negate(p Point) Point {
	if p.IsInfinity() {
		return Infinity()
	}
	return NewPoint(p.X, c.Field.Add(p.X, p.Y))
}

// Add returns p + q. Equal inputs are doubled and antipodal inputs give the
// point at infinity.
func (c *Curve) Add(p, q Point) Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	f := c.Field
	if p.X.Equal(q.X) {
		if p.Y.Equal(q.Y) {
			return c.Double(p)
		}
		return Infinity()
	}

	// λ = (y1 + y2) / (x1 + x2)
	dx, err := f.Invert(f.Add(p.X, q.X))
	if err != nil {
		// x1 ≠ x2, so the sum is non-zero.
		panic(err)
	}
	l := f.Mul(f.Add(p.Y, q.Y), dx)

	// x3 = λ² + λ + x1 + x2 + A
	x3 := f.Add(f.Add(f.Square(l), l), f.Add(f.Add(p.X, q.X), c.A))
	// y3 = λ(x1 + x3) + x3 + y1
	y3 := f.Add(f.Add(f.Mul(l, f.Add(p.X, x3)), x3), p.Y)
	return NewPoint(x3, y3)
}

// Double returns 2p. Points with x = 0 have order two.
func (c *Curve) Double(p Point) Point {
	if p.IsInfinity() || p.X.IsZero() {
		return Infinity()
	}

	f := c.Field
	xInv, err := f.Invert(p.X)
	if err != nil {
		panic(err)
	}

	// λ = x + y/x
	l := f.Add(p.X, f.Mul(p.Y, xInv))
	// x3 = λ² + λ + A
	x3 := f.Add(f.Add(f.Square(l), l), c.A)
	// y3 = x² + (λ + 1)·x3
	y3 := f.Add(f.Square(p.X), f.Mul(f.Add(l, f.One()), x3))
	return NewPoint(x3, y3)
}

// ScalarMult returns k·p by least-significant-bit-first double-and-add.
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

// RandomPoint returns a random finite point: pick u, set
// w = u³ + Au² + B and solve z² + uz = w for the y-coordinate. Draws with
// u = 0 or without a solution are repeated, up to attempts times.
func (c *Curve) RandomPoint(r io.Reader, attempts int) (Point, error) {
	f := c.Field
	return retry.Draw(attempts, func(int) (Point, bool, error) {
		u, err := f.Random(r)
		if err != nil {
			return Point{}, false, err
		}
		if u.IsZero() {
			return Point{}, false, nil
		}

		w := c.rhs(u)
		if w.IsZero() {
			return NewPoint(u, f.Zero()), true, nil
		}

		z, err := f.SolveQuadratic(u, w)
		if errors.Is(err, ErrNoSolution) {
			return Point{}, false, nil
		}
		if err != nil {
			return Point{}, false, err
		}
		return NewPoint(u, z), true, nil
	})
}

// ComputeBasePoint draws random points until one satisfies N·P = O.
func (c *Curve) ComputeBasePoint(r io.Reader, attempts int) (Point, error) {
	return retry.Draw(attempts, func(int) (Point, bool, error) {
		p, err := c.RandomPoint(r, attempts)
		if err != nil {
			return Point{}, false, err
		}
		return p, c.ScalarMult(c.N, p).IsInfinity(), nil
	})
}

// KeyPair is a private scalar D with public point Q = D·(-BasePoint).
type KeyPair struct {
	BasePoint Point
	D         *big.Int
	Q         Point
}

// GenerateKeyPair derives a fresh base point and a key pair on it, with D
// drawn uniformly from [1, N-1].
func (c *Curve) GenerateKeyPair(r io.Reader, attempts int) (*KeyPair, error) {
	if c.N.Cmp(big.NewInt(2)) < 0 {
		return nil, errors.New("ec2m: subgroup order too small for a key pair")
	}

	base, err := c.ComputeBasePoint(r, attempts)
	if err != nil {
		return nil, fmt.Errorf("ec2m: compute base point: %w", err)
	}

	d, err := rnd.Between(r, big.NewInt(1), new(big.Int).Sub(c.N, big.NewInt(1)))
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		BasePoint: base,
		D:         d,
		Q:         c.ScalarMult(d, c.Negate(base)),
	}, nil
}
