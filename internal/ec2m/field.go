// Package ec2m implements arithmetic over the binary field GF(2^m) and on
// the curves y² + xy = x³ + Ax² + B defined over it, together with the
// trace-based quadratic solver used to find random points, base points and
// key pairs.
//
// Field elements are polynomials over GF(2) of degree below m, stored as the
// bits of a big.Int (bit i is the coefficient of z^i).
package ec2m

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/mahdiidarabi/gost-ecc/internal/rnd"
)

var (
	// ErrDivisionByZero is returned when zero is inverted.
	ErrDivisionByZero = errors.New("ec2m: inverse of zero")

	// ErrEvenDegree is returned when the half-trace is requested for even m.
	ErrEvenDegree = errors.New("ec2m: half-trace needs an odd extension degree")

	// ErrNoSolution is returned when z² + uz = w has no solution in the field.
	ErrNoSolution = errors.New("ec2m: quadratic equation has no solution")

	// ErrReducible is returned for a reduction polynomial that factors, and
	// by Invert when an element shares a factor with it.
	ErrReducible = errors.New("ec2m: reduction polynomial is reducible")
)

// Field is GF(2^m) reduced by z^m + z^k3 + z^k2 + z^k1 + 1, or by the
// trinomial z^m + z^k1 + 1 when k2 and k3 are zero.
type Field struct {
	M, K1, K2, K3 int

	poly *big.Int
}

// NewField returns GF(2^m) for the given reduction polynomial exponents.
// Polynomials that are not irreducible are rejected with ErrReducible.
func NewField(m, k1, k2, k3 int) (*Field, error) {
	if m < 2 {
		return nil, fmt.Errorf("ec2m: extension degree %d too small", m)
	}

	trinomial := k2 == 0 && k3 == 0
	switch {
	case trinomial && (k1 <= 0 || k1 >= m):
		return nil, fmt.Errorf("ec2m: trinomial exponent k1=%d outside (0, %d)", k1, m)
	case !trinomial && !(0 < k1 && k1 < k2 && k2 < k3 && k3 < m):
		return nil, fmt.Errorf("ec2m: pentanomial exponents must satisfy 0 < k1 < k2 < k3 < m, got %d, %d, %d", k1, k2, k3)
	}

	poly := new(big.Int).SetBit(new(big.Int), m, 1)
	poly.SetBit(poly, 0, 1)
	poly.SetBit(poly, k1, 1)
	if !trinomial {
		poly.SetBit(poly, k2, 1)
		poly.SetBit(poly, k3, 1)
	}
	if !irreducible(poly) {
		return nil, fmt.Errorf("%w: %s", ErrReducible, poly.Text(2))
	}

	return &Field{M: m, K1: k1, K2: k2, K3: k3, poly: poly}, nil
}

// Element is a field element. The zero value is the zero polynomial.
type Element struct {
	v *big.Int
}

func (e Element) int() *big.Int {
	if e.v == nil {
		return new(big.Int)
	}
	return e.v
}

// Big returns a copy of the element's bit representation.
func (e Element) Big() *big.Int {
	return new(big.Int).Set(e.int())
}

// IsZero reports whether e is the zero polynomial.
func (e Element) IsZero() bool {
	return e.int().Sign() == 0
}

// IsOne reports whether e is the multiplicative identity.
func (e Element) IsOne() bool {
	return e.int().Cmp(big.NewInt(1)) == 0
}

// Equal reports whether e and o are the same element.
func (e Element) Equal(o Element) bool {
	return e.int().Cmp(o.int()) == 0
}

func (e Element) String() string {
	return e.int().Text(16)
}

// Element returns v as a field element; v must fit in m bits.
func (f *Field) Element(v *big.Int) (Element, error) {
	if v.Sign() < 0 || v.BitLen() > f.M {
		return Element{}, fmt.Errorf("ec2m: %s is not an element of GF(2^%d)", v.Text(16), f.M)
	}
	return Element{v: new(big.Int).Set(v)}, nil
}

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	return Element{v: new(big.Int)}
}

// One returns the multiplicative identity.
func (f *Field) One() Element {
	return Element{v: big.NewInt(1)}
}

// Random returns a uniformly random field element.
func (f *Field) Random(r io.Reader) (Element, error) {
	v, err := rnd.Bits(r, f.M)
	if err != nil {
		return Element{}, err
	}
	return Element{v: v}, nil
}

// Add returns a + b, which is xor of the coefficients.
func (f *Field) Add(a, b Element) Element {
	return Element{v: new(big.Int).Xor(a.int(), b.int())}
}

// Mul returns a·b reduced by the field polynomial.
func (f *Field) Mul(a, b Element) Element {
	return Element{v: f.reduce(polyMul(a.int(), b.int()))}
}

// Square returns a².
func (f *Field) Square(a Element) Element {
	return f.Mul(a, a)
}

// Invert returns a⁻¹ using the polynomial extended Euclidean algorithm.
func (f *Field) Invert(a Element) (Element, error) {
	if a.IsZero() {
		return Element{}, ErrDivisionByZero
	}

	// Invariants: a·g1 ≡ u and a·g2 ≡ v (mod poly).
	u := new(big.Int).Set(a.int())
	v := new(big.Int).Set(f.poly)
	g1 := big.NewInt(1)
	g2 := new(big.Int)
	tmp := new(big.Int)

	for u.Cmp(big.NewInt(1)) != 0 {
		if u.Sign() == 0 {
			// gcd(a, poly) ≠ 1
			return Element{}, ErrReducible
		}
		j := u.BitLen() - v.BitLen()
		if j < 0 {
			u, v = v, u
			g1, g2 = g2, g1
			j = -j
		}
		u.Xor(u, tmp.Lsh(v, uint(j)))
		g1.Xor(g1, tmp.Lsh(g2, uint(j)))
	}
	return Element{v: f.reduce(g1)}, nil
}

// reduce folds c modulo the field polynomial in place and returns it.
func (f *Field) reduce(c *big.Int) *big.Int {
	return polyMod(c, f.poly)
}

// Trace returns Tr(x) = x + x² + x⁴ + ... + x^(2^(m-1)), which is always 0 or 1.
func (f *Field) Trace(x Element) Element {
	t := x
	for i := 1; i < f.M; i++ {
		t = f.Add(f.Square(t), x)
	}
	return t
}

// HalfTrace returns H(x) = Σ x^(2^(2i)) for i = 0..(m-1)/2. For odd m it
// satisfies H(x)² + H(x) = x + Tr(x).
func (f *Field) HalfTrace(x Element) (Element, error) {
	if f.M%2 == 0 {
		return Element{}, ErrEvenDegree
	}

	t := x
	for i := 1; i <= (f.M-1)/2; i++ {
		t = f.Add(f.Square(f.Square(t)), x)
	}
	return t, nil
}

// SolveQuadratic returns a z with z² + uz = w. u must be non-zero. A solution
// exists exactly when Tr(w·u⁻²) = 0; the other solution is z + u.
func (f *Field) SolveQuadratic(u, w Element) (Element, error) {
	uInv, err := f.Invert(u)
	if err != nil {
		return Element{}, err
	}

	// v = w·u⁻²
	v := f.Mul(w, f.Square(uInv))
	if !f.Trace(v).IsZero() {
		return Element{}, ErrNoSolution
	}

	t, err := f.HalfTrace(v)
	if err != nil {
		return Element{}, err
	}
	return f.Mul(t, u), nil
}
