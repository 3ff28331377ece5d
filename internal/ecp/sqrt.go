package ecp

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/mahdiidarabi/gost-ecc/internal/retry"
	"github.com/mahdiidarabi/gost-ecc/internal/rnd"
)

// ErrNotResidue is returned by ModSqrt when its argument has no square root.
var ErrNotResidue = errors.New("ecp: value is not a quadratic residue")

// Legendre returns the Legendre symbol (a/q) for an odd prime q, computed by
// Euler's criterion a^((q-1)/2) mod q: 1 for a non-zero residue, -1 for a
// non-residue and 0 when q divides a.
func Legendre(a, q *big.Int) int {
	e := new(big.Int).Sub(q, one)
	e.Rsh(e, 1)

	l := new(big.Int).Mod(a, q)
	l.Exp(l, e, q)

	switch {
	case l.Sign() == 0:
		return 0
	case l.Cmp(one) == 0:
		return 1
	default:
		// l == q - 1
		return -1
	}
}

// NonResidue draws a random quadratic non-residue modulo the odd prime q.
func NonResidue(r io.Reader, q *big.Int, attempts int) (*big.Int, error) {
	hi := new(big.Int).Sub(q, one)
	return retry.Draw(attempts, func(int) (*big.Int, bool, error) {
		b, err := rnd.Between(r, two, hi)
		if err != nil {
			return nil, false, err
		}
		return b, Legendre(b, q) == -1, nil
	})
}

// ModSqrt returns a square root of a modulo the odd prime q.
//
// Write q-1 = 2^s·t with t odd and pick a non-residue b. Starting from
// c = b^t and r = a^((t+1)/2), each round i = 1..s-1 checks whether
// (r²·a⁻¹)^(2^(s-i-1)) ≡ -1 and if so multiplies r by c; c is squared every
// round. For s = 1 no witness is needed and r = a^((q+1)/4).
func ModSqrt(r io.Reader, a, q *big.Int) (*big.Int, error) {
	a = new(big.Int).Mod(a, q)
	switch Legendre(a, q) {
	case 0:
		return new(big.Int), nil
	case -1:
		return nil, ErrNotResidue
	}

	qMinus1 := new(big.Int).Sub(q, one)
	s := 0
	t := new(big.Int).Set(qMinus1)
	for t.Bit(0) == 0 {
		s++
		t.Rsh(t, 1)
	}

	// r = a^((t+1)/2)
	e := new(big.Int).Add(t, one)
	e.Rsh(e, 1)
	root := new(big.Int).Exp(a, e, q)
	if s == 1 {
		return root, nil
	}

	b, err := NonResidue(r, q, retry.DefaultAttempts)
	if err != nil {
		return nil, fmt.Errorf("ecp: find non-residue: %w", err)
	}

	invA := new(big.Int).ModInverse(a, q)
	c := new(big.Int).Exp(b, t, q)
	d := new(big.Int)
	for i := 1; i < s; i++ {
		exp := new(big.Int).Lsh(one, uint(s-i-1))

		d.Mul(root, root)
		d.Mul(d, invA)
		d.Mod(d, q)
		d.Exp(d, exp, q)
		if d.Cmp(qMinus1) == 0 {
			root.Mul(root, c)
			root.Mod(root, q)
		}
		c.Mul(c, c)
		c.Mod(c, q)
	}
	return root, nil
}
