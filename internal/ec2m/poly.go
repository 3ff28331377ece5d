package ec2m

import "math/big"

// Polynomials over GF(2) are big.Ints with bit i the coefficient of z^i.

// polyMod reduces c modulo f in place and returns it.
func polyMod(c, f *big.Int) *big.Int {
	d := f.BitLen() - 1
	tmp := new(big.Int)
	for i := c.BitLen() - 1; i >= d; i-- {
		if c.Bit(i) == 1 {
			c.Xor(c, tmp.Lsh(f, uint(i-d)))
		}
	}
	return c
}

// polyMul returns the carry-less product a·b.
func polyMul(a, b *big.Int) *big.Int {
	acc := new(big.Int)
	tmp := new(big.Int)
	for i := 0; i < b.BitLen(); i++ {
		if b.Bit(i) == 1 {
			acc.Xor(acc, tmp.Lsh(a, uint(i)))
		}
	}
	return acc
}

func polyGCD(a, b *big.Int) *big.Int {
	a, b = new(big.Int).Set(a), new(big.Int).Set(b)
	for b.Sign() != 0 {
		a, b = b, polyMod(a, b)
	}
	return a
}

// irreducible runs Rabin's test on f of degree m: f is irreducible iff
// z^(2^m) ≡ z (mod f) and gcd(z^(2^(m/q)) - z, f) = 1 for every prime q | m.
func irreducible(f *big.Int) bool {
	m := f.BitLen() - 1
	if m < 1 {
		return false
	}

	z := big.NewInt(2)
	powers := make([]*big.Int, m+1) // powers[i] = z^(2^i) mod f
	x := polyMod(new(big.Int).Set(z), f)
	for i := 1; i <= m; i++ {
		x = polyMod(polyMul(x, x), f)
		powers[i] = x
	}
	if powers[m].Cmp(polyMod(new(big.Int).Set(z), f)) != 0 {
		return false
	}

	one := big.NewInt(1)
	for _, q := range primeFactors(m) {
		d := new(big.Int).Xor(powers[m/q], z)
		if polyGCD(f, d).Cmp(one) != 0 {
			return false
		}
	}
	return true
}

func primeFactors(m int) []int {
	var out []int
	for q := 2; q*q <= m; q++ {
		if m%q == 0 {
			out = append(out, q)
			for m%q == 0 {
				m /= q
			}
		}
	}
	if m > 1 {
		out = append(out, m)
	}
	return out
}
