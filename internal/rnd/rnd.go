// Package rnd draws integers from a cryptographic random source.
package rnd

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

var one = big.NewInt(1)

// Reader returns r, or crypto/rand.Reader when r is nil.
func Reader(r io.Reader) io.Reader {
	if r == nil {
		return rand.Reader
	}
	return r
}

// Bits returns a uniformly random non-negative integer of at most bits bits.
func Bits(r io.Reader, bits int) (*big.Int, error) {
	if bits <= 0 {
		return nil, errors.New("rnd: bit count must be positive")
	}

	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(Reader(r), buf); err != nil {
		return nil, fmt.Errorf("rnd: read random bytes: %w", err)
	}

	// Clear the excess high bits of the leading byte.
	if excess := len(buf)*8 - bits; excess > 0 {
		buf[0] &= byte(0xff >> excess)
	}
	return new(big.Int).SetBytes(buf), nil
}

// Int returns a uniformly random integer in [0, max).
func Int(r io.Reader, max *big.Int) (*big.Int, error) {
	v, err := rand.Int(Reader(r), max)
	if err != nil {
		return nil, fmt.Errorf("rnd: draw integer: %w", err)
	}
	return v, nil
}

// Between returns a uniformly random integer in [lo, hi].
func Between(r io.Reader, lo, hi *big.Int) (*big.Int, error) {
	if hi.Cmp(lo) < 0 {
		return nil, errors.New("rnd: empty range")
	}
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, one)

	v, err := Int(r, span)
	if err != nil {
		return nil, err
	}
	return v.Add(v, lo), nil
}
