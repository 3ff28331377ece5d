package gostecc

import (
	"math/big"
	"strings"
)

// Signature is the pair (r, s), both in [1, n-1] when produced by Sign.
type Signature struct {
	R *big.Int // x-coordinate of k·G, mod n
	S *big.Int // (r·d + k·e) mod n
}

// Hex encodes the signature as r then s, each as lowercase hex zero-padded
// to ceil(bitlen(n)/4) characters.
func (sig *Signature) Hex(n *big.Int) string {
	w := hexWidth(n)
	return padHex(sig.R, w) + padHex(sig.S, w)
}

// padHex renders v as lowercase hex, left-padded with zeros to w characters.
func padHex(v *big.Int, w int) string {
	s := v.Text(16)
	if len(s) >= w {
		return s
	}
	return strings.Repeat("0", w-len(s)) + s
}

// ParseSignature decodes the fixed-width hex form produced by Hex. Text of
// the wrong length or with non-hex characters yields ErrSigFormat; range
// checks are left to verification.
func ParseSignature(s string, n *big.Int) (*Signature, error) {
	w := hexWidth(n)
	if len(s) != 2*w {
		return nil, makeErrorf(ErrSigFormat, "malformed signature: got %d hex characters, want %d", len(s), 2*w)
	}
	if i := strings.IndexFunc(s, notHex); i >= 0 {
		return nil, makeErrorf(ErrSigFormat, "malformed signature: invalid character %q at offset %d", s[i], i)
	}

	r, _ := new(big.Int).SetString(s[:w], 16)
	sv, _ := new(big.Int).SetString(s[w:], 16)
	return &Signature{R: r, S: sv}, nil
}

func notHex(c rune) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return false
	}
	return true
}
