package gostecc

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/mahdiidarabi/gost-ecc/internal/ecp"
)

// DomainParams is a prime-field curve together with a base point G of prime
// order n. It is immutable once built and safe to share between Signers.
type DomainParams struct {
	name  string
	curve *ecp.Curve
	n     *big.Int
	g     ecp.Point
}

// NewDomainParams builds domain parameters from the field prime p, the curve
// coefficients a and b (a may be negative), the subgroup order n and the
// compressed base point: one parity byte followed by big-endian x.
func NewDomainParams(name string, p, a, b, n *big.Int, compressedG []byte) (*DomainParams, error) {
	if p == nil || a == nil || b == nil || n == nil {
		return nil, makeError(ErrInvalidParams, "domain parameters: p, a, b and n are required")
	}

	curve, err := ecp.NewCurve(p, a, b)
	if err != nil {
		return nil, makeErrorf(ErrInvalidParams, "domain parameters %q: %v", name, err)
	}
	if n.Cmp(big.NewInt(2)) < 0 {
		return nil, makeErrorf(ErrInvalidParams, "domain parameters %q: order must be at least 2", name)
	}

	g, err := curve.Decompress(nil, compressedG)
	if err != nil {
		return nil, makeErrorf(ErrPointNotOnCurve, "domain parameters %q: base point: %v", name, err)
	}
	if !curve.ScalarMult(n, g).IsInfinity() {
		return nil, makeErrorf(ErrInvalidParams, "domain parameters %q: n·G is not the point at infinity", name)
	}

	return &DomainParams{
		name:  name,
		curve: curve,
		n:     new(big.Int).Set(n),
		g:     g,
	}, nil
}

// Name returns the label the parameters were built with.
func (dp *DomainParams) Name() string { return dp.name }

// Curve returns a copy of the underlying curve.
func (dp *DomainParams) Curve() *Curve {
	return &Curve{
		P: new(big.Int).Set(dp.curve.P),
		A: new(big.Int).Set(dp.curve.A),
		B: new(big.Int).Set(dp.curve.B),
	}
}

// N returns a copy of the subgroup order.
func (dp *DomainParams) N() *big.Int { return new(big.Int).Set(dp.n) }

// G returns a copy of the decompressed base point.
func (dp *DomainParams) G() Point { return ecp.NewPoint(dp.g.X, dp.g.Y) }

// HexWidth is the number of hex characters each signature half occupies:
// ceil(bitlen(n) / 4).
func (dp *DomainParams) HexWidth() int {
	return hexWidth(dp.n)
}

func hexWidth(n *big.Int) int {
	return (n.BitLen() + 3) / 4
}

// FormatScalar renders v in the fixed-width hex used for each signature
// half, e.g. for printing private keys.
func (dp *DomainParams) FormatScalar(v *big.Int) string {
	return padHex(v, dp.HexWidth())
}

// PublicKey is a curve point Q = d·G.
type PublicKey struct {
	Point Point
}

// PrivateKey is a scalar d with 0 < d < n.
type PrivateKey struct {
	D *big.Int
}

// ParsePublicKey decompresses a public key and checks it lies on the curve.
func (dp *DomainParams) ParsePublicKey(data []byte) (*PublicKey, error) {
	pt, err := dp.curve.Decompress(nil, data)
	if err != nil {
		return nil, makeErrorf(ErrPointNotOnCurve, "public key: %v", err)
	}
	return &PublicKey{Point: pt}, nil
}

// ParsePublicKeyHex is ParsePublicKey for hex text with an optional 0x prefix.
func (dp *DomainParams) ParsePublicKeyHex(s string) (*PublicKey, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, makeErrorf(ErrPointNotOnCurve, "public key: %v", err)
	}
	return dp.ParsePublicKey(data)
}

// MarshalPublicKey returns the compressed encoding of pub.
func (dp *DomainParams) MarshalPublicKey(pub *PublicKey) ([]byte, error) {
	if pub == nil || !dp.curve.IsOnCurve(pub.Point) {
		return nil, makeError(ErrPointNotOnCurve, "public key is not on the curve")
	}
	out, err := dp.curve.Compress(pub.Point)
	if err != nil {
		return nil, makeErrorf(ErrPointNotOnCurve, "public key: %v", err)
	}
	return out, nil
}

// validPublicKey reports whether pub is a finite point on the curve.
func (dp *DomainParams) validPublicKey(pub *PublicKey) bool {
	return pub != nil && !pub.Point.IsInfinity() && dp.curve.IsOnCurve(pub.Point)
}

// validScalar reports whether 0 < v < n.
func (dp *DomainParams) validScalar(v *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(dp.n) < 0
}
