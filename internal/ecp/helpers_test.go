package ecp

import (
	"crypto/elliptic"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
)

func hexInt(t testing.TB, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok, "bad hex literal %q", s)
	return v
}

// p192 is the 192-bit test domain: the NIST P-192 curve.
func p192(t testing.TB) (*Curve, Point, *big.Int) {
	t.Helper()
	p, _ := new(big.Int).SetString("6277101735386680763835789423207666416083908700390324961279", 10)
	c, err := NewCurve(p, big.NewInt(-3), hexInt(t, "64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1"))
	require.NoError(t, err)
	g := Point{
		X: hexInt(t, "188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012"),
		Y: hexInt(t, "07192b95ffc8da78631011ed6b24cdd573f977a11e794811"),
	}
	return c, g, hexInt(t, "ffffffffffffffffffffffff99def836146bc9b1b4d22831")
}

// p224 has p ≡ 1 (mod 2^96), which drives the full witness loop in ModSqrt.
func p224(t testing.TB) (*Curve, Point, *big.Int) {
	t.Helper()
	params := elliptic.P224().Params()
	c, err := NewCurve(params.P, big.NewInt(-3), params.B)
	require.NoError(t, err)
	return c, NewPoint(params.Gx, params.Gy), params.N
}

func k256(t testing.TB) (*Curve, Point, *big.Int) {
	t.Helper()
	params := secp256k1.S256().Params()
	c, err := NewCurve(params.P, big.NewInt(0), params.B)
	require.NoError(t, err)
	return c, NewPoint(params.Gx, params.Gy), params.N
}
