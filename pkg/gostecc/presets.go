package gostecc

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/mahdiidarabi/gost-ecc/internal/ec2m"
)

// TestParams192 returns the 192-bit test domain: p = 2^192 - 2^64 - 1,
// a = -3 and the published b, G and n.
func TestParams192() *DomainParams {
	return testParams192()
}

var testParams192 = sync.OnceValue(func() *DomainParams {
	return mustParams("test-192",
		"6277101735386680763835789423207666416083908700390324961279",
		"-3",
		"0x64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1",
		"0xffffffffffffffffffffffff99def836146bc9b1b4d22831",
		"03188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012",
	)
})

// Secp256k1Params returns secp256k1 (a = 0, b = 7) taken from the decred
// implementation, with its generator in compressed form.
func Secp256k1Params() *DomainParams {
	return secp256k1Params()
}

var secp256k1Params = sync.OnceValue(func() *DomainParams {
	curve := secp256k1.S256().Params()
	g := secp256k1.PrivKeyFromBytes([]byte{1}).PubKey().SerializeCompressed()

	dp, err := NewDomainParams("secp256k1", curve.P, big.NewInt(0), curve.B, curve.N, g)
	if err != nil {
		panic(fmt.Sprintf("gostecc: secp256k1 preset: %v", err))
	}
	return dp
})

func mustParams(name, p, a, b, n, g string) *DomainParams {
	parse := func(s string) *big.Int {
		v, err := parseInt(s)
		if err != nil {
			panic(fmt.Sprintf("gostecc: %s preset: %v", name, err))
		}
		return v
	}

	packed, err := hex.DecodeString(g)
	if err != nil {
		panic(fmt.Sprintf("gostecc: %s preset: %v", name, err))
	}

	dp, err := NewDomainParams(name, parse(p), parse(a), parse(b), parse(n), packed)
	if err != nil {
		panic(fmt.Sprintf("gostecc: %s preset: %v", name, err))
	}
	return dp
}

// SECT163K1 returns the binary Koblitz curve K-163 over GF(2^163) with
// reduction polynomial z^163 + z^7 + z^6 + z^3 + 1 and A = B = 1. Each call
// returns a fresh curve.
func SECT163K1() *BinaryCurve {
	f, err := ec2m.NewField(163, 3, 6, 7)
	if err != nil {
		panic(fmt.Sprintf("gostecc: sect163k1 preset: %v", err))
	}

	n, _ := new(big.Int).SetString("4000000000000000000020108a2e0cc0d99f8a5ef", 16)
	c, err := ec2m.NewCurve(f, big.NewInt(1), big.NewInt(1), n)
	if err != nil {
		panic(fmt.Sprintf("gostecc: sect163k1 preset: %v", err))
	}
	return c
}
