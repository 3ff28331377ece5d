// Package gostecc provides GOST-style elliptic-curve signatures over prime
// fields and base-point / key-pair derivation over binary fields GF(2^m).
//
// Signatures follow the GOST R 34.10 equations: r = (k·G).x mod n and
// s = (r·d + k·e) mod n, where e is the message digest reduced mod n.
// Verification recomputes C = (s·e⁻¹)·G + (-r·e⁻¹)·Q and accepts when
// C.x mod n = r. Signatures travel as fixed-width lowercase hex, r then s.
//
// # Quick Start
//
//	import "github.com/mahdiidarabi/gost-ecc/pkg/gostecc"
//
//	signer := gostecc.NewSigner(gostecc.TestParams192())
//
//	priv, pub, err := signer.GenerateKey()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sig, err := signer.SignMessage([]byte("test"), priv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := signer.VerifyMessage([]byte("test"), sig, pub)
//
// # Domain Parameters
//
// Presets cover the 192-bit test domain and secp256k1. Other curves are
// built from p, a, b, n and a compressed base point, or loaded from YAML:
//
//	params, err := gostecc.LoadParams("params.yaml")
//
// # Binary Fields
//
// For curves y² + xy = x³ + Ax² + B over GF(2^m) a base point of order n
// is found by sampling random points, and keys are derived on it:
//
//	gen := gostecc.NewBinaryKeyGenerator(gostecc.SECT163K1())
//	kp, err := gen.GenerateKeyPair() // kp.Q = kp.D·(-kp.BasePoint)
//
// Arithmetic is variable time. Every rejection-sampling loop is bounded and
// fails with ErrRetryExhausted when its cap is hit.
package gostecc
