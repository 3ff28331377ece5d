package gostecc

import (
	"context"
	"io"
	"log/slog"
	"math/big"

	"github.com/mahdiidarabi/gost-ecc/internal/digest"
	"github.com/mahdiidarabi/gost-ecc/internal/logging"
	"github.com/mahdiidarabi/gost-ecc/internal/retry"
	"github.com/mahdiidarabi/gost-ecc/internal/rnd"
)

// Signer generates keys, signs digests and verifies signatures over one set
// of domain parameters.
type Signer struct {
	params *DomainParams
	rand   io.Reader
	log    logging.Logger
	cfg    Config
}

// NewSigner creates a signer with crypto/rand, a discarding logger and the
// default configuration.
func NewSigner(params *DomainParams) *Signer {
	return &Signer{
		params: params,
		rand:   rnd.Reader(nil),
		log:    logging.Discard(),
		cfg:    DefaultConfig(),
	}
}

// WithRand sets the random source for keys and nonces. nil restores
// crypto/rand.
func (s *Signer) WithRand(r io.Reader) *Signer {
	s.rand = rnd.Reader(r)
	return s
}

// WithLogger routes debug output to logger. nil binds to slog.Default().
func (s *Signer) WithLogger(logger *slog.Logger) *Signer {
	s.log = logging.New(logger)
	return s
}

// WithMaxAttempts caps each rejection-sampling loop.
func (s *Signer) WithMaxAttempts(n int) *Signer {
	s.cfg.MaxAttempts = n
	return s
}

// WithConfig replaces the signer configuration.
func (s *Signer) WithConfig(cfg Config) *Signer {
	s.cfg = cfg
	return s
}

// Params returns the domain parameters the signer works over.
func (s *Signer) Params() *DomainParams {
	return s.params
}

func (s *Signer) logger() logging.Logger {
	return s.log.With("domain", s.params.name)
}

// GeneratePrivateKey draws bitSize random bits until the value lies in
// [1, n-1]. bitSize must be between 1 and bitlen(n).
func (s *Signer) GeneratePrivateKey(bitSize int) (*PrivateKey, error) {
	if bitSize < 1 || bitSize > s.params.n.BitLen() {
		return nil, makeErrorf(ErrInvalidKey, "key size %d outside [1, %d]", bitSize, s.params.n.BitLen())
	}

	d, err := retry.Draw(s.cfg.attempts(), func(int) (*big.Int, bool, error) {
		v, err := rnd.Bits(s.rand, bitSize)
		if err != nil {
			return nil, false, err
		}
		return v, s.params.validScalar(v), nil
	})
	if err != nil {
		return nil, exhausted("generate private key", err)
	}

	s.logger().Debug(context.Background(), "generated private key", "bits", bitSize, logging.Redacted("d"))
	return &PrivateKey{D: d}, nil
}

// PublicKey returns Q = d·G.
func (s *Signer) PublicKey(priv *PrivateKey) (*PublicKey, error) {
	if priv == nil || !s.params.validScalar(priv.D) {
		return nil, makeError(ErrInvalidKey, "private key outside [1, n-1]")
	}
	return &PublicKey{Point: s.params.curve.ScalarMult(priv.D, s.params.g)}, nil
}

// GenerateKey returns a full-size private key and its public key.
func (s *Signer) GenerateKey() (*PrivateKey, *PublicKey, error) {
	priv, err := s.GeneratePrivateKey(s.params.n.BitLen())
	if err != nil {
		return nil, nil, err
	}
	pub, err := s.PublicKey(priv)
	if err != nil {
		return nil, nil, err
	}
	return priv, pub, nil
}

// digestScalar maps a digest to e = α mod n, replacing 0 by 1.
func (s *Signer) digestScalar(d []byte) *big.Int {
	e := new(big.Int).SetBytes(d)
	e.Mod(e, s.params.n)
	if e.Sign() == 0 {
		e.SetInt64(1)
	}
	return e
}

// Sign signs the message digest hash. A nonce k is drawn from bitlen(n)
// random bits and redrawn until 0 < k < n and both r and s are non-zero.
func (s *Signer) Sign(hash []byte, priv *PrivateKey) (*Signature, error) {
	if priv == nil || !s.params.validScalar(priv.D) {
		return nil, makeError(ErrInvalidKey, "private key outside [1, n-1]")
	}

	e := s.digestScalar(hash)
	bits := s.params.n.BitLen()

	var tries int
	sig, err := retry.Draw(s.cfg.attempts(), func(attempt int) (*Signature, bool, error) {
		tries = attempt + 1
		k, err := rnd.Bits(s.rand, bits)
		if err != nil {
			return nil, false, err
		}
		if !s.params.validScalar(k) {
			return nil, false, nil
		}
		sig := s.signWithNonce(e, priv.D, k)
		return sig, sig != nil, nil
	})
	if err != nil {
		return nil, exhausted("sign", err)
	}

	s.logger().Debug(context.Background(), "signed digest",
		"attempts", tries,
		logging.Redacted("k"),
		logging.Redacted("d"),
	)
	return sig, nil
}

// signWithNonce computes r = (k·G).x mod n and s = (r·d + k·e) mod n. It
// returns nil when either half is zero.
func (s *Signer) signWithNonce(e, d, k *big.Int) *Signature {
	n := s.params.n

	c := s.params.curve.ScalarMult(k, s.params.g)
	if c.IsInfinity() {
		return nil
	}
	r := new(big.Int).Mod(c.X, n)
	if r.Sign() == 0 {
		return nil
	}

	sv := new(big.Int).Mul(r, d)
	ke := new(big.Int).Mul(k, e)
	sv.Add(sv, ke)
	sv.Mod(sv, n)
	if sv.Sign() == 0 {
		return nil
	}
	return &Signature{R: r, S: sv}
}

// SignHex signs hash and returns the fixed-width hex encoding.
func (s *Signer) SignHex(hash []byte, priv *PrivateKey) (string, error) {
	sig, err := s.Sign(hash, priv)
	if err != nil {
		return "", err
	}
	return sig.Hex(s.params.n), nil
}

// Verify reports whether sig is a valid signature of hash under pub.
// Out-of-range signature halves and invalid public keys verify as false.
func (s *Signer) Verify(hash []byte, sig *Signature, pub *PublicKey) bool {
	n := s.params.n
	if sig == nil || !s.params.validScalar(sig.R) || !s.params.validScalar(sig.S) {
		return false
	}
	if !s.params.validPublicKey(pub) {
		return false
	}

	e := s.digestScalar(hash)
	v := new(big.Int).ModInverse(e, n)
	if v == nil {
		return false
	}

	// z1 = s·v mod n, z2 = (n - r·v mod n) mod n
	z1 := new(big.Int).Mul(sig.S, v)
	z1.Mod(z1, n)
	z2 := new(big.Int).Mul(sig.R, v)
	z2.Mod(z2, n)
	z2.Sub(n, z2)
	z2.Mod(z2, n)

	curve := s.params.curve
	c := curve.Add(curve.ScalarMult(z1, s.params.g), curve.ScalarMult(z2, pub.Point))
	if c.IsInfinity() {
		return false
	}

	x := new(big.Int).Mod(c.X, n)
	return x.Cmp(sig.R) == 0
}

// VerifyHex decodes a fixed-width hex signature and verifies it. Malformed
// text is reported as an ErrSigFormat error.
func (s *Signer) VerifyHex(hash []byte, sigHex string, pub *PublicKey) (bool, error) {
	sig, err := ParseSignature(sigHex, s.params.n)
	if err != nil {
		return false, err
	}
	return s.Verify(hash, sig, pub), nil
}

// Digest hashes msg with the configured hash.
func (s *Signer) Digest(msg []byte) ([]byte, error) {
	return Digest(s.cfg.hash(), msg)
}

// SignMessage hashes msg with the configured hash and signs the digest.
func (s *Signer) SignMessage(msg []byte, priv *PrivateKey) (string, error) {
	d, err := s.Digest(msg)
	if err != nil {
		return "", err
	}
	return s.SignHex(d, priv)
}

// VerifyMessage hashes msg with the configured hash and verifies sigHex.
func (s *Signer) VerifyMessage(msg []byte, sigHex string, pub *PublicKey) (bool, error) {
	d, err := s.Digest(msg)
	if err != nil {
		return false, err
	}
	return s.VerifyHex(d, sigHex, pub)
}

// Digest hashes msg with the named hash: "streebog256" (the default),
// "streebog512", "sha256", "sha512", "sha3-256", "sha3-512", "blake2b-256"
// or "blake2b-512".
func Digest(name string, msg []byte) ([]byte, error) {
	sum, err := digest.Sum(name, msg)
	if err != nil {
		return nil, makeError(ErrUnknownHash, err.Error())
	}
	return sum, nil
}

// HashNames lists the hashes Digest accepts.
func HashNames() []string {
	return digest.Names()
}
