package gostecc

import (
	"context"
	"io"
	"log/slog"
	"math/big"

	"github.com/mahdiidarabi/gost-ecc/internal/logging"
	"github.com/mahdiidarabi/gost-ecc/internal/rnd"
)

// BinaryKeyPair is a key pair over a binary-field curve: a derived base point
// P of order N, a private scalar D in [1, N-1] and Q = D·(-P).
type BinaryKeyPair struct {
	Curve     *BinaryCurve
	BasePoint BinaryPoint
	D         *big.Int
	Q         BinaryPoint
}

// BinaryKeyGenerator derives base points and key pairs on a binary-field
// curve.
type BinaryKeyGenerator struct {
	curve *BinaryCurve
	rand  io.Reader
	log   logging.Logger
	cfg   Config
}

// NewBinaryKeyGenerator creates a generator over curve with crypto/rand and
// the default attempt cap.
func NewBinaryKeyGenerator(curve *BinaryCurve) *BinaryKeyGenerator {
	return &BinaryKeyGenerator{
		curve: curve,
		rand:  rnd.Reader(nil),
		log:   logging.Discard(),
		cfg:   DefaultConfig(),
	}
}

// WithRand sets the random source.
func (g *BinaryKeyGenerator) WithRand(r io.Reader) *BinaryKeyGenerator {
	g.rand = rnd.Reader(r)
	return g
}

// WithLogger routes debug output to logger.
func (g *BinaryKeyGenerator) WithLogger(logger *slog.Logger) *BinaryKeyGenerator {
	g.log = logging.New(logger)
	return g
}

// WithMaxAttempts caps the random-point and base-point loops.
func (g *BinaryKeyGenerator) WithMaxAttempts(n int) *BinaryKeyGenerator {
	g.cfg.MaxAttempts = n
	return g
}

// RandomPoint returns a random finite point on the curve.
func (g *BinaryKeyGenerator) RandomPoint() (BinaryPoint, error) {
	p, err := g.curve.RandomPoint(g.rand, g.cfg.attempts())
	if err != nil {
		return BinaryPoint{}, exhausted("random point", err)
	}
	return p, nil
}

// BasePoint returns a random point P with N·P at infinity.
func (g *BinaryKeyGenerator) BasePoint() (BinaryPoint, error) {
	p, err := g.curve.ComputeBasePoint(g.rand, g.cfg.attempts())
	if err != nil {
		return BinaryPoint{}, exhausted("compute base point", err)
	}
	g.log.Debug(context.Background(), "derived base point", "m", g.curve.Field.M)
	return p, nil
}

// GenerateKeyPair derives a fresh base point and a key pair on it.
func (g *BinaryKeyGenerator) GenerateKeyPair() (*BinaryKeyPair, error) {
	if g.curve.N.Cmp(big.NewInt(2)) < 0 {
		return nil, makeErrorf(ErrInvalidParams, "binary curve order %s leaves no private scalar", g.curve.N)
	}

	kp, err := g.curve.GenerateKeyPair(g.rand, g.cfg.attempts())
	if err != nil {
		return nil, exhausted("generate binary key pair", err)
	}

	g.log.Debug(context.Background(), "generated binary key pair",
		"m", g.curve.Field.M,
		logging.Redacted("d"),
	)
	return &BinaryKeyPair{
		Curve:     g.curve,
		BasePoint: kp.BasePoint,
		D:         kp.D,
		Q:         kp.Q,
	}, nil
}
