package gostecc

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/gost-ecc/internal/retry"
)

func TestBinaryKeyGenerator_GenerateKeyPair(t *testing.T) {
	curve := SECT163K1()
	gen := NewBinaryKeyGenerator(curve)

	kp, err := gen.GenerateKeyPair()
	require.NoError(t, err)

	assert.Same(t, curve, kp.Curve)
	assert.True(t, kp.D.Sign() > 0)
	assert.True(t, kp.D.Cmp(curve.N) < 0)
	require.True(t, curve.IsOnCurve(kp.BasePoint))
	require.True(t, curve.IsOnCurve(kp.Q))
	assert.True(t, curve.ScalarMult(curve.N, kp.BasePoint).IsInfinity())
	assert.True(t, kp.Q.Equal(curve.ScalarMult(kp.D, curve.Negate(kp.BasePoint))))
}

func TestBinaryKeyGenerator_BasePointAndRandomPoint(t *testing.T) {
	curve := SECT163K1()
	gen := NewBinaryKeyGenerator(curve)

	p, err := gen.RandomPoint()
	require.NoError(t, err)
	assert.True(t, curve.IsOnCurve(p))

	g, err := gen.BasePoint()
	require.NoError(t, err)
	assert.True(t, curve.ScalarMult(curve.N, g).IsInfinity())
}

func TestBinaryKeyGenerator_Exhausted(t *testing.T) {
	zeros := bytes.NewReader(make([]byte, 1<<12))
	gen := NewBinaryKeyGenerator(SECT163K1()).WithRand(zeros).WithMaxAttempts(3)

	_, err := gen.RandomPoint()
	require.ErrorIs(t, err, ErrRetryExhausted)
	require.ErrorIs(t, err, retry.ErrExhausted)
}

func TestBinaryKeyGenerator_WrongOrder(t *testing.T) {
	curve := SECT163K1()
	curve.N = big.NewInt(3)

	_, err := NewBinaryKeyGenerator(curve).WithMaxAttempts(4).GenerateKeyPair()
	require.ErrorIs(t, err, ErrRetryExhausted)
}

func TestBinaryKeyGenerator_OrderTooSmall(t *testing.T) {
	curve := SECT163K1()
	curve.N = big.NewInt(1)

	_, err := NewBinaryKeyGenerator(curve).GenerateKeyPair()
	require.ErrorIs(t, err, ErrInvalidParams)
}
