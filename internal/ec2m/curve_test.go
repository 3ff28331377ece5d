package ec2m

import (
	"bytes"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/gost-ecc/internal/retry"
)

func TestNewCurve_Rejects(t *testing.T) {
	f := toyField(t)

	_, err := NewCurve(f, big.NewInt(1), big.NewInt(0), big.NewInt(5))
	require.Error(t, err, "B = 0 is singular")
	_, err = NewCurve(f, big.NewInt(1), big.NewInt(1), big.NewInt(0))
	require.Error(t, err)
	_, err = NewCurve(f, big.NewInt(1<<7), big.NewInt(1), big.NewInt(5))
	require.Error(t, err)
}

func TestCurve_ToyGroupOrder(t *testing.T) {
	c, points := toyCurve(t)

	// Hasse: |#E - (q + 1)| <= 2√q with q = 128.
	order := c.N.Int64()
	assert.InDelta(t, 129, order, 23)
	assert.Equal(t, int64(0), order%2, "(0, √B) always has order two")

	for _, p := range points {
		require.True(t, c.ScalarMult(c.N, p).IsInfinity(), "N·%s", p)
	}
}

func TestCurve_ToyClosure(t *testing.T) {
	c, points := toyCurve(t)

	for _, p := range points {
		neg := c.Negate(p)
		require.True(t, c.IsOnCurve(neg))
		require.True(t, c.Add(p, neg).IsInfinity())
		require.True(t, c.Add(p, Infinity()).Equal(p))

		for _, q := range points {
			sum := c.Add(p, q)
			require.True(t, c.IsOnCurve(sum), "%s + %s = %s", p, q, sum)
			require.True(t, sum.Equal(c.Add(q, p)))
		}
	}
}

func TestCurve_OrderTwoPoint(t *testing.T) {
	c, _ := sect163k1(t)
	f := c.Field

	// x = 0 forces y² = B, so (0, 1) is on the curve and has order two.
	p := NewPoint(f.Zero(), f.One())
	require.True(t, c.IsOnCurve(p))
	assert.True(t, c.Double(p).IsInfinity())
	assert.True(t, c.Add(p, p).IsInfinity())
	assert.True(t, c.Negate(p).Equal(p))
}

func TestCurve_ScalarMultMatchesRepeatedAddition(t *testing.T) {
	c, points := toyCurve(t)
	p := points[len(points)/2]

	acc := Infinity()
	for k := int64(1); k <= 20; k++ {
		acc = c.Add(acc, p)
		require.True(t, c.ScalarMult(big.NewInt(k), p).Equal(acc), "k=%d", k)
		require.True(t, c.ScalarMult(big.NewInt(-k), p).Equal(c.Negate(acc)), "k=-%d", k)
	}
	assert.True(t, c.ScalarMult(big.NewInt(0), p).IsInfinity())
}

func TestCurve_Sect163k1Generator(t *testing.T) {
	c, g := sect163k1(t)

	require.True(t, c.IsOnCurve(g))
	assert.True(t, c.ScalarMult(c.N, g).IsInfinity())

	nMinus1 := new(big.Int).Sub(c.N, big.NewInt(1))
	assert.True(t, c.ScalarMult(nMinus1, g).Equal(c.Negate(g)))

	k1, err := rand.Int(rand.Reader, c.N)
	require.NoError(t, err)
	k2, err := rand.Int(rand.Reader, c.N)
	require.NoError(t, err)
	sum := new(big.Int).Add(k1, k2)
	assert.True(t, c.ScalarMult(sum, g).Equal(c.Add(c.ScalarMult(k1, g), c.ScalarMult(k2, g))))
}

func TestCurve_RandomPoint(t *testing.T) {
	c, _ := sect163k1(t)
	for i := 0; i < 5; i++ {
		p, err := c.RandomPoint(rand.Reader, 0)
		require.NoError(t, err)
		require.False(t, p.IsInfinity())
		require.True(t, c.IsOnCurve(p), "%s", p)
	}
}

func TestCurve_RandomPointExhausted(t *testing.T) {
	c, _ := sect163k1(t)

	// An all-zero source only ever yields u = 0.
	zeros := bytes.NewReader(make([]byte, 1024))
	_, err := c.RandomPoint(zeros, 10)
	require.ErrorIs(t, err, retry.ErrExhausted)
}

func TestCurve_ComputeBasePoint(t *testing.T) {
	c, _ := sect163k1(t)

	g, err := c.ComputeBasePoint(rand.Reader, 0)
	require.NoError(t, err)
	require.True(t, c.IsOnCurve(g))
	assert.True(t, c.ScalarMult(c.N, g).IsInfinity())
}

func TestCurve_ComputeBasePointWrongOrder(t *testing.T) {
	c, _ := toyCurve(t)

	// 1·P = P is never the identity for a finite P.
	c.N = big.NewInt(1)
	_, err := c.ComputeBasePoint(rand.Reader, 5)
	require.ErrorIs(t, err, retry.ErrExhausted)
}

func TestCurve_GenerateKeyPair(t *testing.T) {
	c, _ := sect163k1(t)

	kp, err := c.GenerateKeyPair(rand.Reader, 0)
	require.NoError(t, err)

	require.True(t, kp.D.Sign() > 0)
	require.True(t, kp.D.Cmp(c.N) < 0)
	require.True(t, c.IsOnCurve(kp.BasePoint))
	require.True(t, c.IsOnCurve(kp.Q))
	assert.True(t, kp.Q.Equal(c.ScalarMult(kp.D, c.Negate(kp.BasePoint))))
	assert.True(t, c.Add(kp.Q, c.ScalarMult(kp.D, kp.BasePoint)).IsInfinity())
	assert.True(t, c.ScalarMult(c.N, kp.Q).IsInfinity())
}

func TestCurve_GenerateKeyPairTinyOrder(t *testing.T) {
	c, _ := toyCurve(t)
	c.N = big.NewInt(1)

	_, err := c.GenerateKeyPair(rand.Reader, 5)
	require.Error(t, err)
}
