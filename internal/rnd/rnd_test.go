package rnd

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBits_MasksHighBits(t *testing.T) {
	src := bytes.NewReader(bytes.Repeat([]byte{0xff}, 32))

	v, err := Bits(src, 13)
	require.NoError(t, err)
	assert.Equal(t, 13, v.BitLen())
	assert.Equal(t, int64(1<<13-1), v.Int64())
}

func TestBits_Bounds(t *testing.T) {
	for _, bits := range []int{1, 7, 8, 9, 163, 192, 256} {
		for i := 0; i < 50; i++ {
			v, err := Bits(nil, bits)
			require.NoError(t, err)
			require.LessOrEqual(t, v.BitLen(), bits)
			require.GreaterOrEqual(t, v.Sign(), 0)
		}
	}
}

func TestBits_ShortReader(t *testing.T) {
	_, err := Bits(bytes.NewReader([]byte{1}), 64)
	require.Error(t, err)

	_, err = Bits(nil, 0)
	require.Error(t, err)
}

func TestBetween(t *testing.T) {
	lo, hi := big.NewInt(5), big.NewInt(9)
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		v, err := Between(nil, lo, hi)
		require.NoError(t, err)
		require.True(t, v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0, "value %s out of range", v)
		seen[v.Int64()] = true
	}
	assert.Len(t, seen, 5)

	_, err := Between(nil, hi, lo)
	require.Error(t, err)
}
