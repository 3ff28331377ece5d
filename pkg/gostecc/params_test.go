package gostecc

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainParams_CurveIsCopy(t *testing.T) {
	params := TestParams192()
	before := params.Curve()

	c := params.Curve()
	c.P.SetInt64(7)
	c.A.SetInt64(1)
	c.B.SetInt64(5)

	assert.True(t, params.Curve().Equal(before), "mutating the returned curve changed the shared parameters")

	signer := NewSigner(params)
	priv, pub, err := signer.GenerateKey()
	require.NoError(t, err)
	sig, err := signer.SignMessage([]byte("copy"), priv)
	require.NoError(t, err)
	ok, err := signer.VerifyMessage([]byte("copy"), sig, pub)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDomainParams_FormatScalar(t *testing.T) {
	params := TestParams192()

	assert.Equal(t, strings.Repeat("0", 45)+"abc", params.FormatScalar(big.NewInt(0xabc)))

	top := new(big.Int).Sub(params.N(), big.NewInt(1))
	assert.Equal(t, top.Text(16), params.FormatScalar(top))

	sig := &Signature{R: big.NewInt(1), S: top}
	assert.Equal(t, params.FormatScalar(sig.R)+params.FormatScalar(sig.S), sig.Hex(params.N()))
}
