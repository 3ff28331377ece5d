package ec2m

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func hexInt(t testing.TB, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok, "bad hex literal %q", s)
	return v
}

func elem(t testing.TB, f *Field, v int64) Element {
	t.Helper()
	e, err := f.Element(big.NewInt(v))
	require.NoError(t, err)
	return e
}

// toyField is GF(2^7) reduced by the primitive trinomial z^7 + z + 1, small
// enough to enumerate.
func toyField(t testing.TB) *Field {
	t.Helper()
	f, err := NewField(7, 1, 0, 0)
	require.NoError(t, err)
	return f
}

// toyCurve is y² + xy = x³ + x² + 1 over toyField with N set to the full
// group order, so every point is a valid base point.
func toyCurve(t testing.TB) (*Curve, []Point) {
	t.Helper()
	f := toyField(t)
	c, err := NewCurve(f, big.NewInt(1), big.NewInt(1), big.NewInt(1))
	require.NoError(t, err)

	points := enumerate(t, c)
	c.N = big.NewInt(int64(len(points) + 1))
	return c, points
}

// enumerate lists every finite point by brute force over all (x, y).
func enumerate(t testing.TB, c *Curve) []Point {
	t.Helper()
	size := int64(1) << c.Field.M
	var points []Point
	for x := int64(0); x < size; x++ {
		for y := int64(0); y < size; y++ {
			p := NewPoint(elem(t, c.Field, x), elem(t, c.Field, y))
			if c.IsOnCurve(p) {
				points = append(points, p)
			}
		}
	}
	return points
}

// sect163k1 is the Koblitz curve K-163: z^163 + z^7 + z^6 + z^3 + 1,
// A = B = 1, cofactor 2.
func sect163k1(t testing.TB) (*Curve, Point) {
	t.Helper()
	f, err := NewField(163, 3, 6, 7)
	require.NoError(t, err)

	n := hexInt(t, "4000000000000000000020108a2e0cc0d99f8a5ef")
	c, err := NewCurve(f, big.NewInt(1), big.NewInt(1), n)
	require.NoError(t, err)

	gx, err := f.Element(hexInt(t, "2fe13c0537bbc11acaa07d793de4e6d5e5c94eee8"))
	require.NoError(t, err)
	gy, err := f.Element(hexInt(t, "289070fb05d38ff58321f2e800536d538ccdaa3d9"))
	require.NoError(t, err)
	return c, NewPoint(gx, gy)
}
