package ecp

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	// ErrInfinity is returned when the point at infinity is compressed.
	ErrInfinity = errors.New("ecp: cannot compress the point at infinity")

	// ErrNotOnCurve is returned when a decoded point fails the curve equation.
	ErrNotOnCurve = errors.New("ecp: point is not on the curve")
)

// Compress packs p as one parity byte (0x02 for even y, 0x03 for odd y)
// followed by x, big-endian and left-padded to the field byte length.
func (c *Curve) Compress(p Point) ([]byte, error) {
	if p.IsInfinity() {
		return nil, ErrInfinity
	}

	out := make([]byte, 1+c.ByteLen())
	out[0] = 0x02 | byte(p.Y.Bit(0))
	p.X.FillBytes(out[1:])
	return out, nil
}

// Decompress recovers a point from a parity byte followed by the big-endian
// x-coordinate. Only the low bit of the leading byte is significant. The
// reader supplies the witness for the square root when the field needs one.
func (c *Curve) Decompress(r io.Reader, data []byte) (Point, error) {
	if len(data) < 2 {
		return Point{}, fmt.Errorf("ecp: compressed point too short: %d bytes", len(data))
	}

	parity := uint(data[0] & 1)
	x := new(big.Int).SetBytes(data[1:])
	if x.Cmp(c.P) >= 0 {
		return Point{}, errors.New("ecp: x-coordinate is not a field element")
	}

	// y² = x³ + ax + b
	beta, err := ModSqrt(r, c.Polynomial(x), c.P)
	if err != nil {
		if errors.Is(err, ErrNotResidue) {
			return Point{}, fmt.Errorf("%w: no y for x = %s", ErrNotOnCurve, x.Text(16))
		}
		return Point{}, err
	}

	y := beta
	if beta.Bit(0) != parity {
		y = new(big.Int).Sub(c.P, beta)
		y.Mod(y, c.P)
	}

	p := Point{X: x, Y: y}
	if !c.IsOnCurve(p) {
		return Point{}, ErrNotOnCurve
	}
	return p, nil
}
