package gostecc

import (
	"github.com/mahdiidarabi/gost-ecc/internal/ec2m"
	"github.com/mahdiidarabi/gost-ecc/internal/ecp"
)

// Prime-field curve types.
type (
	Curve = ecp.Curve
	Point = ecp.Point
)

// Binary-field curve types.
type (
	BinaryField   = ec2m.Field
	BinaryElement = ec2m.Element
	BinaryCurve   = ec2m.Curve
	BinaryPoint   = ec2m.Point
)

// Infinity returns the point at infinity of a prime-field curve.
func Infinity() Point {
	return ecp.Infinity()
}
