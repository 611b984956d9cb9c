package curve

import (
	"encoding"

	"github.com/cronokirby/saferith"
)

// Curve represents the starting point for working with an elliptic curve
// group. Every protocol operation is generic over this interface, so the
// same signing code runs unchanged on any of the supported groups.
type Curve interface {
	// NewPoint returns a new point initialized to the group's identity.
	NewPoint() Point
	// NewBasePoint returns the fixed generator of the group.
	NewBasePoint() Point
	// NewScalar returns a new scalar set to 0.
	NewScalar() Scalar
	// Name returns the name of this group, used for domain separation.
	Name() string
	// ScalarBytes returns the size of a marshalled scalar.
	ScalarBytes() int
	// SafeScalarBytes returns the number of random bytes reduced to sample
	// a scalar without meaningful bias.
	SafeScalarBytes() int
	// Order returns the number of elements in the group's scalar field.
	Order() *saferith.Modulus
}

// Scalar is an element of the field of integers modulo the group order.
//
// Arithmetic methods mutate the receiver and return it, allowing chained
// expressions like group.NewScalar().Set(x).Mul(y).
type Scalar interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	Curve() Curve
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Negate() Scalar
	Mul(Scalar) Scalar
	// Invert sets the receiver to its multiplicative inverse. Inverting 0
	// leaves the receiver at 0; callers that can encounter 0 must check
	// IsZero first.
	Invert() Scalar
	Equal(Scalar) bool
	IsZero() bool
	Set(Scalar) Scalar
	// SetNat sets the receiver to a number, reduced modulo the group order.
	SetNat(*saferith.Nat) Scalar
	// Act multiplies a point by the receiver.
	Act(Point) Point
	// ActOnBase multiplies the group's generator by the receiver.
	ActOnBase() Point
}

// Point is an element of the elliptic curve group.
type Point interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	Curve() Curve
	Add(Point) Point
	Sub(Point) Point
	Negate() Point
	Set(Point) Point
	Equal(Point) bool
	IsIdentity() bool
	// XScalar returns the canonical x coordinate of the point, reduced
	// modulo the group order. This is the encoding of points inside hash
	// transcripts.
	XScalar() Scalar
}
