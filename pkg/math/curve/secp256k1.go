package curve

import (
	"errors"
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/puzzlehq/aleo-frost/internal/params"
)

// Secp256k1 is the secp256k1 group. The protocol itself has no preference
// for a group; this backend exists alongside Edwards377 to keep every
// package honest about being generic over the curve.
type Secp256k1 struct{}

const secp256k1ScalarBytes = 32

var secp256k1Order = saferith.ModulusFromNat(
	new(saferith.Nat).SetBytes(secp256k1.S256().Params().N.Bytes()),
)

func (Secp256k1) NewPoint() Point {
	return new(secp256k1Point)
}

func (Secp256k1) NewBasePoint() Point {
	out := new(secp256k1Point)
	one := new(secp256k1.ModNScalar)
	one.SetInt(1)
	secp256k1.ScalarBaseMultNonConst(one, &out.value)
	return out
}

func (Secp256k1) NewScalar() Scalar {
	return new(secp256k1Scalar)
}

func (Secp256k1) Name() string {
	return "secp256k1"
}

func (Secp256k1) ScalarBytes() int {
	return secp256k1ScalarBytes
}

func (Secp256k1) SafeScalarBytes() int {
	return params.UniformBytes
}

func (Secp256k1) Order() *saferith.Modulus {
	return secp256k1Order
}

type secp256k1Scalar struct {
	value secp256k1.ModNScalar
}

func secp256k1CastScalar(generic Scalar) *secp256k1Scalar {
	out, ok := generic.(*secp256k1Scalar)
	if !ok {
		panic(fmt.Sprintf("failed to convert to secp256k1Scalar: %v", generic))
	}
	return out
}

func (*secp256k1Scalar) Curve() Curve {
	return Secp256k1{}
}

func (s *secp256k1Scalar) MarshalBinary() ([]byte, error) {
	data := s.value.Bytes()
	return data[:], nil
}

func (s *secp256k1Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != secp256k1ScalarBytes {
		return fmt.Errorf("invalid length for secp256k1 scalar: %d", len(data))
	}
	var exactData [32]byte
	copy(exactData[:], data)
	if s.value.SetBytes(&exactData) != 0 {
		return errors.New("secp256k1Scalar.UnmarshalBinary: scalar was >= group order")
	}
	return nil
}

func (s *secp256k1Scalar) Add(that Scalar) Scalar {
	other := secp256k1CastScalar(that)
	s.value.Add(&other.value)
	return s
}

func (s *secp256k1Scalar) Sub(that Scalar) Scalar {
	other := secp256k1CastScalar(that)
	negated := new(secp256k1.ModNScalar).Set(&other.value)
	negated.Negate()
	s.value.Add(negated)
	return s
}

func (s *secp256k1Scalar) Negate() Scalar {
	s.value.Negate()
	return s
}

func (s *secp256k1Scalar) Mul(that Scalar) Scalar {
	other := secp256k1CastScalar(that)
	s.value.Mul(&other.value)
	return s
}

func (s *secp256k1Scalar) Invert() Scalar {
	s.value.InverseNonConst()
	return s
}

func (s *secp256k1Scalar) Equal(that Scalar) bool {
	other := secp256k1CastScalar(that)
	return s.value.Equals(&other.value)
}

func (s *secp256k1Scalar) IsZero() bool {
	return s.value.IsZero()
}

func (s *secp256k1Scalar) Set(that Scalar) Scalar {
	other := secp256k1CastScalar(that)
	s.value.Set(&other.value)
	return s
}

func (s *secp256k1Scalar) SetNat(x *saferith.Nat) Scalar {
	reduced := new(saferith.Nat).Mod(x, secp256k1Order)
	var data [32]byte
	b := reduced.Bytes()
	copy(data[32-len(b):], b)
	s.value.SetBytes(&data)
	return s
}

func (s *secp256k1Scalar) Act(that Point) Point {
	other := secp256k1CastPoint(that)
	out := new(secp256k1Point)
	secp256k1.ScalarMultNonConst(&s.value, &other.value, &out.value)
	return out
}

func (s *secp256k1Scalar) ActOnBase() Point {
	out := new(secp256k1Point)
	secp256k1.ScalarBaseMultNonConst(&s.value, &out.value)
	return out
}

type secp256k1Point struct {
	value secp256k1.JacobianPoint
}

func secp256k1CastPoint(generic Point) *secp256k1Point {
	out, ok := generic.(*secp256k1Point)
	if !ok {
		panic(fmt.Sprintf("failed to convert to secp256k1Point: %v", generic))
	}
	return out
}

func (*secp256k1Point) Curve() Curve {
	return Secp256k1{}
}

func (p *secp256k1Point) MarshalBinary() ([]byte, error) {
	// This will modify p, but still return an equivalent value.
	p.value.ToAffine()
	if p.value.X.IsZero() && p.value.Y.IsZero() {
		return nil, errors.New("secp256k1Point.MarshalBinary: tried to marshal identity")
	}
	out := make([]byte, 33)
	// Compatible with the usual compressed format.
	format := secp256k1.PubKeyFormatCompressedEven
	if p.value.Y.IsOdd() {
		format = secp256k1.PubKeyFormatCompressedOdd
	}
	out[0] = format
	data := p.value.X.Bytes()
	copy(out[1:], data[:])
	return out, nil
}

func (p *secp256k1Point) UnmarshalBinary(data []byte) error {
	if len(data) != 33 {
		return fmt.Errorf("invalid length for secp256k1 point: %d", len(data))
	}
	format := data[0]
	if format != secp256k1.PubKeyFormatCompressedEven && format != secp256k1.PubKeyFormatCompressedOdd {
		return errors.New("secp256k1Point.UnmarshalBinary: incorrect format")
	}
	var x, y secp256k1.FieldVal
	if overflow := x.SetByteSlice(data[1:]); overflow {
		return errors.New("secp256k1Point.UnmarshalBinary: x coordinate out of range")
	}
	wantOddY := format == secp256k1.PubKeyFormatCompressedOdd
	if !secp256k1.DecompressY(&x, wantOddY, &y) {
		return errors.New("secp256k1Point.UnmarshalBinary: x coordinate not on curve")
	}
	y.Normalize()
	p.value.X.Set(&x)
	p.value.Y.Set(&y)
	p.value.Z.SetInt(1)
	return nil
}

func (p *secp256k1Point) Add(that Point) Point {
	other := secp256k1CastPoint(that)
	out := new(secp256k1Point)
	secp256k1.AddNonConst(&p.value, &other.value, &out.value)
	return out
}

func (p *secp256k1Point) Sub(that Point) Point {
	return p.Add(that.Negate())
}

func (p *secp256k1Point) Negate() Point {
	out := new(secp256k1Point)
	out.value.Set(&p.value)
	out.value.Y.Negate(1)
	out.value.Y.Normalize()
	return out
}

func (p *secp256k1Point) Set(that Point) Point {
	other := secp256k1CastPoint(that)
	p.value.Set(&other.value)
	return p
}

func (p *secp256k1Point) Equal(that Point) bool {
	other := secp256k1CastPoint(that)
	p.value.ToAffine()
	other.value.ToAffine()
	return p.value.X.Equals(&other.value.X) &&
		p.value.Y.Equals(&other.value.Y) &&
		p.value.Z.Equals(&other.value.Z)
}

func (p *secp256k1Point) IsIdentity() bool {
	p.value.ToAffine()
	return p.value.X.IsZero() && p.value.Y.IsZero()
}

func (p *secp256k1Point) XScalar() Scalar {
	out := new(secp256k1Scalar)
	p.value.ToAffine()
	data := p.value.X.Bytes()
	out.value.SetBytes(data)
	return out
}
