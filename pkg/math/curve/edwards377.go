package curve

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards"
	"github.com/cronokirby/saferith"

	"github.com/puzzlehq/aleo-frost/internal/params"
)

// Edwards377 is the prime-order subgroup of the twisted Edwards curve
// defined over the scalar field of BLS12-377. This is the group the
// account and address model is native to, and the default group for
// signing.
type Edwards377 struct{}

const edwards377ScalarBytes = 32

var (
	edwards377Params = twistededwards.GetEdwardsCurve()
	edwards377Order  = saferith.ModulusFromNat(
		new(saferith.Nat).SetBytes(edwards377Params.Order.Bytes()),
	)
)

func (Edwards377) NewPoint() Point {
	p := new(edwards377Point)
	p.value.X.SetZero()
	p.value.Y.SetOne()
	return p
}

func (Edwards377) NewBasePoint() Point {
	p := new(edwards377Point)
	p.value.Set(&edwards377Params.Base)
	return p
}

func (Edwards377) NewScalar() Scalar {
	return new(edwards377Scalar)
}

func (Edwards377) Name() string {
	return "edwards-bls12377"
}

func (Edwards377) ScalarBytes() int {
	return edwards377ScalarBytes
}

func (Edwards377) SafeScalarBytes() int {
	return params.UniformBytes
}

func (Edwards377) Order() *saferith.Modulus {
	return edwards377Order
}

type edwards377Scalar struct {
	value saferith.Nat
}

func edwards377CastScalar(generic Scalar) *edwards377Scalar {
	out, ok := generic.(*edwards377Scalar)
	if !ok {
		panic(fmt.Sprintf("failed to convert to edwards377Scalar: %v", generic))
	}
	return out
}

func (*edwards377Scalar) Curve() Curve {
	return Edwards377{}
}

func (s *edwards377Scalar) MarshalBinary() ([]byte, error) {
	data := make([]byte, edwards377ScalarBytes)
	b := s.value.Bytes()
	if len(b) > edwards377ScalarBytes {
		return nil, errors.New("edwards377Scalar.MarshalBinary: scalar out of range")
	}
	copy(data[edwards377ScalarBytes-len(b):], b)
	return data, nil
}

func (s *edwards377Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != edwards377ScalarBytes {
		return fmt.Errorf("invalid length for edwards377 scalar: %d", len(data))
	}
	tmp := new(saferith.Nat).SetBytes(data)
	if _, _, lt := tmp.CmpMod(edwards377Order); lt != 1 {
		return errors.New("edwards377Scalar.UnmarshalBinary: scalar was >= group order")
	}
	s.value.SetNat(tmp)
	return nil
}

func (s *edwards377Scalar) Add(that Scalar) Scalar {
	other := edwards377CastScalar(that)
	s.value.ModAdd(&s.value, &other.value, edwards377Order)
	return s
}

func (s *edwards377Scalar) Sub(that Scalar) Scalar {
	other := edwards377CastScalar(that)
	s.value.ModSub(&s.value, &other.value, edwards377Order)
	return s
}

func (s *edwards377Scalar) Negate() Scalar {
	zero := new(saferith.Nat).SetUint64(0)
	s.value.ModSub(zero, &s.value, edwards377Order)
	return s
}

func (s *edwards377Scalar) Mul(that Scalar) Scalar {
	other := edwards377CastScalar(that)
	s.value.ModMul(&s.value, &other.value, edwards377Order)
	return s
}

func (s *edwards377Scalar) Invert() Scalar {
	if s.IsZero() {
		return s
	}
	s.value.ModInverse(&s.value, edwards377Order)
	return s
}

func (s *edwards377Scalar) Equal(that Scalar) bool {
	other := edwards377CastScalar(that)
	return s.value.Eq(&other.value) == 1
}

func (s *edwards377Scalar) IsZero() bool {
	return s.value.Eq(new(saferith.Nat).SetUint64(0)) == 1
}

func (s *edwards377Scalar) Set(that Scalar) Scalar {
	other := edwards377CastScalar(that)
	s.value.SetNat(&other.value)
	return s
}

func (s *edwards377Scalar) SetNat(x *saferith.Nat) Scalar {
	s.value.Mod(x, edwards377Order)
	return s
}

func (s *edwards377Scalar) Act(that Point) Point {
	other := edwards377CastPoint(that)
	out := new(edwards377Point)
	out.value.ScalarMultiplication(&other.value, s.value.Big())
	return out
}

func (s *edwards377Scalar) ActOnBase() Point {
	out := new(edwards377Point)
	out.value.ScalarMultiplication(&edwards377Params.Base, s.value.Big())
	return out
}

type edwards377Point struct {
	value twistededwards.PointAffine
}

func edwards377CastPoint(generic Point) *edwards377Point {
	out, ok := generic.(*edwards377Point)
	if !ok {
		panic(fmt.Sprintf("failed to convert to edwards377Point: %v", generic))
	}
	return out
}

func (*edwards377Point) Curve() Curve {
	return Edwards377{}
}

func (p *edwards377Point) MarshalBinary() ([]byte, error) {
	data := p.value.Bytes()
	return data[:], nil
}

func (p *edwards377Point) UnmarshalBinary(data []byte) error {
	if len(data) != edwards377ScalarBytes {
		return fmt.Errorf("invalid length for edwards377 point: %d", len(data))
	}
	if err := p.value.Unmarshal(data); err != nil {
		return fmt.Errorf("edwards377Point.UnmarshalBinary: %w", err)
	}
	return nil
}

func (p *edwards377Point) Add(that Point) Point {
	other := edwards377CastPoint(that)
	out := new(edwards377Point)
	out.value.Add(&p.value, &other.value)
	return out
}

func (p *edwards377Point) Sub(that Point) Point {
	other := edwards377CastPoint(that)
	var neg twistededwards.PointAffine
	neg.Neg(&other.value)
	out := new(edwards377Point)
	out.value.Add(&p.value, &neg)
	return out
}

func (p *edwards377Point) Negate() Point {
	out := new(edwards377Point)
	out.value.Neg(&p.value)
	return out
}

func (p *edwards377Point) Set(that Point) Point {
	other := edwards377CastPoint(that)
	p.value.Set(&other.value)
	return p
}

func (p *edwards377Point) Equal(that Point) bool {
	other := edwards377CastPoint(that)
	return p.value.Equal(&other.value)
}

func (p *edwards377Point) IsIdentity() bool {
	return p.value.IsZero()
}

func (p *edwards377Point) XScalar() Scalar {
	x := p.value.X.Bytes()
	return new(edwards377Scalar).SetNat(new(saferith.Nat).SetBytes(x[:]))
}
