package polynomial

import (
	"encoding/binary"
	"io"

	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
)

// Exponent represents a polynomial F(X) whose coefficients belong to a group 𝔾.
type Exponent struct {
	group        curve.Curve
	coefficients []curve.Point
}

// NewPolynomialExponent generates an Exponent polynomial
// F(X) = [a₀ + a₁⋅X + … + aₜ⋅Xᵗ]•G, with coefficients in 𝔾, and degree t.
func NewPolynomialExponent(polynomial *Polynomial) *Exponent {
	p := &Exponent{
		group:        polynomial.group,
		coefficients: make([]curve.Point, len(polynomial.coefficients)),
	}
	for i, c := range polynomial.coefficients {
		p.coefficients[i] = c.ActOnBase()
	}
	return p
}

// Evaluate returns F(x) = [f(x)]•G.
// We use Horner's method: https://en.wikipedia.org/wiki/Horner%27s_method
func (p *Exponent) Evaluate(x curve.Scalar) curve.Point {
	result := p.group.NewPoint()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		// Bₙ₋₁ = [x]Bₙ + Aₙ₋₁
		result = x.Act(result).Add(p.coefficients[i])
	}
	return result
}

// Degree is the highest power of the Exponent.
func (p *Exponent) Degree() int {
	return len(p.coefficients) - 1
}

// Constant returns a copy of the constant coefficient F(0).
func (p *Exponent) Constant() curve.Point {
	return p.group.NewPoint().Set(p.coefficients[0])
}

// Copy returns a deep copy of p.
func (p *Exponent) Copy() *Exponent {
	q := &Exponent{
		group:        p.group,
		coefficients: make([]curve.Point, len(p.coefficients)),
	}
	for i, c := range p.coefficients {
		q.coefficients[i] = p.group.NewPoint().Set(c)
	}
	return q
}

// Equal returns true if p and other represent the same polynomial.
func (p *Exponent) Equal(other *Exponent) bool {
	if len(p.coefficients) != len(other.coefficients) {
		return false
	}
	for i := range p.coefficients {
		if !p.coefficients[i].Equal(other.coefficients[i]) {
			return false
		}
	}
	return true
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (p *Exponent) WriteTo(w io.Writer) (int64, error) {
	// write the number of coefficients
	if err := binary.Write(w, binary.BigEndian, uint32(len(p.coefficients))); err != nil {
		return 0, err
	}
	nAll := int64(4)

	for _, c := range p.coefficients {
		data, err := c.MarshalBinary()
		if err != nil {
			return nAll, err
		}
		n, err := w.Write(data)
		nAll += int64(n)
		if err != nil {
			return nAll, err
		}
	}
	return nAll, nil
}

// Domain implements hash.WriterToWithDomain.
func (p *Exponent) Domain() string {
	return "Exponent"
}
