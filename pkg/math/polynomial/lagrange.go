package polynomial

import (
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
	"github.com/puzzlehq/aleo-frost/pkg/party"
)

// Lagrange returns the Lagrange coefficients at 0 for all parties in the
// interpolation domain.
//
// The domain must be valid in the sense of party.IDSlice.Valid, so it may not
// be empty and may not contain duplicate or zero IDs.
func Lagrange(group curve.Curve, interpolationDomain party.IDSlice) (map[party.ID]curve.Scalar, error) {
	return LagrangeFor(group, interpolationDomain, interpolationDomain...)
}

// LagrangeFor returns the Lagrange coefficients at 0 for all parties in the
// given subset. Every ID in the subset must be present in the interpolation
// domain.
func LagrangeFor(group curve.Curve, interpolationDomain party.IDSlice, subset ...party.ID) (map[party.ID]curve.Scalar, error) {
	if !interpolationDomain.Valid() {
		return nil, fmt.Errorf("lagrange: invalid interpolation domain %v", interpolationDomain)
	}

	// numerator = x₀ * … * xₖ
	scalars, numerator := getScalarsAndNumerator(group, interpolationDomain)

	coefficients := make(map[party.ID]curve.Scalar, len(subset))
	for _, j := range subset {
		lJ, err := lagrange(group, scalars, numerator, j)
		if err != nil {
			return nil, err
		}
		coefficients[j] = lJ
	}
	return coefficients, nil
}

// LagrangeSingle returns the Lagrange coefficient at 0 of the party with ID j.
func LagrangeSingle(group curve.Curve, interpolationDomain party.IDSlice, j party.ID) (curve.Scalar, error) {
	coefficients, err := LagrangeFor(group, interpolationDomain, j)
	if err != nil {
		return nil, err
	}
	return coefficients[j], nil
}

// getScalarsAndNumerator returns the scalars of the parties in the
// interpolation domain, as well as the product of all the scalars.
func getScalarsAndNumerator(group curve.Curve, interpolationDomain party.IDSlice) (map[party.ID]curve.Scalar, curve.Scalar) {
	// this is the numerator x₀ ⋅ … ⋅ xₖ
	numerator := group.NewScalar().SetNat(new(saferith.Nat).SetUint64(1))
	scalars := make(map[party.ID]curve.Scalar, len(interpolationDomain))
	for _, id := range interpolationDomain {
		xI := id.Scalar(group)
		scalars[id] = xI
		numerator.Mul(xI)
	}
	return scalars, numerator
}

// lagrange returns the Lagrange coefficient lⱼ(0), for j in the interpolation
// domain. The numerator is provided beforehand for efficiency reasons.
//
// The following formulas are taken from
// https://en.wikipedia.org/wiki/Lagrange_polynomial
//
//	         (x  - x₀) ⋅⋅⋅ (x  - xₖ)
//	lⱼ(x) =  ----------------------- , for k ≠ j
//	         (xⱼ - x₀) ⋅⋅⋅ (xⱼ - xₖ)
//
//	                 x₀ ⋅⋅⋅ xₖ
//	lⱼ(0) =  --------------------------- , for k ≠ j
//	         xⱼ ⋅ (x₀ - xⱼ) ⋅⋅⋅ (xₖ - xⱼ)
func lagrange(group curve.Curve, scalars map[party.ID]curve.Scalar, numerator curve.Scalar, j party.ID) (curve.Scalar, error) {
	xJ, ok := scalars[j]
	if !ok {
		return nil, fmt.Errorf("lagrange: party %s is not in the interpolation domain", j)
	}
	tmp := group.NewScalar()

	// denominator = xⱼ ⋅ (x₀ - xⱼ) ⋅⋅⋅ (xₖ - xⱼ), for k ≠ j
	denominator := group.NewScalar().Set(xJ)
	for i, xI := range scalars {
		if i == j {
			continue
		}
		// tmp = xᵢ - xⱼ
		tmp.Set(xI).Sub(xJ)
		denominator.Mul(tmp)
	}
	if denominator.IsZero() {
		return nil, fmt.Errorf("lagrange: denominator is zero for party %s", j)
	}

	// lⱼ = numerator ⋅ denominator⁻¹
	lJ := denominator.Invert()
	lJ.Mul(numerator)
	return lJ, nil
}
