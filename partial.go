package frost

import (
	"fmt"

	"github.com/puzzlehq/aleo-frost/pkg/account"
	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
	"github.com/puzzlehq/aleo-frost/pkg/math/polynomial"
	"github.com/puzzlehq/aleo-frost/pkg/party"
)

// PartialSignature is one participant's scalar contribution to a session.
// It is not a signature on its own; Aggregate folds the contributions of
// all session members into one. See VerifyPartial for checking a single
// contribution.
type PartialSignature struct {
	ID party.ID
	Z  curve.Scalar
}

// challenge derives the session challenge for the group commitment R. The
// preimage is identical to the single party one of account.Challenge, which
// is why the aggregated signature verifies like any other.
func challenge(R curve.Point, groupKey *account.ComputeKey, message []byte) (curve.Scalar, error) {
	address, err := groupKey.Address()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrimitiveFailure, err)
	}
	c, err := account.Challenge(groupKey.Curve(), R, groupKey, address, message)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrimitiveFailure, err)
	}
	return c, nil
}

// PartialSign computes this participant's contribution to the session,
//
//	z_i = d_i + e_i·rho_i − lambda_i·s_i·c,
//
// where (d_i, e_i) is the nonce, rho_i the binding factor, lambda_i the
// Lagrange coefficient of the participant within the set, s_i the secret
// share and c the session challenge.
//
// The nonce is consumed up front, before any fallible step. A session that
// fails here must restart from preprocessing with a fresh nonce; retrying
// with the same nonce is exactly the reuse this package is built to prevent.
func PartialSign(share *KeyShare, nonce *SigningNonce, set *SigningSet, message []byte) (*PartialSignature, error) {
	if err := share.Validate(); err != nil {
		return nil, err
	}
	if nonce == nil {
		return nil, fmt.Errorf("%w: nonce", ErrMissingData)
	}
	if nonce.id != share.ID {
		return nil, fmt.Errorf("frost: nonce belongs to party %s, not %s", nonce.id, share.ID)
	}
	if set == nil || !set.Contains(share.ID) {
		return nil, fmt.Errorf("%w: no commitment for party %s in the signing set", ErrMissingData, share.ID)
	}

	hiding, binding, err := nonce.consume()
	if err != nil {
		return nil, err
	}

	group := set.group

	bindingFactors, err := set.BindingFactors(message)
	if err != nil {
		return nil, err
	}
	rho := bindingFactors[share.ID]

	R, err := set.GroupCommitment(bindingFactors)
	if err != nil {
		return nil, err
	}

	c, err := challenge(R, share.GroupKey, message)
	if err != nil {
		return nil, err
	}

	lambda, err := polynomial.LagrangeSingle(group, set.ids, share.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateInterpolation, err)
	}

	// z_i = d_i + e_i·rho_i − lambda_i·s_i·c
	z := group.NewScalar().Set(lambda).Mul(share.Secret).Mul(c).Negate()
	z.Add(hiding)
	z.Add(group.NewScalar().Set(binding).Mul(rho))

	return &PartialSignature{ID: share.ID, Z: z}, nil
}

// VerifyPartial checks one partial signature against the signer's published
// commitment and its verification share Y_i = [f(i)]•G,
//
//	[z_i]•G == D_i + [rho_i]·E_i − [lambda_i·c]·Y_i.
//
// Aggregate never calls this. It exists for misbehavior attribution: when an
// aggregated signature fails to verify, checking each partial against the
// verification shares published by the dealer points at the corrupted
// contribution. An invalid partial is reported as false, not as an error.
func VerifyPartial(partial *PartialSignature, verificationShare curve.Point, groupKey *account.ComputeKey, set *SigningSet, message []byte) bool {
	if partial == nil || partial.Z == nil || verificationShare == nil || groupKey == nil || set == nil {
		return false
	}
	if !set.Contains(partial.ID) {
		return false
	}
	group := set.group

	bindingFactors, err := set.BindingFactors(message)
	if err != nil {
		return false
	}
	R, err := set.GroupCommitment(bindingFactors)
	if err != nil {
		return false
	}
	c, err := challenge(R, groupKey, message)
	if err != nil {
		return false
	}
	lambda, err := polynomial.LagrangeSingle(group, set.ids, partial.ID)
	if err != nil {
		return false
	}

	commitment := set.commitments[partial.ID]
	rho := bindingFactors[partial.ID]

	lhs := partial.Z.ActOnBase()
	lc := group.NewScalar().Set(lambda).Mul(c)
	rhs := commitment.Hiding.Add(rho.Act(commitment.Binding)).Sub(lc.Act(verificationShare))
	return lhs.Equal(rhs)
}
