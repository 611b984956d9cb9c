// Package dealer implements trusted dealer key generation for the threshold
// protocol.
//
// The dealer holds the account private key, splits its signing scalar into
// Shamir shares and hands every participant one share together with the
// account's compute key. The trust model is explicit: whoever runs Deal has
// seen the whole key. Distributed key generation is out of scope.
package dealer

import (
	"fmt"
	"io"

	frost "github.com/puzzlehq/aleo-frost"
	"github.com/puzzlehq/aleo-frost/pkg/account"
	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
	"github.com/puzzlehq/aleo-frost/pkg/math/polynomial"
	"github.com/puzzlehq/aleo-frost/pkg/party"
)

// Output is everything the dealer produces when splitting a key.
//
// Shares are secret, each one goes to exactly one participant. The compute
// key, the polynomial commitments and the verification shares are public.
type Output struct {
	// Shares of the signing scalar, one per participant, for IDs 1 through n.
	Shares []*frost.KeyShare
	// GroupKey is the compute key of the shared account.
	GroupKey *account.ComputeKey
	// Commitments to the dealer polynomial coefficients, [a_j]•G.
	Commitments *polynomial.Exponent
	// VerificationShares maps every participant to Y_i = [f(i)]•G, the public
	// image of its secret share. Used by frost.VerifyPartial.
	VerificationShares map[party.ID]curve.Point
}

// Deal splits the signing scalar of the private key into count shares such
// that any threshold of them can sign.
//
// The dealer polynomial has degree threshold−1 with the signing scalar as
// its constant term, and shares are the evaluations at 1 through count.
// Deal requires 2 ≤ threshold ≤ count.
func Deal(priv *account.PrivateKey, threshold, count int, rand io.Reader) (*Output, error) {
	if threshold < 2 {
		return nil, fmt.Errorf("dealer: threshold must be at least 2, got %d", threshold)
	}
	if count < threshold {
		return nil, fmt.Errorf("dealer: cannot deal %d shares with threshold %d", count, threshold)
	}
	if count > int(party.MAX) {
		return nil, fmt.Errorf("dealer: at most %d shares are supported, got %d", party.MAX, count)
	}

	group := priv.Curve()
	f, err := polynomial.NewPolynomial(group, threshold-1, priv.SkSig(), rand)
	if err != nil {
		return nil, fmt.Errorf("dealer: failed to sample polynomial: %w", err)
	}

	groupKey := priv.ComputeKey()
	commitments := polynomial.NewPolynomialExponent(f)

	shares := make([]*frost.KeyShare, 0, count)
	verificationShares := make(map[party.ID]curve.Point, count)
	for i := 1; i <= count; i++ {
		id := party.ID(i)
		x := id.Scalar(group)
		shares = append(shares, &frost.KeyShare{
			ID:       id,
			Secret:   f.Evaluate(x),
			GroupKey: groupKey,
		})
		verificationShares[id] = commitments.Evaluate(x)
	}

	return &Output{
		Shares:             shares,
		GroupKey:           groupKey,
		Commitments:        commitments,
		VerificationShares: verificationShares,
	}, nil
}

// VerifyShare checks a share against the dealer's polynomial commitments,
//
//	[share.Secret]•G == F(share.ID).
//
// Participants run this on receipt of their share to detect a corrupted or
// misaddressed delivery.
func VerifyShare(share *frost.KeyShare, commitments *polynomial.Exponent) bool {
	if share == nil || share.Secret == nil || commitments == nil {
		return false
	}
	if !share.ID.Valid() {
		return false
	}
	expected := commitments.Evaluate(share.ID.Scalar(share.Secret.Curve()))
	return share.Secret.ActOnBase().Equal(expected)
}

// Reconstruct recombines shares into the signing scalar of the account.
//
// SECURITY: this defeats the threshold property. Once called, whoever ran it
// holds the full signing scalar, exactly what the protocol exists to avoid.
// It must never be reachable from a signing path. It is provided for tests
// and for audited emergency recovery procedures only.
//
// At least threshold shares are required. The result is checked against the
// compute key carried by the shares, so an insufficient or inconsistent
// subset is reported as an error rather than returned as a wrong scalar.
func Reconstruct(group curve.Curve, shares []*frost.KeyShare) (curve.Scalar, error) {
	if len(shares) == 0 {
		return nil, fmt.Errorf("dealer: no shares to reconstruct from")
	}

	ids := make([]party.ID, 0, len(shares))
	for _, share := range shares {
		if err := share.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, share.ID)
	}
	domain := party.NewIDSlice(ids)

	coefficients, err := polynomial.Lagrange(group, domain)
	if err != nil {
		return nil, fmt.Errorf("dealer: %w", err)
	}

	// f(0) = Σ λ_i ⋅ f(i)
	secret := group.NewScalar()
	for _, share := range shares {
		term := group.NewScalar().Set(coefficients[share.ID])
		term.Mul(share.Secret)
		secret.Add(term)
	}

	// with fewer than threshold shares interpolation yields an unrelated
	// scalar; catch that by checking the public image
	if !secret.ActOnBase().Equal(shares[0].GroupKey.PkSig()) {
		return nil, fmt.Errorf("dealer: reconstructed scalar does not match the group key, not enough consistent shares")
	}
	return secret, nil
}
