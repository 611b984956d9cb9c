// Package frost implements the FROST threshold Schnorr signing protocol
// over the account scheme of pkg/account.
//
// A dealer splits the signing scalar sk_sig of an account into n Shamir
// shares such that any t participants can jointly produce a signature
// indistinguishable from one made with the unsplit key, while fewer than t
// learn nothing. Signing runs in two rounds:
//
//  1. Preprocessing. Each participant samples single use nonce pairs and
//     publishes the matching commitment pairs (D, E), see Preprocess.
//  2. Signing. Once the participants for a session are fixed as a
//     SigningSet, each computes its partial signature with PartialSign,
//     and anyone can fold the partials into a final account.Signature
//     with Aggregate.
//
// The final signature verifies with account.Signature.Verify exactly like a
// single party signature. The verifier never learns t, n or which
// participants signed.
//
// A SigningNonce must never be used twice. Signing two different messages
// with the same nonce hands the participant's secret share to anyone who saw
// both partial signatures. The nonce is therefore structurally consumed by
// PartialSign, a second use fails with ErrNonceConsumed.
//
// The functions in this package are pure transforms over their inputs and
// carry no process wide state. Round exchange is the caller's transport
// concern; Session offers an optional per-participant state machine with an
// injectable logger for callers that want the ordering enforced.
package frost

import (
	"fmt"

	"github.com/puzzlehq/aleo-frost/pkg/account"
	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
	"github.com/puzzlehq/aleo-frost/pkg/party"
)

// KeyShare is one participant's share of a split account.
//
// It is issued by the dealer, held for the life of the signing identity and
// never transmitted. Secret is the evaluation f(ID) of the dealer polynomial
// with constant term sk_sig. GroupKey is the compute key of the shared
// account; it is the same for all participants.
type KeyShare struct {
	ID       party.ID
	Secret   curve.Scalar
	GroupKey *account.ComputeKey
}

// Curve returns the group the share was dealt for.
func (k *KeyShare) Curve() curve.Curve {
	return k.GroupKey.Curve()
}

// Validate returns an error if the share cannot take part in signing.
func (k *KeyShare) Validate() error {
	if k == nil || k.Secret == nil || k.GroupKey == nil {
		return fmt.Errorf("%w: incomplete key share", ErrMissingData)
	}
	if !k.ID.Valid() {
		return fmt.Errorf("frost: key share has invalid participant ID %s", k.ID)
	}
	if k.Secret.IsZero() {
		return fmt.Errorf("frost: key share secret is zero")
	}
	return nil
}
