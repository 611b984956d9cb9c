package frost

import (
	"fmt"

	"github.com/puzzlehq/aleo-frost/pkg/account"
	"github.com/puzzlehq/aleo-frost/pkg/party"
)

// Aggregate folds the partial signatures of a session into the final
// signature,
//
//	z = Σ z_i,    c = H(R.x, pk_sig.x, pr_sig.x, addr.x, message),
//
// carrying the compute key of the shared account. Exactly one partial per
// member of the set is required. The partials are assumed to have been
// computed over this set and message; a partial from another session does
// not fail here, it yields a signature that fails to verify. Use
// VerifyPartial to attribute such a failure to a participant.
//
// The result verifies with account.Signature.Verify against the address of
// the shared account, indistinguishably from a single party signature.
func Aggregate(groupKey *account.ComputeKey, set *SigningSet, message []byte, partials []*PartialSignature) (*account.Signature, error) {
	if groupKey == nil {
		return nil, fmt.Errorf("%w: group compute key", ErrMissingData)
	}
	if set == nil {
		return nil, fmt.Errorf("%w: signing set", ErrMissingData)
	}

	group := set.group

	seen := make(map[party.ID]bool, len(partials))
	z := group.NewScalar()
	for _, partial := range partials {
		if partial == nil || partial.Z == nil {
			return nil, fmt.Errorf("%w: incomplete partial signature", ErrMissingData)
		}
		if !set.Contains(partial.ID) {
			return nil, fmt.Errorf("frost: partial signature from party %s outside the signing set", partial.ID)
		}
		if seen[partial.ID] {
			return nil, fmt.Errorf("%w: partial signature from party %s", ErrDuplicateIndex, partial.ID)
		}
		seen[partial.ID] = true
		z.Add(partial.Z)
	}
	for _, id := range set.ids {
		if !seen[id] {
			return nil, fmt.Errorf("%w: partial signature from party %s", ErrMissingData, id)
		}
	}

	bindingFactors, err := set.BindingFactors(message)
	if err != nil {
		return nil, err
	}
	R, err := set.GroupCommitment(bindingFactors)
	if err != nil {
		return nil, err
	}
	c, err := challenge(R, groupKey, message)
	if err != nil {
		return nil, err
	}

	return &account.Signature{
		Challenge:  c,
		Response:   z,
		ComputeKey: groupKey,
	}, nil
}
