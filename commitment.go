package frost

import (
	"fmt"

	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
	"github.com/puzzlehq/aleo-frost/pkg/party"
)

// GroupCommitment folds the set and its binding factors into the session's
// ephemeral public nonce,
//
//	R = Σ_{i in B} (D_i + [rho_i]·E_i).
//
// Every party in the set must have a binding factor, a missing one is a
// protocol ordering bug and fails with ErrMissingData. The commitment points
// themselves were already validated when the set was built.
func (s *SigningSet) GroupCommitment(bindingFactors map[party.ID]curve.Scalar) (curve.Point, error) {
	R := s.group.NewPoint()
	for _, id := range s.ids {
		rho, ok := bindingFactors[id]
		if !ok {
			return nil, fmt.Errorf("%w: binding factor for party %s", ErrMissingData, id)
		}
		commitment := s.commitments[id]
		R = R.Add(commitment.Hiding).Add(rho.Act(commitment.Binding))
	}
	return R, nil
}
