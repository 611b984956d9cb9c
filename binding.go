package frost

import (
	"fmt"

	"github.com/puzzlehq/aleo-frost/pkg/hash"
	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
	"github.com/puzzlehq/aleo-frost/pkg/math/sample"
	"github.com/puzzlehq/aleo-frost/pkg/party"
)

// The two domain tags below keep the binding hash disjoint from the
// challenge hash of pkg/account. Participants and verifiers must agree on
// them byte for byte, a mismatch makes signatures silently fail to verify.
const (
	messageHashTag   = "Aleo-FROST-Message"
	bindingFactorTag = "Aleo-FROST-Binding"
)

// messageHash maps the message to a single scalar H(m), under a domain
// distinct from the challenge hash.
func messageHash(group curve.Curve, message []byte) (curve.Scalar, error) {
	h := hash.New(hash.BytesWithDomain{TheDomain: messageHashTag})
	if err := h.WriteAny(message); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrimitiveFailure, err)
	}
	m, err := sample.Scalar(h.Digest(), group)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrimitiveFailure, err)
	}
	return m, nil
}

// BindingFactors computes the binding factor of every party in the set for
// the given message,
//
//	rho_i = H1(i, H(m), (j, D_j.x, E_j.x) for all j in B ascending).
//
// The factor ties party i's commitment to this exact message and this exact
// set, which is what defeats reuse of a published commitment in another
// session. The result is deterministic: all honest participants compute the
// same factors from the same set and message.
func (s *SigningSet) BindingFactors(message []byte) (map[party.ID]curve.Scalar, error) {
	m, err := messageHash(s.group, message)
	if err != nil {
		return nil, err
	}

	factors := make(map[party.ID]curve.Scalar, len(s.ids))
	for _, id := range s.ids {
		rho, err := s.bindingFactor(id, m)
		if err != nil {
			return nil, err
		}
		factors[id] = rho
	}
	return factors, nil
}

// bindingFactor hashes the preimage for one party. The commitment list is
// absorbed in ascending index order; iteration follows s.ids, which
// party.IDSlice keeps sorted, never the map.
func (s *SigningSet) bindingFactor(id party.ID, messageHash curve.Scalar) (curve.Scalar, error) {
	h := hash.New(hash.BytesWithDomain{TheDomain: bindingFactorTag})
	if err := h.WriteAny(id.Scalar(s.group), messageHash); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrimitiveFailure, err)
	}
	for _, j := range s.ids {
		commitment := s.commitments[j]
		err := h.WriteAny(j.Scalar(s.group), commitment.Hiding.XScalar(), commitment.Binding.XScalar())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPrimitiveFailure, err)
		}
	}
	rho, err := sample.Scalar(h.Digest(), s.group)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrimitiveFailure, err)
	}
	return rho, nil
}
