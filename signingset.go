package frost

import (
	"fmt"

	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
	"github.com/puzzlehq/aleo-frost/pkg/party"
)

// SigningSet is the set B of commitments fixed for one signing session,
// exactly one commitment per participating index.
//
// The set is immutable once built. Changing its membership changes every
// binding factor, and with them the group commitment and the challenge, so
// all participants of a session must build it from the same commitments.
type SigningSet struct {
	group       curve.Curve
	ids         party.IDSlice
	commitments map[party.ID]*SigningCommitment
}

// NewSigningSet validates the commitments and fixes them as a session set.
//
// It fails on an empty list, on a duplicate or invalid participant index,
// and on a commitment containing the identity point. Commitments arriving
// here have typically crossed a network, so this is the place where their
// points are checked; the later aggregation steps assume membership implies
// validity.
func NewSigningSet(group curve.Curve, commitments []*SigningCommitment) (*SigningSet, error) {
	if len(commitments) == 0 {
		return nil, fmt.Errorf("%w: empty signing set", ErrMissingData)
	}

	set := &SigningSet{
		group:       group,
		commitments: make(map[party.ID]*SigningCommitment, len(commitments)),
	}
	ids := make([]party.ID, 0, len(commitments))
	for _, commitment := range commitments {
		if err := commitment.Validate(); err != nil {
			return nil, err
		}
		if _, ok := set.commitments[commitment.ID]; ok {
			return nil, fmt.Errorf("%w: commitment for party %s", ErrDuplicateIndex, commitment.ID)
		}
		ids = append(ids, commitment.ID)
		set.commitments[commitment.ID] = &SigningCommitment{
			ID:      commitment.ID,
			Hiding:  group.NewPoint().Set(commitment.Hiding),
			Binding: group.NewPoint().Set(commitment.Binding),
		}
	}
	set.ids = party.NewIDSlice(ids)
	return set, nil
}

// Curve returns the group the set was built for.
func (s *SigningSet) Curve() curve.Curve {
	return s.group
}

// IDs returns the participating indices in ascending order.
func (s *SigningSet) IDs() party.IDSlice {
	return s.ids.Copy()
}

// Len returns the number of participants in the set.
func (s *SigningSet) Len() int {
	return len(s.ids)
}

// Contains reports whether the given party contributed a commitment.
func (s *SigningSet) Contains(id party.ID) bool {
	return s.ids.Contains(id)
}

// Commitment returns the commitment of the given party.
func (s *SigningSet) Commitment(id party.ID) (*SigningCommitment, error) {
	commitment, ok := s.commitments[id]
	if !ok {
		return nil, fmt.Errorf("%w: commitment for party %s", ErrMissingData, id)
	}
	return commitment, nil
}
