package frost

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
	"github.com/puzzlehq/aleo-frost/pkg/math/sample"
	"github.com/puzzlehq/aleo-frost/pkg/party"
)

// SigningNonce is the secret half of a preprocessed nonce pair.
//
// It consists of two independently sampled scalars (hiding, binding) and is
// consumed by the first PartialSign that uses it. The scalars are never
// exposed, only the owning participant's PartialSign reads them, once.
type SigningNonce struct {
	id       party.ID
	hiding   curve.Scalar
	binding  curve.Scalar
	consumed uint32
}

// ID returns the participant the nonce was generated for.
func (n *SigningNonce) ID() party.ID {
	return n.id
}

// Consumed reports whether the nonce has already been spent.
func (n *SigningNonce) Consumed() bool {
	return atomic.LoadUint32(&n.consumed) != 0
}

// consume hands out the two scalars exactly once. The fields are cleared so
// the nonce no longer references the secrets afterwards.
func (n *SigningNonce) consume() (hiding, binding curve.Scalar, err error) {
	if !atomic.CompareAndSwapUint32(&n.consumed, 0, 1) {
		return nil, nil, ErrNonceConsumed
	}
	hiding, binding = n.hiding, n.binding
	n.hiding, n.binding = nil, nil
	return hiding, binding, nil
}

// SigningCommitment is the public half of a preprocessed nonce pair,
//
//	(D, E) = ([hiding]•G, [binding]•G),
//
// tagged with the participant that generated it. It is safe to broadcast.
type SigningCommitment struct {
	ID      party.ID
	Hiding  curve.Point
	Binding curve.Point
}

// Validate returns an error if the commitment cannot enter a signing set.
func (c *SigningCommitment) Validate() error {
	if c == nil || c.Hiding == nil || c.Binding == nil {
		return fmt.Errorf("%w: incomplete commitment", ErrMissingData)
	}
	if !c.ID.Valid() {
		return fmt.Errorf("frost: commitment has invalid participant ID %s", c.ID)
	}
	if c.Hiding.IsIdentity() || c.Binding.IsIdentity() {
		return fmt.Errorf("frost: commitment of party %s contains the identity", c.ID)
	}
	return nil
}

// Preprocess samples count single use nonce pairs for the given participant
// and returns them with their matching commitments, positionally paired.
//
// Every participant runs this independently, there is no shared state. The
// nonces must be stored privately, the commitments are meant to be
// published. For the two round protocol count is 1; larger counts stock up
// commitments for several future sessions in one round trip.
func Preprocess(group curve.Curve, count int, id party.ID, rand io.Reader) ([]*SigningNonce, []*SigningCommitment, error) {
	if count < 1 {
		return nil, nil, fmt.Errorf("frost: preprocess count must be at least 1, got %d", count)
	}
	if !id.Valid() {
		return nil, nil, fmt.Errorf("frost: invalid participant ID %s", id)
	}

	nonces := make([]*SigningNonce, 0, count)
	commitments := make([]*SigningCommitment, 0, count)
	for i := 0; i < count; i++ {
		hiding, err := sample.ScalarUnit(rand, group)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrRandomnessExhausted, err)
		}
		binding, err := sample.ScalarUnit(rand, group)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrRandomnessExhausted, err)
		}

		nonces = append(nonces, &SigningNonce{
			id:      id,
			hiding:  hiding,
			binding: binding,
		})
		commitments = append(commitments, &SigningCommitment{
			ID:      id,
			Hiding:  hiding.ActOnBase(),
			Binding: binding.ActOnBase(),
		})
	}
	return nonces, commitments, nil
}
