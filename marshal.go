package frost

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/puzzlehq/aleo-frost/pkg/account"
	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
	"github.com/puzzlehq/aleo-frost/pkg/party"
)

// The wire formats below are cbor structs of raw byte strings. Scalars and
// points travel in their curve encodings; the group itself is never on the
// wire, the receiving side supplies it through the Empty constructors.
//
// SigningNonce deliberately has no wire format. Nonces are single use
// secrets owned by one participant, serializing them invites exactly the
// reuse the protocol forbids.

type signingCommitmentRaw struct {
	ID      party.ID
	Hiding  []byte
	Binding []byte
}

// EmptySigningCommitment returns a SigningCommitment that can be
// unmarshalled for the group.
func EmptySigningCommitment(group curve.Curve) *SigningCommitment {
	return &SigningCommitment{
		Hiding:  group.NewPoint(),
		Binding: group.NewPoint(),
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c *SigningCommitment) MarshalBinary() ([]byte, error) {
	hiding, err := c.Hiding.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("commitment.Hiding: %w", err)
	}
	binding, err := c.Binding.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("commitment.Binding: %w", err)
	}
	return cbor.Marshal(signingCommitmentRaw{
		ID:      c.ID,
		Hiding:  hiding,
		Binding: binding,
	})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// The receiver must have been obtained from EmptySigningCommitment.
func (c *SigningCommitment) UnmarshalBinary(data []byte) error {
	if c.Hiding == nil || c.Binding == nil {
		return fmt.Errorf("frost: unmarshal into an uninitialized commitment")
	}
	var raw signingCommitmentRaw
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("commitment: %w", err)
	}
	if err := c.Hiding.UnmarshalBinary(raw.Hiding); err != nil {
		return fmt.Errorf("commitment.Hiding: %w", err)
	}
	if err := c.Binding.UnmarshalBinary(raw.Binding); err != nil {
		return fmt.Errorf("commitment.Binding: %w", err)
	}
	c.ID = raw.ID
	return nil
}

type partialSignatureRaw struct {
	ID party.ID
	Z  []byte
}

// EmptyPartialSignature returns a PartialSignature that can be unmarshalled
// for the group.
func EmptyPartialSignature(group curve.Curve) *PartialSignature {
	return &PartialSignature{Z: group.NewScalar()}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p *PartialSignature) MarshalBinary() ([]byte, error) {
	z, err := p.Z.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("partial signature.Z: %w", err)
	}
	return cbor.Marshal(partialSignatureRaw{ID: p.ID, Z: z})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// The receiver must have been obtained from EmptyPartialSignature.
func (p *PartialSignature) UnmarshalBinary(data []byte) error {
	if p.Z == nil {
		return fmt.Errorf("frost: unmarshal into an uninitialized partial signature")
	}
	var raw partialSignatureRaw
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("partial signature: %w", err)
	}
	if err := p.Z.UnmarshalBinary(raw.Z); err != nil {
		return fmt.Errorf("partial signature.Z: %w", err)
	}
	p.ID = raw.ID
	return nil
}

type keyShareRaw struct {
	ID       party.ID
	Secret   []byte
	GroupKey []byte
}

// EmptyKeyShare returns a KeyShare that can be unmarshalled for the group.
//
// Shares are meant for local storage only, they are never exchanged during
// the protocol.
func EmptyKeyShare(group curve.Curve) *KeyShare {
	return &KeyShare{
		Secret:   group.NewScalar(),
		GroupKey: account.EmptyComputeKey(group),
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (k *KeyShare) MarshalBinary() ([]byte, error) {
	secret, err := k.Secret.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("key share.Secret: %w", err)
	}
	groupKey, err := k.GroupKey.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("key share.GroupKey: %w", err)
	}
	return cbor.Marshal(keyShareRaw{
		ID:       k.ID,
		Secret:   secret,
		GroupKey: groupKey,
	})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// The receiver must have been obtained from EmptyKeyShare.
func (k *KeyShare) UnmarshalBinary(data []byte) error {
	if k.Secret == nil || k.GroupKey == nil {
		return fmt.Errorf("frost: unmarshal into an uninitialized key share")
	}
	var raw keyShareRaw
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("key share: %w", err)
	}
	if err := k.Secret.UnmarshalBinary(raw.Secret); err != nil {
		return fmt.Errorf("key share.Secret: %w", err)
	}
	if err := k.GroupKey.UnmarshalBinary(raw.GroupKey); err != nil {
		return fmt.Errorf("key share.GroupKey: %w", err)
	}
	k.ID = raw.ID
	return nil
}
