package account

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/puzzlehq/aleo-frost/pkg/hash"
	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
	"github.com/puzzlehq/aleo-frost/pkg/math/sample"
)

// hashToScalar hashes the given data under a domain tag and maps the digest
// stream to a scalar of the group.
func hashToScalar(group curve.Curve, tag string, data ...interface{}) (curve.Scalar, error) {
	h := hash.New(hash.BytesWithDomain{TheDomain: tag})
	if err := h.WriteAny(data...); err != nil {
		return nil, err
	}
	return sample.Scalar(h.Digest(), group)
}

// Challenge computes the challenge scalar binding the commitment R, the
// signer's compute key, the claimed address and the message,
//
//	c = H(R.x, pk_sig.x, pr_sig.x, address.x, message).
func Challenge(group curve.Curve, R curve.Point, computeKey *ComputeKey, address Address, message []byte) (curve.Scalar, error) {
	if R == nil || computeKey == nil || address.point == nil {
		return nil, fmt.Errorf("account: challenge input is missing")
	}
	return hashToScalar(group, "Aleo-FROST-Challenge",
		R.XScalar(),
		computeKey.pkSig.XScalar(),
		computeKey.prSig.XScalar(),
		address.point.XScalar(),
		message,
	)
}

// Sign creates a single party signature over the message.
func (sk *PrivateKey) Sign(rand io.Reader, message []byte) (*Signature, error) {
	nonce, err := sample.ScalarUnit(rand, sk.group)
	if err != nil {
		return nil, fmt.Errorf("account: failed to sample nonce: %w", err)
	}
	R := nonce.ActOnBase()

	computeKey := sk.ComputeKey()
	address, err := computeKey.Address()
	if err != nil {
		return nil, err
	}
	c, err := Challenge(sk.group, R, computeKey, address, message)
	if err != nil {
		return nil, fmt.Errorf("account: failed to compute challenge: %w", err)
	}

	// z = nonce - c⋅sk_sig
	z := sk.group.NewScalar().Set(c).Mul(sk.skSig).Negate().Add(nonce)

	return &Signature{Challenge: c, Response: z, ComputeKey: computeKey}, nil
}

// Signature is a Schnorr signature carrying the compute key of its signer.
//
// The pair (c, z) satisfies z = nonce - c⋅sk_sig for the nonce commitment
// R = [nonce]•G the challenge was computed over.
type Signature struct {
	Challenge  curve.Scalar
	Response   curve.Scalar
	ComputeKey *ComputeKey
}

// Verify checks the signature against an address and a message.
//
// It recovers the commitment R' = [z]•G + [c]•pk_sig, checks that the
// embedded compute key belongs to the address, and that the challenge
// recomputed over R' matches the one carried by the signature. An invalid
// signature is not an error, it simply does not verify.
func (sig *Signature) Verify(address Address, message []byte) bool {
	if sig == nil || sig.Challenge == nil || sig.Response == nil || sig.ComputeKey == nil {
		return false
	}
	group := sig.ComputeKey.group

	candidate, err := sig.ComputeKey.Address()
	if err != nil || !candidate.Equal(address) {
		return false
	}

	// R' = [z]•G + [c]•pk_sig
	R := sig.Response.ActOnBase().Add(sig.Challenge.Act(sig.ComputeKey.pkSig))

	c, err := Challenge(group, R, sig.ComputeKey, address, message)
	if err != nil {
		return false
	}
	return c.Equal(sig.Challenge)
}

type signatureRaw struct {
	Challenge  []byte
	Response   []byte
	ComputeKey []byte
}

// EmptySignature returns a Signature that can be unmarshalled for the group.
func EmptySignature(group curve.Curve) *Signature {
	return &Signature{
		Challenge:  group.NewScalar(),
		Response:   group.NewScalar(),
		ComputeKey: EmptyComputeKey(group),
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (sig *Signature) MarshalBinary() ([]byte, error) {
	challenge, err := sig.Challenge.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("signature.Challenge: %w", err)
	}
	response, err := sig.Response.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("signature.Response: %w", err)
	}
	computeKey, err := sig.ComputeKey.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(signatureRaw{
		Challenge:  challenge,
		Response:   response,
		ComputeKey: computeKey,
	})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// The receiver must have been obtained from EmptySignature.
func (sig *Signature) UnmarshalBinary(data []byte) error {
	if sig.ComputeKey == nil || sig.ComputeKey.group == nil {
		return fmt.Errorf("account: unmarshal into an uninitialized signature")
	}
	var raw signatureRaw
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("signature: %w", err)
	}
	group := sig.ComputeKey.group
	challenge := group.NewScalar()
	if err := challenge.UnmarshalBinary(raw.Challenge); err != nil {
		return fmt.Errorf("signature.Challenge: %w", err)
	}
	response := group.NewScalar()
	if err := response.UnmarshalBinary(raw.Response); err != nil {
		return fmt.Errorf("signature.Response: %w", err)
	}
	if err := sig.ComputeKey.UnmarshalBinary(raw.ComputeKey); err != nil {
		return err
	}
	sig.Challenge = challenge
	sig.Response = response
	return nil
}
