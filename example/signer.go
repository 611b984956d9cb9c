package main

import (
	"crypto/rand"
	"fmt"

	"github.com/rs/zerolog"

	frost "github.com/puzzlehq/aleo-frost"
	"github.com/puzzlehq/aleo-frost/pkg/account"
)

// RunSigner drives one participant's session over the network: broadcast the
// commitment, bind the collected set, broadcast the partial signature,
// aggregate. Every participant ends up with the same final signature.
func RunSigner(share *frost.KeyShare, signers int, message []byte, net Network, log zerolog.Logger) (*account.Signature, error) {
	group := share.Curve()

	session, err := frost.NewSession(share)
	if err != nil {
		return nil, err
	}
	session.Log = log

	commitment, err := session.Preprocess(rand.Reader)
	if err != nil {
		return nil, err
	}
	data, err := commitment.MarshalBinary()
	if err != nil {
		return nil, err
	}
	net.Send(&Message{From: share.ID, Kind: KindCommitment, Data: data})

	// collect one commitment per signer; partials from faster parties can
	// arrive in between and are set aside
	commitments := make([]*frost.SigningCommitment, 0, signers)
	var early []*Message
	for len(commitments) < signers {
		msg := <-net.Next(share.ID)
		if msg.Kind != KindCommitment {
			early = append(early, msg)
			continue
		}
		c := frost.EmptySigningCommitment(group)
		if err := c.UnmarshalBinary(msg.Data); err != nil {
			return nil, fmt.Errorf("commitment from %s: %w", msg.From, err)
		}
		commitments = append(commitments, c)
	}
	if err := session.Bind(message, commitments); err != nil {
		return nil, err
	}

	partial, err := session.PartialSign()
	if err != nil {
		return nil, err
	}
	data, err = partial.MarshalBinary()
	if err != nil {
		return nil, err
	}
	net.Send(&Message{From: share.ID, Kind: KindPartial, Data: data})

	partials := make([]*frost.PartialSignature, 0, signers)
	decode := func(msg *Message) error {
		p := frost.EmptyPartialSignature(group)
		if err := p.UnmarshalBinary(msg.Data); err != nil {
			return fmt.Errorf("partial signature from %s: %w", msg.From, err)
		}
		partials = append(partials, p)
		return nil
	}
	for _, msg := range early {
		if err := decode(msg); err != nil {
			return nil, err
		}
	}
	for len(partials) < signers {
		if err := decode(<-net.Next(share.ID)); err != nil {
			return nil, err
		}
	}

	return session.Aggregate(partials)
}
