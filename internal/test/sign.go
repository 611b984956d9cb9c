package test

import (
	"io"

	"golang.org/x/sync/errgroup"

	frost "github.com/puzzlehq/aleo-frost"
	"github.com/puzzlehq/aleo-frost/pkg/account"
)

// RunSigners drives one full signing session over the given shares, one
// Session per share, with every phase running concurrently across the
// participants. Each participant aggregates on its own, so the result holds
// one signature per share, all over the same session.
//
// Commitments and partials are shared through slices indexed per
// participant, mimicking a reliable broadcast. The source must be safe for
// concurrent use, crypto/rand.Reader is.
func RunSigners(shares []*frost.KeyShare, message []byte, source io.Reader) ([]*account.Signature, error) {
	n := len(shares)
	sessions := make([]*frost.Session, n)
	for i, share := range shares {
		session, err := frost.NewSession(share)
		if err != nil {
			return nil, err
		}
		sessions[i] = session
	}

	commitments := make([]*frost.SigningCommitment, n)
	var preprocess errgroup.Group
	for i, session := range sessions {
		i, session := i, session
		preprocess.Go(func() error {
			commitment, err := session.Preprocess(source)
			commitments[i] = commitment
			return err
		})
	}
	if err := preprocess.Wait(); err != nil {
		return nil, err
	}

	partials := make([]*frost.PartialSignature, n)
	var sign errgroup.Group
	for i, session := range sessions {
		i, session := i, session
		sign.Go(func() error {
			if err := session.Bind(message, commitments); err != nil {
				return err
			}
			partial, err := session.PartialSign()
			partials[i] = partial
			return err
		})
	}
	if err := sign.Wait(); err != nil {
		return nil, err
	}

	signatures := make([]*account.Signature, n)
	var aggregate errgroup.Group
	for i, session := range sessions {
		i, session := i, session
		aggregate.Go(func() error {
			signature, err := session.Aggregate(partials)
			signatures[i] = signature
			return err
		})
	}
	if err := aggregate.Wait(); err != nil {
		return nil, err
	}
	return signatures, nil
}
