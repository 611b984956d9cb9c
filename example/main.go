package main

import (
	"crypto/rand"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	frost "github.com/puzzlehq/aleo-frost"
	"github.com/puzzlehq/aleo-frost/pkg/account"
	"github.com/puzzlehq/aleo-frost/pkg/dealer"
	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
	"github.com/puzzlehq/aleo-frost/pkg/party"
)

const (
	threshold = 2
	parties   = 3
)

func main() {
	logger := zerolog.New(zerolog.NewConsoleWriter()).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()

	group := curve.Edwards377{}
	message := []byte("transfer 10 credits to alice")

	// a trusted dealer splits a fresh account into 3 shares, any 2 sign
	priv, err := account.GenPrivateKey(group, rand.Reader)
	if err != nil {
		logger.Fatal().Err(err).Msg("key generation failed")
	}
	output, err := dealer.Deal(priv, threshold, parties, rand.Reader)
	if err != nil {
		logger.Fatal().Err(err).Msg("dealing failed")
	}
	address, err := output.GroupKey.Address()
	if err != nil {
		logger.Fatal().Err(err).Msg("address derivation failed")
	}
	logger.Info().
		Int("threshold", threshold).
		Int("parties", parties).
		Msg("account dealt")

	// parties 1 and 2 sign, party 3 sits this session out
	signers := []*frost.KeyShare{output.Shares[0], output.Shares[1]}
	ids := make([]party.ID, 0, len(signers))
	for _, share := range signers {
		ids = append(ids, share.ID)
	}
	net := NewNetwork(party.NewIDSlice(ids))

	signatures := make([]*account.Signature, len(signers))
	var sessions errgroup.Group
	for i, share := range signers {
		i, share := i, share
		sessions.Go(func() error {
			log := logger.With().Stringer("party", share.ID).Logger()
			signature, err := RunSigner(share, len(signers), message, net, log)
			if err != nil {
				return err
			}
			signatures[i] = signature
			return nil
		})
	}
	if err := sessions.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("signing failed")
	}

	for _, signature := range signatures {
		if !signature.Verify(address, message) {
			logger.Fatal().Msg("threshold signature does not verify")
		}
	}
	logger.Info().Msg("threshold signature verifies against the account address")

	// the unsplit key signs through the very same verifier
	direct, err := priv.Sign(rand.Reader, message)
	if err != nil {
		logger.Fatal().Err(err).Msg("single party signing failed")
	}
	if !direct.Verify(address, message) {
		logger.Fatal().Msg("single party signature does not verify")
	}
	logger.Info().Msg("single party signature verifies against the same address")
}
