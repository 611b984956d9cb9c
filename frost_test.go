package frost_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	frost "github.com/puzzlehq/aleo-frost"
	"github.com/puzzlehq/aleo-frost/internal/test"
	"github.com/puzzlehq/aleo-frost/pkg/account"
	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
	"github.com/puzzlehq/aleo-frost/pkg/party"
)

var testGroups = []curve.Curve{curve.Edwards377{}, curve.Secp256k1{}}

// preprocessAll generates one nonce pair per share and returns the nonces
// with the commitments forming the session set.
func preprocessAll(t *testing.T, group curve.Curve, shares []*frost.KeyShare) (map[party.ID]*frost.SigningNonce, []*frost.SigningCommitment) {
	t.Helper()
	nonces := make(map[party.ID]*frost.SigningNonce, len(shares))
	commitments := make([]*frost.SigningCommitment, 0, len(shares))
	for _, share := range shares {
		shareNonces, shareCommitments, err := frost.Preprocess(group, 1, share.ID, rand.Reader)
		require.NoError(t, err)
		nonces[share.ID] = shareNonces[0]
		commitments = append(commitments, shareCommitments[0])
	}
	return nonces, commitments
}

// signWithShares runs the full protocol over the given shares with the pure
// functions and returns the aggregated signature.
func signWithShares(t *testing.T, group curve.Curve, groupKey *account.ComputeKey, shares []*frost.KeyShare, message []byte) *account.Signature {
	t.Helper()
	nonces, commitments := preprocessAll(t, group, shares)

	set, err := frost.NewSigningSet(group, commitments)
	require.NoError(t, err)

	partials := make([]*frost.PartialSignature, 0, len(shares))
	for _, share := range shares {
		partial, err := frost.PartialSign(share, nonces[share.ID], set, message)
		require.NoError(t, err)
		partials = append(partials, partial)
	}

	signature, err := frost.Aggregate(groupKey, set, message, partials)
	require.NoError(t, err)
	return signature
}

func TestSignCompleteness(t *testing.T) {
	message := []byte("transfer 10 credits")
	for _, group := range testGroups {
		t.Run(group.Name(), func(t *testing.T) {
			_, output := test.GenerateShares(group, 3, 5, rand.Reader)
			address, err := output.GroupKey.Address()
			require.NoError(t, err)
			shares := output.Shares

			// any subset of at least threshold size signs successfully
			for _, subset := range [][]*frost.KeyShare{
				{shares[0], shares[1], shares[2]},
				{shares[1], shares[2], shares[3]},
				{shares[0], shares[2], shares[4]},
				{shares[0], shares[1], shares[3], shares[4]},
				{shares[0], shares[1], shares[2], shares[3], shares[4]},
			} {
				signature := signWithShares(t, group, output.GroupKey, subset, message)
				assert.True(t, signature.Verify(address, message))
			}
		})
	}
}

func TestSign2of3EndToEnd(t *testing.T) {
	message := []byte("spend record 42")
	otherMessage := []byte("spend record 43")
	for _, group := range testGroups {
		t.Run(group.Name(), func(t *testing.T) {
			_, output := test.GenerateShares(group, 2, 3, rand.Reader)
			address, err := output.GroupKey.Address()
			require.NoError(t, err)

			// parties 1 and 2 run concurrent sessions, each aggregating on
			// its own
			signers := output.Shares[:2]
			signatures, err := test.RunSigners(signers, message, rand.Reader)
			require.NoError(t, err)
			require.Len(t, signatures, 2)

			for _, signature := range signatures {
				require.NotNil(t, signature)
				assert.True(t, signature.Verify(address, message))
				assert.False(t, signature.Verify(address, otherMessage))
			}

			// both participants aggregated the same session
			assert.True(t, signatures[0].Challenge.Equal(signatures[1].Challenge))
			assert.True(t, signatures[0].Response.Equal(signatures[1].Response))
		})
	}
}

func TestThresholdMatchesSingleSigner(t *testing.T) {
	message := []byte("same verifier for both")
	for _, group := range testGroups {
		t.Run(group.Name(), func(t *testing.T) {
			priv, output := test.GenerateShares(group, 2, 3, rand.Reader)
			address, err := priv.Address()
			require.NoError(t, err)

			direct, err := priv.Sign(rand.Reader, message)
			require.NoError(t, err)

			threshold := signWithShares(t, group, output.GroupKey, output.Shares[1:], message)

			// one verifier, two provenances
			assert.True(t, direct.Verify(address, message))
			assert.True(t, threshold.Verify(address, message))

			// the signatures themselves differ, nonces are fresh per signing
			assert.False(t, direct.Challenge.Equal(threshold.Challenge))
		})
	}
}

func TestSignManyParticipants(t *testing.T) {
	message := []byte("large committee")
	group := testGroups[0]
	_, output := test.GenerateShares(group, 5, 9, rand.Reader)
	address, err := output.GroupKey.Address()
	require.NoError(t, err)

	signatures, err := test.RunSigners(output.Shares[2:8], message, rand.Reader)
	require.NoError(t, err)
	for _, signature := range signatures {
		assert.True(t, signature.Verify(address, message))
	}
}
