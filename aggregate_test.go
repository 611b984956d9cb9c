package frost_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	frost "github.com/puzzlehq/aleo-frost"
	"github.com/puzzlehq/aleo-frost/internal/test"
	"github.com/puzzlehq/aleo-frost/pkg/party"
)

func TestAggregate_OrderIndependent(t *testing.T) {
	message := []byte("sum is commutative")
	for _, group := range testGroups {
		t.Run(group.Name(), func(t *testing.T) {
			_, output := test.GenerateShares(group, 3, 4, rand.Reader)
			signers := output.Shares[:3]
			nonces, commitments := preprocessAll(t, group, signers)
			set, err := frost.NewSigningSet(group, commitments)
			require.NoError(t, err)

			partials := make([]*frost.PartialSignature, 0, len(signers))
			for _, signer := range signers {
				partial, err := frost.PartialSign(signer, nonces[signer.ID], set, message)
				require.NoError(t, err)
				partials = append(partials, partial)
			}

			address, err := output.GroupKey.Address()
			require.NoError(t, err)

			reversed := []*frost.PartialSignature{partials[2], partials[0], partials[1]}
			signature, err := frost.Aggregate(output.GroupKey, set, message, reversed)
			require.NoError(t, err)
			assert.True(t, signature.Verify(address, message))
		})
	}
}

func TestAggregate_MissingPartial(t *testing.T) {
	message := []byte("threshold is strict")
	group := testGroups[0]
	fixture := newSessionFixture(t, group)

	partial, err := frost.PartialSign(fixture.signers[0], fixture.nonces[fixture.signers[0].ID], fixture.set, message)
	require.NoError(t, err)

	_, err = frost.Aggregate(fixture.output.GroupKey, fixture.set, message, []*frost.PartialSignature{partial})
	assert.ErrorIs(t, err, frost.ErrMissingData)
}

func TestAggregate_RejectsDuplicates(t *testing.T) {
	message := []byte("one partial per party")
	group := testGroups[0]
	fixture := newSessionFixture(t, group)

	partial, err := frost.PartialSign(fixture.signers[0], fixture.nonces[fixture.signers[0].ID], fixture.set, message)
	require.NoError(t, err)

	_, err = frost.Aggregate(fixture.output.GroupKey, fixture.set, message, []*frost.PartialSignature{partial, partial})
	assert.ErrorIs(t, err, frost.ErrDuplicateIndex)
}

func TestAggregate_RejectsOutsiders(t *testing.T) {
	message := []byte("members only")
	group := testGroups[0]
	fixture := newSessionFixture(t, group)

	partials := make([]*frost.PartialSignature, 0, 3)
	for _, signer := range fixture.signers {
		partial, err := frost.PartialSign(signer, fixture.nonces[signer.ID], fixture.set, message)
		require.NoError(t, err)
		partials = append(partials, partial)
	}
	partials = append(partials, &frost.PartialSignature{ID: 9, Z: group.NewScalar()})

	_, err := frost.Aggregate(fixture.output.GroupKey, fixture.set, message, partials)
	assert.Error(t, err)
}

func TestAggregate_NilInputs(t *testing.T) {
	message := []byte("nothing to fold")
	group := testGroups[0]
	fixture := newSessionFixture(t, group)

	_, err := frost.Aggregate(nil, fixture.set, message, nil)
	assert.ErrorIs(t, err, frost.ErrMissingData)

	_, err = frost.Aggregate(fixture.output.GroupKey, nil, message, nil)
	assert.ErrorIs(t, err, frost.ErrMissingData)

	_, err = frost.Aggregate(fixture.output.GroupKey, fixture.set, message, []*frost.PartialSignature{nil, nil})
	assert.ErrorIs(t, err, frost.ErrMissingData)
}

func TestAggregate_WrongMessage(t *testing.T) {
	signed := []byte("what the partials signed")
	aggregated := []byte("what the aggregator claims")
	group := testGroups[0]
	fixture := newSessionFixture(t, group)

	partials := make([]*frost.PartialSignature, 0, 2)
	for _, signer := range fixture.signers {
		partial, err := frost.PartialSign(signer, fixture.nonces[signer.ID], fixture.set, signed)
		require.NoError(t, err)
		partials = append(partials, partial)
	}

	// aggregation does not detect the mismatch, the signature simply fails
	// to verify under either message
	signature, err := frost.Aggregate(fixture.output.GroupKey, fixture.set, aggregated, partials)
	require.NoError(t, err)

	address, err := fixture.output.GroupKey.Address()
	require.NoError(t, err)
	assert.False(t, signature.Verify(address, signed))
	assert.False(t, signature.Verify(address, aggregated))
}

func TestAggregate_MismatchedSets(t *testing.T) {
	message := []byte("everyone must see the same set")
	group := testGroups[0]
	_, output := test.GenerateShares(group, 2, 3, rand.Reader)
	signers := output.Shares[:2]

	nonces, commitments := preprocessAll(t, group, signers)
	set, err := frost.NewSigningSet(group, commitments)
	require.NoError(t, err)

	// the second signer was shown a tampered commitment for party 1 and
	// bound its partial to a different set
	tampered := commitmentsFor(t, group, party.ID(1))
	otherSet, err := frost.NewSigningSet(group, []*frost.SigningCommitment{tampered[0], commitments[1]})
	require.NoError(t, err)

	first, err := frost.PartialSign(signers[0], nonces[signers[0].ID], set, message)
	require.NoError(t, err)
	second, err := frost.PartialSign(signers[1], nonces[signers[1].ID], otherSet, message)
	require.NoError(t, err)

	signature, err := frost.Aggregate(output.GroupKey, set, message, []*frost.PartialSignature{first, second})
	require.NoError(t, err)

	address, err := output.GroupKey.Address()
	require.NoError(t, err)
	assert.False(t, signature.Verify(address, message))

	// attribution still works: party 1 checks out, party 2 does not
	assert.True(t, frost.VerifyPartial(first, output.VerificationShares[first.ID], output.GroupKey, set, message))
	assert.False(t, frost.VerifyPartial(second, output.VerificationShares[second.ID], output.GroupKey, set, message))
}
