package frost_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	frost "github.com/puzzlehq/aleo-frost"
	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
	"github.com/puzzlehq/aleo-frost/pkg/party"
)

// commitmentsFor preprocesses one commitment for each of the given parties.
func commitmentsFor(t *testing.T, group curve.Curve, ids ...party.ID) []*frost.SigningCommitment {
	t.Helper()
	commitments := make([]*frost.SigningCommitment, 0, len(ids))
	for _, id := range ids {
		_, c, err := frost.Preprocess(group, 1, id, rand.Reader)
		require.NoError(t, err)
		commitments = append(commitments, c[0])
	}
	return commitments
}

func TestBindingFactors_Deterministic(t *testing.T) {
	message := []byte("same inputs, same factors")
	for _, group := range testGroups {
		t.Run(group.Name(), func(t *testing.T) {
			commitments := commitmentsFor(t, group, 1, 2, 3)

			set, err := frost.NewSigningSet(group, commitments)
			require.NoError(t, err)

			first, err := set.BindingFactors(message)
			require.NoError(t, err)
			second, err := set.BindingFactors(message)
			require.NoError(t, err)

			// the factors depend on the commitment values, not on the set
			// object, so a rebuilt set agrees too
			rebuilt, err := frost.NewSigningSet(group, commitments)
			require.NoError(t, err)
			third, err := rebuilt.BindingFactors(message)
			require.NoError(t, err)

			for _, id := range set.IDs() {
				assert.True(t, first[id].Equal(second[id]))
				assert.True(t, first[id].Equal(third[id]))
			}
		})
	}
}

func TestBindingFactors_DifferPerParty(t *testing.T) {
	message := []byte("per party separation")
	group := testGroups[0]
	set, err := frost.NewSigningSet(group, commitmentsFor(t, group, 1, 2, 3))
	require.NoError(t, err)

	factors, err := set.BindingFactors(message)
	require.NoError(t, err)

	// the party index is part of the preimage
	assert.False(t, factors[1].Equal(factors[2]))
	assert.False(t, factors[1].Equal(factors[3]))
	assert.False(t, factors[2].Equal(factors[3]))
}

func TestBindingFactors_MessageDivergence(t *testing.T) {
	for _, group := range testGroups {
		t.Run(group.Name(), func(t *testing.T) {
			set, err := frost.NewSigningSet(group, commitmentsFor(t, group, 1, 2, 3))
			require.NoError(t, err)

			forFirst, err := set.BindingFactors([]byte("transfer to alice"))
			require.NoError(t, err)
			forSecond, err := set.BindingFactors([]byte("transfer to mallory"))
			require.NoError(t, err)

			for _, id := range set.IDs() {
				assert.False(t, forFirst[id].Equal(forSecond[id]))
			}
		})
	}
}

func TestBindingFactors_CommitmentDivergence(t *testing.T) {
	message := []byte("set membership matters")
	for _, group := range testGroups {
		t.Run(group.Name(), func(t *testing.T) {
			commitments := commitmentsFor(t, group, 1, 2, 3)

			set, err := frost.NewSigningSet(group, commitments)
			require.NoError(t, err)
			factors, err := set.BindingFactors(message)
			require.NoError(t, err)

			// replace only party 3's commitment; every factor must change,
			// the whole commitment list is part of every preimage
			swapped := append([]*frost.SigningCommitment(nil), commitments[:2]...)
			swapped = append(swapped, commitmentsFor(t, group, 3)...)

			swappedSet, err := frost.NewSigningSet(group, swapped)
			require.NoError(t, err)
			swappedFactors, err := swappedSet.BindingFactors(message)
			require.NoError(t, err)

			for _, id := range set.IDs() {
				assert.False(t, factors[id].Equal(swappedFactors[id]))
			}
		})
	}
}
