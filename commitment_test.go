package frost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	frost "github.com/puzzlehq/aleo-frost"
)

func TestGroupCommitment(t *testing.T) {
	message := []byte("fold the set")
	for _, group := range testGroups {
		t.Run(group.Name(), func(t *testing.T) {
			set, err := frost.NewSigningSet(group, commitmentsFor(t, group, 1, 2, 3))
			require.NoError(t, err)

			factors, err := set.BindingFactors(message)
			require.NoError(t, err)

			R, err := set.GroupCommitment(factors)
			require.NoError(t, err)
			require.False(t, R.IsIdentity())

			// R = Σ (D_i + [rho_i]·E_i), recomputed from the public pieces
			expected := group.NewPoint()
			for _, id := range set.IDs() {
				commitment, err := set.Commitment(id)
				require.NoError(t, err)
				expected = expected.Add(commitment.Hiding).Add(factors[id].Act(commitment.Binding))
			}
			assert.True(t, R.Equal(expected))
		})
	}
}

func TestGroupCommitment_MissingFactor(t *testing.T) {
	group := testGroups[0]
	set, err := frost.NewSigningSet(group, commitmentsFor(t, group, 1, 2, 3))
	require.NoError(t, err)

	factors, err := set.BindingFactors([]byte("missing one"))
	require.NoError(t, err)
	delete(factors, 2)

	_, err = set.GroupCommitment(factors)
	assert.ErrorIs(t, err, frost.ErrMissingData)
}
