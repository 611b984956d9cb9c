package dealer

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	frost "github.com/puzzlehq/aleo-frost"
	"github.com/puzzlehq/aleo-frost/pkg/account"
	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
	"github.com/puzzlehq/aleo-frost/pkg/party"
)

var testGroups = []curve.Curve{curve.Edwards377{}, curve.Secp256k1{}}

func TestDeal(t *testing.T) {
	for _, group := range testGroups {
		t.Run(group.Name(), func(t *testing.T) {
			priv, err := account.GenPrivateKey(group, rand.Reader)
			require.NoError(t, err)

			output, err := Deal(priv, 2, 3, rand.Reader)
			require.NoError(t, err)
			require.Len(t, output.Shares, 3)
			require.Len(t, output.VerificationShares, 3)

			for i, share := range output.Shares {
				assert.Equal(t, party.ID(i+1), share.ID)
				require.NoError(t, share.Validate())
				assert.True(t, output.GroupKey.Equal(share.GroupKey))
				assert.True(t, VerifyShare(share, output.Commitments))
				assert.True(t, share.Secret.ActOnBase().Equal(output.VerificationShares[share.ID]))
			}

			// the constant commitment is the public image of the signing scalar
			assert.True(t, priv.SkSig().ActOnBase().Equal(output.Commitments.Constant()))
			assert.Equal(t, 1, output.Commitments.Degree())
		})
	}
}

func TestDeal_Validation(t *testing.T) {
	group := testGroups[0]
	priv, err := account.GenPrivateKey(group, rand.Reader)
	require.NoError(t, err)

	_, err = Deal(priv, 1, 3, rand.Reader)
	assert.Error(t, err)
	_, err = Deal(priv, 3, 2, rand.Reader)
	assert.Error(t, err)
	_, err = Deal(priv, 2, 2, rand.Reader)
	assert.NoError(t, err)
}

func TestVerifyShare_Tampered(t *testing.T) {
	group := testGroups[0]
	priv, err := account.GenPrivateKey(group, rand.Reader)
	require.NoError(t, err)
	output, err := Deal(priv, 2, 3, rand.Reader)
	require.NoError(t, err)

	one := party.ID(1).Scalar(group)
	share := output.Shares[0]

	tampered := &frost.KeyShare{
		ID:       share.ID,
		Secret:   group.NewScalar().Set(share.Secret).Add(one),
		GroupKey: share.GroupKey,
	}
	assert.False(t, VerifyShare(tampered, output.Commitments))

	// right share, wrong recipient
	misaddressed := &frost.KeyShare{
		ID:       output.Shares[1].ID,
		Secret:   share.Secret,
		GroupKey: share.GroupKey,
	}
	assert.False(t, VerifyShare(misaddressed, output.Commitments))
}

func TestReconstruct(t *testing.T) {
	for _, group := range testGroups {
		t.Run(group.Name(), func(t *testing.T) {
			priv, err := account.GenPrivateKey(group, rand.Reader)
			require.NoError(t, err)
			output, err := Deal(priv, 2, 3, rand.Reader)
			require.NoError(t, err)
			skSig := priv.SkSig()
			shares := output.Shares

			for _, subset := range [][]*frost.KeyShare{
				{shares[0], shares[1]},
				{shares[0], shares[2]},
				{shares[1], shares[2]},
				{shares[0], shares[1], shares[2]},
			} {
				secret, err := Reconstruct(group, subset)
				require.NoError(t, err)
				assert.True(t, skSig.Equal(secret))
			}
		})
	}
}

func TestReconstruct_Insufficient(t *testing.T) {
	group := testGroups[0]
	priv, err := account.GenPrivateKey(group, rand.Reader)
	require.NoError(t, err)
	output, err := Deal(priv, 2, 3, rand.Reader)
	require.NoError(t, err)

	_, err = Reconstruct(group, nil)
	assert.Error(t, err)

	// a single share interpolates to an unrelated scalar, caught by the
	// group key check
	_, err = Reconstruct(group, output.Shares[:1])
	assert.Error(t, err)

	// duplicate shares make the domain degenerate
	_, err = Reconstruct(group, []*frost.KeyShare{output.Shares[0], output.Shares[0]})
	assert.Error(t, err)
}
