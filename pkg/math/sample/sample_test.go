package sample

import (
	"crypto/rand"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGroups = []curve.Curve{curve.Edwards377{}, curve.Secp256k1{}}

func TestScalar(t *testing.T) {
	for _, group := range testGroups {
		t.Run(group.Name(), func(t *testing.T) {
			s, err := Scalar(rand.Reader, group)
			require.NoError(t, err)
			data, err := s.MarshalBinary()
			require.NoError(t, err)
			assert.Len(t, data, group.ScalarBytes())
		})
	}
}

func TestScalarUnit(t *testing.T) {
	for _, group := range testGroups {
		t.Run(group.Name(), func(t *testing.T) {
			s, err := ScalarUnit(rand.Reader, group)
			require.NoError(t, err)
			assert.False(t, s.IsZero())
		})
	}
}

func TestScalarPointPair(t *testing.T) {
	for _, group := range testGroups {
		t.Run(group.Name(), func(t *testing.T) {
			s, p, err := ScalarPointPair(rand.Reader, group)
			require.NoError(t, err)
			assert.True(t, s.ActOnBase().Equal(p))
		})
	}
}

func TestScalarBrokenReader(t *testing.T) {
	broken := iotest.ErrReader(errors.New("no entropy"))
	for _, group := range testGroups {
		_, err := Scalar(broken, group)
		assert.ErrorIs(t, err, ErrMaxIterations)
	}
}
