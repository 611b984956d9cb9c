package hash

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_WriteAny(t *testing.T) {
	testFunc := func(vs ...interface{}) error {
		h := New()
		for _, v := range vs {
			if err := h.WriteAny(v); err != nil {
				return err
			}
		}
		return nil
	}

	assert.NoError(t, testFunc([]byte{1, 4, 6}))
	assert.NoError(t, testFunc(BytesWithDomain{TheDomain: "test", Bytes: []byte{1}}))
	assert.NoError(t, testFunc([]byte{1, 4, 6}, BytesWithDomain{TheDomain: "test", Bytes: nil}))
}

func TestHash_Deterministic(t *testing.T) {
	h1 := New(BytesWithDomain{TheDomain: "tag", Bytes: nil})
	h2 := New(BytesWithDomain{TheDomain: "tag", Bytes: nil})
	require.NoError(t, h1.WriteAny([]byte("data")))
	require.NoError(t, h2.WriteAny([]byte("data")))
	assert.Equal(t, h1.Sum(), h2.Sum())
}

func TestHash_DomainSeparation(t *testing.T) {
	h1 := New(BytesWithDomain{TheDomain: "tag-one", Bytes: nil})
	h2 := New(BytesWithDomain{TheDomain: "tag-two", Bytes: nil})
	require.NoError(t, h1.WriteAny([]byte("data")))
	require.NoError(t, h2.WriteAny([]byte("data")))
	assert.NotEqual(t, h1.Sum(), h2.Sum())
}

func TestHash_Clone(t *testing.T) {
	h := New()
	require.NoError(t, h.WriteAny([]byte("prefix")))

	clone := h.Clone()
	require.NoError(t, h.WriteAny([]byte("a")))
	require.NoError(t, clone.WriteAny([]byte("b")))
	assert.NotEqual(t, h.Sum(), clone.Sum())

	// The clone started from the same prefix state.
	h3 := New()
	require.NoError(t, h3.WriteAny([]byte("prefix"), []byte("b")))
	assert.Equal(t, clone.Sum(), h3.Sum())
}

func TestHash_DigestStream(t *testing.T) {
	h := New()
	require.NoError(t, h.WriteAny([]byte("stream")))
	digest := h.Digest()

	out1 := make([]byte, 2*DigestLengthBytes)
	_, err := io.ReadFull(digest, out1)
	require.NoError(t, err)

	// Sum only returns the stream prefix.
	assert.True(t, bytes.HasPrefix(out1, h.Sum()))
}
