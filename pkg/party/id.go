package party

import (
	"encoding/binary"
	"io"
	"strconv"

	"github.com/cronokirby/saferith"

	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
)

// ByteSize is the number of bytes required to store an ID.
const ByteSize = 2

// MAX is the largest integer an ID can hold, bounding the number of
// participants.
const MAX = (1 << (ByteSize * 8)) - 1

// ID identifies a protocol participant.
//
// IDs are small positive integers. 0 is reserved and never identifies a
// participant: shares are evaluations of the dealer's polynomial at
// x = ID, and the secret itself is the evaluation at x = 0.
type ID uint16

// Valid reports whether the ID may identify a participant.
func (id ID) Valid() bool {
	return id != 0
}

// Scalar returns the field embedding of the ID in the given group.
func (id ID) Scalar(group curve.Curve) curve.Scalar {
	return group.NewScalar().SetNat(new(saferith.Nat).SetUint64(uint64(id)))
}

// Bytes returns a big-endian []byte slice of length party.ByteSize.
func (id ID) Bytes() []byte {
	bytes := make([]byte, ByteSize)
	binary.BigEndian.PutUint16(bytes, uint16(id))
	return bytes
}

// String returns a base 10 representation of ID.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (id ID) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(id.Bytes())
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain, and separates this type within hash.Hash.
func (ID) Domain() string {
	return "ID"
}

// FromBytes reads the first party.ByteSize bytes from b and creates an ID from it.
func FromBytes(b []byte) ID {
	return ID(binary.BigEndian.Uint16(b))
}

// IDFromString reads a base 10 string and attempts to generate an ID from it.
func IDFromString(str string) (ID, error) {
	p, err := strconv.ParseUint(str, 10, 16)
	if err != nil {
		return 0, err
	}
	return ID(p), nil
}
