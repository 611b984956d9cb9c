package party

import (
	"encoding/binary"
	"io"
	"sort"
)

// IDSlice is a sorted slice of IDs.
type IDSlice []ID

// NewIDSlice returns a sorted copy of the given IDs.
func NewIDSlice(ids []ID) IDSlice {
	res := make(IDSlice, len(ids))
	copy(res, ids)
	sort.Sort(res)
	return res
}

func (partyIDs IDSlice) Len() int           { return len(partyIDs) }
func (partyIDs IDSlice) Less(i, j int) bool { return partyIDs[i] < partyIDs[j] }
func (partyIDs IDSlice) Swap(i, j int)      { partyIDs[i], partyIDs[j] = partyIDs[j], partyIDs[i] }

// Valid reports whether the slice is strictly increasing and contains no
// reserved ID. This is the well-formedness condition for an index set: it
// implies both sortedness and the absence of duplicates.
func (partyIDs IDSlice) Valid() bool {
	if len(partyIDs) == 0 {
		return false
	}
	if !partyIDs[0].Valid() {
		return false
	}
	for i := 1; i < len(partyIDs); i++ {
		if partyIDs[i-1] >= partyIDs[i] {
			return false
		}
	}
	return true
}

// Contains returns true if partyIDs contains all the given ids.
// Assumes that partyIDs is sorted.
func (partyIDs IDSlice) Contains(ids ...ID) bool {
	for _, id := range ids {
		if _, ok := partyIDs.Search(id); !ok {
			return false
		}
	}
	return true
}

// GetIndex returns the index of id in partyIDs, or -1 if it is absent.
// Assumes that partyIDs is sorted.
func (partyIDs IDSlice) GetIndex(id ID) int {
	if idx, ok := partyIDs.Search(id); ok {
		return idx
	}
	return -1
}

// Search returns the position of x in the slice, like sort.SearchInts.
func (partyIDs IDSlice) Search(x ID) (int, bool) {
	index := sort.Search(len(partyIDs), func(i int) bool { return partyIDs[i] >= x })
	if index >= 0 && index < len(partyIDs) && partyIDs[index] == x {
		return index, true
	}
	return 0, false
}

// Copy returns a new sorted copy of the slice.
func (partyIDs IDSlice) Copy() IDSlice {
	a := make(IDSlice, len(partyIDs))
	copy(a, partyIDs)
	sort.Sort(a)
	return a
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
// It writes the length of the slice followed by each ID, so that two
// different slices can never produce the same byte stream.
func (partyIDs IDSlice) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.BigEndian, uint64(len(partyIDs))); err != nil {
		return 0, err
	}
	nAll := int64(8)
	for _, id := range partyIDs {
		n, err := w.Write(id.Bytes())
		nAll += int64(n)
		if err != nil {
			return nAll, err
		}
	}
	return nAll, nil
}

// Domain implements hash.WriterToWithDomain, and separates this type within hash.Hash.
func (IDSlice) Domain() string {
	return "IDSlice"
}
