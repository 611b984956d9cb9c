package party

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDSlice_GetIndex(t *testing.T) {
	tests := []struct {
		name        string
		partyIDs    IDSlice
		requestedID ID
		want        int
	}{
		{"empty", IDSlice{}, 1, -1},
		{"present", IDSlice{1, 2, 5}, 2, 1},
		{"first", IDSlice{1, 2, 5}, 1, 0},
		{"last", IDSlice{1, 2, 5}, 5, 2},
		{"absent", IDSlice{1, 2, 5}, 3, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.partyIDs.GetIndex(tt.requestedID); got != tt.want {
				t.Errorf("GetIndex() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIDSlice_Valid(t *testing.T) {
	tests := []struct {
		name     string
		partyIDs IDSlice
		want     bool
	}{
		{"empty", IDSlice{}, false},
		{"zero id", IDSlice{0, 1, 2}, false},
		{"duplicate", IDSlice{1, 2, 2}, false},
		{"unsorted", IDSlice{2, 1}, false},
		{"ok", IDSlice{1, 2, 3}, true},
		{"single", IDSlice{7}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.partyIDs.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewIDSlice_Sorts(t *testing.T) {
	ids := NewIDSlice([]ID{5, 1, 3})
	assert.Equal(t, IDSlice{1, 3, 5}, ids)
	assert.True(t, ids.Valid())
	assert.True(t, ids.Contains(1, 3, 5))
	assert.False(t, ids.Contains(2))
}
