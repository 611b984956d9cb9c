package test

import (
	"github.com/puzzlehq/aleo-frost/pkg/party"
)

// PartyIDs returns the canonical test ID set 1 through n, sorted.
func PartyIDs(n int) party.IDSlice {
	ids := make([]party.ID, n)
	for i := range ids {
		ids[i] = party.ID(i + 1)
	}
	return party.NewIDSlice(ids)
}
