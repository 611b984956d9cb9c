package test

import (
	"io"

	"github.com/puzzlehq/aleo-frost/pkg/account"
	"github.com/puzzlehq/aleo-frost/pkg/dealer"
	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
)

// GenerateShares deals a fresh account split into count shares with the
// given threshold. Helpers panic on key generation failures so the tests
// using them stay focused on protocol behavior.
func GenerateShares(group curve.Curve, threshold, count int, source io.Reader) (*account.PrivateKey, *dealer.Output) {
	priv, err := account.GenPrivateKey(group, source)
	if err != nil {
		panic(err)
	}
	output, err := dealer.Deal(priv, threshold, count, source)
	if err != nil {
		panic(err)
	}
	return priv, output
}
