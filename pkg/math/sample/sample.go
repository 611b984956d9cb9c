package sample

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"

	"github.com/puzzlehq/aleo-frost/pkg/math/curve"
)

const maxIterations = 255

// ErrMaxIterations is returned when the randomness source failed to
// deliver usable bytes after too many attempts. Depending on the source
// this is either a transient starvation or a permanently broken reader;
// either way the caller must abort the operation that needed the sample.
var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func readBits(rand io.Reader, buf []byte) error {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return nil
		}
	}
	return ErrMaxIterations
}

// Scalar returns a new scalar sampled uniformly from the group's scalar
// field. The source is read in double-width chunks and reduced modulo the
// group order, making the bias relative to uniform negligible.
//
// rand may be a true randomness source or the digest stream of a hash;
// the latter is how the hash-to-scalar functions are built.
func Scalar(rand io.Reader, group curve.Curve) (curve.Scalar, error) {
	buf := make([]byte, group.SafeScalarBytes())
	if err := readBits(rand, buf); err != nil {
		return nil, err
	}
	n := new(saferith.Nat).SetBytes(buf)
	return group.NewScalar().SetNat(n), nil
}

// ScalarUnit returns a new scalar sampled uniformly from the non-zero
// elements of the group's scalar field.
func ScalarUnit(rand io.Reader, group curve.Curve) (curve.Scalar, error) {
	for i := 0; i < maxIterations; i++ {
		s, err := Scalar(rand, group)
		if err != nil {
			return nil, err
		}
		if !s.IsZero() {
			return s, nil
		}
	}
	return nil, ErrMaxIterations
}

// ScalarPointPair returns a new scalar x with its public image x⋅G.
func ScalarPointPair(rand io.Reader, group curve.Curve) (curve.Scalar, curve.Point, error) {
	s, err := Scalar(rand, group)
	if err != nil {
		return nil, nil, err
	}
	return s, s.ActOnBase(), nil
}
