package testutil

import "errors"

var (
	// ErrTooFewAtoms is returned when RandomNMR is asked for fewer than 1 atom.
	ErrTooFewAtoms = errors.New("testutil: n must be >= 1")

	// ErrInvalidProbability is returned when p lies outside [0, 1].
	ErrInvalidProbability = errors.New("testutil: p must be in [0, 1]")
)
