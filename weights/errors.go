// Package weights: sentinel error set.
// This file defines ONLY package-level sentinel errors. All functions that
// can fail MUST return one of these via errors.Is; nothing here panics on
// user-triggered input.
package weights

import "errors"

var (
	// ErrOverflow is returned when a requested segment length would need a
	// weight that does not fit in the accepted range (length > 63).
	ErrOverflow = errors.New("weights: segment length overflows 64-bit weight")

	// ErrNegativeLength is returned when a segment length is not positive.
	ErrNegativeLength = errors.New("weights: segment length must be positive")
)
