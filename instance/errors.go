// Package instance: sentinel error set.
//
// ERROR PRIORITY (enforced by construction order): empty input -> malformed
// edge record -> segment overflow. Lookup sentinels (unknown edge/segment)
// are only reachable post-construction, via programmer misuse of an id.
package instance

import "errors"

var (
	// ErrInputFile is returned when the .nmr file cannot be opened or read.
	ErrInputFile = errors.New("instance: input file error")

	// ErrEmptyInput is returned when the edge list to build from is empty.
	ErrEmptyInput = errors.New("instance: empty edge list")

	// ErrMalformedEdge is returned for an (i, j) record that is not a pair
	// of positive integers with i < j.
	ErrMalformedEdge = errors.New("instance: malformed edge record")

	// ErrSegmentOverflow is returned when a derived segment would need a
	// length greater than 63 atoms, which cannot be represented as a
	// saturating 64-bit power-of-two weight (see weights.ErrOverflow).
	ErrSegmentOverflow = errors.New("instance: segment length overflow")

	// ErrUnknownEdge is returned when an eid outside [1, NumEdges] is used.
	ErrUnknownEdge = errors.New("instance: unknown edge id")

	// ErrUnknownSegment is returned when a sid outside [1, NumSegments] is used.
	ErrUnknownSegment = errors.New("instance: unknown segment id")
)
