// Package instance — construction.
//
// New turns a list of raw (i, j) edge records into a fully incident
// Instance. Segment derivation (§4.3) is phrased in spec.md as a walk over
// every covered atom, grouping consecutive atoms that share an identical
// covering-edge set. That walk only ever changes state at an edge's start
// (i+3) or end+1 (j+1) atom, so rather than iterating every atom up to
// NNodes, this sweeps over just those O(E) breakpoints — the atoms
// between two consecutive breakpoints always share one covering set by
// construction, which is exactly the segment definition.
package instance

import (
	"sort"

	"github.com/katalvlaran/dgprune/weights"
)

// pruningMargin is the "+3" in "j > i+3": an edge only prunes atoms from
// e.i+3 through e.j inclusive.
const pruningMargin = 3

// New builds an Instance from raw (i, j) edge records, in input order.
// Records with j <= i+3 are kept only for NNodes and discarded as pruning
// edges. Returns ErrEmptyInput on an empty list, ErrMalformedEdge for any
// record that is not a pair of positive integers with i < j, and
// ErrSegmentOverflow if a derived segment would need a length > 63.
func New(pairs [][2]int) (*Instance, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyInput
	}

	var nNodes int
	edges := make([]*Edge, 0, len(pairs))
	for _, p := range pairs {
		i, j := p[0], p[1]
		if i < 1 || j < 1 || i >= j {
			return nil, ErrMalformedEdge
		}
		if j > nNodes {
			nNodes = j
		}
		if j > i+pruningMargin {
			edges = append(edges, &Edge{ID: len(edges) + 1, I: i, J: j})
		}
	}

	segments, edgeSegs, segEdges, err := deriveSegments(edges)
	if err != nil {
		return nil, err
	}

	return &Instance{
		nNodes:   nNodes,
		edges:    edges,
		segments: segments,
		edgeSegs: edgeSegs,
		segEdges: segEdges,
	}, nil
}

// deriveSegments computes segments and the two incidence lists via a
// coordinate-compressed sweep over edge start/end breakpoints.
func deriveSegments(edges []*Edge) ([]*Segment, [][]int, [][]int, error) {
	edgeSegs := make([][]int, len(edges))

	if len(edges) == 0 {
		return nil, edgeSegs, nil, nil
	}

	// starts[a] / ends[a] list the eids whose coverage begins / (ends+1) at
	// atom a; "ends" is keyed by j+1 so the half-open convention [start,
	// end) maps directly onto breakpoints.
	starts := make(map[int][]int)
	ends := make(map[int][]int)
	breakSet := make(map[int]struct{})
	for _, e := range edges {
		start := e.I + pruningMargin
		end := e.J + 1
		starts[start] = append(starts[start], e.ID)
		ends[end] = append(ends[end], e.ID)
		breakSet[start] = struct{}{}
		breakSet[end] = struct{}{}
	}

	breakpoints := make([]int, 0, len(breakSet))
	for b := range breakSet {
		breakpoints = append(breakpoints, b)
	}
	sort.Ints(breakpoints)

	var (
		segments []*Segment
		segEdges [][]int
		active   = make([]int, 0, len(edges)) // kept sorted ascending
	)

	removeActive := func(eid int) {
		for idx, v := range active {
			if v == eid {
				active = append(active[:idx], active[idx+1:]...)
				return
			}
		}
	}
	insertActive := func(eid int) {
		idx := sort.SearchInts(active, eid)
		active = append(active, 0)
		copy(active[idx+1:], active[idx:])
		active[idx] = eid
	}

	for idx, b := range breakpoints {
		for _, eid := range ends[b] {
			removeActive(eid)
		}
		for _, eid := range starts[b] {
			insertActive(eid)
		}
		if len(active) == 0 {
			continue
		}

		// Every active edge has a scheduled end breakpoint at or after b,
		// so a following breakpoint is guaranteed to exist here.
		segEnd := breakpoints[idx+1] - 1
		length := segEnd - b + 1
		weight, werr := weights.Pow2(length)
		if werr != nil {
			return nil, nil, nil, ErrSegmentOverflow
		}

		sid := len(segments) + 1
		seg := &Segment{ID: sid, SI: b, SJ: segEnd, Weight: weight}
		segments = append(segments, seg)

		cov := make([]int, len(active))
		copy(cov, active)
		segEdges = append(segEdges, cov)
		for _, eid := range active {
			edgeSegs[eid-1] = append(edgeSegs[eid-1], sid)
		}
	}

	return segments, edgeSegs, segEdges, nil
}
