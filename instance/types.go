// Package instance models a Distance Geometry pruning-edge instance: the
// atoms, the pruning edges between them, the segments they induce, and the
// bipartite incidence between the two.
//
// An Instance is immutable after construction (§5): it owns both
// collections and stores the incidence relation as two sorted id lists,
// one per side, rather than letting edges and segments hold mutable
// back-references to each other — that avoids the reference cycle a
// pointer-based incidence model would create.
package instance

import "github.com/katalvlaran/dgprune/weights"

// Edge is a pruning edge (i, j) with j > i+3, identified by a stable
// 1-based id assigned in input order among the retained pruning edges.
type Edge struct {
	ID int // eid, 1-based
	I  int // left atom
	J  int // right atom, J > I+3
}

// Segment is a maximal contiguous atom range [SI, SJ] covered by exactly
// the same set of pruning edges, identified by a stable 1-based id
// assigned in ascending-atom order. Weight is 2^(SJ-SI+1).
type Segment struct {
	ID     int // sid, 1-based
	SI     int // first atom
	SJ     int // last atom
	Weight weights.Weight
}

// Instance is a fully constructed, immutable pruning-edge instance.
//
// edgeSegs[eid-1] and segEdges[sid-1] are the two sorted-ascending id
// lists realising the bipartite incidence relation cov; callers must
// treat the slices returned by CovEdge/CovSegment as read-only, the same
// convention core.Graph uses for its own accessors.
type Instance struct {
	nNodes   int
	edges    []*Edge
	segments []*Segment
	edgeSegs [][]int // cov(e): sorted segment ids, indexed by eid-1
	segEdges [][]int // cov(s): sorted edge ids, indexed by sid-1
}

// NNodes returns the maximum atom index seen across all input edge
// records, including those discarded for not being pruning edges.
func (inst *Instance) NNodes() int { return inst.nNodes }

// NumEdges returns the number of pruning edges.
func (inst *Instance) NumEdges() int { return len(inst.edges) }

// NumSegments returns the number of segments.
func (inst *Instance) NumSegments() int { return len(inst.segments) }

// Edge returns the pruning edge with the given 1-based id.
func (inst *Instance) Edge(eid int) (*Edge, error) {
	if eid < 1 || eid > len(inst.edges) {
		return nil, ErrUnknownEdge
	}

	return inst.edges[eid-1], nil
}

// Segment returns the segment with the given 1-based id.
func (inst *Instance) Segment(sid int) (*Segment, error) {
	if sid < 1 || sid > len(inst.segments) {
		return nil, ErrUnknownSegment
	}

	return inst.segments[sid-1], nil
}

// Edges returns all pruning edges, indexed by eid-1; read-only.
func (inst *Instance) Edges() []*Edge { return inst.edges }

// Segments returns all segments, indexed by sid-1; read-only.
func (inst *Instance) Segments() []*Segment { return inst.segments }

// CovEdge returns the sorted-ascending segment ids incident to eid.
func (inst *Instance) CovEdge(eid int) ([]int, error) {
	if eid < 1 || eid > len(inst.edgeSegs) {
		return nil, ErrUnknownEdge
	}

	return inst.edgeSegs[eid-1], nil
}

// CovSegment returns the sorted-ascending edge ids incident to sid.
func (inst *Instance) CovSegment(sid int) ([]int, error) {
	if sid < 1 || sid > len(inst.segEdges) {
		return nil, ErrUnknownSegment
	}

	return inst.segEdges[sid-1], nil
}

// TotalWeight returns the sum of every segment's weight — cost_relax over
// the full segment set, used by BB to seed cost_relax_all.
func (inst *Instance) TotalWeight() weights.Weight {
	var total weights.Weight
	for _, s := range inst.segments {
		total = weights.Add(total, s.Weight)
	}

	return total
}
