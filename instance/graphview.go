// graphview.go - diagnostic bipartite edge/segment incidence view (§3
// EXPANDED). Never consulted by costmodel, bb, or pt, which operate
// exclusively on the sorted-id-list representation CovEdge/CovSegment
// stores; this exists purely for tests, logs, and optional Graphviz
// rendering of an instance's structure.
package instance

import (
	"fmt"

	"github.com/katalvlaran/dgprune/core"
)

const (
	edgeVertexPrefix    = "E"
	segmentVertexPrefix = "S"
)

// EdgeVertexID returns the diagnostic graph vertex id for a pruning edge.
func EdgeVertexID(eid int) string { return fmt.Sprintf("%s%d", edgeVertexPrefix, eid) }

// SegmentVertexID returns the diagnostic graph vertex id for a segment.
func SegmentVertexID(sid int) string { return fmt.Sprintf("%s%d", segmentVertexPrefix, sid) }

// DiagnosticGraph materialises inst's bipartite incidence relation cov as
// an undirected *core.Graph: one vertex per edge ("E<eid>"), one per
// segment ("S<sid>"), and one edge for every (e, s) in cov.
func (inst *Instance) DiagnosticGraph() (*core.Graph, error) {
	g := core.NewGraph()
	for _, e := range inst.edges {
		if err := g.AddVertex(EdgeVertexID(e.ID)); err != nil {
			return nil, err
		}
	}
	for _, s := range inst.segments {
		if err := g.AddVertex(SegmentVertexID(s.ID)); err != nil {
			return nil, err
		}
	}
	for _, e := range inst.edges {
		sids, _ := inst.CovEdge(e.ID)
		for _, sid := range sids {
			if _, err := g.AddEdge(EdgeVertexID(e.ID), SegmentVertexID(sid), 0); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
