// ordseg.go - ord_S, the fixed segment visitation order PT's search
// walks: pruning edges sorted by descending |cov(e)|, each edge's own
// segments sorted by descending |cov(s)|, segments appended the first
// time they are seen.
package pt

import (
	"sort"

	"github.com/katalvlaran/dgprune/instance"
)

// segmentOrder computes ord_S for inst.
func segmentOrder(inst *instance.Instance) []int {
	edges := append([]*instance.Edge(nil), inst.Edges()...)
	sort.Slice(edges, func(a, b int) bool {
		ca, _ := inst.CovEdge(edges[a].ID)
		cb, _ := inst.CovEdge(edges[b].ID)
		if len(ca) != len(cb) {
			return len(ca) > len(cb)
		}

		return edges[a].ID < edges[b].ID
	})

	seen := make([]bool, inst.NumSegments()+1)
	ordS := make([]int, 0, inst.NumSegments())
	for _, e := range edges {
		sids, _ := inst.CovEdge(e.ID)
		segs := append([]int(nil), sids...)
		sort.Slice(segs, func(a, b int) bool {
			ca, _ := inst.CovSegment(segs[a])
			cb, _ := inst.CovSegment(segs[b])
			if len(ca) != len(cb) {
				return len(ca) > len(cb)
			}

			return segs[a] < segs[b]
		})
		for _, sid := range segs {
			if seen[sid] {
				continue
			}
			seen[sid] = true
			ordS = append(ordS, sid)
		}
	}

	return ordS
}
