// Package sbbu produces a fast heuristic edge ordering used to seed the
// upper bound for BB's search.
package sbbu

import (
	"sort"

	"github.com/katalvlaran/dgprune/costmodel"
	"github.com/katalvlaran/dgprune/instance"
	"github.com/katalvlaran/dgprune/weights"
)

// Order sorts inst's pruning-edge ids ascending on (e.j, -e.i) — primary
// key e.j ascending, tie-broken by e.i descending, so that at equal
// right endpoint the narrower interval sorts first. Edges that close
// early and claim small segments first tend to produce a good initial
// bound cheaply. Returns the ordering and its cost.
func Order(inst *instance.Instance) ([]int, weights.Weight) {
	edges := inst.Edges()
	order := make([]int, len(edges))
	for idx, e := range edges {
		order[idx] = e.ID
	}

	sort.Slice(order, func(a, b int) bool {
		ea, _ := inst.Edge(order[a])
		eb, _ := inst.Edge(order[b])
		if ea.J != eb.J {
			return ea.J < eb.J
		}

		return ea.I > eb.I
	})

	return order, costmodel.CostOfOrder(order, inst)
}
