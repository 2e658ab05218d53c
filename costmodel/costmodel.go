// Package costmodel implements the ordering cost function every search
// strategy (SBBU, brute force, BB, PT) optimizes: the total weight of
// segments claimed for the first time as edges are processed in a given
// order.
package costmodel

import (
	"github.com/katalvlaran/dgprune/instance"
	"github.com/katalvlaran/dgprune/weights"
)

// CostOfOrder walks order, an ordering of pruning-edge ids, accumulating
// the cost of claiming each edge's not-yet-claimed incident segments. The
// first-time cost of an edge is the product of the weights of its
// unclaimed incident segments; an edge with no unclaimed segments costs
// zero. The running sum saturates at weights.Max.
//
// An optional costUB short-circuits the walk: once the accumulated sum
// would reach or exceed costUB, CostOfOrder returns weights.Max
// immediately without completing the remaining edges. This lets a
// caller probe an order against a known upper bound without paying for
// the full walk when it is already hopeless.
func CostOfOrder(order []int, inst *instance.Instance, costUB ...weights.Weight) weights.Weight {
	ub := weights.Max
	if len(costUB) > 0 {
		ub = costUB[0]
	}

	claimed := make(map[int]bool, inst.NumSegments())
	var total weights.Weight
	for _, eid := range order {
		sids, err := inst.CovEdge(eid)
		if err != nil {
			continue
		}

		var product weights.Weight = 1
		for _, sid := range sids {
			if claimed[sid] {
				continue
			}
			seg, err := inst.Segment(sid)
			if err != nil {
				continue
			}
			product = weights.MulCapped(product, seg.Weight, weights.Max)
			claimed[sid] = true
		}

		if product == 1 {
			continue
		}

		total = weights.Add(total, product)
		if total >= ub {
			return weights.Max
		}
	}

	return total
}

// CostRelax returns the sum of the weights of the given segment ids —
// the tightest admissible lower bound on the cost still owed for
// claiming them, since every segment must eventually be claimed by some
// future edge for at least its own weight.
func CostRelax(segs []int, inst *instance.Instance) weights.Weight {
	var total weights.Weight
	for _, sid := range segs {
		seg, err := inst.Segment(sid)
		if err != nil {
			continue
		}
		total = weights.Add(total, seg.Weight)
	}

	return total
}
