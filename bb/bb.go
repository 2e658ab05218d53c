// Package bb implements the exact Branch-and-Bound search over
// pruning-edge orderings: a depth-first walk driven by a permenum
// enumerator, pruned by an admissible lower bound derived from
// unclaimed segment weight, seeded with an sbbu heuristic upper bound.
package bb

import (
	"time"

	"github.com/katalvlaran/dgprune/costmodel"
	"github.com/katalvlaran/dgprune/instance"
	"github.com/katalvlaran/dgprune/permenum"
	"github.com/katalvlaran/dgprune/sbbu"
	"github.com/katalvlaran/dgprune/weights"
)

// Result is the outcome of a Branch-and-Bound search.
type Result struct {
	Order    []int
	Cost     weights.Weight
	TimedOut bool
}

// bbEngine holds all search state. A dedicated struct (rather than
// closures over local variables) keeps the rollback/place/prune steps'
// dependencies explicit and the hot loop's state predictable.
type bbEngine struct {
	inst *instance.Instance
	pe   *permenum.PermEnumerator

	useDeadline bool
	deadline    time.Time
	steps       int

	costUB       weights.Weight
	bestOrder    []int
	costRelaxAll weights.Weight

	costAcc weights.Weight
	costRlx weights.Weight

	cov         []int            // cov[sid]: prefix edges currently covering sid
	edgeContrib []weights.Weight // edgeContrib[pos]: amount the prefix edge at pos added to costAcc

	timedOut bool
}

// deadlineCheck performs a sparse wall-clock test (every 4096 node
// events) so the common case costs nothing.
func (e *bbEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// rollback undoes the prefix positions the enumerator has already
// popped this Next() call, in the order they were removed.
func (e *bbEngine) rollback(removed []int) {
	for _, eid := range removed {
		pos := len(e.edgeContrib) - 1
		contrib := e.edgeContrib[pos]
		e.edgeContrib = e.edgeContrib[:pos]
		e.costAcc = weights.Sub(e.costAcc, contrib)

		sids, _ := e.inst.CovEdge(eid)
		for _, sid := range sids {
			e.cov[sid]--
			if e.cov[sid] == 0 {
				seg, _ := e.inst.Segment(sid)
				e.costRlx = weights.Add(e.costRlx, seg.Weight)
			}
		}
	}
}

// place claims eid's incident segments, computing its first-time cost
// against the remaining budget (costUB - costAcc) so a hopeless product
// short-circuits to weights.Max instead of continuing to multiply.
func (e *bbEngine) place(eid int) weights.Weight {
	sids, _ := e.inst.CovEdge(eid)
	var product weights.Weight = 1
	for _, sid := range sids {
		e.cov[sid]++
		if e.cov[sid] != 1 {
			continue
		}
		seg, _ := e.inst.Segment(sid)
		e.costRlx = weights.Sub(e.costRlx, seg.Weight)
		budget := weights.Sub(e.costUB, e.costAcc)
		product = weights.MulCapped(product, seg.Weight, budget)
	}

	edgeCost := product
	if product == 1 {
		edgeCost = 0
	}
	before := e.costAcc
	e.costAcc = weights.Add(e.costAcc, edgeCost)
	// Record what was actually added, so rollback restores costAcc
	// exactly even when the addition saturated at weights.Max.
	e.edgeContrib = append(e.edgeContrib, e.costAcc-before)

	return edgeCost
}

// fullOrder extends prefix with every edge id not already on it, in
// ascending order, producing a complete permutation. Edges still
// unplaced at the moment a prefix's cost_rlx reaches 0 are all no-ops
// for that prefix, so appending them in any order leaves the total
// cost unchanged.
func (e *bbEngine) fullOrder(prefix []int) []int {
	onPrefix := make([]bool, e.inst.NumEdges()+1)
	for _, eid := range prefix {
		onPrefix[eid] = true
	}
	full := make([]int, len(prefix), e.inst.NumEdges())
	copy(full, prefix)
	for _, edge := range e.inst.Edges() {
		if !onPrefix[edge.ID] {
			full = append(full, edge.ID)
		}
	}

	return full
}

// Run searches inst for an edge ordering minimizing costmodel.CostOfOrder,
// returning within tmax (a non-positive tmax disables the deadline).
func Run(inst *instance.Instance, tmax time.Duration) (Result, error) {
	seedOrder, seedCost := sbbu.Order(inst)
	costRelaxAll := inst.TotalWeight()

	e := &bbEngine{
		inst:         inst,
		pe:           permenum.New(inst),
		costUB:       seedCost,
		bestOrder:    seedOrder,
		costRelaxAll: costRelaxAll,
		costRlx:      costRelaxAll,
		cov:          make([]int, inst.NumSegments()+1),
	}
	if tmax > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(tmax)
	}

	if costRelaxAll == seedCost {
		return Result{Order: seedOrder, Cost: seedCost}, nil
	}

	for {
		if e.deadlineCheck() {
			e.timedOut = true

			break
		}

		removed, eid, ok := e.pe.Next()
		e.rollback(removed)
		if !ok {
			break
		}

		edgeCost := e.place(eid)
		costLb := weights.Add(e.costAcc, e.costRlx)
		if costLb < e.costRelaxAll {
			return Result{}, ErrInvariantViolation
		}

		if e.costRlx == 0 && costLb < e.costUB {
			e.costUB = costLb
			e.bestOrder = e.fullOrder(e.pe.Prefix())
			if costLb == e.costRelaxAll {
				break
			}
		}

		if costLb >= e.costUB || e.costRlx == 0 || edgeCost == 0 {
			e.pe.Prune()
		}
	}

	return Result{Order: e.bestOrder, Cost: costmodel.CostOfOrder(e.bestOrder, inst), TimedOut: e.timedOut}, nil
}
