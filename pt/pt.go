// Package pt implements the precedence-tree search: an alternative
// exact strategy to bb that assigns each segment to one of its
// covering edges directly, maintaining a dynamic precedence graph so
// an assignment is only legal when it cannot create a cycle in the
// implied edge order.
package pt

import (
	"sort"
	"time"

	"github.com/katalvlaran/dgprune/instance"
	"github.com/katalvlaran/dgprune/sbbu"
	"github.com/katalvlaran/dgprune/weights"
)

// Result is the outcome of a precedence-tree search.
type Result struct {
	Order    []int
	Cost     weights.Weight
	TimedOut bool
}

// ptEngine holds all search state for a single Run.
type ptEngine struct {
	inst *instance.Instance
	ordS []int

	preds    [][]int // preds[eid]: direct predecessors of eid
	assigned [][]int // assigned[eid]: segments currently claimed by eid
	segOwner []int   // segOwner[sid]: eid currently claiming sid, 0 if unassigned
	ek       []int   // ek[eid]: segments in the unprocessed suffix still incident to eid
	edgeCost []weights.Weight

	costAcc weights.Weight
	costUB  weights.Weight

	bestPreds []([]int)
	foundAny  bool

	useDeadline bool
	deadline    time.Time
	steps       int
	timedOut    bool
}

// deadlineCheck performs a sparse wall-clock test so the common case
// costs nothing.
func (e *ptEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// isAncestor reports whether target is reachable from of by walking
// preds transitively — i.e. whether target is already required to
// precede of.
func (e *ptEngine) isAncestor(of, target int) bool {
	visited := make([]bool, len(e.preds))
	stack := []int{of}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		for _, p := range e.preds[cur] {
			if p == target {
				return true
			}
			if !visited[p] {
				stack = append(stack, p)
			}
		}
	}

	return false
}

// available reports whether eidA may legally claim sid: no other edge
// covering sid may already be a forced predecessor of eidA, since
// claiming sid would require every other covering edge to follow it.
func (e *ptEngine) available(eidA, sid int) bool {
	covS, _ := e.inst.CovSegment(sid)
	for _, eidB := range covS {
		if eidB == eidA {
			continue
		}
		if e.isAncestor(eidA, eidB) {
			return false
		}
	}

	return true
}

// candidates returns the edges currently able to legally claim sid, in
// ascending id order.
func (e *ptEngine) candidates(sid int) []int {
	covS, _ := e.inst.CovSegment(sid)
	out := make([]int, 0, len(covS))
	for _, eidA := range covS {
		if e.available(eidA, sid) {
			out = append(out, eidA)
		}
	}
	sort.Ints(out)

	return out
}

// Run searches inst for a segment-to-edge assignment minimizing total
// cost, returning within tmax (a non-positive tmax disables the
// deadline).
func Run(inst *instance.Instance, tmax time.Duration) (Result, error) {
	seedOrder, seedCost := sbbu.Order(inst)

	e := &ptEngine{
		inst:     inst,
		ordS:     segmentOrder(inst),
		preds:    make([][]int, inst.NumEdges()+1),
		assigned: make([][]int, inst.NumEdges()+1),
		segOwner: make([]int, inst.NumSegments()+1),
		ek:       make([]int, inst.NumEdges()+1),
		edgeCost: make([]weights.Weight, inst.NumEdges()+1),
		costUB:   seedCost,
	}
	for _, edge := range inst.Edges() {
		sids, _ := inst.CovEdge(edge.ID)
		e.ek[edge.ID] = len(sids)
	}
	if tmax > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(tmax)
	}

	e.search(0)

	if !e.foundAny {
		// Deadline hit before any complete assignment was found: timeout
		// is an observable outcome, not an error, so fall back to the
		// SBBU seed rather than failing the call.
		return Result{Order: seedOrder, Cost: seedCost, TimedOut: e.timedOut}, nil
	}

	order, err := buildOrder(inst, e.bestPreds)
	if err != nil {
		return Result{}, err
	}

	return Result{Order: order, Cost: e.costUB, TimedOut: e.timedOut}, nil
}

// search assigns ordS[pos:] by depth-first backtracking, recording a
// new incumbent whenever a complete assignment beats costUB.
func (e *ptEngine) search(pos int) {
	if e.timedOut {
		return
	}
	if e.deadlineCheck() {
		e.timedOut = true

		return
	}

	if pos == len(e.ordS) {
		if e.costAcc < e.costUB {
			e.costUB = e.costAcc
			e.bestPreds = clonePreds(e.preds)
			e.foundAny = true
		}

		return
	}

	sid := e.ordS[pos]
	for _, eidA := range e.candidates(sid) {
		addedPreds, finalized := e.place(eidA, sid)

		if e.costAcc < e.costUB {
			e.search(pos + 1)
		}

		e.unplace(eidA, sid, addedPreds, finalized)

		if e.timedOut {
			return
		}
	}
}

// place assigns sid to eidA, records the precedence edges the choice
// forces, and finalizes the cost of any edge whose ek counter reaches
// zero as a result.
func (e *ptEngine) place(eidA, sid int) (addedPreds, finalized []int) {
	e.segOwner[sid] = eidA
	e.assigned[eidA] = append(e.assigned[eidA], sid)

	covS, _ := e.inst.CovSegment(sid)
	for _, eidB := range covS {
		if eidB == eidA || containsInt(e.preds[eidB], eidA) {
			continue
		}
		e.preds[eidB] = append(e.preds[eidB], eidA)
		addedPreds = append(addedPreds, eidB)
	}

	for _, eid := range covS {
		e.ek[eid]--
		if e.ek[eid] == 0 {
			cost := e.finalCost(eid)
			before := e.costAcc
			e.costAcc = weights.Add(e.costAcc, cost)
			// Store what was actually added, so unplace restores costAcc
			// exactly even when the addition saturated at weights.Max.
			e.edgeCost[eid] = e.costAcc - before
			finalized = append(finalized, eid)
		}
	}

	return addedPreds, finalized
}

// finalCost computes eid's contribution: the product of the weights of
// the segments assigned to it, capped against the remaining budget.
func (e *ptEngine) finalCost(eid int) weights.Weight {
	budget := weights.Sub(e.costUB, e.costAcc)
	var product weights.Weight = 1
	for _, sid := range e.assigned[eid] {
		seg, err := e.inst.Segment(sid)
		if err != nil {
			continue
		}
		product = weights.MulCapped(product, seg.Weight, budget)
	}
	if product == 1 {
		return 0
	}

	return product
}

// unplace reverts exactly what place did, in reverse order.
func (e *ptEngine) unplace(eidA, sid int, addedPreds, finalized []int) {
	for i := len(finalized) - 1; i >= 0; i-- {
		eid := finalized[i]
		e.costAcc = weights.Sub(e.costAcc, e.edgeCost[eid])
		e.edgeCost[eid] = 0
	}

	covS, _ := e.inst.CovSegment(sid)
	for _, eid := range covS {
		e.ek[eid]++
	}

	for i := len(addedPreds) - 1; i >= 0; i-- {
		eidB := addedPreds[i]
		e.preds[eidB] = e.preds[eidB][:len(e.preds[eidB])-1]
	}

	e.assigned[eidA] = e.assigned[eidA][:len(e.assigned[eidA])-1]
	e.segOwner[sid] = 0
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}

	return false
}

func clonePreds(preds [][]int) [][]int {
	out := make([][]int, len(preds))
	for i, p := range preds {
		out[i] = append([]int(nil), p...)
	}

	return out
}
