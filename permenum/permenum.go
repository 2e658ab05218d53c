// Package permenum drives BB's search over edge orderings. It owns the
// pool of edges still available to place, the current prefix, and the
// per-edge/per-segment counters that let it discard no-op edges and
// backtrack without re-scanning the whole instance.
package permenum

import (
	"github.com/katalvlaran/dgprune/instance"
	"github.com/katalvlaran/dgprune/orderedset"
)

// State is the enumerator's binary search mode.
type State int

const (
	// Normal extends the prefix by popping the smallest available edge.
	Normal State = iota
	// Pruned backtracks the prefix looking for the next untried branch.
	Pruned
)

func (s State) String() string {
	if s == Pruned {
		return "Pruned"
	}

	return "Normal"
}

// PermEnumerator enumerates orderings of an instance's pruning edges,
// silently skipping edges that would claim no new segment and
// backtracking to the next untried branch on Prune.
type PermEnumerator struct {
	inst *instance.Instance

	avail *orderedset.OrderedKeySet
	ord   []int
	state State

	inOrd      []bool // inOrd[eid]: eid currently on the prefix
	nUncovered []int  // nUncovered[eid]: incident segments of eid not yet claimed
	nCov       []int  // nCov[sid]: number of prefix edges currently covering sid
}

// New builds a PermEnumerator over inst with every pruning edge
// available and an empty prefix.
func New(inst *instance.Instance) *PermEnumerator {
	pe := &PermEnumerator{
		inst:       inst,
		avail:      orderedset.New(),
		ord:        make([]int, 0, inst.NumEdges()),
		state:      Normal,
		inOrd:      make([]bool, inst.NumEdges()+1),
		nUncovered: make([]int, inst.NumEdges()+1),
		nCov:       make([]int, inst.NumSegments()+1),
	}
	for _, e := range inst.Edges() {
		pe.avail.Add(e.ID)
		sids, _ := inst.CovEdge(e.ID)
		pe.nUncovered[e.ID] = len(sids)
	}

	return pe
}

// State reports the enumerator's current mode.
func (pe *PermEnumerator) State() State { return pe.state }

// Prefix returns the current ordered prefix of placed edge ids. The
// returned slice is owned by the caller; it is a snapshot, not a live
// view.
func (pe *PermEnumerator) Prefix() []int {
	out := make([]int, len(pe.ord))
	copy(out, pe.ord)

	return out
}

// Prune switches the enumerator into Pruned state: the next call to
// Next backtracks the current prefix instead of extending it.
func (pe *PermEnumerator) Prune() { pe.state = Pruned }

// Next advances the enumerator by one logical step, returning the edge
// ids removed from the prefix during any backtracking this call
// performed (oldest-removed first), the edge id placed (if any), and
// whether a placement occurred. ok is false only when the search space
// is fully exhausted: the prefix is empty and no untried branch
// remains.
func (pe *PermEnumerator) Next() (removed []int, eid int, ok bool) {
	for {
		switch pe.state {
		case Normal:
			e, has := pe.avail.PopMin()
			if !has {
				pe.state = Pruned
				continue
			}
			if pe.nUncovered[e] == 0 {
				continue // no-op edge: discard, neither placed nor kept available
			}
			pe.place(e)

			return removed, e, true

		case Pruned:
			if len(pe.ord) == 0 {
				return removed, 0, false
			}
			removed = append(removed, pe.unplace())

			e, has := pe.avail.PopMinGreaterThan(removed[len(removed)-1])
			if !has {
				continue // no untried branch at this position; keep backtracking
			}
			if pe.nUncovered[e] == 0 {
				continue // next candidate is itself a no-op; discard and keep looking
			}
			pe.place(e)
			pe.state = Normal

			return removed, e, true
		}
	}
}

// place appends eid to the prefix and updates nCov/nUncovered for every
// segment it newly claims.
func (pe *PermEnumerator) place(eid int) {
	pe.ord = append(pe.ord, eid)
	pe.inOrd[eid] = true

	sids, _ := pe.inst.CovEdge(eid)
	for _, sid := range sids {
		pe.nCov[sid]++
		if pe.nCov[sid] == 1 {
			covering, _ := pe.inst.CovSegment(sid)
			for _, other := range covering {
				pe.nUncovered[other]--
			}
		}
	}
}

// unplace pops the last placed edge off the prefix, reverts nCov for
// its incident segments, and re-admits into avail any edge whose
// nUncovered becomes positive again and is not already placed or
// available — including the popped edge itself.
func (pe *PermEnumerator) unplace() int {
	eid := pe.ord[len(pe.ord)-1]
	pe.ord = pe.ord[:len(pe.ord)-1]
	pe.inOrd[eid] = false

	sids, _ := pe.inst.CovEdge(eid)
	for _, sid := range sids {
		pe.nCov[sid]--
		if pe.nCov[sid] == 0 {
			covering, _ := pe.inst.CovSegment(sid)
			for _, other := range covering {
				pe.nUncovered[other]++
				if pe.nUncovered[other] > 0 && !pe.inOrd[other] && !pe.avail.Contains(other) {
					pe.avail.Add(other)
				}
			}
		}
	}

	return eid
}
