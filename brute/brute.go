// Package brute enumerates every permutation of an instance's pruning
// edges in lexicographic order, tracking the best cost_of_order. It
// exists purely as a correctness oracle for small instances in tests —
// its cost grows factorially and it is never used on a real solve path.
package brute

import (
	"github.com/katalvlaran/dgprune/costmodel"
	"github.com/katalvlaran/dgprune/instance"
	"github.com/katalvlaran/dgprune/weights"
)

// Best enumerates all permutations of inst's pruning-edge ids and
// returns the lexicographically-first order achieving the minimum
// cost_of_order, along with that cost.
func Best(inst *instance.Instance) ([]int, weights.Weight) {
	edges := inst.Edges()
	ids := make([]int, len(edges))
	for idx, e := range edges {
		ids[idx] = e.ID
	}

	bestCost := weights.Max
	var bestOrder []int
	cur := make([]int, len(ids))
	copy(cur, ids) // ids is already ascending by construction (edges.ID is assigned in retention order)

	for {
		cost := costmodel.CostOfOrder(cur, inst, bestCost)
		if cost < bestCost {
			bestCost = cost
			bestOrder = append([]int(nil), cur...)
		}
		if !nextPermutation(cur) {
			break
		}
	}

	return bestOrder, bestCost
}

// nextPermutation rearranges cur into its next lexicographically greater
// permutation in place, reporting false once cur is already the final
// (fully descending) permutation.
func nextPermutation(cur []int) bool {
	n := len(cur)
	i := n - 2
	for i >= 0 && cur[i] >= cur[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	j := n - 1
	for cur[j] <= cur[i] {
		j--
	}
	cur[i], cur[j] = cur[j], cur[i]

	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		cur[l], cur[r] = cur[r], cur[l]
	}

	return true
}
