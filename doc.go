// Package dgprune finds a minimum-cost linearisation of the pruning edges
// of a Distance Geometry instance used in NMR-based molecular structure
// determination.
//
// A structure-determination run walks a growing set of "pruning edges" —
// distance constraints between atoms more than three residues apart — and
// folds each one into a Branch-and-Prune tree search. The order in which
// those edges are folded in has a large effect on how much of the tree gets
// pruned early, so this module computes a good order up front: a
// segmentation model turns the edge set into weighted segments, a
// sort-based heuristic (SBBU) seeds a cheap initial order, and an exact
// Branch-and-Bound or Precedence-Tree search refines it to the true
// minimum under a wall-clock deadline. A brute-force oracle exists for
// testing small instances exhaustively.
//
// Molecular modelling, distance measurement, and the downstream
// Branch-and-Prune tree search itself are out of scope: this module's
// contract is exactly (cost, order) for a given instance.
//
// Package layout:
//
//	weights/       — saturating 64-bit weight arithmetic
//	orderedset/    — OrderedKeySet, an ordered integer-key container
//	instance/      — .nmr loading, segmentation, incidence, diagnostics
//	costmodel/     — CostOfOrder, CostRelax
//	sbbu/          — the sort-based heuristic
//	brute/         — lexicographic oracle (tests only)
//	permenum/      — PermEnumerator, the edge-ordering generator
//	bb/            — Branch-and-Bound search
//	pt/            — Precedence-Tree search
//	internal/testutil/ — synthetic .nmr instance generator
//	cmd/dgprune/   — CLI driver
//
// core/ and dfs/ are generic in-memory graph and traversal primitives used
// by instance/ and pt/ for diagnostic views — the incidence and precedence
// graphs they expose are never on the solve hot path.
//
//	go get github.com/katalvlaran/dgprune
package dgprune
