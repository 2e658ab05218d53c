// Package orderedset provides OrderedKeySet, a deterministic ordered set
// of positive integer keys with O(log n) add/remove/min queries.
//
// The permutation enumerator that drives Branch-and-Bound needs to pop the
// smallest available edge id, and on backtrack find the smallest available
// id strictly greater than the one it just rejected. A hand-rolled BST
// with raw child/parent pointers can do this, but it is an implementation
// artefact to carry forward rather than a requirement: any self-balancing
// ordered structure satisfying O(log n) bounds is acceptable, so this
// wraps google/btree's generic BTreeG[int] instead of growing a bespoke
// pointer graph.
package orderedset

import "github.com/google/btree"

// degree is the B-tree branching factor. google/btree recommends values in
// the 32-256 range for in-memory integer keys; 32 keeps nodes small, which
// suits the modest key counts (edge/segment ids) this package sees.
const degree = 32

func less(a, b int) bool { return a < b }

// OrderedKeySet is a dynamic set of positive integer keys supporting
// deterministic ordered traversal. The zero value is not usable; construct
// with New.
type OrderedKeySet struct {
	t *btree.BTreeG[int]
}

// New returns an empty OrderedKeySet.
func New() *OrderedKeySet {
	return &OrderedKeySet{t: btree.NewG(degree, less)}
}

// Add inserts k. Re-adding a key already present is a no-op.
func (s *OrderedKeySet) Add(k int) {
	s.t.ReplaceOrInsert(k)
}

// AddStrict inserts k, returning ErrDuplicateKey if it was already present.
// Used where a duplicate insertion signals accounting corruption rather
// than a benign re-add.
func (s *OrderedKeySet) AddStrict(k int) error {
	if _, existed := s.t.ReplaceOrInsert(k); existed {
		return ErrDuplicateKey
	}

	return nil
}

// Remove deletes k, reporting whether it was present. Removing an absent
// key is not an error; it simply reports false.
func (s *OrderedKeySet) Remove(k int) bool {
	_, existed := s.t.Delete(k)

	return existed
}

// Contains reports whether k is present.
func (s *OrderedKeySet) Contains(k int) bool {
	return s.t.Has(k)
}

// Len returns the number of keys currently in the set.
func (s *OrderedKeySet) Len() int {
	return s.t.Len()
}

// Min returns the smallest key and true, or (0, false) on an empty set.
func (s *OrderedKeySet) Min() (int, bool) {
	return s.t.Min()
}

// MinGreaterThan returns the smallest key strictly greater than k, and
// true, or (0, false) if no such key exists.
func (s *OrderedKeySet) MinGreaterThan(k int) (int, bool) {
	var (
		found bool
		val   int
	)
	s.t.AscendGreaterOrEqual(k+1, func(item int) bool {
		val, found = item, true

		return false // stop after the first item, which is the smallest >= k+1
	})

	return val, found
}

// PopMin removes and returns the smallest key, or (0, false) on an empty
// set.
func (s *OrderedKeySet) PopMin() (int, bool) {
	k, ok := s.t.Min()
	if !ok {
		return 0, false
	}
	s.t.Delete(k)

	return k, true
}

// PopMinGreaterThan removes and returns the smallest key strictly greater
// than k, or (0, false) if no such key exists.
func (s *OrderedKeySet) PopMinGreaterThan(k int) (int, bool) {
	v, ok := s.MinGreaterThan(k)
	if !ok {
		return 0, false
	}
	s.t.Delete(v)

	return v, true
}
