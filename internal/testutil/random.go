// random.go - RandomNMR(n, p, seed), a deterministic Erdős–Rényi-like
// generator of raw (i, j) edge records over atoms [1, n].
//
// Canonical model (adapted from the teacher's RandomSparse):
//   - include each unordered pair {i, j}, i < j, independently with
//     probability p.
//   - iterate i asc, then j asc (j>i): a stable, deterministic trial
//     order so a fixed seed always reproduces the same edge set.
//   - emit raw integer pairs rather than populate a core.Graph: atoms are
//     chain positions consumed directly by instance.New, not generic
//     graph vertices.
//
// Contract:
//   - n >= 1 (else ErrTooFewAtoms).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - deterministic outcome for a fixed (n, p, seed) triple.
package testutil

import "math/rand"

// RandomNMR samples a synthetic .nmr edge list: every unordered pair of
// atoms in [1, n] is included independently with probability p, using a
// seeded RNG so the result is fully reproducible.
func RandomNMR(n int, p float64, seed int64) ([][2]int, error) {
	if n < 1 {
		return nil, ErrTooFewAtoms
	}
	if p < 0.0 || p > 1.0 {
		return nil, ErrInvalidProbability
	}

	rng := rand.New(rand.NewSource(seed))
	pairs := make([][2]int, 0, n)
	var i, j int
	for i = 1; i <= n; i++ {
		for j = i + 1; j <= n; j++ {
			if rng.Float64() <= p {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return pairs, nil
}
