// Package testutil provides fixtures and synthetic instance generation
// shared by this module's package tests: the literal scenario instances
// named in the testable-properties section, and a deterministic random
// generator for property-based and benchmark coverage beyond them.
package testutil

// FixtureTestA returns the raw (i, j) pairs for "testA": three pruning
// edges whose derived segments are exactly (4,5), (6,10), (11,15), (18,20),
// with SBBU order [1,2,3] and brute-force optimum cost 168.
func FixtureTestA() [][2]int {
	return [][2]int{{1, 10}, {3, 15}, {15, 20}}
}

// FixtureTestB returns "testB": three disjoint pruning edges each
// claiming a private length-3 segment (weight 8), so every ordering ties
// at the brute-force optimum cost 24 — including [3,2,1].
func FixtureTestB() [][2]int {
	return [][2]int{{1, 6}, {10, 15}, {20, 25}}
}

// FixtureTestC returns "testC": three pruning edges with partial,
// staggered overlap, used for BB-vs-brute agreement (P5/S4).
func FixtureTestC() [][2]int {
	return [][2]int{{1, 8}, {2, 10}, {5, 12}}
}

// FixtureTestD returns "testD": five pruning edges with varied overlap,
// used for BB-vs-brute agreement (P5/S4).
func FixtureTestD() [][2]int {
	return [][2]int{{1, 12}, {3, 9}, {6, 14}, {10, 16}, {2, 20}}
}

// FixtureTestE returns "testE": an edge whose coverage is a strict subset
// of another's, so it becomes a no-op once the wider edge is placed first
// — exercises PermEnumerator's no-op skip (§4.6) as well as BB-vs-brute
// agreement.
func FixtureTestE() [][2]int {
	return [][2]int{{1, 10}, {2, 8}, {15, 25}}
}

// FixtureTestF returns "testF": five pruning edges whose ascending-j,
// descending-i sort yields the eid order [1,2,5,4,3] (S3).
func FixtureTestF() [][2]int {
	return [][2]int{{1, 10}, {1, 14}, {1, 30}, {1, 26}, {1, 18}}
}

// SmallFixtures returns every fixture small enough (<=8 edges) to be
// checked against the brute-force oracle, i.e. testA through testE (S4).
func SmallFixtures() map[string][][2]int {
	return map[string][][2]int{
		"testA": FixtureTestA(),
		"testB": FixtureTestB(),
		"testC": FixtureTestC(),
		"testD": FixtureTestD(),
		"testE": FixtureTestE(),
	}
}
