package permenum_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/dgprune/instance"
	"github.com/katalvlaran/dgprune/internal/testutil"
	"github.com/katalvlaran/dgprune/permenum"
)

func TestPermEnumerator_TestA_EnumeratesAllOrders(t *testing.T) {
	inst, err := instance.New(testutil.FixtureTestA())
	if err != nil {
		t.Fatalf("New(testA): %v", err)
	}

	pe := permenum.New(inst)
	seen := make(map[string]bool)
	for {
		_, _, ok := pe.Next()
		if !ok {
			break
		}
		if len(pe.Prefix()) == inst.NumEdges() {
			seen[fmt.Sprint(pe.Prefix())] = true
			pe.Prune()
		}
	}

	if len(seen) != 6 {
		t.Fatalf("enumerated %d distinct complete orderings, want 6 (3!)", len(seen))
	}
}

// TestPermEnumerator_DiscardsNoOpEdge exercises testE: edge 2's single
// incident segment is also covered by edge 1, so once edge 1 is placed
// edge 2 becomes a no-op and must be silently skipped.
func TestPermEnumerator_DiscardsNoOpEdge(t *testing.T) {
	inst, err := instance.New(testutil.FixtureTestE())
	if err != nil {
		t.Fatalf("New(testE): %v", err)
	}

	pe := permenum.New(inst)

	_, eid, ok := pe.Next()
	if !ok || eid != 1 {
		t.Fatalf("first Next() = (eid=%d, ok=%v), want (1, true)", eid, ok)
	}

	_, eid, ok = pe.Next()
	if !ok || eid != 3 {
		t.Fatalf("second Next() = (eid=%d, ok=%v), want (3, true): edge 2 should be silently discarded", eid, ok)
	}

	prefix := pe.Prefix()
	for _, p := range prefix {
		if p == 2 {
			t.Fatalf("Prefix() = %v, discarded edge 2 must never appear on the prefix", prefix)
		}
	}
}

func TestPermEnumerator_ExhaustionReturnsFalse(t *testing.T) {
	inst, err := instance.New(testutil.FixtureTestB())
	if err != nil {
		t.Fatalf("New(testB): %v", err)
	}

	pe := permenum.New(inst)
	steps := 0
	for {
		_, _, ok := pe.Next()
		if !ok {
			break
		}
		steps++
		if len(pe.Prefix()) == inst.NumEdges() {
			pe.Prune()
		}
		if steps > 1000 {
			t.Fatalf("enumerator did not terminate within 1000 steps")
		}
	}
	if len(pe.Prefix()) != 0 {
		t.Fatalf("Prefix() = %v after exhaustion, want empty", pe.Prefix())
	}
}
