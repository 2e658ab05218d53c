package brute_test

import (
	"testing"

	"github.com/katalvlaran/dgprune/brute"
	"github.com/katalvlaran/dgprune/instance"
	"github.com/katalvlaran/dgprune/internal/testutil"
)

func TestBest_TestA(t *testing.T) {
	inst, err := instance.New(testutil.FixtureTestA())
	if err != nil {
		t.Fatalf("New(testA): %v", err)
	}

	order, cost := brute.Best(inst)
	if cost != 168 {
		t.Fatalf("cost = %d, want 168", cost)
	}
	want := []int{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for idx := range want {
		if order[idx] != want[idx] {
			t.Fatalf("order = %v, want %v (lexicographically-first optimum)", order, want)
		}
	}
}

func TestBest_TestB_AllTie(t *testing.T) {
	inst, err := instance.New(testutil.FixtureTestB())
	if err != nil {
		t.Fatalf("New(testB): %v", err)
	}
	_, cost := brute.Best(inst)
	if want := inst.TotalWeight(); cost != want {
		t.Fatalf("cost = %d, want %d (every order ties at full weight)", cost, want)
	}
}
