package kociemba

import "testing"

func TestClassTableSizes(t *testing.T) {
	if testing.Short() {
		t.Skip("builds full class tables; skip under -short")
	}
	ct, err := buildClassTables()
	if err != nil {
		t.Fatalf("buildClassTables: %v", err)
	}
	if len(ct.flipSliceRep) != flipSliceClassMax {
		t.Errorf("flipSliceRep has %d entries, want %d", len(ct.flipSliceRep), flipSliceClassMax)
	}
	if len(ct.cornerRep) != cornerClassMax {
		t.Errorf("cornerRep has %d entries, want %d", len(ct.cornerRep), cornerClassMax)
	}
}

// TestPruningTablesSolvedDepthZero builds the full table set once and
// checks the solved state's pruning depth is 0 in both phases.
func TestPruningTablesSolvedDepthZero(t *testing.T) {
	if testing.Short() {
		t.Skip("builds full pruning tables; skip under -short")
	}
	buildSymmetryLayer()
	tb, err := buildAllTables()
	if err != nil {
		t.Fatalf("buildAllTables: %v", err)
	}
	if d := phase1Distance(tb, 0, 0, 0); d != 0 {
		t.Errorf("phase1Distance(solved) = %d, want 0", d)
	}
	if d := phase2Distance(tb, 0, 0); d != 0 {
		t.Errorf("phase2Distance(solved) = %d, want 0", d)
	}

	// A single move away from solved is at phase-1 distance 1, except the
	// 10 phase-2 generators, which keep twist, flip and slice at 0.
	for m := 0; m < numMoves; m++ {
		c := Identity().ApplyMove(m)
		d := phase1Distance(tb, getTwist(c), getFlip(c), getSliceSorted(c))
		want := 1
		if isPhase2Move(m) {
			want = 0
		}
		if d != want {
			t.Errorf("phase1Distance(%s) = %d, want %d", moveName(m), d, want)
		}
	}
}

func TestPacked2Table(t *testing.T) {
	tbl := newPacked2(100)
	for i := 0; i < 100; i++ {
		if getPacked2(tbl, i) != 3 {
			t.Fatalf("newPacked2 entry %d = %d, want 3 (unfilled)", i, getPacked2(tbl, i))
		}
	}
	setPacked2(tbl, 42, 2)
	if got := getPacked2(tbl, 42); got != 2 {
		t.Errorf("getPacked2(42) after setPacked2(42,2) = %d, want 2", got)
	}
	if got := getPacked2(tbl, 41); got != 3 {
		t.Errorf("adjacent entry 41 disturbed: got %d, want 3", got)
	}
	if got := getPacked2(tbl, 43); got != 3 {
		t.Errorf("adjacent entry 43 disturbed: got %d, want 3", got)
	}
}
