package kociemba

import (
	"testing"
)

// TestSolveSolvedCube exercises the full table-build-then-search path
// on an already-solved cube. Table construction (class, move, and
// pruning tables) runs once and is cached in-process, so this is slow
// the first time a test binary calls Solve; skipped under -short.
func TestSolveSolvedCube(t *testing.T) {
	if testing.Short() {
		t.Skip("builds full pruning tables; skip under -short")
	}
	got, err := Solve(solvedFacelet, SolveOptions{CacheDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Solve(solved) = %v", err)
	}
	if got != "" {
		t.Errorf("Solve(solved) = %q, want empty move string", got)
	}
}

func TestSolveScrambledCube(t *testing.T) {
	if testing.Short() {
		t.Skip("builds full pruning tables; skip under -short")
	}
	scrambled, err := Scramble(Identity(), "U3 D2 R3 L2 F3")
	if err != nil {
		t.Fatalf("Scramble: %v", err)
	}
	moveStr, err := SolveState(scrambled, SolveOptions{CacheDir: t.TempDir(), MaxLength: 20, TimeoutSeconds: 10})
	if err != nil {
		t.Fatalf("SolveState(scrambled) = %v", err)
	}
	moves, err := ParseMoveString(moveStr)
	if err != nil {
		t.Fatalf("ParseMoveString(%q) = %v", moveStr, err)
	}
	if len(moves) > 20 {
		t.Errorf("solution length %d exceeds maxLength 20", len(moves))
	}
	result := scrambled
	for _, m := range moves {
		result = result.ApplyMove(m)
	}
	if !result.Equal(Identity()) {
		t.Errorf("applying solution to scrambled cube did not reach solved state")
	}
}

func TestSolveInvalidFacelet(t *testing.T) {
	_, err := Solve("UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBX", SolveOptions{})
	if kind, ok := AsSolverError(err); !ok || kind != ErrInvalidFacelet {
		t.Errorf("Solve(bad facelet) kind = %v, ok=%v, want ErrInvalidFacelet", kind, ok)
	}
}
