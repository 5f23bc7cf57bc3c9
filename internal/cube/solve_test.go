package cube

import (
	"testing"

	"github.com/ehrlich-b/cube/internal/kociemba"
	"github.com/ehrlich-b/cube/pkg/types"
)

func TestSolveScrambledCube(t *testing.T) {
	if testing.Short() {
		t.Skip("builds full pruning tables; skip under -short")
	}

	c := New()
	c.ApplyMoves([]types.Move{
		{Face: types.FaceU, Turn: types.TurnCCW},
		{Face: types.FaceD, Turn: types.Turn180},
		{Face: types.FaceR, Turn: types.TurnCCW},
		{Face: types.FaceL, Turn: types.Turn180},
		{Face: types.FaceF, Turn: types.TurnCCW},
	})

	moves, err := c.Solve(kociemba.SolveOptions{CacheDir: t.TempDir(), MaxLength: 20, TimeoutSeconds: 10})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	c.ApplyMoves(moves)
	if !c.IsSolved() {
		t.Errorf("cube not solved after applying solution %v", moves)
	}
}

func TestSolveAlreadySolvedCube(t *testing.T) {
	if testing.Short() {
		t.Skip("builds full pruning tables; skip under -short")
	}

	c := New()
	moves, err := c.Solve(kociemba.SolveOptions{CacheDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(moves) != 0 {
		t.Errorf("Solve(solved) = %v, want empty", moves)
	}
}
