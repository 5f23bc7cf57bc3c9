package cube

import (
	"testing"

	"github.com/ehrlich-b/cube/pkg/types"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := New()
	c.Move(R, 1)
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestRRRR_ReturnsToSolved(t *testing.T) {
	c := New()
	for i := 0; i < 4; i++ {
		c.Move(R, 1)
	}
	if !c.IsSolved() {
		t.Error("R R R R should return to solved")
		t.Log(c.String())
	}
}

func TestR2R2_ReturnsToSolved(t *testing.T) {
	c := New()
	c.Move(R, 2)
	c.Move(R, 2)
	if !c.IsSolved() {
		t.Error("R2 R2 should return to solved")
		t.Log(c.String())
	}
}

func TestQuadrupleMove_AllFaces_ReturnsToSolved(t *testing.T) {
	faces := []Face{U, D, F, B, R, L}
	for _, face := range faces {
		c := New()
		for i := 0; i < 4; i++ {
			c.Move(face, 1)
		}
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(c.String())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := New()
	for i := 0; i < 6; i++ {
		c.Move(R, 1)
		c.Move(U, 1)
		c.Move(R, -1)
		c.Move(U, -1)
	}
	if !c.IsSolved() {
		t.Error("sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestApplyTypesMove(t *testing.T) {
	c := New()
	c.ApplyMove(types.Move{Face: types.FaceR, Turn: types.TurnCW})
	if c.IsSolved() {
		t.Error("cube should not be solved after applying R move")
	}
	c.ApplyMove(types.Move{Face: types.FaceR, Turn: types.TurnCCW})
	if !c.IsSolved() {
		t.Error("cube should be solved after R R'")
	}
}

func TestToFromFaceletRoundTrip(t *testing.T) {
	c := New()
	c.ApplyMoves([]types.Move{
		{Face: types.FaceU, Turn: types.TurnCW},
		{Face: types.FaceR, Turn: types.Turn180},
		{Face: types.FaceF, Turn: types.TurnCCW},
	})

	facelet := c.ToFacelet()
	if len(facelet) != 54 {
		t.Fatalf("ToFacelet() length = %d, want 54", len(facelet))
	}

	decoded, err := FromFacelet(facelet)
	if err != nil {
		t.Fatalf("FromFacelet: %v", err)
	}
	if decoded.Facelets != c.Facelets {
		t.Errorf("FromFacelet(ToFacelet(c)) != c")
	}
}

func TestSolvedCubeFaceletMatchesCanonicalLayout(t *testing.T) {
	c := New()
	want := "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"
	if got := c.ToFacelet(); got != want {
		t.Errorf("ToFacelet() = %q, want %q", got, want)
	}
}

func TestFromFaceletInvalidLength(t *testing.T) {
	if _, err := FromFacelet("too short"); err == nil {
		t.Error("FromFacelet with wrong length should error")
	}
}
