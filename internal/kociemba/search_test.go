package kociemba

import "testing"

func TestSkipMoveSameFace(t *testing.T) {
	if !skipMove(faceU, faceU) {
		t.Error("skipMove(U, U) = false, want true (repeated face)")
	}
}

func TestSkipMoveOppositePairOrder(t *testing.T) {
	// U < D: D immediately after U is fine, U immediately after D is not.
	if skipMove(faceD, faceU) {
		t.Error("skipMove(D, U) = true, want false")
	}
	if !skipMove(faceU, faceD) {
		t.Error("skipMove(U, D) = false, want true")
	}
}

func TestSkipMoveUnrelatedFaces(t *testing.T) {
	if skipMove(faceR, faceU) {
		t.Error("skipMove(R, U) = true, want false")
	}
}

func TestSkipMoveNoLastFace(t *testing.T) {
	if skipMove(faceU, -1) {
		t.Error("skipMove(U, -1) = true, want false (no prior move)")
	}
}
