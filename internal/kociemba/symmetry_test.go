package kociemba

import "testing"

func TestSymmetryInverses(t *testing.T) {
	buildSymmetryLayer()
	id := Identity()
	for s := 0; s < numSym; s++ {
		prod := Multiply(symCubes[s], symCubes[inverseSymIdx[s]])
		if !prod.Equal(id) {
			t.Errorf("symCubes[%d] * symCubes[inverseSymIdx[%d]] != identity", s, s)
		}
	}
}

// TestD4hSubgroupSize checks that exactly the first 16 symmetries fix
// the U/D axis: conjugating a U-face move yields another U- or D-face
// move if and only if the symmetry index is below 16.
func TestD4hSubgroupSize(t *testing.T) {
	buildSymmetryLayer()
	fixesUD := 0
	for s := 0; s < numSym; s++ {
		conjugated := conjMoveTable[s*numMoves+0] // conjugate of move U
		face := conjugated / 3
		fixes := face == faceU || face == faceD
		if s < numSymD4h && !fixes {
			t.Errorf("symmetry %d should fix U/D axis but maps U-move to face %d", s, face)
		}
		if s >= numSymD4h && fixes {
			t.Errorf("symmetry %d should not fix U/D axis but maps U-move to face %d", s, face)
		}
		if fixes {
			fixesUD++
		}
	}
	if fixesUD != numSymD4h {
		t.Errorf("%d symmetries fix the U/D axis, want %d", fixesUD, numSymD4h)
	}
}
