package kociemba

import "testing"

const solvedFacelet = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

func TestDecodeEncodeRoundTrip(t *testing.T) {
	c, err := DecodeFacelet(solvedFacelet)
	if err != nil {
		t.Fatalf("DecodeFacelet(solved) = %v", err)
	}
	if !c.Equal(Identity()) {
		t.Errorf("decoded solved facelet != Identity()")
	}
	if got := EncodeFacelet(c); got != solvedFacelet {
		t.Errorf("EncodeFacelet round trip = %q, want %q", got, solvedFacelet)
	}
}

func TestDecodeInvalidCharacter(t *testing.T) {
	_, err := DecodeFacelet("UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBX")
	if kind, ok := AsSolverError(err); !ok || kind != ErrInvalidFacelet {
		t.Errorf("DecodeFacelet(bad character) kind = %v, ok=%v, want ErrInvalidFacelet", kind, ok)
	}
}

func TestDecodeInvalidColorCount(t *testing.T) {
	// Swap one L facelet for an extra B, unbalancing the color counts
	// without introducing an unknown character.
	bad := []byte(solvedFacelet)
	bad[faceletIndex(4, 1, 1)] = 'B'
	_, err := DecodeFacelet(string(bad))
	if kind, ok := AsSolverError(err); !ok || kind != ErrInvalidColorCount {
		t.Errorf("DecodeFacelet(unbalanced colors) kind = %v, ok=%v, want ErrInvalidColorCount", kind, ok)
	}
}

func TestDecodeCornerOriSum(t *testing.T) {
	// Rotate the three stickers of the URF corner cubicle one step so the
	// corner decodes with orientation 1, leaving the orientation sum at 1
	// and forcing the corner-orientation-sum invariant to fail.
	bad := []byte(solvedFacelet)
	// URF corner facelets: U9, R1, F3 (faceletIndex(U,2,2)=8, R=9+0,F=18+2)
	bad[8], bad[9], bad[18+2] = bad[18+2], bad[8], bad[9]
	_, err := DecodeFacelet(string(bad))
	if err == nil {
		t.Fatalf("DecodeFacelet(corner-twisted) = nil error, want CornerOriSum")
	}
	kind, ok := AsSolverError(err)
	if !ok || kind != ErrCornerOriSum {
		t.Errorf("DecodeFacelet(corner-twisted) kind = %v, want CornerOriSum", kind)
	}
}

func TestParseFormatMoveStringRoundTrip(t *testing.T) {
	s := "U R2 F3 D L2 B"
	moves, err := ParseMoveString(s)
	if err != nil {
		t.Fatalf("ParseMoveString(%q) = %v", s, err)
	}
	if got := FormatMoveString(moves); got != s {
		t.Errorf("FormatMoveString round trip = %q, want %q", got, s)
	}
}
