package notation

import (
	"testing"

	"github.com/ehrlich-b/cube/pkg/types"
)

func TestParseNotation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want types.Move
	}{
		{"clockwise", "R", types.Move{Face: types.FaceR, Turn: types.TurnCW}},
		{"counterclockwise", "U'", types.Move{Face: types.FaceU, Turn: types.TurnCCW}},
		{"half turn", "F2", types.Move{Face: types.FaceF, Turn: types.Turn180}},
		{"lowercase face", "r", types.Move{Face: types.FaceR, Turn: types.TurnCW}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNotation(tt.in)
			if !ok {
				t.Fatalf("ParseNotation(%q) failed to parse", tt.in)
			}
			if got != tt.want {
				t.Errorf("ParseNotation(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseNotationInvalid(t *testing.T) {
	if _, ok := ParseNotation("X"); ok {
		t.Error("ParseNotation(\"X\") should fail")
	}
	if _, ok := ParseNotation(""); ok {
		t.Error("ParseNotation(\"\") should fail")
	}
}

func TestParseSequenceRoundTrip(t *testing.T) {
	in := "R U R' U' F2 D2"
	moves, err := ParseSequence(in)
	if err != nil {
		t.Fatalf("ParseSequence(%q): %v", in, err)
	}
	if got := FormatSequence(moves); got != in {
		t.Errorf("FormatSequence(ParseSequence(%q)) = %q, want %q", in, got, in)
	}
}

func TestParseSequenceInvalidToken(t *testing.T) {
	if _, err := ParseSequence("R U X"); err == nil {
		t.Error("ParseSequence with an invalid token should error")
	}
}
