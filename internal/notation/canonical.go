// Package notation provides move notation conversion utilities.
package notation

import (
	"strings"

	"github.com/ehrlich-b/cube/pkg/types"
)

// ParseNotation parses a standard cube notation string into a Move.
// Examples: R, R', R2, U, U', U2
func ParseNotation(s string) (types.Move, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return types.Move{}, false
	}

	faceChar := s[0]
	var face types.Face
	switch faceChar {
	case 'R', 'r':
		face = types.FaceR
	case 'L', 'l':
		face = types.FaceL
	case 'U', 'u':
		face = types.FaceU
	case 'D', 'd':
		face = types.FaceD
	case 'F', 'f':
		face = types.FaceF
	case 'B', 'b':
		face = types.FaceB
	default:
		return types.Move{}, false
	}

	turn := types.TurnCW // Default is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = types.TurnCCW
		case "2":
			turn = types.Turn180
		default:
			return types.Move{}, false
		}
	}

	return types.Move{Face: face, Turn: turn}, true
}

// ParseSequence parses a space-separated sequence of moves. A token that
// fails to parse is reported as an error rather than silently skipped,
// since scrambles and solutions must round-trip exactly.
func ParseSequence(s string) ([]types.Move, error) {
	parts := strings.Fields(s)
	moves := make([]types.Move, 0, len(parts))

	for _, part := range parts {
		move, ok := ParseNotation(part)
		if !ok {
			return nil, &ParseError{Token: part}
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// ParseError reports a notation token that could not be parsed.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return "invalid move notation: " + e.Token
}

// FormatSequence formats a slice of moves as a space-separated string.
func FormatSequence(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
