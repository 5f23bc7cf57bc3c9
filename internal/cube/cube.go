// Package cube provides a 3x3 Rubik's cube model with state tracking and
// dispatches solving to the two-phase Kociemba search.
package cube

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/kociemba"
	"github.com/ehrlich-b/cube/pkg/types"
)

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face represents a cube face.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

func faceFromTypesFace(f types.Face) Face {
	switch f {
	case types.FaceU:
		return U
	case types.FaceD:
		return D
	case types.FaceF:
		return F
	case types.FaceB:
		return B
	case types.FaceR:
		return R
	case types.FaceL:
		return L
	default:
		return U
	}
}

// Cube represents a 3x3 Rubik's cube.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color and never moves.
type Cube struct {
	Facelets [6][9]Color
}

// New creates a solved cube with standard orientation:
// White on top, Green in front.
func New() *Cube {
	c := &Cube{}
	for face := Face(0); face < 6; face++ {
		color := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = color
		}
	}
	return c
}

func faceToSolvedColor(f Face) Color {
	switch f {
	case U:
		return White
	case D:
		return Yellow
	case F:
		return Green
	case B:
		return Blue
	case R:
		return Red
	case L:
		return Orange
	default:
		return White
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{}
	clone.Facelets = c.Facelets
	return clone
}

// IsSolved returns true if the cube is in the solved state.
func (c *Cube) IsSolved() bool {
	for face := Face(0); face < 6; face++ {
		expected := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			if c.Facelets[face][i] != expected {
				return false
			}
		}
	}
	return true
}

// rotateFaceCW rotates a face 90 degrees clockwise.
func (c *Cube) rotateFaceCW(face Face) {
	f := &c.Facelets[face]
	temp := f[0]
	f[0] = f[6]
	f[6] = f[8]
	f[8] = f[2]
	f[2] = temp

	temp = f[1]
	f[1] = f[3]
	f[3] = f[7]
	f[7] = f[5]
	f[5] = temp
}

// rotateFaceCCW rotates a face 90 degrees counter-clockwise.
func (c *Cube) rotateFaceCCW(face Face) {
	f := &c.Facelets[face]
	temp := f[0]
	f[0] = f[2]
	f[2] = f[8]
	f[8] = f[6]
	f[6] = temp

	temp = f[1]
	f[1] = f[5]
	f[5] = f[7]
	f[7] = f[3]
	f[3] = temp
}

// Move applies a move to the cube. turn: 1 = CW, -1 = CCW, 2 = 180 degrees.
func (c *Cube) Move(face Face, turn int) {
	switch turn {
	case 1:
		c.moveCW(face)
	case -1:
		c.moveCCW(face)
	case 2:
		c.moveCW(face)
		c.moveCW(face)
	}
}

// ApplyMove applies a types.Move to the cube.
func (c *Cube) ApplyMove(m types.Move) {
	c.Move(faceFromTypesFace(m.Face), int(m.Turn))
}

// ApplyMoves applies a sequence of moves to the cube.
func (c *Cube) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

func (c *Cube) moveCW(face Face) {
	c.rotateFaceCW(face)
	c.cycleEdgesCW(face)
}

func (c *Cube) moveCCW(face Face) {
	c.rotateFaceCCW(face)
	c.cycleEdgesCW(face)
	c.cycleEdgesCW(face)
	c.cycleEdgesCW(face)
}

// cycleEdgesCW cycles the edge facelets around a face (clockwise).
func (c *Cube) cycleEdgesCW(face Face) {
	switch face {
	case U:
		c.cycle4(
			int(F), []int{0, 1, 2},
			int(L), []int{0, 1, 2},
			int(B), []int{0, 1, 2},
			int(R), []int{0, 1, 2},
		)
	case D:
		c.cycle4(
			int(F), []int{6, 7, 8},
			int(R), []int{6, 7, 8},
			int(B), []int{6, 7, 8},
			int(L), []int{6, 7, 8},
		)
	case F:
		c.cycle4(
			int(U), []int{6, 7, 8},
			int(R), []int{0, 3, 6},
			int(D), []int{2, 1, 0},
			int(L), []int{8, 5, 2},
		)
	case B:
		c.cycle4(
			int(U), []int{2, 1, 0},
			int(L), []int{0, 3, 6},
			int(D), []int{6, 7, 8},
			int(R), []int{8, 5, 2},
		)
	case R:
		c.cycle4(
			int(U), []int{2, 5, 8},
			int(B), []int{6, 3, 0},
			int(D), []int{2, 5, 8},
			int(F), []int{2, 5, 8},
		)
	case L:
		c.cycle4(
			int(U), []int{0, 3, 6},
			int(F), []int{0, 3, 6},
			int(D), []int{0, 3, 6},
			int(B), []int{8, 5, 2},
		)
	}
}

// cycle4 cycles four 3-facelet edge strips: 1 <- 4 <- 3 <- 2 <- 1(saved).
func (c *Cube) cycle4(f1 int, i1 []int, f2 int, i2 []int, f3 int, i3 []int, f4 int, i4 []int) {
	t := [3]Color{c.Facelets[f1][i1[0]], c.Facelets[f1][i1[1]], c.Facelets[f1][i1[2]]}

	for k := 0; k < 3; k++ {
		c.Facelets[f1][i1[k]] = c.Facelets[f4][i4[k]]
	}
	for k := 0; k < 3; k++ {
		c.Facelets[f4][i4[k]] = c.Facelets[f3][i3[k]]
	}
	for k := 0; k < 3; k++ {
		c.Facelets[f3][i3[k]] = c.Facelets[f2][i2[k]]
	}
	for k := 0; k < 3; k++ {
		c.Facelets[f2][i2[k]] = t[k]
	}
}

// String returns a text representation of the cube.
func (c *Cube) String() string {
	result := ""
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += c.Facelets[U][row*3+col].String() + " "
		}
		result += "\n"
	}
	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			for col := 0; col < 3; col++ {
				result += c.Facelets[face][row*3+col].String() + " "
			}
		}
		result += "\n"
	}
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += c.Facelets[D][row*3+col].String() + " "
		}
		result += "\n"
	}
	return result
}

// kociembaFaceOrder is the face visit order kociemba's facelet strings
// use (U, R, F, D, L, B), each face's own Color letter.
var kociembaFaceOrder = [6]Face{U, R, F, D, L, B}

var colorToKociembaLetter = [6]byte{
	White:  'U',
	Yellow: 'D',
	Green:  'F',
	Blue:   'B',
	Red:    'R',
	Orange: 'L',
}

var kociembaLetterToFace = map[byte]Face{
	'U': U, 'D': D, 'F': F, 'B': B, 'R': R, 'L': L,
}

// ToFacelet encodes the cube as a 54-character kociemba facelet string.
func (c *Cube) ToFacelet() string {
	buf := make([]byte, 54)
	for slot, face := range kociembaFaceOrder {
		for i := 0; i < 9; i++ {
			buf[slot*9+i] = colorToKociembaLetter[c.Facelets[face][i]]
		}
	}
	return string(buf)
}

// FromFacelet decodes a 54-character kociemba facelet string into a Cube.
func FromFacelet(s string) (*Cube, error) {
	if len(s) != 54 {
		return nil, fmt.Errorf("facelet string must be 54 characters, got %d", len(s))
	}
	c := &Cube{}
	for slot, face := range kociembaFaceOrder {
		for i := 0; i < 9; i++ {
			letter := s[slot*9+i]
			kf, ok := kociembaLetterToFace[letter]
			if !ok {
				return nil, fmt.Errorf("invalid facelet letter %q", letter)
			}
			c.Facelets[face][i] = faceToSolvedColor(kf)
		}
	}
	return c, nil
}

func moveFromKociembaIndex(m int) types.Move {
	faces := [6]types.Face{types.FaceU, types.FaceR, types.FaceF, types.FaceD, types.FaceL, types.FaceB}
	turns := [3]types.Turn{types.TurnCW, types.Turn180, types.TurnCCW}
	return types.Move{Face: faces[m/3], Turn: turns[m%3]}
}

// Solve runs the Kociemba two-phase search against the cube's current
// state and returns the move sequence that returns it to solved.
func (c *Cube) Solve(opts kociemba.SolveOptions) ([]types.Move, error) {
	moveStr, err := kociemba.Solve(c.ToFacelet(), opts)
	if err != nil {
		return nil, err
	}
	indices, err := kociemba.ParseMoveString(moveStr)
	if err != nil {
		return nil, err
	}
	moves := make([]types.Move, len(indices))
	for i, idx := range indices {
		moves[i] = moveFromKociembaIndex(idx)
	}
	return moves, nil
}
