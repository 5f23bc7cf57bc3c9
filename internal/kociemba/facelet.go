package kociemba

import "strings"

// Facelet colors, one per face identity. A color's numeric value lines
// up with the face whose center wears it. A facelet string is decoded
// from its letters alone: each letter names a color directly, and the
// center stickers are not used to relabel colors.
const (
	colorU = iota
	colorR
	colorF
	colorD
	colorL
	colorB
)

var colorLetters = [6]byte{'U', 'R', 'F', 'D', 'L', 'B'}

func letterToColor(b byte) (int, bool) {
	for i, l := range colorLetters {
		if l == b {
			return i, true
		}
	}
	return 0, false
}

// facelet position index for face f (0..5, order U R F D L B), row,
// col (0..2): f*9 + row*3 + col.
func faceletIndex(face, row, col int) int { return face*9 + row*3 + col }

// cornerFacelet[c] gives the 3 facelet positions touched by corner
// cubicle c, in the order matching cornerColor[c].
var cornerFacelet = [numCorners][3]int{
	{faceletIndex(0, 2, 2), faceletIndex(1, 0, 0), faceletIndex(2, 0, 2)}, // URF: U9 R1 F3
	{faceletIndex(0, 2, 0), faceletIndex(2, 0, 0), faceletIndex(4, 0, 2)}, // UFL: U7 F1 L3
	{faceletIndex(0, 0, 0), faceletIndex(4, 0, 0), faceletIndex(5, 0, 2)}, // ULB: U1 L1 B3
	{faceletIndex(0, 0, 2), faceletIndex(5, 0, 0), faceletIndex(1, 0, 2)}, // UBR: U3 B1 R3
	{faceletIndex(3, 0, 2), faceletIndex(2, 2, 2), faceletIndex(1, 2, 0)}, // DFR: D3 F9 R7
	{faceletIndex(3, 0, 0), faceletIndex(4, 2, 2), faceletIndex(2, 2, 0)}, // DLF: D1 L9 F7
	{faceletIndex(3, 2, 0), faceletIndex(5, 2, 2), faceletIndex(4, 2, 0)}, // DBL: D7 B9 L7
	{faceletIndex(3, 2, 2), faceletIndex(1, 2, 2), faceletIndex(5, 2, 0)}, // DRB: D9 R9 B7
}

// cornerColor[c] gives the canonical color triple for corner cubicle c,
// aligned index-for-index with cornerFacelet[c].
var cornerColor = [numCorners][3]int{
	{colorU, colorR, colorF},
	{colorU, colorF, colorL},
	{colorU, colorL, colorB},
	{colorU, colorB, colorR},
	{colorD, colorF, colorR},
	{colorD, colorL, colorF},
	{colorD, colorB, colorL},
	{colorD, colorR, colorB},
}

// edgeFacelet[e] gives the 2 facelet positions touched by edge cubicle e.
var edgeFacelet = [numEdges][2]int{
	{faceletIndex(0, 1, 2), faceletIndex(1, 0, 1)}, // UR: U6 R2
	{faceletIndex(0, 2, 1), faceletIndex(2, 0, 1)}, // UF: U8 F2
	{faceletIndex(0, 1, 0), faceletIndex(4, 0, 1)}, // UL: U4 L2
	{faceletIndex(0, 0, 1), faceletIndex(5, 0, 1)}, // UB: U2 B2
	{faceletIndex(3, 1, 2), faceletIndex(1, 2, 1)}, // DR: D6 R8
	{faceletIndex(3, 0, 1), faceletIndex(2, 2, 1)}, // DF: D2 F8
	{faceletIndex(3, 1, 0), faceletIndex(4, 2, 1)}, // DL: D4 L8
	{faceletIndex(3, 2, 1), faceletIndex(5, 2, 1)}, // DB: D8 B8
	{faceletIndex(2, 1, 2), faceletIndex(1, 1, 0)}, // FR: F6 R4
	{faceletIndex(2, 1, 0), faceletIndex(4, 1, 2)}, // FL: F4 L6
	{faceletIndex(5, 1, 2), faceletIndex(4, 1, 0)}, // BL: B6 L4
	{faceletIndex(5, 1, 0), faceletIndex(1, 1, 2)}, // BR: B4 R6
}

var edgeColor = [numEdges][2]int{
	{colorU, colorR},
	{colorU, colorF},
	{colorU, colorL},
	{colorU, colorB},
	{colorD, colorR},
	{colorD, colorF},
	{colorD, colorL},
	{colorD, colorB},
	{colorF, colorR},
	{colorF, colorL},
	{colorB, colorL},
	{colorB, colorR},
}

// DecodeFacelet parses a 54-character facelet string (face order
// U R F D L B, row-major, with position 5 of each face its center)
// into a Cubie, validating every legality invariant.
func DecodeFacelet(s string) (Cubie, error) {
	if len(s) != 54 {
		return Cubie{}, newErr(ErrInvalidFacelet, "facelet string must be 54 characters")
	}
	colors := make([]int, 54)
	counts := [6]int{}
	for i := 0; i < 54; i++ {
		col, ok := letterToColor(s[i])
		if !ok {
			return Cubie{}, newErr(ErrInvalidFacelet, "facelet character must be one of U,R,F,D,L,B")
		}
		colors[i] = col
		counts[col]++
	}
	for _, n := range counts {
		if n != 9 {
			return Cubie{}, newErr(ErrInvalidColorCount, "each color must appear exactly 9 times")
		}
	}

	var c Cubie
	for slot := 0; slot < numCorners; slot++ {
		var sticker [3]int
		for k := 0; k < 3; k++ {
			sticker[k] = colors[cornerFacelet[slot][k]]
		}
		found := false
		for cubicle := 0; cubicle < numCorners; cubicle++ {
			for ori := 0; ori < 3; ori++ {
				if sticker[ori] == cornerColor[cubicle][0] &&
					sticker[(ori+1)%3] == cornerColor[cubicle][1] &&
					sticker[(ori+2)%3] == cornerColor[cubicle][2] {
					c.cornerPos[slot] = cubicle
					c.cornerOri[slot] = ori
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return Cubie{}, newErr(ErrUnknownCorner, "corner stickers do not match any legal corner")
		}
	}

	for slot := 0; slot < numEdges; slot++ {
		var sticker [2]int
		sticker[0] = colors[edgeFacelet[slot][0]]
		sticker[1] = colors[edgeFacelet[slot][1]]
		found := false
		for cubicle := 0; cubicle < numEdges; cubicle++ {
			if sticker[0] == edgeColor[cubicle][0] && sticker[1] == edgeColor[cubicle][1] {
				c.edgePos[slot] = cubicle
				c.edgeOri[slot] = 0
				found = true
			} else if sticker[0] == edgeColor[cubicle][1] && sticker[1] == edgeColor[cubicle][0] {
				c.edgePos[slot] = cubicle
				c.edgeOri[slot] = 1
				found = true
			}
			if found {
				break
			}
		}
		if !found {
			return Cubie{}, newErr(ErrUnknownEdge, "edge stickers do not match any legal edge")
		}
	}

	if err := c.IsValid(); err != nil {
		return Cubie{}, err
	}
	return c, nil
}

// EncodeFacelet renders a Cubie back to its 54-character facelet
// string. Not required by the search itself, but the natural inverse
// of DecodeFacelet and useful for tests and CLI round-tripping.
func EncodeFacelet(c Cubie) string {
	var buf [54]byte
	for f := 0; f < numFaces; f++ {
		buf[faceletIndex(f, 1, 1)] = colorLetters[f]
	}
	for slot := 0; slot < numCorners; slot++ {
		cubicle := c.cornerPos[slot]
		ori := c.cornerOri[slot]
		for k := 0; k < 3; k++ {
			buf[cornerFacelet[slot][k]] = colorLetters[cornerColor[cubicle][(k-ori+3)%3]]
		}
	}
	for slot := 0; slot < numEdges; slot++ {
		cubicle := c.edgePos[slot]
		ori := c.edgeOri[slot]
		buf[edgeFacelet[slot][0]] = colorLetters[edgeColor[cubicle][ori]]
		buf[edgeFacelet[slot][1]] = colorLetters[edgeColor[cubicle][1-ori]]
	}
	return string(buf[:])
}

// ParseMoveString splits a whitespace-separated move string ("R2 U F3")
// into move indices 0..17.
func ParseMoveString(s string) ([]int, error) {
	fields := strings.Fields(s)
	moves := make([]int, 0, len(fields))
	for _, tok := range fields {
		m, err := parseMoveToken(tok)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func parseMoveToken(tok string) (int, error) {
	if len(tok) < 1 || len(tok) > 2 {
		return 0, newErr(ErrInvalidFacelet, "malformed move token: "+tok)
	}
	face := -1
	for i, l := range colorLetters {
		if tok[0] == l {
			face = i
			break
		}
	}
	if face < 0 {
		return 0, newErr(ErrInvalidFacelet, "unknown move face: "+tok)
	}
	power := 1
	if len(tok) == 2 {
		switch tok[1] {
		case '1':
			power = 1
		case '2':
			power = 2
		case '3':
			power = 3
		default:
			return 0, newErr(ErrInvalidFacelet, "unknown move power: "+tok)
		}
	}
	return face*3 + (power - 1), nil
}

// FormatMoveString renders move indices back to notation.
func FormatMoveString(moves []int) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = moveName(m)
	}
	return strings.Join(parts, " ")
}
