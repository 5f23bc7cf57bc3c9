package kociemba

// numSym is the order of the full symmetry group generated by
// ROT_URF3, ROT_F2, ROT_U4, MIRR_LR2.
const numSym = 48

// numSymD4h is the size of the subgroup that preserves the U/D axis,
// materialized as symmetry indices 0..15.
const numSymD4h = 16

// basicSyms holds the 4 generator symmetries, hardcoded exactly as the
// Kociemba reference defines them; every downstream table depends on
// the exact enumeration order built from these in buildSymCubes.
var basicSyms = struct {
	rotURF3 Cubie // order 3: rotation about the URF corner axis
	rotF2   Cubie // order 2: 180 degree rotation about the F/B axis
	rotU4   Cubie // order 4: 90 degree rotation about the U/D axis
	mirrLR2 Cubie // order 2: mirror across the L/R plane
}{
	rotURF3: Cubie{
		cornerPos: [8]int{URF, DFR, DLF, UFL, UBR, DRB, DBL, ULB},
		cornerOri: [8]int{1, 2, 1, 2, 2, 1, 2, 1},
		edgePos:   [12]int{UF, FR, DF, FL, UB, BR, DB, BL, UR, DR, DL, UL},
		edgeOri:   [12]int{1, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1},
	},
	rotF2: Cubie{
		cornerPos: [8]int{DLF, DFR, DRB, DBL, UFL, URF, UBR, ULB},
		cornerOri: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		edgePos:   [12]int{DL, DF, DR, DB, UL, UF, UR, UB, FL, FR, BR, BL},
		edgeOri:   [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	rotU4: Cubie{
		cornerPos: [8]int{UBR, URF, UFL, ULB, DRB, DFR, DLF, DBL},
		cornerOri: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		edgePos:   [12]int{UB, UR, UF, UL, DB, DR, DF, DL, BR, FR, FL, BL},
		edgeOri:   [12]int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1},
	},
	mirrLR2: Cubie{
		cornerPos: [8]int{UFL, URF, UBR, ULB, DLF, DFR, DRB, DBL},
		cornerOri: [8]int{3, 3, 3, 3, 3, 3, 3, 3},
		edgePos:   [12]int{UL, UF, UR, UB, DL, DF, DR, DB, FL, FR, BR, BL},
		edgeOri:   [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
}

var (
	symCubes      [numSym]Cubie
	inverseSymIdx [numSym]int
	conjMoveTable [numSym * numMoves]int
)

// buildSymCubes enumerates the 48 symmetries via the nested product
// urf3 x f2 x u4 x lr2. This exact iteration order fixes the index of
// every symmetry, and in particular fixes D4h as indices 0..15 — it
// MUST be preserved bit-for-bit.
func buildSymCubes() {
	idx := 0
	cc := Identity()
	for urf3 := 0; urf3 < 3; urf3++ {
		for f2 := 0; f2 < 2; f2++ {
			for u4 := 0; u4 < 4; u4++ {
				for lr2 := 0; lr2 < 2; lr2++ {
					symCubes[idx] = cc
					idx++
					cc = Multiply(cc, basicSyms.mirrLR2)
				}
				cc = Multiply(cc, basicSyms.rotU4)
			}
			cc = Multiply(cc, basicSyms.rotF2)
		}
		cc = Multiply(cc, basicSyms.rotURF3)
	}
}

func buildInverseSymIdx() {
	id := Identity()
	for s := 0; s < numSym; s++ {
		for t := 0; t < numSym; t++ {
			if Multiply(symCubes[s], symCubes[t]).Equal(id) {
				inverseSymIdx[s] = t
				break
			}
		}
	}
}

// buildConjMoveTable computes, for every (symmetry, move), the move m'
// with S_s . M_m . S_s^-1 = M_m'; used to re-express a move sequence
// found in a conjugated orientation back into the original frame.
func buildConjMoveTable() {
	for s := 0; s < numSym; s++ {
		for m := 0; m < numMoves; m++ {
			conjugated := Multiply(Multiply(symCubes[s], moveCubes[m]), symCubes[inverseSymIdx[s]])
			found := -1
			for mp := 0; mp < numMoves; mp++ {
				if moveCubes[mp].Equal(conjugated) {
					found = mp
					break
				}
			}
			conjMoveTable[s*numMoves+m] = found
		}
	}
}

// conjugateForClass computes S_{s^-1} . state . S_s, the ordering used
// when building the flipSlice and corner equivalence-class tables.
func conjugateForClass(state Cubie, s int) Cubie {
	return Multiply(Multiply(symCubes[inverseSymIdx[s]], state), symCubes[s])
}

// conjugateForCoord computes S_s . state . S_{s^-1}, the ordering used
// when building the twist/udEdges conjugation tables. This is the
// inverse order from conjugateForClass and the two must not be
// conflated.
func conjugateForCoord(state Cubie, s int) Cubie {
	return Multiply(Multiply(symCubes[s], state), symCubes[inverseSymIdx[s]])
}

func buildSymmetryLayer() {
	buildSymCubes()
	buildInverseSymIdx()
	buildConjMoveTable()
}
