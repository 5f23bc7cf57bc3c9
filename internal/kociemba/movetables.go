package kociemba

// phase2Moves lists the 10 generator moves of the phase-2 subgroup
// <U,D,R2,L2,F2,B2>, in overall move-index order.
var phase2Moves = [10]int{0, 1, 2, 4, 7, 9, 10, 11, 13, 16}

func isPhase2Move(m int) bool {
	for _, pm := range phase2Moves {
		if pm == m {
			return true
		}
	}
	return false
}

// moveTables holds, for each coordinate, a table mapping (coord, move)
// to the coordinate after applying that move. Built once and treated
// as immutable and safe for concurrent readers thereafter.
type moveTables struct {
	twist       []uint16
	flip        []uint16
	sliceSorted []uint16
	uEdges      []uint16
	dEdges      []uint16
	udEdges     []uint16 // only entries for phase2Moves are meaningful
	corners     []uint16
}

func buildGenericMoveTable(size int, get func(Cubie) int, set func(int) Cubie, onlyPhase2 bool) []uint16 {
	table := make([]uint16, size*numMoves)
	for i := 0; i < size; i++ {
		base := set(i)
		for m := 0; m < numMoves; m++ {
			if onlyPhase2 && !isPhase2Move(m) {
				continue
			}
			after := base.ApplyMove(m)
			table[i*numMoves+m] = uint16(get(after))
		}
	}
	return table
}

func buildMoveTables() *moveTables {
	t := &moveTables{}
	t.twist = buildGenericMoveTable(twistMax, getTwist, setTwist, false)
	t.flip = buildGenericMoveTable(flipMax, getFlip, setFlip, false)
	t.sliceSorted = buildGenericMoveTable(sliceSortedMax, getSliceSorted, setSliceSorted, false)
	t.uEdges = buildGenericMoveTable(uEdgesMax, getUEdges, setUEdges, false)
	t.dEdges = buildGenericMoveTable(dEdgesMax, getDEdges, setDEdges, false)
	t.udEdges = buildGenericMoveTable(udEdgesMax, getUDEdges, setUDEdges, true)
	t.corners = buildGenericMoveTable(cornersMax, getCorners, setCorners, false)
	return t
}
