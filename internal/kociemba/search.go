package kociemba

import (
	"sync"
	"sync/atomic"
	"time"
)

// oppositeFace maps a face to the one on the other side of the cube;
// used by the canonical move-ordering rule during search.
var oppositeFace = [numFaces]int{faceD, faceL, faceB, faceU, faceR, faceF}

// skipMove reports whether candidate, following lastFace (-1 if none),
// violates either canonical-order rule: no repeated face, and no
// lower-indexed face of an opposite pair immediately after its
// higher-indexed partner.
func skipMove(candidateFace, lastFace int) bool {
	if lastFace < 0 {
		return false
	}
	if candidateFace == lastFace {
		return true
	}
	if oppositeFace[candidateFace] == lastFace && candidateFace < lastFace {
		return true
	}
	return false
}

// phase1Lookup returns the stored mod-3 pruning value for the real
// (twist, flip, sliceSorted) triple, conjugating twist by the symmetry
// that carries (flip, slice) to its class representative.
func phase1Lookup(t *Tables, twist, flip, sliceSorted int) (classIdx, twistConj, value int) {
	slice := sliceSorted / 24
	fsIdx := flipMax*slice + flip
	classIdx = int(t.class.flipSliceClassIdx[fsIdx])
	sym := int(t.class.flipSliceSym[fsIdx])
	twistConj = int(t.conj.twist[twist*numSymD4h+sym])
	value = getPacked2(t.prune.phase1, twistMax*classIdx+twistConj)
	return
}

// phase1Distance recovers the exact phase-1 lower bound for (twist,
// flip, sliceSorted) by walking the pruning table down to the solved
// class one real move at a time — the "count-down" trick of §4.6.
func phase1Distance(t *Tables, twist, flip, sliceSorted int) int {
	curTwist, curFlip, curSliceSorted := twist, flip, sliceSorted
	classIdx, _, v := phase1Lookup(t, curTwist, curFlip, curSliceSorted)

	for depth := 0; depth < 40; depth++ {
		if classIdx == 0 && curTwist == 0 {
			return depth
		}
		want := (v + 2) % 3
		found := false
		for m := 0; m < numMoves; m++ {
			nTwist := int(t.move.twist[curTwist*numMoves+m])
			nFlip := int(t.move.flip[curFlip*numMoves+m])
			nSliceSorted := int(t.move.sliceSorted[curSliceSorted*numMoves+m])

			nClassIdx, _, nv := phase1Lookup(t, nTwist, nFlip, nSliceSorted)
			if nv == want {
				curTwist, curFlip, curSliceSorted = nTwist, nFlip, nSliceSorted
				classIdx, v = nClassIdx, nv
				found = true
				break
			}
		}
		if !found {
			return depth
		}
	}
	return 40
}

// phase2Lookup is phase1Lookup's analogue for (corners, udEdges).
func phase2Lookup(t *Tables, corners, udEdges int) (classIdx, udConj, value int) {
	classIdx = int(t.class.cornerClassIdx[corners])
	sym := int(t.class.cornerSym[corners])
	udConj = int(t.conj.udEdges[udEdges*numSymD4h+sym])
	value = getPacked2(t.prune.phase2, udEdgesMax*classIdx+udConj)
	return
}

// phase2Distance recovers the exact phase-2 lower bound from the
// (corners, udEdges) pruning table, restricted to the 10 phase-2
// generators.
func phase2Distance(t *Tables, corners, udEdges int) int {
	curCorners, curUDEdges := corners, udEdges
	classIdx, _, v := phase2Lookup(t, curCorners, curUDEdges)

	for depth := 0; depth < 40; depth++ {
		if classIdx == 0 && curUDEdges == 0 {
			return depth
		}
		want := (v + 2) % 3
		found := false
		for _, m := range phase2Moves {
			nCorners := int(t.move.corners[curCorners*numMoves+m])
			nUDEdges := int(t.move.udEdges[curUDEdges*numMoves+m])

			nClassIdx, _, nv := phase2Lookup(t, nCorners, nUDEdges)
			if nv == want {
				curCorners, curUDEdges = nCorners, nUDEdges
				classIdx, v = nClassIdx, nv
				found = true
				break
			}
		}
		if !found {
			return depth
		}
	}
	return 40
}

// searcher bundles the table set and shared cancellation state for one
// solve call; workers exploring symmetry-equivalent orientations of the
// same cube share a single instance.
type searcher struct {
	tables   *Tables
	deadline time.Time
	stop     int32 // atomic flag; set once any worker finds a solution

	mu       sync.Mutex
	solution []int
	found    bool
}

func newSearcher(t *Tables, deadline time.Time) *searcher {
	return &searcher{tables: t, deadline: deadline}
}

func (s *searcher) cancelled() bool {
	return atomic.LoadInt32(&s.stop) != 0 || time.Now().After(s.deadline)
}

func (s *searcher) reportSolution(moves []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.found && len(s.solution) <= len(moves) {
		return
	}
	s.solution = append([]int(nil), moves...)
	s.found = true
	atomic.StoreInt32(&s.stop, 1)
}

// phase1State is the coordinate triple phase-1 search threads through
// its DFS; sliceSorted (not just the combination) is carried so that
// entering phase 2 has the real slice-edge permutation available.
type phase1State struct {
	twist, flip, sliceSorted int
}

func (st phase1State) apply(t *Tables, m int) phase1State {
	return phase1State{
		twist:       int(t.move.twist[st.twist*numMoves+m]),
		flip:        int(t.move.flip[st.flip*numMoves+m]),
		sliceSorted: int(t.move.sliceSorted[st.sliceSorted*numMoves+m]),
	}
}

func (st phase1State) isGoal() bool {
	return st.twist == 0 && st.flip == 0 && st.sliceSorted/24 == 0
}

// phase2State tracks corners and udEdges plus the slice-edge
// permutation (0..23, since the combination is already solved on
// entry to phase 2) for the auxiliary cornSliceDepth bound.
type phase2State struct {
	corners, udEdges, slicePerm int
}

func (st phase2State) apply(t *Tables, m int) phase2State {
	return phase2State{
		corners:   int(t.move.corners[st.corners*numMoves+m]),
		udEdges:   int(t.move.udEdges[st.udEdges*numMoves+m]),
		slicePerm: int(t.move.sliceSorted[st.slicePerm*numMoves+m]),
	}
}

func (st phase2State) isGoal() bool {
	return st.corners == 0 && st.udEdges == 0 && st.slicePerm == 0
}

func phase2Bound(t *Tables, st phase2State) int {
	a := phase2Distance(t, st.corners, st.udEdges)
	b := int(t.prune.cornSliceDepth[24*st.corners+st.slicePerm])
	if b > a {
		return b
	}
	return a
}

// solvePhase2 runs a single depth-bounded DFS (not iterative deepening:
// the caller already fixed the remaining budget) over the phase-2
// subgroup and appends any solution found to out.
func solvePhase2(s *searcher, st phase2State, threshold int, path []int, out *[]int) bool {
	if s.cancelled() {
		return false
	}
	if st.isGoal() {
		*out = append([]int(nil), path...)
		return true
	}
	if len(path) >= threshold {
		return false
	}
	bound := phase2Bound(s.tables, st)
	if len(path)+bound > threshold {
		return false
	}

	lastFace := -1
	if len(path) > 0 {
		lastFace = path[len(path)-1] / 3
	}
	for _, m := range phase2Moves {
		face := m / 3
		if skipMove(face, lastFace) {
			continue
		}
		next := st.apply(s.tables, m)
		if solvePhase2(s, next, threshold, append(path, m), out) {
			return true
		}
	}
	return false
}

// solvePhase1 is phase 1's depth-bounded DFS; on reaching the phase-2
// subgroup it hands the accumulated move list and the cubie state it
// produces off to solvePhase2 with the remaining move budget.
func solvePhase1(s *searcher, cube Cubie, st phase1State, threshold int, maxLength int, path []int) bool {
	if s.cancelled() {
		return false
	}
	if st.isGoal() {
		var phase2moves []int
		corners := getCorners(cube)
		udEdges := getUDEdges(cube)
		slicePerm := getSliceSorted(cube) % 24
		start := phase2State{corners: corners, udEdges: udEdges, slicePerm: slicePerm}
		if solvePhase2(s, start, maxLength-len(path), nil, &phase2moves) {
			full := append(append([]int(nil), path...), phase2moves...)
			s.reportSolution(full)
			return true
		}
		return false
	}
	if len(path) >= threshold {
		return false
	}
	bound := phase1Distance(s.tables, st.twist, st.flip, st.sliceSorted)
	if len(path)+bound > threshold {
		return false
	}

	lastFace := -1
	if len(path) > 0 {
		lastFace = path[len(path)-1] / 3
	}
	for m := 0; m < numMoves; m++ {
		face := m / 3
		if skipMove(face, lastFace) {
			continue
		}
		nextCube := cube.ApplyMove(m)
		nextSt := st.apply(s.tables, m)
		if solvePhase1(s, nextCube, nextSt, threshold, maxLength, append(path, m)) {
			return true
		}
	}
	return false
}

// runOrientation performs the full iterative-deepening two-phase
// search for one (possibly symmetry-reoriented) starting cube.
func runOrientation(s *searcher, cube Cubie, maxLength int) {
	twist := getTwist(cube)
	flip := getFlip(cube)
	sliceSorted := getSliceSorted(cube)
	start := phase1State{twist: twist, flip: flip, sliceSorted: sliceSorted}

	for d1 := 0; d1 <= maxLength; d1++ {
		if s.cancelled() {
			return
		}
		if solvePhase1(s, cube, start, d1, maxLength, nil) {
			return
		}
	}
}

// searchOrientationSyms is the symmetry used for each parallel worker:
// identity, ROT_URF3, ROT_URF3^2, fixed at symmetry indices 0, 16, 32
// by buildSymCubes's enumeration order.
var searchOrientationSyms = [3]int{0, 16, 32}

// solveCoreSearch runs the two-phase search, optionally forking up to
// 3 workers over symmetry-equivalent reorientations of cube; the first
// to finish wins and the others are cancelled cooperatively.
func solveCoreSearch(t *Tables, cube Cubie, maxLength int, deadline time.Time) ([]int, bool) {
	s := newSearcher(t, deadline)

	var wg sync.WaitGroup
	type found struct {
		moves []int
		sym   int
	}
	results := make(chan found, len(searchOrientationSyms))

	for _, sym := range searchOrientationSyms {
		sym := sym
		wg.Add(1)
		go func() {
			defer wg.Done()
			reoriented := conjugateForClass(cube, sym)
			before := s.found
			runOrientation(s, reoriented, maxLength)
			s.mu.Lock()
			mine := !before && s.found
			var cp []int
			if mine {
				cp = append([]int(nil), s.solution...)
			}
			s.mu.Unlock()
			if mine {
				results <- found{moves: cp, sym: sym}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	winner, ok := <-results
	if !ok {
		return nil, false
	}

	if winner.sym == 0 {
		return winner.moves, true
	}
	translated := make([]int, len(winner.moves))
	for i, m := range winner.moves {
		translated[i] = unconjugateMove(m, winner.sym)
	}
	return translated, true
}

// unconjugateMove finds the move in the original frame that corresponds
// to move m found while searching the sym-reoriented cube. The searched
// cube is S_s^-1 . cube . S_s (conjugateForClass), so the move m' is the
// one with S_s^-1 . M_m' . S_s = M_m, i.e. M_m' = S_s . M_m . S_s^-1,
// which is conjMoveTable's entry for (s, m).
func unconjugateMove(m, sym int) int {
	return conjMoveTable[sym*numMoves+m]
}
