package kociemba

import (
	"path/filepath"
	"sync"
)

// Tables bundles every precomputed table the search needs: immutable
// once built, safe to share by reference across concurrent searches.
type Tables struct {
	class *classTables
	move  *moveTables
	conj  *conjTables
	prune *pruneTables
}

var (
	globalTables   *Tables
	globalTablesMu sync.Mutex
)

// loadOrBuildTables returns the process-wide table set, building and
// caching it on first use. The symmetry layer is never loaded from the
// cache (its conj_move table is written but not read back) — it is
// cheap enough (48 cubie states) to rebuild every process start
// and everything else keys off it, so it always runs first.
func loadOrBuildTables(cacheDir string) (*Tables, error) {
	globalTablesMu.Lock()
	defer globalTablesMu.Unlock()
	if globalTables != nil {
		return globalTables, nil
	}

	buildSymmetryLayer()

	t, err := loadCachedTables(cacheDir)
	if err != nil {
		return nil, err
	}
	if t == nil {
		t, err = buildAllTables()
		if err != nil {
			return nil, err
		}
		if err := saveCachedTables(cacheDir, t); err != nil {
			return nil, err
		}
	}

	globalTables = t
	return t, nil
}

func buildAllTables() (*Tables, error) {
	class, err := buildClassTables()
	if err != nil {
		return nil, err
	}
	move := buildMoveTables()
	conj := buildConjTables()
	prune := buildPruneTables(class, move, conj)
	return &Tables{class: class, move: move, conj: conj, prune: prune}, nil
}

// loadCachedTables returns a fully-populated Tables if every one of the
// 19 files it reads is present under dir and the right size, or
// (nil, nil) otherwise — in which case the caller rebuilds everything
// from scratch. Partial/corrupt caches are never trusted: a half-written
// or truncated file is treated the same as a missing one, and so is any
// other read error; none of them is returned as an error.
func loadCachedTables(dir string) (*Tables, error) {
	p := func(name string) string { return filepath.Join(dir, name) }

	fsClassIdx, err1 := readUint16File(p(fileFSClassIdx), flipMax*sliceMax)
	fsSym, err2 := readUint8File(p(fileFSSym), flipMax*sliceMax)
	fsRep, err3 := readUint32File(p(fileFSRep), flipSliceClassMax)
	coClassIdx, err4 := readUint16File(p(fileCOClassIdx), cornersMax)
	coSym, err5 := readUint8File(p(fileCOSym), cornersMax)
	coRep, err6 := readUint16File(p(fileCORep), cornerClassMax)
	if anyMissing(err1, err2, err3, err4, err5, err6) {
		return nil, nil
	}

	twist, err7 := readUint16File(p(fileMoveTwist), twistMax*numMoves)
	flip, err8 := readUint16File(p(fileMoveFlip), flipMax*numMoves)
	sliceSorted, err9 := readUint16File(p(fileMoveSliceSort), sliceSortedMax*numMoves)
	uEdges, err10 := readUint16File(p(fileMoveUEdges), uEdgesMax*numMoves)
	dEdges, err11 := readUint16File(p(fileMoveDEdges), dEdgesMax*numMoves)
	udEdges, err12 := readUint16File(p(fileMoveUDEdges), udEdgesMax*numMoves)
	corners, err13 := readUint16File(p(fileMoveCorners), cornersMax*numMoves)
	if anyMissing(err7, err8, err9, err10, err11, err12, err13) {
		return nil, nil
	}

	conjTwist, err14 := readUint16File(p(fileConjTwist), twistMax*numSymD4h)
	conjUDEdges, err15 := readUint16File(p(fileConjUDEdges), udEdgesMax*numSymD4h)
	if anyMissing(err14, err15) {
		return nil, nil
	}

	phase1, err16 := readUint32File(p(filePhase1Prun), (flipSliceClassMax*twistMax)/16+1)
	phase2, err17 := readUint32File(p(filePhase2Prun), (cornerClassMax*udEdgesMax)/16+1)
	cornSliceDepth, err18 := readUint8File(p(filePhase2CSPrun), cornersMax*24)
	edgeMerge, err19 := readUint16File(p(filePhase2EdgeMerg), uEdgesMax*24)
	if anyMissing(err16, err17, err18, err19) {
		return nil, nil
	}

	return &Tables{
		class: &classTables{
			flipSliceClassIdx: fsClassIdx,
			flipSliceSym:      fsSym,
			flipSliceRep:      fsRep,
			cornerClassIdx:    coClassIdx,
			cornerSym:         coSym,
			cornerRep:         coRep,
		},
		move: &moveTables{
			twist: twist, flip: flip, sliceSorted: sliceSorted,
			uEdges: uEdges, dEdges: dEdges, udEdges: udEdges, corners: corners,
		},
		conj: &conjTables{twist: conjTwist, udEdges: conjUDEdges},
		prune: &pruneTables{
			phase1: phase1, phase2: phase2,
			cornSliceDepth: cornSliceDepth, phase2EdgeMerge: edgeMerge,
		},
	}, nil
}

// anyMissing reports whether any of errs is non-nil. Every read error —
// a missing file, a size mismatch or any other failure — means "no
// usable cache", not a hard failure.
func anyMissing(errs ...error) bool {
	for _, err := range errs {
		if err != nil {
			return true
		}
	}
	return false
}

func saveCachedTables(dir string, t *Tables) error {
	p := func(name string) string { return filepath.Join(dir, name) }

	writers := []func() error{
		func() error { return writeUint16File(p(fileFSClassIdx), t.class.flipSliceClassIdx) },
		func() error { return writeUint8File(p(fileFSSym), t.class.flipSliceSym) },
		func() error { return writeUint32File(p(fileFSRep), t.class.flipSliceRep) },
		func() error { return writeUint16File(p(fileCOClassIdx), t.class.cornerClassIdx) },
		func() error { return writeUint8File(p(fileCOSym), t.class.cornerSym) },
		func() error { return writeUint16File(p(fileCORep), t.class.cornerRep) },

		func() error { return writeUint16File(p(fileMoveTwist), t.move.twist) },
		func() error { return writeUint16File(p(fileMoveFlip), t.move.flip) },
		func() error { return writeUint16File(p(fileMoveSliceSort), t.move.sliceSorted) },
		func() error { return writeUint16File(p(fileMoveUEdges), t.move.uEdges) },
		func() error { return writeUint16File(p(fileMoveDEdges), t.move.dEdges) },
		func() error { return writeUint16File(p(fileMoveUDEdges), t.move.udEdges) },
		func() error { return writeUint16File(p(fileMoveCorners), t.move.corners) },

		func() error { return writeUint16File(p(fileConjTwist), t.conj.twist) },
		func() error { return writeUint16File(p(fileConjUDEdges), t.conj.udEdges) },
		func() error { return writeUint16File(p(fileConjMove), conjMoveTableAsUint16()) },

		func() error { return writeUint32File(p(filePhase1Prun), t.prune.phase1) },
		func() error { return writeUint32File(p(filePhase2Prun), t.prune.phase2) },
		func() error { return writeUint8File(p(filePhase2CSPrun), t.prune.cornSliceDepth) },
		func() error { return writeUint16File(p(filePhase2EdgeMerg), t.prune.phase2EdgeMerge) },
	}
	for _, w := range writers {
		if err := w(); err != nil {
			return err
		}
	}
	return nil
}

func conjMoveTableAsUint16() []uint16 {
	out := make([]uint16, len(conjMoveTable))
	for i, v := range conjMoveTable {
		out[i] = uint16(v)
	}
	return out
}
