package kociemba

const (
	flipSliceClassMax = 64430
	cornerClassMax    = 2768
	invalidClass      = 0xFFFF
)

// classTables holds the symmetry-reduced equivalence classes for
// flip+slice (phase 1) and corner permutation (phase 2), each as a
// classIdx/sym/rep triple built by a single conjugation pass under the
// 16-element D4h subgroup.
type classTables struct {
	flipSliceClassIdx []uint16 // [flipMax*slc+flip] -> classidx
	flipSliceSym      []uint8  // [flipMax*slc+flip] -> symmetry carrying it to the rep
	flipSliceRep      []uint32 // classidx -> representative flat index

	cornerClassIdx []uint16 // [corners] -> classidx
	cornerSym      []uint8  // [corners] -> symmetry
	cornerRep      []uint16 // classidx -> representative corners coordinate
}

func buildFlipSliceClasses() ([]uint16, []uint8, []uint32, error) {
	size := flipMax * sliceMax
	classIdx := make([]uint16, size)
	sym := make([]uint8, size)
	rep := make([]uint32, flipSliceClassMax)
	for i := range classIdx {
		classIdx[i] = invalidClass
	}

	classidx := 0
	for slc := 0; slc < sliceMax; slc++ {
		base := setSlice(slc)
		for flip := 0; flip < flipMax; flip++ {
			idx := flipMax*slc + flip
			if classIdx[idx] != invalidClass {
				continue
			}
			if classidx >= flipSliceClassMax {
				return nil, nil, nil, newErr(ErrClassCountMismatch, "too many flipSlice classes")
			}
			state := setFlipOn(base, flip)
			classIdx[idx] = uint16(classidx)
			sym[idx] = 0
			rep[classidx] = uint32(idx)

			for s := 0; s < numSymD4h; s++ {
				ss := conjugateForClass(state, s)
				newIdx := flipMax*getSlice(ss) + getFlip(ss)
				if classIdx[newIdx] == invalidClass {
					classIdx[newIdx] = uint16(classidx)
					sym[newIdx] = uint8(s)
				}
			}
			classidx++
		}
	}
	if classidx != flipSliceClassMax {
		return nil, nil, nil, newErr(ErrClassCountMismatch, "flipSlice class count mismatch")
	}
	return classIdx, sym, rep, nil
}

func buildCornerClasses() ([]uint16, []uint8, []uint16, error) {
	classIdx := make([]uint16, cornersMax)
	sym := make([]uint8, cornersMax)
	rep := make([]uint16, cornerClassMax)
	for i := range classIdx {
		classIdx[i] = invalidClass
	}

	classidx := 0
	for cp := 0; cp < cornersMax; cp++ {
		if classIdx[cp] != invalidClass {
			continue
		}
		if classidx >= cornerClassMax {
			return nil, nil, nil, newErr(ErrClassCountMismatch, "too many corner classes")
		}
		state := setCorners(cp)
		classIdx[cp] = uint16(classidx)
		sym[cp] = 0
		rep[classidx] = uint16(cp)

		for s := 0; s < numSymD4h; s++ {
			ss := conjugateForClass(state, s)
			newCp := getCorners(ss)
			if classIdx[newCp] == invalidClass {
				classIdx[newCp] = uint16(classidx)
				sym[newCp] = uint8(s)
			}
		}
		classidx++
	}
	if classidx != cornerClassMax {
		return nil, nil, nil, newErr(ErrClassCountMismatch, "corner class count mismatch")
	}
	return classIdx, sym, rep, nil
}

func buildClassTables() (*classTables, error) {
	fsClassIdx, fsSym, fsRep, err := buildFlipSliceClasses()
	if err != nil {
		return nil, err
	}
	coClassIdx, coSym, coRep, err := buildCornerClasses()
	if err != nil {
		return nil, err
	}
	return &classTables{
		flipSliceClassIdx: fsClassIdx,
		flipSliceSym:      fsSym,
		flipSliceRep:      fsRep,
		cornerClassIdx:    coClassIdx,
		cornerSym:         coSym,
		cornerRep:         coRep,
	}, nil
}
