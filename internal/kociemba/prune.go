package kociemba

// Pruning tables dominate both memory and construction time. Entries are
// packed 2 bits each (16 per uint32): a value of 0,1,2 is an exact depth
// mod 3, and 3 means "not yet reached". Reconstructing the true depth at
// search time from the mod-3 residue is the search layer's job, not this
// one's.

func getPacked2(table []uint32, idx int) int {
	return int((table[idx/16] >> uint((idx%16)*2)) & 3)
}

func setPacked2(table []uint32, idx, val int) {
	shift := uint((idx%16) * 2)
	table[idx/16] = (table[idx/16] &^ (3 << shift)) | (uint32(val) << shift)
}

func newPacked2(n int) []uint32 {
	table := make([]uint32, n/16+1)
	for i := range table {
		table[i] = 0xffffffff
	}
	return table
}

// pruneTables holds the two IDA* lower-bound tables plus two auxiliary
// phase-2 tables: cornSliceDepth, which phase 2's search uses to get a
// tighter bound than phase2Prun alone provides, and phase2EdgeMerge,
// which the search does not read.
type pruneTables struct {
	phase1 []uint32 // [twistMax*fsClassidx+twist], depth mod 3
	phase2 []uint32 // [udEdgesMax*cClassidx+udEdge], depth mod 3

	cornSliceDepth  []byte   // [24*corners+slice], exact depth, phase-2 moves only
	phase2EdgeMerge []uint16 // [24*uEdges+dEdgesPerm] -> udEdges
}

// buildFlipSliceSelfSyms returns, for each flipSlice class, the bitmask of
// D4h symmetries that fix its representative — used to propagate a
// newly-discovered depth to every symmetric sibling of a state in one
// step instead of waiting for the BFS to reach each one independently.
func buildFlipSliceSelfSyms(ct *classTables) []uint16 {
	mask := make([]uint16, flipSliceClassMax)
	for i := 0; i < flipSliceClassMax; i++ {
		rep := ct.flipSliceRep[i]
		slice := int(rep) / flipMax
		flip := int(rep) % flipMax
		state := setFlipOn(setSlice(slice), flip)
		for s := 0; s < numSymD4h; s++ {
			ss := conjugateForClass(state, s)
			if flipMax*getSlice(ss)+getFlip(ss) == int(rep) {
				mask[i] |= 1 << uint(s)
			}
		}
	}
	return mask
}

func buildCornerSelfSyms(ct *classTables) []uint16 {
	mask := make([]uint16, cornerClassMax)
	for i := 0; i < cornerClassMax; i++ {
		rep := int(ct.cornerRep[i])
		state := setCorners(rep)
		for s := 0; s < numSymD4h; s++ {
			ss := conjugateForClass(state, s)
			if getCorners(ss) == rep {
				mask[i] |= 1 << uint(s)
			}
		}
	}
	return mask
}

// buildPhase1Prune builds the (flipSliceClass, twist) -> depth mod 3
// table by a forward BFS from the solved class that switches to a
// backward sweep once depth reaches 9: past that point almost every
// entry is already filled, so it is cheaper to ask "does any neighbor
// of this unfilled entry already carry depth-1" than to expand filled
// entries outward.
func buildPhase1Prune(ct *classTables, mt *moveTables, cj *conjTables) []uint32 {
	total := flipSliceClassMax * twistMax
	table := newPacked2(total)
	fsSym := buildFlipSliceSelfSyms(ct)

	setPacked2(table, 0, 0)
	done := 1
	depth := 0
	backsearch := false

	for done != total {
		depth3 := depth % 3
		if depth == 9 {
			backsearch = true
		}

		idx := 0
		for fsClassidx := 0; fsClassidx < flipSliceClassMax; fsClassidx++ {
			flipslice := ct.flipSliceRep[fsClassidx]
			flip := int(flipslice) % flipMax
			slice := int(flipslice) / flipMax

			for twist := 0; twist < twistMax; twist++ {
				if !backsearch && idx%16 == 0 && table[idx/16] == 0xffffffff && twist < twistMax-16 {
					twist += 15
					idx += 16
					continue
				}

				var match bool
				if backsearch {
					match = getPacked2(table, idx) == 3
				} else {
					match = getPacked2(table, idx) == depth3
				}

				if match {
					for m := 0; m < numMoves; m++ {
						twist1 := int(mt.twist[twist*numMoves+m])
						flip1 := int(mt.flip[flip*numMoves+m])
						slice1 := int(mt.sliceSorted[slice*numMoves+m]) / 24

						flipslice1 := slice1*flipMax + flip1
						fs1Classidx := int(ct.flipSliceClassIdx[flipslice1])
						fs1Sym := int(ct.flipSliceSym[flipslice1])

						twist1 = int(cj.twist[twist1*numSymD4h+fs1Sym])
						idx1 := twistMax*fs1Classidx + twist1

						if !backsearch {
							if getPacked2(table, idx1) == 3 {
								setPacked2(table, idx1, (depth+1)%3)
								done++

								sym := fsSym[fs1Classidx]
								if sym != 1 {
									for k := 1; k < numSymD4h; k++ {
										if (sym>>uint(k))&1 == 1 {
											twist2 := int(cj.twist[twist1*numSymD4h+k])
											idx2 := twistMax*fs1Classidx + twist2
											if getPacked2(table, idx2) == 3 {
												setPacked2(table, idx2, (depth+1)%3)
												done++
											}
										}
									}
								}
							}
						} else {
							if getPacked2(table, idx1) == depth3 {
								setPacked2(table, idx, (depth+1)%3)
								done++
								break
							}
						}
					}
				}
				idx++
			}
		}
		depth++
	}
	return table
}

// buildPhase2Prune builds the (cornerClass, udEdges) -> depth mod 3
// table, restricted to the 10 phase-2 generators, with the same
// forward-BFS-plus-symmetry-propagation shape as phase 1 and no backward
// sweep. The BFS runs a fixed 10 rounds (depths 0..9), so only entries
// up to depth 10 are filled; deeper entries keep the unfilled value 3.
func buildPhase2Prune(ct *classTables, mt *moveTables, cj *conjTables) []uint32 {
	total := cornerClassMax * udEdgesMax
	table := newPacked2(total)
	cSym := buildCornerSelfSyms(ct)

	setPacked2(table, 0, 0)
	done := 1
	depth := 0

	for depth < 10 {
		depth3 := depth % 3
		idx := 0

		for cClassidx := 0; cClassidx < cornerClassMax; cClassidx++ {
			corner := int(ct.cornerRep[cClassidx])

			for udEdge := 0; udEdge < udEdgesMax; udEdge++ {
				if idx%16 == 0 && table[idx/16] == 0xffffffff && udEdge < udEdgesMax-16 {
					udEdge += 15
					idx += 16
					continue
				}

				if getPacked2(table, idx) == depth3 {
					for _, m := range phase2Moves {
						udEdge1 := int(mt.udEdges[udEdge*numMoves+m])
						corner1 := int(mt.corners[corner*numMoves+m])
						c1Classidx := int(ct.cornerClassIdx[corner1])
						c1Sym := int(ct.cornerSym[corner1])

						udEdge1 = int(cj.udEdges[udEdge1*numSymD4h+c1Sym])
						idx1 := udEdgesMax*c1Classidx + udEdge1

						if getPacked2(table, idx1) == 3 {
							setPacked2(table, idx1, (depth+1)%3)
							done++

							sym := cSym[c1Classidx]
							if sym != 1 {
								for k := 1; k < numSymD4h; k++ {
									if (sym>>uint(k))&1 == 1 {
										udEdge2 := int(cj.udEdges[udEdge1*numSymD4h+k])
										idx2 := udEdgesMax*c1Classidx + udEdge2
										if getPacked2(table, idx2) == 3 {
											setPacked2(table, idx2, (depth+1)%3)
											done++
										}
									}
								}
							}
						}
					}
				}
				idx++
			}
		}
		depth++
	}
	return table
}

// buildCornSliceDepth is a plain byte-exact BFS (no symmetry reduction,
// no mod-3 packing) over (corners, slicePermutation) restricted to
// phase-2 moves. Its smaller domain lets phase 2 use an exact depth
// as a second lower bound alongside phase2Prun, tightening IDA*'s
// bound beyond what either table gives alone.
func buildCornSliceDepth(mt *moveTables) []byte {
	const n = cornersMax * 24
	table := make([]byte, n)
	for i := range table {
		table[i] = 0xff
	}
	table[0] = 0

	depth := byte(0)
	done := 1
	for done < n {
		newPositions := 0
		for corners := 0; corners < cornersMax; corners++ {
			for slice := 0; slice < 24; slice++ {
				if table[24*corners+slice] != depth {
					continue
				}
				for _, m := range phase2Moves {
					corners1 := int(mt.corners[corners*numMoves+m])
					slice1 := int(mt.sliceSorted[slice*numMoves+m])
					idx1 := 24*corners1 + slice1
					if table[idx1] == 0xff {
						table[idx1] = depth + 1
						done++
						newPositions++
					}
				}
			}
		}
		depth++
		if newPositions == 0 {
			break
		}
	}
	return table
}

// buildPhase2EdgeMerge precomputes, for every (uEdges, dEdgesPermutation)
// pair that doesn't collide, the resulting udEdges coordinate, so a
// u-layer and d-layer placement can be combined in one table lookup.
// The table is built and cached, but the search does not consult it.
func buildPhase2EdgeMerge() []uint16 {
	const permCount = 24
	table := make([]uint16, uEdgesMax*permCount)

	for i := 0; i < uEdgesMax; i++ {
		cu := setUEdges(i)

		for j := 0; j < sliceMax; j++ {
			cd := setDEdges(j * permCount)

			invalid := false
			for e := UR; e <= DB; e++ {
				posU := cu.edgePos[e]
				posD := cd.edgePos[e]
				bothU := posU <= UB && posD <= UB
				bothD := posU >= DR && posU <= DB && posD >= DR && posD <= DB
				if bothU || bothD {
					invalid = true
					break
				}
			}
			if invalid {
				continue
			}

			for k := 0; k < permCount; k++ {
				cdPerm := setDEdges(j*permCount + k)

				var combined Cubie
				for e := UR; e <= DB; e++ {
					posU := cu.edgePos[e]
					posD := cdPerm.edgePos[e]
					if posU <= UB {
						combined.edgePos[e] = posU
						combined.edgeOri[e] = cu.edgeOri[e]
					} else if posD >= DR && posD <= DB {
						combined.edgePos[e] = posD
						combined.edgeOri[e] = cdPerm.edgeOri[e]
					}
				}
				combined.edgePos[FR], combined.edgePos[FL], combined.edgePos[BL], combined.edgePos[BR] = FR, FL, BL, BR

				table[permCount*i+k] = uint16(getUDEdges(combined))
			}
		}
	}
	return table
}

func buildPruneTables(ct *classTables, mt *moveTables, cj *conjTables) *pruneTables {
	return &pruneTables{
		phase1:          buildPhase1Prune(ct, mt, cj),
		phase2:          buildPhase2Prune(ct, mt, cj),
		cornSliceDepth:  buildCornSliceDepth(mt),
		phase2EdgeMerge: buildPhase2EdgeMerge(),
	}
}
