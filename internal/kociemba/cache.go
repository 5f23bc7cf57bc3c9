package kociemba

import (
	"encoding/binary"
	"os"
	"path/filepath"
)

// The 20 on-disk tables by their fixed file name, each a raw
// little-endian dump of the element width noted.
const (
	fileConjTwist      = "conj_twist"      // uint16
	fileConjUDEdges    = "conj_ud_edges"   // uint16
	fileConjMove       = "conj_move"       // uint16 (stored; narrowed from int)
	fileFSClassIdx     = "fs_classidx"     // uint16
	fileFSSym          = "fs_sym"          // uint8
	fileFSRep          = "fs_rep"          // uint32
	fileCOClassIdx     = "co_classidx"     // uint16
	fileCOSym          = "co_sym"          // uint8
	fileCORep          = "co_rep"          // uint16
	fileMoveTwist      = "move_twist"      // uint16
	fileMoveFlip       = "move_flip"       // uint16
	fileMoveSliceSort  = "move_slice_sorted"
	fileMoveUEdges     = "move_u_edges"
	fileMoveDEdges     = "move_d_edges"
	fileMoveUDEdges    = "move_ud_edges"
	fileMoveCorners    = "move_corners"
	filePhase1Prun     = "phase1_prun"           // uint32, packed
	filePhase2Prun     = "phase2_prun"           // uint32, packed
	filePhase2CSPrun   = "phase2_cornsliceprun"  // uint8
	filePhase2EdgeMerg = "phase2_edgemerge"      // uint16
)

// defaultCacheDir returns a platform-appropriate per-user cache
// directory for the precomputed tables; callers may override it via
// SolveOptions.CacheDir.
func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "kociemba")
	}
	return filepath.Join(os.TempDir(), "kociemba-cache")
}

func writeUint16File(path string, data []uint16) error {
	buf := make([]byte, len(data)*2)
	for i, v := range data {
		binary.LittleEndian.PutUint16(buf[i*2:], v)
	}
	return atomicWrite(path, buf)
}

func readUint16File(path string, n int) ([]uint16, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(buf) != n*2 {
		return nil, newErr(ErrCacheIO, "size mismatch reading "+filepath.Base(path))
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(buf[i*2:])
	}
	return out, nil
}

func writeUint32File(path string, data []uint32) error {
	buf := make([]byte, len(data)*4)
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return atomicWrite(path, buf)
}

func readUint32File(path string, n int) ([]uint32, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(buf) != n*4 {
		return nil, newErr(ErrCacheIO, "size mismatch reading "+filepath.Base(path))
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return out, nil
}

func writeUint8File(path string, data []uint8) error {
	return atomicWrite(path, data)
}

func readUint8File(path string, n int) ([]uint8, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(buf) != n {
		return nil, newErr(ErrCacheIO, "size mismatch reading "+filepath.Base(path))
	}
	return buf, nil
}

// atomicWrite writes data to a temp file in dir(path) and renames it
// over path, so a reader never observes a partially-written cache file
// even if two processes race to build it on first run.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newErr(ErrCacheIO, err.Error())
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return newErr(ErrCacheIO, err.Error())
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return newErr(ErrCacheIO, err.Error())
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return newErr(ErrCacheIO, err.Error())
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return newErr(ErrCacheIO, err.Error())
	}
	return nil
}
