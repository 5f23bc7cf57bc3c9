package kociemba

import (
	"time"
)

// SolveOptions configures a solve call; the zero value is usable and
// picks sensible defaults for every field.
type SolveOptions struct {
	// CacheDir overrides where pruning tables are read from and
	// written to. Empty uses the platform default cache directory.
	CacheDir string

	// MaxLength caps the returned solution's move count. Zero selects
	// 20, generous enough that virtually every scramble solves well
	// under the cap while still bounding worst-case search time.
	MaxLength int

	// TimeoutSeconds bounds how long the search runs before giving up
	// with ErrTimeout. Zero selects 3 seconds.
	TimeoutSeconds float64
}

func (o SolveOptions) normalized() SolveOptions {
	if o.MaxLength <= 0 {
		o.MaxLength = 20
	}
	if o.TimeoutSeconds <= 0 {
		o.TimeoutSeconds = 3.0
	}
	return o
}

// Solve decodes a 54-character facelet string and returns the move
// string of a solution, or an error wrapping ErrTimeout/ErrUnsolvable
// on failure to find one within the budget.
func Solve(facelet string, opts SolveOptions) (string, error) {
	cube, err := DecodeFacelet(facelet)
	if err != nil {
		return "", err
	}
	return SolveState(cube, opts)
}

// SolveState runs the two-phase search on an already-decoded cube.
func SolveState(cube Cubie, opts SolveOptions) (string, error) {
	if err := cube.IsValid(); err != nil {
		return "", err
	}
	opts = opts.normalized()

	cacheDir := opts.CacheDir
	if cacheDir == "" {
		cacheDir = defaultCacheDir()
	}
	t, err := loadOrBuildTables(cacheDir)
	if err != nil {
		return "", err
	}

	deadline := time.Now().Add(time.Duration(opts.TimeoutSeconds * float64(time.Second)))
	moves, ok := solveCoreSearch(t, cube, opts.MaxLength, deadline)
	if !ok {
		if time.Now().After(deadline) {
			return "", newErr(ErrTimeout, "no solution found within time budget")
		}
		return "", newErr(ErrUnsolvable, "no solution within max length")
	}
	return FormatMoveString(moves), nil
}

// Scramble applies a whitespace-separated move string to state and
// returns the resulting cube, for building test fixtures.
func Scramble(state Cubie, moveString string) (Cubie, error) {
	moves, err := ParseMoveString(moveString)
	if err != nil {
		return Cubie{}, err
	}
	cur := state
	for _, m := range moves {
		cur = cur.ApplyMove(m)
	}
	return cur, nil
}
