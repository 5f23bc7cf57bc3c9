package kociemba

import "errors"

// ErrorKind identifies the category of a solver failure, mirroring the
// error taxonomy a caller needs to branch on: bad input, a broken
// invariant, a resource problem, or a search outcome.
type ErrorKind int

const (
	// ErrNone is the zero value; no error occurred.
	ErrNone ErrorKind = iota

	// Input errors: raised by the facelet codec.
	ErrInvalidFacelet
	ErrInvalidColorCount
	ErrUnknownCorner
	ErrUnknownEdge

	// Invariant errors: raised by the validator after decoding.
	ErrCornerOriSum
	ErrEdgeOriSum
	ErrParityMismatch

	// Resource errors: raised during table construction, fatal.
	ErrCacheIO
	ErrClassCountMismatch

	// Search outcomes: normal return values of Solve.
	ErrTimeout
	ErrUnsolvable
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNone:
		return "none"
	case ErrInvalidFacelet:
		return "InvalidFacelet"
	case ErrInvalidColorCount:
		return "InvalidColorCount"
	case ErrUnknownCorner:
		return "UnknownCorner"
	case ErrUnknownEdge:
		return "UnknownEdge"
	case ErrCornerOriSum:
		return "CornerOriSum"
	case ErrEdgeOriSum:
		return "EdgeOriSum"
	case ErrParityMismatch:
		return "ParityMismatch"
	case ErrCacheIO:
		return "CacheIoError"
	case ErrClassCountMismatch:
		return "ClassCountMismatch"
	case ErrTimeout:
		return "Timeout"
	case ErrUnsolvable:
		return "Unsolvable"
	default:
		return "unknown"
	}
}

// SolverError is a structured error carrying its ErrorKind so callers can
// switch on its Kind field instead of parsing Error() strings.
type SolverError struct {
	Kind ErrorKind
	Msg  string
}

func (e *SolverError) Error() string {
	if e.Msg != "" {
		return e.Kind.String() + ": " + e.Msg
	}
	return e.Kind.String()
}

func newErr(kind ErrorKind, msg string) *SolverError {
	return &SolverError{Kind: kind, Msg: msg}
}

// AsSolverError extracts the ErrorKind from err, returning (kind, true) if
// err originated from this package.
func AsSolverError(err error) (ErrorKind, bool) {
	var se *SolverError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return ErrNone, false
}
