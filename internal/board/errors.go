package board

import "errors"

// Sentinel errors for the board package's fallible entry points.
// Callers should use errors.Is against these rather than matching strings.
var (
	// ErrInvalidSquare is returned when algebraic square notation cannot
	// be parsed (wrong length or out-of-range file/rank).
	ErrInvalidSquare = errors.New("board: invalid square")

	// ErrMalformedFEN is returned by SetupFEN/ParseFEN when a FEN string
	// fails to decode: wrong field count, an unrecognised piece letter, a
	// rank that doesn't sum to 8 files, or an unparsable numeric field.
	ErrMalformedFEN = errors.New("board: malformed FEN")
)
