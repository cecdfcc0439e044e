package engine

import "errors"

var (
	// ErrNoLegalMoves is returned when a best move is requested for a
	// terminal position. That is a caller error: terminal positions must
	// not be queried.
	ErrNoLegalMoves = errors.New("engine: position has no legal moves")

	// ErrInvalidDepth is returned for a search horizon below one ply.
	ErrInvalidDepth = errors.New("engine: search depth must be at least 1")
)
