package engine

import "errors"

var (
	// ErrInvalidArgument reports an out-of-domain value passed by the caller,
	// such as an unknown direction.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvariantViolation reports a board state the engine itself should
	// never produce. Seeing it means the engine has a bug.
	ErrInvariantViolation = errors.New("invariant violation")
)
