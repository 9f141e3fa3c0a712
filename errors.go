package hanoi

import "errors"

// Sentinel errors for the hanoi package.
var (
	// ErrDiscCount reports a game constructed outside the supported
	// disc-count range.
	ErrDiscCount = errors.New("hanoi: disc count must be between 3 and 6")

	// ErrUnknownPeg reports a peg identifier that is not A, B or C.
	ErrUnknownPeg = errors.New("hanoi: unknown peg identifier")
)
