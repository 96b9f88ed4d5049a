package bsp

import "errors"

// Sentinel errors for the bsp package. Branch with errors.Is; messages are
// not part of the contract.
var (
	// ErrEmptyInput indicates the input segment array had no entries.
	ErrEmptyInput = errors.New("bsp: empty segment input")

	// ErrInvalidInputLength indicates the flat []int32 input length is not
	// a multiple of 5 (ax,ay,bx,by,opq per segment).
	ErrInvalidInputLength = errors.New("bsp: input length is not a multiple of 5")

	// ErrZeroLengthSegment indicates an input segment's two endpoints
	// coincide.
	ErrZeroLengthSegment = errors.New("bsp: zero-length input segment")

	// ErrConflictingOpacity indicates two input segments are coincident
	// (same line, overlapping t-interval) with differing opacity. See
	// DESIGN.md for the resolution of this spec Open Question.
	ErrConflictingOpacity = errors.New("bsp: coincident segments with conflicting opacity")

	// ErrAllocation is reserved for allocation-failure reporting from the
	// build pipeline; Go's runtime panics on true OOM rather than
	// returning an error, so no code path currently produces it. Kept for
	// parity with the documented error taxonomy.
	ErrAllocation = errors.New("bsp: allocation failure")
)
