package geom

import "errors"

// Sentinel errors for the geom package. Callers should branch with
// errors.Is, never by comparing error strings.
var (
	// ErrDegenerateLine indicates a Line's two basis points coincide.
	ErrDegenerateLine = errors.New("geom: degenerate line (A == B)")

	// ErrZeroLengthSegment indicates a Segment whose t-interval has no width.
	ErrZeroLengthSegment = errors.New("geom: zero-length segment")
)
