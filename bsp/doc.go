// Package bsp builds a Binary Space Partitioning tree over a flat array of
// integer wall segments, assigns deterministic leaf ids, clips each
// interior node's splitter to its convex subspace, and answers
// point/segment location queries against the finished tree.
//
// Construction (BuildBSP) groups input segments onto shared geom.Lines,
// then recursively partitions using a min-split heuristic: at each node the
// candidate splitter minimising the number of segments it would cut is
// chosen, segments are classified against it, straddling segments are
// split, and recursion continues on the non-empty sides. Leaf ids are
// assigned left-before-right as empty sides are discovered, which is also
// the tree's natural left-to-right leaf order.
//
// The resulting Tree is immutable: BuildPortals (package portal) fills in
// each interior Node's Portals slice without altering anything else, and
// every other operation in this package is read-only.
//
// Errors:
//
//	ErrEmptyInput           no segments given.
//	ErrInvalidInputLength   input length is not a multiple of 5.
//	ErrZeroLengthSegment    an input segment has coincident endpoints.
//	ErrConflictingOpacity   two coincident input segments on the same line
//	                        overlap with different opacity.
package bsp
