// Package scenefixture parses a small textual scene-description language
// into the flat []int32 array bsp.BuildBSP consumes, for use in test files.
// It is not part of the public pipeline API.
//
// Grammar:
//
//	scene   = { wall } .
//	wall    = "wall" point point opacity .
//	point   = int "," int .
//	opacity = "opaque" | "transparent" .
//
// Coordinates are non-negative integers; test fixtures needing negative
// coordinates should build the []int32 array directly instead.
//
// Example:
//
//	wall 0,0 4,0 opaque
//	wall 4,0 4,4 transparent
package scenefixture
