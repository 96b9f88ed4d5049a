// Package geom provides the integer-exact geometric primitives the rest of
// pvs2d is built on: points, infinite lines parameterised by two integer
// endpoints, segments (t-intervals on a line), and the side/split
// classification used by the BSP builder and the portal extractor.
//
// Exactness:
//
//	Collinearity and side tests are evaluated in int64 so they are exact for
//	any geometry whose coordinates fit in int32. Intersection parameters and
//	interior-cut detection are evaluated in float64 against a single
//	configurable Epsilon (see Config, WithEpsilon), since two segments'
//	crossing point rarely lands on an integer coordinate.
//
// Complexity: every primitive in this package is O(1).
package geom
