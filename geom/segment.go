package geom

import "math"

// Segment is an interval [TStart, TEnd] on a Line, with TStart < TEnd.
// Opaque records whether the segment blocks sight. Segments are created
// during ingestion and further split by the BSP builder and the portal
// extractor; a split always produces two Segments sharing the split t
// boundary.
type Segment struct {
	Line         *Line
	TStart, TEnd float64
	Opaque       bool
}

// NewSegment validates tStart < tEnd and attaches the new Segment to line's
// member list.
func NewSegment(line *Line, tStart, tEnd float64, opaque bool) (*Segment, error) {
	if tStart >= tEnd {
		return nil, ErrZeroLengthSegment
	}
	s := &Segment{Line: line, TStart: tStart, TEnd: tEnd, Opaque: opaque}
	line.Segments = append(line.Segments, s)
	return s, nil
}

// PointAtStart returns the segment's A-side endpoint.
func (s *Segment) PointAtStart() (x, y float64) { return s.Line.PointAt(s.TStart) }

// PointAtEnd returns the segment's B-side endpoint.
func (s *Segment) PointAtEnd() (x, y float64) { return s.Line.PointAt(s.TEnd) }

// Midpoint returns a representative point on the segment's t-interval. Used
// by the split classifier to resolve near-tangent (within-epsilon) crossing
// points, and to pick a side for segments parallel to the splitter, where
// the crossing itself is either nonexistent or too close to an endpoint to
// trust. For a finite interval this is the true midpoint; for an
// infinite-extent boundary portal (TStart = -Inf and/or TEnd = +Inf, the
// normal case for the outermost portal at any BSP level) the ordinary
// ((TStart+TEnd)/2) average degenerates to ±Inf * 0 = NaN once it reaches
// Line.PointAt, so an infinite bound is instead stepped one unit in from
// whichever end is finite — any point works, since both callers only need
// a point known to lie strictly inside the interval and on one consistent
// side of a splitter that does not cross the segment's interior.
func (s *Segment) Midpoint() (x, y float64) {
	return s.Line.PointAt(midpointT(s.TStart, s.TEnd))
}

func midpointT(tStart, tEnd float64) float64 {
	startInf := math.IsInf(tStart, -1)
	endInf := math.IsInf(tEnd, 1)
	switch {
	case startInf && endInf:
		return 0
	case startInf:
		return tEnd - 1
	case endInf:
		return tStart + 1
	default:
		return (tStart + tEnd) / 2
	}
}

// Split cuts the segment at parameter t (TStart < t < TEnd), returning the
// two halves in t order. Both halves inherit Line and Opaque.
func (s *Segment) Split(t float64) (lo, hi *Segment) {
	lo = &Segment{Line: s.Line, TStart: s.TStart, TEnd: t, Opaque: s.Opaque}
	hi = &Segment{Line: s.Line, TStart: t, TEnd: s.TEnd, Opaque: s.Opaque}
	return lo, hi
}
