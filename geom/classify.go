package geom

import "math"

// SplitClass tags the outcome of classifying a Segment against a splitter
// Line.
type SplitClass int

const (
	// ClassCOL: the segment's line is the splitter's line.
	ClassCOL SplitClass = iota
	// ClassLParal: parallel to the splitter, entirely on the Left side.
	ClassLParal
	// ClassRParal: parallel to the splitter, entirely on the Right side.
	ClassRParal
	// ClassSFL: the splitter cuts through the segment's interior; the
	// segment's B endpoint lies on the Left side (so [cross,TEnd] is Left).
	ClassSFL
	// ClassSFR: as ClassSFL, but the B endpoint lies on the Right side.
	ClassSFR
	// ClassLFL: wholly on the Left side (touches splitter within epsilon of
	// an endpoint, not a true interior crossing); forward-aligned orientation.
	ClassLFL
	// ClassLFR: wholly on the Left side, reverse-aligned orientation.
	ClassLFR
	// ClassRFL: wholly on the Right side, forward-aligned orientation.
	ClassRFL
	// ClassRFR: wholly on the Right side, reverse-aligned orientation.
	ClassRFR
)

// Classification is the result of classifying one Segment against one
// splitter Line.
type Classification struct {
	Class SplitClass
	// CrossT is the parameter, on the segment's own Line, at which the
	// splitter crosses it. Only meaningful for ClassSFL/ClassSFR.
	CrossT float64
}

// IsLeft reports whether a non-straddling, non-collinear classification
// places the segment (or sub-segment) in the left subspace.
func (c SplitClass) IsLeft() bool {
	return c == ClassLParal || c == ClassLFL || c == ClassLFR
}

// IsRight reports whether a non-straddling, non-collinear classification
// places the segment (or sub-segment) in the right subspace.
func (c SplitClass) IsRight() bool {
	return c == ClassRParal || c == ClassRFL || c == ClassRFR
}

// IsStraddle reports whether the splitter cuts through the segment's
// interior, requiring Split.
func (c SplitClass) IsStraddle() bool { return c == ClassSFL || c == ClassSFR }

// ClassifySegment classifies segment s against splitter using the interior-
// cut tolerance eps. The interior-cut test is
// s.TStart + eps < crossT < s.TEnd - eps; crossings within eps of either
// endpoint are treated as touching, not cutting, and resolved by the
// segment's midpoint side instead of the (unreliable, near-tangent) cross
// point.
func ClassifySegment(s *Segment, splitter *Line, eps Epsilon) Classification {
	if SameLine(s.Line, splitter) {
		return Classification{Class: ClassCOL}
	}

	crossT, _, ok := splitter.Intersect(s.Line)
	if !ok {
		// Parallel lines: the whole segment lies on one side.
		mx, my := s.Midpoint()
		if splitter.SideOfXY(mx, my) == Left {
			return Classification{Class: ClassLParal}
		}
		return Classification{Class: ClassRParal}
	}

	e := float64(eps)
	if crossT > s.TStart+e && crossT < s.TEnd-e {
		// Past this crossing, s's line cannot cross splitter again (two
		// distinct lines meet at most once), so any point strictly beyond
		// crossT and before TEnd is on the same side B itself is — evaluate
		// one unit beyond the crossing instead of exactly at TEnd, which
		// would materialize a NaN coordinate whenever TEnd is +Inf and s's
		// line is axis-aligned (Inf * 0).
		endT := s.TEnd
		if math.IsInf(endT, 1) {
			endT = crossT + 1
		}
		bx, by := s.Line.PointAt(endT)
		if splitter.SideOfXY(bx, by) == Left {
			return Classification{Class: ClassSFL, CrossT: crossT}
		}
		return Classification{Class: ClassSFR, CrossT: crossT}
	}

	// Touching within epsilon of an endpoint: not a true crossing.
	mx, my := s.Midpoint()
	side := splitter.SideOfXY(mx, my)
	forward := orientationAligned(s, splitter)
	switch {
	case side == Left && forward:
		return Classification{Class: ClassLFL}
	case side == Left && !forward:
		return Classification{Class: ClassLFR}
	case side == Right && forward:
		return Classification{Class: ClassRFL}
	default:
		return Classification{Class: ClassRFR}
	}
}

// orientationAligned reports whether s's line runs in roughly the same
// direction as the splitter (non-negative dot product of direction
// vectors). This is descriptive metadata carried on the wholly-one-side
// classifications; it does not affect which child subspace a segment is
// assigned to.
func orientationAligned(s *Segment, splitter *Line) bool {
	sdx := float64(s.Line.B.X - s.Line.A.X)
	sdy := float64(s.Line.B.Y - s.Line.A.Y)
	ddx := float64(splitter.B.X - splitter.A.X)
	ddy := float64(splitter.B.Y - splitter.A.Y)
	return sdx*ddx+sdy*ddy >= 0
}
