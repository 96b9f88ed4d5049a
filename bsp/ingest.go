package bsp

import (
	"sort"

	"github.com/Laudanum-dev/pvs2d/geom"
)

// pendingInterval is a not-yet-merged t-interval awaiting placement onto a
// geom.Line as a geom.Segment.
type pendingInterval struct {
	tStart, tEnd float64
	opaque       bool
}

// lineGroup accumulates the pending intervals discovered for one geom.Line
// during ingestion, before merge and geom.Segment construction.
type lineGroup struct {
	line     *geom.Line
	pending  []pendingInterval
}

// ingest decodes the flat []int32 input into deduplicated Lines and merged
// Segments. Two input segments share a Line when both of the new segment's
// endpoints are collinear with the existing Line's basis points.
func ingest(flat []int32) ([]*geom.Line, []*geom.Segment, error) {
	if len(flat) == 0 {
		return nil, nil, ErrEmptyInput
	}
	if len(flat)%5 != 0 {
		return nil, nil, ErrInvalidInputLength
	}

	var groups []*lineGroup
	findGroup := func(a, b geom.Point) *lineGroup {
		for _, g := range groups {
			if geom.Collinear(g.line.A, g.line.B, a) && geom.Collinear(g.line.A, g.line.B, b) {
				return g
			}
		}
		return nil
	}

	n := len(flat) / 5
	for i := 0; i < n; i++ {
		base := i * 5
		a := geom.Point{X: flat[base], Y: flat[base+1]}
		b := geom.Point{X: flat[base+2], Y: flat[base+3]}
		opq := flat[base+4]

		if a == b {
			return nil, nil, ErrZeroLengthSegment
		}

		g := findGroup(a, b)
		if g == nil {
			g = &lineGroup{line: geom.NewLine(a, b)}
			groups = append(groups, g)
			g.pending = append(g.pending, pendingInterval{tStart: 0, tEnd: 1, opaque: opq != 0})
			continue
		}

		t0 := g.line.ParamOf(a)
		t1 := g.line.ParamOf(b)
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		g.pending = append(g.pending, pendingInterval{tStart: t0, tEnd: t1, opaque: opq != 0})
	}

	var lines []*geom.Line
	var segments []*geom.Segment
	for _, g := range groups {
		merged, err := mergeIntervals(g.pending)
		if err != nil {
			return nil, nil, err
		}
		for _, iv := range merged {
			seg, err := geom.NewSegment(g.line, iv.tStart, iv.tEnd, iv.opaque)
			if err != nil {
				return nil, nil, err
			}
			segments = append(segments, seg)
		}
		lines = append(lines, g.line)
	}

	return lines, segments, nil
}

// mergeIntervals resolves the spec's coincident-segment Open Question:
// overlapping same-opacity intervals on one Line are merged into one;
// overlapping intervals with differing opacity are an error. Intervals that
// merely touch at an endpoint never conflict.
func mergeIntervals(ivs []pendingInterval) ([]pendingInterval, error) {
	sort.Slice(ivs, func(i, j int) bool { return ivs[i].tStart < ivs[j].tStart })

	var out []pendingInterval
	for _, iv := range ivs {
		if len(out) == 0 {
			out = append(out, iv)
			continue
		}
		last := &out[len(out)-1]
		if iv.tStart < last.tEnd {
			if iv.opaque != last.opaque {
				return nil, ErrConflictingOpacity
			}
			if iv.tEnd > last.tEnd {
				last.tEnd = iv.tEnd
			}
			continue
		}
		if iv.tStart == last.tEnd && iv.opaque == last.opaque {
			last.tEnd = iv.tEnd
			continue
		}
		out = append(out, iv)
	}
	return out, nil
}
