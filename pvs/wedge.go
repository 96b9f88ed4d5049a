package pvs

import (
	"math"

	"github.com/Laudanum-dev/pvs2d/bsp"
	"github.com/Laudanum-dev/pvs2d/geom"
)

// boundLine is one side of a wedge frustum: an infinite line through two
// arbitrary points (portal endpoints, which need not be integer-valued
// since they are evaluated at a float t parameter). insideLeft records
// which side of the line the frustum's interior lies on, in the same Left
// convention geom.Line.SideOfXY uses.
type boundLine struct {
	ax, ay, bx, by float64
	insideLeft     bool
}

// wedge is a 2D view frustum: the open region bounded by two boundLines,
// built from an entry portal and an exit candidate portal so that both
// portals lie inside it.
type wedge struct {
	a, b boundLine
}

func sideOfXY(ax, ay, bx, by, px, py float64) bool {
	cross := (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	return cross > 0
}

// intersectBoundLine finds the parameter t, on pLine's own A-to-B
// parameterisation, at which bl crosses it, following the same numer/denom
// formula as geom.Line.Intersect but evaluated in float64 throughout: bl's
// endpoints are derived wedge corners, not original integer input.
func intersectBoundLine(bl boundLine, pLine *geom.Line) (t, denom float64, ok bool) {
	cx, cy := pLine.PointAt(0)
	dx, dy := pLine.PointAt(1)
	numer := (bl.bx-bl.ax)*(cy-bl.ay) - (bl.by-bl.ay)*(cx-bl.ax)
	denom = (bl.bx-bl.ax)*(cy-dy) - (bl.by-bl.ay)*(cx-dx)
	if denom == 0 {
		return 0, 0, false
	}
	return numer / denom, denom, true
}

// buildWedge constructs the frustum between entry portal pe and exit
// candidate p: the two bounding lines run through the endpoint pairs
// {pe.start, p.start} and {pe.end, p.end}. If the two start-to-start and
// end-to-end vectors point the same general way (positive dot product),
// p's start/end are swapped first so the pairing actually converges into a
// wedge rather than a parallel strip.
func buildWedge(pe, p *bsp.Portal) wedge {
	pex0, pey0 := pe.Line.PointAt(pe.TStart)
	pex1, pey1 := pe.Line.PointAt(pe.TEnd)
	px0, py0 := p.Line.PointAt(p.TStart)
	px1, py1 := p.Line.PointAt(p.TEnd)

	v1x, v1y := px0-pex0, py0-pey0
	v2x, v2y := px1-pex1, py1-pey1
	if v1x*v2x+v1y*v2y > 0 {
		px0, py0, px1, py1 = px1, py1, px0, py0
	}

	a := boundLine{ax: pex0, ay: pey0, bx: px0, by: py0}
	b := boundLine{ax: pex1, ay: pey1, bx: px1, by: py1}
	a.insideLeft = sideOfXY(a.ax, a.ay, a.bx, a.by, px1, py1)
	b.insideLeft = sideOfXY(b.ax, b.ay, b.bx, b.by, px0, py0)

	return wedge{a: a, b: b}
}

// cropByBoundLine narrows [lo, hi] to the portion of pLine lying on bl's
// interior side. The derivation is identical to bsp.clipAgainst: along
// pLine, side(t) = denom*(crossT - t) is linear, so the sign of denom
// alone determines whether the interior constrains the upper or lower
// bound. Parallel lines (denom == 0) impose no constraint unless pLine
// lies entirely on the exterior side, in which case the interval is
// collapsed to empty.
func cropByBoundLine(lo, hi float64, pLine *geom.Line, bl boundLine) (float64, float64) {
	crossT, denom, ok := intersectBoundLine(bl, pLine)
	if !ok {
		x, y := pLine.PointAt(0)
		if sideOfXY(bl.ax, bl.ay, bl.bx, bl.by, x, y) != bl.insideLeft {
			return math.Inf(1), math.Inf(-1)
		}
		return lo, hi
	}

	keepHi := (bl.insideLeft && denom > 0) || (!bl.insideLeft && denom < 0)
	if keepHi {
		hi = math.Min(hi, crossT)
	} else {
		lo = math.Max(lo, crossT)
	}
	return lo, hi
}

// cropPortal narrows portal p's [TStart, TEnd] by every frustum in frustums
// in turn, returning ok == false if the resulting interval collapses
// (lo > hi + eps).
func cropPortal(p *bsp.Portal, frustums []wedge, eps geom.Epsilon) (lo, hi float64, ok bool) {
	lo, hi = p.TStart, p.TEnd
	for _, w := range frustums {
		lo, hi = cropByBoundLine(lo, hi, p.Line, w.a)
		lo, hi = cropByBoundLine(lo, hi, p.Line, w.b)
	}
	return lo, hi, lo <= hi+float64(eps)
}
