package portal

import (
	"math"

	"github.com/google/btree"

	"github.com/Laudanum-dev/pvs2d/bsp"
	"github.com/Laudanum-dev/pvs2d/geom"
)

// sweepEvent is one opening or closing point of the coverage sweep.
// tag is +1 for an opening, -1 for a closing; sorting by (t, tag) puts
// closings before openings at equal t, matching the spec's tie-break. seq
// breaks ties between otherwise-identical events so none are lost to the
// btree's key-based dedup.
type sweepEvent struct {
	t   float64
	tag int
	seq int
}

func lessEvent(a, b sweepEvent) bool {
	if a.t != b.t {
		return a.t < b.t
	}
	if a.tag != b.tag {
		return a.tag < b.tag
	}
	return a.seq < b.seq
}

// tGroup is one cluster of sweep events occurring at (within epsilon of)
// the same parameter, with their tags summed into a single coverage delta.
type tGroup struct {
	t     float64
	delta int
}

// sweepCoverage computes the opaque-coverage sweep across n's clipped
// splitter extent [n.TSplitStart, n.TSplitEnd], returning portals tiling
// that extent with no gaps: alternating opaque (covered by an on-line
// opaque segment) and transparent (not covered) runs, adjacent same-type
// runs merged.
//
// Coverage starts at 1 (the space outside the extent is conceptually
// opaque) and a virtual closing event at TSplitStart plus a virtual opening
// event at TSplitEnd bracket the walk, so the very first and last portals
// come out opaque only if a real wall actually reaches that boundary.
func sweepCoverage(n *bsp.Node, eps geom.Epsilon) []*bsp.Portal {
	tr := btree.NewG(32, lessEvent)

	seq := 0
	insert := func(t float64, tag int) {
		tr.ReplaceOrInsert(sweepEvent{t: t, tag: tag, seq: seq})
		seq++
	}

	insert(n.TSplitStart, -1)
	insert(n.TSplitEnd, +1)
	for _, s := range n.OnLine {
		if !s.Opaque {
			continue
		}
		insert(s.TStart, +1)
		insert(s.TEnd, -1)
	}

	var events []sweepEvent
	tr.Ascend(func(e sweepEvent) bool {
		events = append(events, e)
		return true
	})

	e := float64(eps)
	var groups []tGroup
	for _, ev := range events {
		if len(groups) > 0 && ev.t-groups[len(groups)-1].t <= e {
			groups[len(groups)-1].delta += ev.tag
			continue
		}
		groups = append(groups, tGroup{t: ev.t, delta: ev.tag})
	}

	var portals []*bsp.Portal
	l := 1
	opaque := true
	var pendingStart float64
	for i, g := range groups {
		if i == 0 {
			l += g.delta
			opaque = l > 0
			pendingStart = g.t
			continue
		}
		newL := l + g.delta
		newOpaque := newL > 0
		if newOpaque != opaque {
			portals = append(portals, &bsp.Portal{Line: n.Splitter, TStart: pendingStart, TEnd: g.t, Opaque: opaque})
			pendingStart = g.t
			opaque = newOpaque
		}
		l = newL
	}
	if len(groups) > 0 {
		lastT := groups[len(groups)-1].t
		if pendingStart < lastT && !math.IsNaN(lastT) {
			portals = append(portals, &bsp.Portal{Line: n.Splitter, TStart: pendingStart, TEnd: lastT, Opaque: opaque})
		}
	}
	return portals
}
