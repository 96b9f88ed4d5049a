package portal

import (
	"github.com/Laudanum-dev/pvs2d/bsp"
	"github.com/Laudanum-dev/pvs2d/geom"
)

// boundaryEntry is one still-open sub-range [tStart, tEnd] of some portal's
// lineage: a *bsp.Portal created at this node or some ancestor, not yet
// fully resolved on both sides. portal is the lineage's identity key, not
// necessarily the final object stored in any node's Portals slice — that
// object is only created once both sides are known, by reconcile.
type boundaryEntry struct {
	portal       *bsp.Portal
	tStart, tEnd float64
	opaque       bool
}

// fragment is the result of resolving a boundaryEntry down to a single
// subtree: within that subtree, [tStart, tEnd] of portal's lineage borders
// leaf. A lineage that gets split further down the subtree surfaces as
// multiple fragments sharing the same portal pointer.
type fragment struct {
	portal       *bsp.Portal
	tStart, tEnd float64
	leaf         bsp.LeafID
}

// splitBoundary routes each entry of inherited against splitter, the current
// node's splitter line, producing the entries that belong to the right and
// left subspaces respectively. An entry whose lineage straddles splitter is
// divided into two narrower entries sharing the same portal pointer — no new
// *bsp.Portal is allocated here; only the numeric sub-range changes, so the
// lineage stays identifiable however many times it gets split on its way
// down to a leaf.
//
// Returns ErrGeometricInvariant if any inherited entry's line is collinear
// with splitter: that can only happen if the tree's convexity invariant was
// violated during construction.
func splitBoundary(inherited []boundaryEntry, splitter *geom.Line, eps geom.Epsilon) (rightOut, leftOut []boundaryEntry, err error) {
	for _, e := range inherited {
		seg := &geom.Segment{Line: e.portal.Line, TStart: e.tStart, TEnd: e.tEnd, Opaque: e.opaque}
		c := geom.ClassifySegment(seg, splitter, eps)
		switch {
		case c.Class == geom.ClassCOL:
			return nil, nil, ErrGeometricInvariant
		case c.Class.IsLeft():
			leftOut = append(leftOut, e)
		case c.Class.IsRight():
			rightOut = append(rightOut, e)
		case c.Class.IsStraddle():
			lo := boundaryEntry{portal: e.portal, tStart: e.tStart, tEnd: c.CrossT, opaque: e.opaque}
			hi := boundaryEntry{portal: e.portal, tStart: c.CrossT, tEnd: e.tEnd, opaque: e.opaque}
			if c.Class == geom.ClassSFL {
				// hi (towards the portal's B endpoint) is Left, lo is Right.
				rightOut = append(rightOut, lo)
				leftOut = append(leftOut, hi)
			} else {
				leftOut = append(leftOut, lo)
				rightOut = append(rightOut, hi)
			}
		}
	}
	return rightOut, leftOut, nil
}
