package bsp

import (
	"math"

	"github.com/Laudanum-dev/pvs2d/geom"
)

// clipAgainst narrows the clipped splitter extent of n and every interior
// descendant of n against parentSplitter, the splitter of the ancestor node
// whose goingLeft child subtree n belongs to.
//
// For a descendant's splitter line D, parentSplitter.Intersect(D) gives
// crossT and denom such that the side-of-parentSplitter function evaluated
// along D is linear: side(t) = denom * (crossT - t). Requiring side(t) to
// stay on the correct half (Left if goingLeft, Right otherwise) therefore
// clips D's extent to one side of crossT, with the direction determined by
// the sign of denom. Parallel lines (denom == 0) impose no constraint: by
// construction every segment reaching this subtree was already filtered to
// the correct side, so D's existing extent is already consistent.
func clipAgainst(n *Node, parentSplitter *geom.Line, goingLeft bool) {
	if n == nil || n.IsLeaf {
		return
	}

	crossT, denom, ok := parentSplitter.Intersect(n.Splitter)
	if ok {
		keepBelow := (goingLeft && denom > 0) || (!goingLeft && denom < 0)
		if keepBelow {
			n.TSplitEnd = math.Min(n.TSplitEnd, crossT)
		} else {
			n.TSplitStart = math.Max(n.TSplitStart, crossT)
		}
	}

	clipAgainst(n.Left, parentSplitter, goingLeft)
	clipAgainst(n.Right, parentSplitter, goingLeft)
}
