package bsp

import "github.com/Laudanum-dev/pvs2d/geom"

// FindLeafOfPoint locates the leaf containing (x, y) by descending the tree
// using the splitter side test at each interior node. Points exactly on a
// splitter are treated as Right, the same tie-break geom.Line.SideOf uses.
func FindLeafOfPoint(t *Tree, x, y int32) LeafID {
	n := t.Root
	for !n.IsLeaf {
		if n.Splitter.SideOf(geom.Point{X: x, Y: y}) == geom.Left {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.LeafID
}

// FindLeavesOfSegment enumerates every leaf a query segment a->b passes
// through, by descending the tree and splitting the query segment at each
// splitter it straddles, auxiliary-symmetric to BuildBSP's own partition.
func FindLeavesOfSegment(t *Tree, a, b geom.Point) (Bitmask, error) {
	line := geom.NewLine(a, b)
	seg, err := geom.NewSegment(line, 0, 1, false)
	if err != nil {
		return nil, err
	}

	mask := NewBitmask(t.LeafCount)
	eps := t.cfg.Epsilon()
	walkSegment(t.Root, seg, eps, mask)
	return mask, nil
}

func walkSegment(n *Node, seg *geom.Segment, eps geom.Epsilon, mask Bitmask) {
	if n.IsLeaf {
		mask.Set(n.LeafID)
		return
	}

	if geom.SameLine(seg.Line, n.Splitter) {
		// Query segment runs along the splitter itself: it borders both
		// subspaces, so both must be visited.
		walkSegment(n.Left, seg, eps, mask)
		walkSegment(n.Right, seg, eps, mask)
		return
	}

	c := geom.ClassifySegment(seg, n.Splitter, eps)
	switch {
	case c.Class.IsLeft():
		walkSegment(n.Left, seg, eps, mask)
	case c.Class.IsRight():
		walkSegment(n.Right, seg, eps, mask)
	case c.Class.IsStraddle():
		lo, hi := seg.Split(c.CrossT)
		if c.Class == geom.ClassSFL {
			walkSegment(n.Right, lo, eps, mask)
			walkSegment(n.Left, hi, eps, mask)
		} else {
			walkSegment(n.Left, lo, eps, mask)
			walkSegment(n.Right, hi, eps, mask)
		}
	}
}
