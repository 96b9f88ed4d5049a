package portal

import (
	"math"
	"sort"

	"github.com/Laudanum-dev/pvs2d/bsp"
	"github.com/Laudanum-dev/pvs2d/geom"
)

// BuildPortals fills in tree.Root and every descendant interior Node's
// Portals field, and resolves every Portal's LeftLeaf/RightLeaf before it is
// ever stored. It must be called exactly once on a freshly built tree;
// calling it twice would append duplicate portals to every node's Portals
// slice.
func BuildPortals(tree *bsp.Tree) error {
	_, err := extract(tree.Root, nil, tree.Config().Epsilon())
	return err
}

// extract implements the portal extraction DFS. At each interior node it
// splits the boundary lineages inherited from ancestors against node's own
// splitter, sweeps node's on-line opaque coverage into a fresh set of
// lineages along that splitter, and recurses into both children with the
// routed boundary plus the new lineages.
//
// Each lineage created at this node (by sweepCoverage) is inherited by both
// children simultaneously, so once both recursive calls return, node is the
// one place that can see the complete picture on both sides: reconcile
// merges the left subtree's and the right subtree's resolved fragments for
// that lineage into the final, fully leaf-resolved *bsp.Portal objects, and
// only those — never an intermediate, partially-resolved copy — are stored
// in node.Portals.
//
// Lineages inherited from an ancestor (not created here) cannot be
// reconciled at this node: this node's subtree only ever sees one side of
// such a lineage (the side it was routed to), however many times it gets
// split further down. Those fragments are passed back to the caller
// unresolved, to be reconciled by whichever ancestor actually created them.
func extract(node *bsp.Node, inherited []boundaryEntry, eps geom.Epsilon) ([]fragment, error) {
	if node.IsLeaf {
		out := make([]fragment, len(inherited))
		for i, e := range inherited {
			out[i] = fragment{portal: e.portal, tStart: e.tStart, tEnd: e.tEnd, leaf: node.LeafID}
		}
		return out, nil
	}

	rightPortion, leftPortion, err := splitBoundary(inherited, node.Splitter, eps)
	if err != nil {
		return nil, err
	}

	newPortals := sweepCoverage(node, eps)
	isOwn := make(map[*bsp.Portal]bool, len(newPortals))
	for _, p := range newPortals {
		isOwn[p] = true
		e := boundaryEntry{portal: p, tStart: p.TStart, tEnd: p.TEnd, opaque: p.Opaque}
		leftPortion = append(leftPortion, e)
		rightPortion = append(rightPortion, e)
	}

	leftFragments, err := extract(node.Left, leftPortion, eps)
	if err != nil {
		return nil, err
	}
	rightFragments, err := extract(node.Right, rightPortion, eps)
	if err != nil {
		return nil, err
	}

	leftByPortal := make(map[*bsp.Portal][]fragment)
	rightByPortal := make(map[*bsp.Portal][]fragment)
	var passUp []fragment
	for _, f := range leftFragments {
		if isOwn[f.portal] {
			leftByPortal[f.portal] = append(leftByPortal[f.portal], f)
		} else {
			passUp = append(passUp, f)
		}
	}
	for _, f := range rightFragments {
		if isOwn[f.portal] {
			rightByPortal[f.portal] = append(rightByPortal[f.portal], f)
		} else {
			passUp = append(passUp, f)
		}
	}

	for _, p := range newPortals {
		node.Portals = append(node.Portals, reconcile(p, leftByPortal[p], rightByPortal[p])...)
	}

	return passUp, nil
}

// reconcile merges the left and right subtrees' fragment partitions of
// original's [TStart, TEnd] into the final portals: wherever either side
// split the range further than the other, the finer of the two boundaries
// wins, so every resulting portal has a single, unambiguous leaf on each
// side.
func reconcile(original *bsp.Portal, leftFrags, rightFrags []fragment) []*bsp.Portal {
	breaks := map[float64]bool{original.TStart: true, original.TEnd: true}
	for _, f := range leftFrags {
		breaks[f.tStart] = true
		breaks[f.tEnd] = true
	}
	for _, f := range rightFrags {
		breaks[f.tStart] = true
		breaks[f.tEnd] = true
	}
	ts := make([]float64, 0, len(breaks))
	for t := range breaks {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })

	var out []*bsp.Portal
	for i := 0; i+1 < len(ts); i++ {
		lo, hi := ts[i], ts[i+1]
		if hi <= lo {
			continue
		}
		mid := midpointT(lo, hi)
		leftLeaf, ok := leafAt(leftFrags, mid)
		if !ok {
			continue
		}
		rightLeaf, ok := leafAt(rightFrags, mid)
		if !ok {
			continue
		}
		out = append(out, &bsp.Portal{
			Line:      original.Line,
			TStart:    lo,
			TEnd:      hi,
			Opaque:    original.Opaque,
			LeftLeaf:  leftLeaf,
			RightLeaf: rightLeaf,
			HasLeft:   true,
			HasRight:  true,
		})
	}
	return out
}

func leafAt(frags []fragment, t float64) (bsp.LeafID, bool) {
	for _, f := range frags {
		if t >= f.tStart && t <= f.tEnd {
			return f.leaf, true
		}
	}
	return 0, false
}

// midpointT mirrors geom's segment midpoint helper: it returns a point
// strictly between lo and hi without ever materializing a ±Inf coordinate
// when one bound is infinite.
func midpointT(lo, hi float64) float64 {
	loInf := math.IsInf(lo, -1)
	hiInf := math.IsInf(hi, 1)
	switch {
	case loInf && hiInf:
		return 0
	case loInf:
		return hi - 1
	case hiInf:
		return lo + 1
	default:
		return (lo + hi) / 2
	}
}
