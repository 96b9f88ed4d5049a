package leafgraph

import (
	"math"

	"github.com/spakin/disjoint"

	"github.com/Laudanum-dev/pvs2d/bsp"
)

// BuildLeafGraph walks tree's Portals (installed by portal.BuildPortals)
// and produces the leaf-adjacency Graph: two directed edges per transparent
// portal, and OOB resolved via union-find over those same edges.
func BuildLeafGraph(tree *bsp.Tree) (*Graph, error) {
	if tree == nil || tree.Root == nil {
		return nil, ErrNilTree
	}

	g := &Graph{Nodes: make([]Node, tree.LeafCount)}
	for i := range g.Nodes {
		g.Nodes[i].ID = bsp.LeafID(i)
	}

	sets := make([]*disjoint.Element, tree.LeafCount)
	for i := range sets {
		sets[i] = disjoint.NewElement()
		sets[i].Payload = bsp.LeafID(i)
	}

	seeds := make(map[bsp.LeafID]bool)

	var visit func(n *bsp.Node)
	visit = func(n *bsp.Node) {
		if n == nil || n.IsLeaf {
			return
		}
		for _, p := range n.Portals {
			if !p.Opaque && p.HasLeft && p.HasRight {
				g.Nodes[p.LeftLeaf].Edges = append(g.Nodes[p.LeftLeaf].Edges, Edge{To: p.RightLeaf, Portal: p})
				g.Nodes[p.RightLeaf].Edges = append(g.Nodes[p.RightLeaf].Edges, Edge{To: p.LeftLeaf, Portal: p})
				disjoint.Union(sets[p.LeftLeaf], sets[p.RightLeaf])

				if math.IsInf(p.TStart, -1) || math.IsInf(p.TEnd, 1) {
					seeds[p.LeftLeaf] = true
					seeds[p.RightLeaf] = true
				}
			}
		}
		visit(n.Left)
		visit(n.Right)
	}
	visit(tree.Root)

	oobRoots := make(map[*disjoint.Element]bool)
	for leaf := range seeds {
		oobRoots[sets[leaf].Find()] = true
	}
	for i := range g.Nodes {
		if oobRoots[sets[i].Find()] {
			g.Nodes[i].OOB = true
		}
	}

	return g, nil
}
