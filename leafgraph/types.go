package leafgraph

import "github.com/Laudanum-dev/pvs2d/bsp"

// Edge is one transparent-portal crossing from a leaf to an adjacent leaf.
type Edge struct {
	To     bsp.LeafID
	Portal *bsp.Portal
}

// Node is one leaf's entry in the adjacency graph. OOB is true if the leaf
// is, or is transitively reachable through transparent portals from, a leaf
// bordering an infinite-extent portal — i.e. it lies outside any enclosed
// space and should never appear in a PVS result.
type Node struct {
	ID    bsp.LeafID
	OOB   bool
	Edges []Edge
}

// Graph is the leaf-adjacency graph built by BuildLeafGraph, indexed by
// bsp.LeafID.
type Graph struct {
	Nodes []Node
}
