// Package leafgraph builds the leaf-adjacency graph a finished, portal-
// extracted bsp.Tree induces: one Node per leaf, two directed Edges per
// transparent Portal (opaque portals are walls and contribute no edge), and
// an OOB flag for every leaf that lies outside any enclosed space.
//
// A leaf is OOB if it borders an infinite-extent transparent portal (no
// wall ever closed that side of the convex cell, so it extends to
// infinity) or is reachable from such a leaf purely through transparent
// portals. Both conditions collapse to the same connected-component test,
// computed with a union-find over the transparent-edge graph rather than
// an explicit propagation DFS; see the package's BuildLeafGraph for the
// construction and DESIGN.md for why union-find was chosen here.
package leafgraph
