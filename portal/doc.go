// Package portal extracts transparent and opaque portals from a finished
// bsp.Tree and installs them on each interior Node's Portals field.
//
// BuildPortals walks the tree once. At each interior node it (1) routes the
// boundary lineages inherited from ancestors against the node's own
// splitter, splitting any that straddle it; (2) sweeps the node's on-line
// opaque segments across the node's clipped splitter extent to produce a
// sequence of lineages tiling that extent, alternating opaque (wall) and
// transparent (opening); (3) hands the routed ancestor lineages plus the
// node's own new lineages down to the left and right children.
//
// A lineage created at a node is, by construction, inherited by both of
// that node's children at once, so once both recursive calls return, the
// creating node is the one place that can see how each side resolved —
// however many further splits either side applied, independently, on its
// way to a leaf. reconcile merges the two sides' partitions there, and only
// the resulting, fully leaf-resolved portals are ever stored in a node's
// Portals slice. A lineage inherited from an ancestor is passed back up
// unresolved for that ancestor to reconcile; no node ever stores a
// one-sided or otherwise partially-resolved portal.
//
// Errors:
//
//	ErrGeometricInvariant   a boundary lineage was found collinear with the
//	                        splitter of the node routing it, which convexity
//	                        should make impossible for a well-formed tree.
package portal
