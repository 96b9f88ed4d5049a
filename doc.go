// Package pvs2d precomputes a Potentially Visible Set for a closed 2D scene
// of axis-agnostic wall segments.
//
// A scene is a flat list of opaque or transparent line segments. Computing
// the PVS for a scene runs four stages in sequence:
//
//  1. bsp.BuildBSP partitions the scene into a binary space partition tree,
//     one convex leaf per partition cell.
//  2. portal.BuildPortals sweeps each internal splitter line for opaque
//     coverage and produces the portals connecting adjacent leaves.
//  3. leafgraph.BuildLeafGraph turns transparent portals into a leaf
//     adjacency graph and flags leaves that reach outside the scene's
//     closed volume as out-of-bounds.
//  4. pvs.GetLeafPVS walks that graph from a source leaf, narrowing a
//     frustum through each transparent portal crossed, to produce the set
//     of leaves visible from that leaf.
//
// Each stage is a standalone package (bsp, portal, leafgraph, pvs); this
// root package has no exported API of its own beyond end-to-end tests that
// exercise the full pipeline against the scenarios in SPEC_FULL.md. See
// DESIGN.md for how each piece is grounded in the example corpus.
package pvs2d
