package bsp

import (
	"github.com/Laudanum-dev/pvs2d/geom"
)

// LeafID identifies a BSP leaf. Ids are assigned 0, 1, 2, ... in
// left-to-right discovery order during construction.
type LeafID int

// Bitmask is a per-leaf byte mask: len(mask) == leafCount, and mask[i] is
// nonzero iff leaf i is flagged.
type Bitmask []byte

// NewBitmask allocates a zeroed Bitmask sized for leafCount leaves.
func NewBitmask(leafCount int) Bitmask { return make(Bitmask, leafCount) }

// Set flags leaf id as present in the mask.
func (m Bitmask) Set(id LeafID) { m[id] = 1 }

// Get reports whether leaf id is flagged.
func (m Bitmask) Get(id LeafID) bool { return id >= 0 && int(id) < len(m) && m[id] != 0 }

// Portal is a maximal sub-interval of an interior node's splitter lying
// between exactly two leaves (or, before both leaf assignments are known
// during extraction, awaiting one). Opaque portals correspond to physical
// walls; transparent portals are visibility edges. Endpoints may be
// infinite when the splitter is unbounded at that end.
type Portal struct {
	Line         *geom.Line
	TStart, TEnd float64
	LeftLeaf     LeafID
	RightLeaf    LeafID
	HasLeft      bool
	HasRight     bool
	Opaque       bool
}

// Node is either an interior node (Splitter != nil) or a leaf
// (IsLeaf == true). Interior nodes hold the splitter Line, the segments
// collinear with it (OnLine), the clipped splitter extent
// [TSplitStart, TSplitEnd] (possibly infinite, narrowing monotonically with
// depth), child references, and the Portals lying on the splitter (filled
// in by package portal after the tree is built).
type Node struct {
	IsLeaf bool
	LeafID LeafID

	Splitter               *geom.Line
	OnLine                 []*geom.Segment
	TSplitStart, TSplitEnd float64
	Left, Right            *Node
	Portals                []*Portal
}

// Tree is the immutable result of BuildBSP (and, once BuildPortals has run,
// of portal extraction too).
type Tree struct {
	Root      *Node
	LeafCount int

	cfg geom.Config
}

// Config exposes the geometry tolerance the tree was built with, so portal
// extraction reuses the exact same epsilon. Package pvs does not read it:
// GetLeafPVS always crops with geom.DefaultEpsilon.
func (t *Tree) Config() geom.Config { return t.cfg }
