package bsp

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// dumpNode is a flattened, JSON-friendly view of a Node, used only by
// DumpJSON for golden-file snapshot tests and ad hoc debugging. It is never
// consulted by the pipeline itself. The splitter extent is rendered as
// strings ("-Inf", "+Inf" for unbounded ends), since JSON numbers cannot
// hold an infinite value.
type dumpNode struct {
	IsLeaf      bool       `json:"isLeaf"`
	LeafID      int        `json:"leafId,omitempty"`
	SplitterA   [2]int32   `json:"splitterA,omitempty"`
	SplitterB   [2]int32   `json:"splitterB,omitempty"`
	TSplitStart string     `json:"tSplitStart,omitempty"`
	TSplitEnd   string     `json:"tSplitEnd,omitempty"`
	OnLineCount int        `json:"onLineCount,omitempty"`
	PortalCount int        `json:"portalCount,omitempty"`
	Left        *dumpNode  `json:"left,omitempty"`
	Right       *dumpNode  `json:"right,omitempty"`
}

func toDumpNode(n *Node) *dumpNode {
	if n == nil {
		return nil
	}
	if n.IsLeaf {
		return &dumpNode{IsLeaf: true, LeafID: int(n.LeafID)}
	}
	return &dumpNode{
		SplitterA:   [2]int32{n.Splitter.A.X, n.Splitter.A.Y},
		SplitterB:   [2]int32{n.Splitter.B.X, n.Splitter.B.Y},
		TSplitStart: strconv.FormatFloat(n.TSplitStart, 'g', -1, 64),
		TSplitEnd:   strconv.FormatFloat(n.TSplitEnd, 'g', -1, 64),
		OnLineCount: len(n.OnLine),
		PortalCount: len(n.Portals),
		Left:        toDumpNode(n.Left),
		Right:       toDumpNode(n.Right),
	}
}

// DumpJSON renders a deterministic JSON snapshot of the tree shape, for
// golden-file regression tests and debugging; it is not part of the
// pipeline's critical path and carries no information DumpJSON's caller
// couldn't recompute from the Tree itself.
func DumpJSON(t *Tree) ([]byte, error) {
	root := toDumpNode(t.Root)
	return jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(struct {
		LeafCount int       `json:"leafCount"`
		Root      *dumpNode `json:"root"`
	}{LeafCount: t.LeafCount, Root: root}, "", "  ")
}
