package bsp

import (
	"math"

	"github.com/Laudanum-dev/pvs2d/geom"
)

// builder threads the leaf-id counter through recursive partition calls, as
// the design notes require ("global leaf counter -> builder state").
type builder struct {
	cfg      geom.Config
	nextLeaf LeafID
}

// BuildBSP constructs a Tree from a flat []int32 of [ax,ay,bx,by,opq]
// quintuples. See package doc for the ingestion, splitter-choice, and
// partition rules.
func BuildBSP(flat []int32, opts ...Option) (*Tree, error) {
	cfg := resolveConfig(opts...)

	_, segments, err := ingest(flat)
	if err != nil {
		return nil, err
	}

	b := &builder{cfg: cfg}
	root, err := b.partition(segments)
	if err != nil {
		return nil, err
	}

	return &Tree{Root: root, LeafCount: int(b.nextLeaf), cfg: cfg}, nil
}

func (b *builder) newLeaf() *Node {
	id := b.nextLeaf
	b.nextLeaf++
	return &Node{IsLeaf: true, LeafID: id}
}

// partition builds one subtree over segs, which must be non-empty.
func (b *builder) partition(segs []*geom.Segment) (*Node, error) {
	splitter := chooseSplitter(segs, b.cfg.Epsilon())

	var onLine, leftSegs, rightSegs []*geom.Segment
	for _, s := range segs {
		if geom.SameLine(s.Line, splitter) {
			onLine = append(onLine, s)
			continue
		}
		c := geom.ClassifySegment(s, splitter, b.cfg.Epsilon())
		switch {
		case c.Class.IsLeft():
			leftSegs = append(leftSegs, s)
		case c.Class.IsRight():
			rightSegs = append(rightSegs, s)
		case c.Class.IsStraddle():
			lo, hi := s.Split(c.CrossT)
			if c.Class == geom.ClassSFL {
				// hi (towards B) is Left, lo (towards A) is Right.
				rightSegs = append(rightSegs, lo)
				leftSegs = append(leftSegs, hi)
			} else {
				leftSegs = append(leftSegs, lo)
				rightSegs = append(rightSegs, hi)
			}
		default:
			// ClassCOL is handled above via SameLine; unreachable here.
		}
	}

	node := &Node{
		Splitter:    splitter,
		OnLine:      onLine,
		TSplitStart: math.Inf(-1),
		TSplitEnd:   math.Inf(1),
	}

	var left, right *Node
	var err error
	if len(leftSegs) == 0 {
		left = b.newLeaf()
	} else if left, err = b.partition(leftSegs); err != nil {
		return nil, err
	}
	if len(rightSegs) == 0 {
		right = b.newLeaf()
	} else if right, err = b.partition(rightSegs); err != nil {
		return nil, err
	}
	node.Left, node.Right = left, right

	clipAgainst(left, splitter, true)
	clipAgainst(right, splitter, false)

	return node, nil
}

// chooseSplitter picks the segment whose Line minimises the number of
// other segments it would cut (ClassSFL/ClassSFR), breaking ties by
// first-seen order.
func chooseSplitter(segs []*geom.Segment, eps geom.Epsilon) *geom.Line {
	bestCount := -1
	var bestLine *geom.Line
	for _, cand := range segs {
		count := 0
		for _, other := range segs {
			if other == cand || geom.SameLine(other.Line, cand.Line) {
				continue
			}
			c := geom.ClassifySegment(other, cand.Line, eps)
			if c.Class.IsStraddle() {
				count++
			}
		}
		if bestCount == -1 || count < bestCount {
			bestCount = count
			bestLine = cand.Line
		}
	}
	return bestLine
}
