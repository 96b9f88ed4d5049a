package pvs

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/Laudanum-dev/pvs2d/bsp"
	"github.com/Laudanum-dev/pvs2d/geom"
	"github.com/Laudanum-dev/pvs2d/leafgraph"
)

// GetLeafPVS computes source's potentially visible set: a byte bitmask of
// length leafCount, byte i nonzero iff leaf i may be visible from source.
// Returns ErrInvalidLeaf if source is outside [0, leafCount), ErrOOBLeaf if
// source is flagged out-of-bounds.
func GetLeafPVS(g *leafgraph.Graph, leafCount int, source bsp.LeafID) (bsp.Bitmask, error) {
	if source < 0 || int(source) >= len(g.Nodes) {
		return nil, ErrInvalidLeaf
	}
	if g.Nodes[source].OOB {
		return nil, ErrOOBLeaf
	}

	eps := geom.DefaultEpsilon
	mask := bsp.NewBitmask(leafCount)
	visited := make([]bool, leafCount)
	mask.Set(source)
	visited[source] = true

	for _, e := range g.Nodes[source].Edges {
		if visited[e.To] {
			continue
		}
		mask.Set(e.To)
		visited[e.To] = true

		frustums := arraystack.New()
		walk(g, e.To, e.Portal, frustums, visited, mask, eps)

		visited[e.To] = false
	}

	return mask, nil
}

// walk is the recursion at leafID, reached through entryPortal, with
// frustums holding the wedge stack accumulated along the path so far.
func walk(g *leafgraph.Graph, leafID bsp.LeafID, entryPortal *bsp.Portal, frustums *arraystack.Stack, visited []bool, mask bsp.Bitmask, eps geom.Epsilon) {
	for _, e := range g.Nodes[leafID].Edges {
		if e.Portal == entryPortal || visited[e.To] {
			continue
		}

		if !croppedSurvives(e.Portal, frustums, eps) {
			continue
		}

		w := buildWedge(entryPortal, e.Portal)
		frustums.Push(w)
		visited[e.To] = true
		mask.Set(e.To)

		walk(g, e.To, e.Portal, frustums, visited, mask, eps)

		frustums.Pop()
		visited[e.To] = false
	}
}

func croppedSurvives(p *bsp.Portal, frustums *arraystack.Stack, eps geom.Epsilon) bool {
	values := frustums.Values()
	ws := make([]wedge, len(values))
	for i, v := range values {
		ws[i] = v.(wedge)
	}
	_, _, ok := cropPortal(p, ws, eps)
	return ok
}
