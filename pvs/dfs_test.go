package pvs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Laudanum-dev/pvs2d/bsp"
	"github.com/Laudanum-dev/pvs2d/leafgraph"
	"github.com/Laudanum-dev/pvs2d/portal"
)

func sealedRoom() []int32 {
	return []int32{
		0, 0, 2, 0, 1,
		2, 0, 2, 2, 1,
		2, 2, 0, 2, 1,
		0, 2, 0, 0, 1,
	}
}

func twoRoomsDoorway() []int32 {
	return []int32{
		0, 0, 4, 0, 1,
		0, 0, 0, 4, 1,
		0, 4, 4, 4, 1,
		4, 0, 4, 1, 1,
		4, 3, 4, 4, 1,
		4, 0, 8, 0, 1,
		4, 4, 8, 4, 1,
		8, 0, 8, 4, 1,
	}
}

func pipeline(t *testing.T, flat []int32) (*bsp.Tree, *leafgraph.Graph) {
	t.Helper()
	tr, err := bsp.BuildBSP(flat)
	require.NoError(t, err)
	require.NoError(t, portal.BuildPortals(tr))
	g, err := leafgraph.BuildLeafGraph(tr)
	require.NoError(t, err)
	return tr, g
}

func TestGetLeafPVSReflexivityOnSealedRoom(t *testing.T) {
	tr, g := pipeline(t, sealedRoom())
	inside := bsp.FindLeafOfPoint(tr, 1, 1)

	mask, err := GetLeafPVS(g, tr.LeafCount, inside)
	require.NoError(t, err)
	assert.True(t, mask.Get(inside))

	for i := 0; i < tr.LeafCount; i++ {
		if bsp.LeafID(i) == inside {
			continue
		}
		assert.False(t, mask.Get(bsp.LeafID(i)), "sealed room must not see any other leaf")
	}
}

func TestGetLeafPVSRejectsOOBSource(t *testing.T) {
	tr, g := pipeline(t, sealedRoom())
	outside := bsp.FindLeafOfPoint(tr, -5, -5)

	_, err := GetLeafPVS(g, tr.LeafCount, outside)
	assert.ErrorIs(t, err, ErrOOBLeaf)
}

func TestGetLeafPVSRejectsInvalidLeaf(t *testing.T) {
	tr, g := pipeline(t, sealedRoom())
	_, err := GetLeafPVS(g, tr.LeafCount, bsp.LeafID(tr.LeafCount+10))
	assert.ErrorIs(t, err, ErrInvalidLeaf)
}

func TestGetLeafPVSDoorwayRoomsSeeEachOther(t *testing.T) {
	tr, g := pipeline(t, twoRoomsDoorway())
	roomA := bsp.FindLeafOfPoint(tr, 2, 2)
	roomB := bsp.FindLeafOfPoint(tr, 6, 2)
	require.NotEqual(t, roomA, roomB)

	maskA, err := GetLeafPVS(g, tr.LeafCount, roomA)
	require.NoError(t, err)
	assert.True(t, maskA.Get(roomA))
	assert.True(t, maskA.Get(roomB))

	maskB, err := GetLeafPVS(g, tr.LeafCount, roomB)
	require.NoError(t, err)
	assert.True(t, maskB.Get(roomB))
	assert.True(t, maskB.Get(roomA))
}
