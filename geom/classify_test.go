package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollinear(t *testing.T) {
	assert.True(t, Collinear(Point{0, 0}, Point{2, 0}, Point{5, 0}))
	assert.False(t, Collinear(Point{0, 0}, Point{2, 0}, Point{2, 5}))
}

func TestLineSideOf(t *testing.T) {
	l := NewLine(Point{0, 0}, Point{0, 10})
	assert.Equal(t, Left, l.SideOf(Point{-1, 5}))
	assert.Equal(t, Right, l.SideOf(Point{1, 5}))
	// On-the-line ties resolve to Right.
	assert.Equal(t, Right, l.SideOf(Point{0, 5}))
}

func TestLineIntersect(t *testing.T) {
	l := NewLine(Point{0, 0}, Point{10, 0})
	other := NewLine(Point{5, -5}, Point{5, 5})
	tParam, denom, ok := l.Intersect(other)
	require.True(t, ok)
	assert.NotZero(t, denom)
	// other crosses l's y=0 line at its own t=0.5.
	assert.InDelta(t, 0.5, tParam, 1e-9)
}

func TestLineIntersectParallel(t *testing.T) {
	l := NewLine(Point{0, 0}, Point{10, 0})
	other := NewLine(Point{0, 5}, Point{10, 5})
	_, _, ok := l.Intersect(other)
	assert.False(t, ok)
}

func TestClassifySegmentCollinear(t *testing.T) {
	line := NewLine(Point{0, 0}, Point{10, 0})
	seg, err := NewSegment(line, 0, 1, true)
	require.NoError(t, err)
	c := ClassifySegment(seg, line, DefaultEpsilon)
	assert.Equal(t, ClassCOL, c.Class)
}

func TestClassifySegmentStraddle(t *testing.T) {
	splitter := NewLine(Point{5, -5}, Point{5, 5})
	segLine := NewLine(Point{0, 0}, Point{10, 0})
	seg, err := NewSegment(segLine, 0, 1, true)
	require.NoError(t, err)
	c := ClassifySegment(seg, splitter, DefaultEpsilon)
	assert.True(t, c.Class.IsStraddle())
	assert.InDelta(t, 0.5, c.CrossT, 1e-9)
}

func TestClassifySegmentParallel(t *testing.T) {
	splitter := NewLine(Point{0, 0}, Point{0, 10})
	segLine := NewLine(Point{5, 0}, Point{5, 10})
	seg, err := NewSegment(segLine, 0, 1, true)
	require.NoError(t, err)
	c := ClassifySegment(seg, splitter, DefaultEpsilon)
	assert.True(t, c.Class.IsRight())
}

func TestClassifySegmentTouchingEndpointTreatedAsWhole(t *testing.T) {
	splitter := NewLine(Point{10, -5}, Point{10, 5})
	segLine := NewLine(Point{0, 0}, Point{10, 0})
	// Segment ends exactly at the splitter's x: crossT == TEnd, well within
	// epsilon of the endpoint, so it must NOT be reported as a straddle.
	seg, err := NewSegment(segLine, 0, 1, true)
	require.NoError(t, err)
	c := ClassifySegment(seg, splitter, DefaultEpsilon)
	assert.False(t, c.Class.IsStraddle())
}

func TestSegmentMidpointHandlesInfiniteExtent(t *testing.T) {
	line := NewLine(Point{0, 0}, Point{10, 0})

	seg, err := NewSegment(line, math.Inf(-1), 5, true)
	require.NoError(t, err)
	mx, my := seg.Midpoint()
	assert.False(t, math.IsNaN(mx) || math.IsNaN(my))
	wantX, wantY := line.PointAt(4)
	assert.InDelta(t, wantX, mx, 1e-9)
	assert.InDelta(t, wantY, my, 1e-9)

	seg2, err := NewSegment(line, 5, math.Inf(1), true)
	require.NoError(t, err)
	mx2, my2 := seg2.Midpoint()
	assert.False(t, math.IsNaN(mx2) || math.IsNaN(my2))
	wantX2, wantY2 := line.PointAt(6)
	assert.InDelta(t, wantX2, mx2, 1e-9)
	assert.InDelta(t, wantY2, my2, 1e-9)

	seg3, err := NewSegment(line, math.Inf(-1), math.Inf(1), true)
	require.NoError(t, err)
	mx3, my3 := seg3.Midpoint()
	assert.False(t, math.IsNaN(mx3) || math.IsNaN(my3))
}

// TestClassifySegmentParallelInfiniteExtent guards against the NaN-driven
// always-Right misclassification that a naive (TStart+TEnd)/2 midpoint
// produces once one bound is infinite: an infinite-extent segment parallel
// to the splitter must still classify to its true side, not default to
// Right because Midpoint returned a NaN coordinate.
func TestClassifySegmentParallelInfiniteExtent(t *testing.T) {
	splitter := NewLine(Point{0, 0}, Point{0, 10})

	leftLine := NewLine(Point{-5, 0}, Point{-5, 10})
	leftSeg, err := NewSegment(leftLine, math.Inf(-1), math.Inf(1), true)
	require.NoError(t, err)
	c := ClassifySegment(leftSeg, splitter, DefaultEpsilon)
	assert.True(t, c.Class.IsLeft(), "expected Left, got %v", c.Class)

	rightLine := NewLine(Point{5, 0}, Point{5, 10})
	rightSeg, err := NewSegment(rightLine, math.Inf(-1), 3, true)
	require.NoError(t, err)
	c2 := ClassifySegment(rightSeg, splitter, DefaultEpsilon)
	assert.True(t, c2.Class.IsRight(), "expected Right, got %v", c2.Class)
}

func TestNewConfigDefaultEpsilon(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, DefaultEpsilon, cfg.Epsilon())

	cfg2 := NewConfig(WithEpsilon(0.0005))
	assert.Equal(t, Epsilon(0.0005), cfg2.Epsilon())
}

func TestWithEpsilonPanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { WithEpsilon(0) })
	assert.Panics(t, func() { WithEpsilon(-1) })
}
