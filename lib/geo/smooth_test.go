package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmoothPointsTooFewPassThrough(t *testing.T) {
	two := Points{NewPoint(0, 0), NewPoint(10, 10)}

	out := SmoothPoints(two, false)
	assert.True(t, out.Equals(two))
	// pass-through still copies
	out[0].X = 99
	assert.Equal(t, 0.0, two[0].X)

	assert.True(t, SmoothPoints(two, true).Equals(two))
	assert.Nil(t, SmoothSegments(two, false))
}

func TestSmoothSegmentsOpen(t *testing.T) {
	pts := Points{NewPoint(0, 0), NewPoint(100, 0), NewPoint(100, 100), NewPoint(0, 100)}

	segs := SmoothSegments(pts, false)
	// straight lead-in, two curve pieces, straight lead-out
	assert.Equal(t, 4, len(segs))

	// the path starts and ends at the true endpoints
	assert.True(t, segs[0].Start.Equals(pts[0]))
	assert.True(t, segs[len(segs)-1].End.Equals(pts[len(pts)-1]))

	// interior knots are the side midpoints, controls the user points
	assert.True(t, segs[1].Start.Equals(NewPoint(50, 0)))
	assert.True(t, segs[1].Control.Equals(pts[1]))
	assert.True(t, segs[1].End.Equals(NewPoint(100, 50)))
	assert.True(t, segs[2].Control.Equals(pts[2]))
	assert.True(t, segs[2].End.Equals(NewPoint(50, 100)))
}

func TestSmoothSegmentsClosedWrapsAtMidpoint(t *testing.T) {
	pts := Points{NewPoint(0, 0), NewPoint(100, 0), NewPoint(100, 100)}

	segs := SmoothSegments(pts, true)
	assert.Equal(t, 3, len(segs))

	wrap := Midpoint(pts[2], pts[0])
	assert.True(t, segs[0].Start.Equals(wrap))
	assert.True(t, segs[len(segs)-1].End.Equals(wrap))

	// every user point is the control of exactly one piece
	for i, seg := range segs {
		assert.True(t, seg.Control.Equals(pts[i]))
	}
	// pieces chain end-to-start
	for i := 1; i < len(segs); i++ {
		assert.True(t, segs[i].Start.Equals(segs[i-1].End))
	}
}

func TestSmoothPointsSubdivision(t *testing.T) {
	pts := Points{NewPoint(0, 0), NewPoint(100, 0), NewPoint(100, 100), NewPoint(0, 100)}

	open := SmoothPoints(pts, false)
	// 4 pieces, SplineSegments lines each, plus the starting point
	assert.Equal(t, 1+4*SplineSegments, len(open))
	assert.True(t, open[0].Equals(pts[0]))
	assert.True(t, open[len(open)-1].Equals(pts[len(pts)-1]))

	// the straight lead-in stays on the line y=0
	for i := 0; i <= SplineSegments; i++ {
		assert.Equal(t, 0.0, open[i].Y)
	}

	closed := SmoothPoints(pts, true)
	assert.Equal(t, 1+4*SplineSegments, len(closed))
	assert.True(t, closed[0].Equals(closed[len(closed)-1]))
}

func TestQuadraticPointEndpoints(t *testing.T) {
	a, c, b := NewPoint(0, 0), NewPoint(50, 100), NewPoint(100, 0)

	assert.True(t, QuadraticPoint(a, c, b, 0).Equals(a))
	assert.True(t, QuadraticPoint(a, c, b, 1).Equals(b))
	// apex of a symmetric quadratic is halfway up to the control
	mid := QuadraticPoint(a, c, b, 0.5)
	assert.True(t, mid.Equals(NewPoint(50, 50)))
}
