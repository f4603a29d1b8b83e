package shape

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecdraw/vd/lib/geo"
)

func boxesEqual(t *testing.T, expected, actual *geo.Box) {
	t.Helper()
	require.NotNil(t, actual)
	assert.True(t, geo.PrecisionCompare(expected.TopLeft.X, actual.TopLeft.X, geo.PRECISION) == 0 &&
		geo.PrecisionCompare(expected.TopLeft.Y, actual.TopLeft.Y, geo.PRECISION) == 0 &&
		geo.PrecisionCompare(expected.Width, actual.Width, geo.PRECISION) == 0 &&
		geo.PrecisionCompare(expected.Height, actual.Height, geo.PRECISION) == 0,
		"expected %s, got %s", expected.ToString(), actual.ToString(),
	)
}

func TestVisualBoxMatchesBoundingBoxUnrotated(t *testing.T) {
	box := geo.NewBox(geo.NewPoint(10, 20), 100, 60)
	for _, shapeType := range []string{
		RECTANGLE_TYPE,
		ELLIPSE_TYPE,
		LINE_TYPE,
		PENCIL_TYPE,
		POLYLINE_TYPE,
		BEZIER_TYPE,
		TRIANGLE_TYPE,
		RIGHT_TRIANGLE_TYPE,
		RHOMBUS_TYPE,
		TRAPEZOID_TYPE,
		PARALLELOGRAM_TYPE,
		POLYGON_TYPE,
		STAR_TYPE,
		ARC_TYPE,
		TEXT_TYPE,
		IMAGE_TYPE,
		BITMAP_TYPE,
	} {
		t.Run(shapeType, func(t *testing.T) {
			s := NewShape(shapeType, box.Copy())
			assert.Equal(t, shapeType, s.GetType())
			assert.True(t, s.Is(shapeType))
			boxesEqual(t, s.BoundingBox(), s.VisualBox())
		})
	}
}

func TestRectangleVertices(t *testing.T) {
	s := NewRectangle(geo.NewBox(geo.NewPoint(10, 20), 100, 60))
	vertices := s.Vertices()
	require.Len(t, vertices, 4)
	assert.True(t, vertices[0].Equals(geo.NewPoint(10, 20)))
	assert.True(t, vertices[1].Equals(geo.NewPoint(110, 20)))
	assert.True(t, vertices[2].Equals(geo.NewPoint(110, 80)))
	assert.True(t, vertices[3].Equals(geo.NewPoint(10, 80)))

	boxesEqual(t, geo.NewBox(geo.NewPoint(10, 20), 100, 60), s.BoundingBox())
	assert.True(t, s.Center().Equals(geo.NewPoint(60, 50)))
}

func TestRectangleRotatedVisualBox(t *testing.T) {
	s := NewRectangle(geo.NewBox(geo.NewPoint(0, 0), 100, 100))
	s.SetRotation(45)

	visual := s.VisualBox()
	side := 100 * 1.4142135623730951
	boxesEqual(t, geo.NewBox(geo.NewPoint(50-side/2, 50-side/2), side, side), visual)
}

func TestEllipseVertices(t *testing.T) {
	s := NewEllipse(geo.NewBox(geo.NewPoint(0, 0), 100, 50))
	vertices := s.Vertices()
	require.GreaterOrEqual(t, len(vertices), MinEllipseSegments)

	// every sample lies on the ellipse
	for _, v := range vertices {
		dx := (v.X - 50) / 50
		dy := (v.Y - 25) / 25
		assert.InDelta(t, 1.0, dx*dx+dy*dy, 0.0001)
	}

	// the approximation is not the bounding box
	boxesEqual(t, geo.NewBox(geo.NewPoint(0, 0), 100, 50), s.BoundingBox())
}

func TestEllipseSegmentsScaleWithRadius(t *testing.T) {
	small := NewEllipse(geo.NewBox(geo.NewPoint(0, 0), 10, 10))
	large := NewEllipse(geo.NewBox(geo.NewPoint(0, 0), 1000, 1000))
	assert.Equal(t, MinEllipseSegments, len(small.Vertices()))
	assert.Greater(t, len(large.Vertices()), len(small.Vertices()))
}

func TestEllipseRotatedVisualBox(t *testing.T) {
	s := NewEllipse(geo.NewBox(geo.NewPoint(0, 0), 100, 50))
	s.SetRotation(90)

	// at 90 degrees the radii swap
	boxesEqual(t, geo.NewBox(geo.NewPoint(25, -25), 50, 100), s.VisualBox())
}

func TestEllipseDegenerate(t *testing.T) {
	s := NewEllipse(geo.NewBox(geo.NewPoint(5, 5), 0, 0))
	vertices := s.Vertices()
	require.Len(t, vertices, 1)
	assert.True(t, vertices[0].Equals(geo.NewPoint(5, 5)))
}

func TestTriangleVertices(t *testing.T) {
	box := geo.NewBox(geo.NewPoint(0, 0), 100, 60)

	isosceles := NewTriangle(box.Copy(), 0)
	vertices := isosceles.Vertices()
	require.Len(t, vertices, 3)
	assert.True(t, vertices[0].Equals(geo.NewPoint(50, 0)))
	assert.True(t, vertices[1].Equals(geo.NewPoint(100, 60)))
	assert.True(t, vertices[2].Equals(geo.NewPoint(0, 60)))

	leaning := NewTriangle(box.Copy(), 30)
	assert.True(t, leaning.Vertices()[0].Equals(geo.NewPoint(80, 0)))
}

func TestTriangleApexOutsideBoxGrowsBoundingBox(t *testing.T) {
	s := NewTriangle(geo.NewBox(geo.NewPoint(0, 0), 100, 60), 70)
	// apex lands at x=120, past the box's right edge
	boxesEqual(t, geo.NewBox(geo.NewPoint(0, 0), 120, 60), s.BoundingBox())
}

func TestRightTriangleFlips(t *testing.T) {
	box := geo.NewBox(geo.NewPoint(0, 0), 60, 30)

	plain := NewRightTriangle(box.Copy(), false, false).Vertices()
	require.Len(t, plain, 3)
	assert.True(t, plain[0].Equals(geo.NewPoint(0, 0)))
	assert.True(t, plain[1].Equals(geo.NewPoint(60, 30)))
	assert.True(t, plain[2].Equals(geo.NewPoint(0, 30)))

	flippedH := NewRightTriangle(box.Copy(), true, false).Vertices()
	assert.True(t, flippedH[0].Equals(geo.NewPoint(60, 0)))
	assert.True(t, flippedH[1].Equals(geo.NewPoint(0, 30)))
	assert.True(t, flippedH[2].Equals(geo.NewPoint(60, 30)))

	flippedV := NewRightTriangle(box.Copy(), false, true).Vertices()
	assert.True(t, flippedV[0].Equals(geo.NewPoint(0, 30)))
	assert.True(t, flippedV[1].Equals(geo.NewPoint(60, 0)))
	assert.True(t, flippedV[2].Equals(geo.NewPoint(0, 0)))
}

func TestRhombusVertices(t *testing.T) {
	s := NewRhombus(geo.NewBox(geo.NewPoint(0, 0), 80, 40))
	vertices := s.Vertices()
	require.Len(t, vertices, 4)
	assert.True(t, vertices[0].Equals(geo.NewPoint(40, 0)))
	assert.True(t, vertices[1].Equals(geo.NewPoint(80, 20)))
	assert.True(t, vertices[2].Equals(geo.NewPoint(40, 40)))
	assert.True(t, vertices[3].Equals(geo.NewPoint(0, 20)))
}

func TestTrapezoidVertices(t *testing.T) {
	s := NewTrapezoid(geo.NewBox(geo.NewPoint(0, 0), 100, 50), 20, 30)
	vertices := s.Vertices()
	require.Len(t, vertices, 4)
	assert.True(t, vertices[0].Equals(geo.NewPoint(20, 0)))
	assert.True(t, vertices[1].Equals(geo.NewPoint(70, 0)))
	assert.True(t, vertices[2].Equals(geo.NewPoint(100, 50)))
	assert.True(t, vertices[3].Equals(geo.NewPoint(0, 50)))
}

func TestTrapezoidOffsetsClamp(t *testing.T) {
	// offsets larger than the width cannot cross the top edge over itself
	s := NewTrapezoid(geo.NewBox(geo.NewPoint(0, 0), 100, 50), 80, 80)
	vertices := s.Vertices()
	assert.True(t, vertices[0].X <= vertices[1].X)
}

func TestParallelogramVertices(t *testing.T) {
	box := geo.NewBox(geo.NewPoint(0, 0), 100, 50)

	right := NewParallelogram(box.Copy(), 25).Vertices()
	require.Len(t, right, 4)
	assert.True(t, right[0].Equals(geo.NewPoint(25, 0)))
	assert.True(t, right[1].Equals(geo.NewPoint(100, 0)))
	assert.True(t, right[2].Equals(geo.NewPoint(75, 50)))
	assert.True(t, right[3].Equals(geo.NewPoint(0, 50)))

	left := NewParallelogram(box.Copy(), -25).Vertices()
	assert.True(t, left[0].Equals(geo.NewPoint(0, 0)))
	assert.True(t, left[1].Equals(geo.NewPoint(75, 0)))
	assert.True(t, left[2].Equals(geo.NewPoint(100, 50)))
	assert.True(t, left[3].Equals(geo.NewPoint(25, 50)))
}

func TestPolygonVertices(t *testing.T) {
	center := geo.NewPoint(100, 100)
	for _, sides := range []int{3, 4, 5, 6, 8, 12} {
		t.Run(fmt.Sprintf("%d_sides", sides), func(t *testing.T) {
			s := NewPolygon(center.Copy(), 50, sides, false, false)
			vertices := s.Vertices()
			require.Len(t, vertices, sides)

			// first vertex points up
			assert.InDelta(t, 100, vertices[0].X, 0.0001)
			assert.InDelta(t, 50, vertices[0].Y, 0.0001)

			step := 360.0 / float64(sides)
			for i, v := range vertices {
				assert.InDelta(t, 50, geo.EuclideanDistance(center.X, center.Y, v.X, v.Y), 0.0001)
				next := vertices[(i+1)%sides]
				delta := geo.DeltaDegrees(geo.AngleDegrees(center, v), geo.AngleDegrees(center, next))
				assert.InDelta(t, step, geo.NormalizeDegrees(delta), 0.0001)
			}
		})
	}
}

func TestStarVertices(t *testing.T) {
	center := geo.NewPoint(0, 0)
	s := NewStar(center.Copy(), 10, 5, 5, false, false)
	vertices := s.Vertices()
	require.Len(t, vertices, 10)

	for i, v := range vertices {
		want := 10.0
		if i%2 == 1 {
			want = 5.0
		}
		assert.InDelta(t, want, geo.EuclideanDistance(0, 0, v.X, v.Y), 0.0001)
	}

	// topmost outer point first
	assert.InDelta(t, 0, vertices[0].X, 0.0001)
	assert.InDelta(t, -10, vertices[0].Y, 0.0001)
}

func TestStarInnerRadiusClamps(t *testing.T) {
	s := NewStar(geo.NewPoint(0, 0), 10, 25, 5, false, false)
	for i, v := range s.Vertices() {
		if i%2 == 1 {
			assert.LessOrEqual(t, geo.EuclideanDistance(0, 0, v.X, v.Y), 10.0001)
		}
	}
}

func TestPolygonFlipVertical(t *testing.T) {
	plain := NewPolygon(geo.NewPoint(0, 0), 10, 3, false, false).Vertices()
	flipped := NewPolygon(geo.NewPoint(0, 0), 10, 3, false, true).Vertices()

	// an upward-pointing triangle flips to point down
	assert.InDelta(t, -10, plain[0].Y, 0.0001)
	assert.InDelta(t, 10, flipped[0].Y, 0.0001)
}

func TestCenterShapesLockAspect(t *testing.T) {
	assert.True(t, NewPolygon(geo.NewPoint(0, 0), 10, 6, false, false).AspectRatio1())
	assert.True(t, NewStar(geo.NewPoint(0, 0), 10, 5, 5, false, false).AspectRatio1())
	assert.True(t, NewBitmap(geo.NewPoint(0, 0)).AspectRatio1())
	assert.False(t, NewRectangle(geo.NewBox(geo.NewPoint(0, 0), 10, 10)).AspectRatio1())
}

func TestArcVertices(t *testing.T) {
	box := geo.NewBox(geo.NewPoint(0, 0), 100, 100)

	pie := NewArc(box.Copy(), 0, 90, ARC_STYLE_PIESLICE)
	vertices := pie.Vertices()
	// 32 segments plus the center point
	require.Len(t, vertices, ArcSegments+2)
	assert.True(t, vertices[0].Equals(geo.NewPoint(100, 50)))
	last := vertices[len(vertices)-1]
	assert.True(t, last.Equals(geo.NewPoint(50, 50)))
	// positive extent sweeps counter-clockwise, so the arc's end points up
	end := vertices[ArcSegments]
	assert.InDelta(t, 50, end.X, 0.0001)
	assert.InDelta(t, 0, end.Y, 0.0001)

	open := NewArc(box.Copy(), 0, 90, ARC_STYLE_ARC)
	require.Len(t, open.Vertices(), ArcSegments+1)
}

func TestArcPath(t *testing.T) {
	box := geo.NewBox(geo.NewPoint(0, 0), 100, 100)

	pie := NewArc(box.Copy(), 0, 90, ARC_STYLE_PIESLICE)
	paths := pie.GetSVGPathData()
	require.Len(t, paths, 1)
	assert.Equal(t, "M 50 50 L 100 50 A 50 50 0 0 0 50 0 Z", paths[0])

	chord := NewArc(box.Copy(), 0, 90, ARC_STYLE_CHORD)
	assert.Equal(t, "M 100 50 A 50 50 0 0 0 50 0 Z", chord.GetSVGPathData()[0])

	open := NewArc(box.Copy(), 0, 90, ARC_STYLE_ARC)
	assert.Equal(t, "M 100 50 A 50 50 0 0 0 50 0", open.GetSVGPathData()[0])
}

func TestArcPathLargeExtent(t *testing.T) {
	s := NewArc(geo.NewBox(geo.NewPoint(0, 0), 100, 100), 0, 270, ARC_STYLE_ARC)
	path := s.GetSVGPathData()[0]
	assert.Contains(t, path, "A 50 50 0 1 0")
}

func TestArcPathNegativeExtentSweepsClockwise(t *testing.T) {
	s := NewArc(geo.NewBox(geo.NewPoint(0, 0), 100, 100), 90, -90, ARC_STYLE_ARC)
	assert.Equal(t, "M 50 0 A 50 50 0 0 1 100 50", s.GetSVGPathData()[0])
}

func TestArcFullSweepBecomesTwoHalves(t *testing.T) {
	// 450 degrees wraps past a full turn; a lone arc command would collapse
	s := NewArc(geo.NewBox(geo.NewPoint(0, 0), 100, 50), 0, 450, ARC_STYLE_ARC)
	paths := s.GetSVGPathData()
	require.Len(t, paths, 1)
	assert.Equal(t, "M 100 25 A 50 25 0 1 0 0 25 A 50 25 0 1 0 100 25 Z", paths[0])
	assert.Equal(t, 2, strings.Count(paths[0], "A "))
}

func TestPathShapes(t *testing.T) {
	points := geo.Points{
		geo.NewPoint(0, 0),
		geo.NewPoint(50, 80),
		geo.NewPoint(100, 0),
	}

	line := NewLine(geo.Points{points[0].Copy(), points[2].Copy()})
	assert.True(t, line.IsPath())
	assert.Equal(t, "M 0 0 L 100 0", line.GetSVGPathData()[0])

	polyline := NewPolyline(points.Copy(), false, false)
	vertices := polyline.Vertices()
	require.Len(t, vertices, 3)
	assert.True(t, vertices.Equals(points))

	bezier := NewBezier(points.Copy(), false)
	// straight lead-in, one curve piece, straight lead-out
	assert.Len(t, bezier.Vertices(), 1+3*geo.SplineSegments)
	assert.Contains(t, bezier.GetSVGPathData()[0], "Q ")
}

func TestPathVerticesDoNotAliasPoints(t *testing.T) {
	points := geo.Points{geo.NewPoint(0, 0), geo.NewPoint(10, 10)}
	s := NewPolyline(points, false, false)
	s.Vertices()[0].X = 999
	assert.Equal(t, 0.0, points[0].X)
}

func TestPathBoundingBoxUsesControlPoints(t *testing.T) {
	points := geo.Points{
		geo.NewPoint(0, 0),
		geo.NewPoint(50, 100),
		geo.NewPoint(100, 0),
	}
	straight := NewPolyline(points.Copy(), false, false)
	smooth := NewPolyline(points.Copy(), false, true)

	// smoothing pulls the drawn curve inside the control hull, but the box is
	// the same either way
	boxesEqual(t, straight.BoundingBox(), smooth.BoundingBox())
}

func TestClosedSmoothPathClosesPathData(t *testing.T) {
	points := geo.Points{
		geo.NewPoint(0, 0),
		geo.NewPoint(100, 0),
		geo.NewPoint(50, 80),
	}
	s := NewPolyline(points, true, true)
	path := s.GetSVGPathData()[0]
	assert.True(t, strings.HasSuffix(path, "Z"))
	// closed smoothing wraps, one curve piece per control point
	assert.Equal(t, 3, strings.Count(path, "Q "))
}

func TestEmptyPathHasNoGeometry(t *testing.T) {
	s := NewPolyline(nil, false, false)
	assert.Nil(t, s.Vertices().BoundingBox())
	assert.Nil(t, s.BoundingBox())
	assert.Nil(t, s.GetSVGPathData())
	assert.Nil(t, s.Center())
}

func TestSetRotationNormalizes(t *testing.T) {
	s := NewRectangle(geo.NewBox(geo.NewPoint(0, 0), 10, 10))
	s.SetRotation(370)
	assert.Equal(t, 10.0, s.GetRotation())
	s.SetRotation(-90)
	assert.Equal(t, 270.0, s.GetRotation())
}

func TestNewShapeDefaults(t *testing.T) {
	box := geo.NewBox(geo.NewPoint(0, 0), 100, 60)

	star := NewShape(STAR_TYPE, box.Copy())
	boxesEqual(t, geo.NewBox(geo.NewPoint(20, 0), 60, 60), star.BoundingBox())
	assert.Len(t, star.Vertices(), 2*defaultStarPoints)

	polygon := NewShape(POLYGON_TYPE, box.Copy())
	assert.Len(t, polygon.Vertices(), defaultPolygonSides)

	bitmap := NewShape(BITMAP_TYPE, box.Copy())
	boxesEqual(t, geo.NewBox(geo.NewPoint(42, 22), BitmapSize, BitmapSize), bitmap.BoundingBox())

	unknown := NewShape("Blob", box.Copy())
	assert.Equal(t, "Blob", unknown.GetType())
	boxesEqual(t, box, unknown.BoundingBox())
}

func TestBoxPathData(t *testing.T) {
	s := NewRectangle(geo.NewBox(geo.NewPoint(10, 20), 100, 60))
	paths := s.GetSVGPathData()
	require.Len(t, paths, 1)
	assert.Equal(t, "M 10 20 L 110 20 L 110 80 L 10 80 Z", paths[0])
}

func TestLimitAR(t *testing.T) {
	w, h := LimitAR(200, 50, 1)
	assert.Equal(t, 200.0, w)
	assert.Equal(t, 200.0, h)

	w, h = LimitAR(50, 200, 1)
	assert.Equal(t, 200.0, w)
	assert.Equal(t, 200.0, h)
}
