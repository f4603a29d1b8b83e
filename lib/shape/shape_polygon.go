package shape

import (
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/go2"
)

type shapePolygon struct {
	*baseShape
	Sides int
	// Radius is the circumradius. The shape's box is the enclosing square, so
	// width and height stay locked.
	Radius float64
	FlipH  bool
	FlipV  bool
}

func NewPolygon(center *geo.Point, radius float64, sides int, flipH, flipV bool) Shape {
	if sides < 3 {
		sides = 3
	}
	shape := shapePolygon{
		baseShape: &baseShape{
			Type: POLYGON_TYPE,
			Box:  centerBox(center, radius),
		},
		Sides:  sides,
		Radius: radius,
		FlipH:  flipH,
		FlipV:  flipV,
	}
	shape.FullShape = go2.Pointer(Shape(shape))
	return shape
}

func (s shapePolygon) AspectRatio1() bool {
	return true
}

func (s shapePolygon) Vertices() geo.Points {
	if s.Radius <= 0 {
		return geo.Points{s.Box.Center()}
	}
	vertices := regularVertices(s.Box.Center(), []float64{s.Radius}, s.Sides)
	return flipVertices(vertices, s.Box, s.FlipH, s.FlipV)
}

func (s shapePolygon) Center() *geo.Point {
	return s.Box.Center()
}

func (s shapePolygon) BoundingBox() *geo.Box {
	return s.Box.Copy()
}

func (s shapePolygon) GetSVGPathData() []string {
	return []string{verticesPath(s.Vertices(), true).PathData()}
}
