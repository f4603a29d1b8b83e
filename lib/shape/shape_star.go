package shape

import (
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/go2"
)

type shapeStar struct {
	*baseShape
	// Sides is the number of star points, so the outline has 2*Sides vertices.
	Sides int
	// Radius is the outer circumradius; InnerRadius stays within [0, Radius].
	Radius      float64
	InnerRadius float64
	FlipH       bool
	FlipV       bool
}

func NewStar(center *geo.Point, radius, innerRadius float64, sides int, flipH, flipV bool) Shape {
	if sides < 3 {
		sides = 3
	}
	shape := shapeStar{
		baseShape: &baseShape{
			Type: STAR_TYPE,
			Box:  centerBox(center, radius),
		},
		Sides:       sides,
		Radius:      radius,
		InnerRadius: go2.Clamp(innerRadius, 0, radius),
		FlipH:       flipH,
		FlipV:       flipV,
	}
	shape.FullShape = go2.Pointer(Shape(shape))
	return shape
}

func (s shapeStar) AspectRatio1() bool {
	return true
}

func (s shapeStar) Vertices() geo.Points {
	if s.Radius <= 0 {
		return geo.Points{s.Box.Center()}
	}
	vertices := regularVertices(s.Box.Center(), []float64{s.Radius, s.InnerRadius}, 2*s.Sides)
	return flipVertices(vertices, s.Box, s.FlipH, s.FlipV)
}

func (s shapeStar) Center() *geo.Point {
	return s.Box.Center()
}

func (s shapeStar) BoundingBox() *geo.Box {
	return s.Box.Copy()
}

func (s shapeStar) GetSVGPathData() []string {
	return []string{verticesPath(s.Vertices(), true).PathData()}
}
