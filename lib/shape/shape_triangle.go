package shape

import (
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/go2"
)

type shapeTriangle struct {
	*baseShape
	// ApexOffset shifts the top vertex horizontally away from the box's center
	// line. Zero keeps the triangle isosceles. The apex may leave the box, in
	// which case BoundingBox grows past GetBox.
	ApexOffset float64
}

func NewTriangle(box *geo.Box, apexOffset float64) Shape {
	shape := shapeTriangle{
		baseShape: &baseShape{
			Type: TRIANGLE_TYPE,
			Box:  box,
		},
		ApexOffset: apexOffset,
	}
	shape.FullShape = go2.Pointer(Shape(shape))
	return shape
}

func (s shapeTriangle) Vertices() geo.Points {
	tl := s.Box.TopLeft
	return geo.Points{
		geo.NewPoint(tl.X+s.Box.Width/2+s.ApexOffset, tl.Y),
		geo.NewPoint(tl.X+s.Box.Width, tl.Y+s.Box.Height),
		geo.NewPoint(tl.X, tl.Y+s.Box.Height),
	}
}

func (s shapeTriangle) GetSVGPathData() []string {
	return []string{verticesPath(s.Vertices(), true).PathData()}
}
