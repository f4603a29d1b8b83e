package shape

import (
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/go2"
)

type shapeRightTriangle struct {
	*baseShape
	FlipH bool
	FlipV bool
}

func NewRightTriangle(box *geo.Box, flipH, flipV bool) Shape {
	shape := shapeRightTriangle{
		baseShape: &baseShape{
			Type: RIGHT_TRIANGLE_TYPE,
			Box:  box,
		},
		FlipH: flipH,
		FlipV: flipV,
	}
	shape.FullShape = go2.Pointer(Shape(shape))
	return shape
}

// The right angle sits at the bottom-left corner; flips mirror it to the other
// corners.
func (s shapeRightTriangle) Vertices() geo.Points {
	tl := s.Box.TopLeft
	vertices := geo.Points{
		geo.NewPoint(tl.X, tl.Y),
		geo.NewPoint(tl.X+s.Box.Width, tl.Y+s.Box.Height),
		geo.NewPoint(tl.X, tl.Y+s.Box.Height),
	}
	return flipVertices(vertices, s.Box, s.FlipH, s.FlipV)
}

func (s shapeRightTriangle) GetSVGPathData() []string {
	return []string{verticesPath(s.Vertices(), true).PathData()}
}
