package shape

import (
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/go2"
)

type shapeRhombus struct {
	*baseShape
}

func NewRhombus(box *geo.Box) Shape {
	shape := shapeRhombus{
		baseShape: &baseShape{
			Type: RHOMBUS_TYPE,
			Box:  box,
		},
	}
	shape.FullShape = go2.Pointer(Shape(shape))
	return shape
}

func (s shapeRhombus) Vertices() geo.Points {
	tl := s.Box.TopLeft
	cx := tl.X + s.Box.Width/2
	cy := tl.Y + s.Box.Height/2
	return geo.Points{
		geo.NewPoint(cx, tl.Y),
		geo.NewPoint(tl.X+s.Box.Width, cy),
		geo.NewPoint(cx, tl.Y+s.Box.Height),
		geo.NewPoint(tl.X, cy),
	}
}

func (s shapeRhombus) GetSVGPathData() []string {
	return []string{verticesPath(s.Vertices(), true).PathData()}
}
