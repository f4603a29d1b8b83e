package shape

import (
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/go2"
)

type shapeTrapezoid struct {
	*baseShape
	// LeftOffset and RightOffset inset the top edge's endpoints from the box
	// corners. Both clamp so the top edge never inverts.
	LeftOffset  float64
	RightOffset float64
}

func NewTrapezoid(box *geo.Box, leftOffset, rightOffset float64) Shape {
	shape := shapeTrapezoid{
		baseShape: &baseShape{
			Type: TRAPEZOID_TYPE,
			Box:  box,
		},
		LeftOffset:  leftOffset,
		RightOffset: rightOffset,
	}
	shape.FullShape = go2.Pointer(Shape(shape))
	return shape
}

func (s shapeTrapezoid) Vertices() geo.Points {
	tl := s.Box.TopLeft
	left := go2.Clamp(s.LeftOffset, 0, s.Box.Width)
	right := go2.Clamp(s.RightOffset, 0, s.Box.Width-left)
	return geo.Points{
		geo.NewPoint(tl.X+left, tl.Y),
		geo.NewPoint(tl.X+s.Box.Width-right, tl.Y),
		geo.NewPoint(tl.X+s.Box.Width, tl.Y+s.Box.Height),
		geo.NewPoint(tl.X, tl.Y+s.Box.Height),
	}
}

func (s shapeTrapezoid) GetSVGPathData() []string {
	return []string{verticesPath(s.Vertices(), true).PathData()}
}
