package shape

import (
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/go2"
)

type shapeParallelogram struct {
	*baseShape
	// Skew shifts the top edge horizontally relative to the bottom edge.
	// Positive skew leans right. The parallel edges shrink to width-|skew|, so
	// |skew| clamps to the box width.
	Skew float64
}

func NewParallelogram(box *geo.Box, skew float64) Shape {
	shape := shapeParallelogram{
		baseShape: &baseShape{
			Type: PARALLELOGRAM_TYPE,
			Box:  box,
		},
		Skew: skew,
	}
	shape.FullShape = go2.Pointer(Shape(shape))
	return shape
}

func (s shapeParallelogram) Vertices() geo.Points {
	tl := s.Box.TopLeft
	w := s.Box.Width
	h := s.Box.Height
	skew := go2.Clamp(s.Skew, -w, w)
	if skew >= 0 {
		return geo.Points{
			geo.NewPoint(tl.X+skew, tl.Y),
			geo.NewPoint(tl.X+w, tl.Y),
			geo.NewPoint(tl.X+w-skew, tl.Y+h),
			geo.NewPoint(tl.X, tl.Y+h),
		}
	}
	return geo.Points{
		geo.NewPoint(tl.X, tl.Y),
		geo.NewPoint(tl.X+w+skew, tl.Y),
		geo.NewPoint(tl.X+w, tl.Y+h),
		geo.NewPoint(tl.X-skew, tl.Y+h),
	}
}

func (s shapeParallelogram) GetSVGPathData() []string {
	return []string{verticesPath(s.Vertices(), true).PathData()}
}
