package shape

import (
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/go2"
)

// Text geometry is just its measured box. Line layout and wrapping live in
// textmeasure.
type shapeText struct {
	*baseShape
}

func NewText(box *geo.Box) Shape {
	shape := shapeText{
		baseShape: &baseShape{
			Type: TEXT_TYPE,
			Box:  box,
		},
	}
	shape.FullShape = go2.Pointer(Shape(shape))
	return shape
}
