package shape

import (
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/go2"
)

type shapeRectangle struct {
	*baseShape
}

func NewRectangle(box *geo.Box) Shape {
	shape := shapeRectangle{
		baseShape: &baseShape{
			Type: RECTANGLE_TYPE,
			Box:  box,
		},
	}
	shape.FullShape = go2.Pointer(Shape(shape))
	return shape
}
