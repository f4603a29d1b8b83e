package shape

import (
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/go2"
)

type shapeImage struct {
	*baseShape
}

func NewImage(box *geo.Box) Shape {
	shape := shapeImage{
		baseShape: &baseShape{
			Type: IMAGE_TYPE,
			Box:  box,
		},
	}
	shape.FullShape = go2.Pointer(Shape(shape))
	return shape
}
