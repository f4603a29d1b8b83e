package shape

import (
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/go2"
)

// BitmapSize is the fixed edge length of a bitmap stamp's box.
const BitmapSize = 16

// Bitmaps are small fixed-size stamps anchored at their center. They do not
// resize.
type shapeBitmap struct {
	*baseShape
}

func NewBitmap(center *geo.Point) Shape {
	tl := geo.NewPoint(center.X-BitmapSize/2, center.Y-BitmapSize/2)
	shape := shapeBitmap{
		baseShape: &baseShape{
			Type: BITMAP_TYPE,
			Box:  geo.NewBox(tl, BitmapSize, BitmapSize),
		},
	}
	shape.FullShape = go2.Pointer(Shape(shape))
	return shape
}

func (s shapeBitmap) AspectRatio1() bool {
	return true
}
