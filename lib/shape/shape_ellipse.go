package shape

import (
	"math"

	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/go2"
	"github.com/vecdraw/vd/lib/svg"
)

type shapeEllipse struct {
	*baseShape
}

func NewEllipse(box *geo.Box) Shape {
	shape := shapeEllipse{
		baseShape: &baseShape{
			Type: ELLIPSE_TYPE,
			Box:  box,
		},
	}
	shape.FullShape = go2.Pointer(Shape(shape))
	return shape
}

// EllipseSegments returns the segment count used to approximate an ellipse
// with the given radii. It grows with the circumference so large ellipses stay
// smooth, and never drops below MinEllipseSegments.
func EllipseSegments(rx, ry float64) int {
	n := int(math.Ceil(math.Pi * (rx + ry) / 8))
	if n < MinEllipseSegments {
		n = MinEllipseSegments
	}
	return n
}

func (s shapeEllipse) Vertices() geo.Points {
	rx := s.Box.Width / 2
	ry := s.Box.Height / 2
	if rx == 0 && ry == 0 {
		return geo.Points{s.Box.TopLeft.Copy()}
	}
	center := s.Box.Center()
	n := EllipseSegments(rx, ry)
	vertices := make(geo.Points, 0, n)
	for i := 0; i < n; i++ {
		rad := 2 * math.Pi * float64(i) / float64(n)
		vertices = append(vertices, geo.NewPoint(
			center.X+rx*math.Cos(rad),
			center.Y+ry*math.Sin(rad),
		))
	}
	return vertices
}

func (s shapeEllipse) BoundingBox() *geo.Box {
	return s.Box.Copy()
}

// VisualBox uses the closed-form axis-aligned bounds of a rotated ellipse,
// width' = 2*sqrt((rx*cos t)^2 + (ry*sin t)^2), instead of rotating the vertex
// approximation.
func (s shapeEllipse) VisualBox() *geo.Box {
	if s.Rotation == 0 {
		return s.Box.Copy()
	}
	rx := s.Box.Width / 2
	ry := s.Box.Height / 2
	rad := geo.Radians(s.Rotation)
	sin, cos := math.Sin(rad), math.Cos(rad)
	w := 2 * math.Sqrt(math.Pow(rx*cos, 2)+math.Pow(ry*sin, 2))
	h := 2 * math.Sqrt(math.Pow(rx*sin, 2)+math.Pow(ry*cos, 2))
	center := s.Box.Center()
	return geo.NewBox(geo.NewPoint(center.X-w/2, center.Y-h/2), w, h)
}

func (s shapeEllipse) GetSVGPathData() []string {
	rx := s.Box.Width / 2
	ry := s.Box.Height / 2
	pc := svg.NewSVGPathContext(s.Box.TopLeft, 1, 1)
	pc.StartAt(pc.Absolute(0, ry))
	pc.A(rx, ry, 0, true, false, s.Box.Width, ry)
	pc.A(rx, ry, 0, true, false, 0, ry)
	pc.Z()
	return []string{pc.PathData()}
}
