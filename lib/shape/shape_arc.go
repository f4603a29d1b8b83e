package shape

import (
	"math"

	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/go2"
	"github.com/vecdraw/vd/lib/svg"
)

type shapeArc struct {
	*baseShape
	// Start and Extent are degrees counter-clockwise from the positive X axis,
	// following Tk canvas arc convention.
	Start  float64
	Extent float64
	Style  string
}

func NewArc(box *geo.Box, start, extent float64, style string) Shape {
	switch style {
	case ARC_STYLE_ARC, ARC_STYLE_CHORD, ARC_STYLE_PIESLICE:
	default:
		style = ARC_STYLE_PIESLICE
	}
	shape := shapeArc{
		baseShape: &baseShape{
			Type: ARC_TYPE,
			Box:  box,
		},
		Start:  start,
		Extent: extent,
		Style:  style,
	}
	shape.FullShape = go2.Pointer(Shape(shape))
	return shape
}

// arcPoint returns the point on the box-inscribed ellipse at deg degrees. Y is
// subtracted because arc degrees run counter-clockwise while screen Y grows
// downward.
func (s shapeArc) arcPoint(deg float64) *geo.Point {
	center := s.Box.Center()
	rad := geo.Radians(deg)
	return geo.NewPoint(
		center.X+s.Box.Width/2*math.Cos(rad),
		center.Y-s.Box.Height/2*math.Sin(rad),
	)
}

func (s shapeArc) Vertices() geo.Points {
	sweep := go2.Clamp(s.Extent, -360, 360)
	vertices := make(geo.Points, 0, ArcSegments+2)
	for i := 0; i <= ArcSegments; i++ {
		vertices = append(vertices, s.arcPoint(s.Start+sweep*float64(i)/ArcSegments))
	}
	if s.Style == ARC_STYLE_PIESLICE {
		vertices = append(vertices, s.Box.Center())
	}
	return vertices
}

func (s shapeArc) BoundingBox() *geo.Box {
	return s.Box.Copy()
}

func (s shapeArc) GetSVGPathData() []string {
	rx := s.Box.Width / 2
	ry := s.Box.Height / 2
	center := s.Box.Center()
	startPoint := s.arcPoint(s.Start)
	// SVG's sweep flag 1 runs clockwise on screen, the opposite of positive
	// extent.
	sweep := s.Extent < 0
	pc := svg.NewSVGPathContext(geo.NewPoint(0, 0), 1, 1)

	if math.Abs(s.Extent) >= 360 {
		// A single arc command whose endpoints coincide renders as nothing, so
		// a full sweep becomes two 180 degree arcs.
		opposite := s.arcPoint(s.Start + 180)
		pc.StartAt(pc.Absolute(startPoint.X, startPoint.Y))
		pc.A(rx, ry, 0, true, sweep, opposite.X, opposite.Y)
		pc.A(rx, ry, 0, true, sweep, startPoint.X, startPoint.Y)
		pc.Z()
		return []string{pc.PathData()}
	}

	endPoint := s.arcPoint(s.Start + s.Extent)
	largeArc := math.Abs(s.Extent) > 180
	switch s.Style {
	case ARC_STYLE_PIESLICE:
		pc.StartAt(pc.Absolute(center.X, center.Y))
		pc.L(false, startPoint.X, startPoint.Y)
		pc.A(rx, ry, 0, largeArc, sweep, endPoint.X, endPoint.Y)
		pc.Z()
	case ARC_STYLE_CHORD:
		pc.StartAt(pc.Absolute(startPoint.X, startPoint.Y))
		pc.A(rx, ry, 0, largeArc, sweep, endPoint.X, endPoint.Y)
		pc.Z()
	default:
		pc.StartAt(pc.Absolute(startPoint.X, startPoint.Y))
		pc.A(rx, ry, 0, largeArc, sweep, endPoint.X, endPoint.Y)
	}
	return []string{pc.PathData()}
}
