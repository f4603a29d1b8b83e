package shape

import (
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/go2"
	"github.com/vecdraw/vd/lib/svg"
)

// shapePath backs all point-list shapes. Lines and pencil strokes are open
// straight runs, polylines may close and smooth, beziers always smooth.
type shapePath struct {
	*baseShape
	Points geo.Points
	Closed bool
	Smooth bool
}

func NewLine(points geo.Points) Shape {
	return newPath(LINE_TYPE, points, false, false)
}

func NewPencil(points geo.Points) Shape {
	return newPath(PENCIL_TYPE, points, false, false)
}

func NewPolyline(points geo.Points, closed, smooth bool) Shape {
	return newPath(POLYLINE_TYPE, points, closed, smooth)
}

func NewBezier(points geo.Points, closed bool) Shape {
	return newPath(BEZIER_TYPE, points, closed, true)
}

func newPath(shapeType string, points geo.Points, closed, smooth bool) Shape {
	shape := shapePath{
		baseShape: &baseShape{
			Type: shapeType,
			Box:  points.BoundingBox(),
		},
		Points: points,
		Closed: closed,
		Smooth: smooth,
	}
	shape.FullShape = go2.Pointer(Shape(shape))
	return shape
}

func (s shapePath) IsPath() bool {
	return true
}

func (s shapePath) Vertices() geo.Points {
	if s.Smooth {
		return geo.SmoothPoints(s.Points, s.Closed)
	}
	return s.Points.Copy()
}

// BoundingBox spans the raw control points, not the flattened spline, so the
// selection box does not shift when smoothing toggles.
func (s shapePath) BoundingBox() *geo.Box {
	return s.Points.BoundingBox()
}

func (s shapePath) VisualBox() *geo.Box {
	if s.Rotation == 0 || len(s.Points) == 0 {
		return s.BoundingBox()
	}
	return geo.RotatePoints(s.Points, s.Center(), s.Rotation).BoundingBox()
}

func (s shapePath) GetSVGPathData() []string {
	if len(s.Points) == 0 {
		return nil
	}
	if !s.Smooth || len(s.Points) < 3 {
		return []string{verticesPath(s.Points, s.Closed && len(s.Points) >= 3).PathData()}
	}
	segs := geo.SmoothSegments(s.Points, s.Closed)
	pc := svg.NewSVGPathContext(geo.NewPoint(0, 0), 1, 1)
	pc.StartAt(pc.Absolute(segs[0].Start.X, segs[0].Start.Y))
	for _, seg := range segs {
		pc.Q(false, seg.Control.X, seg.Control.Y, seg.End.X, seg.End.Y)
	}
	if s.Closed {
		pc.Z()
	}
	return []string{pc.PathData()}
}
