package shape

import (
	"math"

	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/go2"
	"github.com/vecdraw/vd/lib/svg"
)

const (
	RECTANGLE_TYPE      = "Rectangle"
	ELLIPSE_TYPE        = "Ellipse"
	LINE_TYPE           = "Line"
	PENCIL_TYPE         = "Pencil"
	POLYLINE_TYPE       = "Polyline"
	BEZIER_TYPE         = "Bezier"
	TRIANGLE_TYPE       = "Triangle"
	RIGHT_TRIANGLE_TYPE = "RightTriangle"
	RHOMBUS_TYPE        = "Rhombus"
	TRAPEZOID_TYPE      = "Trapezoid"
	PARALLELOGRAM_TYPE  = "Parallelogram"
	POLYGON_TYPE        = "Polygon"
	STAR_TYPE           = "Star"
	ARC_TYPE            = "Arc"
	TEXT_TYPE           = "Text"
	IMAGE_TYPE          = "Image"
	BITMAP_TYPE         = "Bitmap"
)

// Arc item styles, matching canvas arc semantics.
const (
	ARC_STYLE_ARC      = "arc"
	ARC_STYLE_CHORD    = "chord"
	ARC_STYLE_PIESLICE = "pieslice"
)

const (
	defaultPolygonSides = 6
	defaultStarPoints   = 5

	// MinEllipseSegments bounds the polygon approximation of an ellipse from
	// below so small ellipses still look round in point form.
	MinEllipseSegments = 24
	// ArcSegments is the fixed segment count of an arc's piecewise-linear
	// approximation.
	ArcSegments = 32
)

type Shape interface {
	Is(shape string) bool
	GetType() string

	// AspectRatio1 reports shapes whose width and height stay locked together,
	// like stars and regular polygons parameterized by a single radius.
	AspectRatio1() bool
	// IsPath reports point-list shapes, which expose endpoint handles instead
	// of the 8-handle selection box.
	IsPath() bool

	GetBox() *geo.Box
	GetRotation() float64
	SetRotation(degrees float64)

	// Vertices returns the outline points in drawing order, before rotation is
	// applied. Smooth paths return their flattened spline.
	Vertices() geo.Points
	Center() *geo.Point
	// BoundingBox is the axis-aligned box around the shape in its unrotated
	// frame.
	BoundingBox() *geo.Box
	// VisualBox is the axis-aligned box the rotated shape occupies on screen.
	// At rotation 0 it equals BoundingBox.
	VisualBox() *geo.Box

	GetSVGPathData() []string
}

type baseShape struct {
	Type      string
	Box       *geo.Box
	Rotation  float64
	FullShape *Shape
}

func (s baseShape) Is(shapeType string) bool {
	return s.Type == shapeType
}

func (s baseShape) GetType() string {
	return s.Type
}

func (s baseShape) AspectRatio1() bool {
	return false
}

func (s baseShape) IsPath() bool {
	return false
}

func (s baseShape) GetBox() *geo.Box {
	return s.Box
}

func (s baseShape) GetRotation() float64 {
	return s.Rotation
}

func (s *baseShape) SetRotation(degrees float64) {
	s.Rotation = geo.NormalizeDegrees(degrees)
}

func (s baseShape) Vertices() geo.Points {
	if s.Box == nil {
		return nil
	}
	return s.Box.Corners()
}

func (s baseShape) Center() *geo.Point {
	box := (*s.FullShape).BoundingBox()
	if box == nil {
		return nil
	}
	return box.Center()
}

func (s baseShape) BoundingBox() *geo.Box {
	if box := (*s.FullShape).Vertices().BoundingBox(); box != nil {
		return box
	}
	return s.Box.Copy()
}

func (s baseShape) VisualBox() *geo.Box {
	full := *s.FullShape
	if s.Rotation == 0 {
		return full.BoundingBox()
	}
	center := full.Center()
	if center == nil {
		return nil
	}
	if box := geo.RotatePoints(full.Vertices(), center, s.Rotation).BoundingBox(); box != nil {
		return box
	}
	return full.BoundingBox()
}

func (s baseShape) GetSVGPathData() []string {
	if s.Box == nil {
		return nil
	}
	return []string{boxPath(s.Box).PathData()}
}

func NewShape(shapeType string, box *geo.Box) Shape {
	switch shapeType {
	case RECTANGLE_TYPE:
		return NewRectangle(box)
	case ELLIPSE_TYPE:
		return NewEllipse(box)
	case TRIANGLE_TYPE:
		return NewTriangle(box, 0)
	case RIGHT_TRIANGLE_TYPE:
		return NewRightTriangle(box, false, false)
	case RHOMBUS_TYPE:
		return NewRhombus(box)
	case TRAPEZOID_TYPE:
		return NewTrapezoid(box, box.Width/4, box.Width/4)
	case PARALLELOGRAM_TYPE:
		return NewParallelogram(box, box.Width/4)
	case POLYGON_TYPE:
		return NewPolygon(box.Center(), math.Min(box.Width, box.Height)/2, defaultPolygonSides, false, false)
	case STAR_TYPE:
		radius := math.Min(box.Width, box.Height) / 2
		return NewStar(box.Center(), radius, radius/2, defaultStarPoints, false, false)
	case ARC_TYPE:
		return NewArc(box, 0, 90, ARC_STYLE_PIESLICE)
	case LINE_TYPE:
		return NewLine(boxDiagonal(box))
	case PENCIL_TYPE:
		return NewPencil(boxDiagonal(box))
	case POLYLINE_TYPE:
		return NewPolyline(boxDiagonal(box), false, false)
	case BEZIER_TYPE:
		return NewBezier(boxDiagonal(box), false)
	case TEXT_TYPE:
		return NewText(box)
	case IMAGE_TYPE:
		return NewImage(box)
	case BITMAP_TYPE:
		return NewBitmap(box.Center())

	default:
		shape := shapeRectangle{
			baseShape: &baseShape{
				Type: shapeType,
				Box:  box,
			},
		}
		shape.FullShape = go2.Pointer(Shape(shape))
		return shape
	}
}

func boxDiagonal(box *geo.Box) geo.Points {
	return geo.Points{
		box.TopLeft.Copy(),
		geo.NewPoint(box.TopLeft.X+box.Width, box.TopLeft.Y+box.Height),
	}
}

func boxPath(box *geo.Box) *svg.SvgPathContext {
	pc := svg.NewSVGPathContext(box.TopLeft, 1, 1)
	pc.StartAt(pc.Absolute(0, 0))
	pc.L(false, box.Width, 0)
	pc.L(false, box.Width, box.Height)
	pc.L(false, 0, box.Height)
	pc.Z()
	return pc
}

func verticesPath(vertices geo.Points, closed bool) *svg.SvgPathContext {
	pc := svg.NewSVGPathContext(geo.NewPoint(0, 0), 1, 1)
	pc.StartAt(pc.Absolute(vertices[0].X, vertices[0].Y))
	for _, v := range vertices[1:] {
		pc.L(false, v.X, v.Y)
	}
	if closed {
		pc.Z()
	}
	return pc
}

// regularVertices steps around center from -90 degrees (pointing up) in even
// increments. radii is indexed i%len(radii), so a star alternates its outer
// and inner radius.
func regularVertices(center *geo.Point, radii []float64, count int) geo.Points {
	vertices := make(geo.Points, 0, count)
	step := 360.0 / float64(count)
	for i := 0; i < count; i++ {
		rad := geo.Radians(-90 + step*float64(i))
		r := radii[i%len(radii)]
		vertices = append(vertices, geo.NewPoint(center.X+r*math.Cos(rad), center.Y+r*math.Sin(rad)))
	}
	return vertices
}

func flipVertices(vertices geo.Points, box *geo.Box, flipH, flipV bool) geo.Points {
	if !flipH && !flipV {
		return vertices
	}
	center := box.Center()
	for _, v := range vertices {
		if flipH {
			v.X = 2*center.X - v.X
		}
		if flipV {
			v.Y = 2*center.Y - v.Y
		}
	}
	return vertices
}

func centerBox(center *geo.Point, radius float64) *geo.Box {
	return geo.NewBox(geo.NewPoint(center.X-radius, center.Y-radius), 2*radius, 2*radius)
}

func LimitAR(width, height, aspectRatio float64) (float64, float64) {
	if width > aspectRatio*height {
		height = math.Round(width / aspectRatio)
	} else if height > aspectRatio*width {
		width = math.Round(height / aspectRatio)
	}
	return width, height
}
