// Package vdhandles lays out the interactive handles of a selected shape and
// hit-tests pointer input against them. Handles are placed in the shape's
// unrotated frame from its bounding box, then rotated into screen space.
package vdhandles

import (
	"math"

	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/vdtarget"
)

const (
	// Size is the edge length of a square handle on screen.
	Size = 8.
	// RotateOffset is how far the rotate handle floats above the top edge.
	RotateOffset = 20.
	// HitSlop pads hit-testing beyond the drawn handle.
	HitSlop = 2.
)

type Kind int8

const (
	TopLeft Kind = iota
	TopRight
	BottomRight
	BottomLeft
	Top
	Right
	Bottom
	Left
	Rotate
	Endpoint
	Vertex
	Apex
	TrapezoidLeft
	TrapezoidRight
	Skew
	InnerRadius
	ArcStart
	ArcEnd
)

func (k Kind) String() string {
	switch k {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Rotate:
		return "rotate"
	case Endpoint:
		return "endpoint"
	case Vertex:
		return "vertex"
	case Apex:
		return "apex"
	case TrapezoidLeft:
		return "trapezoid-left"
	case TrapezoidRight:
		return "trapezoid-right"
	case Skew:
		return "skew"
	case InnerRadius:
		return "inner-radius"
	case ArcStart:
		return "arc-start"
	case ArcEnd:
		return "arc-end"
	default:
		return "unknown"
	}
}

func (k Kind) IsCorner() bool {
	switch k {
	case TopLeft, TopRight, BottomRight, BottomLeft:
		return true
	}
	return false
}

func (k Kind) IsEdge() bool {
	switch k {
	case Top, Right, Bottom, Left:
		return true
	}
	return false
}

func (k Kind) IsResize() bool {
	return k.IsCorner() || k.IsEdge()
}

func (k Kind) ScalesX() bool {
	return k.IsCorner() || k == Left || k == Right
}

func (k Kind) ScalesY() bool {
	return k.IsCorner() || k == Top || k == Bottom
}

type Handle struct {
	Kind Kind
	// Index identifies the point of an Endpoint or Vertex handle.
	Index int
	// Point is the handle's position in screen space.
	Point *geo.Point
}

// resizeAnchors pairs each resize handle with the corner or edge midpoint that
// stays fixed while it drags, as fractions of the box.
var resizeAnchors = map[Kind][2]float64{
	TopLeft:     {1, 1},
	TopRight:    {0, 1},
	BottomRight: {0, 0},
	BottomLeft:  {1, 0},
	Top:         {0.5, 1},
	Right:       {0, 0.5},
	Bottom:      {0.5, 0},
	Left:        {1, 0.5},
}

// Anchor returns the fixed opposite point of a resize handle in the same
// unrotated frame as box. Nil for non-resize handles.
func Anchor(k Kind, box *geo.Box) *geo.Point {
	fr, ok := resizeAnchors[k]
	if !ok {
		return nil
	}
	return geo.NewPoint(box.TopLeft.X+fr[0]*box.Width, box.TopLeft.Y+fr[1]*box.Height)
}

// HandlePoint returns handle k's own position on box, opposite its Anchor.
func HandlePoint(k Kind, box *geo.Box) *geo.Point {
	fr, ok := resizeAnchors[k]
	if !ok {
		return nil
	}
	return geo.NewPoint(box.TopLeft.X+(1-fr[0])*box.Width, box.TopLeft.Y+(1-fr[1])*box.Height)
}

// ForShape returns the handle set of a selected shape in screen space.
// Point-list shapes get two endpoint handles instead of the resize box.
// Bitmaps have a fixed size and expose no handles. Hidden and disabled shapes
// expose none either.
func ForShape(s *vdtarget.Shape) []Handle {
	if s == nil || !s.Interactable() {
		return nil
	}
	if s.Type == vdtarget.ShapeBitmap {
		return nil
	}
	geom := s.Geometry()
	center := geom.Center()
	if s.IsPointList() {
		if len(s.Points) < 2 {
			return nil
		}
		return []Handle{
			{Kind: Endpoint, Index: 0, Point: rotated(s.Points[0], center, s.Rotation)},
			{Kind: Endpoint, Index: len(s.Points) - 1, Point: rotated(s.Points[len(s.Points)-1], center, s.Rotation)},
		}
	}

	box := geom.BoundingBox()
	if box == nil || (box.Width == 0 && box.Height == 0) {
		return nil
	}

	tl := box.TopLeft
	handles := []Handle{
		{Kind: TopLeft, Point: rotated(tl, center, s.Rotation)},
		{Kind: TopRight, Point: rotated(geo.NewPoint(tl.X+box.Width, tl.Y), center, s.Rotation)},
		{Kind: BottomRight, Point: rotated(geo.NewPoint(tl.X+box.Width, tl.Y+box.Height), center, s.Rotation)},
		{Kind: BottomLeft, Point: rotated(geo.NewPoint(tl.X, tl.Y+box.Height), center, s.Rotation)},
		{Kind: Top, Point: rotated(geo.NewPoint(tl.X+box.Width/2, tl.Y), center, s.Rotation)},
		{Kind: Right, Point: rotated(geo.NewPoint(tl.X+box.Width, tl.Y+box.Height/2), center, s.Rotation)},
		{Kind: Bottom, Point: rotated(geo.NewPoint(tl.X+box.Width/2, tl.Y+box.Height), center, s.Rotation)},
		{Kind: Left, Point: rotated(geo.NewPoint(tl.X, tl.Y+box.Height/2), center, s.Rotation)},
		{Kind: Rotate, Point: rotated(geo.NewPoint(tl.X+box.Width/2, tl.Y-RotateOffset), center, s.Rotation)},
	}
	return append(handles, paramHandles(s, center)...)
}

// paramHandles are the shape-specific edit handles riding on top of the
// resize box.
func paramHandles(s *vdtarget.Shape, center *geo.Point) []Handle {
	switch s.Type {
	case vdtarget.ShapeTriangle:
		apex := s.Geometry().Vertices()[0]
		return []Handle{{Kind: Apex, Point: rotated(apex, center, s.Rotation)}}
	case vdtarget.ShapeTrapezoid:
		vertices := s.Geometry().Vertices()
		return []Handle{
			{Kind: TrapezoidLeft, Point: rotated(vertices[0], center, s.Rotation)},
			{Kind: TrapezoidRight, Point: rotated(vertices[1], center, s.Rotation)},
		}
	case vdtarget.ShapeParallelogram:
		top := s.Geometry().Vertices()[0]
		return []Handle{{Kind: Skew, Point: rotated(top, center, s.Rotation)}}
	case vdtarget.ShapeStar:
		vertices := s.Geometry().Vertices()
		if len(vertices) < 2 {
			return nil
		}
		return []Handle{{Kind: InnerRadius, Point: rotated(vertices[1], center, s.Rotation)}}
	case vdtarget.ShapeArc:
		vertices := s.Geometry().Vertices()
		if len(vertices) < 2 {
			return nil
		}
		end := vertices[len(vertices)-1]
		if s.ArcStyle == "" || s.ArcStyle == "pieslice" {
			// the trailing center point is not an angle handle
			end = vertices[len(vertices)-2]
		}
		return []Handle{
			{Kind: ArcStart, Point: rotated(vertices[0], center, s.Rotation)},
			{Kind: ArcEnd, Point: rotated(end, center, s.Rotation)},
		}
	}
	return nil
}

// VertexHandles returns one handle per control point for edit-points mode.
func VertexHandles(s *vdtarget.Shape) []Handle {
	if s == nil || !s.Interactable() || !s.IsPointList() {
		return nil
	}
	center := s.Geometry().Center()
	handles := make([]Handle, 0, len(s.Points))
	for i, p := range s.Points {
		handles = append(handles, Handle{Kind: Vertex, Index: i, Point: rotated(p, center, s.Rotation)})
	}
	return handles
}

func rotated(p, center *geo.Point, rotation float64) *geo.Point {
	if rotation == 0 || center == nil {
		return p.Copy()
	}
	return geo.RotatePoint(p, center, rotation)
}

// Hit returns the handle under the pointer, preferring the closest when
// several overlap. Nil when none is within reach.
func Hit(handles []Handle, p *geo.Point) *Handle {
	reach := Size/2 + HitSlop
	var closest *Handle
	closestD := math.Inf(1)
	for i := range handles {
		h := &handles[i]
		dx := math.Abs(p.X - h.Point.X)
		dy := math.Abs(p.Y - h.Point.Y)
		if dx > reach || dy > reach {
			continue
		}
		d := geo.EuclideanDistance(p.X, p.Y, h.Point.X, h.Point.Y)
		if d < closestD {
			closestD = d
			closest = h
		}
	}
	return closest
}

// handleAngles maps each directional handle to its outward screen angle at
// rotation 0, with east at 0 and south at 90.
var handleAngles = map[Kind]float64{
	Right:       0,
	BottomRight: 45,
	Bottom:      90,
	BottomLeft:  135,
	Left:        180,
	TopLeft:     225,
	Top:         270,
	TopRight:    315,
}

var bucketCursors = [8]string{
	"ew-resize",
	"nwse-resize",
	"ns-resize",
	"nesw-resize",
	"ew-resize",
	"nwse-resize",
	"ns-resize",
	"nesw-resize",
}

// Cursor names the CSS cursor for a handle on a shape rotated by the given
// degrees. Resize cursors bucket to the nearest 45 so the arrow tracks the
// handle's on-screen direction.
func Cursor(k Kind, rotation float64) string {
	switch k {
	case Rotate:
		return "grabbing"
	case Endpoint, Vertex:
		return "grab"
	case Apex, TrapezoidLeft, TrapezoidRight, Skew, InnerRadius, ArcStart, ArcEnd:
		return "crosshair"
	}
	angle, ok := handleAngles[k]
	if !ok {
		return "default"
	}
	bucket := int(math.Round(geo.NormalizeDegrees(angle+rotation)/45)) % 8
	return bucketCursors[bucket]
}
