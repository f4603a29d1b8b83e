package vdedit

import (
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/shape"
	"github.com/vecdraw/vd/vdtarget"
)

func beginPointEdit(target *vdtarget.Shape, index int) Action {
	if !target.IsPointList() || index < 0 || index >= len(target.Points) {
		return nil
	}
	return &PointEditAction{
		Original: target.Clone(),
		Index:    index,
		Center:   target.Geometry().Center(),
	}
}

func (m *Machine) updatePointEdit(a *PointEditAction, ev PointerEvent) Action {
	local := toLocal(m.snap(ev.Point), a.Center, a.Original.Rotation)
	working := a.Original.Clone()
	working.Points[a.Index] = local
	return &PointEditAction{
		Original: a.Original,
		Index:    a.Index,
		Center:   a.Center,
		Working:  working,
	}
}

// commitPointEdit bakes the rotation into the stored points and resets it.
// After a point moves, the old rotation center no longer matches the new
// bounding box, so keeping rotation as a parameter would shift the other
// points on the next redraw.
func commitPointEdit(a *PointEditAction) *vdtarget.Shape {
	if a.Working == nil {
		return nil
	}
	s := a.Working
	if s.Rotation != 0 {
		s.Points = geo.RotatePoints(s.Points, a.Center, s.Rotation)
		s.Rotation = 0
	}
	return s
}

// ToPolyline converts a shape into an editable polyline with any rotation
// baked into the points. Point-list shapes keep their own type and just get
// the rotation baked. Text, images and bitmaps have no outline to edit and
// come back unchanged.
func ToPolyline(s *vdtarget.Shape) *vdtarget.Shape {
	out := s.Clone()
	switch s.Type {
	case vdtarget.ShapeText, vdtarget.ShapeImage, vdtarget.ShapeBitmap:
		return out
	}
	geom := s.Geometry()
	if s.IsPointList() {
		if s.Rotation != 0 {
			out.Points = geo.RotatePoints(s.Points, geom.Center(), s.Rotation)
			out.Rotation = 0
		}
		return out
	}
	vertices := geom.Vertices()
	if len(vertices) == 0 {
		return out
	}
	if s.Rotation != 0 {
		vertices = geo.RotatePoints(vertices, geom.Center(), s.Rotation)
	}
	out.SetType(vdtarget.ShapePolyline)
	out.Points = vertices
	out.Closed = !(s.Type == vdtarget.ShapeArc && s.ArcStyle == shape.ARC_STYLE_ARC)
	out.Smooth = false
	out.Rotation = 0
	out.Width, out.Height = 0, 0
	out.Center = nil
	out.Radius, out.InnerRadius = 0, 0
	out.Sides = 0
	out.ApexOffset, out.LeftOffset, out.RightOffset, out.Skew = 0, 0, 0, 0
	out.FlipH, out.FlipV = false, false
	out.Start, out.Extent = 0, 0
	out.ArcStyle = ""
	return out
}
