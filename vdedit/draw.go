package vdedit

import (
	"math"

	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/shape"
	"github.com/vecdraw/vd/vdtarget"
)

const defaultBitmap = "gray50"

func (m *Machine) beginDraw(ev PointerEvent, shapeType string) Action {
	anchor := m.snap(ev.Point)
	s := vdtarget.BaseShape()
	s.SetType(shapeType)
	switch s.Type {
	case vdtarget.ShapePolyline, vdtarget.ShapeBezier:
		s.Smooth = s.Type == vdtarget.ShapeBezier
		s.Points = geo.Points{anchor.Copy(), anchor.Copy()}
		return &PolylineDrawAction{Shape: s}
	case vdtarget.ShapeLine:
		s.Points = geo.Points{anchor.Copy(), anchor.Copy()}
	case vdtarget.ShapePencil:
		s.Points = geo.Points{anchor.Copy()}
	case vdtarget.ShapeBitmap:
		s.Center = anchor.Copy()
		s.Bitmap = defaultBitmap
	case vdtarget.ShapeText:
		s.Pos = geo.Point{X: anchor.X, Y: anchor.Y}
	case vdtarget.ShapePolygon:
		s.Center = anchor.Copy()
		s.Sides = 6
	case vdtarget.ShapeStar:
		s.Center = anchor.Copy()
		s.Sides = 5
	case vdtarget.ShapeArc:
		s.Pos = geo.Point{X: anchor.X, Y: anchor.Y}
		s.Start = 0
		s.Extent = 90
		s.ArcStyle = shape.ARC_STYLE_PIESLICE
	default:
		s.Pos = geo.Point{X: anchor.X, Y: anchor.Y}
	}
	return &DrawAction{Shape: s, Anchor: anchor}
}

func (m *Machine) updateDraw(a *DrawAction, ev PointerEvent) Action {
	p := m.snap(ev.Point)
	next := &DrawAction{Shape: a.Shape.Clone(), Anchor: a.Anchor, Moved: a.Moved}
	s := next.Shape
	switch {
	case s.Type == vdtarget.ShapePencil:
		last := s.Points[len(s.Points)-1]
		if !last.Equals(p) {
			next.Moved += last.DistanceTo(p)
			s.Points = append(s.Points, p.Copy())
		}
		return next
	case s.Type == vdtarget.ShapeLine:
		if ev.Shift {
			p = axisSnap(a.Anchor, p)
		}
		s.Points[len(s.Points)-1] = p.Copy()
	case s.Type == vdtarget.ShapeBitmap:
		s.Center = p.Copy()
	case s.Type == vdtarget.ShapeText:
		s.Pos = geo.Point{X: p.X, Y: p.Y}
	case s.IsCenterAnchored():
		// center stays at the anchor, dragging sets the radius
		r := a.Anchor.DistanceTo(p)
		s.Radius = r
		if s.Type == vdtarget.ShapeStar {
			s.InnerRadius = r / 2
		}
	default:
		box := m.dragBox(a.Anchor, p, ev)
		s.Pos = geo.Point{X: box.TopLeft.X, Y: box.TopLeft.Y}
		s.Width = box.Width
		s.Height = box.Height
		switch s.Type {
		case vdtarget.ShapeTrapezoid:
			s.LeftOffset = box.Width / 4
			s.RightOffset = box.Width / 4
		case vdtarget.ShapeParallelogram:
			s.Skew = box.Width / 4
		}
	}
	next.Moved = math.Max(next.Moved, a.Anchor.DistanceTo(p))
	return next
}

// dragBox sizes a box from the press anchor to the pointer. Center mode makes
// the anchor the box's center; shift or a global aspect lock makes it square.
func (m *Machine) dragBox(anchor, p *geo.Point, ev PointerEvent) *geo.Box {
	dx := p.X - anchor.X
	dy := p.Y - anchor.Y
	if ev.Shift || m.opts.AspectLock {
		w, h := shape.LimitAR(math.Abs(dx), math.Abs(dy), 1)
		dx = math.Copysign(w, dx)
		dy = math.Copysign(h, dy)
	}
	if m.opts.CenterMode {
		return geo.NewBox(
			geo.NewPoint(anchor.X-math.Abs(dx), anchor.Y-math.Abs(dy)),
			2*math.Abs(dx), 2*math.Abs(dy),
		)
	}
	return geo.NewBoxFromPoints(anchor, geo.NewPoint(anchor.X+dx, anchor.Y+dy))
}

// axisSnap projects p so the segment from anchor runs horizontally,
// vertically, or at 45 degrees, whichever is nearest.
func axisSnap(anchor, p *geo.Point) *geo.Point {
	dx := p.X - anchor.X
	dy := p.Y - anchor.Y
	adx, ady := math.Abs(dx), math.Abs(dy)
	switch {
	case adx >= 2*ady:
		return geo.NewPoint(p.X, anchor.Y)
	case ady >= 2*adx:
		return geo.NewPoint(anchor.X, p.Y)
	default:
		d := (adx + ady) / 2
		return geo.NewPoint(anchor.X+math.Copysign(d, dx), anchor.Y+math.Copysign(d, dy))
	}
}

func (m *Machine) updatePolylineDraw(a *PolylineDrawAction, ev PointerEvent) Action {
	p := m.snap(ev.Point)
	next := &PolylineDrawAction{Shape: a.Shape.Clone()}
	s := next.Shape
	if ev.Shift && len(s.Points) >= 2 {
		p = axisSnap(s.Points[len(s.Points)-2], p)
	}
	s.Points[len(s.Points)-1] = p.Copy()
	return next
}

// commitDraw finishes a draw gesture. Click-to-place kinds always land;
// everything else must exceed the minimum drag and have non-degenerate
// geometry, otherwise the shape is discarded.
func commitDraw(a *DrawAction, minDrag float64) *vdtarget.Shape {
	s := a.Shape
	if s.Type == vdtarget.ShapeBitmap || s.Type == vdtarget.ShapeText {
		return s
	}
	if a.Moved <= minDrag {
		return nil
	}
	switch {
	case s.IsPointList():
		if len(s.Points) < 2 {
			return nil
		}
	case s.IsCenterAnchored():
		if s.Radius <= 0 {
			return nil
		}
	default:
		if s.Width == 0 && s.Height == 0 {
			return nil
		}
	}
	return s
}

// commitPolylineDraw finishes a multi-click draw. The trailing live point is
// dropped when the final click left it sitting on the previous one.
func commitPolylineDraw(a *PolylineDrawAction) *vdtarget.Shape {
	s := a.Shape
	if n := len(s.Points); n >= 2 && s.Points[n-1].Equals(s.Points[n-2]) {
		s.Points = s.Points[:n-1]
	}
	if len(s.Points) < 2 || (s.Closed && len(s.Points) < 3) {
		return nil
	}
	return s
}
