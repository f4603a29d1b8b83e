package vdedit

import (
	"math"

	"github.com/vecdraw/vd/lib/anchor"
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/go2"
	"github.com/vecdraw/vd/vdhandles"
	"github.com/vecdraw/vd/vdtarget"
)

func beginResize(target *vdtarget.Shape, k vdhandles.Kind) Action {
	if target.Type == vdtarget.ShapeBitmap || target.IsPointList() && len(target.Points) == 0 {
		return nil
	}
	geom := target.Geometry()
	box := geom.BoundingBox()
	if box == nil {
		return nil
	}
	return &ResizeAction{
		Original: target.Clone(),
		Handle:   k,
		Anchor:   vdhandles.Anchor(k, box),
		Grabbed:  vdhandles.HandlePoint(k, box),
		Center:   geom.Center(),
		Uniform:  geom.AspectRatio1(),
	}
}

// updateResize rebuilds the shape from its pressed state. The pointer is
// mapped into the unrotated frame, scale factors are taken against the fixed
// anchor, the shape is re-parameterized natively, and finally the whole thing
// is shifted so the anchor stays put in screen space.
func (m *Machine) updateResize(a *ResizeAction, ev PointerEvent) Action {
	next := &ResizeAction{
		Original: a.Original,
		Handle:   a.Handle,
		Anchor:   a.Anchor,
		Grabbed:  a.Grabbed,
		Center:   a.Center,
		Uniform:  a.Uniform,
		Working:  a.Working,
	}
	rot := a.Original.Rotation
	local := toLocal(m.snap(ev.Point), a.Center, rot)

	spanX := a.Grabbed.X - a.Anchor.X
	spanY := a.Grabbed.Y - a.Anchor.Y
	sx, sy := 1.0, 1.0
	if a.Handle.ScalesX() && spanX != 0 {
		sx = (local.X - a.Anchor.X) / spanX
	}
	if a.Handle.ScalesY() && spanY != 0 {
		sy = (local.Y - a.Anchor.Y) / spanY
	}

	if a.Uniform || a.Original.AspectLocked || m.opts.AspectLock || ev.Shift {
		sx, sy = lockScales(a.Handle, sx, sy)
	}

	working := a.Original.Clone()
	rescale(working, sx, sy, a.Anchor)
	if rot != 0 {
		// rotation now happens about the new center, so shift everything to
		// pin the anchor back to its screen position
		newCenter := working.Geometry().Center()
		oldScreen := geo.RotatePoint(a.Anchor, a.Center, rot)
		newScreen := geo.RotatePoint(a.Anchor, newCenter, rot)
		translate(working, oldScreen.X-newScreen.X, oldScreen.Y-newScreen.Y)
	}
	next.Working = working
	return next
}

// lockScales forces a common magnitude on both axes. Corner handles follow
// the dominant axis; edge handles derive the orthogonal axis from the driven
// one.
func lockScales(k vdhandles.Kind, sx, sy float64) (float64, float64) {
	switch {
	case k.IsCorner():
		s := math.Max(math.Abs(sx), math.Abs(sy))
		return math.Copysign(s, sx), math.Copysign(s, sy)
	case k.ScalesX():
		return sx, math.Abs(sx)
	default:
		return math.Abs(sy), sy
	}
}

// rescale applies the anchored affine map to the shape's own parameters.
// Negative factors mean the pointer crossed the anchor; box shapes re-anchor
// on the mirrored side and flippable kinds flip.
func rescale(s *vdtarget.Shape, sx, sy float64, pin *geo.Point) {
	scaleX := func(x float64) float64 { return pin.X + (x-pin.X)*sx }
	scaleY := func(y float64) float64 { return pin.Y + (y-pin.Y)*sy }

	switch {
	case s.IsPointList():
		for _, p := range s.Points {
			p.X = scaleX(p.X)
			p.Y = scaleY(p.Y)
		}
		return
	case s.IsCenterAnchored():
		c := s.CenterPoint()
		s.Center = geo.NewPoint(scaleX(c.X), scaleY(c.Y))
		r := math.Abs(sx)
		// a zero factor collapses the shape; keep a unit of extent
		s.Radius = math.Max(1, s.Radius*r)
		s.InnerRadius *= r
		return
	}

	box := s.Box()
	x0, x1 := scaleX(box.TopLeft.X), scaleX(box.TopLeft.X+box.Width)
	y0, y1 := scaleY(box.TopLeft.Y), scaleY(box.TopLeft.Y+box.Height)
	scaled := geo.NewBox(geo.NewPoint(math.Min(x0, x1), math.Min(y0, y1)),
		math.Max(1, math.Abs(x1-x0)), math.Max(1, math.Abs(y1-y0)))
	if s.Type == vdtarget.ShapeText {
		// Pos is the block's anchor point, recovered from the scaled box.
		s.Pos = *anchor.FromString(s.Anchor).PointInBox(scaled)
	} else {
		s.Pos = *scaled.TopLeft
	}
	s.Width = scaled.Width
	s.Height = scaled.Height

	switch s.Type {
	case vdtarget.ShapeTriangle:
		s.ApexOffset *= sx
	case vdtarget.ShapeRightTriangle:
		if sx < 0 {
			s.FlipH = !s.FlipH
		}
		if sy < 0 {
			s.FlipV = !s.FlipV
		}
	case vdtarget.ShapeTrapezoid:
		left := s.LeftOffset * math.Abs(sx)
		right := s.RightOffset * math.Abs(sx)
		if sx < 0 {
			left, right = right, left
		}
		s.LeftOffset = left
		s.RightOffset = right
	case vdtarget.ShapeParallelogram:
		s.Skew *= sx
	case vdtarget.ShapeText:
		// text scales by font, not by stretching glyphs
		s.FontSize = go2.Max(1, int(math.Round(float64(s.FontSize)*math.Abs(sx))))
	}
}
