package vdedit

import (
	"math"

	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/go2"
	"github.com/vecdraw/vd/vdtarget"
)

// The handle edits below all follow the same shape: map the pointer into the
// unrotated frame, recompute one parameter in closed form from the pressed
// state, and clamp it into its valid range.

func (m *Machine) updateTriangleApex(a *TriangleApexAction, ev PointerEvent) Action {
	local := toLocal(m.snap(ev.Point), a.Center, a.Original.Rotation)
	working := a.Original.Clone()
	// the apex may leave the box on purpose
	working.ApexOffset = local.X - (working.Pos.X + working.Width/2)
	return &TriangleApexAction{Original: a.Original, Center: a.Center, Working: working}
}

func (m *Machine) updateTrapezoidOffset(a *TrapezoidOffsetAction, ev PointerEvent) Action {
	local := toLocal(m.snap(ev.Point), a.Center, a.Original.Rotation)
	working := a.Original.Clone()
	w := working.Width
	if a.Left {
		left := go2.Clamp(local.X-working.Pos.X, 0, w)
		if ev.Shift {
			// symmetric edit keeps both corners mirrored
			left = math.Min(left, w/2)
			working.RightOffset = left
		}
		working.LeftOffset = left
	} else {
		right := go2.Clamp(working.Pos.X+w-local.X, 0, w)
		if ev.Shift {
			right = math.Min(right, w/2)
			working.LeftOffset = right
		}
		working.RightOffset = right
	}
	working.RightOffset = go2.Clamp(working.RightOffset, 0, w-working.LeftOffset)
	return &TrapezoidOffsetAction{Original: a.Original, Left: a.Left, Center: a.Center, Working: working}
}

func (m *Machine) updateParallelogramSkew(a *ParallelogramSkewAction, ev PointerEvent) Action {
	local := toLocal(m.snap(ev.Point), a.Center, a.Original.Rotation)
	working := a.Original.Clone()
	// leave at least one unit of top edge so the shape cannot collapse to a
	// line
	limit := math.Max(0, working.Width-1)
	working.Skew = go2.Clamp(local.X-working.Pos.X, -limit, limit)
	return &ParallelogramSkewAction{Original: a.Original, Center: a.Center, Working: working}
}

func (m *Machine) updateStarInnerRadius(a *StarInnerRadiusAction, ev PointerEvent) Action {
	local := toLocal(m.snap(ev.Point), a.Center, a.Original.Rotation)
	working := a.Original.Clone()
	d := working.CenterPoint().DistanceTo(local)
	working.InnerRadius = go2.Clamp(d, 0, working.Radius)
	return &StarInnerRadiusAction{Original: a.Original, Center: a.Center, Working: working}
}

func beginArcAngle(target *vdtarget.Shape, start bool) Action {
	if target.Type != vdtarget.ShapeArc || target.Width == 0 || target.Height == 0 {
		return nil
	}
	grabbed := target.Start
	if !start {
		grabbed = target.Start + target.Extent
	}
	return &ArcAngleAction{
		Original:  target.Clone(),
		Start:     start,
		Center:    target.Geometry().Center(),
		LastAngle: geo.NormalizeDegrees(grabbed),
	}
}

// updateArcAngle accumulates the per-frame angular delta so dragging through
// the wraparound keeps going the way the pointer went. The pointer is not
// grid-snapped; angles quantize to whole degrees instead.
func updateArcAngle(a *ArcAngleAction, ev PointerEvent) Action {
	local := toLocal(ev.Point, a.Center, a.Original.Rotation)
	ang, ok := arcPointerAngle(a.Original, local)
	if !ok {
		return a
	}
	accum := a.Accum + geo.DeltaDegrees(a.LastAngle, ang)
	working := a.Original.Clone()
	if a.Start {
		working.Start = geo.NormalizeDegrees(math.Round(a.Original.Start + accum))
		if !ev.Ctrl {
			// keep the far end fixed; ctrl locks the extent and swings the
			// whole arc instead
			working.Extent = go2.Clamp(math.Round(a.Original.Extent-accum), -360, 360)
		}
	} else {
		working.Extent = go2.Clamp(math.Round(a.Original.Extent+accum), -360, 360)
	}
	return &ArcAngleAction{
		Original:  a.Original,
		Start:     a.Start,
		Center:    a.Center,
		LastAngle: ang,
		Accum:     accum,
		Working:   working,
	}
}

// arcPointerAngle converts a pointer in the arc's unrotated frame to its
// parametric angle in degrees, counter-clockwise from the positive X axis.
// The coordinates are normalized by the radii first so ellipse arcs track the
// pointer rather than the true angle.
func arcPointerAngle(s *vdtarget.Shape, local *geo.Point) (float64, bool) {
	rx, ry := s.Width/2, s.Height/2
	if rx == 0 || ry == 0 {
		return 0, false
	}
	cx, cy := s.Pos.X+rx, s.Pos.Y+ry
	dx := (local.X - cx) / rx
	dy := (local.Y - cy) / ry
	if dx == 0 && dy == 0 {
		return 0, false
	}
	return geo.NormalizeDegrees(geo.Degrees(math.Atan2(-dy, dx))), true
}
