package vdedit

import (
	"math"

	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/vdtarget"
)

// rotateSnapStep is the angle increment shift-rotating snaps to.
const rotateSnapStep = 15.

func beginRotate(ev PointerEvent, target *vdtarget.Shape) Action {
	center := target.Geometry().Center()
	if center == nil {
		return nil
	}
	return &RotateAction{
		Original: target.Clone(),
		Center:   center,
		Offset:   target.Rotation - geo.AngleDegrees(center, ev.Point),
	}
}

// updateRotate quantizes to whole degrees. The pointer is deliberately not
// grid-snapped here; rotation quantizes in angle space instead.
func updateRotate(a *RotateAction, ev PointerEvent) Action {
	deg := geo.AngleDegrees(a.Center, ev.Point) + a.Offset
	if ev.Shift {
		deg = math.Round(deg/rotateSnapStep) * rotateSnapStep
	} else {
		deg = math.Round(deg)
	}
	working := a.Original.Clone()
	working.Rotation = geo.NormalizeDegrees(deg)
	return &RotateAction{
		Original: a.Original,
		Center:   a.Center,
		Offset:   a.Offset,
		Working:  working,
	}
}
