package vdedit

import (
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/vdhandles"
	"github.com/vecdraw/vd/vdtarget"
)

type Kind int8

const (
	KindDraw Kind = iota
	KindPolylineDraw
	KindDrag
	KindResize
	KindRotate
	KindPointEdit
	KindDuplicate
	KindPan
	KindTriangleApex
	KindTrapezoidOffset
	KindParallelogramSkew
	KindStarInnerRadius
	KindArcAngle
)

func (k Kind) String() string {
	switch k {
	case KindDraw:
		return "draw"
	case KindPolylineDraw:
		return "polyline-draw"
	case KindDrag:
		return "drag"
	case KindResize:
		return "resize"
	case KindRotate:
		return "rotate"
	case KindPointEdit:
		return "point-edit"
	case KindDuplicate:
		return "duplicate"
	case KindPan:
		return "pan"
	case KindTriangleApex:
		return "triangle-apex"
	case KindTrapezoidOffset:
		return "trapezoid-offset"
	case KindParallelogramSkew:
		return "parallelogram-skew"
	case KindStarInnerRadius:
		return "star-inner-radius"
	case KindArcAngle:
		return "arc-angle"
	default:
		return "unknown"
	}
}

// Action is one in-flight gesture. Each variant carries exactly the state
// captured at pointer press plus the current working preview, and is replaced
// as a whole on every pointer move.
type Action interface {
	Kind() Kind
	// Preview is the live shape the gesture is producing, nil when it has
	// none (panning) or before the first move (handle edits).
	Preview() *vdtarget.Shape
}

// DrawAction sizes a new shape from the press anchor, or accumulates pencil
// points as the pointer moves.
type DrawAction struct {
	Shape  *vdtarget.Shape
	Anchor *geo.Point
	// Moved is the farthest the pointer got from the anchor, or the path
	// length for pencils. Gestures under the minimum drag are clicks.
	Moved float64
}

func (a *DrawAction) Kind() Kind               { return KindDraw }
func (a *DrawAction) Preview() *vdtarget.Shape { return a.Shape }

// PolylineDrawAction accumulates clicked points. The last point is live and
// follows the pointer until the next click commits it.
type PolylineDrawAction struct {
	Shape *vdtarget.Shape
}

func (a *PolylineDrawAction) Kind() Kind               { return KindPolylineDraw }
func (a *PolylineDrawAction) Preview() *vdtarget.Shape { return a.Shape }

type DragAction struct {
	Original *vdtarget.Shape
	Anchor   *geo.Point
	Moved    float64
	Working  *vdtarget.Shape
}

func (a *DragAction) Kind() Kind               { return KindDrag }
func (a *DragAction) Preview() *vdtarget.Shape { return a.Working }

// DuplicateAction drags a fresh copy of the pressed shape. Original is the
// copy at its source position, already carrying a new identity.
type DuplicateAction struct {
	Original *vdtarget.Shape
	Anchor   *geo.Point
	Moved    float64
	Working  *vdtarget.Shape
}

func (a *DuplicateAction) Kind() Kind               { return KindDuplicate }
func (a *DuplicateAction) Preview() *vdtarget.Shape { return a.Working }

// ResizeAction scales the pressed shape about the fixed anchor opposite the
// grabbed handle. Anchor, Grabbed and the math all live in the shape's
// unrotated frame; Center is the rotation center captured at press.
type ResizeAction struct {
	Original *vdtarget.Shape
	Handle   vdhandles.Kind
	Anchor   *geo.Point
	Grabbed  *geo.Point
	Center   *geo.Point
	// Uniform forces both axes to the same scale, for shapes parameterized
	// by a single radius.
	Uniform bool
	Working *vdtarget.Shape
}

func (a *ResizeAction) Kind() Kind               { return KindResize }
func (a *ResizeAction) Preview() *vdtarget.Shape { return a.Working }

// RotateAction turns the pressed shape about its center. Offset preserves the
// grab angle so the shape does not jump to the pointer on the first move.
type RotateAction struct {
	Original *vdtarget.Shape
	Center   *geo.Point
	Offset   float64
	Working  *vdtarget.Shape
}

func (a *RotateAction) Kind() Kind               { return KindRotate }
func (a *RotateAction) Preview() *vdtarget.Shape { return a.Working }

// PointEditAction moves one control point of a point-list shape. The pointer
// is mapped into the unrotated frame during the gesture; commit bakes the
// rotation into the stored points.
type PointEditAction struct {
	Original *vdtarget.Shape
	Index    int
	Center   *geo.Point
	Working  *vdtarget.Shape
}

func (a *PointEditAction) Kind() Kind               { return KindPointEdit }
func (a *PointEditAction) Preview() *vdtarget.Shape { return a.Working }

// PanAction reports viewport deltas; it produces no shape.
type PanAction struct {
	Anchor *geo.Point
	Delta  *geo.Point
}

func (a *PanAction) Kind() Kind               { return KindPan }
func (a *PanAction) Preview() *vdtarget.Shape { return nil }

type TriangleApexAction struct {
	Original *vdtarget.Shape
	Center   *geo.Point
	Working  *vdtarget.Shape
}

func (a *TriangleApexAction) Kind() Kind               { return KindTriangleApex }
func (a *TriangleApexAction) Preview() *vdtarget.Shape { return a.Working }

type TrapezoidOffsetAction struct {
	Original *vdtarget.Shape
	// Left reports which top corner was grabbed.
	Left    bool
	Center  *geo.Point
	Working *vdtarget.Shape
}

func (a *TrapezoidOffsetAction) Kind() Kind               { return KindTrapezoidOffset }
func (a *TrapezoidOffsetAction) Preview() *vdtarget.Shape { return a.Working }

type ParallelogramSkewAction struct {
	Original *vdtarget.Shape
	Center   *geo.Point
	Working  *vdtarget.Shape
}

func (a *ParallelogramSkewAction) Kind() Kind               { return KindParallelogramSkew }
func (a *ParallelogramSkewAction) Preview() *vdtarget.Shape { return a.Working }

type StarInnerRadiusAction struct {
	Original *vdtarget.Shape
	Center   *geo.Point
	Working  *vdtarget.Shape
}

func (a *StarInnerRadiusAction) Kind() Kind               { return KindStarInnerRadius }
func (a *StarInnerRadiusAction) Preview() *vdtarget.Shape { return a.Working }

// ArcAngleAction drags one end of an arc. Angular motion accumulates
// frame-to-frame so sweeping past the wraparound keeps its direction instead
// of snapping to the shorter way round.
type ArcAngleAction struct {
	Original *vdtarget.Shape
	// Start reports whether the start handle was grabbed; otherwise the
	// extent end moves.
	Start     bool
	Center    *geo.Point
	LastAngle float64
	Accum     float64
	Working   *vdtarget.Shape
}

func (a *ArcAngleAction) Kind() Kind               { return KindArcAngle }
func (a *ArcAngleAction) Preview() *vdtarget.Shape { return a.Working }
