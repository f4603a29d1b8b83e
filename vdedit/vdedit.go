// Package vdedit is the pointer interaction core of the editor. A Machine
// holds at most one Action between pointer press and release, replaces it
// wholesale on every move, and hands back a committed shape when the gesture
// ends. Committed state is never mutated in place: every preview is a deep
// clone of the shape captured at press time, so abandoning a gesture costs
// nothing.
package vdedit

import (
	"math"

	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/vdhandles"
	"github.com/vecdraw/vd/vdtarget"
)

const (
	// DefaultMinDrag is the pointer travel below which a press-release pair
	// counts as a click.
	DefaultMinDrag = 3.
	// CloseSnapDistance closes a polyline when a click lands this near its
	// first point.
	CloseSnapDistance = 6.
)

// PointerEvent is one pointer sample with its button and modifier state.
type PointerEvent struct {
	Point *geo.Point
	// Right is the secondary button, which duplicates instead of dragging.
	Right bool
	Shift bool
	Ctrl  bool
}

// Tool selects what a pointer press does. Draw tools are named by the shape
// type they create.
type Tool string

const (
	ToolSelect     Tool = "select"
	ToolEditPoints Tool = "edit-points"
	ToolPan        Tool = "pan"
)

func (t Tool) IsDraw() bool {
	switch t {
	case "", ToolSelect, ToolEditPoints, ToolPan:
		return false
	}
	return vdtarget.IsShape(string(t))
}

type Options struct {
	SnapOn   bool
	SnapStep float64
	// CenterMode sizes drawn box shapes out from the anchor instead of
	// corner to corner.
	CenterMode bool
	// AspectLock constrains draws and resizes to squares and circles even
	// when neither the shape nor the shift key asks for it.
	AspectLock bool
	// MinDrag overrides DefaultMinDrag when positive.
	MinDrag float64
}

type Machine struct {
	opts   Options
	action Action
}

func NewMachine(opts Options) *Machine {
	m := &Machine{}
	m.SetOptions(opts)
	return m
}

func (m *Machine) SetOptions(opts Options) {
	if opts.SnapStep <= 0 {
		opts.SnapStep = vdtarget.DEFAULT_GRID_STEP
	}
	if opts.MinDrag <= 0 {
		opts.MinDrag = DefaultMinDrag
	}
	m.opts = opts
}

func (m *Machine) Options() Options {
	return m.opts
}

// Action returns the in-flight gesture, nil when idle.
func (m *Machine) Action() Action {
	return m.action
}

func (m *Machine) Idle() bool {
	return m.action == nil
}

// Begin starts a gesture from a pointer press. The tool decides what the
// press means; under is the shape beneath the pointer, if any. Presses that
// start nothing leave the machine idle and return nil.
func (m *Machine) Begin(ev PointerEvent, tool Tool, under *vdtarget.Shape) Action {
	if !m.Idle() || ev.Point == nil {
		return nil
	}
	switch {
	case tool == ToolPan:
		m.action = &PanAction{Anchor: ev.Point.Copy(), Delta: geo.NewPoint(0, 0)}
	case tool.IsDraw():
		m.action = m.beginDraw(ev, string(tool))
	case tool == ToolSelect && under != nil && under.Interactable():
		anchor := m.snap(ev.Point)
		if ev.Right {
			clone := under.Clone()
			clone.ID = vdtarget.NewShapeID()
			clone.Name = ""
			m.action = &DuplicateAction{Original: clone, Anchor: anchor}
		} else {
			m.action = &DragAction{Original: under.Clone(), Anchor: anchor}
		}
	}
	return m.action
}

// BeginHandle starts a handle-driven gesture on target. Handle kinds that do
// not apply to the target's type are silently ignored.
func (m *Machine) BeginHandle(ev PointerEvent, target *vdtarget.Shape, h vdhandles.Handle) Action {
	if !m.Idle() || ev.Point == nil || target == nil || !target.Interactable() {
		return nil
	}
	switch {
	case h.Kind.IsResize():
		m.action = beginResize(target, h.Kind)
	case h.Kind == vdhandles.Rotate:
		m.action = beginRotate(ev, target)
	case h.Kind == vdhandles.Endpoint || h.Kind == vdhandles.Vertex:
		m.action = beginPointEdit(target, h.Index)
	case h.Kind == vdhandles.Apex:
		if target.Type == vdtarget.ShapeTriangle {
			m.action = &TriangleApexAction{Original: target.Clone(), Center: target.Geometry().Center()}
		}
	case h.Kind == vdhandles.TrapezoidLeft || h.Kind == vdhandles.TrapezoidRight:
		if target.Type == vdtarget.ShapeTrapezoid {
			m.action = &TrapezoidOffsetAction{
				Original: target.Clone(),
				Left:     h.Kind == vdhandles.TrapezoidLeft,
				Center:   target.Geometry().Center(),
			}
		}
	case h.Kind == vdhandles.Skew:
		if target.Type == vdtarget.ShapeParallelogram {
			m.action = &ParallelogramSkewAction{Original: target.Clone(), Center: target.Geometry().Center()}
		}
	case h.Kind == vdhandles.InnerRadius:
		if target.Type == vdtarget.ShapeStar {
			m.action = &StarInnerRadiusAction{Original: target.Clone(), Center: target.Geometry().Center()}
		}
	case h.Kind == vdhandles.ArcStart || h.Kind == vdhandles.ArcEnd:
		m.action = beginArcAngle(target, h.Kind == vdhandles.ArcStart)
	}
	return m.action
}

// Update advances the active gesture to a new pointer position. It returns
// the replaced action and the live preview. With no gesture active it is a
// no-op.
func (m *Machine) Update(ev PointerEvent) (Action, *vdtarget.Shape) {
	if m.Idle() || ev.Point == nil {
		return nil, nil
	}
	switch a := m.action.(type) {
	case *DrawAction:
		m.action = m.updateDraw(a, ev)
	case *PolylineDrawAction:
		m.action = m.updatePolylineDraw(a, ev)
	case *DragAction:
		m.action = m.updateDrag(a, ev)
	case *DuplicateAction:
		m.action = m.updateDuplicate(a, ev)
	case *ResizeAction:
		m.action = m.updateResize(a, ev)
	case *RotateAction:
		m.action = updateRotate(a, ev)
	case *PointEditAction:
		m.action = m.updatePointEdit(a, ev)
	case *PanAction:
		m.action = &PanAction{
			Anchor: a.Anchor,
			Delta:  geo.NewPoint(ev.Point.X-a.Anchor.X, ev.Point.Y-a.Anchor.Y),
		}
	case *TriangleApexAction:
		m.action = m.updateTriangleApex(a, ev)
	case *TrapezoidOffsetAction:
		m.action = m.updateTrapezoidOffset(a, ev)
	case *ParallelogramSkewAction:
		m.action = m.updateParallelogramSkew(a, ev)
	case *StarInnerRadiusAction:
		m.action = m.updateStarInnerRadius(a, ev)
	case *ArcAngleAction:
		m.action = updateArcAngle(a, ev)
	}
	return m.action, m.action.Preview()
}

// AddPoint commits the live point of a polyline draw and starts the next one.
// A click landing within CloseSnapDistance of the first point closes the
// outline instead; the returned flag reports that, and the caller should then
// Commit. Outside a polyline draw it is a no-op.
func (m *Machine) AddPoint(ev PointerEvent) (Action, bool) {
	a, ok := m.action.(*PolylineDrawAction)
	if !ok || ev.Point == nil {
		return m.action, false
	}
	p := m.snap(ev.Point)
	next := &PolylineDrawAction{Shape: a.Shape.Clone()}
	s := next.Shape
	// three committed points plus the live one
	if len(s.Points) >= 4 && p.DistanceTo(s.Points[0]) <= CloseSnapDistance {
		// the live point collapses into the first
		s.Points = s.Points[:len(s.Points)-1]
		s.Closed = true
		m.action = next
		return next, true
	}
	s.Points[len(s.Points)-1] = p.Copy()
	s.Points = append(s.Points, p.Copy())
	m.action = next
	return next, false
}

// Commit finishes the active gesture and returns the shape to write back into
// the scene. Nil means the gesture amounted to a click or produced nothing;
// either way the machine is idle afterwards.
func (m *Machine) Commit() *vdtarget.Shape {
	if m.Idle() {
		return nil
	}
	action := m.action
	m.action = nil
	switch a := action.(type) {
	case *DrawAction:
		return commitDraw(a, m.opts.MinDrag)
	case *PolylineDrawAction:
		return commitPolylineDraw(a)
	case *DragAction:
		if a.Moved <= m.opts.MinDrag {
			return nil
		}
		return a.Working
	case *DuplicateAction:
		if a.Moved <= m.opts.MinDrag {
			return nil
		}
		return a.Working
	case *RotateAction:
		if a.Working == nil || a.Working.Rotation == a.Original.Rotation {
			return nil
		}
		return a.Working
	case *PointEditAction:
		return commitPointEdit(a)
	case *ResizeAction:
		return a.Working
	case *TriangleApexAction:
		return a.Working
	case *TrapezoidOffsetAction:
		return a.Working
	case *ParallelogramSkewAction:
		return a.Working
	case *StarInnerRadiusAction:
		return a.Working
	case *ArcAngleAction:
		return a.Working
	}
	return nil
}

// Cancel abandons the active gesture without committing anything.
func (m *Machine) Cancel() {
	m.action = nil
}

// snap quantizes a pointer position to the grid when snapping is on. Every
// gesture runs its geometry on snapped positions so committed coordinates
// land on the grid.
func (m *Machine) snap(p *geo.Point) *geo.Point {
	if !m.opts.SnapOn {
		return p.Copy()
	}
	step := m.opts.SnapStep
	return geo.NewPoint(math.Round(p.X/step)*step, math.Round(p.Y/step)*step)
}

// translate moves a shape by (dx, dy), whichever of its anchoring fields are
// in use.
func translate(s *vdtarget.Shape, dx, dy float64) {
	s.Pos.X += dx
	s.Pos.Y += dy
	if s.Center != nil {
		s.Center.X += dx
		s.Center.Y += dy
	}
	for _, p := range s.Points {
		p.X += dx
		p.Y += dy
	}
}

// toLocal maps a screen point into the shape's unrotated frame.
func toLocal(p, center *geo.Point, rotation float64) *geo.Point {
	if rotation == 0 || center == nil {
		return p.Copy()
	}
	return geo.RotatePoint(p, center, -rotation)
}

func (m *Machine) updateDrag(a *DragAction, ev PointerEvent) Action {
	p := m.snap(ev.Point)
	next := &DragAction{
		Original: a.Original,
		Anchor:   a.Anchor,
		Moved:    math.Max(a.Moved, a.Anchor.DistanceTo(p)),
	}
	next.Working = a.Original.Clone()
	translate(next.Working, p.X-a.Anchor.X, p.Y-a.Anchor.Y)
	return next
}

func (m *Machine) updateDuplicate(a *DuplicateAction, ev PointerEvent) Action {
	p := m.snap(ev.Point)
	next := &DuplicateAction{
		Original: a.Original,
		Anchor:   a.Anchor,
		Moved:    math.Max(a.Moved, a.Anchor.DistanceTo(p)),
	}
	next.Working = a.Original.Clone()
	translate(next.Working, p.X-a.Anchor.X, p.Y-a.Anchor.Y)
	return next
}
