package vdedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/vdhandles"
	"github.com/vecdraw/vd/vdtarget"
)

func handleOn(t *testing.T, m *Machine, target *vdtarget.Shape, k vdhandles.Kind, want Kind) {
	t.Helper()
	h := vdhandles.Handle{Kind: k, Point: geo.NewPoint(0, 0)}
	a := m.BeginHandle(ev(0, 0), target, h)
	require.NotNil(t, a)
	require.Equal(t, want, a.Kind())
}

func TestTriangleApexFollowsPointer(t *testing.T) {
	target := rect(10, 10, 100, 60)
	target.SetType(vdtarget.ShapeTriangle)

	m := NewMachine(Options{})
	handleOn(t, m, target, vdhandles.Apex, KindTriangleApex)

	_, preview := m.Update(ev(90, 0))
	assert.InDelta(t, 30, preview.ApexOffset, geo.PRECISION)

	// the apex may go past the box edge
	_, preview = m.Update(ev(200, 0))
	assert.InDelta(t, 140, preview.ApexOffset, geo.PRECISION)

	committed := m.Commit()
	require.NotNil(t, committed)
	assert.InDelta(t, 140, committed.ApexOffset, geo.PRECISION)
}

func TestTriangleApexOnWrongShapeIsIgnored(t *testing.T) {
	target := rect(0, 0, 100, 50)

	m := NewMachine(Options{})
	h := vdhandles.Handle{Kind: vdhandles.Apex, Point: geo.NewPoint(0, 0)}
	assert.Nil(t, m.BeginHandle(ev(0, 0), target, h))
	assert.True(t, m.Idle())
}

func TestTrapezoidLeftOffsetClamps(t *testing.T) {
	target := rect(10, 10, 100, 50)
	target.SetType(vdtarget.ShapeTrapezoid)
	target.LeftOffset, target.RightOffset = 20, 30

	m := NewMachine(Options{})
	handleOn(t, m, target, vdhandles.TrapezoidLeft, KindTrapezoidOffset)

	_, preview := m.Update(ev(40, 0))
	assert.InDelta(t, 30, preview.LeftOffset, geo.PRECISION)
	assert.InDelta(t, 30, preview.RightOffset, geo.PRECISION)

	// dragging left of the box clamps at zero
	_, preview = m.Update(ev(-50, 0))
	assert.InDelta(t, 0, preview.LeftOffset, geo.PRECISION)

	// dragging past the right edge clamps so the offsets cannot cross
	_, preview = m.Update(ev(500, 0))
	assert.InDelta(t, 100, preview.LeftOffset, geo.PRECISION)
	assert.InDelta(t, 0, preview.RightOffset, geo.PRECISION)
}

func TestTrapezoidSymmetryLock(t *testing.T) {
	target := rect(10, 10, 100, 50)
	target.SetType(vdtarget.ShapeTrapezoid)
	target.LeftOffset, target.RightOffset = 20, 30

	m := NewMachine(Options{})
	handleOn(t, m, target, vdhandles.TrapezoidLeft, KindTrapezoidOffset)

	_, preview := m.Update(shiftEv(45, 0))
	assert.InDelta(t, 35, preview.LeftOffset, geo.PRECISION)
	assert.InDelta(t, 35, preview.RightOffset, geo.PRECISION)

	// symmetric offsets cap at half the width
	_, preview = m.Update(shiftEv(90, 0))
	assert.InDelta(t, 50, preview.LeftOffset, geo.PRECISION)
	assert.InDelta(t, 50, preview.RightOffset, geo.PRECISION)
}

func TestTrapezoidRightOffset(t *testing.T) {
	target := rect(10, 10, 100, 50)
	target.SetType(vdtarget.ShapeTrapezoid)
	target.LeftOffset, target.RightOffset = 20, 30

	m := NewMachine(Options{})
	handleOn(t, m, target, vdhandles.TrapezoidRight, KindTrapezoidOffset)

	_, preview := m.Update(ev(70, 0))
	assert.InDelta(t, 40, preview.RightOffset, geo.PRECISION)
	assert.InDelta(t, 20, preview.LeftOffset, geo.PRECISION)
}

func TestParallelogramSkewCollapseGuard(t *testing.T) {
	target := rect(10, 10, 100, 50)
	target.SetType(vdtarget.ShapeParallelogram)
	target.Skew = 25

	m := NewMachine(Options{})
	handleOn(t, m, target, vdhandles.Skew, KindParallelogramSkew)

	_, preview := m.Update(ev(40, 0))
	assert.InDelta(t, 30, preview.Skew, geo.PRECISION)

	// a unit of base always survives, leaning either way
	_, preview = m.Update(ev(500, 0))
	assert.InDelta(t, 99, preview.Skew, geo.PRECISION)
	_, preview = m.Update(ev(-500, 0))
	assert.InDelta(t, -99, preview.Skew, geo.PRECISION)
}

func TestStarInnerRadiusClampsToOuter(t *testing.T) {
	target := vdtarget.BaseShape()
	target.SetType(vdtarget.ShapeStar)
	target.Center = geo.NewPoint(50, 50)
	target.Radius, target.InnerRadius, target.Sides = 40, 20, 5

	m := NewMachine(Options{})
	handleOn(t, m, target, vdhandles.InnerRadius, KindStarInnerRadius)

	_, preview := m.Update(ev(50, 45))
	assert.InDelta(t, 5, preview.InnerRadius, geo.PRECISION)

	_, preview = m.Update(ev(50, -50))
	assert.InDelta(t, 40, preview.InnerRadius, geo.PRECISION)

	committed := m.Commit()
	require.NotNil(t, committed)
	assert.InDelta(t, 40, committed.InnerRadius, geo.PRECISION)
	// outer radius untouched
	assert.InDelta(t, 40, committed.Radius, geo.PRECISION)
}

func TestStarInnerRadiusIgnoresRotation(t *testing.T) {
	target := vdtarget.BaseShape()
	target.SetType(vdtarget.ShapeStar)
	target.Center = geo.NewPoint(50, 50)
	target.Radius, target.InnerRadius, target.Sides = 40, 20, 5
	target.Rotation = 36

	m := NewMachine(Options{})
	handleOn(t, m, target, vdhandles.InnerRadius, KindStarInnerRadius)

	// distance from the center is rotation invariant
	_, preview := m.Update(ev(50, 40))
	assert.InDelta(t, 10, preview.InnerRadius, geo.PRECISION)
}

func arcShape(start, extent float64) *vdtarget.Shape {
	s := vdtarget.BaseShape()
	s.SetType(vdtarget.ShapeArc)
	s.Pos = geo.Point{X: 0, Y: 0}
	s.Width, s.Height = 100, 100
	s.Start, s.Extent = start, extent
	s.ArcStyle = "pieslice"
	return s
}

func TestArcEndHandleGrowsExtent(t *testing.T) {
	target := arcShape(0, 90)

	m := NewMachine(Options{})
	handleOn(t, m, target, vdhandles.ArcEnd, KindArcAngle)

	// west of center is 180 degrees
	_, preview := m.Update(ev(0, 50))
	assert.Equal(t, 0., preview.Start)
	assert.Equal(t, 180., preview.Extent)

	// south of center is 270
	_, preview = m.Update(ev(50, 100))
	assert.Equal(t, 270., preview.Extent)
}

func TestArcExtentSweepsPastWraparound(t *testing.T) {
	target := arcShape(0, 90)

	m := NewMachine(Options{})
	handleOn(t, m, target, vdhandles.ArcEnd, KindArcAngle)

	m.Update(ev(0, 50))   // 180
	m.Update(ev(50, 100)) // 270
	m.Update(ev(100, 50)) // 360, crossing the start

	_, preview := m.Update(ev(50, 0))
	// accumulated direction wins over the short way round, capped at a full
	// sweep
	assert.Equal(t, 360., preview.Extent)
}

func TestArcStartHandleKeepsEndFixed(t *testing.T) {
	target := arcShape(0, 90)

	m := NewMachine(Options{})
	handleOn(t, m, target, vdhandles.ArcStart, KindArcAngle)

	// drag the start down to 330; the far end stays at 90
	p := geo.NewPoint(50+50*0.8660254037844387, 50+50*0.5)
	_, preview := m.Update(ev(p.X, p.Y))
	assert.Equal(t, 330., preview.Start)
	assert.Equal(t, 120., preview.Extent)
}

func TestArcStartWithExtentLockSwingsWholeArc(t *testing.T) {
	target := arcShape(0, 90)

	m := NewMachine(Options{})
	handleOn(t, m, target, vdhandles.ArcStart, KindArcAngle)

	p := geo.NewPoint(50+50*0.8660254037844387, 50+50*0.5)
	_, preview := m.Update(PointerEvent{Point: p, Ctrl: true})
	assert.Equal(t, 330., preview.Start)
	assert.Equal(t, 90., preview.Extent)
}

func TestArcAngleOnDegenerateBoxIsIgnored(t *testing.T) {
	target := arcShape(0, 90)
	target.Width = 0

	m := NewMachine(Options{})
	h := vdhandles.Handle{Kind: vdhandles.ArcEnd, Point: geo.NewPoint(0, 0)}
	assert.Nil(t, m.BeginHandle(ev(0, 0), target, h))
}

func TestArcAngleCenterPointerIsIgnored(t *testing.T) {
	target := arcShape(0, 90)

	m := NewMachine(Options{})
	handleOn(t, m, target, vdhandles.ArcEnd, KindArcAngle)

	before := m.Action()
	after, _ := m.Update(ev(50, 50))
	assert.Same(t, before, after)
}
