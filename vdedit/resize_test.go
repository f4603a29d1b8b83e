package vdedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/vdhandles"
	"github.com/vecdraw/vd/vdtarget"
)

func rect(x, y, w, h float64) *vdtarget.Shape {
	s := vdtarget.BaseShape()
	s.Pos = geo.Point{X: x, Y: y}
	s.Width, s.Height = w, h
	return s
}

func resizeOn(t *testing.T, m *Machine, target *vdtarget.Shape, k vdhandles.Kind) {
	t.Helper()
	h := vdhandles.Handle{Kind: k, Point: geo.NewPoint(0, 0)}
	a := m.BeginHandle(ev(0, 0), target, h)
	require.NotNil(t, a)
	require.Equal(t, KindResize, a.Kind())
}

func TestResizeCornerKeepsOppositeCornerFixed(t *testing.T) {
	target := rect(10, 10, 100, 50)
	m := NewMachine(Options{})
	resizeOn(t, m, target, vdhandles.BottomRight)

	_, preview := m.Update(ev(60, 35))
	assertShapeBox(t, preview, 10, 10, 50, 25)

	_, preview = m.Update(ev(210, 35))
	assertShapeBox(t, preview, 10, 10, 200, 25)

	committed := m.Commit()
	require.NotNil(t, committed)
	assertShapeBox(t, committed, 10, 10, 200, 25)
	// pressed shape untouched
	assertShapeBox(t, target, 10, 10, 100, 50)
}

func TestResizeCornerAspectLockFollowsDominantAxis(t *testing.T) {
	target := rect(10, 10, 100, 50)
	m := NewMachine(Options{})
	resizeOn(t, m, target, vdhandles.BottomRight)

	_, preview := m.Update(shiftEv(210, 35))
	assertShapeBox(t, preview, 10, 10, 200, 100)
}

func TestResizeEdgeScalesOneAxis(t *testing.T) {
	target := rect(10, 10, 100, 50)
	m := NewMachine(Options{})
	resizeOn(t, m, target, vdhandles.Right)

	// pointer y is ignored by an east edge handle
	_, preview := m.Update(ev(160, 500))
	assertShapeBox(t, preview, 10, 10, 150, 50)
}

func TestResizeEdgeAspectLockDerivesOtherAxis(t *testing.T) {
	target := rect(10, 10, 100, 50)
	m := NewMachine(Options{})
	resizeOn(t, m, target, vdhandles.Right)

	_, preview := m.Update(shiftEv(160, 10))
	assert.InDelta(t, 150, preview.Width, geo.PRECISION)
	assert.InDelta(t, 75, preview.Height, geo.PRECISION)
}

func TestResizeCrossingAnchorMirrors(t *testing.T) {
	target := rect(10, 10, 100, 50)
	m := NewMachine(Options{})
	resizeOn(t, m, target, vdhandles.BottomRight)

	_, preview := m.Update(ev(-90, 60))
	assertShapeBox(t, preview, -90, 10, 100, 50)
}

func TestResizeCrossingFlipsRightTriangle(t *testing.T) {
	target := rect(0, 0, 100, 50)
	target.SetType(vdtarget.ShapeRightTriangle)

	m := NewMachine(Options{})
	resizeOn(t, m, target, vdhandles.BottomRight)

	_, preview := m.Update(ev(-100, 50))
	assertShapeBox(t, preview, -100, 0, 100, 50)
	assert.True(t, preview.FlipH)
	assert.False(t, preview.FlipV)
}

func TestResizeStarBoxDoublingDoublesBothRadii(t *testing.T) {
	target := vdtarget.BaseShape()
	target.SetType(vdtarget.ShapeStar)
	target.Center = geo.NewPoint(50, 50)
	target.Radius, target.InnerRadius, target.Sides = 20, 10, 5

	m := NewMachine(Options{})
	resizeOn(t, m, target, vdhandles.BottomRight)

	// bounding box (30,30 40x40) doubled while anchored top-left
	_, preview := m.Update(ev(110, 110))
	assert.InDelta(t, 40, preview.Radius, geo.PRECISION)
	assert.InDelta(t, 20, preview.InnerRadius, geo.PRECISION)
	assert.InDelta(t, 70, preview.Center.X, geo.PRECISION)
	assert.InDelta(t, 70, preview.Center.Y, geo.PRECISION)
}

func TestResizeStarIsUniformEvenOffAxis(t *testing.T) {
	target := vdtarget.BaseShape()
	target.SetType(vdtarget.ShapeStar)
	target.Center = geo.NewPoint(50, 50)
	target.Radius, target.InnerRadius, target.Sides = 20, 10, 5

	m := NewMachine(Options{})
	resizeOn(t, m, target, vdhandles.BottomRight)

	// dragging further in x than y still scales both radii together
	_, preview := m.Update(ev(150, 90))
	assert.InDelta(t, 60, preview.Radius, geo.PRECISION)
	assert.InDelta(t, 30, preview.InnerRadius, geo.PRECISION)
}

func TestResizeToAnchorKeepsUnitExtent(t *testing.T) {
	target := rect(10, 10, 100, 50)
	m := NewMachine(Options{})
	resizeOn(t, m, target, vdhandles.BottomRight)

	// pointer dead on the anchor column collapses x
	_, preview := m.Update(ev(10, 60))
	assert.InDelta(t, 1, preview.Width, geo.PRECISION)
	assert.InDelta(t, 50, preview.Height, geo.PRECISION)
	assert.InDelta(t, 10, preview.Pos.X, geo.PRECISION)
}

func TestResizeStarToAnchorKeepsUnitRadius(t *testing.T) {
	target := vdtarget.BaseShape()
	target.SetType(vdtarget.ShapeStar)
	target.Center = geo.NewPoint(50, 50)
	target.Radius, target.InnerRadius, target.Sides = 20, 10, 5

	m := NewMachine(Options{})
	resizeOn(t, m, target, vdhandles.BottomRight)

	_, preview := m.Update(ev(30, 30))
	assert.InDelta(t, 1, preview.Radius, geo.PRECISION)
	assert.InDelta(t, 0, preview.InnerRadius, geo.PRECISION)
}

func TestResizeTriangleScalesApexOffset(t *testing.T) {
	target := rect(0, 0, 100, 60)
	target.SetType(vdtarget.ShapeTriangle)
	target.ApexOffset = 70

	m := NewMachine(Options{})
	resizeOn(t, m, target, vdhandles.BottomRight)

	// bounding box spans the apex at x=120
	_, preview := m.Update(ev(240, 120))
	assertShapeBox(t, preview, 0, 0, 200, 120)
	assert.InDelta(t, 140, preview.ApexOffset, geo.PRECISION)
}

func TestResizeTrapezoidScalesOffsets(t *testing.T) {
	target := rect(0, 0, 100, 50)
	target.SetType(vdtarget.ShapeTrapezoid)
	target.LeftOffset, target.RightOffset = 20, 30

	m := NewMachine(Options{})
	resizeOn(t, m, target, vdhandles.BottomRight)

	_, preview := m.Update(ev(200, 50))
	assert.InDelta(t, 40, preview.LeftOffset, geo.PRECISION)
	assert.InDelta(t, 60, preview.RightOffset, geo.PRECISION)

	// crossing horizontally swaps the offsets
	_, preview = m.Update(ev(-100, 50))
	assert.InDelta(t, 30, preview.LeftOffset, geo.PRECISION)
	assert.InDelta(t, 20, preview.RightOffset, geo.PRECISION)
}

func TestResizeTextScalesFont(t *testing.T) {
	target := rect(10, 10, 100, 20)
	target.SetType(vdtarget.ShapeText)
	target.Label = "hello"
	target.FontSize = 16
	target.Anchor = "nw"

	m := NewMachine(Options{})
	resizeOn(t, m, target, vdhandles.BottomRight)

	_, preview := m.Update(ev(210, 30))
	assert.Equal(t, 32, preview.FontSize)

	_, preview = m.Update(ev(35, 15))
	assert.Equal(t, 4, preview.FontSize)
}

func TestResizeTextRecoversAnchorPoint(t *testing.T) {
	target := rect(100, 100, 80, 20)
	target.SetType(vdtarget.ShapeText)
	target.Label = "hello"
	target.FontSize = 16
	// empty anchor reads as center, so Pos is the middle of the block

	m := NewMachine(Options{})
	resizeOn(t, m, target, vdhandles.BottomRight)

	_, preview := m.Update(ev(220, 130))
	assert.Equal(t, 32, preview.FontSize)
	assert.InDelta(t, 140, preview.Pos.X, geo.PRECISION)
	assert.InDelta(t, 110, preview.Pos.Y, geo.PRECISION)
}

func TestResizeRotatedKeepsAnchorFixedOnScreen(t *testing.T) {
	target := rect(0, 0, 100, 50)
	target.Rotation = 90

	m := NewMachine(Options{})
	resizeOn(t, m, target, vdhandles.BottomRight)

	// the anchor is the local top-left corner; on screen it sits at (75,-25)
	anchorScreen := geo.RotatePoint(geo.NewPoint(0, 0), geo.NewPoint(50, 25), 90)
	assert.InDelta(t, 75, anchorScreen.X, geo.PRECISION)
	assert.InDelta(t, -25, anchorScreen.Y, geo.PRECISION)

	// pointer position whose unrotated image is (200,100), doubling the box
	p := geo.RotatePoint(geo.NewPoint(200, 100), geo.NewPoint(50, 25), 90)
	_, preview := m.Update(ev(p.X, p.Y))
	require.NotNil(t, preview)
	assert.InDelta(t, 200, preview.Width, geo.PRECISION)
	assert.InDelta(t, 100, preview.Height, geo.PRECISION)

	newCenter := geo.NewPoint(preview.Pos.X+preview.Width/2, preview.Pos.Y+preview.Height/2)
	got := geo.RotatePoint(geo.NewPoint(preview.Pos.X, preview.Pos.Y), newCenter, 90)
	assert.InDelta(t, anchorScreen.X, got.X, geo.PRECISION)
	assert.InDelta(t, anchorScreen.Y, got.Y, geo.PRECISION)
}

func TestResizeSnapsPointer(t *testing.T) {
	target := rect(10, 10, 100, 50)
	m := NewMachine(Options{SnapOn: true, SnapStep: 10})
	resizeOn(t, m, target, vdhandles.BottomRight)

	_, preview := m.Update(ev(207, 63))
	assertShapeBox(t, preview, 10, 10, 200, 50)
}

func TestResizeWithoutMoveCommitsNothing(t *testing.T) {
	target := rect(10, 10, 100, 50)
	m := NewMachine(Options{})
	resizeOn(t, m, target, vdhandles.BottomRight)
	assert.Nil(t, m.Commit())
}

func TestResizeBitmapIsRejected(t *testing.T) {
	target := vdtarget.BaseShape()
	target.SetType(vdtarget.ShapeBitmap)
	target.Center = geo.NewPoint(50, 50)

	m := NewMachine(Options{})
	h := vdhandles.Handle{Kind: vdhandles.BottomRight, Point: geo.NewPoint(0, 0)}
	assert.Nil(t, m.BeginHandle(ev(0, 0), target, h))
	assert.True(t, m.Idle())
}

func TestResizePointListScalesAffinely(t *testing.T) {
	target := vdtarget.BaseShape()
	target.SetType(vdtarget.ShapePolyline)
	target.Points = geo.Points{
		geo.NewPoint(0, 0),
		geo.NewPoint(100, 0),
		geo.NewPoint(100, 80),
	}

	m := NewMachine(Options{})
	resizeOn(t, m, target, vdhandles.BottomRight)

	_, preview := m.Update(ev(50, 40))
	assert.True(t, preview.Points.Equals(geo.Points{
		geo.NewPoint(0, 0),
		geo.NewPoint(50, 0),
		geo.NewPoint(50, 40),
	}))
}
