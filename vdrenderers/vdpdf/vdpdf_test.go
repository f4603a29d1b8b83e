package vdpdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/vdtarget"
)

func render(t *testing.T, scene *vdtarget.Scene) []byte {
	t.Helper()
	out, err := Render(scene)
	require.NoError(t, err)
	return out
}

func TestRenderNilScene(t *testing.T) {
	_, err := Render(nil)
	assert.Error(t, err)
}

func TestRenderEmptyScene(t *testing.T) {
	out := render(t, vdtarget.NewScene())

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.True(t, bytes.Contains(out, []byte("%%EOF")))
}

func TestRenderSetsTitle(t *testing.T) {
	scene := vdtarget.NewScene()
	scene.Name = "drawing"
	out := render(t, scene)
	assert.True(t, bytes.Contains(out, []byte("/Title")))
}

func TestRenderShapesGrowOutput(t *testing.T) {
	empty := render(t, vdtarget.NewScene())

	scene := vdtarget.NewScene()
	rect := vdtarget.BaseShape()
	rect.Pos = geo.Point{X: 10, Y: 10}
	rect.Width = 100
	rect.Height = 50
	rect.Fill = "#ff0000"
	scene.AddShape(rect)

	ellipse := vdtarget.BaseShape()
	ellipse.Type = vdtarget.ShapeEllipse
	ellipse.Pos = geo.Point{X: 200, Y: 10}
	ellipse.Width = 80
	ellipse.Height = 40
	ellipse.Rotation = 30
	scene.AddShape(ellipse)

	star := vdtarget.BaseShape()
	star.Type = vdtarget.ShapeStar
	star.Center = geo.NewPoint(150, 200)
	star.Radius = 50
	star.InnerRadius = 20
	star.Sides = 5
	scene.AddShape(star)

	pencil := vdtarget.BaseShape()
	pencil.Type = vdtarget.ShapePencil
	pencil.Smooth = true
	pencil.Points = geo.Points{
		geo.NewPoint(300, 300), geo.NewPoint(340, 260), geo.NewPoint(380, 300),
	}
	scene.AddShape(pencil)

	arc := vdtarget.BaseShape()
	arc.Type = vdtarget.ShapeArc
	arc.Pos = geo.Point{X: 400, Y: 100}
	arc.Width = 100
	arc.Height = 100
	arc.Extent = 120
	arc.ArcStyle = "pieslice"
	arc.Fill = "#00ff00"
	scene.AddShape(arc)

	out := render(t, scene)
	assert.Greater(t, len(out), len(empty))
}

func TestRenderText(t *testing.T) {
	scene := vdtarget.NewScene()
	s := vdtarget.BaseShape()
	s.Type = vdtarget.ShapeText
	s.Pos = geo.Point{X: 50, Y: 50}
	s.Label = "hello"
	s.Bold = true
	scene.AddShape(s)

	out := render(t, scene)
	assert.True(t, bytes.Contains(out, []byte("/Font")))
}

func TestRenderHiddenShapesSkipped(t *testing.T) {
	plain := render(t, vdtarget.NewScene())

	scene := vdtarget.NewScene()
	s := vdtarget.BaseShape()
	s.Pos = geo.Point{X: 10, Y: 10}
	s.Width = 100
	s.Height = 50
	s.State = vdtarget.StateHidden
	scene.AddShape(s)

	out := render(t, scene)
	// a hidden shape adds no content stream
	assert.Equal(t, len(plain), len(out))
}

func TestRenderMissingImageFile(t *testing.T) {
	scene := vdtarget.NewScene()
	s := vdtarget.BaseShape()
	s.Type = vdtarget.ShapeImage
	s.Pos = geo.Point{X: 10, Y: 10}
	s.Width = 40
	s.Height = 30
	s.URL = "does-not-exist.png"
	scene.AddShape(s)

	out := render(t, scene)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRenderBadColorSkipsPaint(t *testing.T) {
	scene := vdtarget.NewScene()
	scene.Background = "#zzzzzz"
	s := vdtarget.BaseShape()
	s.Pos = geo.Point{X: 10, Y: 10}
	s.Width = 100
	s.Height = 50
	s.Stroke = "notacolor"
	scene.AddShape(s)

	out, err := Render(scene)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRenderBitmaps(t *testing.T) {
	scene := vdtarget.NewScene()
	shade := vdtarget.BaseShape()
	shade.Type = vdtarget.ShapeBitmap
	shade.Bitmap = "gray50"
	shade.Center = geo.NewPoint(50, 50)
	scene.AddShape(shade)

	glyph := vdtarget.BaseShape()
	glyph.Type = vdtarget.ShapeBitmap
	glyph.Bitmap = "warning"
	glyph.Center = geo.NewPoint(100, 50)
	scene.AddShape(glyph)

	out := render(t, scene)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}
