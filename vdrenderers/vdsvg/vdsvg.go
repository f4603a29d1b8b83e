// vdsvg renders scenes to SVG. It consumes only the finalized shape list and
// the geometry API, so whatever the interaction machine committed is exactly
// what renders.
package vdsvg

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/vecdraw/vd/lib/anchor"
	"github.com/vecdraw/vd/lib/color"
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/shape"
	"github.com/vecdraw/vd/lib/svg"
	"github.com/vecdraw/vd/lib/textmeasure"
	"github.com/vecdraw/vd/vdhandles"
	"github.com/vecdraw/vd/vdrenderers/vdfonts"
	"github.com/vecdraw/vd/vdtarget"
)

const (
	DEFAULT_PADDING = 20

	// selectionColor outlines the selected shape when its fill gives nothing
	// to derive a darker accent from.
	selectionColor = "#4c7fe1"
)

type RenderOpts struct {
	// Pad is the padding around the content when cropping. Ignored without
	// Crop.
	Pad *int64
	// Crop fits the viewBox to the drawn content instead of the canvas.
	Crop *bool
	// Scale multiplies the rendered size; unset renders at natural size.
	Scale *float64
	// NoXMLTag drops the XML processing instruction for inline embedding.
	NoXMLTag *bool
	// Grid draws the scene's snap grid under the shapes.
	Grid *bool
	// SelectedID overlays selection handles for the shape with this ID.
	SelectedID *string
	// EditPoints switches the overlay to per-vertex handles.
	EditPoints *bool
}

// Render produces a standalone SVG document of the scene. Shapes are drawn in
// paint order; hidden shapes are skipped entirely.
func Render(scene *vdtarget.Scene, opts *RenderOpts) ([]byte, error) {
	if scene == nil {
		return nil, errors.New("render: nil scene")
	}
	if opts == nil {
		opts = &RenderOpts{}
	}

	pad := float64(DEFAULT_PADDING)
	if opts.Pad != nil {
		pad = float64(*opts.Pad)
	}

	left, top, width, height := 0., 0., scene.Width, scene.Height
	if opts.Crop != nil && *opts.Crop {
		if box := scene.BoundingBox(); box != nil {
			left = box.TopLeft.X - pad
			top = box.TopLeft.Y - pad
			width = box.Width + 2*pad
			height = box.Height + 2*pad
		}
	}

	// parsing fonts is expensive, skip it for scenes without text
	var ruler *textmeasure.Ruler
	for _, s := range scene.Shapes {
		if s.Type == vdtarget.ShapeText && s.Visible() && s.Label != "" {
			r, err := textmeasure.NewRuler()
			if err != nil {
				return nil, fmt.Errorf("rendering text: %w", err)
			}
			ruler = r
			break
		}
	}

	buf := &bytes.Buffer{}
	if !color.IsNone(scene.Background) {
		fmt.Fprintf(buf, `<rect class="background" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
			num(left), num(top), num(width), num(height), scene.Background)
	}
	if opts.Grid != nil && *opts.Grid {
		drawGrid(buf, scene, left, top, width, height)
	}

	for _, s := range scene.ZSorted() {
		if !s.Visible() {
			continue
		}
		drawShape(buf, ruler, s)
	}

	if opts.SelectedID != nil {
		s, err := scene.ShapeByID(*opts.SelectedID)
		if err != nil {
			return nil, fmt.Errorf("rendering selection: %w", err)
		}
		drawSelection(buf, s, opts.EditPoints != nil && *opts.EditPoints)
	}

	out := &bytes.Buffer{}
	if opts.NoXMLTag == nil || !*opts.NoXMLTag {
		out.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	}
	outW, outH := width, height
	if opts.Scale != nil {
		outW = math.Round(width * *opts.Scale)
		outH = math.Round(height * *opts.Scale)
	}
	fmt.Fprintf(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`,
		num(left), num(top), num(width), num(height), num(outW), num(outH))
	out.Write(buf.Bytes())
	out.WriteString("</svg>")
	return out.Bytes(), nil
}

func drawShape(buf *bytes.Buffer, ruler *textmeasure.Ruler, s *vdtarget.Shape) {
	grouped := s.Rotation != 0 || s.State == vdtarget.StateDisabled
	if grouped {
		buf.WriteString("<g")
		if s.Rotation != 0 {
			c := s.Geometry().Center()
			fmt.Fprintf(buf, ` transform="rotate(%s %s %s)"`, num(s.Rotation), num(c.X), num(c.Y))
		}
		if s.State == vdtarget.StateDisabled {
			buf.WriteString(` opacity="0.5"`)
		}
		buf.WriteString(">")
	}

	switch s.Type {
	case vdtarget.ShapeRectangle:
		box := s.Box()
		fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" %s/>`,
			num(box.TopLeft.X), num(box.TopLeft.Y), num(box.Width), num(box.Height), paint(s.Fill, s))
	case vdtarget.ShapeEllipse:
		box := s.Box()
		c := box.Center()
		fmt.Fprintf(buf, `<ellipse cx="%s" cy="%s" rx="%s" ry="%s" %s/>`,
			num(c.X), num(c.Y), num(box.Width/2), num(box.Height/2), paint(s.Fill, s))
	case vdtarget.ShapeText:
		drawText(buf, ruler, s)
	case vdtarget.ShapeImage:
		if s.URL != "" {
			fmt.Fprintf(buf, `<image x="%s" y="%s" width="%s" height="%s" href="%s"/>`,
				num(s.Pos.X), num(s.Pos.Y), num(s.Width), num(s.Height), svg.EscapeText(s.URL))
		}
	case vdtarget.ShapeBitmap:
		drawBitmap(buf, s)
	default:
		fill := s.Fill
		switch {
		case s.IsPointList() && !s.Closed:
			// open paths have no interior
			fill = color.None
		case s.Type == vdtarget.ShapeArc && s.ArcStyle == shape.ARC_STYLE_ARC:
			fill = color.None
		}
		extra := ""
		if s.IsPointList() {
			extra = ` stroke-linecap="round" stroke-linejoin="round"`
		}
		for _, pathData := range s.Geometry().GetSVGPathData() {
			fmt.Fprintf(buf, `<path d="%s" %s%s/>`, pathData, paint(fill, s), extra)
		}
	}

	if grouped {
		buf.WriteString("</g>")
	}
}

func drawText(buf *bytes.Buffer, ruler *textmeasure.Ruler, s *vdtarget.Shape) {
	if ruler == nil || s.Label == "" {
		return
	}
	font := s.Font()
	layout := ruler.Layout(font, s.Label, s.WrapWidth, &s.Pos,
		anchor.FromString(s.Anchor), anchor.JustifyFromString(s.Justify))
	style := fmt.Sprintf("font-family:%s;font-size:%dpx", fontFamilyCSS(font), font.Size)
	if s.Bold {
		style += ";font-weight:bold"
	}
	if s.Italic {
		style += ";font-style:italic"
	}
	for _, line := range layout.Lines {
		fmt.Fprintf(buf, `<text x="%s" y="%s" fill="%s" style="%s">%s</text>`,
			num(line.X), num(line.Y+layout.Ascent), svgColor(s.Stroke), style, svg.EscapeText(line.Text))
	}
}

// bitmapShades are the coverage fractions of Tk's gray stipples.
var bitmapShades = map[string]float64{
	"gray75": 0.75,
	"gray50": 0.5,
	"gray25": 0.25,
	"gray12": 0.125,
}

// bitmapGlyphs stand in for Tk's builtin icon bitmaps.
var bitmapGlyphs = map[string]string{
	"error":     "!",
	"hourglass": "⌛",
	"info":      "i",
	"questhead": "?",
	"question":  "?",
	"warning":   "!",
}

func drawBitmap(buf *bytes.Buffer, s *vdtarget.Shape) {
	box := s.Box()
	fg := svgColor(s.Stroke)
	if !color.IsNone(s.Fill) {
		fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
			num(box.TopLeft.X), num(box.TopLeft.Y), num(box.Width), num(box.Height), s.Fill)
	}
	if shade, ok := bitmapShades[s.Bitmap]; ok {
		fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" fill-opacity="%s"/>`,
			num(box.TopLeft.X), num(box.TopLeft.Y), num(box.Width), num(box.Height), fg, num(shade))
		return
	}
	glyph, ok := bitmapGlyphs[s.Bitmap]
	if !ok {
		glyph = "?"
	}
	c := box.Center()
	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s"/>`,
		num(box.TopLeft.X), num(box.TopLeft.Y), num(box.Width), num(box.Height), fg)
	fmt.Fprintf(buf, `<text x="%s" y="%s" fill="%s" text-anchor="middle" dominant-baseline="central" style="font-size:%spx">%s</text>`,
		num(c.X), num(c.Y), fg, num(box.Height*0.75), svg.EscapeText(glyph))
}

func drawGrid(buf *bytes.Buffer, scene *vdtarget.Scene, left, top, width, height float64) {
	step := scene.GridStep
	if step <= 0 {
		return
	}
	stroke := "#e4e4e4"
	if cat, err := color.LuminanceCategory(scene.Background); err == nil {
		if cat == "dark" || cat == "darker" {
			stroke = "#3f3f3f"
		}
	}
	var d strings.Builder
	for x := math.Ceil(left/step) * step; x <= left+width; x += step {
		fmt.Fprintf(&d, "M %s %s V %s ", num(x), num(top), num(top+height))
	}
	for y := math.Ceil(top/step) * step; y <= top+height; y += step {
		fmt.Fprintf(&d, "M %s %s H %s ", num(left), num(y), num(left+width))
	}
	fmt.Fprintf(buf, `<path class="grid" d="%s" stroke="%s" stroke-width="1" fill="none"/>`,
		strings.TrimRight(d.String(), " "), stroke)
}

func drawSelection(buf *bytes.Buffer, s *vdtarget.Shape, editPoints bool) {
	var handles []vdhandles.Handle
	if editPoints {
		handles = vdhandles.VertexHandles(s)
	} else {
		handles = vdhandles.ForShape(s)
	}
	if len(handles) == 0 {
		return
	}

	stroke := selectionColor
	if !color.IsNone(s.Fill) {
		if darker, err := color.Darken(s.Fill); err == nil {
			stroke = darker
		}
	}

	if !s.IsPointList() {
		geom := s.Geometry()
		corners := geo.RotatePoints(geom.BoundingBox().Corners(), geom.Center(), s.Rotation)
		points := make([]string, len(corners))
		for i, p := range corners {
			points[i] = num(p.X) + "," + num(p.Y)
		}
		fmt.Fprintf(buf, `<polygon class="selection" points="%s" fill="none" stroke="%s" stroke-dasharray="4 2"/>`,
			strings.Join(points, " "), stroke)
	}

	half := vdhandles.Size / 2
	for _, h := range handles {
		if h.Kind == vdhandles.Rotate {
			fmt.Fprintf(buf, `<circle class="handle" cx="%s" cy="%s" r="%s" fill="#ffffff" stroke="%s"/>`,
				num(h.Point.X), num(h.Point.Y), num(half), stroke)
			continue
		}
		fmt.Fprintf(buf, `<rect class="handle" x="%s" y="%s" width="%s" height="%s" fill="#ffffff" stroke="%s"/>`,
			num(h.Point.X-half), num(h.Point.Y-half), num(vdhandles.Size), num(vdhandles.Size), stroke)
	}
}

// paint renders the fill/stroke attribute triple. SVG understands "none"
// natively, so the sentinel passes straight through.
func paint(fill string, s *vdtarget.Shape) string {
	return fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="%s"`,
		svgColor(fill), svgColor(s.Stroke), num(s.StrokeWidth))
}

func svgColor(c string) string {
	if color.IsNone(c) {
		return color.None
	}
	return c
}

func fontFamilyCSS(f vdfonts.Font) string {
	if f.Family == vdfonts.GoMono {
		return string(f.Family) + ",monospace"
	}
	return string(f.Family) + ",sans-serif"
}

func num(f float64) string {
	return fmt.Sprintf("%v", math.Round(f*1000)/1000)
}
