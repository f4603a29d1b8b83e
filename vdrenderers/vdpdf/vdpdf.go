// vdpdf exports scenes to PDF. Shapes are drawn with PDF vector operators
// rather than rasterized, so exports stay sharp at any zoom.
package vdpdf

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/vecdraw/vd/lib/anchor"
	"github.com/vecdraw/vd/lib/color"
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/shape"
	"github.com/vecdraw/vd/lib/textmeasure"
	"github.com/vecdraw/vd/vdrenderers/vdfonts"
	"github.com/vecdraw/vd/vdtarget"
)

// pdfFonts lists the faces registered with every document. GoMono reuses its
// regular face for bold and italic, matching vdfonts.FontFaces.
var pdfFonts = []struct {
	family   vdfonts.FontFamily
	style    vdfonts.FontStyle
	pdfStyle string
}{
	{vdfonts.GoRegular, vdfonts.FONT_STYLE_REGULAR, ""},
	{vdfonts.GoRegular, vdfonts.FONT_STYLE_BOLD, "B"},
	{vdfonts.GoRegular, vdfonts.FONT_STYLE_ITALIC, "I"},
	{vdfonts.GoMono, vdfonts.FONT_STYLE_REGULAR, ""},
	{vdfonts.GoMono, vdfonts.FONT_STYLE_BOLD, "B"},
	{vdfonts.GoMono, vdfonts.FONT_STYLE_ITALIC, "I"},
}

// Render produces a single-page PDF the size of the scene, in points. Shapes
// are drawn in paint order; hidden shapes are skipped.
func Render(scene *vdtarget.Scene) ([]byte, error) {
	if scene == nil {
		return nil, errors.New("render: nil scene")
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: scene.Width, Ht: scene.Height},
	})
	for _, f := range pdfFonts {
		if face, ok := vdfonts.Face(f.family.Font(0, f.style)); ok {
			pdf.AddUTF8FontFromBytes(pdfFamily(f.family), f.pdfStyle, face)
		}
	}
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	if scene.Name != "" {
		pdf.SetTitle(scene.Name, true)
	}
	pdf.AddPage()

	if !color.IsNone(scene.Background) {
		if r, g, b, err := color.ToRGB(scene.Background); err == nil {
			pdf.SetFillColor(r, g, b)
			pdf.Rect(0, 0, scene.Width, scene.Height, "F")
		}
	}

	// parsing fonts into a ruler is expensive, skip it for scenes without text
	var ruler *textmeasure.Ruler
	for _, s := range scene.Shapes {
		if s.Type == vdtarget.ShapeText && s.Visible() && s.Label != "" {
			r, err := textmeasure.NewRuler()
			if err != nil {
				return nil, fmt.Errorf("exporting pdf: %w", err)
			}
			ruler = r
			break
		}
	}

	for _, s := range scene.ZSorted() {
		if !s.Visible() {
			continue
		}
		drawShape(pdf, ruler, s)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("exporting pdf: %w", pdf.Error())
	}
	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("exporting pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawShape(pdf *gofpdf.Fpdf, ruler *textmeasure.Ruler, s *vdtarget.Shape) {
	if s.State == vdtarget.StateDisabled {
		pdf.SetAlpha(0.5, "Normal")
	}
	if s.Rotation != 0 {
		c := s.Geometry().Center()
		pdf.TransformBegin()
		// gofpdf transforms rotate counter-clockwise
		pdf.TransformRotate(-s.Rotation, c.X, c.Y)
	}

	paintShape(pdf, ruler, s)

	if s.Rotation != 0 {
		pdf.TransformEnd()
	}
	if s.State == vdtarget.StateDisabled {
		pdf.SetAlpha(1, "Normal")
	}
}

func paintShape(pdf *gofpdf.Fpdf, ruler *textmeasure.Ruler, s *vdtarget.Shape) {
	switch s.Type {
	case vdtarget.ShapeText:
		drawText(pdf, ruler, s)
		return
	case vdtarget.ShapeImage:
		drawImage(pdf, s)
		return
	case vdtarget.ShapeBitmap:
		drawBitmap(pdf, s)
		return
	}

	fill := s.Fill
	switch {
	case s.IsPointList() && !s.Closed:
		// open paths have no interior
		fill = color.None
	case s.Type == vdtarget.ShapeArc && s.ArcStyle == shape.ARC_STYLE_ARC:
		fill = color.None
	}
	style := setPaint(pdf, fill, s)
	if style == "" {
		return
	}

	switch {
	case s.Type == vdtarget.ShapeRectangle:
		box := s.Box()
		pdf.Rect(box.TopLeft.X, box.TopLeft.Y, box.Width, box.Height, style)
	case s.Type == vdtarget.ShapeEllipse:
		box := s.Box()
		c := box.Center()
		pdf.Ellipse(c.X, c.Y, box.Width/2, box.Height/2, 0, style)
	case s.Type == vdtarget.ShapeArc:
		drawArc(pdf, s, style)
	case s.IsPointList():
		drawPath(pdf, s, style)
	default:
		drawPolygon(pdf, s, style)
	}
}

func drawPolygon(pdf *gofpdf.Fpdf, s *vdtarget.Shape, style string) {
	vertices := s.Geometry().Vertices()
	if len(vertices) < 2 {
		return
	}
	points := make([]gofpdf.PointType, len(vertices))
	for i, v := range vertices {
		points[i] = gofpdf.PointType{X: v.X, Y: v.Y}
	}
	pdf.Polygon(points, style)
}

func drawPath(pdf *gofpdf.Fpdf, s *vdtarget.Shape, style string) {
	points := s.Points
	if len(points) < 2 {
		return
	}
	closed := s.Closed && len(points) >= 3
	smooth := s.Smooth || s.Type == vdtarget.ShapeBezier

	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	segments := []geo.QuadSegment(nil)
	if smooth {
		segments = geo.SmoothSegments(points, closed)
	}
	if len(segments) > 0 {
		pdf.MoveTo(segments[0].Start.X, segments[0].Start.Y)
		for _, seg := range segments {
			pdf.CurveTo(seg.Control.X, seg.Control.Y, seg.End.X, seg.End.Y)
		}
	} else {
		pdf.MoveTo(points[0].X, points[0].Y)
		for _, p := range points[1:] {
			pdf.LineTo(p.X, p.Y)
		}
	}
	if closed {
		pdf.ClosePath()
	}
	pdf.DrawPath(style)

	pdf.SetLineCapStyle("butt")
	pdf.SetLineJoinStyle("miter")
}

func drawArc(pdf *gofpdf.Fpdf, s *vdtarget.Shape, style string) {
	box := s.Box()
	c := box.Center()
	rx, ry := box.Width/2, box.Height/2

	if math.Abs(s.Extent) >= 360 {
		pdf.Ellipse(c.X, c.Y, rx, ry, 0, style)
		return
	}

	a, b := s.Start, s.Start+s.Extent
	if b < a {
		a, b = b, a
	}
	switch s.ArcStyle {
	case shape.ARC_STYLE_ARC:
		pdf.Arc(c.X, c.Y, rx, ry, 0, a, b, style)
	case shape.ARC_STYLE_CHORD:
		pdf.MoveTo(c.X+rx*math.Cos(geo.Radians(a)), c.Y-ry*math.Sin(geo.Radians(a)))
		pdf.ArcTo(c.X, c.Y, rx, ry, 0, a, b)
		pdf.ClosePath()
		pdf.DrawPath(style)
	default:
		// pieslice, also the unset default
		pdf.MoveTo(c.X, c.Y)
		pdf.ArcTo(c.X, c.Y, rx, ry, 0, a, b)
		pdf.ClosePath()
		pdf.DrawPath(style)
	}
}

func drawText(pdf *gofpdf.Fpdf, ruler *textmeasure.Ruler, s *vdtarget.Shape) {
	if ruler == nil || s.Label == "" {
		return
	}
	font := s.Font()
	layout := ruler.Layout(font, s.Label, s.WrapWidth, &s.Pos,
		anchor.FromString(s.Anchor), anchor.JustifyFromString(s.Justify))

	var styleStr string
	switch font.Style {
	case vdfonts.FONT_STYLE_BOLD:
		styleStr = "B"
	case vdfonts.FONT_STYLE_ITALIC:
		styleStr = "I"
	}
	pdf.SetFont(pdfFamily(font.Family), styleStr, float64(font.Size))
	if r, g, b, err := color.ToRGB(s.Stroke); err == nil {
		pdf.SetTextColor(r, g, b)
	}
	for _, line := range layout.Lines {
		pdf.Text(line.X, line.Y+layout.Ascent, line.Text)
	}
}

func drawImage(pdf *gofpdf.Fpdf, s *vdtarget.Shape) {
	if s.URL == "" || s.Width <= 0 || s.Height <= 0 {
		return
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(s.URL)), ".")
	if ext == "jpeg" {
		ext = "jpg"
	}
	data, err := os.ReadFile(s.URL)
	if err != nil || (ext != "png" && ext != "jpg" && ext != "gif") {
		// unreadable sources keep their footprint as an outline
		if r, g, b, cerr := color.ToRGB(s.Stroke); cerr == nil {
			pdf.SetDrawColor(r, g, b)
			pdf.SetLineWidth(s.StrokeWidth)
			pdf.Rect(s.Pos.X, s.Pos.Y, s.Width, s.Height, "D")
		}
		return
	}
	opt := gofpdf.ImageOptions{ImageType: ext}
	pdf.RegisterImageOptionsReader(s.ID, opt, bytes.NewReader(data))
	pdf.ImageOptions(s.ID, s.Pos.X, s.Pos.Y, s.Width, s.Height, false, opt, 0, "")
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

func drawBitmap(pdf *gofpdf.Fpdf, s *vdtarget.Shape) {
	box := s.Box()
	fr, fg, fb, err := color.ToRGB(s.Stroke)
	if err != nil {
		fr, fg, fb = 0, 0, 0
	}
	if !color.IsNone(s.Fill) {
		if r, g, b, err := color.ToRGB(s.Fill); err == nil {
			pdf.SetFillColor(r, g, b)
			pdf.Rect(box.TopLeft.X, box.TopLeft.Y, box.Width, box.Height, "F")
		}
	}
	if shade, ok := bitmapShades[s.Bitmap]; ok {
		pdf.SetFillColor(fr, fg, fb)
		pdf.SetAlpha(shade, "Normal")
		pdf.Rect(box.TopLeft.X, box.TopLeft.Y, box.Width, box.Height, "F")
		pdf.SetAlpha(1, "Normal")
		return
	}
	glyph, ok := bitmapGlyphs[s.Bitmap]
	if !ok {
		glyph = "?"
	}
	pdf.SetDrawColor(fr, fg, fb)
	pdf.SetLineWidth(1)
	pdf.Rect(box.TopLeft.X, box.TopLeft.Y, box.Width, box.Height, "D")
	pdf.SetFont(pdfFamily(vdfonts.GoRegular), "B", box.Height*0.75)
	pdf.SetTextColor(fr, fg, fb)
	pdf.SetXY(box.TopLeft.X, box.TopLeft.Y)
	pdf.CellFormat(box.Width, box.Height, glyph, "", 0, "CM", false, 0, "")
}

// setPaint programs fill and stroke state and returns the gofpdf draw style
// string, empty when there is nothing to paint.
func setPaint(pdf *gofpdf.Fpdf, fill string, s *vdtarget.Shape) string {
	var style string
	if !color.IsNone(fill) {
		if r, g, b, err := color.ToRGB(fill); err == nil {
			pdf.SetFillColor(r, g, b)
			style += "F"
		}
	}
	if !color.IsNone(s.Stroke) && s.StrokeWidth > 0 {
		if r, g, b, err := color.ToRGB(s.Stroke); err == nil {
			pdf.SetDrawColor(r, g, b)
			pdf.SetLineWidth(s.StrokeWidth)
			style += "D"
		}
	}
	return style
}

func pdfFamily(f vdfonts.FontFamily) string {
	return strings.ToLower(string(f))
}
