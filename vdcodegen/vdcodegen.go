// Package vdcodegen turns a scene into Python source driving a Tk canvas.
// Output is deterministic for a given scene, so generated files diff cleanly
// across runs. The geometry comes from lib/shape; this package only decides
// which create_* call each shape maps to and prints it.
package vdcodegen

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vecdraw/vd/lib/color"
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/shape"
	"github.com/vecdraw/vd/vdtarget"
)

const indent = "    "

// Generate emits a standalone Python program that recreates the scene on a
// tkinter Canvas. Shapes are emitted in paint order.
func Generate(scene *vdtarget.Scene) ([]byte, error) {
	if scene == nil {
		return nil, errors.New("codegen: nil scene")
	}

	buf := &bytes.Buffer{}
	buf.WriteString("# Generated by vd. Edits will be overwritten.\n")
	buf.WriteString("import tkinter as tk\n\n\n")

	buf.WriteString("def draw(canvas):\n")
	wrote := false
	for i, s := range scene.ZSorted() {
		if writeShape(buf, s, i) {
			wrote = true
		}
	}
	if !wrote {
		buf.WriteString(indent + "pass\n")
	}

	title := scene.Name
	if title == "" {
		title = "vd"
	}
	buf.WriteString("\n\n")
	buf.WriteString("def main():\n")
	buf.WriteString(indent + "root = tk.Tk()\n")
	fmt.Fprintf(buf, indent+"root.title(%s)\n", pyString(title))
	fmt.Fprintf(buf, indent+"canvas = tk.Canvas(root, width=%s, height=%s, background=%s, highlightthickness=0)\n",
		num(scene.Width), num(scene.Height), pyString(scene.Background))
	buf.WriteString(indent + `canvas.pack(fill="both", expand=True)` + "\n")
	buf.WriteString(indent + "draw(canvas)\n")
	buf.WriteString(indent + "root.mainloop()\n")
	buf.WriteString("\n\n")
	buf.WriteString("if __name__ == \"__main__\":\n")
	buf.WriteString(indent + "main()\n")

	return buf.Bytes(), nil
}

func writeShape(buf *bytes.Buffer, s *vdtarget.Shape, index int) bool {
	if s == nil {
		return false
	}
	switch s.Type {
	case vdtarget.ShapeText:
		return writeText(buf, s)
	case vdtarget.ShapeImage:
		return writeImage(buf, s, index)
	case vdtarget.ShapeBitmap:
		return writeBitmap(buf, s)
	}
	if s.IsPointList() {
		return writePath(buf, s)
	}
	return writePrimitive(buf, s)
}

func writePrimitive(buf *bytes.Buffer, s *vdtarget.Shape) bool {
	// Tk canvas items cannot rotate, so rotated primitives flatten to their
	// rotated outline.
	if s.Rotation != 0 {
		return writeRotated(buf, s)
	}

	switch s.Type {
	case vdtarget.ShapeRectangle:
		writeCall(buf, s, "create_rectangle", boxCoords(s.Box()), fillPaint(s))
	case vdtarget.ShapeEllipse:
		writeCall(buf, s, "create_oval", boxCoords(s.Box()), fillPaint(s))
	case vdtarget.ShapeArc:
		return writeArc(buf, s)
	default:
		vertices := s.Geometry().Vertices()
		if len(vertices) < 2 {
			return false
		}
		writeCall(buf, s, "create_polygon", coords(vertices), fillPaint(s))
	}
	return true
}

func writeRotated(buf *bytes.Buffer, s *vdtarget.Shape) bool {
	geom := s.Geometry()
	vertices := geo.RotatePoints(geom.Vertices(), geom.Center(), s.Rotation)
	if len(vertices) < 2 {
		return false
	}
	// an open arc stays a stroked path, everything else closes
	if s.Type == vdtarget.ShapeArc && s.ArcStyle == shape.ARC_STYLE_ARC {
		writeCall(buf, s, "create_line", coords(vertices), linePaint(s))
	} else {
		writeCall(buf, s, "create_polygon", coords(vertices), fillPaint(s))
	}
	return true
}

func writeArc(buf *bytes.Buffer, s *vdtarget.Shape) bool {
	// Tk reduces extent modulo 360, so a full sweep would draw as nothing.
	if s.Extent >= 360 || s.Extent <= -360 {
		if s.ArcStyle == shape.ARC_STYLE_ARC {
			// an unfilled ring: the arc's stroke becomes the oval's outline
			opts := []string{
				`fill=""`,
				"outline=" + pyString(tkColor(s.Stroke)),
				"width=" + num(s.StrokeWidth),
			}
			writeCall(buf, s, "create_oval", boxCoords(s.Box()), opts)
		} else {
			writeCall(buf, s, "create_oval", boxCoords(s.Box()), fillPaint(s))
		}
		return true
	}

	style := s.ArcStyle
	if style == "" {
		style = shape.ARC_STYLE_PIESLICE
	}
	opts := []string{
		"start=" + num(s.Start),
		"extent=" + num(s.Extent),
		"style=" + pyString(style),
	}
	writeCall(buf, s, "create_arc", boxCoords(s.Box()), append(opts, fillPaint(s)...))
	return true
}

func writePath(buf *bytes.Buffer, s *vdtarget.Shape) bool {
	pts := s.Points
	if len(pts) < 2 {
		return false
	}
	if s.Rotation != 0 {
		pts = geo.RotatePoints(pts, s.Geometry().Center(), s.Rotation)
	}

	smooth := s.Smooth || s.Type == vdtarget.ShapeBezier
	var opts []string
	closed := s.Closed && len(pts) >= 3
	if closed {
		opts = fillPaint(s)
	} else {
		opts = linePaint(s)
	}
	if smooth {
		// splinesteps matches the 8-segment flattening used on the editor side
		opts = append(opts, "smooth=True", "splinesteps=8")
	}

	if closed {
		writeCall(buf, s, "create_polygon", coords(pts), opts)
	} else {
		writeCall(buf, s, "create_line", coords(pts), opts)
	}
	return true
}

func writeText(buf *bytes.Buffer, s *vdtarget.Shape) bool {
	if s.Label == "" {
		return false
	}
	opts := []string{
		"text=" + pyString(s.Label),
		"font=" + fontTuple(s),
		"fill=" + pyString(tkColor(s.Stroke)),
		"anchor=" + pyString(tkAnchor(s.Anchor)),
		"justify=" + pyString(tkJustify(s.Justify)),
	}
	if s.WrapWidth > 0 {
		opts = append(opts, "width="+num(s.WrapWidth))
	}
	pos := &s.Pos
	if s.Rotation != 0 {
		// Tk rotates text about its anchor point, everything else here
		// rotates about the block center. Moving the anchor to where
		// center-rotation puts it makes the two agree; Tk angles run
		// counter-clockwise.
		pos = geo.RotatePoint(pos, s.Box().Center(), s.Rotation)
		opts = append(opts, "angle="+num(geo.NormalizeDegrees(-s.Rotation)))
	}
	writeCall(buf, s, "create_text", pointCoords(pos), opts)
	return true
}

func writeImage(buf *bytes.Buffer, s *vdtarget.Shape, index int) bool {
	if s.URL == "" {
		return false
	}
	name := fmt.Sprintf("image_%d", index)
	writeComment(buf, s)
	// held on the canvas so the reference outlives draw()
	fmt.Fprintf(buf, indent+"canvas.%s = tk.PhotoImage(file=%s)\n", name, pyString(s.URL))
	opts := []string{fmt.Sprintf("image=canvas.%s", name), `anchor="nw"`}
	opts = appendState(opts, s)
	fmt.Fprintf(buf, indent+"canvas.create_image(%s, %s)\n", pointCoords(&s.Pos), strings.Join(opts, ", "))
	return true
}

func writeBitmap(buf *bytes.Buffer, s *vdtarget.Shape) bool {
	bitmap := s.Bitmap
	if bitmap == "" {
		bitmap = "gray50"
	}
	opts := []string{
		"bitmap=" + pyString(bitmap),
		"foreground=" + pyString(tkColor(s.Stroke)),
	}
	if !color.IsNone(s.Fill) {
		opts = append(opts, "background="+pyString(s.Fill))
	}
	writeCall(buf, s, "create_bitmap", pointCoords(s.CenterPoint()), opts)
	return true
}

func writeCall(buf *bytes.Buffer, s *vdtarget.Shape, call, coordinates string, opts []string) {
	writeComment(buf, s)
	opts = appendState(opts, s)
	fmt.Fprintf(buf, indent+"canvas.%s(%s, %s)\n", call, coordinates, strings.Join(opts, ", "))
}

func writeComment(buf *bytes.Buffer, s *vdtarget.Shape) {
	label := s.Name
	if label == "" {
		label = s.Type
	}
	fmt.Fprintf(buf, indent+"# %s\n", label)
}

// fillPaint paints a closed item. Tk defaults paint inconsistently across
// item types (a polygon's fill is black where a rectangle's is empty), so
// fill and outline are always written out.
func fillPaint(s *vdtarget.Shape) []string {
	return []string{
		"fill=" + pyString(tkColor(s.Fill)),
		"outline=" + pyString(tkColor(s.Stroke)),
		"width=" + num(s.StrokeWidth),
	}
}

// linePaint paints an open path, whose stroke color Tk takes as fill.
func linePaint(s *vdtarget.Shape) []string {
	return []string{
		"fill=" + pyString(tkColor(s.Stroke)),
		"width=" + num(s.StrokeWidth),
	}
}

func appendState(opts []string, s *vdtarget.Shape) []string {
	switch s.State {
	case vdtarget.StateHidden, vdtarget.StateDisabled:
		return append(opts, "state="+pyString(s.State))
	}
	return opts
}

// tkColor maps the "none" sentinel to Tk's empty color, which disables the
// paint pass.
func tkColor(c string) string {
	if color.IsNone(c) {
		return ""
	}
	return c
}

func tkAnchor(a string) string {
	if a == "" {
		return "center"
	}
	return a
}

func tkJustify(j string) string {
	if j == "" {
		return "left"
	}
	return j
}

func fontTuple(s *vdtarget.Shape) string {
	f := s.Font()
	var styles []string
	if s.Bold {
		styles = append(styles, "bold")
	}
	if s.Italic {
		styles = append(styles, "italic")
	}
	// negative Tk font sizes select pixels, matching the editor's units
	if len(styles) == 0 {
		return fmt.Sprintf("(%s, %d)", pyString(string(f.Family)), -f.Size)
	}
	return fmt.Sprintf("(%s, %d, %s)", pyString(string(f.Family)), -f.Size, pyString(strings.Join(styles, " ")))
}

func coords(ps geo.Points) string {
	parts := make([]string, 0, 2*len(ps))
	for _, p := range ps {
		parts = append(parts, num(p.X), num(p.Y))
	}
	return strings.Join(parts, ", ")
}

func pointCoords(p *geo.Point) string {
	return num(p.X) + ", " + num(p.Y)
}

func boxCoords(box *geo.Box) string {
	return strings.Join([]string{
		num(box.TopLeft.X),
		num(box.TopLeft.Y),
		num(box.TopLeft.X + box.Width),
		num(box.TopLeft.Y + box.Height),
	}, ", ")
}

func num(f float64) string {
	// rounded rather than truncated so coordinates that land a hair under an
	// integer after rotation math still print as the integer
	return fmt.Sprintf("%v", math.Round(f*1000)/1000)
}

// pyString quotes for Python. Go's escaping rules are a compatible subset of
// Python's for double-quoted strings.
func pyString(s string) string {
	return strconv.Quote(s)
}
