package vdtarget

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/vecdraw/vd/lib/anchor"
	"github.com/vecdraw/vd/lib/color"
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/shape"
	"github.com/vecdraw/vd/lib/textmeasure"
	"github.com/vecdraw/vd/vdrenderers/vdfonts"
)

const (
	DEFAULT_WIDTH  = 800
	DEFAULT_HEIGHT = 600

	DEFAULT_GRID_STEP = 10

	BG_COLOR = "#ffffff"
	FG_COLOR = "#000000"
)

// ErrShapeNotFound reports a shape ID that is not in the scene.
var ErrShapeNotFound = errors.New("shape not found")

const (
	StateNormal   = "normal"
	StateHidden   = "hidden"
	StateDisabled = "disabled"
)

type Scene struct {
	Name       string  `json:"name"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Background string  `json:"background"`

	GridStep float64 `json:"gridStep,omitempty"`
	SnapOn   bool    `json:"snapOn,omitempty"`

	Shapes []*Shape `json:"shapes"`
}

func NewScene() *Scene {
	return &Scene{
		Width:      DEFAULT_WIDTH,
		Height:     DEFAULT_HEIGHT,
		Background: BG_COLOR,
		GridStep:   DEFAULT_GRID_STEP,
	}
}

// Parse decodes a scene and normalizes it so downstream geometry never sees
// out-of-range fields.
func Parse(b []byte) (*Scene, error) {
	var scene Scene
	if err := json.Unmarshal(b, &scene); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	scene.Normalize()
	return &scene, nil
}

func (sc *Scene) Bytes() ([]byte, error) {
	return json.MarshalIndent(sc, "", "  ")
}

// Normalize applies defaults and clamps every shape's fields into their valid
// ranges.
func (sc *Scene) Normalize() {
	if sc.Width <= 0 {
		sc.Width = DEFAULT_WIDTH
	}
	if sc.Height <= 0 {
		sc.Height = DEFAULT_HEIGHT
	}
	if sc.Background == "" {
		sc.Background = BG_COLOR
	}
	if sc.GridStep <= 0 {
		sc.GridStep = DEFAULT_GRID_STEP
	}
	for _, s := range sc.Shapes {
		s.Normalize()
	}
}

func (sc *Scene) ShapeByID(id string) (*Shape, error) {
	for _, s := range sc.Shapes {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("shape %q: %w", id, ErrShapeNotFound)
}

// AddShape appends the shape, assigning an ID and name when missing. The
// shape list is replaced rather than grown in place so earlier snapshots stay
// valid.
func (sc *Scene) AddShape(s *Shape) {
	if s.ID == "" {
		s.ID = NewShapeID()
	}
	sc.EnsureName(s)
	shapes := make([]*Shape, 0, len(sc.Shapes)+1)
	shapes = append(shapes, sc.Shapes...)
	shapes = append(shapes, s)
	sc.Shapes = shapes
}

// ReplaceShape swaps in the shape with the matching ID, building a new list.
func (sc *Scene) ReplaceShape(s *Shape) error {
	for i, other := range sc.Shapes {
		if other.ID == s.ID {
			shapes := make([]*Shape, len(sc.Shapes))
			copy(shapes, sc.Shapes)
			shapes[i] = s
			sc.Shapes = shapes
			return nil
		}
	}
	return fmt.Errorf("replacing shape %q: %w", s.ID, ErrShapeNotFound)
}

func (sc *Scene) RemoveShape(id string) error {
	for i, other := range sc.Shapes {
		if other.ID == id {
			shapes := make([]*Shape, 0, len(sc.Shapes)-1)
			shapes = append(shapes, sc.Shapes[:i]...)
			shapes = append(shapes, sc.Shapes[i+1:]...)
			sc.Shapes = shapes
			return nil
		}
	}
	return fmt.Errorf("removing shape %q: %w", id, ErrShapeNotFound)
}

// EnsureName assigns "type-N" names to unnamed shapes, counting per type.
func (sc *Scene) EnsureName(s *Shape) {
	if s.Name != "" {
		return
	}
	n := 1
	for _, other := range sc.Shapes {
		if other.Type == s.Type {
			n++
		}
	}
	s.Name = fmt.Sprintf("%s-%d", s.Type, n)
}

func (sc *Scene) CloneShapes() []*Shape {
	shapes := make([]*Shape, len(sc.Shapes))
	for i, s := range sc.Shapes {
		shapes[i] = s.Clone()
	}
	return shapes
}

func (sc *Scene) Clone() *Scene {
	clone := *sc
	clone.Shapes = sc.CloneShapes()
	return &clone
}

// ZSorted returns the shapes in paint order. The sort is stable so shapes
// sharing a z-index keep insertion order.
func (sc *Scene) ZSorted() []*Shape {
	shapes := make([]*Shape, len(sc.Shapes))
	copy(shapes, sc.Shapes)
	sort.SliceStable(shapes, func(i, j int) bool {
		return shapes[i].ZIndex < shapes[j].ZIndex
	})
	return shapes
}

// BoundingBox unions the visual boxes of all visible shapes, padded by half
// their stroke widths. Empty scenes return nil.
func (sc *Scene) BoundingBox() *geo.Box {
	var box *geo.Box
	for _, s := range sc.Shapes {
		if !s.Visible() {
			continue
		}
		visual := s.Geometry().VisualBox()
		if visual == nil {
			continue
		}
		box = box.Union(visual.Expand(math.Ceil(s.StrokeWidth / 2)))
	}
	return box
}

func NewShapeID() string {
	return uuid.NewString()
}

type Shape struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Type string `json:"type"`

	// Corner-anchored shapes position by Pos/Width/Height.
	Pos    geo.Point `json:"pos"`
	Width  float64   `json:"width,omitempty"`
	Height float64   `json:"height,omitempty"`

	// Center-anchored shapes (polygon, star, bitmap) position by Center plus
	// radii.
	Center      *geo.Point `json:"center,omitempty"`
	Radius      float64    `json:"radius,omitempty"`
	InnerRadius float64    `json:"innerRadius,omitempty"`
	Sides       int        `json:"sides,omitempty"`

	ApexOffset  float64 `json:"apexOffset,omitempty"`
	LeftOffset  float64 `json:"leftOffset,omitempty"`
	RightOffset float64 `json:"rightOffset,omitempty"`
	Skew        float64 `json:"skew,omitempty"`

	FlipH bool `json:"flipH,omitempty"`
	FlipV bool `json:"flipV,omitempty"`

	// Arc angles in degrees, counter-clockwise positive.
	Start    float64 `json:"start,omitempty"`
	Extent   float64 `json:"extent,omitempty"`
	ArcStyle string  `json:"arcStyle,omitempty"`

	// Point-list shapes own their points; order defines the path.
	Points geo.Points `json:"points,omitempty"`
	Closed bool       `json:"closed,omitempty"`
	Smooth bool       `json:"smooth,omitempty"`

	Rotation float64 `json:"rotation,omitempty"`

	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
	Fill        string  `json:"fill"`

	AspectLocked bool `json:"aspectLocked,omitempty"`

	State string `json:"state,omitempty"`

	Text

	// URL is the source of an image shape. Bitmap names a builtin stamp.
	URL    string `json:"url,omitempty"`
	Bitmap string `json:"bitmap,omitempty"`

	ZIndex int `json:"zIndex"`
}

type Text struct {
	Label      string  `json:"label,omitempty"`
	FontSize   int     `json:"fontSize,omitempty"`
	FontFamily string  `json:"fontFamily,omitempty"`
	Bold       bool    `json:"bold,omitempty"`
	Italic     bool    `json:"italic,omitempty"`
	Anchor     string  `json:"anchor,omitempty"`
	Justify    string  `json:"justify,omitempty"`
	WrapWidth  float64 `json:"wrapWidth,omitempty"`
}

func BaseShape() *Shape {
	return &Shape{
		ID:          NewShapeID(),
		Type:        ShapeRectangle,
		Stroke:      FG_COLOR,
		StrokeWidth: 1,
		Fill:        color.None,
		State:       StateNormal,
		Text: Text{
			FontSize:   vdfonts.DEFAULT_FONT_SIZE,
			FontFamily: string(vdfonts.GoRegular),
		},
	}
}

func (s *Shape) GetID() string {
	return s.ID
}

func (s *Shape) GetZIndex() int {
	return s.ZIndex
}

func (s *Shape) SetType(t string) {
	t = strings.ToLower(t)
	// accepted alias
	if t == "freehand" {
		t = ShapePencil
	}
	s.Type = t
}

func (s *Shape) Visible() bool {
	return s.State != StateHidden
}

func (s *Shape) Interactable() bool {
	return s.State != StateHidden && s.State != StateDisabled
}

func (s *Shape) IsPointList() bool {
	switch s.Type {
	case ShapeLine, ShapePencil, ShapePolyline, ShapeBezier:
		return true
	}
	return false
}

func (s *Shape) IsCenterAnchored() bool {
	switch s.Type {
	case ShapePolygon, ShapeStar, ShapeBitmap:
		return true
	}
	return false
}

// Clone returns a deep copy. Point lists and the center must not alias the
// original or live previews would write through to committed shapes.
func (s *Shape) Clone() *Shape {
	clone := *s
	clone.Points = s.Points.Copy()
	if s.Center != nil {
		clone.Center = s.Center.Copy()
	}
	return &clone
}

// Normalize clamps fields into their valid ranges after decoding or editing.
func (s *Shape) Normalize() {
	if s.ID == "" {
		s.ID = NewShapeID()
	}
	s.SetType(s.Type)
	if s.State == "" {
		s.State = StateNormal
	}
	s.Width = math.Max(0, s.Width)
	s.Height = math.Max(0, s.Height)
	s.Radius = math.Max(0, s.Radius)
	s.InnerRadius = math.Min(math.Max(0, s.InnerRadius), s.Radius)
	if s.Type == ShapePolygon || s.Type == ShapeStar {
		if s.Sides < 3 {
			s.Sides = 3
		}
	}
	s.Rotation = geo.NormalizeDegrees(s.Rotation)
	if s.StrokeWidth < 0 {
		s.StrokeWidth = 0
	}
	if s.Stroke == "" {
		s.Stroke = FG_COLOR
	}
	if s.Fill == "" {
		s.Fill = color.None
	}
	if s.Type == ShapeText && s.FontSize <= 0 {
		s.FontSize = vdfonts.DEFAULT_FONT_SIZE
	}
}

// CenterPoint is the shape's own center when it has one, otherwise the box
// center.
func (s *Shape) CenterPoint() *geo.Point {
	if s.Center != nil {
		return s.Center.Copy()
	}
	return s.Box().Center()
}

// Box is the shape's anchoring box in its unrotated frame. Center-anchored
// shapes derive the enclosing square, point lists their point bounds.
func (s *Shape) Box() *geo.Box {
	switch {
	case s.IsPointList():
		if box := s.Points.BoundingBox(); box != nil {
			return box
		}
		return geo.NewBox(geo.NewPoint(s.Pos.X, s.Pos.Y), 0, 0)
	case s.Type == ShapeBitmap:
		center := s.Center
		if center == nil {
			center = geo.NewPoint(s.Pos.X, s.Pos.Y)
		}
		half := float64(shape.BitmapSize) / 2
		return geo.NewBox(geo.NewPoint(center.X-half, center.Y-half), shape.BitmapSize, shape.BitmapSize)
	case s.IsCenterAnchored():
		center := s.Center
		if center == nil {
			center = geo.NewPoint(s.Pos.X, s.Pos.Y)
		}
		return geo.NewBox(geo.NewPoint(center.X-s.Radius, center.Y-s.Radius), 2*s.Radius, 2*s.Radius)
	case s.Type == ShapeText:
		// Pos is the anchor point of the measured block, not its corner.
		return anchor.FromString(s.Anchor).BoxAt(geo.NewPoint(s.Pos.X, s.Pos.Y), s.Width, s.Height)
	default:
		return geo.NewBox(geo.NewPoint(s.Pos.X, s.Pos.Y), s.Width, s.Height)
	}
}

// Geometry realizes the shape's geometric form with rotation applied.
func (s *Shape) Geometry() shape.Shape {
	var geom shape.Shape
	switch s.Type {
	case ShapeTriangle:
		geom = shape.NewTriangle(s.Box(), s.ApexOffset)
	case ShapeRightTriangle:
		geom = shape.NewRightTriangle(s.Box(), s.FlipH, s.FlipV)
	case ShapeTrapezoid:
		geom = shape.NewTrapezoid(s.Box(), s.LeftOffset, s.RightOffset)
	case ShapeParallelogram:
		geom = shape.NewParallelogram(s.Box(), s.Skew)
	case ShapePolygon:
		geom = shape.NewPolygon(s.CenterPoint(), s.Radius, s.Sides, s.FlipH, s.FlipV)
	case ShapeStar:
		geom = shape.NewStar(s.CenterPoint(), s.Radius, s.InnerRadius, s.Sides, s.FlipH, s.FlipV)
	case ShapeArc:
		geom = shape.NewArc(s.Box(), s.Start, s.Extent, s.ArcStyle)
	case ShapeLine:
		geom = shape.NewLine(s.Points.Copy())
	case ShapePencil:
		geom = shape.NewPencil(s.Points.Copy())
	case ShapePolyline:
		geom = shape.NewPolyline(s.Points.Copy(), s.Closed, s.Smooth)
	case ShapeBezier:
		geom = shape.NewBezier(s.Points.Copy(), s.Closed)
	case ShapeBitmap:
		geom = shape.NewBitmap(s.CenterPoint())
	default:
		geom = shape.NewShape(SHAPE_TO_GEOMETRY_TYPE[s.Type], s.Box())
	}
	geom.SetRotation(s.Rotation)
	return geom
}

// Font resolves the shape's text font, falling back to package defaults.
func (s *Shape) Font() vdfonts.Font {
	family := vdfonts.FontFamily(s.FontFamily)
	if family == "" {
		family = vdfonts.GoRegular
	}
	size := s.FontSize
	if size <= 0 {
		size = vdfonts.DEFAULT_FONT_SIZE
	}
	return family.Font(size, vdfonts.Style(s.Bold, s.Italic))
}

// Remeasure refreshes a text shape's Width/Height to the measured extents of
// its laid-out block. Call it whenever text attributes change; other kinds
// are untouched.
func (s *Shape) Remeasure(ruler *textmeasure.Ruler) {
	if s.Type != ShapeText {
		return
	}
	layout := ruler.Layout(s.Font(), s.Label, s.WrapWidth, &s.Pos,
		anchor.FromString(s.Anchor), anchor.JustifyFromString(s.Justify))
	s.Width = layout.Box.Width
	s.Height = layout.Box.Height
}

const (
	ShapeRectangle     = "rectangle"
	ShapeEllipse       = "ellipse"
	ShapeLine          = "line"
	ShapePencil        = "pencil"
	ShapePolyline      = "polyline"
	ShapeBezier        = "bezier"
	ShapeTriangle      = "triangle"
	ShapeRightTriangle = "right-triangle"
	ShapeRhombus       = "rhombus"
	ShapeTrapezoid     = "trapezoid"
	ShapeParallelogram = "parallelogram"
	ShapePolygon       = "polygon"
	ShapeStar          = "star"
	ShapeArc           = "arc"
	ShapeText          = "text"
	ShapeImage         = "image"
	ShapeBitmap        = "bitmap"
)

var Shapes = []string{
	ShapeRectangle,
	ShapeEllipse,
	ShapeLine,
	ShapePencil,
	ShapePolyline,
	ShapeBezier,
	ShapeTriangle,
	ShapeRightTriangle,
	ShapeRhombus,
	ShapeTrapezoid,
	ShapeParallelogram,
	ShapePolygon,
	ShapeStar,
	ShapeArc,
	ShapeText,
	ShapeImage,
	ShapeBitmap,
}

func IsShape(s string) bool {
	if s == "" {
		// Default shape is rectangle.
		return true
	}
	for _, s2 := range Shapes {
		if strings.EqualFold(s, s2) {
			return true
		}
	}
	return false
}

var SHAPE_TO_GEOMETRY_TYPE = map[string]string{
	"":                 shape.RECTANGLE_TYPE,
	ShapeRectangle:     shape.RECTANGLE_TYPE,
	ShapeEllipse:       shape.ELLIPSE_TYPE,
	ShapeLine:          shape.LINE_TYPE,
	ShapePencil:        shape.PENCIL_TYPE,
	ShapePolyline:      shape.POLYLINE_TYPE,
	ShapeBezier:        shape.BEZIER_TYPE,
	ShapeTriangle:      shape.TRIANGLE_TYPE,
	ShapeRightTriangle: shape.RIGHT_TRIANGLE_TYPE,
	ShapeRhombus:       shape.RHOMBUS_TYPE,
	ShapeTrapezoid:     shape.TRAPEZOID_TYPE,
	ShapeParallelogram: shape.PARALLELOGRAM_TYPE,
	ShapePolygon:       shape.POLYGON_TYPE,
	ShapeStar:          shape.STAR_TYPE,
	ShapeArc:           shape.ARC_TYPE,
	ShapeText:          shape.TEXT_TYPE,
	ShapeImage:         shape.IMAGE_TYPE,
	ShapeBitmap:        shape.BITMAP_TYPE,
}

var GEOMETRY_TYPE_TO_SHAPE map[string]string

func init() {
	GEOMETRY_TYPE_TO_SHAPE = make(map[string]string, len(SHAPE_TO_GEOMETRY_TYPE))
	for k, v := range SHAPE_TO_GEOMETRY_TYPE {
		GEOMETRY_TYPE_TO_SHAPE[v] = k
	}
	// RECTANGLE_TYPE is in the map twice, keep the named key
	GEOMETRY_TYPE_TO_SHAPE[shape.RECTANGLE_TYPE] = ShapeRectangle
}

// Builtin bitmap stamp names, matching Tk's predefined bitmaps.
var Bitmaps = []string{
	"error",
	"gray75",
	"gray50",
	"gray25",
	"gray12",
	"hourglass",
	"info",
	"questhead",
	"question",
	"warning",
}

func IsBitmap(name string) bool {
	for _, b := range Bitmaps {
		if b == name {
			return true
		}
	}
	return false
}
