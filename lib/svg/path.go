package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/vecdraw/vd/lib/geo"
)

// SvgPathContext accumulates path commands in shape-local coordinates,
// translated by TopLeft and scaled by ScaleX/ScaleY as they are added.
type SvgPathContext struct {
	Commands []string
	Start    *geo.Point
	Current  *geo.Point
	TopLeft  *geo.Point
	ScaleX   float64
	ScaleY   float64
}

func chopPrecision(f float64) float64 {
	return math.Round(f*10000) / 10000
}

func NewSVGPathContext(tl *geo.Point, sx, sy float64) *SvgPathContext {
	return &SvgPathContext{TopLeft: tl.Copy(), ScaleX: sx, ScaleY: sy}
}

func (c *SvgPathContext) Relative(base *geo.Point, dx, dy float64) *geo.Point {
	return geo.NewPoint(chopPrecision(base.X+c.ScaleX*dx), chopPrecision(base.Y+c.ScaleY*dy))
}

func (c *SvgPathContext) Absolute(x, y float64) *geo.Point {
	return c.Relative(c.TopLeft, x, y)
}

func (c *SvgPathContext) StartAt(p *geo.Point) {
	c.Start = p
	c.Commands = append(c.Commands, fmt.Sprintf("M %v %v", p.X, p.Y))
	c.Current = p.Copy()
}

func (c *SvgPathContext) Z() {
	c.Commands = append(c.Commands, "Z")
	c.Current = c.Start.Copy()
}

func (c *SvgPathContext) L(isLowerCase bool, x, y float64) {
	var endPoint *geo.Point
	if isLowerCase {
		endPoint = c.Relative(c.Current, x, y)
	} else {
		endPoint = c.Absolute(x, y)
	}
	c.Commands = append(c.Commands, fmt.Sprintf("L %v %v", endPoint.X, endPoint.Y))
	c.Current = endPoint.Copy()
}

func (c *SvgPathContext) C(isLowerCase bool, x1, y1, x2, y2, x3, y3 float64) {
	p := func(x, y float64) *geo.Point {
		if isLowerCase {
			return c.Relative(c.Current, x, y)
		}
		return c.Absolute(x, y)
	}
	p1, p2, p3 := p(x1, y1), p(x2, y2), p(x3, y3)
	c.Commands = append(c.Commands, fmt.Sprintf(
		"C %v %v %v %v %v %v",
		p1.X, p1.Y,
		p2.X, p2.Y,
		p3.X, p3.Y,
	))
	c.Current = p3.Copy()
}

// Q adds a quadratic curve through the given control point.
func (c *SvgPathContext) Q(isLowerCase bool, x1, y1, x2, y2 float64) {
	p := func(x, y float64) *geo.Point {
		if isLowerCase {
			return c.Relative(c.Current, x, y)
		}
		return c.Absolute(x, y)
	}
	control, endPoint := p(x1, y1), p(x2, y2)
	c.Commands = append(c.Commands, fmt.Sprintf(
		"Q %v %v %v %v",
		control.X, control.Y,
		endPoint.X, endPoint.Y,
	))
	c.Current = endPoint.Copy()
}

// A adds an elliptical arc to the absolute endpoint (x, y). Radii scale with
// the context; rotation is the x-axis rotation in degrees.
func (c *SvgPathContext) A(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) {
	endPoint := c.Absolute(x, y)
	large, swp := 0, 0
	if largeArc {
		large = 1
	}
	if sweep {
		swp = 1
	}
	c.Commands = append(c.Commands, fmt.Sprintf(
		"A %v %v %v %d %d %v %v",
		chopPrecision(math.Abs(c.ScaleX)*rx), chopPrecision(math.Abs(c.ScaleY)*ry), rotation,
		large, swp,
		endPoint.X, endPoint.Y,
	))
	c.Current = endPoint.Copy()
}

func (c *SvgPathContext) H(isLowerCase bool, x float64) {
	var endPoint *geo.Point
	if isLowerCase {
		endPoint = c.Relative(c.Current, x, 0)
	} else {
		endPoint = c.Absolute(x, 0)
		endPoint.Y = c.Current.Y
	}
	c.Commands = append(c.Commands, fmt.Sprintf("H %v", endPoint.X))
	c.Current = endPoint.Copy()
}

func (c *SvgPathContext) V(isLowerCase bool, y float64) {
	var endPoint *geo.Point
	if isLowerCase {
		endPoint = c.Relative(c.Current, 0, y)
	} else {
		endPoint = c.Absolute(0, y)
		endPoint.X = c.Current.X
	}
	c.Commands = append(c.Commands, fmt.Sprintf("V %v", endPoint.Y))
	c.Current = endPoint.Copy()
}

func (c *SvgPathContext) PathData() string {
	return strings.Join(c.Commands, " ")
}
