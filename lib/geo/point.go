package geo

import (
	"fmt"
	"math"
	"strings"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p1 *Point) Equals(p2 *Point) bool {
	if p1 == nil {
		return p2 == nil
	} else if p2 == nil {
		return false
	}
	return (p1.X == p2.X) && (p1.Y == p2.Y)
}

func (p1 *Point) Compare(p2 *Point) int {
	xCompare := Sign(p1.X - p2.X)
	if xCompare == 0 {
		return Sign(p1.Y - p2.Y)
	}
	return xCompare
}

func (p *Point) Copy() *Point {
	return &Point{X: p.X, Y: p.Y}
}

func (p *Point) ToString() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

func (p *Point) FormattedCoordinates() string {
	return fmt.Sprintf("%d,%d", int(p.X), int(p.Y))
}

// point t% of the way between a and b
func (a *Point) Interpolate(b *Point, t float64) *Point {
	return NewPoint(
		a.X*(1.0-t)+b.X*t,
		a.Y*(1.0-t)+b.Y*t,
	)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b *Point) *Point {
	return a.Interpolate(b, 0.5)
}

func (p *Point) DistanceTo(other *Point) float64 {
	return EuclideanDistance(p.X, p.Y, other.X, other.Y)
}

// https://stackoverflow.com/questions/849211/shortest-distance-between-a-point-and-a-line-segment
func (p *Point) DistanceToLine(p1, p2 *Point) float64 {
	a := p.X - p1.X
	b := p.Y - p1.Y
	c := p2.X - p1.X
	d := p2.Y - p1.Y

	dot := (a * c) + (b * d)
	lenSq := (c * c) + (d * d)

	param := -1.0

	if lenSq != 0 {
		param = dot / lenSq
	}

	var xx float64
	var yy float64

	if param < 0.0 {
		xx = p1.X
		yy = p1.Y
	} else if param > 1.0 {
		xx = p2.X
		yy = p2.Y
	} else {
		xx = p1.X + (param * c)
		yy = p1.Y + (param * d)
	}

	dx := p.X - xx
	dy := p.Y - yy

	return math.Sqrt((dx * dx) + (dy * dy))
}

// Moves the given point by Vector
func (start *Point) AddVector(v Vector) *Point {
	return start.ToVector().Add(v).ToPoint()
}

// Creates a Vector of the size between start and endpoint, pointing to endpoint
func (start *Point) VectorTo(endpoint *Point) Vector {
	return endpoint.ToVector().Minus(start.ToVector())
}

// Creates a Vector pointing to point
func (endpoint *Point) ToVector() Vector {
	return []float64{endpoint.X, endpoint.Y}
}

type Points []*Point

// Equals compares pointwise in order. Order matters: a path through the same
// coordinates in a different order is a different path.
func (ps Points) Equals(other Points) bool {
	if len(ps) != len(other) {
		return false
	}
	for i := range ps {
		if !ps[i].Equals(other[i]) {
			return false
		}
	}
	return true
}

func (ps Points) Copy() Points {
	if ps == nil {
		return nil
	}
	out := make(Points, len(ps))
	for i, p := range ps {
		out[i] = p.Copy()
	}
	return out
}

// BoundingBox returns the axis-aligned box enclosing every point, or nil when
// there are no points.
func (ps Points) BoundingBox() *Box {
	if len(ps) == 0 {
		return nil
	}
	minX, minY := ps[0].X, ps[0].Y
	maxX, maxY := ps[0].X, ps[0].Y
	for _, p := range ps[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return NewBox(NewPoint(minX, minY), maxX-minX, maxY-minY)
}

func (ps Points) ToString() string {
	strs := make([]string, 0, len(ps))
	for _, p := range ps {
		strs = append(strs, p.ToString())
	}
	return strings.Join(strs, ", ")
}
