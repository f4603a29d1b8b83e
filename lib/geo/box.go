package geo

import (
	"fmt"
	"math"
)

type Box struct {
	TopLeft *Point
	Width   float64
	Height  float64
}

func NewBox(tl *Point, width, height float64) *Box {
	return &Box{
		TopLeft: tl,
		Width:   width,
		Height:  height,
	}
}

// NewBoxFromPoints builds the box spanning two opposite corners given in any
// order, so dragging up-left and down-right produce the same box.
func NewBoxFromPoints(a, b *Point) *Box {
	tl := NewPoint(math.Min(a.X, b.X), math.Min(a.Y, b.Y))
	return NewBox(tl, math.Abs(a.X-b.X), math.Abs(a.Y-b.Y))
}

func (b *Box) Copy() *Box {
	if b == nil {
		return nil
	}
	return NewBox(b.TopLeft.Copy(), b.Width, b.Height)
}

func (b *Box) Center() *Point {
	return NewPoint(b.TopLeft.X+b.Width/2, b.TopLeft.Y+b.Height/2)
}

// Corners returns top-left, top-right, bottom-right, bottom-left in order.
func (b *Box) Corners() Points {
	tl := b.TopLeft
	return Points{
		tl.Copy(),
		NewPoint(tl.X+b.Width, tl.Y),
		NewPoint(tl.X+b.Width, tl.Y+b.Height),
		NewPoint(tl.X, tl.Y+b.Height),
	}
}

func (b *Box) Contains(p *Point) bool {
	return p.X >= b.TopLeft.X && p.X <= b.TopLeft.X+b.Width &&
		p.Y >= b.TopLeft.Y && p.Y <= b.TopLeft.Y+b.Height
}

func (b *Box) Union(other *Box) *Box {
	if b == nil {
		return other.Copy()
	}
	if other == nil {
		return b.Copy()
	}
	minX := math.Min(b.TopLeft.X, other.TopLeft.X)
	minY := math.Min(b.TopLeft.Y, other.TopLeft.Y)
	maxX := math.Max(b.TopLeft.X+b.Width, other.TopLeft.X+other.Width)
	maxY := math.Max(b.TopLeft.Y+b.Height, other.TopLeft.Y+other.Height)
	return NewBox(NewPoint(minX, minY), maxX-minX, maxY-minY)
}

// Expand grows the box by pad on every side. Negative pad shrinks it.
func (b *Box) Expand(pad float64) *Box {
	return NewBox(NewPoint(b.TopLeft.X-pad, b.TopLeft.Y-pad), b.Width+2*pad, b.Height+2*pad)
}

func (b *Box) ToString() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("{TopLeft: %s, Width: %.0f, Height: %.0f}", b.TopLeft.ToString(), b.Width, b.Height)
}
