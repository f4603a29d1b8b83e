// Package anchor models the 9-point anchor grid and text justification used
// to place text blocks: the anchor names which point of the block sits at the
// shape's stored position.
package anchor

import (
	"github.com/vecdraw/vd/lib/geo"
)

type Anchor int8

const (
	Center Anchor = iota

	North
	South
	East
	West

	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// FromString accepts the compass spellings used on the wire. Unknown strings
// fall back to Center.
func FromString(s string) Anchor {
	switch s {
	case "n":
		return North
	case "s":
		return South
	case "e":
		return East
	case "w":
		return West
	case "ne":
		return NorthEast
	case "nw":
		return NorthWest
	case "se":
		return SouthEast
	case "sw":
		return SouthWest
	case "center", "":
		return Center
	}
	return Center
}

func (a Anchor) String() string {
	switch a {
	case North:
		return "n"
	case South:
		return "s"
	case East:
		return "e"
	case West:
		return "w"
	case NorthEast:
		return "ne"
	case NorthWest:
		return "nw"
	case SouthEast:
		return "se"
	case SouthWest:
		return "sw"
	case Center:
		return "center"
	}
	return "center"
}

func (a Anchor) IsNorth() bool {
	return a == North || a == NorthEast || a == NorthWest
}

func (a Anchor) IsSouth() bool {
	return a == South || a == SouthEast || a == SouthWest
}

func (a Anchor) IsEast() bool {
	return a == East || a == NorthEast || a == SouthEast
}

func (a Anchor) IsWest() bool {
	return a == West || a == NorthWest || a == SouthWest
}

// BoxAt returns the box of a width x height block whose anchor point is
// placed at p.
func (a Anchor) BoxAt(p *geo.Point, width, height float64) *geo.Box {
	x := p.X
	switch {
	case a.IsEast():
		x -= width
	case a.IsWest():
		// stored position is already the left edge
	default:
		x -= width / 2
	}

	y := p.Y
	switch {
	case a.IsSouth():
		y -= height
	case a.IsNorth():
		// stored position is already the top edge
	default:
		y -= height / 2
	}

	return geo.NewBox(geo.NewPoint(x, y), width, height)
}

// PointInBox is the inverse of BoxAt: the location of the anchor point for a
// block occupying box.
func (a Anchor) PointInBox(box *geo.Box) *geo.Point {
	x := box.TopLeft.X
	switch {
	case a.IsEast():
		x += box.Width
	case a.IsWest():
	default:
		x += box.Width / 2
	}

	y := box.TopLeft.Y
	switch {
	case a.IsSouth():
		y += box.Height
	case a.IsNorth():
	default:
		y += box.Height / 2
	}

	return geo.NewPoint(x, y)
}

type Justify int8

const (
	JustifyLeft Justify = iota
	JustifyCenter
	JustifyRight
)

func JustifyFromString(s string) Justify {
	switch s {
	case "center":
		return JustifyCenter
	case "right":
		return JustifyRight
	}
	return JustifyLeft
}

func (j Justify) String() string {
	switch j {
	case JustifyCenter:
		return "center"
	case JustifyRight:
		return "right"
	}
	return "left"
}

// LineX positions a line of lineWidth within a block of blockWidth starting
// at blockX.
func (j Justify) LineX(blockX, blockWidth, lineWidth float64) float64 {
	switch j {
	case JustifyCenter:
		return blockX + (blockWidth-lineWidth)/2
	case JustifyRight:
		return blockX + blockWidth - lineWidth
	}
	return blockX
}
