package textmeasure

import (
	"math"

	"github.com/vecdraw/vd/lib/anchor"
	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/vdrenderers/vdfonts"
)

// PlacedLine is one laid-out line of a text block. X and Y are the top-left
// corner of the line's slot; add Ascent to Y to get the baseline.
type PlacedLine struct {
	Text  string
	X     float64
	Y     float64
	Width float64
}

type TextLayout struct {
	Lines      []PlacedLine
	Box        *geo.Box
	LineHeight float64
	Ascent     float64
}

// Layout wraps text (when wrapWidth > 0), then places the block so its
// anchor point lands on pos, with each line justified inside the block.
// Every consumer of text geometry (rendering, export, hit-testing) goes
// through this so they agree on where text is.
func (t *Ruler) Layout(font vdfonts.Font, text string, wrapWidth float64, pos *geo.Point, anc anchor.Anchor, justify anchor.Justify) *TextLayout {
	lines := t.WrapText(font, text, wrapWidth)
	lineHeight := t.LineHeight(font)

	widths := make([]float64, len(lines))
	blockW := 0.0
	for i, line := range lines {
		w, _ := t.MeasurePrecise(font, line)
		w = t.scaleUnicode(w, font, line)
		widths[i] = w
		blockW = math.Max(blockW, w)
	}
	blockH := float64(len(lines)) * lineHeight

	box := anc.BoxAt(pos, blockW, blockH)

	placed := make([]PlacedLine, len(lines))
	for i, line := range lines {
		placed[i] = PlacedLine{
			Text:  line,
			X:     justify.LineX(box.TopLeft.X, blockW, widths[i]),
			Y:     box.TopLeft.Y + float64(i)*lineHeight,
			Width: widths[i],
		}
	}

	return &TextLayout{
		Lines:      placed,
		Box:        box,
		LineHeight: lineHeight,
		Ascent:     t.Ascent(font),
	}
}
