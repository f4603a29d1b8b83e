package textmeasure

import (
	"strings"

	"github.com/vecdraw/vd/vdrenderers/vdfonts"
)

// WrapText greedily wraps text into lines no wider than maxWidth. Words are
// never broken: a single word wider than maxWidth gets its own overflowing
// line. Explicit newlines always break. maxWidth <= 0 disables wrapping.
func (t *Ruler) WrapText(font vdfonts.Font, text string, maxWidth float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if maxWidth <= 0 {
			lines = append(lines, paragraph)
			continue
		}
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			w, _ := t.MeasurePrecise(font, candidate)
			if w <= maxWidth {
				line = candidate
			} else {
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}
