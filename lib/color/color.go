// Package color handles the stroke and fill color strings carried by shapes.
// A color is any CSS color string, or one of the sentinels below.
package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

const (
	// None disables the paint pass entirely. A "none" stroke draws no outline
	// and a "none" fill draws no interior, which is different from a
	// transparent color that still participates in rendering.
	None = "none"
	// Empty means unset; callers substitute their own default.
	Empty = ""
)

func IsNone(colorString string) bool {
	return colorString == None || colorString == Empty
}

// Validate reports whether the string parses as a CSS color. Sentinels are
// valid.
func Validate(colorString string) error {
	if IsNone(colorString) {
		return nil
	}
	_, err := csscolorparser.Parse(colorString)
	return err
}

// Darken returns the color with its luminance decreased by 10%, in hex form.
// Used for selection outlines drawn over the shape's own fill.
func Darken(colorString string) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return colorful.Hsl(h, s, l-.1).Clamped().Hex(), nil
}

func LuminanceCategory(colorString string) (string, error) {
	l, err := Luminance(colorString)
	if err != nil {
		return "", err
	}

	switch {
	case l >= .88:
		return "bright", nil
	case l >= .55:
		return "normal", nil
	case l >= .30:
		return "dark", nil
	default:
		return "darker", nil
	}
}

func Luminance(colorString string) (float64, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return 0, err
	}

	l := float64(
		float64(0.299)*float64(c.R) +
			float64(0.587)*float64(c.G) +
			float64(0.114)*float64(c.B),
	)
	return l, nil
}

// ToRGB returns the 0-255 components for drawing backends that take numeric
// channels instead of CSS strings.
func ToRGB(colorString string) (r, g, b int, err error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return 0, 0, 0, err
	}
	return int(math.Round(c.R * 255)), int(math.Round(c.G * 255)), int(math.Round(c.B * 255)), nil
}
