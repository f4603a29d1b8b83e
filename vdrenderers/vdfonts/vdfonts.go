// vdfonts holds the fonts shipped with the editor. Text shapes reference a
// family and style; rulers and exporters resolve them to TTF bytes here.
package vdfonts

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontFamily string
type FontStyle string

type Font struct {
	Family FontFamily
	Style  FontStyle
	Size   int
}

func (f FontFamily) Font(size int, style FontStyle) Font {
	return Font{
		Family: f,
		Style:  style,
		Size:   size,
	}
}

// Sizeless strips the size so the font can key size-agnostic tables like
// FontFaces.
func (f Font) Sizeless() Font {
	f.Size = 0
	return f
}

const (
	FONT_SIZE_XS  = 10
	FONT_SIZE_S   = 12
	FONT_SIZE_M   = 16
	FONT_SIZE_L   = 20
	FONT_SIZE_XL  = 24
	FONT_SIZE_XXL = 32

	DEFAULT_FONT_SIZE = FONT_SIZE_S

	FONT_STYLE_REGULAR FontStyle = "regular"
	FONT_STYLE_BOLD    FontStyle = "bold"
	FONT_STYLE_ITALIC  FontStyle = "italic"

	GoRegular FontFamily = "Go"
	GoMono    FontFamily = "GoMono"
)

var FontSizes = []int{
	FONT_SIZE_XS,
	FONT_SIZE_S,
	FONT_SIZE_M,
	FONT_SIZE_L,
	FONT_SIZE_XL,
	FONT_SIZE_XXL,
}

var FontStyles = []FontStyle{
	FONT_STYLE_REGULAR,
	FONT_STYLE_BOLD,
	FONT_STYLE_ITALIC,
}

var FontFamilies = []FontFamily{
	GoRegular,
	GoMono,
}

// FontFaces maps sizeless fonts to raw TTF bytes. GoMono carries only a
// regular face; bold/italic requests fall back to it.
var FontFaces map[Font][]byte

func init() {
	FontFaces = map[Font][]byte{
		{Family: GoRegular, Style: FONT_STYLE_REGULAR}: goregular.TTF,
		{Family: GoRegular, Style: FONT_STYLE_BOLD}:    gobold.TTF,
		{Family: GoRegular, Style: FONT_STYLE_ITALIC}:  goitalic.TTF,
		{Family: GoMono, Style: FONT_STYLE_REGULAR}:    gomono.TTF,
		{Family: GoMono, Style: FONT_STYLE_BOLD}:       gomono.TTF,
		{Family: GoMono, Style: FONT_STYLE_ITALIC}:     gomono.TTF,
	}
}

// Face resolves a font to its TTF bytes, ignoring size.
func Face(f Font) ([]byte, bool) {
	buf, ok := FontFaces[f.Sizeless()]
	return buf, ok
}

// Style derives the style from bold/italic flags. Bold wins when both are
// set, matching how shapes store the flags.
func Style(bold, italic bool) FontStyle {
	switch {
	case bold:
		return FONT_STYLE_BOLD
	case italic:
		return FONT_STYLE_ITALIC
	}
	return FONT_STYLE_REGULAR
}
