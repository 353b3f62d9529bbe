package display

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Glyph metrics of the built-in face at size 1.
const (
	GlyphW = 7
	GlyphH = 13
)

var face = basicfont.Face7x13

// TextWidth returns the width in pixels of s drawn at the given size.
func TextWidth(s string, size int) int {
	return font.MeasureString(face, s).Ceil() * max(size, 1)
}

// TextHeight returns the line height in pixels at the given size.
func TextHeight(size int) int {
	return GlyphH * max(size, 1)
}

// Text draws s with its top-left corner at (x, y). Size 2 doubles every
// glyph pixel in both directions.
func (c *Canvas) Text(x, y int, s string, size int, ink Ink) {
	if s == "" {
		return
	}
	size = max(size, 1)

	w := font.MeasureString(face, s).Ceil()
	mask := image.NewAlpha(image.Rect(0, 0, w, GlyphH))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.NewUniform(color.Alpha{A: 0xff}),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)

	for my := 0; my < GlyphH; my++ {
		for mx := 0; mx < w; mx++ {
			if mask.AlphaAt(mx, my).A < 0x80 {
				continue
			}
			for sy := 0; sy < size; sy++ {
				for sx := 0; sx < size; sx++ {
					c.Pixel(x+mx*size+sx, y+my*size+sy, ink)
				}
			}
		}
	}
}

// TextCentered draws s centered horizontally at row y.
func (c *Canvas) TextCentered(y int, s string, size int, ink Ink) {
	c.Text((c.width-TextWidth(s, size))/2, y, s, size, ink)
}
