// Package display provides the monochrome frame buffer the console draws
// into. A Canvas is a grid of on/off pixels; frontends decide how to show it.
package display

import (
	"image"
	"image/color"
	"strings"

	"github.com/vovakirdan/pocket-console/internal/core"
)

// Ink selects how a primitive affects the pixels it covers.
type Ink uint8

const (
	On     Ink = iota // Light the pixel
	Off               // Clear the pixel
	Invert            // Flip the pixel
)

// Canvas is a monochrome pixel buffer. It implements draw.Image so the
// standard image tooling and font drawers can target it directly.
type Canvas struct {
	width  int
	height int
	pix    []bool
}

// NewCanvas creates a cleared canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]bool, width*height),
	}
}

// NewScreenCanvas creates a canvas the size of the console display.
func NewScreenCanvas() *Canvas {
	return NewCanvas(core.ScreenW, core.ScreenH)
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Clear turns every pixel off.
func (c *Canvas) Clear() {
	clear(c.pix)
}

// Pixel applies ink to one pixel. Out-of-bounds coordinates are ignored.
func (c *Canvas) Pixel(x, y int, ink Ink) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := y*c.width + x
	switch ink {
	case On:
		c.pix[i] = true
	case Off:
		c.pix[i] = false
	case Invert:
		c.pix[i] = !c.pix[i]
	}
}

// Lit reports whether a pixel is on. Out-of-bounds pixels are off.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return false
	}
	return c.pix[y*c.width+x]
}

// CopyFrom replaces the contents with those of another canvas of the same
// size.
func (c *Canvas) CopyFrom(src *Canvas) {
	if src.width != c.width || src.height != c.height {
		return
	}
	copy(c.pix, src.pix)
}

// Count returns the number of lit pixels.
func (c *Canvas) Count() int {
	n := 0
	for _, p := range c.pix {
		if p {
			n++
		}
	}
	return n
}

// String renders the canvas as text art, one line per pixel row.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow((c.width + 1) * c.height)
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			if c.Lit(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At implements image.Image. Lit pixels are white.
func (c *Canvas) At(x, y int) color.Color {
	if c.Lit(x, y) {
		return color.White
	}
	return color.Black
}

// Set implements draw.Image. Any colour brighter than mid-grey lights the
// pixel.
func (c *Canvas) Set(x, y int, col color.Color) {
	g := color.GrayModel.Convert(col).(color.Gray)
	if g.Y >= 0x80 {
		c.Pixel(x, y, On)
	} else {
		c.Pixel(x, y, Off)
	}
}
