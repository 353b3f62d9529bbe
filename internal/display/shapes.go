package display

import "github.com/vovakirdan/pocket-console/internal/core"

// HLine draws a horizontal line of the given length starting at (x, y).
func (c *Canvas) HLine(x, y, length int, ink Ink) {
	for i := 0; i < length; i++ {
		c.Pixel(x+i, y, ink)
	}
}

// VLine draws a vertical line of the given length starting at (x, y).
func (c *Canvas) VLine(x, y, length int, ink Ink) {
	for i := 0; i < length; i++ {
		c.Pixel(x, y+i, ink)
	}
}

// Line draws a straight line between two points, both included.
func (c *Canvas) Line(x0, y0, x1, y1 int, ink Ink) {
	dx := core.Abs(x1 - x0)
	dy := -core.Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Pixel(x0, y0, ink)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Rect draws the outline of a rectangle. Corners are drawn once so Invert
// ink produces a clean frame.
func (c *Canvas) Rect(r core.Rect, ink Ink) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	c.HLine(r.X, r.Y, r.W, ink)
	if r.H > 1 {
		c.HLine(r.X, r.Bottom()-1, r.W, ink)
	}
	if r.H > 2 {
		c.VLine(r.X, r.Y+1, r.H-2, ink)
		if r.W > 1 {
			c.VLine(r.Right()-1, r.Y+1, r.H-2, ink)
		}
	}
}

// FillRect fills a rectangle.
func (c *Canvas) FillRect(r core.Rect, ink Ink) {
	for y := r.Y; y < r.Bottom(); y++ {
		c.HLine(r.X, y, r.W, ink)
	}
}

// Circle draws the outline of a circle centered on (cx, cy).
func (c *Canvas) Circle(cx, cy, radius int, ink Ink) {
	if radius < 0 {
		return
	}
	if radius == 0 {
		c.Pixel(cx, cy, ink)
		return
	}
	// Octant points repeat on the axes and diagonals; collect them first so
	// Invert ink flips each pixel once.
	seen := make(map[[2]int]struct{}, 8*radius)
	plot := func(x, y int) {
		p := [2]int{x, y}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		c.Pixel(x, y, ink)
	}

	x, y := radius, 0
	d := 1 - radius
	for x >= y {
		plot(cx+x, cy+y)
		plot(cx+y, cy+x)
		plot(cx-y, cy+x)
		plot(cx-x, cy+y)
		plot(cx-x, cy-y)
		plot(cx-y, cy-x)
		plot(cx+y, cy-x)
		plot(cx+x, cy-y)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// FillCircle fills a disc centered on (cx, cy).
func (c *Canvas) FillCircle(cx, cy, radius int, ink Ink) {
	if radius < 0 {
		return
	}
	r2 := radius*radius + radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				c.Pixel(cx+dx, cy+dy, ink)
			}
		}
	}
}
