package display

import "strings"

// quadrants maps a 2x2 pixel cell to a block glyph. Bit 0 is top-left,
// bit 1 top-right, bit 2 bottom-left, bit 3 bottom-right.
var quadrants = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// Blocks renders the canvas with quadrant block glyphs, one character per
// 2x2 pixels. A 128x64 canvas becomes 64 columns by 32 rows.
func (c *Canvas) Blocks() string {
	cols := (c.width + 1) / 2
	rows := (c.height + 1) / 2

	var sb strings.Builder
	sb.Grow(rows * (cols*3 + 1))
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		y := row * 2
		for col := 0; col < cols; col++ {
			x := col * 2
			var q int
			if c.Lit(x, y) {
				q |= 1
			}
			if c.Lit(x+1, y) {
				q |= 2
			}
			if c.Lit(x, y+1) {
				q |= 4
			}
			if c.Lit(x+1, y+1) {
				q |= 8
			}
			sb.WriteRune(quadrants[q])
		}
	}
	return sb.String()
}

// BlockSize returns the columns and rows Blocks produces.
func (c *Canvas) BlockSize() (int, int) {
	return (c.width + 1) / 2, (c.height + 1) / 2
}
