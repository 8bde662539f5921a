package render

import "image/color"

// DeadColor is painted for empty cells.
var DeadColor = color.RGBA{A: 0xff}

// fillRectRGBA writes c into the w*h block at (x, y) of an RGBA buffer that is
// stride pixels wide and rows tall. The block is clipped to the buffer.
func fillRectRGBA(buf []byte, stride, rows, x, y, w, h int, c color.RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, stride), min(y+h, rows)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for py := y0; py < y1; py++ {
		base := (py*stride + x0) * 4
		for px := x0; px < x1; px++ {
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
			base += 4
		}
	}
}

// GradientColor returns the live-cell colour for (x, y) on a w*h grid: red
// grows down the rows, blue grows across the columns and green fades out
// across them.
func GradientColor(x, y, w, h int) color.RGBA {
	if w <= 0 || h <= 0 {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return color.RGBA{
		R: uint8(y * 0xff / h),
		G: uint8((w - x) * 0xb0 / w),
		B: uint8(x * 0xff / w),
		A: 0xff,
	}
}

// BuildGradient precomputes GradientColor for every cell of a w*h grid.
func BuildGradient(w, h int) []color.RGBA {
	palette := make([]color.RGBA, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			palette[y*w+x] = GradientColor(x, y, w, h)
		}
	}
	return palette
}
