// SPDX-License-Identifier: GPL-2.0-or-later

package surface

import (
	gmath "gohalo/math"
)

func Fill(s Pixels, r, g, b, a uint8) {
	FillRect(s, 0, 0, s.Width(), s.Height(), r, g, b, a)
}

// FillRect writes (r,g,b,a) to every pixel of the rect clipped to s.
func FillRect(s Pixels, x, y, w, h int, r, g, b, a uint8) {
	x0 := gmath.Max(0, x)
	y0 := gmath.Max(0, y)
	x1 := gmath.Min(s.Width(), x+w)
	y1 := gmath.Min(s.Height(), y+h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.Set(px, py, r, g, b, a)
		}
	}
}

// Draw copies all of src onto dst with its top left corner at (x,y).
func Draw(dst, src Pixels, x, y int) {
	DrawSubRect(dst, src, x, y, 0, 0, src.Width(), src.Height())
}

// DrawSubRect copies the source rect (rx,ry,rw,rh) onto dst at (x,y). A rect
// hanging off the source shifts the destination accordingly, like a blit
// whose source was clipped first.
func DrawSubRect(dst, src Pixels, x, y, rx, ry, rw, rh int) {
	if rx < 0 {
		x += -rx
		rw += rx
		rx = 0
	}
	if ry < 0 {
		y += -ry
		rh += ry
		ry = 0
	}
	rw = gmath.Min(rw, src.Width()-rx)
	rh = gmath.Min(rh, src.Height()-ry)
	for j := 0; j < rh; j++ {
		dy := y + j
		if dy < 0 || dy >= dst.Height() {
			continue
		}
		for i := 0; i < rw; i++ {
			dx := x + i
			if dx < 0 || dx >= dst.Width() {
				continue
			}
			r, g, b, a := src.At(rx+i, ry+j)
			dst.Set(dx, dy, r, g, b, a)
		}
	}
}

// DrawSubRectInverted is DrawSubRect with the source rows in reverse order.
func DrawSubRectInverted(dst, src Pixels, x, y, rx, ry, rw, rh int) {
	for j := 0; j < rh; j++ {
		DrawSubRect(dst, src, x, y+rh-j-1, rx, ry+j, rw, 1)
	}
}

// Highlight inverts the rgb of every pixel, alpha is kept.
func Highlight(s Pixels) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			r, g, b, a := s.At(x, y)
			s.Set(x, y, 0xff-r, 0xff-g, 0xff-b, a)
		}
	}
}
