// SPDX-License-Identifier: GPL-2.0-or-later

package surface

import (
	"image"
)

// RGBA is a direct color surface. The pixel buffer has the layout of
// image.NRGBA with stride 4*width, so conversions share memory.
type RGBA struct {
	pix  []uint8
	w, h int
}

func NewRGBA(w, h int) *RGBA {
	if w < 0 || h < 0 {
		panic("surface: negative size")
	}
	return &RGBA{
		pix: make([]uint8, w*h*4),
		w:   w,
		h:   h,
	}
}

// FromImage wraps img. The pixel data is shared when the image is not a
// sub-image, otherwise it is copied row by row.
func FromImage(img *image.NRGBA) *RGBA {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	s := &RGBA{w: w, h: h}
	if img.Stride == 4*w && img.Rect.Min == (image.Point{}) {
		s.pix = img.Pix[:w*h*4]
		return s
	}
	s.pix = make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		o := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		copy(s.pix[y*w*4:(y+1)*w*4], img.Pix[o:o+w*4])
	}
	return s
}

func (s *RGBA) Width() int  { return s.w }
func (s *RGBA) Height() int { return s.h }

func (s *RGBA) At(x, y int) (r, g, b, a uint8) {
	checkBounds(s, x, y)
	i := (y*s.w + x) * 4
	return s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3]
}

func (s *RGBA) Set(x, y int, r, g, b, a uint8) {
	checkBounds(s, x, y)
	i := (y*s.w + x) * 4
	s.pix[i] = r
	s.pix[i+1] = g
	s.pix[i+2] = b
	s.pix[i+3] = a
}

// Image returns an image.NRGBA view sharing the pixel buffer.
func (s *RGBA) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    s.pix,
		Stride: 4 * s.w,
		Rect:   image.Rect(0, 0, s.w, s.h),
	}
}

// Pix exposes the raw rgba buffer, e.g. for texture upload.
func (s *RGBA) Pix() []uint8 {
	return s.pix
}
