// SPDX-License-Identifier: GPL-2.0-or-later

package surface

import (
	"gohalo/palette"
)

// Indexed is an 8bit paletted surface. Decoded pixels are opaque except at
// the transparent index, the format carries no per-pixel alpha.
type Indexed struct {
	pix         []uint8
	w, h        int
	pal         *palette.Palette
	transparent int // palette index decoded as transparent, -1 for none
}

func NewIndexed(w, h int, pal *palette.Palette) *Indexed {
	if w < 0 || h < 0 {
		panic("surface: negative size")
	}
	if pal == nil {
		pal = palette.Grey()
	}
	return &Indexed{
		pix:         make([]uint8, w*h),
		w:           w,
		h:           h,
		pal:         pal,
		transparent: -1,
	}
}

func (s *Indexed) Width() int  { return s.w }
func (s *Indexed) Height() int { return s.h }

func (s *Indexed) Palette() *palette.Palette {
	return s.pal
}

func (s *Indexed) SetTransparent(index int) {
	s.transparent = index
}

func (s *Indexed) TransparentIndex() (int, bool) {
	return s.transparent, s.transparent >= 0
}

func (s *Indexed) At(x, y int) (r, g, b, a uint8) {
	checkBounds(s, x, y)
	i := int(s.pix[y*s.w+x])
	r, g, b, a = s.pal.Color(i)
	if i == s.transparent {
		a = Transparent
	}
	return r, g, b, a
}

// Set stores the palette index closest to (r,g,b). A transparent write goes
// to the transparent index when one is configured, the rgb is lost then.
func (s *Indexed) Set(x, y int, r, g, b, a uint8) {
	checkBounds(s, x, y)
	if a == Transparent && s.transparent >= 0 {
		s.pix[y*s.w+x] = uint8(s.transparent)
		return
	}
	i := s.pal.Exact(r, g, b)
	if i < 0 {
		i = s.pal.Nearest(r, g, b)
	}
	s.pix[y*s.w+x] = uint8(i)
}

func (s *Indexed) IndexAt(x, y int) uint8 {
	checkBounds(s, x, y)
	return s.pix[y*s.w+x]
}

func (s *Indexed) SetIndex(x, y int, index uint8) {
	checkBounds(s, x, y)
	s.pix[y*s.w+x] = index
}
