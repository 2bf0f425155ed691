// SPDX-License-Identifier: GPL-2.0-or-later

// Package chroma keys a background color out of a surface and composites a
// soft halo around the pixels that remain.
package chroma

import (
	gmath "gohalo/math"
	"gohalo/surface"
)

type point struct {
	x, y int
}

// Apply rewrites the frame strip frameIndex of s in place. Every pixel whose
// rgb equals background's rgb (alpha is ignored on both sides) becomes fully
// transparent, rgb preserved. When haloWidth and opacityStep are both
// positive, every remaining pixel then raises the alpha of its square
// neighborhood: a neighbor at L1 distance d from the source gains
// opacityStep/(1+2*haloWidth-d), clamped at opaque. Already opaque neighbors
// are left alone, so overlapping halos only ever push alpha up toward the
// ceiling and the order the sources are visited in cannot change the result.
//
// Out of range numFrames/frameIndex are clamped, pixels outside the strip
// are never touched. A nil surface panics.
func Apply(s surface.Pixels, background surface.Color, numFrames, frameIndex, haloWidth, opacityStep int) {
	if s == nil {
		panic("chroma: nil surface")
	}
	if haloWidth < 0 {
		haloWidth = 0
	}
	top, bottom := surface.Frame(s, numFrames, frameIndex)
	w := s.Width()

	var opaqueXYs []point
	for y := top; y < bottom; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := s.At(x, y)
			if r == background.R && g == background.G && b == background.B {
				s.Set(x, y, r, g, b, surface.Transparent)
			} else {
				s.Set(x, y, r, g, b, a)
				if haloWidth > 0 {
					opaqueXYs = append(opaqueXYs, point{x, y})
				}
			}
		}
	}

	if opacityStep <= 0 {
		return
	}
	span := haloWidth
	for _, o := range opaqueXYs {
		xStart := gmath.Max(0, o.x-span)
		xFinish := gmath.Min(w, o.x+span+1)
		yStart := gmath.Max(top, o.y-span)
		yFinish := gmath.Min(bottom, o.y+span+1)
		for x := xStart; x < xFinish; x++ {
			for y := yStart; y < yFinish; y++ {
				// >= 1 inside the neighborhood by construction
				divisor := 1 + span*2 - gmath.Abs(o.x-x) - gmath.Abs(o.y-y)

				r, g, b, a := s.At(x, y)
				if a != surface.Opaque {
					boosted := gmath.Min(int(surface.Opaque), int(a)+opacityStep/divisor)
					s.Set(x, y, r, g, b, uint8(boosted))
				}
			}
		}
	}
}

// Key is pure chroma keying, no halo.
func Key(s surface.Pixels, background surface.Color) {
	Apply(s, background, 1, 0, 0, 0)
}

// KeyWithHalo keys the whole surface as a single frame, the form the
// renderer uses for static images.
func KeyWithHalo(s surface.Pixels, background surface.Color, haloWidth, opacityStep int) {
	Apply(s, background, 1, 0, haloWidth, opacityStep)
}
