// SPDX-License-Identifier: GPL-2.0-or-later

package chroma

import (
	"testing"

	"gohalo/palette"
	"gohalo/surface"
)

var black = surface.Color{R: 0, G: 0, B: 0, A: 255}

func newRow(t *testing.T, colors ...surface.Color) *surface.RGBA {
	t.Helper()
	s := surface.NewRGBA(len(colors), 1)
	for x, c := range colors {
		s.Set(x, 0, c.R, c.G, c.B, c.A)
	}
	return s
}

func alphaAt(t *testing.T, s surface.Pixels, x, y int) uint8 {
	t.Helper()
	_, _, _, a := s.At(x, y)
	return a
}

func clone(s *surface.RGBA) *surface.RGBA {
	c := surface.NewRGBA(s.Width(), s.Height())
	surface.Draw(c, s, 0, 0)
	return c
}

func equal(a, b surface.Pixels) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			ar, ag, ab, aa := a.At(x, y)
			br, bg, bb, ba := b.At(x, y)
			if ar != br || ag != bg || ab != bb || aa != ba {
				return false
			}
		}
	}
	return true
}

var white = surface.Color{R: 255, G: 255, B: 255, A: 255}

func TestConcreteScenario(t *testing.T) {
	s := newRow(t, black, white, white, black)
	Apply(s, black, 1, 0, 1, 100)

	r, g, b, a := s.At(0, 0)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("pixel 0 rgb = %v,%v,%v, rgb must survive keying", r, g, b)
	}
	if a != 50 {
		t.Errorf("pixel 0 alpha = %v, want 50", a)
	}
	if a := alphaAt(t, s, 1, 0); a != 255 {
		t.Errorf("pixel 1 alpha = %v, want 255", a)
	}
	if a := alphaAt(t, s, 2, 0); a != 255 {
		t.Errorf("pixel 2 alpha = %v, want 255", a)
	}
	if a := alphaAt(t, s, 3, 0); a != 50 {
		t.Errorf("pixel 3 alpha = %v, want 50", a)
	}
}

func TestKeyIdempotent(t *testing.T) {
	s := newRow(t, black, white, black, white)
	Key(s, black)
	once := clone(s)
	Key(s, black)
	if !equal(s, once) {
		t.Error("keying twice differs from keying once")
	}
}

func TestHaloDisabled(t *testing.T) {
	orig := newRow(t, black, white, white, black)

	keyed := clone(orig)
	Key(keyed, black)

	zeroWidth := clone(orig)
	Apply(zeroWidth, black, 1, 0, 0, 100)
	if !equal(zeroWidth, keyed) {
		t.Error("haloWidth 0 must equal pure keying")
	}

	zeroStep := clone(orig)
	Apply(zeroStep, black, 1, 0, 3, 0)
	if !equal(zeroStep, keyed) {
		t.Error("opacityStep 0 must equal pure keying")
	}
}

func TestAlphaMonotonic(t *testing.T) {
	grey := surface.Color{R: 128, G: 128, B: 128, A: 90}
	orig := newRow(t, black, grey, white, grey, black, grey)

	keyed := clone(orig)
	Key(keyed, black)

	s := clone(orig)
	KeyWithHalo(s, black, 2, 75)
	for x := 0; x < s.Width(); x++ {
		before := alphaAt(t, keyed, x, 0)
		after := alphaAt(t, s, x, 0)
		if after < before {
			t.Errorf("pixel %d alpha dropped from %v to %v", x, before, after)
		}
	}
}

func TestHaloAccumulates(t *testing.T) {
	s := newRow(t, white, black, white)
	Apply(s, black, 1, 0, 1, 100)
	// both neighbors contribute 100/2
	if a := alphaAt(t, s, 1, 0); a != 100 {
		t.Errorf("keyed pixel alpha = %v, want 100", a)
	}
}

func TestHaloClampsAtOpaque(t *testing.T) {
	s := newRow(t, white, black)
	Apply(s, black, 1, 0, 1, 1000)
	if a := alphaAt(t, s, 1, 0); a != 255 {
		t.Errorf("keyed pixel alpha = %v, want 255", a)
	}
	if a := alphaAt(t, s, 0, 0); a != 255 {
		t.Errorf("opaque pixel alpha = %v, must stay 255", a)
	}
}

func TestBoundaryClamp(t *testing.T) {
	// halo far larger than the surface, every access must stay in range
	s := newRow(t, white, black)
	Apply(s, black, 1, 0, 10, 1000)
	// divisor at the keyed pixel is 1+20-1 = 20
	if a := alphaAt(t, s, 1, 0); a != 50 {
		t.Errorf("keyed pixel alpha = %v, want 50", a)
	}
}

func TestFrameIsolation(t *testing.T) {
	s := surface.NewRGBA(2, 4)
	for y := 0; y < 4; y++ {
		s.Set(0, y, 0, 0, 0, 255)
		s.Set(1, y, 255, 255, 255, 255)
	}
	before := clone(s)
	Apply(s, black, 2, 1, 5, 200)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			br, bg, bb, ba := before.At(x, y)
			ar, ag, ab, aa := s.At(x, y)
			if br != ar || bg != ag || bb != ab || ba != aa {
				t.Errorf("pixel (%d,%d) outside frame 1 changed", x, y)
			}
		}
	}
	if a := alphaAt(t, s, 0, 2); a == 255 {
		t.Error("keyed pixel inside frame 1 kept full alpha")
	}
}

func TestFrameClamped(t *testing.T) {
	s := newRow(t, black, white)
	before := clone(s)
	// frameIndex far out of range, the clamped strip is empty
	Apply(s, black, 2, 50, 1, 100)
	if !equal(s, before) {
		t.Error("out of range frameIndex touched pixels")
	}
	// more frames than rows degenerates to an empty strip as well
	Apply(s, black, 10, 0, 1, 100)
	if !equal(s, before) {
		t.Error("numFrames > height touched pixels")
	}
	// a non-positive frame count is treated as one frame
	Apply(s, black, 0, 0, 0, 0)
	if a := alphaAt(t, s, 0, 0); a != 0 {
		t.Errorf("numFrames 0: keyed pixel alpha = %v, want 0", a)
	}
}

func TestBackgroundAlphaIgnored(t *testing.T) {
	s := newRow(t, black, white)
	Apply(s, surface.Color{R: 0, G: 0, B: 0, A: 7}, 1, 0, 0, 0)
	if a := alphaAt(t, s, 0, 0); a != 0 {
		t.Errorf("keyed pixel alpha = %v, matching must ignore background alpha", a)
	}
}

func TestIndexedSurface(t *testing.T) {
	pal := palette.Grey()
	pal.SetColor(1, 255, 0, 0)
	s := surface.NewIndexed(2, 1, pal)
	s.SetIndex(0, 0, 0) // black
	s.SetIndex(1, 0, 1) // red
	s.SetTransparent(0)
	Key(s, black)
	if a := alphaAt(t, s, 0, 0); a != 0 {
		t.Errorf("keyed indexed pixel alpha = %v, want 0", a)
	}
	if i := s.IndexAt(1, 0); i != 1 {
		t.Errorf("opaque indexed pixel index = %v, want 1", i)
	}
}

func TestNilSurfacePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil surface")
		}
	}()
	Apply(nil, black, 1, 0, 1, 100)
}
