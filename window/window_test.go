// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"testing"

	"gohalo/surface"
)

func TestBlend(t *testing.T) {
	if v := blend(255, 0, 255); v != 255 {
		t.Errorf("blend opaque = %v", v)
	}
	if v := blend(255, 40, 0); v != 40 {
		t.Errorf("blend transparent = %v", v)
	}
}

func TestComposite(t *testing.T) {
	s := surface.NewRGBA(2, 1)
	s.Set(0, 0, 255, 0, 0, 255)
	s.Set(1, 0, 0, 0, 0, 0)
	pix, w, h := composite(s)
	if w != 2 || h != 1 {
		t.Fatalf("size = %dx%d", w, h)
	}
	if pix[0] != 255 || pix[3] != 255 {
		t.Errorf("opaque pixel = %v", pix[0:4])
	}
	// transparent pixel shows the checkerboard
	if pix[4] != checker(1, 0) || pix[7] != 255 {
		t.Errorf("transparent pixel = %v", pix[4:8])
	}
}
