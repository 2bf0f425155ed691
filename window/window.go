// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"fmt"
	"unsafe"

	"github.com/gopxl/mainthread/v2"
	"github.com/veandco/go-sdl2/sdl"

	"gohalo/surface"
)

// Show opens a window sized to s (integer scaled) and presents the surface
// until the window is closed or escape is pressed. A checkerboard shows
// through wherever the surface is not fully opaque. Must run inside
// mainthread.Run, every SDL call is made on the main OS thread.
func Show(title string, s surface.Pixels, scale int) error {
	if scale < 1 {
		scale = 1
	}
	pix, w, h := composite(s)
	if w == 0 || h == 0 {
		return fmt.Errorf("empty surface")
	}
	return mainthread.CallErr(func() error {
		return show(title, pix, w, h, scale)
	})
}

func show(title string, pix []uint8, w, h, scale int) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl init: %v", err)
	}
	defer sdl.Quit()

	win, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(w*scale), int32(h*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("create window: %v", err)
	}
	defer win.Destroy()

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("create renderer: %v", err)
	}
	defer renderer.Destroy()

	// ABGR8888 matches the rgba byte order of the surface buffer
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, int32(w), int32(h))
	if err != nil {
		return fmt.Errorf("create texture: %v", err)
	}
	defer texture.Destroy()
	if err := texture.Update(nil, unsafe.Pointer(&pix[0]), 4*w); err != nil {
		return fmt.Errorf("upload texture: %v", err)
	}

	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch e := ev.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			}
		}
		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()
		sdl.Delay(16)
	}
}

const checkCell = 8

func checker(x, y int) uint8 {
	if (x/checkCell+y/checkCell)%2 == 0 {
		return 0x99
	}
	return 0x66
}

// composite flattens s over a checkerboard into an opaque rgba buffer.
func composite(s surface.Pixels) ([]uint8, int, int) {
	w, h := s.Width(), s.Height()
	pix := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := s.At(x, y)
			c := checker(x, y)
			i := (y*w + x) * 4
			pix[i] = blend(r, c, a)
			pix[i+1] = blend(g, c, a)
			pix[i+2] = blend(b, c, a)
			pix[i+3] = 255
		}
	}
	return pix, w, h
}

func blend(c, bg, a uint8) uint8 {
	return uint8((int(c)*int(a) + int(bg)*(255-int(a))) / 255)
}
