// SPDX-License-Identifier: GPL-2.0-or-later

// Package surface provides the pixel addressable 2D surfaces of the
// renderer. A surface stores either direct 8bit rgba values or 8bit indices
// into a palette; both are read and written through the same Pixels
// interface so per-pixel routines are written once.
package surface

import (
	"fmt"
	"strconv"
)

const (
	Opaque      uint8 = 255
	Transparent uint8 = 0
)

// Pixels is the capability set per-pixel routines work against. Coordinates
// outside [0,Width)x[0,Height) panic, that is a caller bug.
type Pixels interface {
	At(x, y int) (r, g, b, a uint8)
	Set(x, y int, r, g, b, a uint8)
	Width() int
	Height() int
}

type Color struct {
	R, G, B, A uint8
}

// ParseColor reads "#rgb", "#rrggbb" or "#rrggbbaa", leading '#' optional.
// Alpha defaults to opaque.
func ParseColor(s string) (Color, error) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	hex := func(h string) (uint8, error) {
		v, err := strconv.ParseUint(h, 16, 8)
		return uint8(v), err
	}
	c := Color{A: Opaque}
	var err error
	switch len(s) {
	case 3:
		if c.R, err = hex(s[0:1]); err != nil {
			break
		}
		if c.G, err = hex(s[1:2]); err != nil {
			break
		}
		c.B, err = hex(s[2:3])
		c.R, c.G, c.B = c.R*17, c.G*17, c.B*17
	case 6, 8:
		if c.R, err = hex(s[0:2]); err != nil {
			break
		}
		if c.G, err = hex(s[2:4]); err != nil {
			break
		}
		if c.B, err = hex(s[4:6]); err != nil {
			break
		}
		if len(s) == 8 {
			c.A, err = hex(s[6:8])
		}
	default:
		err = fmt.Errorf("bad length %d", len(s))
	}
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %v", s, err)
	}
	return c, nil
}

func checkBounds(s Pixels, x, y int) {
	if x < 0 || y < 0 || x >= s.Width() || y >= s.Height() {
		panic(fmt.Sprintf("surface: pixel (%d,%d) outside %dx%d", x, y, s.Width(), s.Height()))
	}
}

// Frames returns the height of one strip when the surface holds numFrames
// stacked frames. A count below one is treated as a single frame.
func Frames(s Pixels, numFrames int) int {
	if numFrames < 1 {
		numFrames = 1
	}
	return s.Height() / numFrames
}

// Frame returns the vertical span [top,bottom) of strip frameIndex when the
// surface holds numFrames stacked frames. The span is clamped to the surface
// so it is always valid, even for out of range arguments.
func Frame(s Pixels, numFrames, frameIndex int) (top, bottom int) {
	h := s.Height()
	frameHeight := Frames(s, numFrames)
	top = frameIndex * frameHeight
	if top < 0 {
		top = 0
	} else if top > h {
		top = h
	}
	bottom = top + frameHeight
	if bottom > h {
		bottom = h
	}
	return top, bottom
}
