// SPDX-License-Identifier: GPL-2.0-or-later

package pic

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"gohalo/surface"
)

type tgaHeader struct {
	IDLength       uint8
	ColormapType   uint8
	ImageType      uint8
	ColormapIndex  uint16
	ColormapLength uint16
	ColormapSize   uint8
	XOrigin        uint16
	YOrigin        uint16
	Width          uint16
	Height         uint16
	PixelSize      uint8
	Attributes     uint8
}

const (
	tgaTypeRGB    = 2
	tgaTypeRGBRLE = 10

	tgaTopDown = 1 << 5
)

// decodeTGA reads type 2 and type 10 truecolor files, 24 or 32 bit, either
// row order. Pixels are stored bgr(a) on disk.
func decodeTGA(r io.Reader, name string) (surface.Pixels, error) {
	br := bufio.NewReader(r)
	var header tgaHeader
	if err := binary.Read(br, binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrapf(err, "invalid tga header in %v", name)
	}
	if header.ImageType != tgaTypeRGB && header.ImageType != tgaTypeRGBRLE {
		return nil, fmt.Errorf("tga %v is not a type 2 or type 10", name)
	}
	if header.ColormapType != 0 || (header.PixelSize != 32 && header.PixelSize != 24) {
		return nil, fmt.Errorf("tga %v is not 24bit or 32bit", name)
	}
	if header.IDLength != 0 {
		// skip image id
		if _, err := br.Discard(int(header.IDLength)); err != nil {
			return nil, errors.Wrapf(err, "tga %v", name)
		}
	}

	width, height := int(header.Width), int(header.Height)
	s := surface.NewRGBA(width, height)
	depth := int(header.PixelSize) / 8

	var err error
	if header.ImageType == tgaTypeRGB {
		err = tgaReadRaw(br, s, depth)
	} else {
		err = tgaReadRLE(br, s, depth)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "tga %v", name)
	}
	if header.Attributes&tgaTopDown == 0 {
		flipRows(s)
	}
	return s, nil
}

func putTGAPixel(s *surface.RGBA, x, y int, px []uint8, depth int) {
	a := uint8(255)
	if depth == 4 {
		a = px[3]
	}
	s.Set(x, y, px[2], px[1], px[0], a)
}

func tgaReadRaw(r io.Reader, s *surface.RGBA, depth int) error {
	row := make([]uint8, s.Width()*depth)
	for y := 0; y < s.Height(); y++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return fmt.Errorf("not enough pixels: %v", err)
		}
		for x := 0; x < s.Width(); x++ {
			putTGAPixel(s, x, y, row[x*depth:], depth)
		}
	}
	return nil
}

func tgaReadRLE(r *bufio.Reader, s *surface.RGBA, depth int) error {
	px := make([]uint8, depth)
	x, y := 0, 0
	total := s.Width() * s.Height()
	advance := func() {
		x++
		if x == s.Width() {
			x = 0
			y++
		}
	}
	for n := 0; n < total; {
		head, err := r.ReadByte()
		if err != nil {
			return fmt.Errorf("not enough packets: %v", err)
		}
		count := int(head&0x7f) + 1
		if head&0x80 != 0 {
			// run packet, one pixel repeated
			if _, err := io.ReadFull(r, px); err != nil {
				return fmt.Errorf("short run packet: %v", err)
			}
			for i := 0; i < count && n < total; i++ {
				putTGAPixel(s, x, y, px, depth)
				advance()
				n++
			}
		} else {
			for i := 0; i < count && n < total; i++ {
				if _, err := io.ReadFull(r, px); err != nil {
					return fmt.Errorf("short raw packet: %v", err)
				}
				putTGAPixel(s, x, y, px, depth)
				advance()
				n++
			}
		}
	}
	return nil
}

// flipRows converts between bottom-up file order and top-down surface order.
func flipRows(s *surface.RGBA) {
	w, h := s.Width(), s.Height()
	for y := 0; y < h/2; y++ {
		oy := h - 1 - y
		for x := 0; x < w; x++ {
			r1, g1, b1, a1 := s.At(x, y)
			r2, g2, b2, a2 := s.At(x, oy)
			s.Set(x, y, r2, g2, b2, a2)
			s.Set(x, oy, r1, g1, b1, a1)
		}
	}
}
