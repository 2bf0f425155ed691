// SPDX-License-Identifier: GPL-2.0-or-later

// Package pic decodes image files into surfaces and encodes surfaces back
// out. PNG and BMP go through the standard decoders, TGA has its own reader
// below as the host ships assets no standard decoder handles.
package pic

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"gohalo/conlog"
	"gohalo/filesystem"
	"gohalo/palette"
	"gohalo/surface"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

// Decode reads one image. The format is chosen by the extension of name,
// with a magic sniff as fallback for extension-less names. Paletted sources
// stay paletted.
func Decode(r io.Reader, name string) (surface.Pixels, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	var img image.Image
	switch filesystem.Ext(name) {
	case ".png":
		img, err = png.Decode(bytes.NewReader(data))
	case ".bmp":
		img, err = bmp.Decode(bytes.NewReader(data))
	case ".tga":
		return decodeTGA(bytes.NewReader(data), name)
	default:
		switch {
		case bytes.HasPrefix(data, pngMagic):
			img, err = png.Decode(bytes.NewReader(data))
		case bytes.HasPrefix(data, []byte("BM")):
			img, err = bmp.Decode(bytes.NewReader(data))
		default:
			return decodeTGA(bytes.NewReader(data), name)
		}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	return fromImage(img), nil
}

// Load resolves name through the filesystem search path, trying the name as
// given and with the known image extensions appended.
func Load(name string) (surface.Pixels, error) {
	names := []string{name, name + ".png", name + ".bmp", name + ".tga"}
	for _, n := range names {
		if _, err := filesystem.Stat(n); err != nil {
			continue
		}
		conlog.DPrintf("resolved %v as %v\n", name, n)
		f, err := filesystem.Open(n)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return Decode(f, n)
	}
	return nil, errors.Errorf("image %v not found", name)
}

func fromImage(img image.Image) surface.Pixels {
	if p, ok := img.(*image.Paletted); ok && len(p.Palette) <= 256 {
		return fromPaletted(p)
	}
	if n, ok := img.(*image.NRGBA); ok {
		return surface.FromImage(n)
	}
	b := img.Bounds()
	s := surface.NewRGBA(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			s.Set(x, y, c.R, c.G, c.B, c.A)
		}
	}
	return s
}

func fromPaletted(img *image.Paletted) *surface.Indexed {
	pal := &palette.Palette{}
	transparent := -1
	for i, e := range img.Palette {
		c := color.NRGBAModel.Convert(e).(color.NRGBA)
		pal.SetColor(i, c.R, c.G, c.B)
		if c.A == 0 && transparent < 0 {
			transparent = i
		}
	}
	b := img.Bounds()
	s := surface.NewIndexed(b.Dx(), b.Dy(), pal)
	if transparent >= 0 {
		s.SetTransparent(transparent)
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			s.SetIndex(x, y, img.ColorIndexAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return s
}

// ToImage copies any surface into an image.NRGBA. An *surface.RGBA shares
// its buffer instead.
func ToImage(s surface.Pixels) *image.NRGBA {
	if r, ok := s.(*surface.RGBA); ok {
		return r.Image()
	}
	img := image.NewNRGBA(image.Rect(0, 0, s.Width(), s.Height()))
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			r, g, b, a := s.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}

// ToRGBA returns a direct color copy of s. The chroma filter needs a direct
// color view to key indexed sources without a transparent index.
func ToRGBA(s surface.Pixels) *surface.RGBA {
	d := surface.NewRGBA(s.Width(), s.Height())
	surface.Draw(d, s, 0, 0)
	return d
}

// Keyable returns a surface the keying filter can write transparency into.
// An indexed surface without a transparent index has nowhere to store a
// keyed pixel, it is copied to direct color. Everything else passes through.
func Keyable(s surface.Pixels) surface.Pixels {
	if ind, ok := s.(*surface.Indexed); ok {
		if _, ok := ind.TransparentIndex(); !ok {
			return ToRGBA(ind)
		}
	}
	return s
}

func WritePNG(w io.Writer, s surface.Pixels) error {
	if err := png.Encode(w, ToImage(s)); err != nil {
		return errors.Wrap(err, "encode png")
	}
	return nil
}
