// SPDX-License-Identifier: GPL-2.0-or-later
package palette

import (
	"fmt"
	"io"

	"github.com/chewxy/math32"
)

// Palette is a 256 entry color table, 3 bytes rgb per entry. This is the
// layout of the host's raw palette lumps.
type Palette [256 * 3]uint8

// Load reads a raw 768 byte rgb table.
func Load(r io.Reader) (*Palette, error) {
	p := &Palette{}
	if _, err := io.ReadFull(r, p[:]); err != nil {
		return nil, fmt.Errorf("palette has wrong size: %v", err)
	}
	return p, nil
}

// Grey returns a fallback palette with entry i mapped to (i,i,i). Surfaces
// created without a loaded palette use it.
func Grey() *Palette {
	p := &Palette{}
	for i := 0; i < 256; i++ {
		p[i*3] = uint8(i)
		p[i*3+1] = uint8(i)
		p[i*3+2] = uint8(i)
	}
	return p
}

func (p *Palette) Color(i int) (r, g, b, a uint8) {
	return p[i*3], p[i*3+1], p[i*3+2], 255
}

func (p *Palette) SetColor(i int, r, g, b uint8) {
	p[i*3] = r
	p[i*3+1] = g
	p[i*3+2] = b
}

// Exact returns the first index holding exactly (r,g,b), or -1.
func (p *Palette) Exact(r, g, b uint8) int {
	for i := 0; i < 256; i++ {
		if p[i*3] == r && p[i*3+1] == g && p[i*3+2] == b {
			return i
		}
	}
	return -1
}

// Nearest returns the index with the smallest euclidean rgb distance to
// (r,g,b). Ties go to the lower index.
func (p *Palette) Nearest(r, g, b uint8) int {
	best := 0
	bestDist := math32.Inf(1)
	for i := 0; i < 256; i++ {
		dr := float32(p[i*3]) - float32(r)
		dg := float32(p[i*3+1]) - float32(g)
		db := float32(p[i*3+2]) - float32(b)
		d := math32.Sqrt(dr*dr + dg*dg + db*db)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
