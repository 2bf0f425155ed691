// SPDX-License-Identifier: GPL-2.0-or-later
package palette

import (
	"bytes"
	"testing"
)

func TestLoad(t *testing.T) {
	raw := make([]byte, 256*3)
	raw[3] = 10
	raw[4] = 20
	raw[5] = 30
	p, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r, g, b, a := p.Color(1)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("Color(1) = %v,%v,%v,%v", r, g, b, a)
	}
}

func TestLoadShort(t *testing.T) {
	if _, err := Load(bytes.NewReader(make([]byte, 100))); err == nil {
		t.Error("expected error for short palette")
	}
}

func TestExact(t *testing.T) {
	p := Grey()
	if i := p.Exact(7, 7, 7); i != 7 {
		t.Errorf("Exact(7,7,7) = %v", i)
	}
	if i := p.Exact(1, 2, 3); i != -1 {
		t.Errorf("Exact(1,2,3) = %v", i)
	}
}

func TestNearest(t *testing.T) {
	p := Grey()
	if i := p.Nearest(7, 7, 7); i != 7 {
		t.Errorf("Nearest(7,7,7) = %v", i)
	}
	// (10,12,14) averages to grey 12
	if i := p.Nearest(10, 12, 14); i != 12 {
		t.Errorf("Nearest(10,12,14) = %v", i)
	}
}

func TestSetColor(t *testing.T) {
	p := Grey()
	p.SetColor(3, 250, 100, 50)
	r, g, b, _ := p.Color(3)
	if r != 250 || g != 100 || b != 50 {
		t.Errorf("Color(3) = %v,%v,%v", r, g, b)
	}
	if i := p.Exact(250, 100, 50); i != 3 {
		t.Errorf("Exact after SetColor = %v", i)
	}
}
