// SPDX-License-Identifier: GPL-2.0-or-later

package pack

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"sort"
)

var magic = [4]byte{'P', 'A', 'C', 'K'}

type header struct {
	ID     [4]byte
	Offset int32
	Size   int32
}

// entry is 64 bytes on disk.
type entry struct {
	Name   [56]byte
	Offset int32
	Size   int32
}

type Pack struct {
	f     *os.File
	files map[string]*section
	name  string
}

type section struct {
	offset int64
	size   int64
}

// Open returns a io.SectionReader or os.ErrNotExist if the pack has no entry
// with the provided name.
func (p *Pack) Open(name string) (*io.SectionReader, error) {
	s, ok := p.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NewSectionReader(p.f, s.offset, s.size), nil
}

// Files returns the entry names in sorted order.
func (p *Pack) Files() []string {
	names := make([]string, 0, len(p.files))
	for n := range p.files {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (p *Pack) String() string {
	return p.name
}

func (p *Pack) Close() error {
	return p.f.Close()
}

func (p *Pack) init() error {
	var h header
	if err := binary.Read(p.f, binary.LittleEndian, &h); err != nil {
		return err
	}
	if h.ID != magic {
		return errors.New("not a pack")
	}
	r, err := p.f.Seek(int64(h.Offset), io.SeekStart)
	if err != nil {
		return err
	}
	if r != int64(h.Offset) {
		return errors.New("not long enough")
	}
	filenum := h.Size / 64 // 64 is Sizeof(entry)
	p.files = make(map[string]*section, filenum)
	for i := int32(0); i < filenum; i++ {
		var e entry
		if err := binary.Read(p.f, binary.LittleEndian, &e); err != nil {
			return err
		}
		n := bytes.IndexByte(e.Name[:], 0)
		if n < 0 {
			n = len(e.Name)
		}
		name := string(e.Name[:n])
		if p.files[name] != nil {
			return errors.New("files in pack are not unique")
		}
		p.files[name] = &section{
			offset: int64(e.Offset),
			size:   int64(e.Size),
		}
	}
	return nil
}

func NewPackReader(name string) (*Pack, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	p := &Pack{f: f, name: name}
	if err := p.init(); err != nil {
		p.f.Close()
		return nil, err
	}
	return p, nil
}
