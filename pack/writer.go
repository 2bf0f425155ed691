// SPDX-License-Identifier: GPL-2.0-or-later

package pack

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Writer builds a pack archive. Data is written as files are added, the
// directory goes to the end of the archive on Close.
type Writer struct {
	f       *os.File
	entries []entry
	offset  int32
}

func NewWriter(name string) (*Writer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	// header is rewritten on Close, reserve its space
	var h header
	if err := binary.Write(f, binary.LittleEndian, &h); err != nil {
		f.Close()
		return nil, err
	}
	return &Writer{f: f, offset: 12}, nil
}

func (w *Writer) Add(name string, data []byte) error {
	if len(name) > 55 {
		return fmt.Errorf("entry name too long: %v", name)
	}
	var e entry
	copy(e.Name[:], name)
	e.Offset = w.offset
	e.Size = int32(len(data))
	if _, err := w.f.Write(data); err != nil {
		return err
	}
	w.entries = append(w.entries, e)
	w.offset += e.Size
	return nil
}

func (w *Writer) Close() error {
	dirOffset := w.offset
	for i := range w.entries {
		if err := binary.Write(w.f, binary.LittleEndian, &w.entries[i]); err != nil {
			w.f.Close()
			return err
		}
	}
	h := header{
		ID:     magic,
		Offset: dirOffset,
		Size:   int32(len(w.entries) * 64),
	}
	if _, err := w.f.Seek(0, 0); err != nil {
		w.f.Close()
		return err
	}
	if err := binary.Write(w.f, binary.LittleEndian, &h); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
