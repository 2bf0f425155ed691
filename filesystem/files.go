// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"gohalo/pack"
)

type File interface {
	io.ReadSeekCloser
	io.ReaderAt
}

// A FileSystem resolves slash-separated relative names to files.
type FileSystem interface {
	Open(name string) (File, error)
	Stat(name string) (os.FileInfo, error)
	String() string
}

var (
	baseDir string
	// mounts are searched front to back
	mounts []FileSystem
	mutex  sync.RWMutex
)

type dirFileSystem struct {
	root string
}

func (d dirFileSystem) Open(name string) (File, error) {
	f, err := os.Open(filepath.Join(d.root, filepath.FromSlash(name)))
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if fi.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}

func (d dirFileSystem) Stat(name string) (os.FileInfo, error) {
	fi, err := os.Stat(filepath.Join(d.root, filepath.FromSlash(name)))
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, os.ErrNotExist
	}
	return fi, nil
}

func (d dirFileSystem) String() string {
	return d.root
}

type packFileSystem struct {
	p *pack.Pack
}

type closer struct {
	*io.SectionReader
}

func (*closer) Close() error {
	return nil
}

type fileInfo struct {
	name string // base name of the file
	size int64
}

func (f *fileInfo) Name() string       { return f.name }
func (f *fileInfo) Size() int64        { return f.size }
func (f *fileInfo) Mode() fs.FileMode  { return 0 }
func (f *fileInfo) ModTime() time.Time { return time.Time{} }
func (f *fileInfo) IsDir() bool        { return false }
func (f *fileInfo) Sys() any           { return nil }

func (p packFileSystem) Open(name string) (File, error) {
	// inside a pack file there is no 'root'. all files are relative to '.'
	name = strings.TrimPrefix(name, "/")
	f, err := p.p.Open(name)
	if err != nil {
		return nil, err
	}
	return &closer{f}, nil
}

func (p packFileSystem) Stat(name string) (os.FileInfo, error) {
	name = strings.TrimPrefix(name, "/")
	f, err := p.p.Open(name)
	if err != nil {
		return nil, err
	}
	return &fileInfo{
		name: name,
		size: f.Size(),
	}, nil
}

func (p packFileSystem) String() string {
	return p.p.String()
}

func BaseDir() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return baseDir
}

// UseBaseDir mounts dir and every pak%d.pak found inside it. Loose files in
// dir shadow pack entries, higher numbered packs shadow lower numbered ones.
func UseBaseDir(dir string) error {
	mutex.Lock()
	defer mutex.Unlock()
	for _, m := range mounts {
		if p, ok := m.(packFileSystem); ok {
			p.p.Close()
		}
	}
	mounts = mounts[:0]
	baseDir = dir
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return errors.Wrapf(os.ErrNotExist, "base dir %q", dir)
	}
	for i := 0; ; i++ {
		pfp := filepath.Join(dir, fmt.Sprintf("pak%d.pak", i))
		p, err := pack.NewPackReader(pfp)
		if err != nil {
			break
		}
		mounts = append([]FileSystem{packFileSystem{p}}, mounts...)
	}
	mounts = append([]FileSystem{dirFileSystem{dir}}, mounts...)
	return nil
}

func Stat(name string) (os.FileInfo, error) {
	mutex.RLock()
	defer mutex.RUnlock()
	for _, m := range mounts {
		if fi, err := m.Stat(name); err == nil {
			return fi, nil
		}
	}
	return nil, os.ErrNotExist
}

func Open(name string) (File, error) {
	mutex.RLock()
	defer mutex.RUnlock()
	for _, m := range mounts {
		if f, err := m.Open(name); err == nil {
			return f, nil
		}
	}
	return nil, errors.Wrapf(os.ErrNotExist, "open %q", name)
}

func ReadFile(name string) ([]byte, error) {
	file, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func isSep(c uint8) bool {
	return c == '/' || c == '\\'
}

func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

func StripExt(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}
