package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Dir is a Storage backed by the operating system file system. Names are
// resolved relative to Root; an empty Root uses names unchanged.
type Dir struct {
	Root string
}

var _ Storage = Dir{}

func (d Dir) path(name string) string {
	if d.Root == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.Root, name)
}

// OpenRead opens name for reading.
func (d Dir) OpenRead(name string) (Reader, error) {
	f, err := os.Open(d.path(name))
	if err != nil {
		return nil, fmt.Errorf("storage: open %q for read: %w", name, err)
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("storage: stat %q: %w", name, err)
	}
	return &fileReader{f: f, size: st.Size()}, nil
}

// OpenWrite creates or truncates name for writing.
func (d Dir) OpenWrite(name string) (Writer, error) {
	f, err := os.Create(d.path(name))
	if err != nil {
		return nil, fmt.Errorf("storage: open %q for write: %w", name, err)
	}
	return f, nil
}

type fileReader struct {
	f    *os.File
	size int64
	pos  int64
}

func (r *fileReader) Read(p []byte) (int, error) {
	n, err := r.f.Read(p)
	r.pos += int64(n)
	return n, err
}

func (r *fileReader) Available() int64 {
	if r.pos >= r.size {
		return 0
	}
	return r.size - r.pos
}

func (r *fileReader) Close() error {
	return r.f.Close()
}

var _ io.ReadCloser = (*fileReader)(nil)
