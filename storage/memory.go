package storage

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Memory is an in-memory Storage. It records how many Write calls each
// name received and how many streams are open, and can limit the size of
// individual reads and writes to exercise short transfers.
type Memory struct {
	mu         sync.Mutex
	files      map[string][]byte
	writes     map[string]int
	denied     map[string]bool
	open       int
	readLimit  int
	writeLimit int
}

// MemoryOption configures a Memory.
type MemoryOption func(*Memory)

// WithReadLimit caps every Read at n bytes.
func WithReadLimit(n int) MemoryOption {
	return func(m *Memory) {
		if n > 0 {
			m.readLimit = n
		}
	}
}

// WithWriteLimit caps every Write at n bytes.
func WithWriteLimit(n int) MemoryOption {
	return func(m *Memory) {
		if n > 0 {
			m.writeLimit = n
		}
	}
}

// NewMemory returns an empty Memory.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		files:  make(map[string][]byte),
		writes: make(map[string]int),
		denied: make(map[string]bool),
	}
	for _, o := range opts {
		if o != nil {
			o(m)
		}
	}
	return m
}

var _ Storage = (*Memory)(nil)

// Put stores a copy of data under name.
func (m *Memory) Put(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[name] = append([]byte(nil), data...)
}

// Get returns a copy of the bytes stored under name.
func (m *Memory) Get(name string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.files[name]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), b...), true
}

// Deny makes every subsequent open of name fail with ErrDenied.
func (m *Memory) Deny(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.denied[name] = true
}

// Writes returns the number of Write calls made to name.
func (m *Memory) Writes(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[name]
}

// OpenStreams returns the number of streams not yet closed.
func (m *Memory) OpenStreams() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// OpenRead opens name for reading. A missing name fails with os.ErrNotExist.
func (m *Memory) OpenRead(name string) (Reader, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.denied[name] {
		return nil, fmt.Errorf("storage: open %q for read: %w", name, ErrDenied)
	}
	b, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("storage: open %q for read: %w", name, os.ErrNotExist)
	}
	m.open++
	return &memReader{m: m, data: b, limit: m.readLimit}, nil
}

// OpenWrite creates or truncates name for writing.
func (m *Memory) OpenWrite(name string) (Writer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.denied[name] {
		return nil, fmt.Errorf("storage: open %q for write: %w", name, ErrDenied)
	}
	m.files[name] = []byte{}
	m.open++
	return &memWriter{m: m, name: name, limit: m.writeLimit}, nil
}

func (m *Memory) release() {
	m.mu.Lock()
	m.open--
	m.mu.Unlock()
}

type memReader struct {
	m      *Memory
	data   []byte
	pos    int
	limit  int
	closed bool
}

func (r *memReader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, ErrClosed
	}
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	if r.limit > 0 && len(p) > r.limit {
		p = p[:r.limit]
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func (r *memReader) Available() int64 {
	if r.closed {
		return 0
	}
	return int64(len(r.data) - r.pos)
}

func (r *memReader) Close() error {
	if r.closed {
		return ErrClosed
	}
	r.closed = true
	r.m.release()
	return nil
}

type memWriter struct {
	m      *Memory
	name   string
	limit  int
	closed bool
}

func (w *memWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	n := len(p)
	if w.limit > 0 && n > w.limit {
		n = w.limit
	}

	w.m.mu.Lock()
	w.m.files[w.name] = append(w.m.files[w.name], p[:n]...)
	w.m.writes[w.name]++
	w.m.mu.Unlock()

	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

func (w *memWriter) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true
	w.m.release()
	return nil
}
