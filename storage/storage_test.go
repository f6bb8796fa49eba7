package storage

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func readAll(t *testing.T, r Reader) []byte {
	t.Helper()
	var out []byte
	buf := make([]byte, 7)
	for r.Available() > 0 {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err != nil && !errors.Is(err, io.EOF) {
			t.Fatalf("Read: %v", err)
		}
	}
	return out
}

func TestDir_ReadWrite(t *testing.T) {
	dir := Dir{Root: t.TempDir()}
	payload := []byte("RIFF....WAVEfmt payload")

	w, err := dir.OpenWrite("a.wav")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(payload); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := dir.OpenRead("a.wav")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if got := r.Available(); got != int64(len(payload)) {
		t.Fatalf("Available = %d, want %d", got, len(payload))
	}
	if got := readAll(t, r); !bytes.Equal(got, payload) {
		t.Fatalf("read %q, want %q", got, payload)
	}
	if r.Available() != 0 {
		t.Fatalf("Available after drain = %d", r.Available())
	}
}

func TestDir_OpenReadMissing(t *testing.T) {
	dir := Dir{Root: t.TempDir()}
	if _, err := dir.OpenRead("missing.wav"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
}

func TestDir_AbsoluteNameIgnoresRoot(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "x.wav")
	if err := os.WriteFile(abs, []byte{1, 2}, 0o600); err != nil {
		t.Fatal(err)
	}
	r, err := Dir{Root: "/nonexistent"}.OpenRead(abs)
	if err != nil {
		t.Fatal(err)
	}
	_ = r.Close()
}

func TestDir_OpenWriteTruncates(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "out.wav")
	if err := os.WriteFile(path, []byte("old content"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := Dir{Root: root}.OpenWrite("out.wav")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = w.Write([]byte("new"))
	_ = w.Close()

	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Fatalf("content = %q, want %q", got, "new")
	}
}

func TestMemory_ReadWrite(t *testing.T) {
	m := NewMemory()
	m.Put("in", []byte("hello world"))

	r, err := m.OpenRead("in")
	if err != nil {
		t.Fatal(err)
	}
	w, err := m.OpenWrite("out")
	if err != nil {
		t.Fatal(err)
	}
	if m.OpenStreams() != 2 {
		t.Fatalf("OpenStreams = %d, want 2", m.OpenStreams())
	}

	data := readAll(t, r)
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	_ = r.Close()
	_ = w.Close()

	if m.OpenStreams() != 0 {
		t.Fatalf("OpenStreams after close = %d", m.OpenStreams())
	}
	got, ok := m.Get("out")
	if !ok || string(got) != "hello world" {
		t.Fatalf("Get(out) = %q, %v", got, ok)
	}
	if m.Writes("out") != 1 {
		t.Fatalf("Writes = %d, want 1", m.Writes("out"))
	}
}

func TestMemory_Limits(t *testing.T) {
	m := NewMemory(WithReadLimit(3), WithWriteLimit(2))
	m.Put("in", []byte("abcdefg"))

	r, _ := m.OpenRead("in")
	buf := make([]byte, 10)
	n, err := r.Read(buf)
	if n != 3 || err != nil {
		t.Fatalf("Read = %d, %v; want 3, nil", n, err)
	}
	if r.Available() != 4 {
		t.Fatalf("Available = %d, want 4", r.Available())
	}

	w, _ := m.OpenWrite("out")
	n, err = w.Write([]byte("xyz"))
	if n != 2 || !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("Write = %d, %v; want 2, ErrShortWrite", n, err)
	}
	got, _ := m.Get("out")
	if string(got) != "xy" {
		t.Fatalf("stored %q, want %q", got, "xy")
	}
}

func TestMemory_MissingAndDenied(t *testing.T) {
	m := NewMemory()
	if _, err := m.OpenRead("nope"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}

	m.Deny("locked")
	if _, err := m.OpenWrite("locked"); !errors.Is(err, ErrDenied) {
		t.Fatalf("err = %v, want ErrDenied", err)
	}
	if _, ok := m.Get("locked"); ok {
		t.Fatal("denied OpenWrite must not create the file")
	}
	if m.OpenStreams() != 0 {
		t.Fatalf("OpenStreams = %d, want 0", m.OpenStreams())
	}
}

func TestMemory_Closed(t *testing.T) {
	m := NewMemory()
	m.Put("in", []byte("x"))
	r, _ := m.OpenRead("in")
	_ = r.Close()
	if _, err := r.Read(make([]byte, 1)); !errors.Is(err, ErrClosed) {
		t.Fatalf("Read after Close: %v", err)
	}
	if err := r.Close(); !errors.Is(err, ErrClosed) {
		t.Fatalf("double Close: %v", err)
	}

	w, _ := m.OpenWrite("out")
	_ = w.Close()
	if _, err := w.Write([]byte{1}); !errors.Is(err, ErrClosed) {
		t.Fatalf("Write after Close: %v", err)
	}
}
