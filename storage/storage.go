// Package storage defines the byte-stream storage the WAV processor reads
// from and writes to, with an OS directory backend and an in-memory backend.
package storage

import (
	"errors"
	"io"
)

var (
	// ErrClosed is returned by operations on a closed stream.
	ErrClosed = errors.New("storage: stream closed")
	// ErrDenied is returned by Memory for names marked with Deny.
	ErrDenied = errors.New("storage: access denied")
)

// Reader is a stream opened for reading. Read may return fewer bytes than
// requested; Available reports how many bytes remain.
type Reader interface {
	io.ReadCloser
	Available() int64
}

// Writer is a stream opened for writing. Write may accept fewer bytes than
// offered, in which case it returns a non-nil error.
type Writer interface {
	io.WriteCloser
}

// Storage opens named byte streams.
type Storage interface {
	OpenRead(name string) (Reader, error)
	OpenWrite(name string) (Writer, error)
}
