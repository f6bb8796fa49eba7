package buffer

import (
	"encoding/binary"
	"io"
)

// DefaultChunkBytes is the default chunk capacity: 256 16-bit samples.
const DefaultChunkBytes = 512

// Chunk is a fixed-capacity byte buffer with a 16-bit sample view.
type Chunk struct {
	raw     []byte
	samples []int16
	n       int
}

// NewChunk returns a Chunk holding up to capacity bytes. Capacities below 2
// are raised to 2 so at least one sample fits.
func NewChunk(capacity int) *Chunk {
	if capacity < 2 {
		capacity = 2
	}
	return &Chunk{
		raw:     make([]byte, capacity),
		samples: make([]int16, capacity/2),
	}
}

// Cap returns the capacity in bytes.
func (c *Chunk) Cap() int { return len(c.raw) }

// Len returns the number of valid bytes from the last Fill or Set.
func (c *Chunk) Len() int { return c.n }

// Fill performs a single Read from r into the chunk and decodes the
// complete samples. A trailing odd byte is kept as raw data only.
func (c *Chunk) Fill(r io.Reader) (int, error) {
	n, err := r.Read(c.raw)
	if n < 0 {
		n = 0
	}
	c.n = n
	c.decode()
	return n, err
}

// Set copies p (truncated to capacity) into the chunk and decodes it.
func (c *Chunk) Set(p []byte) int {
	c.n = copy(c.raw, p)
	c.decode()
	return c.n
}

// Samples returns the decoded samples of the valid bytes. The slice aliases
// the chunk and may be modified in place before Encode.
func (c *Chunk) Samples() []int16 {
	return c.samples[:c.n/2]
}

// Encode writes the samples back into the raw bytes and returns the valid
// bytes. A trailing odd byte is returned unchanged.
func (c *Chunk) Encode() []byte {
	for i, s := range c.Samples() {
		binary.LittleEndian.PutUint16(c.raw[2*i:], uint16(s))
	}
	return c.raw[:c.n]
}

// Reset marks the chunk empty. The backing arrays are kept.
func (c *Chunk) Reset() {
	c.n = 0
}

func (c *Chunk) decode() {
	for i := range c.Samples() {
		c.samples[i] = int16(binary.LittleEndian.Uint16(c.raw[2*i:]))
	}
}
