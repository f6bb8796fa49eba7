package buffer

import "sync"

// Pool provides sync.Pool-based Chunk reuse across processing runs.
// A chunk obtained from Get belongs to one run until it is returned.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return NewChunk(DefaultChunkBytes)
			},
		},
	}
}

// Get returns an empty Chunk with the requested capacity.
// Callers must return it via Put when done.
func (p *Pool) Get(capacity int) *Chunk {
	c := p.pool.Get().(*Chunk)
	if c.Cap() != capacity {
		c = NewChunk(capacity)
	}
	c.Reset()
	return c
}

// Put returns a Chunk to the pool for reuse.
// The caller must not use the chunk after calling Put.
func (p *Pool) Put(c *Chunk) {
	if c == nil {
		return
	}
	p.pool.Put(c)
}
