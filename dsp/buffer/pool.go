package buffer

import "sync"

// MaxPooledLen is the largest Buffer capacity a Pool keeps for reuse. Larger
// buffers are left to the garbage collector so a single oversized block does
// not stay pinned.
const MaxPooledLen = 1 << 16

// Pool recycles the float64 scratch a node needs to widen a float32 block,
// work on it, and narrow the result back. It is safe for concurrent use.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Widen returns a pooled Buffer holding src converted to float64. Hand it back
// with Narrow or Release.
func (p *Pool) Widen(src []float32) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.LoadFloat32(src)
	return b
}

// Narrow stores b into dst as float32, releases b and returns the number of
// samples written.
func (p *Pool) Narrow(dst []float32, b *Buffer) int {
	n := b.StoreFloat32(dst)
	p.Release(b)
	return n
}

// Release returns b to the pool without reading it. b must not be used
// afterwards.
func (p *Pool) Release(b *Buffer) {
	if b == nil || cap(b.samples) > MaxPooledLen {
		return
	}
	b.samples = b.samples[:0]
	p.pool.Put(b)
}
