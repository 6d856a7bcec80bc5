package buffer

// Buffer wraps a float64 slice with reuse-friendly semantics.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]float64, n)
		copy(s, b.samples)
		b.samples = s
	}
	// The backing array may hold stale data from a previous use.
	for i := oldLen; i < n; i++ {
		b.samples[i] = 0
	}
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	for i := range b.samples {
		b.samples[i] = 0
	}
}

// LoadFloat32 resizes b to len(src) and widens src into it.
func (b *Buffer) LoadFloat32(src []float32) {
	b.Resize(len(src))
	for i, v := range src {
		b.samples[i] = float64(v)
	}
}

// StoreFloat32 narrows the buffer into dst and returns the number of samples
// written, which is the shorter of the two lengths.
func (b *Buffer) StoreFloat32(dst []float32) int {
	n := min(len(dst), len(b.samples))
	for i := range n {
		dst[i] = float32(b.samples[i])
	}
	return n
}
