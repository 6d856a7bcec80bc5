package node

// Processor is the per-buffer transform contract. len(dst) must equal
// len(src); dst may alias src.
type Processor interface {
	Process(dst, src []float32)
}

// Identity is the pass-through node.
type Identity struct{}

// Process copies src into dst.
func (Identity) Process(dst, src []float32) {
	copy(dst, src)
}
