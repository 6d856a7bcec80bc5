package node

// Context provides the stream settings node factories need.
type Context struct {
	SampleRate float64
	BlockSize  int
}
