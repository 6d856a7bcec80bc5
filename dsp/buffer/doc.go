// Package buffer provides pooled float64 scratch buffers for nodes that run
// their block math in double precision while the engine boundary exchanges
// float32 samples.
package buffer
