// Package node implements the processing nodes an engine dispatches sample
// buffers through.
//
// A node is either a transform ([Processor]) such as [Identity] and [Gain], or
// the [Oscillator] synthesis node, which is also usable as a Processor that
// ignores its input. Nodes are created by name through a [Registry], which
// lets hosts add their own node types without touching the engine.
//
// All nodes operate on float32 buffers. Validation of host-supplied values is
// done when a node is built; Process itself never fails.
package node
