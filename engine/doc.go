// Package engine is the host-facing entry point of the audio engine.
//
// An [Engine] is created once per logical audio stream with a sample rate and
// buffer size, and is immutable afterwards. Hosts call [Engine.Process] to run
// a buffer through the processing chain (a pass-through by default) and
// [Engine.Generate] to synthesize a sine tone. Every call returns a newly
// allocated buffer; the engine never retains or mutates host buffers.
//
// Because an Engine holds no mutable state, concurrent calls on one Engine
// are safe.
//
// All validation failures are reported as errors matching [ErrInvalidConfig].
package engine
