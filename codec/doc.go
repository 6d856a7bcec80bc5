// Package codec serializes sample buffers for crossing a process boundary.
//
// In-process hosts exchange []float32 with the engine directly. When samples
// have to travel through a pipe or socket, codec writes them as headerless
// little-endian PCM, either as 32-bit floats or as 16-bit signed integers.
// Buffers are carried as go-audio Float32Buffer values so the sample rate and
// channel count travel with the data.
package codec
