package node

import "math"

// Oscillator synthesizes a sine wave at a fixed frequency. It keeps no phase
// between calls: every Fill starts at phase 0.
type Oscillator struct {
	sampleRate float64
	frequency  float64
}

// NewOscillator creates a sine oscillator. Inputs are validated by the caller;
// sampleRate must be > 0 and frequency >= 0.
func NewOscillator(sampleRate, frequency float64) *Oscillator {
	return &Oscillator{sampleRate: sampleRate, frequency: frequency}
}

// SampleRate returns the rate the oscillator is sampled at.
func (o *Oscillator) SampleRate() float64 {
	return o.sampleRate
}

// Frequency returns the oscillator frequency in Hz.
func (o *Oscillator) Frequency() float64 {
	return o.frequency
}

// Fill writes sin(2*pi*f*t) with t = i/sampleRate into dst.
//
// Only integer sample indices are evaluated, so f is first reduced modulo the
// sample rate; the samples are the same and 2*pi*f stays finite for any
// finite f.
func (o *Oscillator) Fill(dst []float32) {
	w := 2 * math.Pi * math.Mod(o.frequency, o.sampleRate)
	for i := range dst {
		t := float64(i) / o.sampleRate
		dst[i] = float32(math.Sin(w * t))
	}
}

// Render allocates NumSamples(sampleRate, duration) samples and fills them.
func (o *Oscillator) Render(duration float64) []float32 {
	out := make([]float32, NumSamples(o.sampleRate, duration))
	o.Fill(out)
	return out
}

// Process implements Processor by replacing the block with the waveform.
func (o *Oscillator) Process(dst, _ []float32) {
	o.Fill(dst)
}

// NumSamples returns floor(sampleRate*duration), never negative.
func NumSamples(sampleRate, duration float64) int {
	n := math.Floor(sampleRate * duration)
	if !(n > 0) {
		return 0
	}
	return int(n)
}
