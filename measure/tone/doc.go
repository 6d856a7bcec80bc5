// Package tone measures level and pitch of a rendered sample buffer.
//
// It is used to check oscillator output and to report on buffers passing
// through a host: peak and RMS level, and the dominant frequency estimated
// from a Hann-windowed FFT with parabolic peak interpolation.
package tone
