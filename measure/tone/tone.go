package tone

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/tidaw/dsp/core"
)

var errEmptySignal = errors.New("tone: signal must not be empty")

// Result holds tone analysis results.
type Result struct {
	Samples    int
	Peak       float64
	PeakDBFS   float64
	RMS        float64
	DominantHz float64
}

// Analyze measures samples recorded at sampleRate. The FFT length is the next
// power of two >= len(samples); the tail is zero padded.
func Analyze(samples []float32, sampleRate float64) (Result, error) {
	if len(samples) == 0 {
		return Result{}, errEmptySignal
	}
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return Result{}, fmt.Errorf("tone: sample rate must be > 0: %v", sampleRate)
	}

	x := make([]float64, len(samples))
	sumSq := 0.0
	for i, v := range samples {
		x[i] = float64(v)
		sumSq += x[i] * x[i]
	}

	peak := vecmath.MaxAbs(x)

	res := Result{
		Samples:  len(samples),
		Peak:     peak,
		PeakDBFS: core.LinearToDB(peak),
		RMS:      math.Sqrt(sumSq / float64(len(x))),
	}

	hz, err := dominantFrequency(x, sampleRate)
	if err != nil {
		return Result{}, err
	}
	res.DominantHz = hz

	return res, nil
}

// FFTSize returns the transform length Analyze uses for n samples.
func FFTSize(n int) int {
	if n <= 2 {
		return 2
	}
	return 1 << bits.Len(uint(n-1))
}

func dominantFrequency(x []float64, sampleRate float64) (float64, error) {
	vecmath.MulBlockInPlace(x, hann(len(x)))

	n := FFTSize(len(x))

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0, fmt.Errorf("tone: init fft plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("tone: forward fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	best := 0
	for k := 1; k < bins; k++ {
		if mag[k] > mag[best] {
			best = k
		}
	}
	if mag[best] == 0 {
		return 0, nil
	}

	return (float64(best) + interpolatePeak(mag, best)) * sampleRate / float64(n), nil
}

// interpolatePeak returns the parabolic offset of the true peak around bin k,
// in (-0.5, 0.5).
func interpolatePeak(mag []float64, k int) float64 {
	if k <= 0 || k >= len(mag)-1 {
		return 0
	}

	a, b, c := mag[k-1], mag[k], mag[k+1]

	den := a - 2*b + c
	if den == 0 {
		return 0
	}

	return core.Clamp(0.5*(a-c)/den, -0.5, 0.5)
}

// hann returns a symmetric Hann window of length n, the same coefficients as
// the algo-dsp window.Hann.
func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}

	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}

	return w
}
