package engine

import (
	"fmt"
	"math"

	"github.com/cwbudde/tidaw/dsp/core"
	"github.com/cwbudde/tidaw/dsp/node"
)

// maxGenerateSamples bounds a single Generate call (about 13.5 hours at 44.1 kHz).
const maxGenerateSamples = math.MaxInt32

// OscillatorParams selects the tone Generate synthesizes.
type OscillatorParams struct {
	Frequency float64 // Hz, >= 0
	Duration  float64 // seconds, >= 0
}

type stage struct {
	nodeType string
	proc     node.Processor
}

// Engine is the per-stream engine context.
type Engine struct {
	cfg    core.ProcessorConfig
	notify Notifier
	stages []stage
}

// New validates the configuration and creates an Engine. It fails with
// ErrInvalidConfig if sampleRate is not a positive finite number, bufferSize
// is not positive, or a chain stage cannot be built.
func New(sampleRate float64, bufferSize int, opts ...Option) (*Engine, error) {
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(sampleRate), core.WithBlockSize(bufferSize))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := settings{
		registry: node.DefaultRegistry(),
		chain:    []node.Params{{Type: node.TypeIdentity}},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	e := &Engine{cfg: cfg, notify: s.notify}

	// Bypassed stages are built and validated but not run.
	ctx := node.Context{SampleRate: cfg.SampleRate, BlockSize: cfg.BlockSize}
	for i, p := range s.chain {
		proc, err := s.registry.Build(ctx, p)
		if err != nil {
			return nil, &core.InvalidConfigError{Reason: fmt.Sprintf("chain stage %d", i), Err: err}
		}

		if p.Bypassed {
			continue
		}
		e.stages = append(e.stages, stage{nodeType: p.Type, proc: proc})
	}

	return e, nil
}

// SampleRate returns the configured sample rate in Hz.
func (e *Engine) SampleRate() float64 {
	return e.cfg.SampleRate
}

// BufferSize returns the configured buffer size in samples.
func (e *Engine) BufferSize() int {
	return e.cfg.BlockSize
}

// Config returns the validated configuration.
func (e *Engine) Config() core.ProcessorConfig {
	return e.cfg
}

// Chain returns the node types of the active (non-bypassed) stages in order.
func (e *Engine) Chain() []string {
	out := make([]string, len(e.stages))
	for i, s := range e.stages {
		out[i] = s.nodeType
	}
	return out
}

// Process runs input through the chain and returns a new buffer of the same
// length. input is never modified. With the default chain the result is an
// element-wise copy of input.
func (e *Engine) Process(input []float32) []float32 {
	out := make([]float32, len(input))
	if len(e.stages) == 0 {
		copy(out, input)
		return out
	}

	e.stages[0].proc.Process(out, input)
	for _, s := range e.stages[1:] {
		s.proc.Process(out, out)
	}

	return out
}

// Generate synthesizes floor(SampleRate*Duration) samples of a sine wave at
// p.Frequency, starting at phase 0. The chain is not applied.
func (e *Engine) Generate(p OscillatorParams) ([]float32, error) {
	if !core.IsFinite(p.Frequency) || p.Frequency < 0 {
		return nil, core.InvalidConfigf("frequency must be finite and >= 0: %v", p.Frequency)
	}
	if !core.IsFinite(p.Duration) || p.Duration < 0 {
		return nil, core.InvalidConfigf("duration must be finite and >= 0: %v", p.Duration)
	}
	if e.cfg.SampleRate*p.Duration > maxGenerateSamples {
		return nil, core.InvalidConfigf("duration too long: %v s at %v Hz", p.Duration, e.cfg.SampleRate)
	}

	return node.NewOscillator(e.cfg.SampleRate, p.Frequency).Render(p.Duration), nil
}

// Greet sends a greeting for name to the notifier, if one is set.
func (e *Engine) Greet(name string) {
	e.Notify(fmt.Sprintf("Hello, %s!", name))
}

// Notify forwards message to the notifier, if one is set.
func (e *Engine) Notify(message string) {
	if e.notify != nil {
		e.notify(message)
	}
}
