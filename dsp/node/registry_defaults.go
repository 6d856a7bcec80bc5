package node

import "github.com/cwbudde/tidaw/dsp/core"

// Built-in node type names.
const (
	TypeIdentity   = "identity"
	TypeGain       = "gain"
	TypeOscillator = "oscillator"
)

const defaultOscillatorHz = 440

// DefaultRegistry returns a Registry pre-populated with the built-in nodes.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister(TypeIdentity, func(_ Context, _ Params) (Processor, error) {
		return Identity{}, nil
	})
	r.MustRegister(TypeGain, func(_ Context, p Params) (Processor, error) {
		return NewGainFromParams(p)
	})
	r.MustRegister(TypeOscillator, func(ctx Context, p Params) (Processor, error) {
		if v, bad := p.finite("frequency"); bad || v < 0 {
			return nil, core.InvalidConfigf("frequency must be finite and >= 0: %v", v)
		}
		return NewOscillator(ctx.SampleRate, p.GetNum("frequency", defaultOscillatorHz)), nil
	})

	return r
}
