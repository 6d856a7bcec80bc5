package engine

import "github.com/cwbudde/tidaw/dsp/node"

// Notifier receives human-readable notices for the user. Calls are
// fire-and-forget; the engine ignores whatever the host does with them.
type Notifier func(message string)

type settings struct {
	notify   Notifier
	registry *node.Registry
	chain    []node.Params
}

// Option configures an Engine.
type Option func(*settings)

// WithNotifier sets the collaborator that receives user-facing notices.
func WithNotifier(n Notifier) Option {
	return func(s *settings) { s.notify = n }
}

// WithRegistry sets the registry chain stages are resolved against.
// A nil registry keeps the default, node.DefaultRegistry().
func WithRegistry(r *node.Registry) Option {
	return func(s *settings) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithChain replaces the default single identity stage with the given stages,
// applied in order by Process.
func WithChain(stages ...node.Params) Option {
	return func(s *settings) { s.chain = stages }
}
