package node

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Factory builds one configured Processor for a chain stage.
type Factory func(ctx Context, p Params) (Processor, error)

// Registry maps node type names to their factories. It is safe for
// concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

var (
	// ErrUnknownNode is returned when a stage references an unregistered node type.
	ErrUnknownNode = errors.New("unknown node type")

	errDuplicateNode = errors.New("duplicate node type")
)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for the given node type.
func (r *Registry) Register(nodeType string, factory Factory) error {
	if nodeType == "" {
		return errors.New("empty node type")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[nodeType]; exists {
		return fmt.Errorf("%w: %s", errDuplicateNode, nodeType)
	}

	r.factories[nodeType] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(nodeType string, factory Factory) {
	err := r.Register(nodeType, factory)
	if err != nil {
		panic("node registry: " + err.Error())
	}
}

// Lookup returns the factory for the given node type, or nil.
func (r *Registry) Lookup(nodeType string) Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.factories[nodeType]
}

// Types returns the registered node types in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.factories))
	for t := range r.factories {
		out = append(out, t)
	}
	sort.Strings(out)

	return out
}

// Build creates the Processor for one stage.
func (r *Registry) Build(ctx Context, p Params) (Processor, error) {
	factory := r.Lookup(p.Type)
	if factory == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, p.Type)
	}

	proc, err := factory(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("node: build %q: %w", p.Type, err)
	}

	return proc, nil
}
