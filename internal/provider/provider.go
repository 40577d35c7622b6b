package provider

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"SentimentScope/internal/config"
	"SentimentScope/internal/ports"
)

// Factory builds a generator for one model provider from configuration.
type Factory func(ctx context.Context, cfg config.LLMConfig) (ports.Generator, error)

// Registry keeps a mapping from provider names to their factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register adds or replaces a provider factory.
func (r *Registry) Register(name string, factory Factory) {
	if r.factories == nil {
		r.factories = map[string]Factory{}
	}
	r.factories[name] = factory
}

// Resolve returns a factory by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Factory, error) {
	if factory, ok := r.factories[name]; ok {
		return factory, nil
	}
	return nil, fmt.Errorf("provider %q is not registered (available: %s)", name, strings.Join(r.Names(), ", "))
}

// Build resolves cfg.Provider and constructs its generator.
func (r *Registry) Build(ctx context.Context, cfg config.LLMConfig) (ports.Generator, error) {
	factory, err := r.Resolve(cfg.Provider)
	if err != nil {
		return nil, err
	}
	gen, err := factory(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("build %s generator: %w", cfg.Provider, err)
	}
	return gen, nil
}

// Names lists registered providers in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
