package goquery

import "github.com/galscrape/galscrape"

var _ galscrape.AdapterRegistry = (*Registry)(nil)

// Registry maps source tags to their adapters. Pipeline code selects
// the adapter for a crawl through the registry instead of scattering
// source checks through the orchestration.
type Registry struct {
	adapters map[galscrape.Source]galscrape.SourceAdapter
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[galscrape.Source]galscrape.SourceAdapter),
	}
}

// DefaultRegistry returns a Registry with all supported source
// adapters registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewEromeAdapter())
	r.Register(NewBunkrAdapter())
	r.Register(NewFapelloAdapter())
	r.Register(NewJPGHostAdapter())
	return r
}

// Get returns the adapter for a source.
// The bool result is false if no adapter is registered.
func (r *Registry) Get(source galscrape.Source) (galscrape.SourceAdapter, bool) {
	adapter, ok := r.adapters[source]
	return adapter, ok
}

// Register adds an adapter, replacing any existing one for its source.
func (r *Registry) Register(adapter galscrape.SourceAdapter) {
	r.adapters[adapter.Source()] = adapter
}

// List returns all registered source tags.
func (r *Registry) List() []galscrape.Source {
	sources := make([]galscrape.Source, 0, len(r.adapters))
	for s := range r.adapters {
		sources = append(sources, s)
	}
	return sources
}
