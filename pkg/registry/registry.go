package registry

import (
	"sort"
	"sync"
)

// Registry is an open mapping from a symbolic kind to a producer capable of
// building instances for that kind. Each catalog owns its own Registry, so
// the same kind name may mean different things for fields, validations and
// normalizations without colliding.
//
// Loading is single-threaded, but registries are still guarded so that a
// concurrent embedding registering while another goroutine loads does not
// corrupt the map. Registrations become visible to all subsequent lookups
// immediately.
type Registry[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
}

// New creates an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{entries: make(map[string]T)}
}

// Register inserts or overwrites the producer for kind. Last writer wins.
func (r *Registry[T]) Register(kind string, producer T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[kind] = producer
}

// Unregister removes the mapping for kind. Removing an absent kind is a
// no-op.
func (r *Registry[T]) Unregister(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, kind)
}

// Supports reports whether a producer is registered for kind.
func (r *Registry[T]) Supports(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[kind]
	return ok
}

// Lookup returns the producer registered for kind.
func (r *Registry[T]) Lookup(kind string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	producer, ok := r.entries[kind]
	return producer, ok
}

// All returns a copied snapshot of the registered producers, primarily for
// introspection and tests. Mutating the snapshot does not affect the
// registry.
func (r *Registry[T]) All() map[string]T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]T, len(r.entries))
	for kind, producer := range r.entries {
		out[kind] = producer
	}
	return out
}

// Kinds returns the sorted list of registered kind names.
func (r *Registry[T]) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.entries))
	for kind := range r.entries {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
