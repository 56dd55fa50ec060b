// Package registry implements the named catalog backend registry.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tamarw/sillage/internal/domain"
)

// Registry implements the domain.BackendRegistry interface.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]domain.CatalogBackend
}

// NewRegistry creates a new backend registry.
func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]domain.CatalogBackend),
	}
}

// Register adds a backend to the registry.
func (r *Registry) Register(_ context.Context, backend domain.CatalogBackend) error {
	if backend == nil {
		return errors.New("backend cannot be nil")
	}

	name := backend.Name()
	if name == "" {
		return errors.New("backend name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.backends[name]; exists {
		return fmt.Errorf("backend %s already registered", name)
	}
	r.backends[name] = backend

	return nil
}

// Get retrieves a backend by name.
func (r *Registry) Get(_ context.Context, name string) (domain.CatalogBackend, error) {
	if name == "" {
		return nil, errors.New("backend name cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	backend, exists := r.backends[name]
	if !exists {
		return nil, fmt.Errorf("backend %s not found", name)
	}

	return backend, nil
}

// List returns all registered backend names.
func (r *Registry) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}

	return names, nil
}
