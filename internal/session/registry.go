// Package session provides the in-process registry of live search sessions.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/tamarw/sillage/internal/domain"
)

// Registry implements the domain.SessionRegistry interface.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*domain.SearchSession
	perPage  int
}

// NewRegistry creates a session registry. perPage is the fixed page size
// every new session starts with.
func NewRegistry(perPage int) *Registry {
	return &Registry{
		sessions: make(map[string]*domain.SearchSession),
		perPage:  perPage,
	}
}

// Create allocates a session under a fresh UUID.
func (r *Registry) Create(_ context.Context) (*domain.SearchSession, error) {
	id := uuid.New().String()
	session := domain.NewSearchSession(id, r.perPage)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; exists {
		// UUID collision; practically unreachable.
		return nil, fmt.Errorf("session %s already exists", id)
	}
	r.sessions[id] = session

	return session, nil
}

// Get retrieves a session by ID.
func (r *Registry) Get(_ context.Context, id string) (*domain.SearchSession, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty session id", domain.ErrSessionNotFound)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return session, nil
}

// Remove drops a session by ID. Removing an unknown ID is an error.
func (r *Registry) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
