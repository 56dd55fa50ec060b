// Package memory provides the in-process fallback page store used when
// Redis is not configured.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/tamarw/sillage/internal/domain"
)

// PageStore implements the domain.PageStore interface in process memory.
// State does not survive a restart.
type PageStore struct {
	mu    sync.RWMutex
	pages map[string]int
}

// NewPageStore creates a new in-memory page store.
func NewPageStore() *PageStore {
	return &PageStore{
		pages: make(map[string]int),
	}
}

// LoadPage returns the stored page number for a session.
func (s *PageStore) LoadPage(_ context.Context, sessionID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page, ok := s.pages[sessionID]
	if !ok {
		return 0, domain.ErrPageNotStored
	}
	return page, nil
}

// SavePage overwrites the stored page number for a session.
func (s *PageStore) SavePage(_ context.Context, sessionID string, page int) error {
	if page < 1 {
		return fmt.Errorf("page must be >= 1, got %d", page)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[sessionID] = page
	return nil
}
