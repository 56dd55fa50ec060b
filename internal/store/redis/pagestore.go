// Package redis persists per-session view state in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/tamarw/sillage/internal/domain"
	"github.com/tamarw/sillage/internal/observability"
)

// lastPageKey is the fixed key name under which the last-viewed page number
// is persisted, scoped per session.
const lastPageKey = "perfume_list_page"

// PageStore implements the domain.PageStore interface using Redis.
type PageStore struct {
	client *redis.Client
}

// NewPageStore creates a new Redis page store.
func NewPageStore(client *redis.Client) *PageStore {
	return &PageStore{client: client}
}

func pageKey(sessionID string) string {
	return lastPageKey + ":" + sessionID
}

// LoadPage returns the persisted page number for a session.
func (s *PageStore) LoadPage(ctx context.Context, sessionID string) (int, error) {
	value, err := s.client.Get(ctx, pageKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrPageNotStored
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load page: %w", err)
	}

	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		// Corrupt entry; treat as absent rather than failing the session.
		observability.FromContext(ctx).Warn("discarding invalid persisted page",
			observability.String("value", value))
		return 0, domain.ErrPageNotStored
	}

	return page, nil
}

// SavePage overwrites the persisted page number for a session. Entries have
// no TTL; they are overwritten on every page change.
func (s *PageStore) SavePage(ctx context.Context, sessionID string, page int) error {
	if page < 1 {
		return fmt.Errorf("page must be >= 1, got %d", page)
	}

	if err := s.client.Set(ctx, pageKey(sessionID), strconv.Itoa(page), 0).Err(); err != nil {
		return fmt.Errorf("failed to save page: %w", err)
	}
	return nil
}
