package domain

import "context"

// CatalogBackend is the sole boundary between the discovery logic and the
// hosted perfume catalog. Implementations never retry; any transport or
// backend error propagates to the caller with a human-readable message.
type CatalogBackend interface {
	// QueryPage returns one page of perfumes matching the filter, together
	// with the total page count for that filter. Deterministic for the same
	// filter and backend data.
	QueryPage(ctx context.Context, filter FilterSet, page, perPage int) (*PageResult, error)

	// TotalCount returns the number of perfumes matching the filter without
	// fetching a results page. Used when filters are cleared to reset
	// total-page bookkeeping.
	TotalCount(ctx context.Context, filter FilterSet) (int, error)

	// Suggest returns a ranked suggestion list for a quiz-built filter.
	Suggest(ctx context.Context, filter FilterSet, limit int) ([]PerfumeSummary, error)

	// Name returns the backend identifier.
	Name() string
}

// BackendRegistry manages available catalog backends.
type BackendRegistry interface {
	// Register adds a backend to the registry.
	Register(ctx context.Context, backend CatalogBackend) error

	// Get retrieves a backend by name.
	Get(ctx context.Context, name string) (CatalogBackend, error)

	// List returns all registered backend names.
	List(ctx context.Context) ([]string, error)
}

// SessionRegistry manages live search sessions.
type SessionRegistry interface {
	// Create allocates a new session and returns it.
	Create(ctx context.Context) (*SearchSession, error)

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*SearchSession, error)

	// Remove drops a session by ID.
	Remove(ctx context.Context, id string) error
}

// PageStore persists the last-viewed page number per session so a reloaded
// view resumes where it left off. Read once at session creation, written on
// every page change.
type PageStore interface {
	// LoadPage returns the persisted page number, or ErrPageNotStored.
	LoadPage(ctx context.Context, sessionID string) (int, error)

	// SavePage overwrites the persisted page number.
	SavePage(ctx context.Context, sessionID string, page int) error
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
