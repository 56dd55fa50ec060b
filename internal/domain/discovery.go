package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/tamarw/sillage/internal/observability"
)

// DiscoveryService orchestrates search sessions against catalog backends.
// It is the only component issuing remote queries; sessions own the state.
type DiscoveryService struct {
	backends       BackendRegistry
	sessions       SessionRegistry
	pages          PageStore
	events         EventPublisher
	defaultBackend string
}

// NewDiscoveryService creates a new discovery service (DI constructor).
func NewDiscoveryService(
	backends BackendRegistry,
	sessions SessionRegistry,
	pages PageStore,
	events EventPublisher,
	defaultBackend string,
) *DiscoveryService {
	return &DiscoveryService{
		backends:       backends,
		sessions:       sessions,
		pages:          pages,
		events:         events,
		defaultBackend: defaultBackend,
	}
}

// CreateSession allocates a new search session and restores the persisted
// last-viewed page number, if any.
func (d *DiscoveryService) CreateSession(ctx context.Context) (*SearchSession, error) {
	session, err := d.sessions.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	logger := observability.FromContext(ctx)

	page, err := d.pages.LoadPage(ctx, session.ID())
	switch {
	case errors.Is(err, ErrPageNotStored):
		// First visit, stay on page 1.
	case err != nil:
		logger.Warn("failed to restore persisted page, starting at page 1",
			observability.Error(err))
	default:
		session.RestorePage(page)
		logger.Info("restored persisted page",
			observability.Int("page", page))
	}

	return session, nil
}

// Session retrieves an existing session by ID.
func (d *DiscoveryService) Session(ctx context.Context, sessionID string) (*SearchSession, error) {
	return d.sessions.Get(ctx, sessionID)
}

// DropSession removes a session and its state.
func (d *DiscoveryService) DropSession(ctx context.Context, sessionID string) error {
	return d.sessions.Remove(ctx, sessionID)
}

// Submit replaces the session filter wholesale and fetches page 1 of the new
// result set. Submitting a filter equal (order-insensitively) to the active
// one triggers no remote fetch; the cached page 1 is served instead.
func (d *DiscoveryService) Submit(ctx context.Context, sessionID string, filter FilterSet) (*PageResult, error) {
	session, err := d.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	logger := observability.FromContext(ctx)

	if !session.ReplaceFilter(filter) {
		if items, ok := session.CachedPage(session.Pagination().Current); ok {
			logger.Info("identical filter resubmitted, serving cached page")
			pagination := session.Pagination()
			return &PageResult{
				Items:      items,
				Page:       pagination.Current,
				TotalPages: pagination.Total,
			}, nil
		}
		// Unchanged filter but nothing cached yet (fresh session): fall
		// through and fetch once.
	} else if err := d.pages.SavePage(ctx, sessionID, 1); err != nil {
		// The filter change reset the session to page 1.
		logger.Warn("failed to persist page number", observability.Error(err))
	}

	d.publish(ctx, "search.submitted", map[string]interface{}{
		"session_id": sessionID,
	})

	return d.fetchPage(ctx, session, 1)
}

// GetResults returns the requested page for a session, serving from the page
// cache when possible. Once a total is known the page is clamped against it;
// before that (first fetch after a restore) the requested page is targeted
// as-is and re-clamped by the response. The resulting page number is persisted
// so a reloaded view resumes there.
func (d *DiscoveryService) GetResults(ctx context.Context, sessionID string, page int) (*PageResult, error) {
	session, err := d.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	page = session.SetCurrentPage(page)

	if err := d.pages.SavePage(ctx, sessionID, page); err != nil {
		observability.FromContext(ctx).Warn("failed to persist page number",
			observability.Error(err))
	}

	if items, ok := session.CachedPage(page); ok {
		pagination := session.Pagination()
		return &PageResult{
			Items:      items,
			Page:       page,
			TotalPages: pagination.Total,
		}, nil
	}

	result, err := d.fetchPage(ctx, session, page)
	if err != nil {
		return nil, err
	}

	d.publish(ctx, "page.fetched", map[string]interface{}{
		"session_id": sessionID,
		"page":       page,
	})

	return result, nil
}

// ToggleFilter toggles one member of a list filter field and fetches page 1
// of the narrowed result set.
func (d *DiscoveryService) ToggleFilter(ctx context.Context, sessionID string, field ListField, value string) (*PageResult, error) {
	session, err := d.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.ToggleListMember(field, value)

	if err := d.pages.SavePage(ctx, sessionID, 1); err != nil {
		observability.FromContext(ctx).Warn("failed to persist page number",
			observability.Error(err))
	}

	return d.fetchPage(ctx, session, 1)
}

// ClearFilters resets the session filter and refreshes total-page bookkeeping
// through the cheap count query, without fetching a results page. Returns the
// unfiltered item count.
func (d *DiscoveryService) ClearFilters(ctx context.Context, sessionID string) (int, error) {
	session, err := d.sessions.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	session.Clear()

	backend, err := d.backend(ctx)
	if err != nil {
		return 0, err
	}

	count, err := backend.TotalCount(ctx, session.Filter())
	if err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}

	perPage := session.Pagination().PerPage
	session.SetTotal((count + perPage - 1) / perPage)

	if err := d.pages.SavePage(ctx, sessionID, 1); err != nil {
		observability.FromContext(ctx).Warn("failed to persist page number",
			observability.Error(err))
	}

	d.publish(ctx, "filters.cleared", map[string]interface{}{
		"session_id": sessionID,
		"count":      count,
	})

	return count, nil
}

// Suggest issues the one-shot suggestion request for a quiz-built filter and
// returns the ranked list.
func (d *DiscoveryService) Suggest(ctx context.Context, filter FilterSet, limit int) ([]PerfumeSummary, error) {
	backend, err := d.backend(ctx)
	if err != nil {
		return nil, err
	}

	suggestions, err := backend.Suggest(ctx, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("suggestion query failed: %w", err)
	}

	d.publish(ctx, "suggestions.requested", map[string]interface{}{
		"backend": backend.Name(),
		"results": len(suggestions),
	})

	return suggestions, nil
}

// fetchPage issues one remote query for a page under the session's active
// filter and applies the response unless it has been superseded.
func (d *DiscoveryService) fetchPage(ctx context.Context, session *SearchSession, page int) (*PageResult, error) {
	backend, err := d.backend(ctx)
	if err != nil {
		return nil, err
	}

	filter, seq := session.BeginFetch()
	perPage := session.Pagination().PerPage

	logger := observability.FromContext(ctx)
	logger.Info("querying catalog backend",
		observability.String("catalog_backend", backend.Name()),
		observability.Int("page", page),
		observability.Uint64("fetch_seq", seq))

	result, err := backend.QueryPage(ctx, filter, page, perPage)
	if err != nil {
		session.Fail(seq, err.Error())
		return nil, fmt.Errorf("page query failed: %w", err)
	}

	if !session.ApplyPage(seq, page, result.Items, result.TotalPages) {
		logger.Info("discarding stale page response",
			observability.Int("page", page),
			observability.Uint64("fetch_seq", seq))
	}

	return result, nil
}

// backend resolves the catalog backend for this request: the name injected
// into the context, or the configured default.
func (d *DiscoveryService) backend(ctx context.Context) (CatalogBackend, error) {
	name := observability.GetBackend(ctx)
	if name == "" {
		name = d.defaultBackend
	}

	backend, err := d.backends.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("catalog backend not available: %w", err)
	}
	return backend, nil
}

func (d *DiscoveryService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if d.events == nil {
		return
	}
	d.events.Publish(ctx, eventType, data)
}
