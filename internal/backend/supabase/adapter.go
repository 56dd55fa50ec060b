// Package supabase provides the hosted catalog backend over PostgREST RPC.
// It implements the domain.CatalogBackend interface and handles conversion
// between domain filters and the structured RPC parameter object, including
// normalization of unset fields to explicit nulls.
package supabase

import (
	"context"
	"fmt"

	"github.com/tamarw/sillage/internal/domain"
	"github.com/tamarw/sillage/internal/observability"
)

const backendName = "supabase"

// Backend implements the domain.CatalogBackend interface.
type Backend struct {
	client *Client
}

// NewBackend creates a new Supabase backend.
func NewBackend(config Config) *Backend {
	return &Backend{
		client: NewClient(config),
	}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backendName
}

// QueryPage fetches one page of results through the filter RPC.
func (b *Backend) QueryPage(
	ctx context.Context,
	filter domain.FilterSet,
	page, perPage int,
) (*domain.PageResult, error) {
	params := toParams(filter)
	params.Page = page
	params.ItemsPerPage = perPage

	logger := observability.FromContext(ctx)
	logger.Debug("calling filter RPC",
		observability.Int("page", page),
		observability.Int("items_per_page", perPage))

	resp, err := b.client.FilterPerfumes(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("filter RPC failed: %w", err)
	}

	return &domain.PageResult{
		Items:      toSummaries(resp.Data),
		Page:       page,
		TotalPages: resp.TotalPage,
	}, nil
}

// TotalCount fetches the matching row count without a results page.
func (b *Backend) TotalCount(ctx context.Context, filter domain.FilterSet) (int, error) {
	count, err := b.client.CountPerfumes(ctx, toParams(filter))
	if err != nil {
		return 0, fmt.Errorf("count RPC failed: %w", err)
	}
	return count, nil
}

// Suggest fetches a ranked suggestion list for a quiz-built filter.
func (b *Backend) Suggest(
	ctx context.Context,
	filter domain.FilterSet,
	limit int,
) ([]domain.PerfumeSummary, error) {
	params := toParams(filter)
	params.Limit = limit

	records, err := b.client.SuggestPerfumes(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("suggestion RPC failed: %w", err)
	}
	return toSummaries(records), nil
}

// toParams normalizes a filter into RPC parameters. Empty lists and unset
// scalars become JSON null so the backend sees an explicit "no constraint"
// rather than an ambiguous empty array.
func toParams(filter domain.FilterSet) rpcFilterParams {
	params := rpcFilterParams{
		BrandFilter:       nullable(filter.Brands),
		AccordsFilter:     nullable(filter.Accords),
		TopNotesFilter:    nullable(filter.TopNotes),
		MiddleNotesFilter: nullable(filter.MiddleNotes),
		BaseNotesFilter:   nullable(filter.BaseNotes),
		IsTradableFilter:  filter.TradableOnly,
	}

	if filter.SearchQuery != "" {
		query := filter.SearchQuery
		params.SearchQuery = &query
	}
	if filter.Gender != domain.GenderNone {
		gender := string(filter.Gender)
		params.GenderFilter = &gender
	}

	return params
}

func nullable(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return values
}

func toSummaries(records []perfumeRecord) []domain.PerfumeSummary {
	summaries := make([]domain.PerfumeSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, domain.PerfumeSummary{
			ID:          r.ID,
			Name:        r.Name,
			Brand:       r.Brand,
			Gender:      domain.Gender(r.Gender),
			Accords:     r.Accords,
			TopNotes:    r.TopNotes,
			MiddleNotes: r.MiddleNotes,
			BaseNotes:   r.BaseNotes,
			ImageURLs:   r.ImageURLs,
			Tradable:    r.IsTradable,
			LikeCount:   r.LikeCount,
		})
	}
	return summaries
}
