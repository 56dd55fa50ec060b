// Package memory provides a deterministic in-process catalog backend. It
// implements the domain.CatalogBackend interface without external calls,
// serving a fixed perfume catalog for development and tests.
package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/tamarw/sillage/internal/domain"
	"github.com/tamarw/sillage/internal/observability"
)

const backendName = "memory"

// Backend implements the domain.CatalogBackend interface over an in-memory
// perfume list.
type Backend struct {
	catalog []domain.PerfumeSummary
}

// NewBackend creates a backend serving the given catalog. A nil catalog
// falls back to the built-in seed data.
func NewBackend(catalog []domain.PerfumeSummary) *Backend {
	if catalog == nil {
		catalog = seedCatalog()
	}
	return &Backend{catalog: catalog}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backendName
}

// QueryPage returns one page of matching perfumes, ordered by like count
// descending then name, with the total page count for the filter.
func (b *Backend) QueryPage(
	ctx context.Context,
	filter domain.FilterSet,
	page, perPage int,
) (*domain.PageResult, error) {
	if page < 1 {
		return nil, errors.New("page must be >= 1")
	}
	if perPage < 1 {
		return nil, errors.New("items per page must be >= 1")
	}

	matches := b.match(filter)

	logger := observability.FromContext(ctx)
	logger.Debug("memory catalog queried",
		observability.Int("matches", len(matches)),
		observability.Int("page", page))

	totalPages := (len(matches) + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start >= len(matches) {
		return &domain.PageResult{Items: []domain.PerfumeSummary{}, Page: page, TotalPages: totalPages}, nil
	}

	end := start + perPage
	if end > len(matches) {
		end = len(matches)
	}

	return &domain.PageResult{
		Items:      matches[start:end],
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// TotalCount returns the number of perfumes matching the filter.
func (b *Backend) TotalCount(_ context.Context, filter domain.FilterSet) (int, error) {
	return len(b.match(filter)), nil
}

// Suggest scores the whole catalog against a quiz-built filter and returns
// the top matches. Accord overlap weighs heaviest, then note overlap, then
// brand and gender agreement; like count breaks ties.
func (b *Backend) Suggest(
	ctx context.Context,
	filter domain.FilterSet,
	limit int,
) ([]domain.PerfumeSummary, error) {
	if limit < 1 {
		return nil, errors.New("suggestion limit must be >= 1")
	}

	type scored struct {
		perfume domain.PerfumeSummary
		score   int
	}

	candidates := make([]scored, 0, len(b.catalog))
	for _, p := range b.catalog {
		s := suggestionScore(filter, p)
		if s <= 0 {
			continue
		}
		candidates = append(candidates, scored{perfume: p, score: s})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		if candidates[i].perfume.LikeCount != candidates[j].perfume.LikeCount {
			return candidates[i].perfume.LikeCount > candidates[j].perfume.LikeCount
		}
		return candidates[i].perfume.Name < candidates[j].perfume.Name
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	logger := observability.FromContext(ctx)
	logger.Debug("suggestions scored",
		observability.Int("candidates", len(candidates)),
		observability.Int("limit", limit))

	suggestions := make([]domain.PerfumeSummary, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, c.perfume)
	}
	return suggestions, nil
}

// match filters the catalog and returns matches ordered by like count
// descending then name for a stable, deterministic page sequence.
func (b *Backend) match(filter domain.FilterSet) []domain.PerfumeSummary {
	matches := make([]domain.PerfumeSummary, 0, len(b.catalog))
	for _, p := range b.catalog {
		if matchesFilter(filter, p) {
			matches = append(matches, p)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].LikeCount != matches[j].LikeCount {
			return matches[i].LikeCount > matches[j].LikeCount
		}
		return matches[i].Name < matches[j].Name
	})

	return matches
}

func matchesFilter(filter domain.FilterSet, p domain.PerfumeSummary) bool {
	if filter.SearchQuery != "" {
		query := strings.ToLower(filter.SearchQuery)
		if !strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Brand), query) {
			return false
		}
	}

	if len(filter.Brands) > 0 && !containsFold(filter.Brands, p.Brand) {
		return false
	}

	if filter.Gender != domain.GenderNone && p.Gender != filter.Gender {
		return false
	}

	if filter.TradableOnly && !p.Tradable {
		return false
	}

	return containsAll(p.Accords, filter.Accords) &&
		containsAll(p.TopNotes, filter.TopNotes) &&
		containsAll(p.MiddleNotes, filter.MiddleNotes) &&
		containsAll(p.BaseNotes, filter.BaseNotes)
}

func suggestionScore(filter domain.FilterSet, p domain.PerfumeSummary) int {
	const (
		accordWeight = 3
		noteWeight   = 2
		brandWeight  = 2
		genderWeight = 1
	)

	score := accordWeight * overlap(filter.Accords, p.Accords)
	score += noteWeight * overlap(filter.TopNotes, p.TopNotes)
	score += noteWeight * overlap(filter.MiddleNotes, p.MiddleNotes)
	score += noteWeight * overlap(filter.BaseNotes, p.BaseNotes)

	if len(filter.Brands) > 0 && containsFold(filter.Brands, p.Brand) {
		score += brandWeight
	}
	if filter.Gender != domain.GenderNone && p.Gender == filter.Gender {
		score += genderWeight
	}

	return score
}

func overlap(wanted, have []string) int {
	count := 0
	for _, w := range wanted {
		if containsFold(have, w) {
			count++
		}
	}
	return count
}

func containsAll(have, wanted []string) bool {
	for _, w := range wanted {
		if !containsFold(have, w) {
			return false
		}
	}
	return true
}

func containsFold(values []string, value string) bool {
	for _, v := range values {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}
