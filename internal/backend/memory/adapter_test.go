package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tamarw/sillage/internal/backend/memory"
	"github.com/tamarw/sillage/internal/domain"
)

func testCatalog() []domain.PerfumeSummary {
	return []domain.PerfumeSummary{
		{
			ID: "1", Name: "Cedar Line", Brand: "Maison Verte",
			Gender:  domain.GenderForMen,
			Accords: []string{"woody", "musky"},
			TopNotes: []string{"bergamot"}, BaseNotes: []string{"musk"},
			Tradable: true, LikeCount: 300,
		},
		{
			ID: "2", Name: "Jardin Blanc", Brand: "Maison Verte",
			Gender:  domain.GenderForWomen,
			Accords: []string{"floral", "sweet"},
			TopNotes: []string{"pear"}, BaseNotes: []string{"vanilla"},
			Tradable: false, LikeCount: 200,
		},
		{
			ID: "3", Name: "Forge", Brand: "Brume Noire",
			Gender:  domain.GenderForMen,
			Accords: []string{"spicy", "woody"},
			TopNotes: []string{"cinnamon"}, BaseNotes: []string{"oud"},
			Tradable: true, LikeCount: 100,
		},
	}
}

func TestNewBackend(t *testing.T) {
	backend := memory.NewBackend(nil)

	require.NotNil(t, backend)
	require.Equal(t, "memory", backend.Name())

	// Nil catalog falls back to seed data.
	count, err := backend.TotalCount(context.Background(), domain.FilterSet{})
	require.NoError(t, err)
	require.Positive(t, count)
}

func TestQueryPage_Filtering(t *testing.T) {
	backend := memory.NewBackend(testCatalog())
	ctx := context.Background()

	t.Run("no constraints match everything", func(t *testing.T) {
		result, err := backend.QueryPage(ctx, domain.FilterSet{}, 1, 10)
		require.NoError(t, err)
		require.Len(t, result.Items, 3)
		require.Equal(t, 1, result.TotalPages)
	})

	t.Run("gender filter", func(t *testing.T) {
		result, err := backend.QueryPage(ctx, domain.FilterSet{Gender: domain.GenderForMen}, 1, 10)
		require.NoError(t, err)
		require.Len(t, result.Items, 2)
	})

	t.Run("search query matches name and brand case-insensitively", func(t *testing.T) {
		result, err := backend.QueryPage(ctx, domain.FilterSet{SearchQuery: "jardin"}, 1, 10)
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		require.Equal(t, "Jardin Blanc", result.Items[0].Name)

		result, err = backend.QueryPage(ctx, domain.FilterSet{SearchQuery: "brume"}, 1, 10)
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		require.Equal(t, "Forge", result.Items[0].Name)
	})

	t.Run("accords filter requires all wanted accords", func(t *testing.T) {
		result, err := backend.QueryPage(ctx, domain.FilterSet{Accords: []string{"woody", "spicy"}}, 1, 10)
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		require.Equal(t, "Forge", result.Items[0].Name)
	})

	t.Run("tradable filter", func(t *testing.T) {
		result, err := backend.QueryPage(ctx, domain.FilterSet{TradableOnly: true}, 1, 10)
		require.NoError(t, err)
		require.Len(t, result.Items, 2)
	})

	t.Run("brand filter", func(t *testing.T) {
		result, err := backend.QueryPage(ctx, domain.FilterSet{Brands: []string{"Maison Verte"}}, 1, 10)
		require.NoError(t, err)
		require.Len(t, result.Items, 2)
	})

	t.Run("results are ordered by like count descending", func(t *testing.T) {
		result, err := backend.QueryPage(ctx, domain.FilterSet{}, 1, 10)
		require.NoError(t, err)
		require.Equal(t, "Cedar Line", result.Items[0].Name)
		require.Equal(t, "Jardin Blanc", result.Items[1].Name)
		require.Equal(t, "Forge", result.Items[2].Name)
	})
}

func TestQueryPage_Pagination(t *testing.T) {
	backend := memory.NewBackend(testCatalog())
	ctx := context.Background()

	t.Run("pages split on items per page", func(t *testing.T) {
		result, err := backend.QueryPage(ctx, domain.FilterSet{}, 1, 2)
		require.NoError(t, err)
		require.Len(t, result.Items, 2)
		require.Equal(t, 2, result.TotalPages)

		result, err = backend.QueryPage(ctx, domain.FilterSet{}, 2, 2)
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		require.Equal(t, "Forge", result.Items[0].Name)
	})

	t.Run("page past the end is empty but keeps the total", func(t *testing.T) {
		result, err := backend.QueryPage(ctx, domain.FilterSet{}, 9, 2)
		require.NoError(t, err)
		require.Empty(t, result.Items)
		require.Equal(t, 2, result.TotalPages)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		_, err := backend.QueryPage(ctx, domain.FilterSet{}, 0, 2)
		require.Error(t, err)

		_, err = backend.QueryPage(ctx, domain.FilterSet{}, 1, 0)
		require.Error(t, err)
	})
}

func TestTotalCount(t *testing.T) {
	backend := memory.NewBackend(testCatalog())

	count, err := backend.TotalCount(context.Background(), domain.FilterSet{Gender: domain.GenderForWomen})
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestSuggest(t *testing.T) {
	backend := memory.NewBackend(testCatalog())
	ctx := context.Background()

	t.Run("ranks by accord overlap", func(t *testing.T) {
		filter := domain.FilterSet{Accords: []string{"spicy", "woody"}}

		suggestions, err := backend.Suggest(ctx, filter, 10)
		require.NoError(t, err)
		require.Len(t, suggestions, 2)
		// Forge matches both accords, Cedar Line only one.
		require.Equal(t, "Forge", suggestions[0].Name)
		require.Equal(t, "Cedar Line", suggestions[1].Name)
	})

	t.Run("like count breaks score ties", func(t *testing.T) {
		filter := domain.FilterSet{Accords: []string{"woody"}}

		suggestions, err := backend.Suggest(ctx, filter, 10)
		require.NoError(t, err)
		require.Len(t, suggestions, 2)
		require.Equal(t, "Cedar Line", suggestions[0].Name)
	})

	t.Run("zero-score perfumes are excluded", func(t *testing.T) {
		filter := domain.FilterSet{Accords: []string{"powdery"}}

		suggestions, err := backend.Suggest(ctx, filter, 10)
		require.NoError(t, err)
		require.Empty(t, suggestions)
	})

	t.Run("limit truncates the ranking", func(t *testing.T) {
		filter := domain.FilterSet{Accords: []string{"woody"}}

		suggestions, err := backend.Suggest(ctx, filter, 1)
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
	})

	t.Run("invalid limit", func(t *testing.T) {
		_, err := backend.Suggest(ctx, domain.FilterSet{}, 0)
		require.Error(t, err)
	})
}
