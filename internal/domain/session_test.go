package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tamarw/sillage/internal/domain"
)

func somePerfumes(names ...string) []domain.PerfumeSummary {
	perfumes := make([]domain.PerfumeSummary, 0, len(names))
	for _, name := range names {
		perfumes = append(perfumes, domain.PerfumeSummary{ID: name, Name: name})
	}
	return perfumes
}

func TestSearchSession_FilterChangeInvalidatesCache(t *testing.T) {
	t.Run("setting a field clears the cache and resets to page 1", func(t *testing.T) {
		session := domain.NewSearchSession("s1", 20)

		_, seq := session.BeginFetch()
		require.True(t, session.ApplyPage(seq, 2, somePerfumes("a", "b"), 5))
		session.SetCurrentPage(2)
		require.Equal(t, 1, session.CachedPageCount())

		session.SetGender(domain.GenderForMen)

		require.Equal(t, 0, session.CachedPageCount())
		require.Equal(t, 1, session.Pagination().Current)
		_, ok := session.CachedPage(2)
		require.False(t, ok)
	})

	t.Run("toggling a list member clears the cache", func(t *testing.T) {
		session := domain.NewSearchSession("s1", 20)

		_, seq := session.BeginFetch()
		require.True(t, session.ApplyPage(seq, 1, somePerfumes("a"), 1))

		session.ToggleListMember(domain.FieldAccords, "woody")

		require.Equal(t, 0, session.CachedPageCount())
		require.Equal(t, []string{"woody"}, session.Filter().Accords)
	})

	t.Run("clear resets filter, cache and page", func(t *testing.T) {
		session := domain.NewSearchSession("s1", 20)
		session.SetSearchQuery("oud")
		session.SetListField(domain.FieldBrands, []string{"Brume Noire"})

		_, seq := session.BeginFetch()
		require.True(t, session.ApplyPage(seq, 1, somePerfumes("a"), 4))
		session.SetCurrentPage(3)

		session.Clear()

		require.True(t, session.Filter().IsZero())
		require.Equal(t, 0, session.CachedPageCount())
		require.Equal(t, 1, session.Pagination().Current)
	})
}

func TestSearchSession_ToggleListMember(t *testing.T) {
	session := domain.NewSearchSession("s1", 20)

	session.ToggleListMember(domain.FieldAccords, "woody")
	session.ToggleListMember(domain.FieldAccords, "citrus")
	require.Equal(t, []string{"woody", "citrus"}, session.Filter().Accords)

	// Toggling an existing member removes it, preserving order of the rest.
	session.ToggleListMember(domain.FieldAccords, "woody")
	require.Equal(t, []string{"citrus"}, session.Filter().Accords)
}

func TestSearchSession_ReplaceFilter(t *testing.T) {
	t.Run("identical filter is a no-op", func(t *testing.T) {
		session := domain.NewSearchSession("s1", 20)
		filter := domain.FilterSet{Accords: []string{"woody", "citrus"}}

		require.True(t, session.ReplaceFilter(filter))

		_, seq := session.BeginFetch()
		require.True(t, session.ApplyPage(seq, 1, somePerfumes("a"), 1))

		// Same criteria, different member order: still equal, cache kept.
		resubmitted := domain.FilterSet{Accords: []string{"citrus", "woody"}}
		require.False(t, session.ReplaceFilter(resubmitted))
		require.Equal(t, 1, session.CachedPageCount())
	})

	t.Run("different filter replaces wholesale and invalidates", func(t *testing.T) {
		session := domain.NewSearchSession("s1", 20)
		require.True(t, session.ReplaceFilter(domain.FilterSet{Accords: []string{"woody"}}))

		_, seq := session.BeginFetch()
		require.True(t, session.ApplyPage(seq, 1, somePerfumes("a"), 1))

		require.True(t, session.ReplaceFilter(domain.FilterSet{Accords: []string{"floral"}}))
		require.Equal(t, 0, session.CachedPageCount())
		require.Equal(t, []string{"floral"}, session.Filter().Accords)
	})
}

func TestSearchSession_StaleResponses(t *testing.T) {
	t.Run("response dispatched before a filter change is discarded", func(t *testing.T) {
		session := domain.NewSearchSession("s1", 20)

		_, staleSeq := session.BeginFetch()
		session.SetSearchQuery("new query")

		require.False(t, session.ApplyPage(staleSeq, 1, somePerfumes("old"), 9))
		require.Equal(t, 0, session.CachedPageCount())
		require.Equal(t, 0, session.Pagination().Total)
	})

	t.Run("older response never overwrites a newer one for the same page", func(t *testing.T) {
		session := domain.NewSearchSession("s1", 20)

		_, first := session.BeginFetch()
		_, second := session.BeginFetch()

		require.True(t, session.ApplyPage(second, 1, somePerfumes("new"), 3))
		require.False(t, session.ApplyPage(first, 1, somePerfumes("old"), 3))

		items, ok := session.CachedPage(1)
		require.True(t, ok)
		require.Equal(t, "new", items[0].Name)
	})

	t.Run("stale failure does not surface an error", func(t *testing.T) {
		session := domain.NewSearchSession("s1", 20)

		_, staleSeq := session.BeginFetch()
		session.SetSearchQuery("changed")

		session.Fail(staleSeq, "backend exploded")
		require.Empty(t, session.LastError())
	})
}

func TestSearchSession_ErrorState(t *testing.T) {
	session := domain.NewSearchSession("s1", 20)

	_, seq := session.BeginFetch()
	require.True(t, session.Loading())

	session.Fail(seq, "connection refused")

	require.False(t, session.Loading())
	require.Equal(t, "connection refused", session.LastError())

	// A successful fetch clears the captured error.
	_, next := session.BeginFetch()
	require.True(t, session.ApplyPage(next, 1, somePerfumes("a"), 1))
	require.Empty(t, session.LastError())
	require.False(t, session.Loading())
}

func TestSearchSession_RestorePage(t *testing.T) {
	session := domain.NewSearchSession("s1", 20)

	session.RestorePage(7)
	require.Equal(t, 7, session.Pagination().Current)

	// First applied total re-clamps the restored page.
	_, seq := session.BeginFetch()
	require.True(t, session.ApplyPage(seq, 7, somePerfumes("a"), 3))
	require.Equal(t, 3, session.Pagination().Current)
}

func TestSearchSession_SetCurrentPage(t *testing.T) {
	t.Run("requested page survives until a total is known", func(t *testing.T) {
		session := domain.NewSearchSession("s1", 20)

		// No total yet: a restored page number must not collapse to 1.
		require.Equal(t, 4, session.SetCurrentPage(4))
		require.Equal(t, 1, session.SetCurrentPage(0))
		require.Equal(t, 4, session.SetCurrentPage(4))

		// The first response re-clamps against the real total.
		_, seq := session.BeginFetch()
		require.True(t, session.ApplyPage(seq, 4, somePerfumes("a"), 3))
		require.Equal(t, 3, session.Pagination().Current)
	})

	t.Run("clamps once a total is known", func(t *testing.T) {
		session := domain.NewSearchSession("s1", 20)
		session.SetTotal(3)

		require.Equal(t, 3, session.SetCurrentPage(9))
		require.Equal(t, 1, session.SetCurrentPage(-1))
	})
}
