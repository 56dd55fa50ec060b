package supabase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tamarw/sillage/internal/backend/supabase"
	"github.com/tamarw/sillage/internal/domain"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) *supabase.Backend {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return supabase.NewBackend(supabase.Config{
		URL:     server.URL,
		AnonKey: "test-anon-key",
		Timeout: 5,
	})
}

func TestQueryPage(t *testing.T) {
	t.Run("sends normalized params and maps the response", func(t *testing.T) {
		var gotPath string
		var gotParams map[string]json.RawMessage

		backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.Equal(t, "test-anon-key", r.Header.Get("apikey"))
			require.Equal(t, "Bearer test-anon-key", r.Header.Get("Authorization"))

			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotParams))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"data": [{
					"id": "p-1",
					"name": "Cedar Line",
					"brand": "Maison Verte",
					"gender": "for men",
					"accords": ["woody"],
					"top_notes": ["bergamot"],
					"middle_notes": ["cedar"],
					"base_notes": ["musk"],
					"image_urls": ["https://img.example/cedar.jpg"],
					"is_tradable": true,
					"like_count": 412
				}],
				"totalPage": 3
			}`))
		})

		filter := domain.FilterSet{
			Gender:  domain.GenderForMen,
			Accords: []string{"woody"},
		}

		result, err := backend.QueryPage(context.Background(), filter, 2, 20)
		require.NoError(t, err)

		require.Equal(t, "/rest/v1/rpc/filter_perfumes", gotPath)

		// Set fields are passed through.
		require.JSONEq(t, `"for men"`, string(gotParams["gender_filter"]))
		require.JSONEq(t, `["woody"]`, string(gotParams["accords_filter"]))
		require.JSONEq(t, `2`, string(gotParams["page"]))
		require.JSONEq(t, `20`, string(gotParams["items_per_page"]))

		// Unset fields are explicit nulls, never empty arrays or strings.
		require.JSONEq(t, `null`, string(gotParams["search_query"]))
		require.JSONEq(t, `null`, string(gotParams["brand_filter"]))
		require.JSONEq(t, `null`, string(gotParams["top_notes_filter"]))
		require.JSONEq(t, `null`, string(gotParams["middle_notes_filter"]))
		require.JSONEq(t, `null`, string(gotParams["base_notes_filter"]))
		require.JSONEq(t, `false`, string(gotParams["is_tradable_filter"]))

		require.Equal(t, 3, result.TotalPages)
		require.Equal(t, 2, result.Page)
		require.Len(t, result.Items, 1)
		require.Equal(t, "p-1", result.Items[0].ID)
		require.Equal(t, domain.GenderForMen, result.Items[0].Gender)
		require.True(t, result.Items[0].Tradable)
		require.Equal(t, 412, result.Items[0].LikeCount)
	})

	t.Run("empty list is normalized to null, not an empty array", func(t *testing.T) {
		var gotParams map[string]json.RawMessage

		backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotParams))
			_, _ = w.Write([]byte(`{"data": [], "totalPage": 0}`))
		})

		filter := domain.FilterSet{Brands: []string{}}

		_, err := backend.QueryPage(context.Background(), filter, 1, 20)
		require.NoError(t, err)
		require.JSONEq(t, `null`, string(gotParams["brand_filter"]))
	})

	t.Run("propagates backend errors with the response body", func(t *testing.T) {
		backend := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "function filter_perfumes does not exist", http.StatusNotFound)
		})

		_, err := backend.QueryPage(context.Background(), domain.FilterSet{}, 1, 20)
		require.Error(t, err)
		require.Contains(t, err.Error(), "status 404")
		require.Contains(t, err.Error(), "filter_perfumes does not exist")
	})

	t.Run("fails without an anon key", func(t *testing.T) {
		backend := supabase.NewBackend(supabase.Config{URL: "http://localhost:9", Timeout: 1})

		_, err := backend.QueryPage(context.Background(), domain.FilterSet{}, 1, 20)
		require.Error(t, err)
		require.Contains(t, err.Error(), "anon key is not configured")
	})
}

func TestTotalCount(t *testing.T) {
	var gotPath string

	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`57`))
	})

	count, err := backend.TotalCount(context.Background(), domain.FilterSet{})
	require.NoError(t, err)
	require.Equal(t, 57, count)
	require.Equal(t, "/rest/v1/rpc/count_perfumes", gotPath)
}

func TestSuggest(t *testing.T) {
	var gotPath string
	var gotParams map[string]json.RawMessage

	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotParams))
		_, _ = w.Write([]byte(`[
			{"id": "p-2", "name": "Nuit d'Ambre", "brand": "Atelier Sud", "like_count": 275}
		]`))
	})

	filter := domain.FilterSet{Accords: []string{"musky", "amber"}}

	suggestions, err := backend.Suggest(context.Background(), filter, 10)
	require.NoError(t, err)
	require.Equal(t, "/rest/v1/rpc/suggest_perfumes", gotPath)
	require.JSONEq(t, `10`, string(gotParams["suggestion_limit"]))
	require.Len(t, suggestions, 1)
	require.Equal(t, "Nuit d'Ambre", suggestions[0].Name)
}
