package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tamarw/sillage/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 30, cfg.Server.WriteTimeout)
		require.Equal(t, "memory", cfg.Catalog.DefaultBackend)
		require.Equal(t, 20, cfg.Catalog.ItemsPerPage)
		require.Equal(t, 10, cfg.Catalog.SuggestionLimit)
		require.Empty(t, cfg.Redis.Addr)
		require.Equal(t, 0, cfg.Redis.DB)
		require.Empty(t, cfg.Supabase.URL)
		require.Empty(t, cfg.Supabase.AnonKey)
		require.Equal(t, 30, cfg.Supabase.Timeout)
		require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("CATALOG_BACKEND", "supabase")
		t.Setenv("CATALOG_ITEMS_PER_PAGE", "12")
		t.Setenv("CATALOG_SUGGESTION_LIMIT", "5")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("SUPABASE_URL", "https://test.supabase.co")
		t.Setenv("SUPABASE_ANON_KEY", "test-anon-key")
		t.Setenv("SUPABASE_TIMEOUT", "10")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, "supabase", cfg.Catalog.DefaultBackend)
		require.Equal(t, 12, cfg.Catalog.ItemsPerPage)
		require.Equal(t, 5, cfg.Catalog.SuggestionLimit)
		require.Equal(t, "localhost:6379", cfg.Redis.Addr)
		require.Equal(t, 2, cfg.Redis.DB)
		require.Equal(t, "https://test.supabase.co", cfg.Supabase.URL)
		require.Equal(t, "test-anon-key", cfg.Supabase.AnonKey)
		require.Equal(t, 10, cfg.Supabase.Timeout)
		require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	})
}

func TestParseDependenciesConfig(t *testing.T) {
	os.Clearenv()

	cfg := config.Load()
	deps := config.ParseDependenciesConfig(cfg)

	require.Same(t, &cfg.Server, deps.ServerConfig)
	require.Same(t, &cfg.Catalog, deps.CatalogConfig)
	require.Same(t, &cfg.Redis, deps.RedisConfig)
	require.Same(t, &cfg.Supabase, deps.Config)
}
