package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"github.com/tamarw/sillage/internal/backend/memory"
	"github.com/tamarw/sillage/internal/backend/registry"
	"github.com/tamarw/sillage/internal/backend/supabase"
	"github.com/tamarw/sillage/internal/config"
	"github.com/tamarw/sillage/internal/domain"
	"github.com/tamarw/sillage/internal/http"
	"github.com/tamarw/sillage/internal/http/middleware"
	"github.com/tamarw/sillage/internal/observability"
	"github.com/tamarw/sillage/internal/session"
	memstore "github.com/tamarw/sillage/internal/store/memory"
	redisstore "github.com/tamarw/sillage/internal/store/redis"
)

// ErrBackendNotConfigured indicates that a backend is not configured and should be skipped.
var ErrBackendNotConfigured = errors.New("backend not configured")

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *http.Server) {
		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func() domain.EventPublisher {
		return observability.NewEventBus(slog.Default())
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Backend Registry
	if err := container.Provide(func() domain.BackendRegistry {
		return registry.NewRegistry()
	}); err != nil {
		log.Fatalf("Failed to provide backend registry: %v", err)
	}

	// Supabase Backend
	if err := container.Provide(func(cfg *supabase.Config) (*supabase.Backend, error) {
		if cfg.URL == "" {
			return nil, ErrBackendNotConfigured
		}

		return supabase.NewBackend(*cfg), nil
	}); err != nil {
		log.Fatalf("Failed to provide Supabase backend: %v", err)
	}

	// Register backends with registry (invoked for side effects)
	if err := container.Invoke(func(reg domain.BackendRegistry) error {
		if err := reg.Register(context.Background(), memory.NewBackend(nil)); err != nil {
			return fmt.Errorf("failed to register memory backend: %w", err)
		}
		return nil
	}); err != nil {
		log.Fatalf("Failed to register memory backend: %v", err)
	}

	if err := container.Invoke(func(
		reg domain.BackendRegistry,
		supabaseBackend *supabase.Backend,
	) error {
		return reg.Register(context.Background(), supabaseBackend)
	}); err != nil {
		// Ignore ErrBackendNotConfigured as it's expected for optional backends
		if !errors.Is(err, ErrBackendNotConfigured) {
			log.Fatalf("Failed to register Supabase backend: %v", err)
		}
	}

	// Session Registry
	if err := container.Provide(func(catalogCfg *config.CatalogConfig) domain.SessionRegistry {
		return session.NewRegistry(catalogCfg.ItemsPerPage)
	}); err != nil {
		log.Fatalf("Failed to provide session registry: %v", err)
	}

	// Page Store (Redis when configured, in-memory otherwise)
	if err := container.Provide(func(redisCfg *config.RedisConfig) domain.PageStore {
		if redisCfg.Addr == "" {
			return memstore.NewPageStore()
		}

		client := goredis.NewClient(&goredis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})
		return redisstore.NewPageStore(client)
	}); err != nil {
		log.Fatalf("Failed to provide page store: %v", err)
	}

	// Domain Services
	if err := container.Provide(func(
		backends domain.BackendRegistry,
		sessions domain.SessionRegistry,
		pages domain.PageStore,
		events domain.EventPublisher,
		catalogCfg *config.CatalogConfig,
	) *domain.DiscoveryService {
		return domain.NewDiscoveryService(backends, sessions, pages, events, catalogCfg.DefaultBackend)
	}); err != nil {
		log.Fatalf("Failed to provide discovery service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(func(corsCfg *config.CORSConfig) middleware.Middleware {
		return middleware.BuildMiddlewareChain(corsCfg)
	}); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
