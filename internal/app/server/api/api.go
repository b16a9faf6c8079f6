package api

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	countryAPI "worldexplorer/internal/app/server/api/http/country"
	favoritesAPI "worldexplorer/internal/app/server/api/http/favorites"
	healthAPI "worldexplorer/internal/app/server/api/http/health"
	"worldexplorer/internal/app/server/api/http/middleware"
	"worldexplorer/internal/app/server/api/http/middleware/auth"
	"worldexplorer/internal/app/server/api/http/middleware/logger"
	userAPI "worldexplorer/internal/app/server/api/http/user"
	"worldexplorer/internal/app/server/config"
	"worldexplorer/internal/domain/country"
	"worldexplorer/internal/domain/favorites"
	"worldexplorer/internal/domain/session"
	"worldexplorer/internal/domain/user"
	"worldexplorer/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health    *healthAPI.Handler
	User      *userAPI.Handler
	Favorites *favoritesAPI.Handler
	Country   *countryAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(storage *postgres.Storage, catalog countryAPI.Catalog, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(corsMiddleware(cfg.Server.AllowedOrigins))

	humaConfig := huma.DefaultConfig("WorldExplorer API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, catalog, cfg, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Favorites.SetupRoutes(API)
	h.Country.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, catalog countryAPI.Catalog, cfg *config.Config, log *slog.Logger) *Handlers {
	sessionRepo := postgres.NewSessionRepository(storage, log)
	sessionTTL := time.Duration(cfg.Server.SessionTTLHours) * time.Hour
	sessionService := session.NewService(sessionRepo, sessionTTL, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage, log)
	userService := user.NewService(userRepo, user.NewValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	public := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, public, middlewares.GetAllAndClear())

	favoritesRepo := postgres.NewFavoritesRepository(storage, log)
	favoritesService := favorites.NewService(favoritesRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	favoritesHandler := favoritesAPI.NewHandler(favoritesService, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	countryHandler := countryAPI.NewHandler(catalog, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:    healthHandler,
		User:      userHandler,
		Favorites: favoritesHandler,
		Country:   countryHandler,
	}
}

// StartSessionPurge sweeps expired sessions hourly until ctx is done.
func StartSessionPurge(ctx context.Context, storage *postgres.Storage, cfg *config.Config, log *slog.Logger) {
	repo := postgres.NewSessionRepository(storage, log)
	ttl := time.Duration(cfg.Server.SessionTTLHours) * time.Hour
	svc := session.NewService(repo, ttl, log)

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				svc.PurgeExpired(ctx)
			}
		}
	}()
}

// NewCatalogClient builds the upstream catalog client from config.
func NewCatalogClient(cfg *config.Config, log *slog.Logger) *country.Client {
	timeout := time.Duration(cfg.Catalog.TimeoutSeconds) * time.Second
	return country.NewClient(cfg.Catalog.BaseURL, timeout, log)
}
