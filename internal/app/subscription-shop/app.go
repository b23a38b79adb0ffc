// Package subscriptionshop собирает приложение магазина: хранилище,
// миграции, сессии, сервисы и HTTP-сервер.
package subscriptionshop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/subscription-shop/internal/cache"
	"github.com/magabrotheeeer/subscription-shop/internal/config"
	"github.com/magabrotheeeer/subscription-shop/internal/http-server/view"
	"github.com/magabrotheeeer/subscription-shop/internal/migrations"
	accountservice "github.com/magabrotheeeer/subscription-shop/internal/services/account"
	authservice "github.com/magabrotheeeer/subscription-shop/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/subscription-shop/internal/services/catalog"
	dashboardservice "github.com/magabrotheeeer/subscription-shop/internal/services/dashboard"
	supportservice "github.com/magabrotheeeer/subscription-shop/internal/services/support"
	"github.com/magabrotheeeer/subscription-shop/internal/session"
	"github.com/magabrotheeeer/subscription-shop/internal/storage"
)

// App HTTP-приложение магазина.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New создает приложение: подключает базу, применяет миграции,
// выбирает хранилище сессий и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	sessionStore, err := newSessionStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	sessionManager := session.NewManager(sessionStore, cfg.Session)

	renderer, err := view.New(logger, sessionManager)
	if err != nil {
		return nil, err
	}

	authSvc := authservice.New(db)
	catalogSvc := catalogservice.New(db)
	accountSvc := accountservice.New(db)
	supportSvc := supportservice.New(db)
	dashboardSvc := dashboardservice.New(db)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, renderer, sessionManager,
		authSvc, catalogSvc, accountSvc, supportSvc, dashboardSvc)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

func newSessionStore(ctx context.Context, cfg *config.Config) (session.Store, error) {
	switch cfg.Session.Backend {
	case "", "memory":
		return session.NewMemoryStore(), nil
	case "redis":
		cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, err
		}
		return session.NewRedisStore(cacheRedis), nil
	default:
		return nil, fmt.Errorf("unknown session backend: %q", cfg.Session.Backend)
	}
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.Close()
		return err
	}
}
