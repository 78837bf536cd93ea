// Package rentalhousing собирает приложение: хранилище, кэш, сервисы и HTTP-сервер.
package rentalhousing

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/rental-housing/internal/cache"
	"github.com/magabrotheeeer/rental-housing/internal/config"
	accountservice "github.com/magabrotheeeer/rental-housing/internal/services/account"
	interestservice "github.com/magabrotheeeer/rental-housing/internal/services/interest"
	propertyservice "github.com/magabrotheeeer/rental-housing/internal/services/property"
	"github.com/magabrotheeeer/rental-housing/internal/storage"
)

// App приложение целиком: HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
	cache  *cache.Cache
}

// New инициализирует хранилище, кэш, сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(ctx, cfg.StorageConnectionString, cfg.DatabaseName)
	if err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	propertyService := propertyservice.New(db, cacheRedis, logger)
	accountService := accountservice.New(db, logger)
	interestService := interestservice.New(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, propertyService, accountService, interestService)

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
		cache:  cacheRedis,
	}, nil
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
		if dbErr := a.db.Close(timeoutCtx); dbErr != nil {
			a.logger.Error("failed to close storage", slog.Any("err", dbErr))
		}
		return err
	}
}
