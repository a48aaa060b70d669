package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"docstore/internal/app/server/api"
	"docstore/internal/app/server/config"
	"docstore/internal/infrastructure/storage"
	"docstore/internal/utils/logger"

	"golang.org/x/exp/slog"
)

const readHeaderTimeout = 10 * time.Second

type App struct {
	cfg   *config.Config
	log   *slog.Logger
	store storage.Store
	srv   *http.Server
}

// New migrates and opens the store and prepares the HTTP server.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := storage.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	return &App{
		cfg:   cfg,
		log:   log,
		store: store,
		srv: &http.Server{
			Addr:              cfg.Server.RunAddress,
			Handler:           api.New(store, cfg, log),
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       2 * cfg.Server.WriteTimeout,
		},
	}, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("starting server", "address", a.srv.Addr, "driver", a.cfg.DB.Driver)
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		_ = a.store.Close()
		if err == nil {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	err := a.srv.Shutdown(shutdownCtx)
	if err != nil {
		a.log.Error("graceful shutdown failed", logger.Err(err))
	}
	if cerr := a.store.Close(); cerr != nil {
		a.log.Error("failed to close storage", logger.Err(cerr))
		err = errors.Join(err, cerr)
	}

	return err
}

func (a *App) Handler() http.Handler {
	return a.srv.Handler
}
