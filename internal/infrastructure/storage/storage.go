package storage

import (
	"context"
	"fmt"

	"docstore/internal/app/server/config"
	"docstore/internal/domain/document"
	"docstore/internal/domain/folder"
	"docstore/internal/domain/user"
	"docstore/internal/infrastructure/migration"
	"docstore/internal/infrastructure/storage/postgres"
	"docstore/internal/infrastructure/storage/sqlite"

	"golang.org/x/exp/slog"
)

// Store gives access to the entity repositories of one database.
type Store interface {
	Users() user.Repository
	Folders() folder.Repository
	Documents() document.Repository
	Ping(ctx context.Context) error
	Close() error
}

// New migrates the configured database to the latest schema and opens it.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (Store, error) {
	if err := migration.NewMigration(cfg, nil).Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return Open(ctx, cfg, log)
}

// Open connects to the configured database without touching its schema.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (Store, error) {
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		s, err := sqlite.New(ctx, cfg.DB.DatabaseURI, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverPostgres:
		s, err := postgres.New(ctx, cfg.DB.DatabaseURI, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
}
