package postgres

import (
	"context"
	"fmt"

	"docstore/internal/domain/document"
	"docstore/internal/domain/folder"
	"docstore/internal/domain/user"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type Storage struct {
	pool      *pgxpool.Pool
	users     *UserRepository
	folders   *FolderRepository
	documents *DocumentRepository
}

func New(ctx context.Context, uri string, log *slog.Logger) (*Storage, error) {
	pool, err := pgxpool.New(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Storage{
		pool:      pool,
		users:     NewUserRepository(pool, log),
		folders:   NewFolderRepository(pool, log),
		documents: NewDocumentRepository(pool, log),
	}, nil
}

func (s *Storage) Users() user.Repository {
	return s.users
}

func (s *Storage) Folders() folder.Repository {
	return s.folders
}

func (s *Storage) Documents() document.Repository {
	return s.documents
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}
