package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"docstore/internal/domain/document"
	"docstore/internal/domain/folder"
	"docstore/internal/domain/user"

	// Registers the "sqlite3" database/sql driver.
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
)

const dsnParams = "_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"

type Storage struct {
	db        *sql.DB
	users     *UserRepository
	folders   *FolderRepository
	documents *DocumentRepository
}

// New opens the database file at uri. Referential actions rely on
// foreign keys being enabled on every pooled connection.
func New(ctx context.Context, uri string, log *slog.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite3", DSN(uri))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &Storage{
		db:        db,
		users:     NewUserRepository(db, log),
		folders:   NewFolderRepository(db, log),
		documents: NewDocumentRepository(db, log),
	}, nil
}

// DSN appends the connection parameters the schema depends on.
func DSN(uri string) string {
	if !strings.HasPrefix(uri, "file:") {
		uri = "file:" + uri
	}
	if strings.Contains(uri, "?") {
		return uri + "&" + dsnParams
	}
	return uri + "?" + dsnParams
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
	return s.db.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) DB() *sql.DB {
	return s.db
}
