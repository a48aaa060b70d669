package postgres

import (
	"context"
	"fmt"

	"docstore/internal/domain/document"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type DocumentRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewDocumentRepository(pool *pgxpool.Pool, log *slog.Logger) *DocumentRepository {
	return &DocumentRepository{
		pool: pool,
		log:  log.With("component", "document_repository"),
	}
}

const documentColumns = `id, name, user_id, folder_id, document, type, date_created, size`

func (r *DocumentRepository) List(ctx context.Context) ([]document.Document, error) {
	return r.query(ctx, `SELECT `+documentColumns+` FROM documents ORDER BY id`)
}

func (r *DocumentRepository) ListByUser(ctx context.Context, userID int64) ([]document.Document, error) {
	return r.query(ctx, `SELECT `+documentColumns+` FROM documents WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *DocumentRepository) ListByFolder(ctx context.Context, folderID int64) ([]document.Document, error) {
	return r.query(ctx, `SELECT `+documentColumns+` FROM documents WHERE folder_id = $1 ORDER BY id`, folderID)
}

func (r *DocumentRepository) query(ctx context.Context, query string, args ...any) ([]document.Document, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list documents", "error", err)
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *d)
	}

	return docs, rows.Err()
}

func scanDocument(row pgx.Row) (*document.Document, error) {
	var d document.Document
	err := row.Scan(&d.ID, &d.Name, &d.UserID, &d.FolderID, &d.Content, &d.Type, &d.DateCreated, &d.Size)
	if err != nil {
		return nil, err
	}
	d.DateCreated = d.DateCreated.UTC()
	return &d, nil
}

func (r *DocumentRepository) Get(ctx context.Context, id int64) (*document.Document, error) {
	d, err := scanDocument(r.pool.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return d, nil
}

func (r *DocumentRepository) Create(ctx context.Context, d *document.Document) (int64, error) {
	const query = `
		INSERT INTO documents (name, user_id, folder_id, document, type, date_created, size)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		d.Name, d.UserID, d.FolderID, d.Content, d.Type, d.DateCreated, d.Size,
	).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}
	return id, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete document", "document_id", id, "error", err)
		return mapError(err)
	}
	return affectedOne(tag)
}
