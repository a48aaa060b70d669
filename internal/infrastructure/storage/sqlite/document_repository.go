package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"docstore/internal/domain/document"

	"golang.org/x/exp/slog"
)

type DocumentRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewDocumentRepository(db *sql.DB, log *slog.Logger) *DocumentRepository {
	return &DocumentRepository{
		db:  db,
		log: log.With("component", "document_repository"),
	}
}

const documentColumns = `id, name, user_id, folder_id, document, type, date_created, size`

func (r *DocumentRepository) List(ctx context.Context) ([]document.Document, error) {
	return r.query(ctx, `SELECT `+documentColumns+` FROM documents ORDER BY id`)
}

func (r *DocumentRepository) ListByUser(ctx context.Context, userID int64) ([]document.Document, error) {
	return r.query(ctx, `SELECT `+documentColumns+` FROM documents WHERE user_id = ? ORDER BY id`, userID)
}

func (r *DocumentRepository) ListByFolder(ctx context.Context, folderID int64) ([]document.Document, error) {
	return r.query(ctx, `SELECT `+documentColumns+` FROM documents WHERE folder_id = ? ORDER BY id`, folderID)
}

func (r *DocumentRepository) query(ctx context.Context, query string, args ...any) ([]document.Document, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list documents", "error", err)
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		var d document.Document
		if err := scanDocument(rows, &d); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}

	return docs, rows.Err()
}

func (r *DocumentRepository) Get(ctx context.Context, id int64) (*document.Document, error) {
	var d document.Document
	row := r.db.QueryRowContext(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = ?`, id)
	if err := scanDocument(row, &d); err != nil {
		return nil, mapError(err)
	}
	return &d, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner, d *document.Document) error {
	return s.Scan(&d.ID, &d.Name, &d.UserID, &d.FolderID, &d.Content, &d.Type, &d.DateCreated, &d.Size)
}

func (r *DocumentRepository) Create(ctx context.Context, d *document.Document) (int64, error) {
	const query = `
		INSERT INTO documents (name, user_id, folder_id, document, type, date_created, size)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		d.Name, d.UserID, d.FolderID, d.Content, d.Type, d.DateCreated.UTC(), d.Size,
	).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}

	return id, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		r.log.Error("failed to delete document", "document_id", id, "error", err)
		return mapError(err)
	}
	return affectedOne(res)
}
