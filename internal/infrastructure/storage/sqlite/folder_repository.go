package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"docstore/internal/domain/folder"

	"golang.org/x/exp/slog"
)

type FolderRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewFolderRepository(db *sql.DB, log *slog.Logger) *FolderRepository {
	return &FolderRepository{
		db:  db,
		log: log.With("component", "folder_repository"),
	}
}

const folderColumns = `id, name, description, user_id, date_created`

func (r *FolderRepository) List(ctx context.Context) ([]folder.Folder, error) {
	return r.query(ctx, `SELECT `+folderColumns+` FROM folders ORDER BY id`)
}

func (r *FolderRepository) ListByUser(ctx context.Context, userID int64) ([]folder.Folder, error) {
	return r.query(ctx, `SELECT `+folderColumns+` FROM folders WHERE user_id = ? ORDER BY id`, userID)
}

func (r *FolderRepository) query(ctx context.Context, query string, args ...any) ([]folder.Folder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list folders", "error", err)
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	var folders []folder.Folder
	for rows.Next() {
		var f folder.Folder
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.UserID, &f.DateCreated); err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, f)
	}

	return folders, rows.Err()
}

func (r *FolderRepository) Get(ctx context.Context, id int64) (*folder.Folder, error) {
	var f folder.Folder
	err := r.db.QueryRowContext(ctx, `SELECT `+folderColumns+` FROM folders WHERE id = ?`, id).
		Scan(&f.ID, &f.Name, &f.Description, &f.UserID, &f.DateCreated)
	if err != nil {
		return nil, mapError(err)
	}
	return &f, nil
}

func (r *FolderRepository) Create(ctx context.Context, f *folder.Folder) (int64, error) {
	const query = `
		INSERT INTO folders (name, description, user_id, date_created)
		VALUES (?, ?, ?, ?)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query, f.Name, f.Description, f.UserID, f.DateCreated.UTC()).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}

	return id, nil
}

func (r *FolderRepository) Rename(ctx context.Context, id int64, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE folders SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return mapError(err)
	}
	return affectedOne(res)
}

func (r *FolderRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM folders WHERE id = ?`, id)
	if err != nil {
		r.log.Error("failed to delete folder", "folder_id", id, "error", err)
		return mapError(err)
	}
	return affectedOne(res)
}
