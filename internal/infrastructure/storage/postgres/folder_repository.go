package postgres

import (
	"context"
	"fmt"

	"docstore/internal/domain/folder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type FolderRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewFolderRepository(pool *pgxpool.Pool, log *slog.Logger) *FolderRepository {
	return &FolderRepository{
		pool: pool,
		log:  log.With("component", "folder_repository"),
	}
}

const folderColumns = `id, name, description, user_id, date_created`

func (r *FolderRepository) List(ctx context.Context) ([]folder.Folder, error) {
	return r.query(ctx, `SELECT `+folderColumns+` FROM folders ORDER BY id`)
}

func (r *FolderRepository) ListByUser(ctx context.Context, userID int64) ([]folder.Folder, error) {
	return r.query(ctx, `SELECT `+folderColumns+` FROM folders WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *FolderRepository) query(ctx context.Context, query string, args ...any) ([]folder.Folder, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list folders", "error", err)
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	var folders []folder.Folder
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, *f)
	}

	return folders, rows.Err()
}

func scanFolder(row pgx.Row) (*folder.Folder, error) {
	var f folder.Folder
	if err := row.Scan(&f.ID, &f.Name, &f.Description, &f.UserID, &f.DateCreated); err != nil {
		return nil, err
	}
	f.DateCreated = f.DateCreated.UTC()
	return &f, nil
}

func (r *FolderRepository) Get(ctx context.Context, id int64) (*folder.Folder, error) {
	f, err := scanFolder(r.pool.QueryRow(ctx, `SELECT `+folderColumns+` FROM folders WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return f, nil
}

func (r *FolderRepository) Create(ctx context.Context, f *folder.Folder) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO folders (name, description, user_id, date_created)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		f.Name, f.Description, f.UserID, f.DateCreated).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}
	return id, nil
}

func (r *FolderRepository) Rename(ctx context.Context, id int64, name string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE folders SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return mapError(err)
	}
	return affectedOne(tag)
}

func (r *FolderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM folders WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete folder", "folder_id", id, "error", err)
		return mapError(err)
	}
	return affectedOne(tag)
}
