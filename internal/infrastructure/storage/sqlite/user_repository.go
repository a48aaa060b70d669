package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"docstore/internal/domain"
	"docstore/internal/domain/user"

	"golang.org/x/exp/slog"
)

type UserRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewUserRepository(db *sql.DB, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log.With("component", "user_repository"),
	}
}

const userColumns = `id, username, email, password_hash, dropbox_sync, drive_sync`

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		r.log.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.DropboxSync, &u.DriveSync); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *UserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return r.scanOne(row)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return r.scanOne(row)
}

func (r *UserRepository) scanOne(row *sql.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.DropboxSync, &u.DriveSync)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, dropbox_sync, drive_sync)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		u.Username, u.Email, u.PasswordHash, u.DropboxSync, u.DriveSync,
	).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}

	return id, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, username, email string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = ?, email = ? WHERE id = ?`, username, email, id)
	if err != nil {
		return mapError(err)
	}
	return affectedOne(res)
}

func (r *UserRepository) ToggleSync(ctx context.Context, id int64, provider user.Provider) (bool, error) {
	column, ok := provider.Column()
	if !ok {
		return false, domain.Validation("unknown sync provider")
	}

	query := fmt.Sprintf(`UPDATE users SET %[1]s = NOT %[1]s WHERE id = ? RETURNING %[1]s`, column)

	var enabled bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&enabled); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("toggle %s: %w", column, err)
	}

	return enabled, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		r.log.Error("failed to delete user", "user_id", id, "error", err)
		return mapError(err)
	}
	return affectedOne(res)
}
