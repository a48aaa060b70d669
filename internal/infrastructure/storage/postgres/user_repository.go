package postgres

import (
	"context"
	"fmt"

	"docstore/internal/domain"
	"docstore/internal/domain/user"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

const userColumns = `id, username, email, password_hash, dropbox_sync, drive_sync`

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		r.log.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}

	return users, rows.Err()
}

func (r *UserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.DropboxSync, &u.DriveSync); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, dropbox_sync, drive_sync)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		u.Username, u.Email, u.PasswordHash, u.DropboxSync, u.DriveSync).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}
	return id, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, username, email string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET username = $1, email = $2 WHERE id = $3`, username, email, id)
	if err != nil {
		return mapError(err)
	}
	return affectedOne(tag)
}

func (r *UserRepository) ToggleSync(ctx context.Context, id int64, provider user.Provider) (bool, error) {
	column, ok := provider.Column()
	if !ok {
		return false, domain.Validation("unknown sync provider")
	}

	query := fmt.Sprintf(`UPDATE users SET %[1]s = NOT %[1]s WHERE id = $1 RETURNING %[1]s`, column)

	var enabled bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&enabled); err != nil {
		return false, mapError(err)
	}
	return enabled, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete user", "user_id", id, "error", err)
		return mapError(err)
	}
	return affectedOne(tag)
}
