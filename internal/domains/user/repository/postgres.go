package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/user"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

// Create inserts the user as one conditional statement. A concurrent
// registration of the same username makes ON CONFLICT swallow the insert,
// which surfaces here as zero returned rows.
func (r *postgresRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	query := `
		INSERT INTO users (username, password_hash, admin)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query, u.Username, u.PasswordHash, u.Admin).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, user.ErrUsernameTaken
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	return id, nil
}

func (r *postgresRepository) Authenticate(ctx context.Context, username, passwordDigest string) (*user.User, error) {
	query := `
		SELECT id, username, password_hash, admin
		FROM users
		WHERE username = $1 AND password_hash = $2
	`

	var u user.User
	err := r.pool.QueryRow(ctx, query, username, passwordDigest).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Admin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	query := `
		SELECT id, username, password_hash, admin
		FROM users
		WHERE id = $1
	`

	var u user.User
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Admin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]user.User, error) {
	query := `
		SELECT id, username, password_hash, admin
		FROM users
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Admin); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	return users, nil
}
