package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/rental"
	"library-backend/internal/domains/user"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) rental.Repository {
	return &postgresRepository{pool: pool}
}

// Rent performs the availability check, the flip and the rental insert in
// one transaction. The conditional UPDATE takes the row write-lock, so of N
// concurrent renters exactly one matches a row; the rest see zero rows and
// roll back. The rentals foreign key doubles as the user-existence check,
// which keeps the whole guard race-free.
func (r *postgresRepository) Rent(ctx context.Context, userID, bookID int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE books
		SET availability = FALSE
		WHERE id = $1 AND availability = TRUE
	`, bookID)
	if err != nil {
		return fmt.Errorf("failed to claim book: %w", err)
	}

	if tag.RowsAffected() == 0 {
		// Zero rows means missing or already on loan; tell them apart
		// inside the same transaction.
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, bookID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check book existence: %w", err)
		}
		if !exists {
			return book.ErrBookNotFound
		}
		return rental.ErrBookUnavailable
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO rentals (user_id, book_id)
		VALUES ($1, $2)
	`, userID, bookID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to insert rental: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Return deletes the rental and restores availability in one transaction.
// Deleting first makes the rental row the guard: a second return of the
// same pair matches zero rows and fails cleanly.
func (r *postgresRepository) Return(ctx context.Context, userID, bookID int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		DELETE FROM rentals
		WHERE user_id = $1 AND book_id = $2
	`, userID, bookID)
	if err != nil {
		return fmt.Errorf("failed to delete rental: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return rental.ErrRentalNotFound
	}

	_, err = tx.Exec(ctx, `
		UPDATE books
		SET availability = TRUE
		WHERE id = $1
	`, bookID)
	if err != nil {
		return fmt.Errorf("failed to release book: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context) ([]rental.Rental, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, book_id
		FROM rentals
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	defer rows.Close()

	rentals := make([]rental.Rental, 0)
	for rows.Next() {
		var rec rental.Rental
		if err := rows.Scan(&rec.UserID, &rec.BookID); err != nil {
			return nil, fmt.Errorf("failed to scan rental: %w", err)
		}
		rentals = append(rentals, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rentals: %w", err)
	}

	return rentals, nil
}
