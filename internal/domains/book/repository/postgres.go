package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

// Create relies on the store's unique constraint instead of a pre-check, so
// two concurrent inserts of the same (title, author) cannot both succeed.
func (r *postgresRepository) Create(ctx context.Context, title, author string) (int64, error) {
	query := `
		INSERT INTO books (title, author)
		VALUES ($1, $2)
		ON CONFLICT (title, author) DO NOTHING
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query, title, author).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, book.ErrBookAlreadyExists
		}
		return 0, fmt.Errorf("failed to insert book: %w", err)
	}

	return id, nil
}

// Delete removes the book; rentals referencing it vanish through the
// ON DELETE CASCADE constraint.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// Update locks the row, merges the patch over the current values and writes
// only when something actually changes. The lock keeps a concurrent rent or
// return from interleaving between the read and the write.
func (r *postgresRepository) Update(ctx context.Context, id int64, patch book.UpdateBookRequest) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var current book.Book
	err = tx.QueryRow(ctx, `
		SELECT id, title, author, availability
		FROM books
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(&current.ID, &current.Title, &current.Author, &current.Availability)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return book.ErrBookNotFound
		}
		return fmt.Errorf("failed to lock book: %w", err)
	}

	next := current
	if patch.Title != nil {
		next.Title = *patch.Title
	}
	if patch.Author != nil {
		next.Author = *patch.Author
	}
	if patch.Availability != nil {
		next.Availability = *patch.Availability
	}

	if next == current {
		return book.ErrBookNotModified
	}

	_, err = tx.Exec(ctx, `
		UPDATE books
		SET title = $2, author = $3, availability = $4
		WHERE id = $1
	`, id, next.Title, next.Author, next.Availability)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return book.ErrBookAlreadyExists
		}
		return fmt.Errorf("failed to update book: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *postgresRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE books
		SET availability = $2
		WHERE id = $1
	`, id, available)
	if err != nil {
		return fmt.Errorf("failed to set availability: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	var b book.Book
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, author, availability
		FROM books
		WHERE id = $1
	`, id).Scan(&b.ID, &b.Title, &b.Author, &b.Availability)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return &b, nil
}

func (r *postgresRepository) FindByTitle(ctx context.Context, title string) ([]book.Book, error) {
	return r.findBy(ctx, `
		SELECT id, title, author, availability
		FROM books
		WHERE title = $1
		ORDER BY id
	`, title)
}

func (r *postgresRepository) FindByAuthor(ctx context.Context, author string) ([]book.Book, error) {
	return r.findBy(ctx, `
		SELECT id, title, author, availability
		FROM books
		WHERE author = $1
		ORDER BY id
	`, author)
}

func (r *postgresRepository) List(ctx context.Context) ([]book.Book, error) {
	return r.findBy(ctx, `
		SELECT id, title, author, availability
		FROM books
		ORDER BY id
	`)
}

func (r *postgresRepository) findBy(ctx context.Context, query string, args ...any) ([]book.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := make([]book.Book, 0)
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Availability); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}

	return books, nil
}
