package book

import "context"

// Repository is the storage contract for the catalog. Writes are
// all-or-nothing per row; uniqueness of (title, author) is enforced by the
// store, not by a lookup beforehand.
type Repository interface {
	// Create inserts an available book and returns the assigned id, or
	// ErrBookAlreadyExists when (title, author) is taken.
	Create(ctx context.Context, title, author string) (int64, error)

	// Delete removes the book; the store cascades removal of any rental
	// referencing it. Returns ErrBookNotFound when no such book exists.
	Delete(ctx context.Context, id int64) error

	// Update applies a partial patch atomically. Returns ErrBookNotFound
	// when the book is missing and ErrBookNotModified when the effective
	// state equals the current one.
	Update(ctx context.Context, id int64, patch UpdateBookRequest) error

	// SetAvailability flips the availability flag. Returns ErrBookNotFound
	// when no such book exists.
	SetAvailability(ctx context.Context, id int64, available bool) error

	GetByID(ctx context.Context, id int64) (*Book, error)
	FindByTitle(ctx context.Context, title string) ([]Book, error)
	FindByAuthor(ctx context.Context, author string) ([]Book, error)
	List(ctx context.Context) ([]Book, error)
}
