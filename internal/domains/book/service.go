package book

import "context"

// Service is the catalog manager consumed by handlers and by the lending
// engine.
type Service interface {
	Add(ctx context.Context, req CreateBookRequest) (*Book, error)
	Delete(ctx context.Context, id int64) error
	Update(ctx context.Context, id int64, patch UpdateBookRequest) error
	SetAvailability(ctx context.Context, id int64, available bool) error

	GetByID(ctx context.Context, id int64) (*Book, error)
	FindByTitle(ctx context.Context, title string) ([]Book, error)
	FindByAuthor(ctx context.Context, author string) ([]Book, error)
	List(ctx context.Context) ([]Book, error)

	// IsAvailable is false both when the book does not exist and when it is
	// on loan; callers needing to distinguish the two use GetByID.
	IsAvailable(ctx context.Context, id int64) (bool, error)
}
