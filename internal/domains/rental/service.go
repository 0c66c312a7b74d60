package rental

import "context"

// Service is the lending engine consumed by handlers.
type Service interface {
	Rent(ctx context.Context, userID, bookID int64) error
	Return(ctx context.Context, userID, bookID int64) error
	List(ctx context.Context) ([]Rental, error)
}
