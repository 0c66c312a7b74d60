package rental

import "context"

// Repository is the storage contract for the lending engine. Rent and
// Return each run as one transaction so the rental row and the book's
// availability flag can never disagree.
type Repository interface {
	// Rent flips the book to on-loan and records the rental atomically.
	// Returns book.ErrBookNotFound when the book does not exist,
	// ErrBookUnavailable when it is already on loan and
	// user.ErrUserNotFound when the user does not exist.
	Rent(ctx context.Context, userID, bookID int64) error

	// Return removes the rental and restores availability atomically.
	// Returns ErrRentalNotFound when no rental exists for the pair; the
	// DELETE's row count is the existence check, there is no separate probe.
	Return(ctx context.Context, userID, bookID int64) error

	List(ctx context.Context) ([]Rental, error)
}
