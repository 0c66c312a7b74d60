package rental

import "errors"

var (
	ErrRentalNotFound = errors.New("rental not found")

	// ErrBookUnavailable means the book exists but is already on loan.
	ErrBookUnavailable = errors.New("book already rented")
)
