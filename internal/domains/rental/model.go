package rental

// Rental records that a user currently holds a book. The composite
// (user_id, book_id) identifies it; a book has at most one rental at a
// time, which the availability flag on the book enforces.
type Rental struct {
	UserID int64 `json:"user_id"`
	BookID int64 `json:"book_id"`
}
