package book

import "errors"

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrBookAlreadyExists = errors.New("book with this title and author already exists")

	// ErrBookNotModified reports an update whose effective state equals the
	// current state (or an empty patch). Distinct from ErrBookNotFound so
	// callers can tell the two failure reasons apart.
	ErrBookNotModified = errors.New("book not modified")
)
