package user

import "context"

// Repository is the storage contract for accounts. Create must be a single
// conditional insert so concurrent registrations of the same username
// cannot both succeed.
type Repository interface {
	// Create inserts the user and returns the assigned id, or
	// ErrUsernameTaken when the username already exists.
	Create(ctx context.Context, u *User) (int64, error)

	// Authenticate returns the user whose username and password digest both
	// match exactly, or ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, passwordDigest string) (*User, error)

	// GetByID returns ErrUserNotFound when no such user exists.
	GetByID(ctx context.Context, id int64) (*User, error)

	List(ctx context.Context) ([]User, error)
}
