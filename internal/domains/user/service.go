package user

import "context"

// Service is the account manager consumed by handlers and by the
// authentication middleware.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Authenticate(ctx context.Context, username, passwordDigest string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context) ([]User, error)
}
