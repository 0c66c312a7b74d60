package service

import (
	"context"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared/auth"
)

// userService is stateless; it holds only the repository handle.
type userService struct {
	repo user.Repository
}

func NewUserService(repo user.Repository) user.Service {
	return &userService{repo: repo}
}

// Register digests the password and stores the account. Username
// uniqueness is enforced by the repository's conditional insert, not by a
// lookup beforehand.
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u := &user.User{
		Username:     req.Username,
		PasswordHash: auth.HashSecret(req.Password),
		Admin:        req.Admin,
	}

	id, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id

	return u, nil
}

func (s *userService) Authenticate(ctx context.Context, username, passwordDigest string) (*user.User, error) {
	return s.repo.Authenticate(ctx, username, passwordDigest)
}

func (s *userService) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]user.User, error) {
	return s.repo.List(ctx)
}
