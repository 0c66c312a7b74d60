package service

import (
	"context"

	"library-backend/internal/domains/rental"
)

// rentalService delegates the actual state transition to the repository,
// whose transaction carries the availability guard. Rechecking the user or
// the book here would reintroduce the check-then-act race the repository
// closes.
type rentalService struct {
	repo rental.Repository
}

func NewRentalService(repo rental.Repository) rental.Service {
	return &rentalService{repo: repo}
}

func (s *rentalService) Rent(ctx context.Context, userID, bookID int64) error {
	return s.repo.Rent(ctx, userID, bookID)
}

func (s *rentalService) Return(ctx context.Context, userID, bookID int64) error {
	return s.repo.Return(ctx, userID, bookID)
}

func (s *rentalService) List(ctx context.Context) ([]rental.Rental, error) {
	return s.repo.List(ctx)
}
