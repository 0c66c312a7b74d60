package service

import (
	"context"
	"errors"

	"library-backend/internal/domains/book"
)

type bookService struct {
	repo book.Repository
}

func NewBookService(repo book.Repository) book.Service {
	return &bookService{repo: repo}
}

func (s *bookService) Add(ctx context.Context, req book.CreateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, req.Title, req.Author)
	if err != nil {
		return nil, err
	}

	return &book.Book{
		ID:           id,
		Title:        req.Title,
		Author:       req.Author,
		Availability: true,
	}, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *bookService) Update(ctx context.Context, id int64, patch book.UpdateBookRequest) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	// An empty patch is "not updated", not an error worth a storage round
	// trip.
	if patch.IsEmpty() {
		return book.ErrBookNotModified
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *bookService) SetAvailability(ctx context.Context, id int64, available bool) error {
	return s.repo.SetAvailability(ctx, id, available)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) FindByTitle(ctx context.Context, title string) ([]book.Book, error) {
	return s.repo.FindByTitle(ctx, title)
}

func (s *bookService) FindByAuthor(ctx context.Context, author string) ([]book.Book, error) {
	return s.repo.FindByAuthor(ctx, author)
}

func (s *bookService) List(ctx context.Context) ([]book.Book, error) {
	return s.repo.List(ctx)
}

func (s *bookService) IsAvailable(ctx context.Context, id int64) (bool, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			return false, nil
		}
		return false, err
	}
	return b.Availability, nil
}
