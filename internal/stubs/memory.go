// Package stubs provides an in-memory implementation of the storage
// contracts for testing. One mutex guards all three entity kinds, so the
// rent/return transitions are as linearizable as the transactional Postgres
// implementation they stand in for.
package stubs

import (
	"context"
	"sort"
	"sync"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/rental"
	"library-backend/internal/domains/user"
)

type rentalKey struct {
	userID int64
	bookID int64
}

type catalogKey struct {
	title  string
	author string
}

// MemoryStore holds books, users and rentals behind one lock.
type MemoryStore struct {
	mu sync.Mutex

	books   map[int64]book.Book
	users   map[int64]user.User
	rentals map[rentalKey]struct{}

	byTitleAuthor map[catalogKey]int64
	byUsername    map[string]int64

	nextBookID int64
	nextUserID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		books:         make(map[int64]book.Book),
		users:         make(map[int64]user.User),
		rentals:       make(map[rentalKey]struct{}),
		byTitleAuthor: make(map[catalogKey]int64),
		byUsername:    make(map[string]int64),
	}
}

// Books exposes the store as a catalog repository.
func (s *MemoryStore) Books() book.Repository { return &bookStore{s} }

// Users exposes the store as an account repository.
func (s *MemoryStore) Users() user.Repository { return &userStore{s} }

// Rentals exposes the store as a lending repository.
func (s *MemoryStore) Rentals() rental.Repository { return &rentalStore{s} }

// ---------------- books ----------------

type bookStore struct{ s *MemoryStore }

func (b *bookStore) Create(_ context.Context, title, author string) (int64, error) {
	s := b.s
	s.mu.Lock()
	defer s.mu.Unlock()

	key := catalogKey{title, author}
	if _, taken := s.byTitleAuthor[key]; taken {
		return 0, book.ErrBookAlreadyExists
	}

	s.nextBookID++
	id := s.nextBookID
	s.books[id] = book.Book{ID: id, Title: title, Author: author, Availability: true}
	s.byTitleAuthor[key] = id
	return id, nil
}

func (b *bookStore) Delete(_ context.Context, id int64) error {
	s := b.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.books[id]
	if !ok {
		return book.ErrBookNotFound
	}

	delete(s.books, id)
	delete(s.byTitleAuthor, catalogKey{rec.Title, rec.Author})
	// Cascade, mirroring ON DELETE CASCADE.
	for key := range s.rentals {
		if key.bookID == id {
			delete(s.rentals, key)
		}
	}
	return nil
}

func (b *bookStore) Update(_ context.Context, id int64, patch book.UpdateBookRequest) error {
	s := b.s
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.books[id]
	if !ok {
		return book.ErrBookNotFound
	}

	next := current
	if patch.Title != nil {
		next.Title = *patch.Title
	}
	if patch.Author != nil {
		next.Author = *patch.Author
	}
	if patch.Availability != nil {
		next.Availability = *patch.Availability
	}

	if next == current {
		return book.ErrBookNotModified
	}

	newKey := catalogKey{next.Title, next.Author}
	if other, taken := s.byTitleAuthor[newKey]; taken && other != id {
		return book.ErrBookAlreadyExists
	}

	delete(s.byTitleAuthor, catalogKey{current.Title, current.Author})
	s.byTitleAuthor[newKey] = id
	s.books[id] = next
	return nil
}

func (b *bookStore) SetAvailability(_ context.Context, id int64, available bool) error {
	s := b.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	rec.Availability = available
	s.books[id] = rec
	return nil
}

func (b *bookStore) GetByID(_ context.Context, id int64) (*book.Book, error) {
	s := b.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return &rec, nil
}

func (b *bookStore) FindByTitle(_ context.Context, title string) ([]book.Book, error) {
	return b.filter(func(rec book.Book) bool { return rec.Title == title })
}

func (b *bookStore) FindByAuthor(_ context.Context, author string) ([]book.Book, error) {
	return b.filter(func(rec book.Book) bool { return rec.Author == author })
}

func (b *bookStore) List(_ context.Context) ([]book.Book, error) {
	return b.filter(func(book.Book) bool { return true })
}

func (b *bookStore) filter(keep func(book.Book) bool) ([]book.Book, error) {
	s := b.s
	s.mu.Lock()
	defer s.mu.Unlock()

	books := make([]book.Book, 0)
	for _, rec := range s.books {
		if keep(rec) {
			books = append(books, rec)
		}
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books, nil
}

// ---------------- users ----------------

type userStore struct{ s *MemoryStore }

func (u *userStore) Create(_ context.Context, rec *user.User) (int64, error) {
	s := u.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byUsername[rec.Username]; taken {
		return 0, user.ErrUsernameTaken
	}

	s.nextUserID++
	id := s.nextUserID
	stored := *rec
	stored.ID = id
	s.users[id] = stored
	s.byUsername[rec.Username] = id
	return id, nil
}

func (u *userStore) Authenticate(_ context.Context, username, passwordDigest string) (*user.User, error) {
	s := u.s
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byUsername[username]
	if !ok {
		return nil, user.ErrInvalidCredentials
	}
	rec := s.users[id]
	if rec.PasswordHash != passwordDigest {
		return nil, user.ErrInvalidCredentials
	}
	return &rec, nil
}

func (u *userStore) GetByID(_ context.Context, id int64) (*user.User, error) {
	s := u.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &rec, nil
}

func (u *userStore) List(_ context.Context) ([]user.User, error) {
	s := u.s
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]user.User, 0)
	for _, rec := range s.users {
		users = append(users, rec)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// ---------------- rentals ----------------

type rentalStore struct{ s *MemoryStore }

func (r *rentalStore) Rent(_ context.Context, userID, bookID int64) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.books[bookID]
	if !ok {
		return book.ErrBookNotFound
	}
	if !rec.Availability {
		return rental.ErrBookUnavailable
	}
	if _, ok := s.users[userID]; !ok {
		return user.ErrUserNotFound
	}

	s.rentals[rentalKey{userID, bookID}] = struct{}{}
	rec.Availability = false
	s.books[bookID] = rec
	return nil
}

func (r *rentalStore) Return(_ context.Context, userID, bookID int64) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	key := rentalKey{userID, bookID}
	if _, ok := s.rentals[key]; !ok {
		return rental.ErrRentalNotFound
	}

	delete(s.rentals, key)
	if rec, ok := s.books[bookID]; ok {
		rec.Availability = true
		s.books[bookID] = rec
	}
	return nil
}

func (r *rentalStore) List(_ context.Context) ([]rental.Rental, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rentals := make([]rental.Rental, 0)
	for key := range s.rentals {
		rentals = append(rentals, rental.Rental{UserID: key.userID, BookID: key.bookID})
	}
	sort.Slice(rentals, func(i, j int) bool {
		if rentals[i].BookID != rentals[j].BookID {
			return rentals[i].BookID < rentals[j].BookID
		}
		return rentals[i].UserID < rentals[j].UserID
	})
	return rentals, nil
}
