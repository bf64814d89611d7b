// Package memstore keeps books in process memory. It backs memory:// URIs
// and the handler tests.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/5w1tchy/library-api/internal/models"
	"github.com/5w1tchy/library-api/internal/store/books"
	"github.com/google/uuid"
)

var _ books.Store = (*Store)(nil)

type Store struct {
	mu    sync.RWMutex
	order []string
	books map[string]*models.Book
}

func New() *Store {
	return &Store{books: make(map[string]*models.Book)}
}

func (s *Store) List(_ context.Context) ([]models.BookSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BookSummary, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.books[id].Summary())
	}
	return out, nil
}

func (s *Store) Create(_ context.Context, title string) (models.Book, error) {
	b := &models.Book{ID: uuid.NewString(), Title: title, Comments: []string{}}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.books[b.ID] = b
	s.order = append(s.order, b.ID)
	return clone(b), nil
}

func (s *Store) Get(_ context.Context, id string) (models.Book, error) {
	key, err := parseID(id)
	if err != nil {
		return models.Book{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.books[key]
	if !ok {
		return models.Book{}, books.ErrNotFound
	}
	return clone(b), nil
}

func (s *Store) AddComment(_ context.Context, id, comment string) (models.Book, error) {
	key, err := parseID(id)
	if err != nil {
		return models.Book{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[key]
	if !ok {
		return models.Book{}, books.ErrNotFound
	}
	b.Comments = append(b.Comments, comment)
	return clone(b), nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[key]; !ok {
		return books.ErrNotFound
	}
	delete(s.books, key)
	for i, v := range s.order {
		if v == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := int64(len(s.books))
	s.books = make(map[string]*models.Book)
	s.order = nil
	return n, nil
}

func (s *Store) Ping(_ context.Context) error { return nil }

// parseID returns the canonical form so differently cased ids resolve
// to the same book.
func parseID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", books.ErrMalformedID, id)
	}
	return u.String(), nil
}

func clone(b *models.Book) models.Book {
	out := *b
	out.Comments = append([]string{}, b.Comments...)
	return out
}
