// Package books defines the book store contract shared by every backend.
package books

import (
	"context"

	"github.com/5w1tchy/library-api/internal/models"
)

// Store is implemented by the mongo, postgres and memory backends.
// Implementations must be safe for concurrent use.
type Store interface {
	List(ctx context.Context) ([]models.BookSummary, error)
	Create(ctx context.Context, title string) (models.Book, error)
	Get(ctx context.Context, id string) (models.Book, error)
	// AddComment appends comment and returns the book as it is after the write.
	AddComment(ctx context.Context, id, comment string) (models.Book, error)
	Delete(ctx context.Context, id string) error
	// DeleteAll removes every book and reports how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}

// Pinger is implemented by stores that can report readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Closer is implemented by stores holding a connection.
type Closer interface {
	Close(ctx context.Context) error
}
