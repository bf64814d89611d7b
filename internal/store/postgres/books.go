// Package pgstore stores books in PostgreSQL, one row per book with the
// comments kept in a text[] column.
package pgstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/5w1tchy/library-api/internal/models"
	"github.com/5w1tchy/library-api/internal/store/books"
	"github.com/google/uuid"
)

var _ books.Store = (*Store)(nil)

const (
	listQ      = `SELECT id, title, cardinality(comments) FROM books ORDER BY created_at, id`
	createQ    = `INSERT INTO books (title) VALUES ($1) RETURNING id, title, to_json(comments)`
	getQ       = `SELECT id, title, to_json(comments) FROM books WHERE id = $1`
	commentQ   = `UPDATE books SET comments = array_append(comments, $2) WHERE id = $1 RETURNING id, title, to_json(comments)`
	deleteQ    = `DELETE FROM books WHERE id = $1`
	deleteAllQ = `DELETE FROM books`
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) List(ctx context.Context) ([]models.BookSummary, error) {
	rows, err := s.db.QueryContext(ctx, listQ)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", mapPGError(err))
	}
	defer rows.Close()

	out := make([]models.BookSummary, 0)
	for rows.Next() {
		var b models.BookSummary
		if err := rows.Scan(&b.ID, &b.Title, &b.CommentCount); err != nil {
			return nil, fmt.Errorf("scan book summary: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", mapPGError(err))
	}
	return out, nil
}

func (s *Store) Create(ctx context.Context, title string) (models.Book, error) {
	b, err := scanBook(s.db.QueryRowContext(ctx, createQ, title))
	if err != nil {
		return models.Book{}, fmt.Errorf("insert book: %w", mapPGError(err))
	}
	return b, nil
}

func (s *Store) Get(ctx context.Context, id string) (models.Book, error) {
	key, err := parseID(id)
	if err != nil {
		return models.Book{}, err
	}
	b, err := scanBook(s.db.QueryRowContext(ctx, getQ, key))
	if err != nil {
		return models.Book{}, wrapKeyed("find book", key, err)
	}
	return b, nil
}

// AddComment appends and returns the row in a single statement.
func (s *Store) AddComment(ctx context.Context, id, comment string) (models.Book, error) {
	key, err := parseID(id)
	if err != nil {
		return models.Book{}, err
	}
	b, err := scanBook(s.db.QueryRowContext(ctx, commentQ, key, comment))
	if err != nil {
		return models.Book{}, wrapKeyed("push comment to", key, err)
	}
	return b, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, deleteQ, key)
	if err != nil {
		return wrapKeyed("delete book", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete book %s: %w", key, err)
	}
	if n == 0 {
		return books.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, deleteAllQ)
	if err != nil {
		return 0, fmt.Errorf("delete all books: %w", mapPGError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete all books: %w", err)
	}
	return n, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close(_ context.Context) error {
	return s.db.Close()
}

func scanBook(row *sql.Row) (models.Book, error) {
	var (
		b        models.Book
		comments []byte
	)
	if err := row.Scan(&b.ID, &b.Title, &comments); err != nil {
		return models.Book{}, err
	}
	if len(comments) > 0 {
		if err := json.Unmarshal(comments, &b.Comments); err != nil {
			return models.Book{}, fmt.Errorf("decode comments: %w", err)
		}
	}
	return b.Normalize(), nil
}

func parseID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", books.ErrMalformedID, id)
	}
	return u.String(), nil
}

// wrapKeyed keeps sentinels unwrapped-comparable while adding context.
func wrapKeyed(op, key string, err error) error {
	return fmt.Errorf("%s %s: %w", op, key, mapPGError(err))
}
