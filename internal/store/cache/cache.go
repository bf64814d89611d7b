// Package bookcache adds a redis read-through cache in front of List.
//
// Keys are namespaced by a global version counter (books:ver). Every
// successful write bumps the counter, so entries written under an older
// version are never read again and simply expire.
package bookcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/5w1tchy/library-api/internal/models"
	"github.com/5w1tchy/library-api/internal/store/books"
	"github.com/redis/go-redis/v9"
)

const (
	versionKey = "books:ver"
	listBlock  = "list"
)

type Options struct {
	// TTL of a cached list (default 30s).
	TTL time.Duration
	// OpTimeout bounds each redis call (default 150ms).
	OpTimeout time.Duration
	Logger    *slog.Logger
}

// Store decorates a books.Store. Get passes straight through.
type Store struct {
	books.Store
	rdb     *redis.Client
	ttl     time.Duration
	shortTO time.Duration
	log     *slog.Logger
}

// Wrap returns next unchanged when rdb is nil.
func Wrap(next books.Store, rdb *redis.Client, opts Options) books.Store {
	if rdb == nil {
		return next
	}
	if opts.TTL <= 0 {
		opts.TTL = 30 * time.Second
	}
	if opts.OpTimeout <= 0 {
		opts.OpTimeout = 150 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Store{
		Store:   next,
		rdb:     rdb,
		ttl:     opts.TTL,
		shortTO: opts.OpTimeout,
		log:     opts.Logger.With("component", "list-cache"),
	}
}

func (s *Store) List(ctx context.Context) ([]models.BookSummary, error) {
	key, ok := s.listKey(ctx)
	if ok {
		if out, hit := s.lookup(ctx, key); hit {
			return out, nil
		}
	}

	out, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		s.fill(ctx, key, out)
	}
	return out, nil
}

func (s *Store) Create(ctx context.Context, title string) (models.Book, error) {
	b, err := s.Store.Create(ctx, title)
	if err == nil {
		s.bump(ctx)
	}
	return b, err
}

func (s *Store) AddComment(ctx context.Context, id, comment string) (models.Book, error) {
	b, err := s.Store.AddComment(ctx, id, comment)
	if err == nil {
		s.bump(ctx)
	}
	return b, err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	err := s.Store.Delete(ctx, id)
	if err == nil {
		s.bump(ctx)
	}
	return err
}

func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.Store.DeleteAll(ctx)
	if err == nil {
		s.bump(ctx)
	}
	return n, err
}

// Ping reports the underlying store only; a down cache is not fatal.
func (s *Store) Ping(ctx context.Context) error {
	if p, ok := s.Store.(books.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	if c, ok := s.Store.(books.Closer); ok {
		return c.Close(ctx)
	}
	return nil
}

// listKey resolves the current version. On any redis error the cache is
// bypassed for this call.
func (s *Store) listKey(ctx context.Context) (string, bool) {
	cctx, cancel := context.WithTimeout(ctx, s.shortTO)
	defer cancel()

	ver, err := s.rdb.Get(cctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		ver = 0
	} else if err != nil {
		s.log.Warn("cache version read failed; bypassing cache", "error", err)
		return "", false
	}
	return fmt.Sprintf("books:v%d:%s", ver, listBlock), true
}

func (s *Store) lookup(ctx context.Context, key string) ([]models.BookSummary, bool) {
	cctx, cancel := context.WithTimeout(ctx, s.shortTO)
	defer cancel()

	raw, err := s.rdb.Get(cctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		s.log.Warn("cache get failed", "key", key, "error", err)
		return nil, false
	}
	var out []models.BookSummary
	if err := json.Unmarshal(raw, &out); err != nil {
		s.log.Warn("cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	if out == nil {
		out = []models.BookSummary{}
	}
	return out, true
}

func (s *Store) fill(ctx context.Context, key string, v []models.BookSummary) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	cctx, cancel := context.WithTimeout(ctx, s.shortTO)
	defer cancel()
	if err := s.rdb.Set(cctx, key, b, s.ttl).Err(); err != nil {
		s.log.Warn("cache set failed", "key", key, "error", err)
	}
}

// bump runs after a successful write. If the version can't be bumped the
// current list entry is deleted instead.
func (s *Store) bump(ctx context.Context) {
	cctx, cancel := context.WithTimeout(ctx, s.shortTO)
	defer cancel()
	err := s.rdb.Incr(cctx, versionKey).Err()
	if err == nil {
		return
	}
	s.log.Error("cache version bump failed; dropping current list", "error", err)

	key, ok := s.listKey(ctx)
	if !ok {
		return
	}
	dctx, dcancel := context.WithTimeout(ctx, s.shortTO)
	defer dcancel()
	if err := s.rdb.Del(dctx, key).Err(); err != nil {
		s.log.Error("cache invalidation failed", "key", key, "error", err)
	}
}
