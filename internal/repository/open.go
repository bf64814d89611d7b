// Package repository builds the configured book store.
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/5w1tchy/library-api/internal/config"
	"github.com/5w1tchy/library-api/internal/repository/sqlconnect"
	"github.com/5w1tchy/library-api/internal/store/books"
	memstore "github.com/5w1tchy/library-api/internal/store/memory"
	mongostore "github.com/5w1tchy/library-api/internal/store/mongo"
	pgstore "github.com/5w1tchy/library-api/internal/store/postgres"
)

// Open selects a backend from the URI scheme:
//
//	mongodb://, mongodb+srv://   MongoDB
//	postgres://, postgresql://   PostgreSQL
//	memory://                    in-process
func Open(ctx context.Context, cfg config.StoreConfig) (books.Store, error) {
	scheme, _, ok := strings.Cut(cfg.URI, "://")
	if !ok {
		return nil, fmt.Errorf("store uri has no scheme")
	}

	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		gw, err := mongostore.Connect(ctx, cfg.URI, cfg.Database)
		if err != nil {
			return nil, err
		}
		slog.Info("connected to mongodb", "database", cfg.Database)
		return mongostore.New(gw), nil

	case "postgres", "postgresql":
		db, err := sqlconnect.ConnectDB(ctx, cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("postgres connection: %w", err)
		}
		if cfg.AutoMigrate {
			if err := pgstore.Migrate(ctx, db); err != nil {
				db.Close()
				return nil, err
			}
		}
		slog.Info("connected to postgres")
		return pgstore.New(db), nil

	case "memory":
		slog.Warn("using in-memory store; data is lost on exit")
		return memstore.New(), nil

	default:
		return nil, fmt.Errorf("unsupported store scheme %q", scheme)
	}
}
