package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mw "github.com/5w1tchy/library-api/internal/api/middlewares"
	"github.com/5w1tchy/library-api/internal/api/router"
	"github.com/5w1tchy/library-api/internal/config"
	"github.com/5w1tchy/library-api/internal/logger"
	"github.com/5w1tchy/library-api/internal/repository"
	"github.com/5w1tchy/library-api/internal/store/books"
	bookcache "github.com/5w1tchy/library-api/internal/store/cache"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.Setup(cfg.Log)
	for _, w := range config.Warnings(cfg) {
		log.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	openCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	store, err := repository.Open(openCtx, cfg.Store)
	cancel()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	rdb, err := connectRedis(ctx, cfg.Cache.RedisURL)
	if err != nil {
		// The list cache is optional; run without it.
		log.Warn("redis unavailable, list cache disabled", "error", err)
		rdb = nil
	}
	store = bookcache.Wrap(store, rdb, bookcache.Options{TTL: cfg.Cache.TTL, Logger: log})

	handler := mw.Chain(
		router.Router(store, cfg.Store.OpTimeout),
		mw.Recovery,
		mw.Compression,
		mw.HPP(mw.DefaultHPPOptions()),
		mw.BodySizeLimit(cfg.Server.MaxBodySize),
		mw.Cors(cfg.Server.AllowedOrigins),
		mw.SecurityHeaders(cfg.AppEnv == "production"),
		mw.AccessLog(log),
		mw.RequestID,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		TLSConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server is running", "addr", server.Addr, "tls", cfg.Server.TLS())
		var err error
		if cfg.Server.TLS() {
			err = server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case serveErr = <-errCh:
	case <-ctx.Done():
		log.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", "error", err)
	}
	if c, ok := store.(books.Closer); ok {
		if err := c.Close(shutdownCtx); err != nil {
			log.Error("store close", "error", err)
		}
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error("redis close", "error", err)
		}
	}
	return serveErr
}

// connectRedis returns a nil client when url is empty.
func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}
	opt, err := redis.ParseURL(url) // e.g. rediss://default:<token>@host:port
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	if opt.TLSConfig != nil {
		opt.TLSConfig.MinVersion = tls.VersionTLS12
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 1 * time.Second
	opt.WriteTimeout = 1 * time.Second

	rdb := redis.NewClient(opt)
	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	slog.Info("connected to redis", "addr", opt.Addr)
	return rdb, nil
}
