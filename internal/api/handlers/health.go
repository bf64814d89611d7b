package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/5w1tchy/library-api/internal/api/apperr"
	"github.com/5w1tchy/library-api/internal/api/httpx"
	storebooks "github.com/5w1tchy/library-api/internal/store/books"
)

// Health pings the store when it supports it.
func Health(store storebooks.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := store.(storebooks.Pinger)
		if ok {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := p.Ping(ctx); err != nil {
				slog.Warn("health check failed", "error", err)
				apperr.WriteStatus(w, r, http.StatusServiceUnavailable, "Service Unavailable", "store unreachable")
				return
			}
		}
		httpx.Text(w, http.StatusOK, "ok")
	}
}
