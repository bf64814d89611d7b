package middlewares

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			err := recover()
			if err == nil {
				return
			}
			if err == http.ErrAbortHandler {
				panic(err)
			}
			rid := GetRequestID(r)
			if rid == "" {
				rid = "unknown"
			}
			slog.Error("panic recovered",
				"request_id", rid,
				"method", r.Method,
				"path", r.URL.Path,
				"panic", err,
				"stack", string(debug.Stack()),
			)
			// Don't expose internal errors to client
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}
