package middlewares

import "net/http"

// Chain wraps h with mws in order; the last middleware is the outermost.
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for _, m := range mws {
		h = m(h)
	}
	return h
}
