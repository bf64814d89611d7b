package books

import (
	"context"
	"net/http"
	"time"

	storebooks "github.com/5w1tchy/library-api/internal/store/books"
)

// Handler serves /api/books. It holds no state besides the injected store.
type Handler struct {
	store     storebooks.Store
	opTimeout time.Duration
}

func New(store storebooks.Store, opTimeout time.Duration) *Handler {
	return &Handler{store: store, opTimeout: opTimeout}
}

// Register mounts the book routes. Unmatched methods get a 405 from the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/books", h.list)
	mux.HandleFunc("POST /api/books", h.create)
	mux.HandleFunc("DELETE /api/books", h.deleteAll)

	mux.HandleFunc("GET /api/books/{id}", h.get)
	mux.HandleFunc("POST /api/books/{id}", h.addComment)
	mux.HandleFunc("DELETE /api/books/{id}", h.delete)
}

// storeCtx bounds a single store call.
func (h *Handler) storeCtx(r *http.Request) (context.Context, context.CancelFunc) {
	if h.opTimeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.opTimeout)
}
