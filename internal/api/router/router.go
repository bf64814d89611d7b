package router

import (
	"net/http"
	"time"

	"github.com/5w1tchy/library-api/internal/api/handlers"
	"github.com/5w1tchy/library-api/internal/api/handlers/books"
	storebooks "github.com/5w1tchy/library-api/internal/store/books"
)

func Router(store storebooks.Store, opTimeout time.Duration) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handlers.Health(store))

	// Books: list/create/delete-all and per-id get/comment/delete
	books.New(store, opTimeout).Register(mux)

	return mux
}
