// Package apperr turns handler errors into responses. It is the only place
// that decides status codes and bodies for failures.
package apperr

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/5w1tchy/library-api/internal/api/httpx"
	"github.com/5w1tchy/library-api/internal/store/books"
	"github.com/5w1tchy/library-api/internal/validate"
)

// MsgNoBook is the body for unknown and malformed ids.
const MsgNoBook = "no book exists"

// Handle writes the response for err. Validation and lookup misses keep
// the 200 plain-text contract; everything else is a problem response.
func Handle(w http.ResponseWriter, r *http.Request, err error) {
	log := slog.Default().With(
		"request_id", r.Header.Get("X-Request-ID"),
		"method", r.Method,
		"path", r.URL.Path,
	)

	var (
		fieldErr *validate.FieldError
		maxErr   *http.MaxBytesError
	)
	switch {
	case errors.As(err, &fieldErr):
		httpx.Text(w, http.StatusOK, fieldErr.Error())

	case errors.Is(err, books.ErrNotFound):
		httpx.Text(w, http.StatusOK, MsgNoBook)

	case errors.Is(err, books.ErrMalformedID):
		log.Debug("malformed book id", "error", err)
		httpx.Text(w, http.StatusOK, MsgNoBook)

	case errors.As(err, &maxErr):
		WriteStatus(w, r, http.StatusRequestEntityTooLarge, "Payload Too Large", "request body too large")

	case errors.Is(err, httpx.ErrBadBody):
		WriteStatus(w, r, http.StatusBadRequest, "Bad Request", "invalid request body")

	case errors.Is(err, context.DeadlineExceeded):
		log.Error("store call timed out", "error", err)
		WriteStatus(w, r, http.StatusInternalServerError, "Store timeout", "")

	case errors.Is(err, books.ErrNotAcknowledged):
		log.Error("store did not acknowledge write", "error", err)
		WriteStatus(w, r, http.StatusInternalServerError, "Store error", "")

	default:
		log.Error("store error", "error", err)
		WriteStatus(w, r, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
