package books

import (
	"log/slog"
	"net/http"

	"github.com/5w1tchy/library-api/internal/api/apperr"
	"github.com/5w1tchy/library-api/internal/api/httpx"
)

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.storeCtx(r)
	defer cancel()

	if err := h.store.Delete(ctx, r.PathValue("id")); err != nil {
		apperr.Handle(w, r, err)
		return
	}
	httpx.Text(w, http.StatusOK, msgDeleted)
}

func (h *Handler) deleteAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.storeCtx(r)
	defer cancel()

	n, err := h.store.DeleteAll(ctx)
	if err != nil {
		apperr.Handle(w, r, err)
		return
	}
	slog.Info("deleted all books", "count", n, "request_id", r.Header.Get("X-Request-ID"))
	httpx.Text(w, http.StatusOK, msgDeletedAll)
}
