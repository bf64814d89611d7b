package books

import (
	"net/http"

	"github.com/5w1tchy/library-api/internal/api/apperr"
	"github.com/5w1tchy/library-api/internal/api/httpx"
)

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.storeCtx(r)
	defer cancel()

	b, err := h.store.Get(ctx, r.PathValue("id"))
	if err != nil {
		apperr.Handle(w, r, err)
		return
	}
	httpx.OK(w, b)
}
