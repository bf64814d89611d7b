package books

import (
	"net/http"

	"github.com/5w1tchy/library-api/internal/api/apperr"
	"github.com/5w1tchy/library-api/internal/api/httpx"
)

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.storeCtx(r)
	defer cancel()

	out, err := h.store.List(ctx)
	if err != nil {
		apperr.Handle(w, r, err)
		return
	}
	httpx.OK(w, out)
}
