package books

import (
	"net/http"

	"github.com/5w1tchy/library-api/internal/api/apperr"
	"github.com/5w1tchy/library-api/internal/api/httpx"
	"github.com/5w1tchy/library-api/internal/validate"
)

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var body CreateBookDTO
	if err := httpx.DecodeBody(r, &body); err != nil {
		apperr.Handle(w, r, err)
		return
	}
	body.Title = validate.Text(body.Title)
	if err := validate.Struct(body); err != nil {
		apperr.Handle(w, r, err)
		return
	}

	ctx, cancel := h.storeCtx(r)
	defer cancel()

	b, err := h.store.Create(ctx, body.Title)
	if err != nil {
		apperr.Handle(w, r, err)
		return
	}
	httpx.OK(w, b)
}
