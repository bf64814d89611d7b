package books

import (
	"net/http"

	"github.com/5w1tchy/library-api/internal/api/apperr"
	"github.com/5w1tchy/library-api/internal/api/httpx"
	"github.com/5w1tchy/library-api/internal/validate"
)

// addComment checks the comment before looking at the id, so a missing
// comment wins over an unknown book.
func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	var body AddCommentDTO
	if err := httpx.DecodeBody(r, &body); err != nil {
		apperr.Handle(w, r, err)
		return
	}
	body.Comment = validate.Text(body.Comment)
	if err := validate.Struct(body); err != nil {
		apperr.Handle(w, r, err)
		return
	}

	ctx, cancel := h.storeCtx(r)
	defer cancel()

	b, err := h.store.AddComment(ctx, r.PathValue("id"), body.Comment)
	if err != nil {
		apperr.Handle(w, r, err)
		return
	}
	httpx.OK(w, b)
}
