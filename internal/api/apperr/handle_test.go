package apperr_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/5w1tchy/library-api/internal/api/apperr"
	"github.com/5w1tchy/library-api/internal/api/httpx"
	"github.com/5w1tchy/library-api/internal/store/books"
	"github.com/5w1tchy/library-api/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantCT     string
	}{
		{"missing title", &validate.FieldError{Field: "title"}, 200, "missing required field title", "text/plain; charset=utf-8"},
		{"not found", fmt.Errorf("find: %w", books.ErrNotFound), 200, "no book exists", "text/plain; charset=utf-8"},
		{"malformed id", fmt.Errorf("%w: %q", books.ErrMalformedID, "x"), 200, "no book exists", "text/plain; charset=utf-8"},
		{"bad body", fmt.Errorf("%w: eof", httpx.ErrBadBody), 400, "", "application/problem+json"},
		{"too large", &http.MaxBytesError{Limit: 1}, 413, "", "application/problem+json"},
		{"timeout", fmt.Errorf("list: %w", context.DeadlineExceeded), 500, "", "application/problem+json"},
		{"unacknowledged", books.ErrNotAcknowledged, 500, "", "application/problem+json"},
		{"other", errors.New("connection reset"), 500, "", "application/problem+json"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/books/x", nil)
			req.Header.Set("X-Request-ID", "rid-1")

			apperr.Handle(rec, req, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCT, rec.Header().Get("Content-Type"))
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, rec.Body.String())
				return
			}
			var p apperr.Problem
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
			assert.Equal(t, tc.wantStatus, p.Status)
			assert.Equal(t, "/api/books/x", p.Instance)
			assert.Equal(t, "rid-1", p.RequestID)
		})
	}
}
