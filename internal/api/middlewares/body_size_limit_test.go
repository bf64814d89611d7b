package middlewares_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/5w1tchy/library-api/internal/api/middlewares"
)

var readAllHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if _, err := io.ReadAll(r.Body); err != nil {
		http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
		return
	}
	w.WriteHeader(http.StatusOK)
})

func TestBodySizeLimit_AcceptsSmallBodies(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", bytes.NewReader([]byte("small body")))
	rec := httptest.NewRecorder()

	mw.BodySizeLimit(1024)(readAllHandler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
}

func TestBodySizeLimit_RejectsLargeBodies(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", bytes.NewReader(bytes.Repeat([]byte("a"), 2048)))
	rec := httptest.NewRecorder()

	mw.BodySizeLimit(1024)(readAllHandler).ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413, got %d", rec.Code)
	}
}

func TestBodySizeLimit_DefaultWhenUnset(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", bytes.NewReader(bytes.Repeat([]byte("a"), 2<<20)))
	rec := httptest.NewRecorder()

	mw.BodySizeLimit(0)(readAllHandler).ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected the 1MB default to reject a 2MB body, got %d", rec.Code)
	}
}
