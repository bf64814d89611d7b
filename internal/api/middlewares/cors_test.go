package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/5w1tchy/library-api/internal/api/middlewares"
)

func TestCors_Wildcard(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/books", nil)
	req.Header.Set("Origin", "http://anywhere.test")
	rec := httptest.NewRecorder()

	mw.Cors([]string{"*"})(okHandler).ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("Expected wildcard origin, got %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCors_BlocksUnknownOrigin(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/books", nil)
	req.Header.Set("Origin", "http://evil.test")
	rec := httptest.NewRecorder()

	mw.Cors([]string{"http://app.test"})(okHandler).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", rec.Code)
	}
}

func TestCors_EchoesAllowedOrigin(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/books", nil)
	req.Header.Set("Origin", "http://app.test")
	rec := httptest.NewRecorder()

	mw.Cors([]string{"http://app.test"})(okHandler).ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "http://app.test" {
		t.Errorf("Expected echoed origin, got %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCors_Preflight(t *testing.T) {
	req := httptest.NewRequest("OPTIONS", "/api/books", nil)
	req.Header.Set("Origin", "http://app.test")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	rec := httptest.NewRecorder()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	mw.Cors([]string{"*"})(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent || called {
		t.Errorf("Expected 204 preflight without reaching handler, got %d (called=%v)", rec.Code, called)
	}
}
