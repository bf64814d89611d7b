package middlewares_test

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/5w1tchy/library-api/internal/api/middlewares"
)

func TestCompression_Gzip(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"1","title":"A","commentcount":0}]`))
	})

	req := httptest.NewRequest("GET", "/api/books", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	mw.Compression(handler).ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatal("Expected gzip encoding")
	}
	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(zr)
	if string(body) != `[{"_id":"1","title":"A","commentcount":0}]` {
		t.Errorf("Unexpected body %q", body)
	}
}

func TestCompression_Passthrough(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("delete successful"))
	})

	rec := httptest.NewRecorder()
	mw.Compression(handler).ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/books/x", nil))

	if rec.Header().Get("Content-Encoding") != "" || rec.Body.String() != "delete successful" {
		t.Errorf("Expected uncompressed body, got %q", rec.Body.String())
	}
}

func TestCompression_PanicStillReturns500(t *testing.T) {
	panicHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	// Recovery outside compression: nothing was compressed yet, so the
	// 500 goes out as plain text.
	req := httptest.NewRequest("GET", "/api/books", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	mw.Chain(panicHandler, mw.Compression, mw.Recovery).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rec.Code)
	}
	if ce := rec.Header().Get("Content-Encoding"); ce != "" {
		t.Errorf("Expected no Content-Encoding, got %q", ce)
	}
	if rec.Body.String() != "Internal Server Error\n" {
		t.Errorf("Expected plain error body, got %q", rec.Body.String())
	}

	// Recovery inside compression: the 500 is compressed like any body.
	req = httptest.NewRequest("GET", "/api/books", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec = httptest.NewRecorder()

	mw.Chain(panicHandler, mw.Recovery, mw.Compression).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rec.Code)
	}
	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatal("Expected gzip encoding")
	}
	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(zr)
	if string(body) != "Internal Server Error\n" {
		t.Errorf("Expected error body, got %q", body)
	}
}

func TestCompression_EmptyBodyStaysUncompressed(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("GET", "/api/books", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	mw.Compression(handler).ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "" || rec.Body.Len() != 0 {
		t.Errorf("Expected untouched response, got %q encoded as %q", rec.Body.Bytes(), rec.Header().Get("Content-Encoding"))
	}
}
