package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookshelf/internal/catalog"
	"bookshelf/internal/platform/crypto"
)

// SampleCategories mirrors the categories file shipped with the catalog.
func SampleCategories() []catalog.CategoryRecord {
	return []catalog.CategoryRecord{
		{Name: "Fiction", Fiction: true},
		{Name: "NonFiction", Fiction: false},
		{Name: "Poetry", Fiction: true},
	}
}

// SampleBooks references one category ("SciFi") missing from SampleCategories.
func SampleBooks() []catalog.BookRecord {
	return []catalog.BookRecord{
		{Title: "Twenty Thousand Leagues", Author: "Julio Verne", Rating: 4.5, Category: "Fiction", CoverFile: "leagues.jpg", CoverWidth: 100, CoverHeight: 150},
		{Title: "Around the World", Author: "Julio Verne", Rating: 3.5, Category: "Fiction"},
		{Title: "Cosmos", Author: "Carl Sagan", Rating: 5, Category: "NonFiction"},
		{Title: "Odes", Author: "Pablo Neruda", Rating: 4, Category: "Poetry", CoverFile: "odes.jpg", CoverWidth: 80, CoverHeight: 120},
		{Title: "Dune", Author: "Frank Herbert", Rating: 4.8, Category: "SciFi"},
	}
}

// NewSampleLibrary loads the sample records, attaching every named cover.
func NewSampleLibrary(t testing.TB) *catalog.Library {
	t.Helper()
	lib, err := catalog.NewLibrary(SampleCategories())
	if err != nil {
		t.Fatalf("new library: %v", err)
	}
	for _, rec := range SampleBooks() {
		var cover *catalog.Image
		if rec.CoverFile != "" {
			cover = &catalog.Image{File: rec.CoverFile, Width: rec.CoverWidth, Height: rec.CoverHeight}
		}
		lib.AddBook(rec, cover)
	}
	return lib
}

// AdminToken signs a short-lived ADMIN token.
func AdminToken(t testing.TB, secret string) string {
	t.Helper()
	return Token(t, secret, "ADMIN")
}

func Token(t testing.TB, secret, role string) string {
	t.Helper()
	token, _, err := crypto.GenerateToken(secret, "test-operator", role, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestWithAuth creates a new HTTP request with JWT auth for testing
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
