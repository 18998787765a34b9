package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSONSuccessWithRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(ContextWithRequestID(r.Context(), "req-1"))
	w := httptest.NewRecorder()

	JSONSuccessWithRequest(r, w, map[string]string{"key": "value"}, map[string]any{"total": 10})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("Expected Content-Type application/json")
	}

	var response struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
		Meta    map[string]any    `json:"meta"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !response.Success {
		t.Error("Expected success to be true")
	}
	if response.Data["key"] != "value" {
		t.Errorf("Expected data key=value, got %v", response.Data)
	}
	if response.Meta["request_id"] != "req-1" {
		t.Errorf("Expected request_id in meta, got %v", response.Meta)
	}
	if response.Meta["total"] != float64(10) {
		t.Errorf("Expected total in meta, got %v", response.Meta)
	}
}

func TestJSONErrorWithRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "Category not found", []ErrorDetail{{Field: "name", Message: "missing"}})

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}

	var response ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Success {
		t.Error("Expected success to be false")
	}
	if response.Error.Code != "NOT_FOUND" {
		t.Errorf("Expected code NOT_FOUND, got %s", response.Error.Code)
	}
	if len(response.Error.Details) != 1 || response.Error.Details[0].Field != "name" {
		t.Errorf("Expected one detail for name, got %v", response.Error.Details)
	}
	if response.Meta != nil {
		t.Errorf("Expected no meta without request id, got %v", response.Meta)
	}
}
