package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteData_Success(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/articles", nil)

	WriteData(w, r, map[string]string{"key": "value"}, http.StatusOK)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("expected JSON content type, got '%s'", ct)
	}

	var body struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected valid JSON, got: %v", err)
	}
	if body.Data["key"] != "value" {
		t.Errorf("expected data.key 'value', got '%s'", body.Data["key"])
	}
}

func TestWriteData_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/articles", nil)

	WriteData(w, r, []string{}, http.StatusCreated)

	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if got := w.Body.String(); got != "{\"data\":[]}\n" {
		t.Errorf("unexpected body %q", got)
	}
}

func TestWriteData_NilData(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/articles", nil)

	WriteData(w, r, nil, http.StatusOK)

	if got := w.Body.String(); got != "{\"data\":null}\n" {
		t.Errorf("unexpected body %q", got)
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/articles/1", nil)

	WriteError(w, r, "Not found", http.StatusNotFound)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if got := w.Body.String(); got != "{\"error\":\"Not found\"}\n" {
		t.Errorf("unexpected body %q", got)
	}
}
