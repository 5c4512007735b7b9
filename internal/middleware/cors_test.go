package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsTestHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS_AllowedOrigin(t *testing.T) {
	config := DefaultCORSConfig([]string{"http://localhost:3000"})
	handler := CORS(config)(corsTestHandler())

	req := httptest.NewRequest("GET", "/api/entries", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin: got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Access-Control-Allow-Credentials: got %q, want true", got)
	}
}

func TestCORS_UnknownOrigin_NoHeaders(t *testing.T) {
	config := DefaultCORSConfig([]string{"http://localhost:3000"})
	handler := CORS(config)(corsTestHandler())

	req := httptest.NewRequest("GET", "/api/entries", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected Access-Control-Allow-Origin for unknown origin: %q", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	config := DefaultCORSConfig([]string{"http://localhost:3000"})
	handler := CORS(config)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight should not reach the handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/api/entries", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("preflight status: got %d, want %d", w.Code, http.StatusOK)
	}
}
