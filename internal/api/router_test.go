package api

import (
	"midpoint-service/internal/services"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestRouter() http.Handler {
	return NewRouter(services.NewMidpointService(services.Settings{}, services.Providers{}))
}

func TestRouterRoutes(t *testing.T) {
	tests := []struct {
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{http.MethodGet, "/", http.StatusOK, "Let's Meet API"},
		{http.MethodGet, "/api/health", http.StatusOK, `{"status":"ok"}`},
		{http.MethodPost, "/api/find_midpoint", http.StatusInternalServerError, "Server API key not set"},
		{http.MethodGet, "/nope", http.StatusNotFound, ""},
		{http.MethodPost, "/api/health", http.StatusMethodNotAllowed, "method not allowed"},
	}

	router := newTestRouter()
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != tt.wantStatus {
			t.Fatalf("%s %s: expected %d, got %d", tt.method, tt.path, tt.wantStatus, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), tt.wantBody) {
			t.Fatalf("%s %s: expected body to contain %q, got %q", tt.method, tt.path, tt.wantBody, rec.Body.String())
		}
	}
}

func TestRouterRequestID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected generated request id")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/find_midpoint", nil)
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
}
