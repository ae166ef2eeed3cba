package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func containsHeader(headerValue, target string) bool {
	for part := range strings.SplitSeq(headerValue, ",") {
		if strings.EqualFold(strings.TrimSpace(part), target) {
			return true
		}
	}
	return false
}

func TestCORSAllowsGETOrigin(t *testing.T) {
	called := false
	h := CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "http://localhost/api/hello", nil)
	req.Header.Set("Origin", "http://example.com")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if !called {
		t.Fatalf("expected downstream handler to be called for GET request")
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected Access-Control-Allow-Origin '*', got %q", got)
	}
	if got := resp.Header().Get("Access-Control-Expose-Headers"); !containsHeader(got, "X-Request-Id") {
		t.Fatalf("expected Access-Control-Expose-Headers to contain X-Request-Id, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	tests := []struct {
		name          string
		requestHeader string
	}{
		{"content type", "Content-Type"},
		{"request id", "X-Request-Id"},
		{"traceparent", "traceparent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			h := CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodOptions, "http://localhost/api/hello", nil)
			req.Header.Set("Origin", "http://example.com")
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			req.Header.Set("Access-Control-Request-Headers", tt.requestHeader)
			resp := httptest.NewRecorder()
			h.ServeHTTP(resp, req)

			if called {
				t.Fatalf("expected preflight to be answered without calling downstream handler")
			}
			if resp.Code != http.StatusOK {
				t.Fatalf("expected status 200 for preflight, got %d", resp.Code)
			}
			if got := resp.Header().Get("Access-Control-Allow-Headers"); !containsHeader(got, tt.requestHeader) {
				t.Fatalf("expected Access-Control-Allow-Headers to contain %s, got %q", tt.requestHeader, got)
			}
		})
	}
}
