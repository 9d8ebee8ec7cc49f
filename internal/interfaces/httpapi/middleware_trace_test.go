package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dragonworlds/results-sync/internal/platform/logging"
)

func TestShouldTraceRequest(t *testing.T) {
	untraced := []string{"/healthz", "/health", "/livez", "/readyz", "/metrics", " /healthz "}
	for _, path := range untraced {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}

	traced := []string{"/v1/events", "/v1/championships/13241", "/", "/docs"}
	for _, path := range traced {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}

func TestStatusRecorder_CapturesStatusAndBytes(t *testing.T) {
	handler := RequestLogging(logging.NewNop(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status must pass through the recorder, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "short and stout" {
		t.Fatalf("body must pass through the recorder, got %q", got)
	}
}
