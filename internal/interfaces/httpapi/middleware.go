package httpapi

import (
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dragonworlds/results-sync/internal/platform/logging"
)

// untracedPaths lists probe and scrape endpoints that would drown real
// traffic in the trace backend.
var untracedPaths = map[string]struct{}{
	"/healthz": {},
	"/health":  {},
	"/livez":   {},
	"/readyz":  {},
	"/metrics": {},
}

func RequestTracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "results-sync-http",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return shouldTraceRequest(r.URL.Path)
		}),
	)
}

func shouldTraceRequest(path string) bool {
	_, skip := untracedPaths[strings.ToLower(strings.TrimSpace(path))]
	return !skip
}

// RequestLogging emits one access log line per request. Trace and span ids
// arrive through the logger's context fields, not explicit arguments.
func RequestLogging(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logger.InfoContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"bytes", rec.bytes,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(started).Milliseconds(),
		)
	})
}

// statusRecorder captures the status code and body size for access logs.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

// CORS applies a fixed allow-list policy. A lone "*" entry allows any
// origin; otherwise only exact matches receive CORS headers. Preflight
// requests short-circuit with 204 either way.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	policy := newOriginPolicy(allowedOrigins)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		if value, ok := policy.allow(origin); ok {
			header := w.Header()
			header.Set("Access-Control-Allow-Origin", value)
			if value != "*" {
				header.Add("Vary", "Origin")
			}
			header.Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
			header.Set("Access-Control-Allow-Headers", "Authorization,Content-Type,Accept")
			header.Set("Access-Control-Max-Age", "600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type originPolicy struct {
	allowAll bool
	exact    map[string]struct{}
}

func newOriginPolicy(origins []string) originPolicy {
	policy := originPolicy{exact: make(map[string]struct{}, len(origins))}
	for _, origin := range origins {
		switch candidate := strings.TrimSpace(origin); {
		case candidate == "":
		case candidate == "*":
			policy.allowAll = true
		default:
			policy.exact[candidate] = struct{}{}
		}
	}
	return policy
}

// allow returns the Access-Control-Allow-Origin value to send back.
func (p originPolicy) allow(origin string) (string, bool) {
	if p.allowAll {
		return "*", true
	}
	if _, ok := p.exact[origin]; ok {
		return origin, true
	}
	return "", false
}
