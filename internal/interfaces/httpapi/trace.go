package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var (
	apiTracer = otel.Tracer("results-sync/internal/interfaces/httpapi")

	// Ending this span is a no-op, so call sites may defer End unconditionally.
	inertSpan = trace.SpanFromContext(context.Background())
)

// startSpan opens a child span for handler-level work. Helpers and requests
// on filtered routes such as /healthz never become trace roots.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !isHandlerSpan(name) || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, inertSpan
	}
	return apiTracer.Start(ctx, name)
}

func isHandlerSpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix)
}
