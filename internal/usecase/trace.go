package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	usecaseTracer = otel.Tracer("results-sync/internal/usecase")

	// Safe to End; unsampled callers such as the prefetch loop land here.
	inertUsecaseSpan = trace.SpanFromContext(context.Background())
)

func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, inertUsecaseSpan
	}
	return usecaseTracer.Start(ctx, name)
}
