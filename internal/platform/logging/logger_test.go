package logging

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func TestZapFields(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("scraper unreachable")
	fields := zapFields([]any{"event_id", "13241", "attempt", 2, "error", fetchErr})
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if !fields[0].Equals(zap.Any("event_id", "13241")) {
		t.Fatalf("unexpected event_id field: %+v", fields[0])
	}
	if !fields[1].Equals(zap.Any("attempt", 2)) {
		t.Fatalf("unexpected attempt field: %+v", fields[1])
	}
	if !fields[2].Equals(zap.NamedError("error", fetchErr)) {
		t.Fatalf("expected error values to become named errors, got %+v", fields[2])
	}
}

func TestZapFields_MalformedArgs(t *testing.T) {
	t.Parallel()

	if got := zapFields(nil); got != nil {
		t.Fatalf("expected no fields for empty args, got %d", len(got))
	}

	fields := zapFields([]any{42, "value", "pending"})
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if !fields[0].Equals(zap.Any("arg", "value")) {
		t.Fatalf("expected non-string key to fall back to arg, got %+v", fields[0])
	}
	if !fields[1].Equals(zap.Any("pending", nil)) {
		t.Fatalf("expected dangling key to carry a nil value, got %+v", fields[1])
	}
}

func TestTraceFields(t *testing.T) {
	t.Parallel()

	if got := traceFields(nil); got != nil {
		t.Fatalf("expected no fields for nil context, got %d", len(got))
	}
	if got := traceFields(context.Background()); got != nil {
		t.Fatalf("expected no fields without a span, got %d", len(got))
	}

	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0xab, 0x01},
		SpanID:  trace.SpanID{0xcd, 0x02},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	fields := traceFields(ctx)
	if len(fields) != 2 {
		t.Fatalf("expected trace and span fields, got %d", len(fields))
	}
	if !fields[0].Equals(zap.String("trace_id", spanCtx.TraceID().String())) {
		t.Fatalf("unexpected trace_id field: %+v", fields[0])
	}
	if !fields[1].Equals(zap.String("span_id", spanCtx.SpanID().String())) {
		t.Fatalf("unexpected span_id field: %+v", fields[1])
	}
}

func TestNilLoggerIsUsable(t *testing.T) {
	var logger *Logger
	logger.Info("message while unconfigured", "event_id", "13241")
	if err := logger.Sync(); err != nil {
		t.Fatalf("expected nil sync error, got %v", err)
	}
	if child := logger.With("component", "prefetch"); child == nil {
		t.Fatal("expected a usable child logger")
	}
	if FromZap(nil) == nil {
		t.Fatal("expected a usable logger from a nil zap logger")
	}
}

func TestDefaultIsNeverNil(t *testing.T) {
	SetDefault(nil)
	if Default() == nil {
		t.Fatal("expected a usable default logger")
	}
	SetDefault(NewNop())
}
