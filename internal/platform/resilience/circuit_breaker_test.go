package resilience

import (
	"errors"
	"testing"
	"time"
)

func testBreaker(threshold int, openTimeout time.Duration, maxProbes int, current *time.Time) *CircuitBreaker {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: threshold,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   maxProbes,
	})
	b.now = func() time.Time { return *current }
	return b
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	current := time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)
	b := testBreaker(3, 10*time.Second, 1, &current)

	b.RecordFailure()
	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("two failures below threshold should stay closed, got %s", state)
	}
	if err := b.Allow(); err != nil {
		t.Fatalf("closed breaker must admit requests: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("third failure should trip the breaker, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("open breaker must reject requests, got %v", err)
	}
}

func TestCircuitBreaker_SuccessResetsFailureRun(t *testing.T) {
	t.Parallel()

	current := time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)
	b := testBreaker(2, 10*time.Second, 1, &current)

	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("success should break the failure run, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after two consecutive failures, got %s", state)
	}
}

func TestCircuitBreaker_HalfOpenProbeRecovers(t *testing.T) {
	t.Parallel()

	current := time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)
	b := testBreaker(1, 10*time.Second, 1, &current)

	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected rejection inside the open window, got %v", err)
	}

	current = current.Add(10 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("probe after the open window should pass: %v", err)
	}
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open during probe, got %s", state)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("successful probe should close the breaker, got %s", state)
	}
	if err := b.Allow(); err != nil {
		t.Fatalf("closed breaker must admit requests again: %v", err)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()

	current := time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)
	b := testBreaker(1, 10*time.Second, 1, &current)

	b.RecordFailure()
	current = current.Add(10 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("probe should pass: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("failed probe should reopen, got %s", state)
	}

	current = current.Add(9 * time.Second)
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("reopened window must reject until it elapses, got %v", err)
	}

	current = current.Add(time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("probe after the second window should pass: %v", err)
	}
}

func TestCircuitBreaker_LimitsHalfOpenProbes(t *testing.T) {
	t.Parallel()

	current := time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)
	b := testBreaker(1, 10*time.Second, 2, &current)

	b.RecordFailure()
	current = current.Add(10 * time.Second)

	if err := b.Allow(); err != nil {
		t.Fatalf("first probe should pass: %v", err)
	}
	if err := b.Allow(); err != nil {
		t.Fatalf("second probe should pass: %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("probe beyond the limit must be rejected, got %v", err)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("one win of two should stay half-open, got %s", state)
	}
	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("both probes succeeding should close the breaker, got %s", state)
	}
}

func TestCircuitBreaker_ZeroConfigUsesDefaults(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(CircuitBreakerConfig{})
	defaults := DefaultCircuitBreakerConfig()

	if b.cfg.FailureThreshold != defaults.FailureThreshold {
		t.Fatalf("unexpected threshold %d", b.cfg.FailureThreshold)
	}
	if b.cfg.OpenTimeout != defaults.OpenTimeout {
		t.Fatalf("unexpected open timeout %s", b.cfg.OpenTimeout)
	}
	if b.cfg.HalfOpenMaxReq != defaults.HalfOpenMaxReq {
		t.Fatalf("unexpected probe limit %d", b.cfg.HalfOpenMaxReq)
	}
}
