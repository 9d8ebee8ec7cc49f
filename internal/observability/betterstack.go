package observability

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dragonworlds/results-sync/internal/config"
	"github.com/dragonworlds/results-sync/internal/platform/logging"
)

const (
	logShipQueueCapacity = 1024
	logShipDrainTimeout  = 5 * time.Second
)

// InitBetterStackLogger builds the service logger. Logs always go to
// stdout; when Better Stack is enabled a second core ships entries at or
// above the configured minimum level to its ingest endpoint. The returned
// shutdown drains the ship queue before closing.
func InitBetterStackLogger(cfg config.Config, baseLogger *logging.Logger) (*logging.Logger, func(context.Context) error, error) {
	if baseLogger == nil {
		baseLogger = logging.NewJSON(cfg.LogLevel)
	}

	if !cfg.BetterStackEnabled {
		baseLogger.Info("betterstack disabled", "reason", "BETTERSTACK_ENABLED=false")
		return baseLogger, func(context.Context) error { return nil }, nil
	}

	endpoint := normalizeBetterStackEndpoint(cfg.BetterStackEndpoint)
	if endpoint == "" {
		return nil, nil, fmt.Errorf("betterstack endpoint cannot be empty")
	}

	encoderCfg := logging.EncoderConfig()

	stdoutCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		cfg.LogLevel,
	)

	shipper := newLogShipper(endpoint, strings.TrimSpace(cfg.BetterStackToken), cfg.BetterStackTimeout)
	shipCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(shipper),
		cfg.BetterStackMinLevel,
	)

	zapLogger := zap.New(
		zapcore.NewTee(stdoutCore, shipCore),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)

	logger := logging.FromZap(zapLogger)
	logger.Info("betterstack enabled",
		"endpoint", endpoint,
		"min_level", cfg.BetterStackMinLevel.String(),
		"service_name", cfg.ServiceName,
		"environment", cfg.AppEnv,
	)

	shutdown := func(ctx context.Context) error {
		if ctx == nil {
			ctx = context.Background()
		}
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			withTimeout, cancel := context.WithTimeout(ctx, logShipDrainTimeout)
			defer cancel()
			ctx = withTimeout
		}
		if err := shipper.Close(ctx); err != nil {
			return fmt.Errorf("drain betterstack queue: %w", err)
		}
		if err := logger.Sync(); err != nil && !isIgnorableLoggerSyncError(err) {
			return err
		}
		return nil
	}

	return logger, shutdown, nil
}

func normalizeBetterStackEndpoint(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	return "https://" + value
}

// logShipper posts encoded log lines to an HTTP ingest endpoint from a
// single background sender. Write never blocks the logging path: when the
// queue is full the entry is dropped and counted.
type logShipper struct {
	endpoint  string
	token     string
	client    *http.Client
	queue     chan []byte
	queueMu   sync.RWMutex
	closeOnce sync.Once
	closed    atomic.Bool
	wg        sync.WaitGroup
	dropped   atomic.Uint64
}

func newLogShipper(endpoint, token string, timeout time.Duration) *logShipper {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	s := &logShipper{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: timeout},
		queue:    make(chan []byte, logShipQueueCapacity),
	}
	s.wg.Add(1)
	go s.run()

	return s
}

func (s *logShipper) Write(p []byte) (int, error) {
	line := bytes.TrimSpace(p)
	if len(line) == 0 {
		return len(p), nil
	}

	// The read lock keeps Close from closing the queue mid-send.
	s.queueMu.RLock()
	defer s.queueMu.RUnlock()
	if s.closed.Load() {
		return len(p), nil
	}

	// zap reuses its buffers after Write returns.
	owned := append([]byte(nil), line...)

	select {
	case s.queue <- owned:
	default:
		s.noteDrop()
	}
	return len(p), nil
}

// noteDrop counts a dropped entry and reports the first drop and every
// hundredth after it.
func (s *logShipper) noteDrop() {
	n := s.dropped.Add(1)
	if n == 1 || n%100 == 0 {
		fmt.Fprintf(os.Stderr, "betterstack queue full; dropped logs=%d\n", n)
	}
}

func (s *logShipper) run() {
	defer s.wg.Done()

	for line := range s.queue {
		if err := s.post(line); err != nil {
			fmt.Fprintf(os.Stderr, "betterstack ship failed: %v\n", err)
		}
	}
}

func (s *logShipper) post(line []byte) error {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, s.endpoint, bytes.NewReader(line))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("ingest responded with status %d", resp.StatusCode)
	}
	return nil
}

// Close stops accepting writes and waits for the queue to drain or the
// context to expire.
func (s *logShipper) Close(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	s.closeOnce.Do(func() {
		s.queueMu.Lock()
		s.closed.Store(true)
		close(s.queue)
		s.queueMu.Unlock()
	})

	drained := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *logShipper) Sync() error {
	return nil
}

func isIgnorableLoggerSyncError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, benign := range []string{"bad file descriptor", "invalid argument"} {
		if strings.Contains(msg, benign) {
			return true
		}
	}
	return false
}
