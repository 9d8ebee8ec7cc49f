// Package regattascraper talks to the results scraper that publishes
// championship standings for regatta events. The scraper identifies events
// by numeric server-native ids; alias resolution happens upstream of this
// package.
package regattascraper

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/dragonworlds/results-sync/internal/domain/championship"
	"github.com/dragonworlds/results-sync/internal/platform/logging"
	"github.com/dragonworlds/results-sync/internal/platform/resilience"
	"github.com/dragonworlds/results-sync/internal/usecase"
)

const (
	defaultBaseURL = "https://results.dragonworlds.net/api"
	defaultTimeout = 12 * time.Second

	resultsPath = "/results"
	// Fixed by the scraper contract; the server returns stale data
	// without useCache=true busted through.
	queryTypeResults = "results"
	queryUseCache    = "true"

	maxResponseBytes = 4 << 20
	previewLimit     = 240
)

var errScraperTransient = crerr.New("results scraper transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		circuitEnabled: cfg.CircuitBreaker.Enabled,
	}
}

// FetchChampionship retrieves and normalizes the standings for one
// server-native event id. Transport failures, non-2xx responses, and
// undecodable bodies all surface as plain errors; the caller decides
// whether stale data can stand in.
func (c *Client) FetchChampionship(ctx context.Context, nativeID string) (*championship.Championship, error) {
	nativeID = strings.TrimSpace(nativeID)
	if nativeID == "" {
		return nil, fmt.Errorf("event id is required")
	}

	query := map[string]string{
		"eventId":  nativeID,
		"type":     queryTypeResults,
		"useCache": queryUseCache,
	}

	var payload resultsEnvelope
	raw, err := c.doJSON(ctx, resultsPath, query, &payload)
	if err != nil {
		return nil, fmt.Errorf("fetch results event_id=%s: %w", nativeID, err)
	}

	if payload.empty() {
		return nil, fmt.Errorf("empty results payload event_id=%s", nativeID)
	}

	c.logger.DebugContext(ctx, "results payload received",
		"event_id", nativeID,
		"bytes", len(raw),
		"standings", len(payload.OverallStandings),
		"preview", previewBody(raw),
	)

	return payload.toChampionship(nativeID, time.Now().UTC()), nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "results scraper circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: results server is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isScraperCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return nil, fmt.Errorf("decode results payload: %w", err)
	}

	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errScraperTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errScraperTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else {
				if isRetryableStatus(resp.StatusCode) {
					lastErr = fmt.Errorf("%w: results server status=%d body=%s", errScraperTransient, resp.StatusCode, previewBody(raw))
				} else {
					lastErr = fmt.Errorf("results server status=%d body=%s", resp.StatusCode, previewBody(raw))
					return nil, lastErr
				}
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("results request failed")
	}
	c.logger.WarnContext(ctx, "results scraper request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func previewBody(body []byte) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, r := range strings.TrimSpace(string(body)) {
		if buf.Len() >= previewLimit {
			_, _ = buf.WriteString("...")
			break
		}
		if r == '\n' || r == '\r' || r == '\t' {
			r = ' '
		}
		_, _ = buf.WriteString(string(r))
	}
	return buf.String()
}

func isScraperCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errScraperTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
