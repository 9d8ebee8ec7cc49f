package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/dragonworlds/results-sync/external/regattascraper"
	"github.com/dragonworlds/results-sync/internal/config"
	"github.com/dragonworlds/results-sync/internal/domain/championship"
	"github.com/dragonworlds/results-sync/internal/interfaces/httpapi"
	"github.com/dragonworlds/results-sync/internal/platform/logging"
	"github.com/dragonworlds/results-sync/internal/platform/metrics"
	"github.com/dragonworlds/results-sync/internal/platform/resilience"
	"github.com/dragonworlds/results-sync/internal/usecase"
)

// App owns the assembled service: scraper client, sync services, HTTP
// server, and the background prefetch loop.
type App struct {
	Server *http.Server

	cfg      config.Config
	logger   *logging.Logger
	prefetch *usecase.PrefetchService

	background   conc.WaitGroup
	stopPrefetch context.CancelFunc
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	var recorder *metrics.Recorder
	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		recorder = metrics.NewRecorder()
		metricsHandler = recorder.Handler()
	}

	scraper := regattascraper.NewClient(regattascraper.ClientConfig{
		BaseURL:    cfg.ScraperBaseURL,
		Timeout:    cfg.ScraperTimeout,
		MaxRetries: cfg.ScraperMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ScraperCircuitEnabled,
			FailureThreshold: cfg.ScraperCircuitFailureCount,
			OpenTimeout:      cfg.ScraperCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ScraperCircuitHalfOpenMaxReq,
		},
	})

	aliases := championship.DefaultAliasTable()
	if len(cfg.EventAliases) > 0 {
		aliases = championship.NewAliasTable(cfg.EventAliases)
	}

	resultsSvc := usecase.NewResultsService(usecase.ResultsServiceConfig{
		Fetcher:   scraper,
		Aliases:   aliases,
		CacheTTL:  cfg.ResultsCacheTTL,
		DevMode:   cfg.AppEnv == config.EnvDev,
		ForceMock: cfg.ForceMockData,
		Logger:    logger,
		Metrics:   recorder,
	})
	prefetchSvc := usecase.NewPrefetchService(resultsSvc, cfg.PrefetchWorkers, logger)

	handler := httpapi.NewHandler(resultsSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, metricsHandler)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &App{
		Server:   server,
		cfg:      cfg,
		logger:   logger,
		prefetch: prefetchSvc,
	}, nil
}

// Start launches the prefetch loop when enabled. Call once.
func (a *App) Start() {
	if !a.cfg.PrefetchEnabled {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.stopPrefetch = cancel
	a.background.Go(func() {
		a.runPrefetchLoop(ctx)
	})
}

func (a *App) runPrefetchLoop(ctx context.Context) {
	a.logger.Info("prefetch loop starting",
		"interval", a.cfg.PrefetchInterval.String(),
		"workers", a.cfg.PrefetchWorkers,
	)

	if _, err := a.prefetch.PrefetchAll(ctx); err != nil {
		a.logger.Warn("initial prefetch failed", "error", err)
	}

	ticker := time.NewTicker(a.cfg.PrefetchInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("prefetch loop stopped")
			return
		case <-ticker.C:
			if _, err := a.prefetch.PrefetchAll(ctx); err != nil {
				a.logger.Warn("prefetch cycle failed", "error", err)
			}
		}
	}
}

// Shutdown stops background work first so no prefetch lands on a draining
// server, then shuts the HTTP server down.
func (a *App) Shutdown(ctx context.Context) error {
	if a.stopPrefetch != nil {
		a.stopPrefetch()
	}
	a.background.Wait()
	return a.Server.Shutdown(ctx)
}
