package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dragonworlds/results-sync/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                       string
	ServiceName                  string
	ServiceVersion               string
	HTTPAddr                     string
	CORSAllowedOrigins           []string
	ReadTimeout                  time.Duration
	WriteTimeout                 time.Duration
	PprofEnabled                 bool
	PprofAddr                    string
	SwaggerEnabled               bool
	MetricsEnabled               bool
	UptraceEnabled               bool
	UptraceDSN                   string
	UptraceLogsEnabled           bool
	BetterStackEnabled           bool
	BetterStackEndpoint          string
	BetterStackToken             string
	BetterStackTimeout           time.Duration
	BetterStackMinLevel          logging.Level
	PyroscopeEnabled             bool
	PyroscopeServerAddress       string
	PyroscopeAppName             string
	PyroscopeAuthToken           string
	PyroscopeBasicAuthUser       string
	PyroscopeBasicAuthPassword   string
	PyroscopeUploadRate          time.Duration
	ScraperBaseURL               string
	ScraperTimeout               time.Duration
	ScraperMaxRetries            int
	ScraperCircuitEnabled        bool
	ScraperCircuitFailureCount   int
	ScraperCircuitOpenTimeout    time.Duration
	ScraperCircuitHalfOpenMaxReq int
	ResultsCacheTTL              time.Duration
	EventAliases                 map[string]string
	ForceMockData                bool
	PrefetchEnabled              bool
	PrefetchInterval             time.Duration
	PrefetchWorkers              int
	LogLevel                     logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}

	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	betterStackEnabled, err := strconv.ParseBool(getEnv("BETTERSTACK_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_ENABLED: %w", err)
	}
	betterStackEndpoint := strings.TrimSpace(getEnv("BETTERSTACK_ENDPOINT", ""))
	if betterStackEnabled && betterStackEndpoint == "" {
		return Config{}, fmt.Errorf("BETTERSTACK_ENDPOINT is required when BETTERSTACK_ENABLED=true")
	}
	betterStackTimeout, err := time.ParseDuration(getEnv("BETTERSTACK_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_TIMEOUT: %w", err)
	}
	if betterStackTimeout <= 0 {
		return Config{}, fmt.Errorf("BETTERSTACK_TIMEOUT must be > 0")
	}
	betterStackMinLevel := parseLogLevel(getEnv("BETTERSTACK_MIN_LEVEL", "error"))

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	scraperTimeout, err := time.ParseDuration(getEnv("SCRAPER_TIMEOUT", "12s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_TIMEOUT: %w", err)
	}
	if scraperTimeout <= 0 {
		return Config{}, fmt.Errorf("SCRAPER_TIMEOUT must be > 0")
	}
	scraperMaxRetries, err := getEnvAsInt("SCRAPER_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_MAX_RETRIES: %w", err)
	}
	if scraperMaxRetries < 0 {
		return Config{}, fmt.Errorf("SCRAPER_MAX_RETRIES must be >= 0")
	}
	scraperCircuitEnabled, err := strconv.ParseBool(getEnv("SCRAPER_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_CIRCUIT_ENABLED: %w", err)
	}
	scraperCircuitFailureCount, err := getEnvAsInt("SCRAPER_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if scraperCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SCRAPER_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	scraperCircuitOpenTimeout, err := time.ParseDuration(getEnv("SCRAPER_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if scraperCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("SCRAPER_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	scraperCircuitHalfOpenMaxReq, err := getEnvAsInt("SCRAPER_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if scraperCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("SCRAPER_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	scraperBaseURL := strings.TrimSpace(getEnv("SCRAPER_BASE_URL", "https://results.dragonworlds.net/api"))
	if scraperBaseURL == "" {
		return Config{}, fmt.Errorf("SCRAPER_BASE_URL cannot be empty")
	}

	resultsCacheTTL, err := time.ParseDuration(getEnv("RESULTS_CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RESULTS_CACHE_TTL: %w", err)
	}
	if resultsCacheTTL <= 0 {
		return Config{}, fmt.Errorf("RESULTS_CACHE_TTL must be > 0")
	}

	eventAliases, err := parseAliasMap(getEnv("EVENT_ALIAS_MAP", ""))
	if err != nil {
		return Config{}, fmt.Errorf("parse EVENT_ALIAS_MAP: %w", err)
	}

	forceMockData, err := strconv.ParseBool(getEnv("FORCE_MOCK_DATA", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FORCE_MOCK_DATA: %w", err)
	}
	if forceMockData && appEnv != EnvDev {
		return Config{}, fmt.Errorf("FORCE_MOCK_DATA is only supported when APP_ENV=%s", EnvDev)
	}

	prefetchEnabled, err := strconv.ParseBool(getEnv("PREFETCH_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PREFETCH_ENABLED: %w", err)
	}
	prefetchInterval, err := time.ParseDuration(getEnv("PREFETCH_INTERVAL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PREFETCH_INTERVAL: %w", err)
	}
	if prefetchInterval <= 0 {
		return Config{}, fmt.Errorf("PREFETCH_INTERVAL must be > 0")
	}
	prefetchWorkers, err := getEnvAsInt("PREFETCH_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse PREFETCH_WORKERS: %w", err)
	}
	if prefetchWorkers < 1 {
		return Config{}, fmt.Errorf("PREFETCH_WORKERS must be >= 1")
	}

	cfg := Config{
		AppEnv:                       appEnv,
		ServiceName:                  getEnv("APP_SERVICE_NAME", "results-sync-api"),
		ServiceVersion:               getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                     getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins:           splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofEnabled:                 pprofEnabled,
		PprofAddr:                    pprofAddr,
		SwaggerEnabled:               swaggerEnabled,
		UptraceEnabled:               uptraceEnabled,
		UptraceDSN:                   uptraceDSN,
		UptraceLogsEnabled:           uptraceLogsEnabled,
		BetterStackEnabled:           betterStackEnabled,
		BetterStackEndpoint:          betterStackEndpoint,
		BetterStackToken:             strings.TrimSpace(getEnv("BETTERSTACK_TOKEN", "")),
		BetterStackTimeout:           betterStackTimeout,
		BetterStackMinLevel:          betterStackMinLevel,
		PyroscopeEnabled:             pyroscopeEnabled,
		PyroscopeServerAddress:       pyroscopeServerAddress,
		PyroscopeAuthToken:           strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:       strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:   strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:          pyroscopeUploadRate,
		ScraperBaseURL:               scraperBaseURL,
		ScraperTimeout:               scraperTimeout,
		ScraperMaxRetries:            scraperMaxRetries,
		ScraperCircuitEnabled:        scraperCircuitEnabled,
		ScraperCircuitFailureCount:   scraperCircuitFailureCount,
		ScraperCircuitOpenTimeout:    scraperCircuitOpenTimeout,
		ScraperCircuitHalfOpenMaxReq: scraperCircuitHalfOpenMaxReq,
		ResultsCacheTTL:              resultsCacheTTL,
		EventAliases:                 eventAliases,
		ForceMockData:                forceMockData,
		PrefetchEnabled:              prefetchEnabled,
		PrefetchInterval:             prefetchInterval,
		PrefetchWorkers:              prefetchWorkers,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}
	cfg.MetricsEnabled = metricsEnabled

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	logLevel := parseLogLevel(getEnv("APP_LOG_LEVEL", "info"))

	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout
	cfg.LogLevel = logLevel

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

// parseAliasMap reads "alias:native_id" pairs, e.g.
// "asia-pacific-2026:13241,gold-cup-2025:13239".
func parseAliasMap(raw string) (map[string]string, error) {
	out := make(map[string]string)
	parts := strings.Split(raw, ",")
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}

		segments := strings.SplitN(item, ":", 2)
		if len(segments) != 2 {
			return nil, fmt.Errorf("invalid alias item %q, expected alias:native_id", item)
		}

		alias := strings.TrimSpace(segments[0])
		if alias == "" {
			return nil, fmt.Errorf("empty alias in item %q", item)
		}
		nativeID := strings.TrimSpace(segments[1])
		if nativeID == "" {
			return nil, fmt.Errorf("empty native id in item %q", item)
		}

		out[alias] = nativeID
	}
	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
