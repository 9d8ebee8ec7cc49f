package httpapi

import (
	"net/http"

	"github.com/dragonworlds/results-sync/internal/platform/logging"
)

// NewRouter assembles the full HTTP surface: system probes, the public
// championship API, dev toggles, and optional swagger and metrics routes,
// wrapped in tracing, access logging, CORS, and panic recovery.
func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	swaggerEnabled bool,
	corsAllowedOrigins []string,
	metricsHandler http.Handler,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, swaggerEnabled)
	registerChampionshipRoutes(mux, handler)
	registerDevRoutes(mux, handler)
	registerOpsRoutes(mux, metricsHandler)

	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(r.Context(), "panic recovered", "panic", rec)
				writeInternalError(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
