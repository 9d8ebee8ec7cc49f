package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /livez", handler.Livez)
	mux.HandleFunc("GET /readyz", handler.Readyz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerChampionshipRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/events", handler.ListEvents)
	mux.HandleFunc("GET /v1/championships/{eventID}", handler.GetChampionship)
	mux.HandleFunc("GET /v1/championships/{eventID}/last-fetch", handler.GetLastFetchTime)
	mux.HandleFunc("DELETE /v1/championships/{eventID}/cache", handler.ClearEventCache)
	mux.HandleFunc("DELETE /v1/championships/cache", handler.ClearAllCaches)
}

func registerDevRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/dev/force-mock", handler.GetForceMockData)
	mux.HandleFunc("POST /v1/dev/force-mock", handler.SetForceMockData)
}

func registerOpsRoutes(mux *http.ServeMux, metricsHandler http.Handler) {
	if metricsHandler == nil {
		return
	}

	mux.Handle("GET /metrics", metricsHandler)
}
