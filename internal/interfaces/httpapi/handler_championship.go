package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dragonworlds/results-sync/internal/domain/championship"
	"github.com/dragonworlds/results-sync/internal/usecase"
)

func (h *Handler) GetChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChampionship")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))

	forceRefresh := false
	if raw := strings.TrimSpace(r.URL.Query().Get("refresh")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, fmt.Errorf("%w: invalid refresh value %q", usecase.ErrInvalidInput, raw))
			return
		}
		forceRefresh = parsed
	}

	result, err := h.resultsService.GetChampionship(ctx, eventID, forceRefresh)
	if err != nil {
		h.logger.WarnContext(ctx, "get championship failed", "event_id", eventID, "refresh", forceRefresh, "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, championshipToDTO(result))
}

func (h *Handler) GetLastFetchTime(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLastFetchTime")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))

	fetchedAt, ok := h.resultsService.GetLastFetchTime(ctx, eventID)
	if !ok {
		writeError(w, fmt.Errorf("%w: no fetch recorded for event %s", usecase.ErrNotFound, eventID))
		return
	}

	writeSuccess(w, http.StatusOK, lastFetchDTO{
		EventID:     eventID,
		LastFetchAt: fetchedAt.UTC().Format(time.RFC3339),
	})
}

func (h *Handler) ClearEventCache(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearEventCache")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))

	h.resultsService.ClearCache(ctx, eventID)
	writeSuccess(w, http.StatusOK, map[string]bool{"cleared": true})
}

func (h *Handler) ClearAllCaches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearAllCaches")
	defer span.End()

	h.resultsService.ClearAllCaches(ctx)
	writeSuccess(w, http.StatusOK, map[string]bool{"cleared": true})
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	events := h.resultsService.Events()
	items := make([]eventDTO, 0, len(events))
	for _, event := range events {
		items = append(items, eventToDTO(event))
	}
	writeSuccess(w, http.StatusOK, items)
}

type championshipDTO struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Location       string          `json:"location,omitempty"`
	Status         string          `json:"status"`
	TotalRaces     int             `json:"totalRaces"`
	CompletedRaces int             `json:"completedRaces"`
	TotalBoats     int             `json:"totalBoats"`
	StartDate      string          `json:"startDate,omitempty"`
	EndDate        string          `json:"endDate,omitempty"`
	LastUpdated    string          `json:"lastUpdated,omitempty"`
	Competitors    []competitorDTO `json:"competitors"`
}

type competitorDTO struct {
	Position    int       `json:"position"`
	SailNumber  string    `json:"sailNumber"`
	HelmName    string    `json:"helmName"`
	CrewName    string    `json:"crewName,omitempty"`
	CountryCode string    `json:"countryCode"`
	CountryFlag string    `json:"countryFlag"`
	YachtClub   string    `json:"yachtClub,omitempty"`
	TotalPoints float64   `json:"totalPoints"`
	RaceResults []float64 `json:"raceResults"`
	Discards    []float64 `json:"discards,omitempty"`
}

type eventDTO struct {
	Alias    string `json:"alias"`
	NativeID string `json:"nativeId"`
	Name     string `json:"name,omitempty"`
}

type lastFetchDTO struct {
	EventID     string `json:"eventId"`
	LastFetchAt string `json:"lastFetchAt"`
}

func championshipToDTO(v *championship.Championship) championshipDTO {
	competitors := make([]competitorDTO, 0, len(v.Competitors))
	for _, competitor := range v.Competitors {
		competitors = append(competitors, competitorToDTO(competitor))
	}

	return championshipDTO{
		ID:             v.ID,
		Name:           v.Name,
		Location:       v.Location,
		Status:         string(v.Status),
		TotalRaces:     v.TotalRaces,
		CompletedRaces: v.CompletedRaces,
		TotalBoats:     v.TotalBoats,
		StartDate:      formatDate(v.StartDate),
		EndDate:        formatDate(v.EndDate),
		LastUpdated:    formatTimestamp(v.LastUpdated),
		Competitors:    competitors,
	}
}

func competitorToDTO(v championship.Competitor) competitorDTO {
	results := make([]float64, len(v.RaceResults))
	copy(results, v.RaceResults)
	var discards []float64
	if len(v.Discards) > 0 {
		discards = make([]float64, len(v.Discards))
		copy(discards, v.Discards)
	}

	return competitorDTO{
		Position:    v.Position,
		SailNumber:  v.SailNumber,
		HelmName:    v.HelmName,
		CrewName:    v.CrewName,
		CountryCode: v.CountryCode,
		CountryFlag: v.CountryFlag,
		YachtClub:   v.YachtClub,
		TotalPoints: v.TotalPoints,
		RaceResults: results,
		Discards:    discards,
	}
}

func eventToDTO(v usecase.EventSummary) eventDTO {
	return eventDTO{
		Alias:    v.Alias,
		NativeID: v.NativeID,
		Name:     v.Name,
	}
}

func formatDate(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format("2006-01-02")
}

func formatTimestamp(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
