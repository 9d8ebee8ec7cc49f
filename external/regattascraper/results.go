package regattascraper

import (
	"strings"
	"time"

	"github.com/dragonworlds/results-sync/internal/domain/championship"
)

// resultsEnvelope mirrors the scraper's standings response. Numeric fields
// the scraper sometimes omits are pointers so absence and zero stay
// distinguishable.
type resultsEnvelope struct {
	EventName        string           `json:"eventName"`
	LastUpdated      string           `json:"lastUpdated"`
	OverallStandings []standingItem   `json:"overallStandings"`
	Metadata         *resultsMetadata `json:"metadata"`
}

type resultsMetadata struct {
	TotalRaces       int `json:"totalRaces"`
	CompletedRaces   int `json:"completedRaces"`
	TotalCompetitors int `json:"totalCompetitors"`
}

type standingItem struct {
	Position    *int        `json:"position"`
	SailNumber  string      `json:"sailNumber"`
	HelmName    string      `json:"helmName"`
	CrewName    string      `json:"crewName"`
	Club        string      `json:"club"`
	TotalPoints *float64    `json:"totalPoints"`
	NetPoints   *float64    `json:"netPoints"`
	RaceScores  []raceScore `json:"raceScores"`
}

type raceScore struct {
	Position    *float64 `json:"position"`
	Points      *float64 `json:"points"`
	IsDiscarded bool     `json:"isDiscarded"`
}

// empty reports whether the payload carries nothing usable. A body like
// this decodes fine but means the scraper had no data for the id, which is
// a fetch failure, not an empty championship.
func (e resultsEnvelope) empty() bool {
	return len(e.OverallStandings) == 0 && e.Metadata == nil && strings.TrimSpace(e.EventName) == ""
}

// toChampionship normalizes the payload. Standings keep their payload
// order; an empty list stays a valid result. Location and dates are not on
// the wire, so they stay zero for the caller to backfill.
func (e resultsEnvelope) toChampionship(nativeID string, fetchedAt time.Time) *championship.Championship {
	var totalRaces, completedRaces, totalBoats int
	if e.Metadata != nil {
		totalRaces = e.Metadata.TotalRaces
		completedRaces = e.Metadata.CompletedRaces
		totalBoats = e.Metadata.TotalCompetitors
	}

	competitors := make([]championship.Competitor, 0, len(e.OverallStandings))
	for idx, item := range e.OverallStandings {
		competitors = append(competitors, item.toCompetitor(idx))
	}
	if totalBoats <= 0 {
		totalBoats = len(competitors)
	}

	lastUpdated := fetchedAt
	if parsed := parseScraperDateTime(e.LastUpdated); parsed != nil {
		lastUpdated = *parsed
	}

	return &championship.Championship{
		ID:             nativeID,
		Name:           strings.TrimSpace(e.EventName),
		Status:         championship.DeriveStatus(completedRaces, totalRaces),
		TotalRaces:     totalRaces,
		CompletedRaces: completedRaces,
		TotalBoats:     totalBoats,
		LastUpdated:    lastUpdated,
		Competitors:    competitors,
	}
}

func (s standingItem) toCompetitor(idx int) championship.Competitor {
	code, flag := CountryFromSail(s.SailNumber)

	results := make([]float64, 0, len(s.RaceScores))
	var discards []float64
	for _, race := range s.RaceScores {
		score := race.score()
		results = append(results, score)
		if race.IsDiscarded {
			discards = append(discards, score)
		}
	}

	position := idx + 1
	if s.Position != nil && *s.Position > 0 {
		position = *s.Position
	}

	var totalPoints float64
	switch {
	case s.NetPoints != nil:
		totalPoints = *s.NetPoints
	case s.TotalPoints != nil:
		totalPoints = *s.TotalPoints
	}

	return championship.Competitor{
		Position:    position,
		SailNumber:  strings.TrimSpace(s.SailNumber),
		HelmName:    strings.TrimSpace(s.HelmName),
		CrewName:    strings.TrimSpace(s.CrewName),
		CountryCode: code,
		CountryFlag: flag,
		YachtClub:   strings.TrimSpace(s.Club),
		TotalPoints: totalPoints,
		RaceResults: results,
		Discards:    discards,
	}
}

// score resolves one race cell. Finishing position is authoritative when
// the scraper recorded one; scored points cover penalty codes (DNF, DSQ)
// where no position exists. Zero means the race had no entry for the boat.
func (r raceScore) score() float64 {
	if r.Position != nil && *r.Position != 0 {
		return *r.Position
	}
	if r.Points != nil {
		return *r.Points
	}
	return 0
}

func parseScraperDateTime(raw string) *time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			v := parsed.UTC()
			return &v
		}
	}
	return nil
}
