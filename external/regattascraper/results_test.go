package regattascraper

import (
	"testing"
	"time"

	"github.com/dragonworlds/results-sync/internal/domain/championship"
)

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func TestToChampionship_FullPayload(t *testing.T) {
	t.Parallel()

	envelope := resultsEnvelope{
		EventName:   "Asia Pacific Championship 2026",
		LastUpdated: "2026-08-22T09:15:00Z",
		Metadata:    &resultsMetadata{TotalRaces: 8, CompletedRaces: 5, TotalCompetitors: 8},
		OverallStandings: []standingItem{
			{
				Position:   intPtr(1),
				SailNumber: "HKG 59",
				HelmName:   "Mark Whitfield",
				CrewName:   "Sam Chan",
				Club:       "Royal Hong Kong Yacht Club",
				NetPoints:  floatPtr(5),
				RaceScores: []raceScore{
					{Position: floatPtr(1)},
					{Position: floatPtr(2)},
					{Position: floatPtr(1)},
					{Position: floatPtr(3), IsDiscarded: true},
					{Position: floatPtr(1)},
				},
			},
			{
				Position:    intPtr(2),
				SailNumber:  "AUS 217",
				HelmName:    "Peter Calloway",
				TotalPoints: floatPtr(10),
				RaceScores: []raceScore{
					{Position: floatPtr(2)},
					{Position: floatPtr(1)},
					{Points: floatPtr(9), IsDiscarded: true},
					{Position: floatPtr(1)},
					{Position: floatPtr(2)},
				},
			},
		},
	}

	fetchedAt := time.Date(2026, time.August, 25, 11, 0, 0, 0, time.UTC)
	got := envelope.toChampionship("13241", fetchedAt)

	if got.ID != "13241" {
		t.Fatalf("unexpected id: %s", got.ID)
	}
	if got.Name != "Asia Pacific Championship 2026" {
		t.Fatalf("unexpected name: %s", got.Name)
	}
	if got.Status != championship.StatusOngoing {
		t.Fatalf("unexpected status: %s", got.Status)
	}
	if got.TotalRaces != 8 || got.CompletedRaces != 5 || got.TotalBoats != 8 {
		t.Fatalf("unexpected race counts: %+v", got)
	}
	want := time.Date(2026, time.August, 22, 9, 15, 0, 0, time.UTC)
	if !got.LastUpdated.Equal(want) {
		t.Fatalf("unexpected last updated: %v", got.LastUpdated)
	}

	if len(got.Competitors) != 2 {
		t.Fatalf("expected 2 competitors, got %d", len(got.Competitors))
	}

	first := got.Competitors[0]
	if first.Position != 1 || first.SailNumber != "HKG 59" || first.CountryCode != "HK" || first.CountryFlag != "🇭🇰" {
		t.Fatalf("unexpected first competitor: %+v", first)
	}
	if first.TotalPoints != 5 {
		t.Fatalf("net points should win: %v", first.TotalPoints)
	}
	wantResults := []float64{1, 2, 1, 3, 1}
	for i, v := range wantResults {
		if first.RaceResults[i] != v {
			t.Fatalf("unexpected race results: %v", first.RaceResults)
		}
	}
	if len(first.Discards) != 1 || first.Discards[0] != 3 {
		t.Fatalf("unexpected discards: %v", first.Discards)
	}

	second := got.Competitors[1]
	if second.TotalPoints != 10 {
		t.Fatalf("total points fallback failed: %v", second.TotalPoints)
	}
	if second.RaceResults[2] != 9 {
		t.Fatalf("points should fill missing position: %v", second.RaceResults)
	}
	if len(second.Discards) != 1 || second.Discards[0] != 9 {
		t.Fatalf("unexpected discards: %v", second.Discards)
	}
}

func TestToChampionship_PayloadOrderIsPreserved(t *testing.T) {
	t.Parallel()

	envelope := resultsEnvelope{
		EventName: "Scramble Cup",
		OverallStandings: []standingItem{
			{SailNumber: "SWE 3", Position: intPtr(4)},
			{SailNumber: "NOR 8", Position: intPtr(1)},
			{SailNumber: "FIN 2"},
		},
	}

	got := envelope.toChampionship("555", time.Now().UTC())

	order := []string{"SWE 3", "NOR 8", "FIN 2"}
	for i, sail := range order {
		if got.Competitors[i].SailNumber != sail {
			t.Fatalf("payload order not preserved: %+v", got.Competitors)
		}
	}
	if got.Competitors[0].Position != 4 {
		t.Fatalf("explicit position ignored: %d", got.Competitors[0].Position)
	}
	if got.Competitors[2].Position != 3 {
		t.Fatalf("missing position should fall back to ordinal: %d", got.Competitors[2].Position)
	}
	if got.TotalBoats != 3 {
		t.Fatalf("total boats should fall back to standings length: %d", got.TotalBoats)
	}
}

func TestToChampionship_EmptyStandingsIsValid(t *testing.T) {
	t.Parallel()

	envelope := resultsEnvelope{
		EventName: "World Championship 2026",
		Metadata:  &resultsMetadata{TotalRaces: 12, CompletedRaces: 0},
	}

	got := envelope.toChampionship("13242", time.Now().UTC())
	if got.Status != championship.StatusUpcoming {
		t.Fatalf("unexpected status: %s", got.Status)
	}
	if len(got.Competitors) != 0 {
		t.Fatalf("expected no competitors, got %d", len(got.Competitors))
	}
	if got.TotalBoats != 0 {
		t.Fatalf("expected zero boats, got %d", got.TotalBoats)
	}
}

func TestToChampionship_UnparseableTimestampUsesFetchTime(t *testing.T) {
	t.Parallel()

	envelope := resultsEnvelope{
		EventName:   "Gold Cup 2025",
		LastUpdated: "yesterday-ish",
	}

	fetchedAt := time.Date(2026, time.August, 25, 12, 30, 0, 0, time.UTC)
	got := envelope.toChampionship("13239", fetchedAt)
	if !got.LastUpdated.Equal(fetchedAt) {
		t.Fatalf("expected fetch time fallback, got %v", got.LastUpdated)
	}
}

func TestRaceScoreValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		race raceScore
		want float64
	}{
		{name: "position wins", race: raceScore{Position: floatPtr(2), Points: floatPtr(7)}, want: 2},
		{name: "zero position falls to points", race: raceScore{Position: floatPtr(0), Points: floatPtr(7)}, want: 7},
		{name: "points only", race: raceScore{Points: floatPtr(5.5)}, want: 5.5},
		{name: "nothing scored", race: raceScore{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.race.score(); got != tt.want {
				t.Fatalf("score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResultsEnvelopeEmpty(t *testing.T) {
	t.Parallel()

	if !(resultsEnvelope{}).empty() {
		t.Fatal("zero envelope should be empty")
	}
	if (resultsEnvelope{EventName: "Gold Cup"}).empty() {
		t.Fatal("named envelope is not empty")
	}
	if (resultsEnvelope{Metadata: &resultsMetadata{}}).empty() {
		t.Fatal("envelope with metadata is not empty")
	}
	if (resultsEnvelope{OverallStandings: []standingItem{{}}}).empty() {
		t.Fatal("envelope with standings is not empty")
	}
}
