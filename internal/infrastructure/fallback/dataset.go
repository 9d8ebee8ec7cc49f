// Package fallback bundles the championship dataset shipped with the
// binary. It backs the dev-only mock toggle and fills descriptive fields
// the results server omits from standings payloads.
package fallback

import (
	"time"

	"github.com/dragonworlds/results-sync/internal/domain/championship"
)

const (
	EventIDGoldCup2025     = "13239"
	EventIDAsiaPacific2026 = "13241"
	EventIDWorlds2026      = "13242"
)

// Metadata carries the descriptive fields of one event. Standings payloads
// only identify events by id, so names, venues, and dates come from here.
type Metadata struct {
	Name      string
	Location  string
	StartDate time.Time
	EndDate   time.Time
}

// Dataset is an immutable snapshot of the bundled championships. Accessors
// hand out deep copies, never the backing values.
type Dataset struct {
	byID map[string]*championship.Championship
}

func NewDataset() *Dataset {
	entries := seedChampionships()
	byID := make(map[string]*championship.Championship, len(entries))
	for _, entry := range entries {
		byID[entry.ID] = entry
	}
	return &Dataset{byID: byID}
}

// Championship returns the bundled entry for a native event id. Unknown
// ids get a generic placeholder with the requested id stamped in, so the
// mock path always has something to serve.
func (d *Dataset) Championship(nativeID string) *championship.Championship {
	if entry, ok := d.byID[nativeID]; ok {
		return entry.Clone()
	}
	generic := seedGenericChampionship()
	generic.ID = nativeID
	return generic
}

// Metadata reports the descriptive fields for a known native id.
func (d *Dataset) Metadata(nativeID string) (Metadata, bool) {
	entry, ok := d.byID[nativeID]
	if !ok {
		return Metadata{}, false
	}
	return Metadata{
		Name:      entry.Name,
		Location:  entry.Location,
		StartDate: entry.StartDate,
		EndDate:   entry.EndDate,
	}, true
}

// NativeIDs lists the bundled event ids in ascending id order.
func (d *Dataset) NativeIDs() []string {
	return []string{EventIDGoldCup2025, EventIDAsiaPacific2026, EventIDWorlds2026}
}

func seedChampionships() []*championship.Championship {
	return []*championship.Championship{
		{
			ID:             EventIDGoldCup2025,
			Name:           "Gold Cup 2025",
			Location:       "Cascais, Portugal",
			Status:         championship.StatusCompleted,
			TotalRaces:     6,
			CompletedRaces: 6,
			TotalBoats:     5,
			StartDate:      time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2025, time.November, 9, 0, 0, 0, 0, time.UTC),
			LastUpdated:    time.Date(2025, time.November, 9, 16, 30, 0, 0, time.UTC),
			Competitors: []championship.Competitor{
				{Position: 1, SailNumber: "POR 70", HelmName: "Duarte Silva", CrewName: "Tiago Costa", CountryCode: "PT", CountryFlag: "🇵🇹", YachtClub: "Clube Naval de Cascais", TotalPoints: 6, RaceResults: []float64{1, 1, 2, 1, 3, 1}, Discards: []float64{3}},
				{Position: 2, SailNumber: "GBR 820", HelmName: "Henry Ashford", CrewName: "Tom Barrow", CountryCode: "GB", CountryFlag: "🇬🇧", YachtClub: "Royal Thames Yacht Club", TotalPoints: 9, RaceResults: []float64{2, 3, 1, 2, 1, 4}, Discards: []float64{4}},
				{Position: 3, SailNumber: "GER 1162", HelmName: "Stefan Brandt", CrewName: "Lukas Meyer", CountryCode: "DE", CountryFlag: "🇩🇪", YachtClub: "Norddeutscher Regatta Verein", TotalPoints: 12, RaceResults: []float64{3, 2, 3, 4, 2, 2}, Discards: []float64{4}},
				{Position: 4, SailNumber: "SUI 318", HelmName: "Marc Keller", CrewName: "Jonas Frei", CountryCode: "CH", CountryFlag: "🇨🇭", YachtClub: "Société Nautique de Genève", TotalPoints: 18, RaceResults: []float64{4, 4, 5, 3, 4, 3}, Discards: []float64{5}},
				{Position: 5, SailNumber: "DEN 404", HelmName: "Anders Holm", CrewName: "Frederik Juhl", CountryCode: "DK", CountryFlag: "🇩🇰", YachtClub: "Kongelig Dansk Yachtklub", TotalPoints: 24, RaceResults: []float64{5, 5, 4, 5, 5, 5}, Discards: []float64{5}},
			},
		},
		{
			ID:             EventIDAsiaPacific2026,
			Name:           "Asia Pacific Championship 2026",
			Location:       "Hong Kong",
			Status:         championship.StatusOngoing,
			TotalRaces:     8,
			CompletedRaces: 5,
			TotalBoats:     8,
			StartDate:      time.Date(2026, time.August, 17, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC),
			LastUpdated:    time.Date(2026, time.August, 22, 9, 15, 0, 0, time.UTC),
			Competitors: []championship.Competitor{
				{Position: 1, SailNumber: "HKG 59", HelmName: "Mark Whitfield", CrewName: "Sam Chan", CountryCode: "HK", CountryFlag: "🇭🇰", YachtClub: "Royal Hong Kong Yacht Club", TotalPoints: 5, RaceResults: []float64{1, 2, 1, 3, 1}, Discards: []float64{3}},
				{Position: 2, SailNumber: "AUS 217", HelmName: "Peter Calloway", CrewName: "Joshua Reid", CountryCode: "AU", CountryFlag: "🇦🇺", YachtClub: "Royal Prince Alfred Yacht Club", TotalPoints: 6, RaceResults: []float64{2, 1, 4, 1, 2}, Discards: []float64{4}},
				{Position: 3, SailNumber: "JPN 50", HelmName: "Kenji Nakamura", CrewName: "Haruto Sato", CountryCode: "JP", CountryFlag: "🇯🇵", YachtClub: "Hayama Marina Yacht Club", TotalPoints: 10, RaceResults: []float64{3, 4, 2, 2, 3}, Discards: []float64{4}},
				{Position: 4, SailNumber: "HKG 33", HelmName: "Victor Lam", CrewName: "Oscar Cheung", CountryCode: "HK", CountryFlag: "🇭🇰", YachtClub: "Royal Hong Kong Yacht Club", TotalPoints: 14, RaceResults: []float64{5, 3, 3, 4, 4}, Discards: []float64{5}},
				{Position: 5, SailNumber: "NZL 7", HelmName: "Liam Carter", CrewName: "George Hale", CountryCode: "NZ", CountryFlag: "🇳🇿", YachtClub: "Royal Akarana Yacht Club", TotalPoints: 19, RaceResults: []float64{4, 6, 5, 5, 5}, Discards: []float64{6}},
				{Position: 6, SailNumber: "SGP 12", HelmName: "Daniel Teo", CrewName: "Marcus Lim", CountryCode: "SG", CountryFlag: "🇸🇬", YachtClub: "Changi Sailing Club", TotalPoints: 23, RaceResults: []float64{6, 5, 7, 6, 6}, Discards: []float64{7}},
				{Position: 7, SailNumber: "THA 9", HelmName: "Nat Boonmee", CrewName: "Krit Somchai", CountryCode: "TH", CountryFlag: "🇹🇭", YachtClub: "Royal Varuna Yacht Club", TotalPoints: 27, RaceResults: []float64{7, 7, 6, 8, 7}, Discards: []float64{8}},
				{Position: 8, SailNumber: "CHN 88", HelmName: "Wei Zhang", CrewName: "Jun Li", CountryCode: "CN", CountryFlag: "🇨🇳", YachtClub: "Shenzhen Yacht Club", TotalPoints: 31, RaceResults: []float64{8, 8, 8, 7, 8}, Discards: []float64{8}},
			},
		},
		{
			ID:             EventIDWorlds2026,
			Name:           "World Championship 2026",
			Location:       "Fremantle, Australia",
			Status:         championship.StatusUpcoming,
			TotalRaces:     12,
			CompletedRaces: 0,
			TotalBoats:     4,
			StartDate:      time.Date(2026, time.December, 5, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2026, time.December, 13, 0, 0, 0, 0, time.UTC),
			LastUpdated:    time.Date(2026, time.July, 1, 12, 0, 0, 0, time.UTC),
			Competitors: []championship.Competitor{
				{Position: 1, SailNumber: "AUS 300", HelmName: "Ben Hargreaves", CrewName: "Noah Pratt", CountryCode: "AU", CountryFlag: "🇦🇺", YachtClub: "Fremantle Sailing Club"},
				{Position: 2, SailNumber: "HKG 59", HelmName: "Mark Whitfield", CrewName: "Sam Chan", CountryCode: "HK", CountryFlag: "🇭🇰", YachtClub: "Royal Hong Kong Yacht Club"},
				{Position: 3, SailNumber: "GBR 758", HelmName: "Alice Renshaw", CrewName: "Ed Collins", CountryCode: "GB", CountryFlag: "🇬🇧", YachtClub: "Royal Yacht Squadron"},
				{Position: 4, SailNumber: "USA 310", HelmName: "Tyler Brooks", CrewName: "Chris Delgado", CountryCode: "US", CountryFlag: "🇺🇸", YachtClub: "San Diego Yacht Club"},
			},
		},
	}
}

func seedGenericChampionship() *championship.Championship {
	return &championship.Championship{
		Name:           "Championship Regatta",
		Location:       "Hong Kong",
		Status:         championship.StatusOngoing,
		TotalRaces:     6,
		CompletedRaces: 3,
		TotalBoats:     3,
		StartDate:      time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC),
		LastUpdated:    time.Date(2026, time.August, 26, 10, 0, 0, 0, time.UTC),
		Competitors: []championship.Competitor{
			{Position: 1, SailNumber: "HKG 10", HelmName: "Ryan Kwok", CrewName: "Leo Tsang", CountryCode: "HK", CountryFlag: "🇭🇰", YachtClub: "Royal Hong Kong Yacht Club", TotalPoints: 4, RaceResults: []float64{1, 2, 1}},
			{Position: 2, SailNumber: "HKG 21", HelmName: "Simon Pang", CrewName: "Ivan Ho", CountryCode: "HK", CountryFlag: "🇭🇰", YachtClub: "Aberdeen Boat Club", TotalPoints: 5, RaceResults: []float64{2, 1, 2}},
			{Position: 3, SailNumber: "PHI 5", HelmName: "Miguel Santos", CrewName: "Rafael Cruz", CountryCode: "PH", CountryFlag: "🇵🇭", YachtClub: "Manila Yacht Club", TotalPoints: 9, RaceResults: []float64{3, 3, 3}},
		},
	}
}
