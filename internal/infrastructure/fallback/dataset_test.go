package fallback

import (
	"testing"

	"github.com/dragonworlds/results-sync/internal/domain/championship"
)

func TestDatasetChampionshipKnownID(t *testing.T) {
	dataset := NewDataset()

	got := dataset.Championship(EventIDAsiaPacific2026)
	if got.ID != EventIDAsiaPacific2026 {
		t.Fatalf("unexpected id: %s", got.ID)
	}
	if got.Name != "Asia Pacific Championship 2026" {
		t.Fatalf("unexpected name: %s", got.Name)
	}
	if got.Status != championship.StatusOngoing {
		t.Fatalf("unexpected status: %s", got.Status)
	}
	if len(got.Competitors) != got.TotalBoats {
		t.Fatalf("competitor count %d does not match total boats %d", len(got.Competitors), got.TotalBoats)
	}
	if got.Competitors[0].SailNumber != "HKG 59" {
		t.Fatalf("unexpected leader: %s", got.Competitors[0].SailNumber)
	}
}

func TestDatasetChampionshipUnknownIDGetsPlaceholder(t *testing.T) {
	dataset := NewDataset()

	got := dataset.Championship("77777")
	if got == nil {
		t.Fatal("expected placeholder championship for unknown id")
	}
	if got.ID != "77777" {
		t.Fatalf("placeholder must carry requested id, got %s", got.ID)
	}
	if len(got.Competitors) == 0 {
		t.Fatal("placeholder should include sample competitors")
	}
}

func TestDatasetChampionshipReturnsCopies(t *testing.T) {
	dataset := NewDataset()

	first := dataset.Championship(EventIDGoldCup2025)
	first.Name = "mutated"
	first.Competitors[0].RaceResults[0] = 99

	second := dataset.Championship(EventIDGoldCup2025)
	if second.Name != "Gold Cup 2025" {
		t.Fatalf("mutation leaked into dataset: %s", second.Name)
	}
	if second.Competitors[0].RaceResults[0] != 1 {
		t.Fatalf("race result mutation leaked into dataset: %v", second.Competitors[0].RaceResults)
	}
}

func TestDatasetMetadata(t *testing.T) {
	dataset := NewDataset()

	meta, ok := dataset.Metadata(EventIDWorlds2026)
	if !ok {
		t.Fatal("expected metadata for bundled id")
	}
	if meta.Name != "World Championship 2026" || meta.Location != "Fremantle, Australia" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
	if meta.StartDate.IsZero() || meta.EndDate.IsZero() {
		t.Fatalf("expected bundled dates, got %+v", meta)
	}

	if _, ok := dataset.Metadata("77777"); ok {
		t.Fatal("expected no metadata for unknown id")
	}
}

func TestDatasetStatusesConsistentWithRaceCounts(t *testing.T) {
	dataset := NewDataset()

	for _, id := range dataset.NativeIDs() {
		entry := dataset.Championship(id)
		derived := championship.DeriveStatus(entry.CompletedRaces, entry.TotalRaces)
		if entry.Status != derived {
			t.Fatalf("event %s status %s disagrees with derived %s", id, entry.Status, derived)
		}
	}
}
