package championship

import "testing"

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      Status
	}{
		{name: "not started", completed: 0, total: 10, want: StatusUpcoming},
		{name: "no races scheduled", completed: 0, total: 0, want: StatusUpcoming},
		{name: "mid series", completed: 4, total: 10, want: StatusOngoing},
		{name: "all races sailed", completed: 10, total: 10, want: StatusCompleted},
		{name: "extra races beyond schedule", completed: 12, total: 10, want: StatusCompleted},
		{name: "progress without schedule", completed: 5, total: 0, want: StatusOngoing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.completed, tt.total)
			if got != tt.want {
				t.Fatalf("DeriveStatus(%d, %d) = %s, want %s", tt.completed, tt.total, got, tt.want)
			}
		})
	}
}

func TestChampionshipClone(t *testing.T) {
	original := &Championship{
		ID:     "13241",
		Name:   "Asia Pacific Championship 2026",
		Status: StatusOngoing,
		Competitors: []Competitor{
			{
				SailNumber:  "HKG 59",
				RaceResults: []float64{1, 3, 2},
				Discards:    []float64{3},
			},
		},
	}

	clone := original.Clone()
	clone.Name = "mutated"
	clone.Competitors[0].SailNumber = "USA 1"
	clone.Competitors[0].RaceResults[0] = 99
	clone.Competitors[0].Discards[0] = 99

	if original.Name != "Asia Pacific Championship 2026" {
		t.Fatalf("clone mutation leaked into original name: %s", original.Name)
	}
	if original.Competitors[0].SailNumber != "HKG 59" {
		t.Fatalf("clone mutation leaked into original competitor: %s", original.Competitors[0].SailNumber)
	}
	if original.Competitors[0].RaceResults[0] != 1 {
		t.Fatalf("clone mutation leaked into race results: %v", original.Competitors[0].RaceResults)
	}
	if original.Competitors[0].Discards[0] != 3 {
		t.Fatalf("clone mutation leaked into discards: %v", original.Competitors[0].Discards)
	}

	var nilChampionship *Championship
	if nilChampionship.Clone() != nil {
		t.Fatal("expected nil clone for nil championship")
	}
}
