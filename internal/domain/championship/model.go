package championship

import "time"

// Status represents the lifecycle phase of a championship.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

var AllStatuses = map[Status]struct{}{
	StatusUpcoming:  {},
	StatusOngoing:   {},
	StatusCompleted: {},
}

// Championship is the normalized standings snapshot for one regatta event.
// ID carries the server-native event id, not the app-facing slug.
type Championship struct {
	ID             string
	Name           string
	Location       string
	Status         Status
	TotalRaces     int
	CompletedRaces int
	TotalBoats     int
	StartDate      time.Time
	EndDate        time.Time
	LastUpdated    time.Time
	Competitors    []Competitor
}

// Competitor is one boat's row in the overall standings. Competitors keep
// the order the upstream payload listed them in.
type Competitor struct {
	Position    int
	SailNumber  string
	HelmName    string
	CrewName    string
	CountryCode string
	CountryFlag string
	YachtClub   string
	TotalPoints float64
	RaceResults []float64
	// Discards holds the score values of races flagged as discarded, in
	// race order. Nil when no race is discarded.
	Discards []float64
}

// DeriveStatus maps race progress onto a lifecycle phase. A regatta with
// zero completed races has not started; one whose completed count reached
// the scheduled total is finished.
func DeriveStatus(completedRaces, totalRaces int) Status {
	switch {
	case completedRaces == 0:
		return StatusUpcoming
	case totalRaces > 0 && completedRaces >= totalRaces:
		return StatusCompleted
	default:
		return StatusOngoing
	}
}

// Clone returns a deep copy so cached and bundled values stay immutable
// when callers mutate the result.
func (c *Championship) Clone() *Championship {
	if c == nil {
		return nil
	}
	out := *c
	if c.Competitors != nil {
		out.Competitors = make([]Competitor, len(c.Competitors))
		for i, comp := range c.Competitors {
			out.Competitors[i] = comp.clone()
		}
	}
	return &out
}

func (c Competitor) clone() Competitor {
	out := c
	if c.RaceResults != nil {
		out.RaceResults = append([]float64(nil), c.RaceResults...)
	}
	if c.Discards != nil {
		out.Discards = append([]float64(nil), c.Discards...)
	}
	return out
}
