package matchdomain

import (
	teamdomain "github.com/Black-And-White-Club/anleague/app/modules/team/domain"
	"github.com/google/uuid"
)

// DecidedBy names the phase that produced the winner.
type DecidedBy string

const (
	DecidedInRegulation DecidedBy = "regulation"
	DecidedInExtraTime  DecidedBy = "extra_time"
	DecidedOnPenalties  DecidedBy = "penalties"
)

// Side is one team as seen by the simulator.
type Side struct {
	ID      uuid.UUID
	Country string
	Rating  float64
	Roster  []teamdomain.Player
}

// SideFromTeam adapts a registered team.
func SideFromTeam(t teamdomain.Team) Side {
	return Side{ID: t.ID, Country: t.Country, Rating: t.Rating, Roster: t.Players}
}

// ScorerEvent is a single goal.
type ScorerEvent struct {
	TeamCountry string `json:"team_country"`
	Player      string `json:"player"`
	Minute      int    `json:"minute"`
	Media       string `json:"gif"`
}

// Result is a completed match.
type Result struct {
	Score1     int            `json:"score1"`
	Score2     int            `json:"score2"`
	Scorers    []ScorerEvent  `json:"scorers"`
	WinnerID   uuid.UUID      `json:"winner_id"`
	Commentary string         `json:"commentary"`
	DecidedBy  DecidedBy      `json:"decided_by"`
	Shootout   *ShootoutScore `json:"shootout,omitempty"`
	Assets     Assets         `json:"assets"`
}

// GoalsFor counts the result's scorer events credited to country.
func (r Result) GoalsFor(country string) int {
	n := 0
	for _, s := range r.Scorers {
		if s.TeamCountry == country {
			n++
		}
	}
	return n
}
