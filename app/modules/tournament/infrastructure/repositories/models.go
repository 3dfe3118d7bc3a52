package tournamentdb

import (
	"time"

	matchdomain "github.com/Black-And-White-Club/anleague/app/modules/match/domain"
	tournamentdomain "github.com/Black-And-White-Club/anleague/app/modules/tournament/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Match is a bracket fixture and, once played, its result. Team IDs are a
// logical link to teams (no constraint) so the modules migrate independently.
type Match struct {
	bun.BaseModel `bun:"table:matches,alias:m"`
	ID            uuid.UUID                  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Team1ID       uuid.UUID                  `bun:"team1_id,type:uuid,notnull" json:"team1"`
	Team2ID       uuid.UUID                  `bun:"team2_id,type:uuid,notnull" json:"team2"`
	Team1Country  string                     `bun:"team1_country,notnull" json:"team1_country"`
	Team2Country  string                     `bun:"team2_country,notnull" json:"team2_country"`
	Stage         tournamentdomain.Stage     `bun:"stage,notnull" json:"stage"`
	Score1        *int                       `bun:"score1" json:"score1"`
	Score2        *int                       `bun:"score2" json:"score2"`
	Scorers       []matchdomain.ScorerEvent  `bun:"scorers,type:jsonb,notnull" json:"scorers"`
	Played        bool                       `bun:"played,notnull,default:false" json:"played"`
	WinnerID      *uuid.UUID                 `bun:"winner_id,type:uuid" json:"winner_id"`
	Commentary    string                     `bun:"commentary,notnull,default:''" json:"commentary,omitempty"`
	DecidedBy     string                     `bun:"decided_by,nullzero" json:"decided_by,omitempty"`
	Shootout      *matchdomain.ShootoutScore `bun:"shootout,type:jsonb" json:"shootout,omitempty"`
	CreatedAt     time.Time                  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	PlayedAt      *time.Time                 `bun:"played_at" json:"played_at,omitempty"`
}

// MatchFromFixture builds an unplayed row from a bracket fixture.
func MatchFromFixture(f tournamentdomain.Fixture) *Match {
	return &Match{
		ID:           f.ID,
		Team1ID:      f.Team1ID,
		Team2ID:      f.Team2ID,
		Team1Country: f.Team1Country,
		Team2Country: f.Team2Country,
		Stage:        f.Stage,
		Scorers:      []matchdomain.ScorerEvent{},
		CreatedAt:    f.CreatedAt,
	}
}

// ApplyResult copies a simulated result onto the row and marks it played.
func (m *Match) ApplyResult(res matchdomain.Result, playedAt time.Time) {
	s1, s2 := res.Score1, res.Score2
	winner := res.WinnerID
	m.Score1 = &s1
	m.Score2 = &s2
	m.Scorers = res.Scorers
	if m.Scorers == nil {
		m.Scorers = []matchdomain.ScorerEvent{}
	}
	m.WinnerID = &winner
	m.Commentary = res.Commentary
	m.DecidedBy = string(res.DecidedBy)
	m.Shootout = res.Shootout
	m.Played = true
	t := playedAt.UTC()
	m.PlayedAt = &t
}

// Summary reduces the row to what the progression rules inspect.
func (m *Match) Summary() tournamentdomain.MatchSummary {
	return tournamentdomain.MatchSummary{
		ID:        m.ID,
		Played:    m.Played,
		WinnerID:  m.WinnerID,
		CreatedAt: m.CreatedAt,
	}
}

// Tournament is a completed tournament.
type Tournament struct {
	bun.BaseModel `bun:"table:tournaments,alias:tn"`
	ID            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	WinnerID      uuid.UUID `bun:"winner_id,type:uuid,notnull" json:"winner"`
	WinnerCountry string    `bun:"winner_country,notnull" json:"winner_country"`
	PlayedAt      time.Time `bun:"played_at,notnull,default:current_timestamp" json:"played_at"`
}
