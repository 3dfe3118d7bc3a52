package tournamentdomain

import (
	"time"

	matchdomain "github.com/Black-And-White-Club/anleague/app/modules/match/domain"
	"github.com/google/uuid"
)

const (
	// MatchSimulatedV1 is published after every simulated match.
	MatchSimulatedV1 = "tournament.match.simulated.v1"

	// TournamentCompletedV1 is published once when the last match of a bracket is played.
	TournamentCompletedV1 = "tournament.completed.v1"
)

// MatchSimulatedPayloadV1 describes a freshly played match.
type MatchSimulatedPayloadV1 struct {
	MatchID      uuid.UUID                 `json:"match_id"`
	Team1ID      uuid.UUID                 `json:"team1_id"`
	Team2ID      uuid.UUID                 `json:"team2_id"`
	Team1Country string                    `json:"team1_country"`
	Team2Country string                    `json:"team2_country"`
	Team1Email   string                    `json:"team1_email"`
	Team2Email   string                    `json:"team2_email"`
	Score1       int                       `json:"score1"`
	Score2       int                       `json:"score2"`
	Scorers      []matchdomain.ScorerEvent `json:"scorers"`
	WinnerID     uuid.UUID                 `json:"winner_id"`
	Commentary   string                    `json:"commentary"`
	DecidedBy    matchdomain.DecidedBy     `json:"decided_by"`
	PlayedAt     time.Time                 `json:"played_at"`
	// Notify is set when representatives should be emailed the result.
	Notify bool `json:"notify"`
}

// TournamentCompletedPayloadV1 announces the champion.
type TournamentCompletedPayloadV1 struct {
	TournamentID  uuid.UUID `json:"tournament_id"`
	WinnerID      uuid.UUID `json:"winner_id"`
	WinnerCountry string    `json:"winner_country"`
	PlayedAt      time.Time `json:"played_at"`
}
