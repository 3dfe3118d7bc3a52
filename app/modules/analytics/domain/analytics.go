package analyticsdomain

import (
	"slices"

	matchdomain "github.com/Black-And-White-Club/anleague/app/modules/match/domain"
	"github.com/google/uuid"
)

// DefaultLeaderboardLimit is the number of scorers shown on the leaderboard.
const DefaultLeaderboardLimit = 20

// MatchRecord is a match as seen by the aggregator.
type MatchRecord struct {
	Team1ID uuid.UUID
	Team2ID uuid.UUID
	Score1  int
	Score2  int
	Played  bool
	Scorers []matchdomain.ScorerEvent
}

// TeamStats are a team's totals over its played matches. A shootout
// leaves the score level, so it counts as a draw.
type TeamStats struct {
	GoalsScored   int `json:"goals_scored"`
	GoalsAgainst  int `json:"goals_against"`
	Wins          int `json:"wins"`
	Losses        int `json:"losses"`
	Draws         int `json:"draws"`
	MatchesPlayed int `json:"matches_played"`
}

// ComputeTeamStats folds every played match that involves teamID.
func ComputeTeamStats(teamID uuid.UUID, history []MatchRecord) TeamStats {
	var s TeamStats
	for _, m := range history {
		if !m.Played {
			continue
		}
		var scored, against int
		switch teamID {
		case m.Team1ID:
			scored, against = m.Score1, m.Score2
		case m.Team2ID:
			scored, against = m.Score2, m.Score1
		default:
			continue
		}
		s.MatchesPlayed++
		s.GoalsScored += scored
		s.GoalsAgainst += against
		switch {
		case scored > against:
			s.Wins++
		case scored < against:
			s.Losses++
		default:
			s.Draws++
		}
	}
	return s
}

// ScorerTally is a leaderboard row.
type ScorerTally struct {
	Team   string `json:"team"`
	Player string `json:"player"`
	Goals  int    `json:"goals"`
}

type scorerKey struct {
	team   string
	player string
}

// TopScorers tallies goals per (country, player) across played matches and
// sorts by goals descending. Equal tallies keep the order in which the
// scorer first appears in history. A non-positive limit returns every row.
func TopScorers(history []MatchRecord, limit int) []ScorerTally {
	index := make(map[scorerKey]int)
	var rows []ScorerTally
	for _, m := range history {
		if !m.Played {
			continue
		}
		for _, s := range m.Scorers {
			key := scorerKey{team: s.TeamCountry, player: s.Player}
			i, ok := index[key]
			if !ok {
				i = len(rows)
				index[key] = i
				rows = append(rows, ScorerTally{Team: s.TeamCountry, Player: s.Player})
			}
			rows[i].Goals++
		}
	}

	slices.SortStableFunc(rows, func(a, b ScorerTally) int { return b.Goals - a.Goals })

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
