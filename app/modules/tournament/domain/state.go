package tournamentdomain

import (
	"time"

	"github.com/google/uuid"
)

// State is the progression state of the current tournament.
type State string

const (
	StateIdle       State = "idle"
	StateReady      State = "ready"
	StateInProgress State = "in_progress"
	StateComplete   State = "complete"
)

// MatchSummary is the progression view of a stored match.
type MatchSummary struct {
	ID        uuid.UUID
	Played    bool
	WinnerID  *uuid.UUID
	CreatedAt time.Time
}

// Evaluate derives the state from the number of registered teams and the
// current matches. Ready needs at least BracketSize teams and no matches;
// the earliest BracketSize teams are drawn.
func Evaluate(teamCount int, matches []MatchSummary) State {
	if len(matches) == 0 {
		if teamCount >= BracketSize {
			return StateReady
		}
		return StateIdle
	}
	for _, m := range matches {
		if !m.Played {
			return StateInProgress
		}
	}
	if last, ok := LastCreated(matches); ok && last.WinnerID != nil {
		return StateComplete
	}
	return StateInProgress
}

// AllowStart reports whether a bracket may be created.
func AllowStart(teamCount, matchCount int) bool {
	return teamCount >= BracketSize && matchCount == 0
}

// LastCreated returns the most recently created match. Ties keep the later
// element of matches.
func LastCreated(matches []MatchSummary) (MatchSummary, bool) {
	if len(matches) == 0 {
		return MatchSummary{}, false
	}
	last := matches[0]
	for _, m := range matches[1:] {
		if !m.CreatedAt.Before(last.CreatedAt) {
			last = m
		}
	}
	return last, true
}

// Champion returns the tournament winner once every match is played. The
// winner of the last-created match is taken as champion, which holds for
// the single-round quarterfinal bracket MakeBracket builds.
func Champion(matches []MatchSummary) (uuid.UUID, bool) {
	if len(matches) == 0 {
		return uuid.Nil, false
	}
	for _, m := range matches {
		if !m.Played {
			return uuid.Nil, false
		}
	}
	last, _ := LastCreated(matches)
	if last.WinnerID == nil {
		return uuid.Nil, false
	}
	return *last.WinnerID, true
}
