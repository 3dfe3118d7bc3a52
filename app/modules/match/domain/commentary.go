package matchdomain

import (
	"context"
	"fmt"
	"strings"
)

const keyMomentLimit = 6

// CommentaryRequest describes a finished match for the commentary collaborator.
type CommentaryRequest struct {
	Home    string
	Away    string
	Score1  int
	Score2  int
	Scorers []ScorerEvent
}

// Prompt renders the request as a natural-language instruction.
func (r CommentaryRequest) Prompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a concise match summary and %d short key moments for a football match between %s and %s. ", keyMomentLimit, r.Home, r.Away)
	fmt.Fprintf(&b, "Final score %s %d - %d %s. Scorers: ", r.Home, r.Score1, r.Score2, r.Away)
	for _, s := range r.Scorers {
		fmt.Fprintf(&b, "%s - %s (%d') ; ", s.TeamCountry, s.Player, s.Minute)
	}
	return b.String()
}

// Commentator produces free-text commentary for a match.
type Commentator interface {
	Commentate(ctx context.Context, req CommentaryRequest) (string, error)
}

// FallbackCommentary summarizes the score and the earliest key moments.
// scorers must already be ordered by minute.
func FallbackCommentary(home, away string, score1, score2 int, scorers []ScorerEvent) string {
	parts := []string{fmt.Sprintf("Final score: %s %d - %d %s.", home, score1, score2, away)}
	if len(scorers) > 0 {
		key := scorers[:min(keyMomentLimit, len(scorers))]
		moments := make([]string, len(key))
		for i, s := range key {
			moments[i] = fmt.Sprintf("%d' %s: %s", s.Minute, s.TeamCountry, s.Player)
		}
		parts = append(parts, "Key moments: "+strings.Join(moments, "; ")+".")
	}
	return strings.Join(parts, "\n")
}
