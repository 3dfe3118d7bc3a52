package notificationdomain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	matchdomain "github.com/Black-And-White-Club/anleague/app/modules/match/domain"
)

// PlaceholderWinner is shown when no champion has been crowned yet.
const PlaceholderWinner = "TBD"

// Message is one outbound email.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// MatchResult is what a match result email reports.
type MatchResult struct {
	Team1    string
	Team2    string
	Score1   int
	Score2   int
	Scorers  []matchdomain.ScorerEvent
	Comments string
}

// ComposeMatchResult builds the result email sent to both representatives.
// The commentary block is only appended when withCommentary is set.
func ComposeMatchResult(r MatchResult, withCommentary bool, recipients ...string) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Final score: %s %d - %d %s\n\nScorers:\n", r.Team1, r.Score1, r.Score2, r.Team2)
	for _, s := range r.Scorers {
		fmt.Fprintf(&b, "%s: %s (%d')\n", s.TeamCountry, s.Player, s.Minute)
	}
	if withCommentary {
		b.WriteString("\nMatch commentary:\n")
		b.WriteString(r.Comments)
	}
	return Message{
		To:      Recipients(recipients...),
		Subject: fmt.Sprintf("Match result: %s %d - %d %s", r.Team1, r.Score1, r.Score2, r.Team2),
		Body:    b.String(),
	}
}

// SummaryLine is one played match in the tournament summary.
type SummaryLine struct {
	Team1    string
	Team2    string
	Score1   int
	Score2   int
	Scorers  []matchdomain.ScorerEvent
	PlayedAt time.Time
}

// TournamentSummary is the end-of-tournament digest.
type TournamentSummary struct {
	WinnerCountry string
	FinishedAt    time.Time
	Matches       []SummaryLine
}

// ComposeTournamentSummary builds the digest sent to every representative.
// Matches are listed in the order they were played.
func ComposeTournamentSummary(s TournamentSummary, recipients ...string) Message {
	winner := s.WinnerCountry
	if winner == "" {
		winner = PlaceholderWinner
	}

	matches := slices.Clone(s.Matches)
	slices.SortStableFunc(matches, func(a, b SummaryLine) int { return a.PlayedAt.Compare(b.PlayedAt) })

	lines := []string{
		"Tournament finished on: " + s.FinishedAt.UTC().Format("2006-01-02 15:04") + " UTC",
		"Winner: " + winner,
		"",
		"Matches:",
	}
	for _, m := range matches {
		lines = append(lines, fmt.Sprintf("- %s %d - %d %s", m.Team1, m.Score1, m.Score2, m.Team2))
		if len(m.Scorers) == 0 {
			continue
		}
		goals := make([]string, len(m.Scorers))
		for i, g := range m.Scorers {
			goals[i] = fmt.Sprintf("%d' %s: %s", g.Minute, g.TeamCountry, g.Player)
		}
		lines = append(lines, "  Scorers: "+strings.Join(goals, "; "))
	}

	return Message{
		To:      Recipients(recipients...),
		Subject: "Tournament completed: Winner - " + winner,
		Body:    strings.Join(lines, "\n"),
	}
}

// Recipients drops blanks and repeats, keeping first-seen order.
func Recipients(emails ...string) []string {
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.TrimSpace(e)
		if e == "" || slices.Contains(out, e) {
			continue
		}
		out = append(out, e)
	}
	return out
}
