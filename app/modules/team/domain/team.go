package teamdomain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Team is a registered national team.
type Team struct {
	ID        uuid.UUID `json:"id"`
	Country   string    `json:"country"`
	RepName   string    `json:"rep_name"`
	RepEmail  string    `json:"rep_email"`
	Manager   string    `json:"manager"`
	Players   []Player  `json:"players"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// Captain returns the captain, if one is flagged.
func (t Team) Captain() (Player, bool) {
	for _, p := range t.Players {
		if p.IsCaptain {
			return p, true
		}
	}
	return Player{}, false
}

// NewTeam validates the registration details and computes the rating.
// The captain flag is set on exactly one player.
func NewTeam(country, repName, repEmail, manager string, players []Player, captainIndex int, now time.Time) (Team, error) {
	if strings.TrimSpace(country) == "" {
		return Team{}, fmt.Errorf("%w: country", ErrMissingField)
	}
	if strings.TrimSpace(repEmail) == "" {
		return Team{}, fmt.Errorf("%w: rep_email", ErrMissingField)
	}
	if len(players) != RosterSize {
		return Team{}, fmt.Errorf("%w: got %d", ErrInvalidRoster, len(players))
	}
	if captainIndex < 0 || captainIndex >= len(players) {
		return Team{}, fmt.Errorf("%w: %d", ErrInvalidCaptain, captainIndex)
	}

	roster := make([]Player, len(players))
	for i, p := range players {
		p.IsCaptain = i == captainIndex
		roster[i] = p
	}

	return Team{
		ID:        uuid.New(),
		Country:   country,
		RepName:   repName,
		RepEmail:  repEmail,
		Manager:   manager,
		Players:   roster,
		Rating:    TeamRating(roster),
		CreatedAt: now.UTC(),
	}, nil
}
