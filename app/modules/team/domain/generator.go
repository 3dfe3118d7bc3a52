package teamdomain

import (
	"fmt"
	"strings"
	"time"

	"github.com/Black-And-White-Club/anleague/internal/random"
)

// Generator produces player identities, ratings and demo teams.
type Generator struct {
	rng random.Source
	now func() time.Time
}

// NewGenerator returns a Generator drawing from rng.
func NewGenerator(rng random.Source) *Generator {
	return &Generator{rng: rng, now: time.Now}
}

// RandomName returns "First Last" from the fixed name lists.
func (g *Generator) RandomName() string {
	return random.Pick(g.rng, firstNames) + " " + random.Pick(g.rng, lastNames)
}

// RandomPosition draws a natural position from the autofill distribution.
func (g *Generator) RandomPosition() Position {
	r := g.rng.Float64()
	upto := 0.0
	for i, w := range positionWeights {
		upto += w
		if r < upto {
			return Positions[i]
		}
	}
	return Positions[len(Positions)-1]
}

// Generate returns an autofill name and natural position for a roster slot.
func (g *Generator) Generate(_ int) PlayerEntry {
	return PlayerEntry{Name: g.RandomName(), Position: g.RandomPosition()}
}

// BuildPlayer rates natural in [50,100] and every other position in [0,50].
func (g *Generator) BuildPlayer(name string, natural Position) Player {
	ratings := make(Ratings, len(Positions))
	for _, pos := range Positions {
		if pos == natural {
			ratings[pos] = random.IntRange(g.rng, 50, 100)
		} else {
			ratings[pos] = random.IntRange(g.rng, 0, 50)
		}
	}
	return Player{Name: name, Natural: natural, Ratings: ratings}
}

// BuildRoster materializes ratings for every entry.
func (g *Generator) BuildRoster(entries []PlayerEntry) []Player {
	roster := make([]Player, len(entries))
	for i, e := range entries {
		roster[i] = g.BuildPlayer(e.Name, e.Position)
	}
	return roster
}

// AutofillRoster generates a full roster.
func (g *Generator) AutofillRoster() []Player {
	entries := make([]PlayerEntry, RosterSize)
	for i := range entries {
		entries[i] = g.Generate(i)
	}
	return g.BuildRoster(entries)
}

// DemoTeam builds a complete team with a random country and staff. An
// empty country picks one from Countries.
func (g *Generator) DemoTeam(country string) (Team, error) {
	if country == "" {
		country = random.Pick(g.rng, Countries)
	}
	email := fmt.Sprintf("%s@example.com", strings.ToLower(strings.ReplaceAll(g.RandomName(), " ", "")))

	team, err := NewTeam(country, g.RandomName(), email, g.RandomName(), g.AutofillRoster(), 0, g.now())
	if err != nil {
		return Team{}, fmt.Errorf("demo team: %w", err)
	}
	return team, nil
}
