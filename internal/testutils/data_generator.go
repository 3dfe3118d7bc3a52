// Package testutils provides seeded test data shared by unit and
// integration tests.
package testutils

import (
	"fmt"
	"strings"
	"time"

	teamdomain "github.com/Black-And-White-Club/anleague/app/modules/team/domain"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// TestDataGenerator provides methods to create test data.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  uint64
}

// NewTestDataGenerator creates a generator with an optional seed.
func NewTestDataGenerator(seed ...uint64) *TestDataGenerator {
	var s uint64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = uint64(time.Now().UnixNano())
	}
	return &TestDataGenerator{faker: gofakeit.New(s), seed: s}
}

// Seed returns the seed, for reproducing a failure.
func (g *TestDataGenerator) Seed() uint64 {
	return g.seed
}

// Name returns "First Last".
func (g *TestDataGenerator) Name() string {
	return g.faker.FirstName() + " " + g.faker.LastName()
}

// Email returns a unique-looking representative email.
func (g *TestDataGenerator) Email() string {
	return strings.ToLower(fmt.Sprintf("%s.%s@example.com", g.faker.FirstName(), g.faker.LetterN(6)))
}

// Country returns one of the fixed African country names.
func (g *TestDataGenerator) Country() string {
	return g.faker.RandomString(teamdomain.Countries)
}

// Position returns a random position.
func (g *TestDataGenerator) Position() teamdomain.Position {
	return teamdomain.Positions[g.faker.IntN(len(teamdomain.Positions))]
}

// Player returns a rated player whose natural position is natural.
func (g *TestDataGenerator) Player(natural teamdomain.Position) teamdomain.Player {
	ratings := make(teamdomain.Ratings, len(teamdomain.Positions))
	for _, pos := range teamdomain.Positions {
		if pos == natural {
			ratings[pos] = g.faker.IntRange(50, 100)
		} else {
			ratings[pos] = g.faker.IntRange(0, 50)
		}
	}
	return teamdomain.Player{Name: g.Name(), Natural: natural, Ratings: ratings}
}

// PlayerEntries returns n name/position pairs.
func (g *TestDataGenerator) PlayerEntries(n int) []teamdomain.PlayerEntry {
	out := make([]teamdomain.PlayerEntry, n)
	for i := range out {
		out[i] = teamdomain.PlayerEntry{Name: g.Name(), Position: g.Position()}
	}
	return out
}

// Roster returns a full roster with the first player as captain.
func (g *TestDataGenerator) Roster() []teamdomain.Player {
	out := make([]teamdomain.Player, teamdomain.RosterSize)
	for i := range out {
		out[i] = g.Player(g.Position())
	}
	out[0].IsCaptain = true
	return out
}

// Team returns a complete registered team created at createdAt.
func (g *TestDataGenerator) Team(createdAt time.Time) teamdomain.Team {
	roster := g.Roster()
	return teamdomain.Team{
		ID:        uuid.New(),
		Country:   g.Country(),
		RepName:   g.Name(),
		RepEmail:  g.Email(),
		Manager:   g.Name(),
		Players:   roster,
		Rating:    teamdomain.TeamRating(roster),
		CreatedAt: createdAt.UTC(),
	}
}

// Teams returns n teams with strictly increasing creation times and
// distinct countries.
func (g *TestDataGenerator) Teams(n int, start time.Time) []teamdomain.Team {
	out := make([]teamdomain.Team, n)
	used := make(map[string]bool, n)
	for i := range out {
		t := g.Team(start.Add(time.Duration(i) * time.Minute))
		for used[t.Country] && len(used) < len(teamdomain.Countries) {
			t.Country = g.Country()
		}
		used[t.Country] = true
		out[i] = t
	}
	return out
}
