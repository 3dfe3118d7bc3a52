package tournamentdomain

import (
	"fmt"
	"time"

	"github.com/Black-And-White-Club/anleague/internal/random"
	"github.com/google/uuid"
)

// BracketSize is the number of teams drawn into a tournament.
const BracketSize = 8

// Stage labels a round of the bracket.
type Stage string

const StageQuarterfinal Stage = "Quarterfinal"

// Entrant is a team qualified for the bracket.
type Entrant struct {
	ID      uuid.UUID
	Country string
}

// Fixture is an unplayed match produced by the bracket builder.
type Fixture struct {
	ID           uuid.UUID
	Team1ID      uuid.UUID
	Team2ID      uuid.UUID
	Team1Country string
	Team2Country string
	Stage        Stage
	CreatedAt    time.Time
}

// MakeBracket shuffles eight distinct entrants and pairs them 0v1, 2v3, 4v5, 6v7.
// Creation timestamps increase by a microsecond per fixture so that
// creation order survives storage.
func MakeBracket(rng random.Source, entrants []Entrant, now time.Time) ([]Fixture, error) {
	if len(entrants) != BracketSize {
		return nil, fmt.Errorf("%w: got %d", ErrBracketSize, len(entrants))
	}
	seen := make(map[uuid.UUID]struct{}, len(entrants))
	for _, e := range entrants {
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEntrant, e.Country)
		}
		seen[e.ID] = struct{}{}
	}

	shuffled := make([]Entrant, len(entrants))
	copy(shuffled, entrants)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	fixtures := make([]Fixture, 0, BracketSize/2)
	base := now.UTC()
	for i := 0; i < len(shuffled); i += 2 {
		fixtures = append(fixtures, Fixture{
			ID:           uuid.New(),
			Team1ID:      shuffled[i].ID,
			Team2ID:      shuffled[i+1].ID,
			Team1Country: shuffled[i].Country,
			Team2Country: shuffled[i+1].Country,
			Stage:        StageQuarterfinal,
			CreatedAt:    base.Add(time.Duration(i/2) * time.Microsecond),
		})
	}
	return fixtures, nil
}
