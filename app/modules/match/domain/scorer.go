package matchdomain

import (
	teamdomain "github.com/Black-And-White-Club/anleague/app/modules/team/domain"
	"github.com/Black-And-White-Club/anleague/internal/random"
)

// ScoringWeight is the relative chance of a player at pos scoring.
func ScoringWeight(pos teamdomain.Position) float64 {
	switch pos {
	case teamdomain.Attacker:
		return 5
	case teamdomain.Midfielder:
		return 3
	case teamdomain.Defender:
		return 1
	default:
		return 0.5
	}
}

// ChooseScorer walks cumulative position weights in roster order and returns
// the first player whose inclusive cumulative weight covers the draw.
func ChooseScorer(rng random.Source, roster []teamdomain.Player) (teamdomain.Player, error) {
	if len(roster) == 0 {
		return teamdomain.Player{}, ErrEmptyRoster
	}

	total := 0.0
	for _, p := range roster {
		total += ScoringWeight(p.Natural)
	}

	r := rng.Float64() * total
	upto := 0.0
	for _, p := range roster {
		w := ScoringWeight(p.Natural)
		if upto+w >= r {
			return p, nil
		}
		upto += w
	}
	return roster[0], nil
}
