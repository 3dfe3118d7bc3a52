package matchdomain

import "github.com/Black-And-White-Club/anleague/internal/random"

const (
	shootoutRounds    = 5
	penaltyConversion = 0.75
)

// ShootoutScore is the result of a penalty shootout.
type ShootoutScore struct {
	Home  int `json:"home"`
	Away  int `json:"away"`
	Kicks int `json:"kicks"`
}

// PenaltyShootout takes five kicks per side, then sudden-death pairs until
// the totals differ.
func PenaltyShootout(rng random.Source) ShootoutScore {
	var s ShootoutScore
	kick := func() {
		if rng.Float64() < penaltyConversion {
			s.Home++
		}
		if rng.Float64() < penaltyConversion {
			s.Away++
		}
		s.Kicks++
	}

	for range shootoutRounds {
		kick()
	}
	for s.Home == s.Away {
		kick()
	}
	return s
}
