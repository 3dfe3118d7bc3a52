package matchdomain

import (
	"math"

	"github.com/Black-And-White-Club/anleague/internal/random"
)

// PoissonCount draws a goal count with expectation lam using Knuth's
// multiplication method.
func PoissonCount(rng random.Source, lam float64) int {
	limit := math.Exp(-lam)
	k := 0
	p := 1.0
	for p > limit {
		k++
		p *= rng.Float64()
	}
	return max(0, k-1)
}

// ExpectedGoals returns the regulation goal means for two ratings. The
// means sum to about three goals and never drop below 0.2.
func ExpectedGoals(rating1, rating2 float64) (float64, float64) {
	total := rating1 + rating2
	if total <= 0 {
		return defaultMean, defaultMean
	}
	return math.Max(minMean, rating1/total*goalsPerMatch), math.Max(minMean, rating2/total*goalsPerMatch)
}

const (
	goalsPerMatch = 3.0
	minMean       = 0.2
	defaultMean   = goalsPerMatch / 2
	extraTimeMean = 0.5
)
