package teamdomain

import "math"

// TeamRating is the mean player contribution rounded to two decimals.
// An empty roster rates zero.
func TeamRating(roster []Player) float64 {
	total := 0
	for _, p := range roster {
		total += p.Contribution()
	}
	mean := float64(total) / float64(max(1, len(roster)))
	return math.Round(mean*100) / 100
}
