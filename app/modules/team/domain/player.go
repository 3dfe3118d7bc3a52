package teamdomain

// RosterSize is the number of players every team registers.
const RosterSize = 23

// Ratings maps each position to a skill value in [0,100].
type Ratings map[Position]int

// Player is a rostered player.
type Player struct {
	Name      string   `json:"name"`
	Natural   Position `json:"natural"`
	Ratings   Ratings  `json:"ratings"`
	IsCaptain bool     `json:"is_captain"`
}

// Contribution is the player's share of the team rating: the rating at
// their natural position, or their best rating when no position is set.
func (p Player) Contribution() int {
	if p.Natural != "" {
		if r, ok := p.Ratings[p.Natural]; ok {
			return r
		}
	}
	best := 0
	for _, r := range p.Ratings {
		if r > best {
			best = r
		}
	}
	return best
}

// PlayerEntry is a name and position pair supplied at registration.
type PlayerEntry struct {
	Name     string   `json:"name"`
	Position Position `json:"position"`
}
