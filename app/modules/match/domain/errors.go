package matchdomain

import "errors"

var (
	// ErrEmptyRoster is returned when a goal must be attributed to a team without players.
	ErrEmptyRoster = errors.New("cannot choose a scorer from an empty roster")

	// ErrSameTeam is returned when a team is drawn against itself.
	ErrSameTeam = errors.New("a team cannot play itself")
)
