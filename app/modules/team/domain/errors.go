package teamdomain

import "errors"

var (
	// ErrInvalidPosition is returned when a position code is not recognised.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidRoster is returned when a roster does not hold exactly 23 players.
	ErrInvalidRoster = errors.New("roster must contain exactly 23 players")

	// ErrInvalidCaptain is returned when the captain index is out of range.
	ErrInvalidCaptain = errors.New("captain index out of range")

	// ErrMissingField is returned when a required team attribute is empty.
	ErrMissingField = errors.New("missing required field")
)
