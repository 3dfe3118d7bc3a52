package tournamentdb

import "errors"

var (
	// ErrNotFound is returned when a match or tournament does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyPlayed is returned when a result is recorded twice.
	ErrAlreadyPlayed = errors.New("match already played")
)
