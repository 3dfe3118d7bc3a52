package tournamentdomain

import "errors"

var (
	// ErrBracketSize is returned when a bracket is requested for anything but eight teams.
	ErrBracketSize = errors.New("a bracket requires exactly 8 teams")

	// ErrDuplicateEntrant is returned when a team appears twice in a bracket request.
	ErrDuplicateEntrant = errors.New("each team may enter the bracket only once")
)
