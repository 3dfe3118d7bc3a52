package tournamentservice

import "errors"

var (
	// ErrMatchNotFound is returned when a referenced match does not exist.
	ErrMatchNotFound = errors.New("match not found")

	// ErrMatchAlreadyPlayed is returned when simulating a played match.
	ErrMatchAlreadyPlayed = errors.New("match already played")

	// ErrTeamMissing is returned when a match references a removed team.
	ErrTeamMissing = errors.New("match team no longer registered")

	// ErrNotEnoughTeams is returned when starting with fewer than eight teams.
	ErrNotEnoughTeams = errors.New("need at least 8 teams to start")

	// ErrTournamentInProgress is returned when starting while matches exist.
	ErrTournamentInProgress = errors.New("a tournament is already in progress")

	// ErrTeamNotFound is returned when a dashboard team does not exist.
	ErrTeamNotFound = errors.New("team not found")
)
