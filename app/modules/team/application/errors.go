package teamservice

import "errors"

var (
	// ErrTeamNotFound is returned when the team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrRepresentativeExists is returned when the representative email is
	// already registered as a username.
	ErrRepresentativeExists = errors.New("a user with this email already exists")
	// ErrMissingPassword is returned when a registration omits the
	// representative password.
	ErrMissingPassword = errors.New("representative password is required")
)
