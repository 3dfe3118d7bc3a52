package userservice

import "errors"

var (
	// ErrInvalidCredentials is returned when the username, password or
	// role do not match a stored account.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidRole is returned for a role outside admin and rep.
	ErrInvalidRole = errors.New("invalid role")
)
