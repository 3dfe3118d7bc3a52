package userservice

import (
	"context"

	userdomain "github.com/Black-And-White-Club/anleague/app/modules/user/domain"
)

// Service defines the user application operations.
type Service interface {
	// Login checks credentials for the given role and issues a token.
	Login(ctx context.Context, username, password string, role userdomain.Role) (*LoginResponse, error)

	// EnsureAdmin creates the administrator account when it is missing.
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)

	// Authenticate validates a token and returns its claims.
	Authenticate(ctx context.Context, token string) (*userdomain.Claims, error)
}
