package userjwt

import (
	"time"

	userdomain "github.com/Black-And-White-Club/anleague/app/modules/user/domain"
)

// Provider defines the interface for JWT token operations.
type Provider interface {
	// GenerateToken creates a signed token carrying claims, valid for ttl.
	GenerateToken(claims *userdomain.Claims, ttl time.Duration) (string, error)

	// ValidateToken validates a token and returns its claims.
	ValidateToken(tokenString string) (*userdomain.Claims, error)
}
