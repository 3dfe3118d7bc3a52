package userhandlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	userdomain "github.com/Black-And-White-Club/anleague/app/modules/user/domain"
	"github.com/Black-And-White-Club/anleague/internal/httpx"
	"github.com/Black-And-White-Club/anleague/internal/observability/attr"
)

// Authenticator resolves a bearer token into claims.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*userdomain.Claims, error)
}

type roleGuard struct {
	auth   Authenticator
	logger *slog.Logger
}

// NewGuard returns a Guard validating bearer tokens with auth.
func NewGuard(auth Authenticator, logger *slog.Logger) Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &roleGuard{auth: auth, logger: logger}
}

// Require rejects requests without a valid bearer token (401) or whose role
// is not listed (403). Accepted claims are stored on the request context.
func (g *roleGuard) Require(roles ...userdomain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, ok := bearerToken(r)
			if !ok {
				httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := g.auth.Authenticate(ctx, token)
			if err != nil {
				g.logger.WarnContext(ctx, "Rejected bearer token", attr.ExtractCorrelationID(ctx), attr.Error(err))
				httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if !claims.HasRole(roles...) {
				httpx.WriteError(w, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r.WithContext(userdomain.WithClaims(ctx, claims)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
