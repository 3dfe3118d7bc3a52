package userrouter

import (
	userhandlers "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/handlers"
	"github.com/Black-And-White-Club/anleague/internal/httpx"
	"github.com/go-chi/chi/v5"
)

// Mount registers the login routes below /api/auth. Logins are rate limited
// per client IP.
func Mount(r chi.Router, h userhandlers.Handlers, limiter *httpx.ClientLimiter, allowedOrigins []string) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Use(httpx.CORS(allowedOrigins))
		r.Use(httpx.RateLimit(limiter))

		r.Post("/login", h.HandleAdminLogin)
		r.Post("/rep/login", h.HandleRepLogin)
	})
}
