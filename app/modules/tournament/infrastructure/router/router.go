package tournamentrouter

import (
	tournamenthandlers "github.com/Black-And-White-Club/anleague/app/modules/tournament/infrastructure/handlers"
	userdomain "github.com/Black-And-White-Club/anleague/app/modules/user/domain"
	userhandlers "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// Mount registers the public, representative and admin tournament routes.
func Mount(r chi.Router, h tournamenthandlers.Handlers, guard userhandlers.Guard) {
	r.Get("/api/bracket", h.HandleBracket)
	r.Get("/api/matches/{id}", h.HandleGetMatch)
	r.Get("/api/history", h.HandleHistory)
	r.Get("/api/status", h.HandleStatus)

	r.With(guard.Require(userdomain.RoleRep)).Get("/api/rep/dashboard", h.HandleRepDashboard)

	r.Group(func(r chi.Router) {
		r.Use(guard.Require(userdomain.RoleAdmin))

		r.Get("/api/admin", h.HandleAdminDashboard)
		r.Post("/api/admin/start", h.HandleStart)
		r.Post("/api/admin/simulate", h.HandleSimulateAll)
		r.Post("/api/admin/matches/{id}/simulate", h.HandleSimulateMatch)
		r.Post("/api/admin/reset", h.HandleReset)
	})
}
