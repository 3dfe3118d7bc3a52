package teamrouter

import (
	teamhandlers "github.com/Black-And-White-Club/anleague/app/modules/team/infrastructure/handlers"
	userdomain "github.com/Black-And-White-Club/anleague/app/modules/user/domain"
	userhandlers "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// Mount registers the public team routes and the admin team actions.
func Mount(r chi.Router, h teamhandlers.Handlers, guard userhandlers.Guard) {
	r.Get("/api/teams", h.HandleListTeams)
	r.Get("/api/teams/{id}", h.HandleGetTeam)
	r.Post("/api/teams", h.HandleRegisterTeam)

	r.Group(func(r chi.Router) {
		r.Use(guard.Require(userdomain.RoleAdmin))

		r.Post("/api/admin/seed", h.HandleSeedDemoTeams)
		r.Post("/api/admin/teams/eighth", h.HandleAddDemoTeam)
		r.Post("/api/admin/rep-users", h.HandleCreateRepUsers)
		r.Delete("/api/admin/teams/{id}", h.HandleRemoveTeam)
		r.Post("/api/admin/teams/{id}/replace", h.HandleReplaceTeam)
	})
}
