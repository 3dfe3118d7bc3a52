package analyticsrouter

import (
	analyticshandlers "github.com/Black-And-White-Club/anleague/app/modules/analytics/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// Mount registers the public analytics routes.
func Mount(r chi.Router, h analyticshandlers.Handlers) {
	r.Get("/api/analytics", h.HandleAnalytics)
	r.Get("/api/analytics/chart.png", h.HandleChart)
	r.Get("/api/analytics/export.xlsx", h.HandleExport)
	r.Get("/api/leaderboard", h.HandleLeaderboard)
}
