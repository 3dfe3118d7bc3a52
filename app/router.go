package app

import (
	"net/http"
	"path/filepath"

	"github.com/Black-And-White-Club/anleague/internal/httpx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router builds the HTTP handler: module APIs, health, metrics and the
// static celebration media.
func (app *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(httpx.CorrelationID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", app.handleHealth)
	r.Handle("/metrics", app.Obs.MetricsHandler())

	static := filepath.Join(app.Config.Assets.RootDir, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(static))))

	app.Modules.Mount(r)
	return r
}

func (app *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := app.DB.PingContext(r.Context()); err != nil {
		httpx.WriteError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
