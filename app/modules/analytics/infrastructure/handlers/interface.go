package analyticshandlers

import (
	"net/http"
	"time"
)

// Handlers defines the analytics HTTP endpoints.
type Handlers interface {
	HandleAnalytics(w http.ResponseWriter, r *http.Request)
	HandleLeaderboard(w http.ResponseWriter, r *http.Request)
	HandleChart(w http.ResponseWriter, r *http.Request)
	HandleExport(w http.ResponseWriter, r *http.Request)
}

// SinceParser turns the since query parameter into an instant.
type SinceParser interface {
	Parse(raw string) (*time.Time, error)
}
