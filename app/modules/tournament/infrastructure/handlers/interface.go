package tournamenthandlers

import (
	"net/http"
	"time"
)

// Handlers serves the tournament HTTP endpoints.
type Handlers interface {
	HandleBracket(w http.ResponseWriter, r *http.Request)
	HandleGetMatch(w http.ResponseWriter, r *http.Request)
	HandleHistory(w http.ResponseWriter, r *http.Request)
	HandleStatus(w http.ResponseWriter, r *http.Request)
	HandleRepDashboard(w http.ResponseWriter, r *http.Request)

	HandleAdminDashboard(w http.ResponseWriter, r *http.Request)
	HandleStart(w http.ResponseWriter, r *http.Request)
	HandleSimulateAll(w http.ResponseWriter, r *http.Request)
	HandleSimulateMatch(w http.ResponseWriter, r *http.Request)
	HandleReset(w http.ResponseWriter, r *http.Request)
}

// SinceParser turns the since query parameter into a lower bound.
type SinceParser interface {
	Parse(raw string) (*time.Time, error)
}
