package teamhandlers

import "net/http"

// Handlers serves the team HTTP endpoints.
type Handlers interface {
	HandleListTeams(w http.ResponseWriter, r *http.Request)
	HandleGetTeam(w http.ResponseWriter, r *http.Request)
	HandleRegisterTeam(w http.ResponseWriter, r *http.Request)

	HandleSeedDemoTeams(w http.ResponseWriter, r *http.Request)
	HandleAddDemoTeam(w http.ResponseWriter, r *http.Request)
	HandleCreateRepUsers(w http.ResponseWriter, r *http.Request)
	HandleRemoveTeam(w http.ResponseWriter, r *http.Request)
	HandleReplaceTeam(w http.ResponseWriter, r *http.Request)
}
