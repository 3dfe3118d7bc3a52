package userhandlers

import (
	"net/http"

	userdomain "github.com/Black-And-White-Club/anleague/app/modules/user/domain"
)

// Handlers serves the user HTTP endpoints.
type Handlers interface {
	HandleAdminLogin(w http.ResponseWriter, r *http.Request)
	HandleRepLogin(w http.ResponseWriter, r *http.Request)
}

// Guard builds middleware restricting a route to roles.
type Guard interface {
	Require(roles ...userdomain.Role) func(http.Handler) http.Handler
}
