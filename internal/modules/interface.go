package modules

import (
	userhandlers "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// GuardedModule serves HTTP routes, some of them behind the role guard.
type GuardedModule interface {
	Mount(r chi.Router, guard userhandlers.Guard)
}
