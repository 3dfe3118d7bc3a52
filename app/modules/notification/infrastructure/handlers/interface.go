package notificationhandlers

import (
	"net/http"

	"github.com/ThreeDotsLabs/watermill/message"
)

// Handlers consumes tournament events and serves the admin email action.
type Handlers interface {
	HandleMatchSimulated(msg *message.Message) error
	HandleTournamentCompleted(msg *message.Message) error
	HandleSendSummary(w http.ResponseWriter, r *http.Request)
}
