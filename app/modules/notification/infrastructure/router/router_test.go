package notificationrouter

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	tournamentdomain "github.com/Black-And-White-Club/anleague/app/modules/tournament/domain"
	userdomain "github.com/Black-And-White-Club/anleague/app/modules/user/domain"
	"github.com/Black-And-White-Club/anleague/internal/eventbus"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

type recordingHandlers struct {
	mu     sync.Mutex
	topics []string
	done   chan struct{}
}

func (h *recordingHandlers) record(topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.topics = append(h.topics, topic)
	if len(h.topics) == 2 {
		close(h.done)
	}
}

func (h *recordingHandlers) HandleMatchSimulated(msg *message.Message) error {
	h.record(tournamentdomain.MatchSimulatedV1)
	return nil
}

func (h *recordingHandlers) HandleTournamentCompleted(msg *message.Message) error {
	h.record(tournamentdomain.TournamentCompletedV1)
	return nil
}

func (h *recordingHandlers) HandleSendSummary(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

type denyGuard struct{}

func (denyGuard) Require(roles ...userdomain.Role) func(http.Handler) http.Handler {
	return func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
	}
}

func TestNotificationRouterDeliversEvents(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := eventbus.NewInMemory(logger)
	defer bus.Close()

	wmRouter, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	require.NoError(t, err)

	handlers := &recordingHandlers{done: make(chan struct{})}
	r := NewNotificationRouter(logger, wmRouter, bus, prometheus.NewRegistry())
	require.NoError(t, r.Configure(context.Background(), handlers))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = wmRouter.Run(ctx) }()
	<-wmRouter.Running()

	require.NoError(t, eventbus.Publish(ctx, bus, tournamentdomain.MatchSimulatedV1, tournamentdomain.MatchSimulatedPayloadV1{}))
	require.NoError(t, eventbus.Publish(ctx, bus, tournamentdomain.TournamentCompletedV1, tournamentdomain.TournamentCompletedPayloadV1{}))

	select {
	case <-handlers.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for events")
	}
	require.NoError(t, r.Close())
}

func TestMountGuardsEmail(t *testing.T) {
	r := chi.NewRouter()
	Mount(r, &recordingHandlers{}, denyGuard{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/admin/email", nil))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}
