package teamhandlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	teamservice "github.com/Black-And-White-Club/anleague/app/modules/team/application"
	teamdomain "github.com/Black-And-White-Club/anleague/app/modules/team/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestRouter(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/teams", h.HandleListTeams)
	r.Get("/api/teams/{id}", h.HandleGetTeam)
	r.Post("/api/teams", h.HandleRegisterTeam)
	r.Post("/api/admin/seed", h.HandleSeedDemoTeams)
	r.Post("/api/admin/teams/eighth", h.HandleAddDemoTeam)
	r.Post("/api/admin/rep-users", h.HandleCreateRepUsers)
	r.Delete("/api/admin/teams/{id}", h.HandleRemoveTeam)
	r.Post("/api/admin/teams/{id}/replace", h.HandleReplaceTeam)
	return r
}

func TestTeamHandlers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	teamID := uuid.New()

	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		setupService func(*FakeService)
		wantStatus   int
		verify       func(t *testing.T, rr *httptest.ResponseRecorder)
	}{
		{
			name:   "list by rating",
			method: http.MethodGet,
			path:   "/api/teams?order=rating",
			setupService: func(s *FakeService) {
				s.ListTeamsFunc = func(ctx context.Context, order teamservice.ListOrder) ([]teamdomain.Team, error) {
					if order != teamservice.OrderByRating {
						t.Errorf("expected rating order, got %q", order)
					}
					return []teamdomain.Team{{Country: "Ghana"}, {Country: "Mali"}}, nil
				}
			},
			wantStatus: http.StatusOK,
			verify: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var teams []teamdomain.Team
				if err := json.NewDecoder(rr.Body).Decode(&teams); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if len(teams) != 2 || teams[0].Country != "Ghana" {
					t.Errorf("unexpected teams: %+v", teams)
				}
			},
		},
		{
			name:   "list defaults to creation order",
			method: http.MethodGet,
			path:   "/api/teams?order=bogus",
			setupService: func(s *FakeService) {
				s.ListTeamsFunc = func(ctx context.Context, order teamservice.ListOrder) ([]teamdomain.Team, error) {
					if order != teamservice.OrderByCreation {
						t.Errorf("expected creation order, got %q", order)
					}
					return nil, nil
				}
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "get invalid id",
			method:     http.MethodGet,
			path:       "/api/teams/not-a-uuid",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "get not found",
			method:     http.MethodGet,
			path:       "/api/teams/" + teamID.String(),
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "register created",
			method: http.MethodPost,
			path:   "/api/teams",
			body:   `{"country":"Ghana","rep_email":"kofi@example.com","rep_password":"pw","autofill":true,"captain_index":2}`,
			setupService: func(s *FakeService) {
				s.RegisterTeamFunc = func(ctx context.Context, req teamservice.RegisterTeamRequest) (*teamdomain.Team, error) {
					if !req.Autofill || req.CaptainIndex != 2 {
						t.Errorf("request not decoded: %+v", req)
					}
					return &teamdomain.Team{ID: teamID, Country: req.Country}, nil
				}
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "register manual roster decodes positions",
			method: http.MethodPost,
			path:   "/api/teams",
			body:   `{"country":"Mali","rep_email":"r@x.io","rep_password":"pw","players":[{"name":"A","position":"GK"}]}`,
			setupService: func(s *FakeService) {
				s.RegisterTeamFunc = func(ctx context.Context, req teamservice.RegisterTeamRequest) (*teamdomain.Team, error) {
					if len(req.Players) != 1 || req.Players[0].Position != teamdomain.Goalkeeper {
						t.Errorf("players not decoded: %+v", req.Players)
					}
					return nil, teamdomain.ErrInvalidRoster
				}
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "register unknown field",
			method:     http.MethodPost,
			path:       "/api/teams",
			body:       `{"country":"Ghana","nickname":"Black Stars"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "register duplicate representative",
			method: http.MethodPost,
			path:   "/api/teams",
			body:   `{"country":"Ghana","rep_email":"kofi@example.com","rep_password":"pw","autofill":true}`,
			setupService: func(s *FakeService) {
				s.RegisterTeamFunc = func(ctx context.Context, req teamservice.RegisterTeamRequest) (*teamdomain.Team, error) {
					return nil, errors.Join(errors.New("RegisterTeam"), teamservice.ErrRepresentativeExists)
				}
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "seed default count",
			method: http.MethodPost,
			path:   "/api/admin/seed",
			setupService: func(s *FakeService) {
				s.SeedDemoTeamsFunc = func(ctx context.Context, n int) ([]teamdomain.Team, error) {
					if n != teamservice.DemoSeedCount {
						t.Errorf("expected %d, got %d", teamservice.DemoSeedCount, n)
					}
					return make([]teamdomain.Team, n), nil
				}
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "seed invalid count",
			method:     http.MethodPost,
			path:       "/api/admin/seed?count=-2",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "add eighth team",
			method:     http.MethodPost,
			path:       "/api/admin/teams/eighth",
			wantStatus: http.StatusCreated,
		},
		{
			name:   "rep users with password",
			method: http.MethodPost,
			path:   "/api/admin/rep-users",
			body:   `{"password":"changeme"}`,
			setupService: func(s *FakeService) {
				s.CreateRepUsersFunc = func(ctx context.Context, password string) ([]string, error) {
					if password != "changeme" {
						t.Errorf("expected password override, got %q", password)
					}
					return []string{"a@example.com"}, nil
				}
			},
			wantStatus: http.StatusOK,
			verify: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var resp RepUsersResponse
				if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if len(resp.Created) != 1 {
					t.Errorf("expected one created account, got %v", resp.Created)
				}
			},
		},
		{
			name:   "rep users without body",
			method: http.MethodPost,
			path:   "/api/admin/rep-users",
			setupService: func(s *FakeService) {
				s.CreateRepUsersFunc = func(ctx context.Context, password string) ([]string, error) {
					if password != "" {
						t.Errorf("expected empty password, got %q", password)
					}
					return nil, nil
				}
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "remove team",
			method:     http.MethodDelete,
			path:       "/api/admin/teams/" + teamID.String(),
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "replace missing team",
			method: http.MethodPost,
			path:   "/api/admin/teams/" + teamID.String() + "/replace",
			setupService: func(s *FakeService) {
				s.ReplaceTeamFunc = func(ctx context.Context, id uuid.UUID) (*teamdomain.Team, error) {
					if id != teamID {
						t.Errorf("expected %s, got %s", teamID, id)
					}
					return nil, teamservice.ErrTeamNotFound
				}
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "service error",
			method: http.MethodDelete,
			path:   "/api/admin/teams/" + teamID.String(),
			setupService: func(s *FakeService) {
				s.RemoveTeamFunc = func(ctx context.Context, id uuid.UUID) error { return errors.New("db down") }
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &FakeService{}
			if tt.setupService != nil {
				tt.setupService(svc)
			}
			router := newTestRouter(NewTeamHandlers(svc, logger, tracer))

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rr.Code, rr.Body.String())
			}
			if tt.verify != nil {
				tt.verify(t, rr)
			}
		})
	}
}
