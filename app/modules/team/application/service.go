package teamservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	teamdomain "github.com/Black-And-White-Club/anleague/app/modules/team/domain"
	teamdb "github.com/Black-And-White-Club/anleague/app/modules/team/infrastructure/repositories"
	userdomain "github.com/Black-And-White-Club/anleague/app/modules/user/domain"
	userdb "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/anleague/internal/observability/attr"
	"github.com/Black-And-White-Club/anleague/internal/observability/metrics"
	"github.com/Black-And-White-Club/anleague/internal/operation"
	"github.com/Black-And-White-Club/anleague/internal/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "TeamService"

// DemoSeedCount is the number of demo teams the admin seed action inserts.
const DemoSeedCount = 7

// TeamService implements the Service interface.
type TeamService struct {
	teams     teamdb.Repository
	users     userdb.Repository
	generator *teamdomain.Generator
	now       func() time.Time
	logger    *slog.Logger
	telemetry operation.Telemetry
	db        *bun.DB
}

// NewTeamService creates a new TeamService.
func NewTeamService(
	teams teamdb.Repository,
	users userdb.Repository,
	generator *teamdomain.Generator,
	logger *slog.Logger,
	m metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *TeamService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TeamService{
		teams:     teams,
		users:     users,
		generator: generator,
		now:       time.Now,
		logger:    logger,
		telemetry: operation.Telemetry{
			Service: serviceName,
			Logger:  logger,
			Metrics: m,
			Tracer:  tracer,
		},
		db: db,
	}
}

// RegisterTeam validates the registration, builds the roster and stores the
// team together with its representative account. The representative email
// is checked before anything is written.
func (s *TeamService) RegisterTeam(ctx context.Context, req RegisterTeamRequest) (*teamdomain.Team, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "RegisterTeam", req.Country, func(ctx context.Context) (results.OperationResult[*teamdomain.Team, error], error) {
		return operation.InTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (results.OperationResult[*teamdomain.Team, error], error) {
			return s.registerTeamLogic(ctx, db, req)
		})
	}))
}

func (s *TeamService) registerTeamLogic(ctx context.Context, db bun.IDB, req RegisterTeamRequest) (results.OperationResult[*teamdomain.Team, error], error) {
	req.RepEmail = strings.TrimSpace(req.RepEmail)
	if req.RepPassword == "" {
		return results.FailureResult[*teamdomain.Team](ErrMissingPassword), nil
	}

	var roster []teamdomain.Player
	if req.Autofill {
		roster = s.generator.AutofillRoster()
	} else {
		for i, p := range req.Players {
			if strings.TrimSpace(p.Name) == "" || !p.Position.IsValid() {
				return results.FailureResult[*teamdomain.Team](fmt.Errorf("%w: player %d", teamdomain.ErrInvalidRoster, i)), nil
			}
		}
		roster = s.generator.BuildRoster(req.Players)
	}

	team, err := teamdomain.NewTeam(req.Country, req.RepName, req.RepEmail, req.Manager, roster, req.CaptainIndex, s.now())
	if err != nil {
		return results.FailureResult[*teamdomain.Team](err), nil
	}

	exists, err := s.users.ExistsByUsername(ctx, db, team.RepEmail)
	if err != nil {
		return results.OperationResult[*teamdomain.Team, error]{}, fmt.Errorf("failed to check representative: %w", err)
	}
	if exists {
		return results.FailureResult[*teamdomain.Team](ErrRepresentativeExists), nil
	}

	hash, err := userdomain.HashPassword(req.RepPassword)
	if err != nil {
		return results.OperationResult[*teamdomain.Team, error]{}, err
	}

	row := teamdb.FromDomain(team)
	if err := s.teams.Insert(ctx, db, row); err != nil {
		return results.OperationResult[*teamdomain.Team, error]{}, err
	}
	if err := s.users.Insert(ctx, db, &userdb.User{
		Username:     team.RepEmail,
		PasswordHash: hash,
		Role:         userdomain.RoleRep,
		TeamID:       &row.ID,
	}); err != nil {
		// Returned as an error so the team insert rolls back with it.
		if errors.Is(err, userdb.ErrDuplicateUsername) {
			return results.OperationResult[*teamdomain.Team, error]{}, ErrRepresentativeExists
		}
		return results.OperationResult[*teamdomain.Team, error]{}, err
	}

	out := row.ToDomain()
	s.logger.InfoContext(ctx, "Team registered",
		attr.ExtractCorrelationID(ctx),
		attr.TeamID(out.ID),
		attr.String("country", out.Country),
		attr.Float64("rating", out.Rating),
	)
	return results.SuccessResult[*teamdomain.Team, error](&out), nil
}

// SeedDemoTeams inserts n generated teams.
func (s *TeamService) SeedDemoTeams(ctx context.Context, n int) ([]teamdomain.Team, error) {
	if n <= 0 {
		n = DemoSeedCount
	}
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "SeedDemoTeams", fmt.Sprint(n), func(ctx context.Context) (results.OperationResult[[]teamdomain.Team, error], error) {
		return operation.InTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (results.OperationResult[[]teamdomain.Team, error], error) {
			seeded := make([]teamdomain.Team, 0, n)
			for i := 0; i < n; i++ {
				team, err := s.insertDemoTeam(ctx, db)
				if err != nil {
					return results.OperationResult[[]teamdomain.Team, error]{}, err
				}
				seeded = append(seeded, team)
			}
			return results.SuccessResult[[]teamdomain.Team, error](seeded), nil
		})
	}))
}

// AddDemoTeam inserts a single generated team.
func (s *TeamService) AddDemoTeam(ctx context.Context) (*teamdomain.Team, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "AddDemoTeam", "", func(ctx context.Context) (results.OperationResult[*teamdomain.Team, error], error) {
		team, err := s.insertDemoTeam(ctx, nil)
		if err != nil {
			return results.OperationResult[*teamdomain.Team, error]{}, err
		}
		return results.SuccessResult[*teamdomain.Team, error](&team), nil
	}))
}

func (s *TeamService) insertDemoTeam(ctx context.Context, db bun.IDB) (teamdomain.Team, error) {
	team, err := s.generator.DemoTeam("")
	if err != nil {
		return teamdomain.Team{}, err
	}
	row := teamdb.FromDomain(team)
	if err := s.teams.Insert(ctx, db, row); err != nil {
		return teamdomain.Team{}, err
	}
	return row.ToDomain(), nil
}

// RemoveTeam deletes a team and any account bound to it. Existing matches
// keep their denormalized country names.
func (s *TeamService) RemoveTeam(ctx context.Context, id uuid.UUID) error {
	_, err := operation.Unwrap(operation.Run(ctx, s.telemetry, "RemoveTeam", id.String(), func(ctx context.Context) (results.OperationResult[struct{}, error], error) {
		return operation.InTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
			if res, err := s.deleteTeam(ctx, db, id); err != nil || res.IsFailure() {
				return res, err
			}
			return results.SuccessResult[struct{}, error](struct{}{}), nil
		})
	}))
	return err
}

// ReplaceTeam deletes a team and inserts a generated one in its place.
func (s *TeamService) ReplaceTeam(ctx context.Context, id uuid.UUID) (*teamdomain.Team, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "ReplaceTeam", id.String(), func(ctx context.Context) (results.OperationResult[*teamdomain.Team, error], error) {
		return operation.InTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (results.OperationResult[*teamdomain.Team, error], error) {
			res, err := s.deleteTeam(ctx, db, id)
			if err != nil {
				return results.OperationResult[*teamdomain.Team, error]{}, err
			}
			if res.IsFailure() {
				return results.FailureResult[*teamdomain.Team](*res.Failure), nil
			}
			team, err := s.insertDemoTeam(ctx, db)
			if err != nil {
				return results.OperationResult[*teamdomain.Team, error]{}, err
			}
			return results.SuccessResult[*teamdomain.Team, error](&team), nil
		})
	}))
}

func (s *TeamService) deleteTeam(ctx context.Context, db bun.IDB, id uuid.UUID) (results.OperationResult[struct{}, error], error) {
	if err := s.teams.Delete(ctx, db, id); err != nil {
		if errors.Is(err, teamdb.ErrNotFound) {
			return results.FailureResult[struct{}](ErrTeamNotFound), nil
		}
		return results.OperationResult[struct{}, error]{}, err
	}
	if err := s.users.DeleteByTeamID(ctx, db, id); err != nil {
		return results.OperationResult[struct{}, error]{}, err
	}
	return results.OperationResult[struct{}, error]{}, nil
}

// ListTeams returns every team in the requested order.
func (s *TeamService) ListTeams(ctx context.Context, order ListOrder) ([]teamdomain.Team, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "ListTeams", string(order), func(ctx context.Context) (results.OperationResult[[]teamdomain.Team, error], error) {
		var (
			rows []*teamdb.Team
			err  error
		)
		if order == OrderByRating {
			rows, err = s.teams.ListByRating(ctx, nil)
		} else {
			rows, err = s.teams.ListByCreation(ctx, nil, 0)
		}
		if err != nil {
			return results.OperationResult[[]teamdomain.Team, error]{}, err
		}
		out := make([]teamdomain.Team, len(rows))
		for i, r := range rows {
			out[i] = r.ToDomain()
		}
		return results.SuccessResult[[]teamdomain.Team, error](out), nil
	}))
}

// GetTeam returns a single team.
func (s *TeamService) GetTeam(ctx context.Context, id uuid.UUID) (*teamdomain.Team, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "GetTeam", id.String(), func(ctx context.Context) (results.OperationResult[*teamdomain.Team, error], error) {
		row, err := s.teams.GetByID(ctx, nil, id)
		if err != nil {
			if errors.Is(err, teamdb.ErrNotFound) {
				return results.FailureResult[*teamdomain.Team](ErrTeamNotFound), nil
			}
			return results.OperationResult[*teamdomain.Team, error]{}, err
		}
		team := row.ToDomain()
		return results.SuccessResult[*teamdomain.Team, error](&team), nil
	}))
}

// CreateRepUsers creates a representative account with password for every
// team whose email is not yet a username, returning the created usernames.
func (s *TeamService) CreateRepUsers(ctx context.Context, password string) ([]string, error) {
	if password == "" {
		password = userdomain.DefaultRepPassword
	}
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "CreateRepUsers", "", func(ctx context.Context) (results.OperationResult[[]string, error], error) {
		return operation.InTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (results.OperationResult[[]string, error], error) {
			rows, err := s.teams.ListByCreation(ctx, db, 0)
			if err != nil {
				return results.OperationResult[[]string, error]{}, err
			}

			hash, err := userdomain.HashPassword(password)
			if err != nil {
				return results.OperationResult[[]string, error]{}, err
			}

			created := []string{}
			for _, t := range rows {
				email := strings.TrimSpace(t.RepEmail)
				if email == "" {
					continue
				}
				exists, err := s.users.ExistsByUsername(ctx, db, email)
				if err != nil {
					return results.OperationResult[[]string, error]{}, err
				}
				if exists {
					continue
				}
				teamID := t.ID
				if err := s.users.Insert(ctx, db, &userdb.User{
					Username:     email,
					PasswordHash: hash,
					Role:         userdomain.RoleRep,
					TeamID:       &teamID,
				}); err != nil {
					return results.OperationResult[[]string, error]{}, err
				}
				created = append(created, email)
			}
			return results.SuccessResult[[]string, error](created), nil
		})
	}))
}
