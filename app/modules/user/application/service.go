package userservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	userdomain "github.com/Black-And-White-Club/anleague/app/modules/user/domain"
	userjwt "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/jwt"
	userdb "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/anleague/internal/observability/attr"
	"github.com/Black-And-White-Club/anleague/internal/observability/metrics"
	"github.com/Black-And-White-Club/anleague/internal/operation"
	"github.com/Black-And-White-Club/anleague/internal/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "UserService"

// DefaultTokenTTL applies when no TTL is configured.
const DefaultTokenTTL = 12 * time.Hour

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Username  string          `json:"username"`
	Role      userdomain.Role `json:"role"`
	TeamID    *uuid.UUID      `json:"team_id,omitempty"`
}

// UserService implements the Service interface.
type UserService struct {
	repo      userdb.Repository
	jwt       userjwt.Provider
	tokenTTL  time.Duration
	logger    *slog.Logger
	telemetry operation.Telemetry
	db        *bun.DB
}

// NewUserService creates a new UserService.
func NewUserService(
	repo userdb.Repository,
	jwtProvider userjwt.Provider,
	tokenTTL time.Duration,
	logger *slog.Logger,
	m metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &UserService{
		repo:     repo,
		jwt:      jwtProvider,
		tokenTTL: tokenTTL,
		logger:   logger,
		telemetry: operation.Telemetry{
			Service: serviceName,
			Logger:  logger,
			Metrics: m,
			Tracer:  tracer,
		},
		db: db,
	}
}

// Login verifies the credentials. A rep cannot sign in through the admin
// role and vice versa; both mismatches report ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string, role userdomain.Role) (*LoginResponse, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "Login", username, func(ctx context.Context) (results.OperationResult[*LoginResponse, error], error) {
		return s.loginLogic(ctx, username, password, role)
	}))
}

func (s *UserService) loginLogic(ctx context.Context, username, password string, role userdomain.Role) (results.OperationResult[*LoginResponse, error], error) {
	if !role.IsValid() {
		return results.FailureResult[*LoginResponse](ErrInvalidRole), nil
	}

	user, err := s.repo.GetByUsername(ctx, nil, username)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[*LoginResponse](ErrInvalidCredentials), nil
		}
		return results.OperationResult[*LoginResponse, error]{}, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Role != role || !userdomain.CheckPassword(user.PasswordHash, password) {
		return results.FailureResult[*LoginResponse](ErrInvalidCredentials), nil
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	token, err := s.jwt.GenerateToken(&userdomain.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		TeamID:   user.TeamID,
	}, s.tokenTTL)
	if err != nil {
		return results.OperationResult[*LoginResponse, error]{}, err
	}

	return results.SuccessResult[*LoginResponse, error](&LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  user.Username,
		Role:      user.Role,
		TeamID:    user.TeamID,
	}), nil
}

// EnsureAdmin reports whether an account was created.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "EnsureAdmin", username, func(ctx context.Context) (results.OperationResult[bool, error], error) {
		return operation.InTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (results.OperationResult[bool, error], error) {
			exists, err := s.repo.ExistsByUsername(ctx, db, username)
			if err != nil {
				return results.OperationResult[bool, error]{}, err
			}
			if exists {
				return results.SuccessResult[bool, error](false), nil
			}

			hash, err := userdomain.HashPassword(password)
			if err != nil {
				return results.OperationResult[bool, error]{}, err
			}
			if err := s.repo.Insert(ctx, db, &userdb.User{
				Username:     username,
				PasswordHash: hash,
				Role:         userdomain.RoleAdmin,
			}); err != nil {
				if errors.Is(err, userdb.ErrDuplicateUsername) {
					return results.SuccessResult[bool, error](false), nil
				}
				return results.OperationResult[bool, error]{}, err
			}

			s.logger.InfoContext(ctx, "Administrator account created", attr.String("username", username))
			return results.SuccessResult[bool, error](true), nil
		})
	}))
}

// Authenticate does not touch the database.
func (s *UserService) Authenticate(_ context.Context, token string) (*userdomain.Claims, error) {
	return s.jwt.ValidateToken(token)
}
