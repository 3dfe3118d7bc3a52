package modules

import (
	"context"
	"fmt"

	"github.com/Black-And-White-Club/anleague/app/modules/analytics"
	"github.com/Black-And-White-Club/anleague/app/modules/match/infrastructure/commentary"
	"github.com/Black-And-White-Club/anleague/app/modules/notification"
	"github.com/Black-And-White-Club/anleague/app/modules/notification/infrastructure/mailer"
	"github.com/Black-And-White-Club/anleague/app/modules/team"
	"github.com/Black-And-White-Club/anleague/app/modules/tournament"
	"github.com/Black-And-White-Club/anleague/app/modules/user"
	"github.com/Black-And-White-Club/anleague/config"
	"github.com/Black-And-White-Club/anleague/internal/eventbus"
	"github.com/Black-And-White-Club/anleague/internal/observability"
	"github.com/Black-And-White-Club/anleague/internal/random"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Deps are the shared handles every module is built from.
type Deps struct {
	Config *config.Config
	Obs    *observability.Observability
	DB     *bun.DB
	Bus    eventbus.EventBus
	Router *message.Router
	RNG    random.Source
}

// ModuleRegistry stores and manages application modules.
type ModuleRegistry struct {
	User         *user.Module
	Team         *team.Module
	Tournament   *tournament.Module
	Analytics    *analytics.Module
	Notification *notification.Module
}

// NewModuleRegistry builds every module in dependency order.
func NewModuleRegistry(ctx context.Context, d Deps) (*ModuleRegistry, error) {
	cfg := d.Config

	userModule := user.NewUserModule(ctx, d.Obs, user.Config{
		JWTSecret:      cfg.JWT.Secret,
		TokenTTL:       cfg.JWT.DefaultTTL,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	}, d.DB)

	teamModule := team.NewTeamModule(ctx, d.Obs, d.DB, userModule.Repo, d.RNG)

	tournamentModule := tournament.NewTournamentModule(ctx, d.Obs, tournament.Config{
		AssetsRoot: cfg.Assets.RootDir,
		Commentary: commentary.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
			Timeout: cfg.OpenAI.Timeout,
		},
	}, d.DB, teamModule.Repo, d.Bus, d.RNG)

	analyticsModule := analytics.NewAnalyticsModule(ctx, d.Obs, teamModule.Repo, tournamentModule.Repo)

	notificationModule, err := notification.NewNotificationModule(ctx, d.Obs, notification.Config{
		SMTP: mailer.SMTPConfig{
			Host: cfg.SMTP.Host,
			Port: cfg.SMTP.Port,
			User: cfg.SMTP.User,
			Pass: cfg.SMTP.Pass,
			From: cfg.SMTP.From,
		},
		Enabled:        cfg.SMTP.Enabled(),
		WithCommentary: cfg.OpenAI.APIKey != "",
	}, teamModule.Repo, tournamentModule.Repo, d.Router, d.Bus)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize notification module: %w", err)
	}

	return &ModuleRegistry{
		User:         userModule,
		Team:         teamModule,
		Tournament:   tournamentModule,
		Analytics:    analyticsModule,
		Notification: notificationModule,
	}, nil
}

// Mount registers every module's routes on r.
func (m *ModuleRegistry) Mount(r chi.Router) {
	m.User.Mount(r)
	m.Analytics.Mount(r)
	for _, gm := range []GuardedModule{m.Team, m.Tournament, m.Notification} {
		gm.Mount(r, m.User.Guard)
	}
}
