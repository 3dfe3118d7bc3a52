package analyticsservice

import (
	"context"
	"time"

	analyticsdomain "github.com/Black-And-White-Club/anleague/app/modules/analytics/domain"
	"github.com/google/uuid"
)

// TeamSummary is one team's row in the analytics report.
type TeamSummary struct {
	ID      uuid.UUID                 `json:"id"`
	Country string                    `json:"country"`
	Rating  float64                   `json:"rating"`
	Stats   analyticsdomain.TeamStats `json:"stats"`
}

// Report is the analytics view over played matches.
type Report struct {
	Teams      []TeamSummary                 `json:"teams"`
	TopScorers []analyticsdomain.ScorerTally `json:"top_scorers"`
}

// Service defines the analytics application operations.
type Service interface {
	// Report aggregates matches played at or after since. A nil since
	// covers the full history.
	Report(ctx context.Context, since *time.Time) (*Report, error)
	Leaderboard(ctx context.Context, limit int) ([]analyticsdomain.ScorerTally, error)
	GoalsChart(ctx context.Context) ([]byte, error)
	ExportWorkbook(ctx context.Context) ([]byte, error)
}
