package analyticshandlers

import (
	"context"
	"time"

	analyticsservice "github.com/Black-And-White-Club/anleague/app/modules/analytics/application"
	analyticsdomain "github.com/Black-And-White-Club/anleague/app/modules/analytics/domain"
)

type FakeService struct {
	trace []string

	ReportFunc         func(ctx context.Context, since *time.Time) (*analyticsservice.Report, error)
	LeaderboardFunc    func(ctx context.Context, limit int) ([]analyticsdomain.ScorerTally, error)
	GoalsChartFunc     func(ctx context.Context) ([]byte, error)
	ExportWorkbookFunc func(ctx context.Context) ([]byte, error)
}

func (f *FakeService) Trace() []string { return f.trace }

func (f *FakeService) Report(ctx context.Context, since *time.Time) (*analyticsservice.Report, error) {
	f.trace = append(f.trace, "Report")
	if f.ReportFunc != nil {
		return f.ReportFunc(ctx, since)
	}
	return &analyticsservice.Report{}, nil
}

func (f *FakeService) Leaderboard(ctx context.Context, limit int) ([]analyticsdomain.ScorerTally, error) {
	f.trace = append(f.trace, "Leaderboard")
	if f.LeaderboardFunc != nil {
		return f.LeaderboardFunc(ctx, limit)
	}
	return []analyticsdomain.ScorerTally{}, nil
}

func (f *FakeService) GoalsChart(ctx context.Context) ([]byte, error) {
	f.trace = append(f.trace, "GoalsChart")
	if f.GoalsChartFunc != nil {
		return f.GoalsChartFunc(ctx)
	}
	return []byte("png"), nil
}

func (f *FakeService) ExportWorkbook(ctx context.Context) ([]byte, error) {
	f.trace = append(f.trace, "ExportWorkbook")
	if f.ExportWorkbookFunc != nil {
		return f.ExportWorkbookFunc(ctx)
	}
	return []byte("xlsx"), nil
}

var _ analyticsservice.Service = (*FakeService)(nil)
