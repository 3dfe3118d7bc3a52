package notificationhandlers

import (
	"context"

	notificationservice "github.com/Black-And-White-Club/anleague/app/modules/notification/application"
	tournamentdomain "github.com/Black-And-White-Club/anleague/app/modules/tournament/domain"
)

type FakeService struct {
	trace []string

	NotifyMatchSimulatedFunc      func(ctx context.Context, p *tournamentdomain.MatchSimulatedPayloadV1) error
	NotifyTournamentCompletedFunc func(ctx context.Context, p *tournamentdomain.TournamentCompletedPayloadV1) error
	SendTournamentSummaryFunc     func(ctx context.Context) error
}

func (f *FakeService) Trace() []string { return f.trace }

func (f *FakeService) NotifyMatchSimulated(ctx context.Context, p *tournamentdomain.MatchSimulatedPayloadV1) error {
	f.trace = append(f.trace, "NotifyMatchSimulated")
	if f.NotifyMatchSimulatedFunc != nil {
		return f.NotifyMatchSimulatedFunc(ctx, p)
	}
	return nil
}

func (f *FakeService) NotifyTournamentCompleted(ctx context.Context, p *tournamentdomain.TournamentCompletedPayloadV1) error {
	f.trace = append(f.trace, "NotifyTournamentCompleted")
	if f.NotifyTournamentCompletedFunc != nil {
		return f.NotifyTournamentCompletedFunc(ctx, p)
	}
	return nil
}

func (f *FakeService) SendTournamentSummary(ctx context.Context) error {
	f.trace = append(f.trace, "SendTournamentSummary")
	if f.SendTournamentSummaryFunc != nil {
		return f.SendTournamentSummaryFunc(ctx)
	}
	return nil
}

var _ notificationservice.Service = (*FakeService)(nil)
