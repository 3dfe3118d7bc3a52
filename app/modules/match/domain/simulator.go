package matchdomain

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/Black-And-White-Club/anleague/internal/observability/attr"
	"github.com/Black-And-White-Club/anleague/internal/observability/metrics"
	"github.com/Black-And-White-Club/anleague/internal/random"
	"github.com/google/uuid"
)

const (
	regulationFirstMinute = 1
	regulationLastMinute  = 90
	extraTimeFirstMinute  = 91
	extraTimeLastMinute   = 120
)

// Simulator turns two sides into a full match result.
type Simulator struct {
	rng         random.Source
	assets      AssetResolver
	commentator Commentator
	metrics     metrics.SimulationMetrics
	logger      *slog.Logger
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithAssets resolves goal media through r.
func WithAssets(r AssetResolver) Option {
	return func(s *Simulator) { s.assets = r }
}

// WithCommentator requests commentary from c when enabled per call.
func WithCommentator(c Commentator) Option {
	return func(s *Simulator) { s.commentator = c }
}

// WithMetrics records simulation outcomes on m.
func WithMetrics(m metrics.SimulationMetrics) Option {
	return func(s *Simulator) { s.metrics = m }
}

// WithLogger logs through l instead of slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

// NewSimulator returns a Simulator drawing from rng.
func NewSimulator(rng random.Source, opts ...Option) *Simulator {
	s := &Simulator{
		rng:     rng,
		metrics: metrics.NewNoop(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HasCommentator reports whether an external commentary source is configured.
func (s *Simulator) HasCommentator() bool {
	return s.commentator != nil
}

// Simulate plays home against away. The returned result always names a
// winner and lists scorers by minute.
func (s *Simulator) Simulate(ctx context.Context, home, away Side, enableCommentary bool) (Result, error) {
	if home.ID != uuid.Nil && home.ID == away.ID {
		return Result{}, ErrSameTeam
	}

	mean1, mean2 := ExpectedGoals(home.Rating, away.Rating)
	score1 := PoissonCount(s.rng, mean1)
	score2 := PoissonCount(s.rng, mean2)

	var scorers []ScorerEvent
	var err error
	if scorers, err = s.scoreGoals(scorers, home, score1, regulationFirstMinute, regulationLastMinute); err != nil {
		return Result{}, err
	}
	if scorers, err = s.scoreGoals(scorers, away, score2, regulationFirstMinute, regulationLastMinute); err != nil {
		return Result{}, err
	}

	result := Result{DecidedBy: DecidedInRegulation, Assets: DefaultAssets()}

	if score1 == score2 {
		et1 := PoissonCount(s.rng, extraTimeMean)
		et2 := PoissonCount(s.rng, extraTimeMean)
		score1 += et1
		score2 += et2
		if scorers, err = s.scoreGoals(scorers, home, et1, extraTimeFirstMinute, extraTimeLastMinute); err != nil {
			return Result{}, err
		}
		if scorers, err = s.scoreGoals(scorers, away, et2, extraTimeFirstMinute, extraTimeLastMinute); err != nil {
			return Result{}, err
		}
		result.DecidedBy = DecidedInExtraTime
	}

	switch {
	case score1 > score2:
		result.WinnerID = home.ID
	case score2 > score1:
		result.WinnerID = away.ID
	default:
		shootout := PenaltyShootout(s.rng)
		result.Shootout = &shootout
		result.DecidedBy = DecidedOnPenalties
		result.WinnerID = away.ID
		if shootout.Home > shootout.Away {
			result.WinnerID = home.ID
		}
		result.Commentary = fmt.Sprintf("Penalties %d-%d.", shootout.Home, shootout.Away)
		s.metrics.RecordShootout(ctx, shootout.Kicks)
	}

	slices.SortStableFunc(scorers, func(a, b ScorerEvent) int { return a.Minute - b.Minute })

	result.Score1 = score1
	result.Score2 = score2
	result.Scorers = scorers
	result.Commentary = s.commentary(ctx, home, away, result, enableCommentary)

	s.metrics.RecordMatchSimulated(ctx, string(result.DecidedBy))
	s.metrics.RecordGoals(ctx, score1+score2)

	return result, nil
}

func (s *Simulator) scoreGoals(scorers []ScorerEvent, side Side, goals, firstMinute, lastMinute int) ([]ScorerEvent, error) {
	for range goals {
		player, err := ChooseScorer(s.rng, side.Roster)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", side.Country, err)
		}
		scorers = append(scorers, ScorerEvent{
			TeamCountry: side.Country,
			Player:      player.Name,
			Minute:      random.IntRange(s.rng, firstMinute, lastMinute),
			Media:       s.media(),
		})
	}
	return scorers, nil
}

func (s *Simulator) media() string {
	local := random.Pick(s.rng, KeyMomentMedia)
	if s.assets == nil {
		return local
	}
	return s.assets.ResolveMedia(local)
}

// commentary asks the collaborator first and keeps the shootout fragment on
// failure. Anything still empty is synthesized locally.
func (s *Simulator) commentary(ctx context.Context, home, away Side, result Result, enabled bool) string {
	commentary := result.Commentary
	reason := "disabled"

	if enabled && s.commentator != nil {
		text, err := s.commentator.Commentate(ctx, CommentaryRequest{
			Home:    home.Country,
			Away:    away.Country,
			Score1:  result.Score1,
			Score2:  result.Score2,
			Scorers: result.Scorers,
		})
		if err != nil {
			s.logger.WarnContext(ctx, "Commentary generation failed, using fallback",
				attr.ExtractCorrelationID(ctx),
				attr.String("home", home.Country),
				attr.String("away", away.Country),
				attr.Error(err),
			)
			reason = "error"
		} else {
			commentary = text
			reason = "empty"
		}
	}

	if commentary == "" {
		s.metrics.RecordCommentaryFallback(ctx, reason)
		commentary = FallbackCommentary(home.Country, away.Country, result.Score1, result.Score2, result.Scorers)
	}
	return commentary
}
