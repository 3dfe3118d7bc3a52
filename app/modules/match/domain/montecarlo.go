package matchdomain

import (
	"context"
	"fmt"
)

// TrialSummary aggregates repeated simulations of the same fixture.
type TrialSummary struct {
	Runs      int     `json:"runs"`
	HomeWins  int     `json:"home_wins"`
	AwayWins  int     `json:"away_wins"`
	ExtraTime int     `json:"extra_time"`
	Penalties int     `json:"penalties"`
	AvgGoals  float64 `json:"avg_goals"`
}

// HomeWinRate is the share of trials won by the home side.
func (t TrialSummary) HomeWinRate() float64 {
	if t.Runs == 0 {
		return 0
	}
	return float64(t.HomeWins) / float64(t.Runs)
}

// RunTrials simulates home against away runs times without commentary.
func RunTrials(ctx context.Context, sim *Simulator, home, away Side, runs int) (TrialSummary, error) {
	summary := TrialSummary{Runs: runs}
	goals := 0
	for i := range runs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		res, err := sim.Simulate(ctx, home, away, false)
		if err != nil {
			return summary, fmt.Errorf("trial %d: %w", i, err)
		}
		if res.WinnerID == home.ID {
			summary.HomeWins++
		} else {
			summary.AwayWins++
		}
		switch res.DecidedBy {
		case DecidedInExtraTime:
			summary.ExtraTime++
		case DecidedOnPenalties:
			summary.Penalties++
		}
		goals += res.Score1 + res.Score2
	}
	if runs > 0 {
		summary.AvgGoals = float64(goals) / float64(runs)
	}
	return summary, nil
}
