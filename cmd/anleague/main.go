package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Black-And-White-Club/anleague/app"
	matchdomain "github.com/Black-And-White-Club/anleague/app/modules/match/domain"
	teamdomain "github.com/Black-And-White-Club/anleague/app/modules/team/domain"
	"github.com/Black-And-White-Club/anleague/config"
	"github.com/Black-And-White-Club/anleague/internal/observability"
	"github.com/Black-And-White-Club/anleague/internal/random"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cliApp := &cli.App{
		Name:  "anleague",
		Usage: "African nations knockout tournament service",
		Commands: []*cli.Command{
			serveCommand(),
			simulateCommand(),
		},
	}

	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API and event handlers",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			obs, err := observability.Init(config.ToObsConfig(cfg))
			if err != nil {
				return fmt.Errorf("failed to initialize observability: %w", err)
			}
			obs.Logger.Info("Starting anleague", "version", config.Version)

			application, err := app.NewApp(c.Context, cfg, obs)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return application.Run(c.Context)
		},
	}
}

// simulateCommand plays one fixture many times between two demo squads so
// the rating model can be inspected without a database.
func simulateCommand() *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "run repeated offline simulations of one fixture",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "rating1", Value: 60, Usage: "home side rating"},
			&cli.Float64Flag{Name: "rating2", Value: 60, Usage: "away side rating"},
			&cli.IntFlag{Name: "runs", Value: 1000, Usage: "number of simulated matches"},
			&cli.Uint64Flag{Name: "seed", Usage: "deterministic seed; zero draws from the global source"},
		},
		Action: func(c *cli.Context) error {
			runs := c.Int("runs")
			if runs <= 0 {
				return fmt.Errorf("runs must be positive, got %d", runs)
			}
			r1, r2 := c.Float64("rating1"), c.Float64("rating2")
			if r1 < 0 || r2 < 0 || r1+r2 == 0 {
				return fmt.Errorf("ratings must be non-negative and not both zero")
			}

			rng := random.Global()
			if seed := c.Uint64("seed"); seed != 0 {
				rng = random.NewSeeded(seed)
			}

			gen := teamdomain.NewGenerator(rng)
			home := syntheticSide(gen, "Home", r1)
			away := syntheticSide(gen, "Away", r2)

			summary, err := matchdomain.RunTrials(c.Context, matchdomain.NewSimulator(rng), home, away, runs)
			if err != nil {
				return err
			}

			out := c.App.Writer
			fmt.Fprintf(out, "%d runs, rating %.2f vs %.2f\n", summary.Runs, r1, r2)
			fmt.Fprintf(out, "home wins:   %d (%.1f%%)\n", summary.HomeWins, 100*summary.HomeWinRate())
			fmt.Fprintf(out, "away wins:   %d (%.1f%%)\n", summary.AwayWins, 100*(1-summary.HomeWinRate()))
			fmt.Fprintf(out, "level at 90: %d\n", summary.ExtraTime+summary.Penalties)
			fmt.Fprintf(out, "extra time:  %d\n", summary.ExtraTime)
			fmt.Fprintf(out, "penalties:   %d\n", summary.Penalties)
			fmt.Fprintf(out, "avg goals:   %.2f\n", summary.AvgGoals)
			return nil
		},
	}
}

func syntheticSide(gen *teamdomain.Generator, country string, rating float64) matchdomain.Side {
	return matchdomain.Side{
		ID:      uuid.New(),
		Country: country,
		Rating:  rating,
		Roster:  gen.AutofillRoster(),
	}
}
