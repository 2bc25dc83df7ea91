// Package simulate plays many independent all-bot games and tallies how often
// each hand category is dealt and how often it wins.
package simulate

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
)

// Options configures a simulation run.
type Options struct {
	Games       int
	Players     int
	Workers     int // 0 uses GOMAXPROCS
	Seed        int64
	MaxDiscards int
	Logger      *log.Logger
	Clock       quartz.Clock
}

func (o *Options) normalize() error {
	if o.Games <= 0 {
		return fmt.Errorf("simulate: games must be positive, got %d", o.Games)
	}
	if o.Players < game.MinPlayers || o.Players > game.MaxPlayers {
		return fmt.Errorf("simulate: players must be between %d and %d, got %d", game.MinPlayers, game.MaxPlayers, o.Players)
	}
	if o.MaxDiscards < 0 || o.MaxDiscards > poker.HandSize {
		return fmt.Errorf("simulate: max discards must be between 0 and %d, got %d", poker.HandSize, o.MaxDiscards)
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Workers > o.Games {
		o.Workers = o.Games
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Clock == nil {
		o.Clock = quartz.NewReal()
	}
	o.Seed = randutil.Resolve(o.Seed)
	return nil
}

// Run plays opts.Games games split across opts.Workers goroutines. Game i is
// always shuffled from randutil.Derive(seed, i), so a report depends only on
// the seed and not on the worker count.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}

	opts.Logger.Info("Starting simulation", "games", opts.Games, "players", opts.Players, "workers", opts.Workers, "seed", opts.Seed)
	started := opts.Clock.Now()

	g, ctx := errgroup.WithContext(ctx)
	partials := make([]*Report, opts.Workers)

	for w := range opts.Workers {
		partials[w] = newReport(opts.Players)
		g.Go(func() error {
			for i := w; i < opts.Games; i += opts.Workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := playOne(ctx, opts, i, partials[w]); err != nil {
					return fmt.Errorf("simulate: game %d: %w", i, err)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := newReport(opts.Players)
	report.Seed = opts.Seed
	for _, p := range partials {
		report.merge(p)
	}
	report.Elapsed = opts.Clock.Since(started)

	opts.Logger.Info("Simulation complete", "games", report.Games, "ties", report.Ties, "elapsed", report.Elapsed)
	return report, nil
}

func playOne(ctx context.Context, opts Options, index int, report *Report) error {
	specs := make([]game.PlayerSpec, opts.Players)
	for i := range specs {
		specs[i] = game.PlayerSpec{Name: fmt.Sprintf("Bot %d", i), Agent: game.NewBotAgent()}
	}

	g, err := game.NewGame(specs,
		game.WithRand(randutil.New(randutil.Derive(opts.Seed, index))),
		game.WithMaxDiscards(opts.MaxDiscards),
		game.WithClock(opts.Clock),
		game.WithID(fmt.Sprintf("sim-%d", index)),
	)
	if err != nil {
		return err
	}

	result, err := g.Play(ctx)
	if err != nil {
		return err
	}
	report.add(result)
	return nil
}
