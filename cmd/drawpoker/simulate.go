package main

import (
	"fmt"
	"os"

	"github.com/lox/drawpoker/internal/display"
	"github.com/lox/drawpoker/internal/simulate"
)

// SimulateCmd plays many bot-only games in parallel
type SimulateCmd struct {
	Games       int    `short:"n" default:"10000" help:"Number of games to play"`
	Players     int    `short:"p" default:"4" help:"Players per game (2-10)"`
	Workers     int    `short:"w" default:"0" help:"Worker goroutines (0 uses GOMAXPROCS)"`
	Seed        *int64 `help:"Base seed; game i uses a seed derived from it (optional)"`
	MaxDiscards int    `name:"max-discards" default:"5" help:"Most cards a bot may exchange"`
	Out         string `short:"o" type:"path" help:"Also write the report as JSON to this file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	logger, closer, err := setupLogger(g, "info")
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	opts := simulate.Options{
		Games:       c.Games,
		Players:     c.Players,
		Workers:     c.Workers,
		MaxDiscards: c.MaxDiscards,
		Logger:      logger,
	}
	if c.Seed != nil {
		opts.Seed = *c.Seed
	}

	report, err := simulate.Run(ctx, opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, display.NewRenderer(nil).Report(report))

	if c.Out != "" {
		if err := simulate.WriteReport(c.Out, report); err != nil {
			return err
		}
		logger.Info("Report written", "path", c.Out)
	}
	return nil
}
