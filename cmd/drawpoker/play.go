package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/drawpoker/internal/config"
	"github.com/lox/drawpoker/internal/display"
	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/randutil"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

// PlayCmd runs a single interactive game
type PlayCmd struct {
	Players     int    `short:"p" help:"Number of players (2-10); overrides the config file's seats"`
	Seed        *int64 `help:"Deterministic shuffle seed (optional)"`
	MaxDiscards *int   `name:"max-discards" help:"Most cards a player may exchange"`
	Config      string `short:"c" type:"existingfile" help:"HCL game configuration file"`
	Bots        bool   `help:"Make every seat a bot"`
	Plain       bool   `help:"Read discards as plain lines from stdin instead of the interactive prompt"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	globals := *g
	if globals.LogFile == "" {
		globals.LogFile = cfg.Game.LogFile
	}
	logger, closer, err := setupLogger(&globals, cfg.Game.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	return c.play(ctx, cfg, logger, os.Stdin, os.Stdout)
}

func (c *PlayCmd) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.Players > 0 {
		settings := cfg.Game
		cfg = config.DefaultWithPlayers(c.Players)
		cfg.Game = settings
	}
	if c.Seed != nil {
		cfg.Game.Seed = *c.Seed
	}
	if c.MaxDiscards != nil {
		n := *c.MaxDiscards
		cfg.Game.MaxDiscards = &n
	}
	if c.Bots {
		cfg.AllBots()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *PlayCmd) play(ctx context.Context, cfg *config.Config, logger *log.Logger, in io.Reader, out io.Writer) error {
	renderer := display.NewRenderer(nil)

	specs := make([]game.PlayerSpec, len(cfg.Players))
	for i, p := range cfg.Players {
		var agent game.Agent = game.NewBotAgent()
		if p.Agent == config.AgentHuman {
			if c.Plain {
				agent = game.NewLineAgent(in, out, renderer.View)
			} else {
				agent = display.NewPromptAgent(in, out, nil)
			}
		}
		specs[i] = game.PlayerSpec{Name: p.Name, Agent: agent}
	}

	seed := randutil.Resolve(cfg.Game.Seed)
	g, err := game.NewGame(specs,
		game.WithRand(randutil.New(seed)),
		game.WithLogger(logger),
		game.WithClock(quartz.NewReal()),
		game.WithMaxDiscards(cfg.Discards()),
	)
	if err != nil {
		return err
	}
	logger.Info("Starting game", "game", g.ID(), "seed", seed, "players", len(specs))

	fmt.Fprintln(out, titleStyle.Render(" ♠ ♥ Five-Card Draw ♦ ♣ "))
	fmt.Fprintln(out)

	result, err := g.Play(ctx)
	if errors.Is(err, game.ErrAborted) || errors.Is(err, context.Canceled) {
		logger.Info("Game abandoned", "game", g.ID())
		fmt.Fprintln(out, "Game abandoned.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, renderer.Result(result))
	fmt.Fprintf(out, "Game %s (seed %d)\n", result.GameID, seed)
	return nil
}
