// Package config loads game settings from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Agent kinds accepted in player blocks.
const (
	AgentHuman = "human"
	AgentBot   = "bot"
)

const (
	defaultPlayers     = 4
	defaultMaxDiscards = 5
	minPlayers         = 2
	maxPlayers         = 10
)

// Config represents the complete game configuration
type Config struct {
	Game    *GameSettings  `hcl:"game,block"`
	Players []PlayerConfig `hcl:"player,block"`
}

// GameSettings contains table-level settings
type GameSettings struct {
	Seed        int64  `hcl:"seed,optional"`
	MaxDiscards *int   `hcl:"max_discards,optional"`
	LogLevel    string `hcl:"log_level,optional"`
	LogFile     string `hcl:"log_file,optional"`
}

// PlayerConfig defines one seat
type PlayerConfig struct {
	Name  string `hcl:"name,label"`
	Agent string `hcl:"agent,optional"`
}

// Default returns a table of one human and three bots.
func Default() *Config {
	return DefaultWithPlayers(defaultPlayers)
}

// DefaultWithPlayers returns a table with a human in seat 0 and bots in the
// remaining seats.
func DefaultWithPlayers(n int) *Config {
	discards := defaultMaxDiscards
	cfg := &Config{
		Game: &GameSettings{
			MaxDiscards: &discards,
			LogLevel:    "info",
		},
	}
	for i := range n {
		agent := AgentBot
		if i == 0 {
			agent = AgentHuman
		}
		cfg.Players = append(cfg.Players, PlayerConfig{
			Name:  fmt.Sprintf("Player %d", i),
			Agent: agent,
		})
	}
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields the
// default configuration.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.MaxDiscards == nil {
		n := defaultMaxDiscards
		c.Game.MaxDiscards = &n
	}
	if c.Game.LogLevel == "" {
		c.Game.LogLevel = "info"
	}
	if len(c.Players) == 0 {
		c.Players = DefaultWithPlayers(defaultPlayers).Players
	}
	for i := range c.Players {
		if c.Players[i].Agent == "" {
			c.Players[i].Agent = AgentBot
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game == nil {
		return fmt.Errorf("missing game block")
	}
	if len(c.Players) < minPlayers || len(c.Players) > maxPlayers {
		return fmt.Errorf("need between %d and %d players, got %d", minPlayers, maxPlayers, len(c.Players))
	}
	if c.Game.MaxDiscards != nil && (*c.Game.MaxDiscards < 0 || *c.Game.MaxDiscards > 5) {
		return fmt.Errorf("max_discards must be between 0 and 5, got %d", *c.Game.MaxDiscards)
	}

	switch c.Game.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.Game.LogLevel)
	}

	names := make(map[string]bool, len(c.Players))
	humans := 0
	for _, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("player name must not be empty")
		}
		if names[p.Name] {
			return fmt.Errorf("player %s: duplicate name", p.Name)
		}
		names[p.Name] = true

		switch p.Agent {
		case AgentHuman:
			humans++
		case AgentBot:
		default:
			return fmt.Errorf("player %s: invalid agent %s", p.Name, p.Agent)
		}
	}
	if humans > 1 {
		return fmt.Errorf("at most one human player is supported, got %d", humans)
	}
	return nil
}

// Discards returns the configured exchange limit.
func (c *Config) Discards() int {
	if c.Game == nil || c.Game.MaxDiscards == nil {
		return defaultMaxDiscards
	}
	return *c.Game.MaxDiscards
}

// AllBots switches every seat to a bot.
func (c *Config) AllBots() {
	for i := range c.Players {
		c.Players[i].Agent = AgentBot
	}
}
