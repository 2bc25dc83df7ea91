package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/drawpoker/poker"
)

const (
	// MinPlayers and MaxPlayers bound a table; ten hands use 50 of the 52
	// cards.
	MinPlayers = 2
	MaxPlayers = 10

	// DefaultMaxDiscards lets a player exchange the whole hand.
	DefaultMaxDiscards = poker.HandSize
)

// Option configures a Game during creation.
type Option func(*gameConfig)

type gameConfig struct {
	rng         poker.Source
	logger      *log.Logger
	clock       quartz.Clock
	maxDiscards int
	id          string
}

func defaultConfig() gameConfig {
	return gameConfig{
		logger:      log.New(io.Discard),
		clock:       quartz.NewReal(),
		maxDiscards: DefaultMaxDiscards,
	}
}

// WithRand sets the random source used to shuffle the deck.
func WithRand(src poker.Source) Option {
	return func(c *gameConfig) {
		c.rng = src
	}
}

// WithLogger sets the logger. The default discards all output.
func WithLogger(logger *log.Logger) Option {
	return func(c *gameConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock sets the clock used for IDs and result timestamps.
func WithClock(clock quartz.Clock) Option {
	return func(c *gameConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithMaxDiscards limits how many cards one player may exchange (0..5).
func WithMaxDiscards(n int) Option {
	return func(c *gameConfig) {
		c.maxDiscards = n
	}
}

// WithID overrides the generated game ID.
func WithID(id string) Option {
	return func(c *gameConfig) {
		c.id = id
	}
}
