package game

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func botSpecs(n int) []PlayerSpec {
	specs := make([]PlayerSpec, n)
	for i := range specs {
		specs[i] = PlayerSpec{Name: fmt.Sprintf("Player %d", i), Agent: NewBotAgent()}
	}
	return specs
}

func newTestGame(t *testing.T, seed int64, specs []PlayerSpec, opts ...Option) *Game {
	t.Helper()

	clock := quartz.NewMock(t)
	clock.Set(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))

	base := []Option{
		WithRand(randutil.New(seed)),
		WithLogger(quietLogger()),
		WithClock(clock),
	}
	g, err := NewGame(specs, append(base, opts...)...)
	require.NoError(t, err)
	return g
}

// scripted returns an agent that replays the given discard choices.
func scripted(choices ...[]int) Agent {
	i := 0
	return AgentFunc(func(context.Context, PlayerView) ([]int, error) {
		if i >= len(choices) {
			return nil, nil
		}
		c := choices[i]
		i++
		return c, nil
	})
}

func playerWith(seat int, name, cards string) *Player {
	hand := poker.MustParseCards(cards)
	cat, err := poker.JudgeHand(hand)
	if err != nil {
		panic(err)
	}
	return &Player{Seat: seat, Name: name, Hand: hand, Category: cat, Judged: true}
}
