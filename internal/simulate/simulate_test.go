package simulate

import (
	"context"
	"testing"

	"github.com/coder/quartz"
	"github.com/lox/drawpoker/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTalliesEveryHand(t *testing.T) {
	report, err := Run(context.Background(), Options{
		Games:       200,
		Players:     4,
		Workers:     3,
		Seed:        7,
		MaxDiscards: 3,
		Clock:       quartz.NewMock(t),
	})
	require.NoError(t, err)

	assert.Equal(t, 200, report.Games)
	assert.Equal(t, 800, report.Hands)
	assert.Equal(t, int64(7), report.Seed)

	dealt, won, seats := 0, 0, 0
	for _, c := range poker.Categories() {
		dealt += report.Dealt[c]
		won += report.Winning[c]
	}
	for _, n := range report.SeatWins {
		seats += n
	}
	assert.Equal(t, report.Hands, dealt)
	assert.Equal(t, report.Games, won)
	assert.Equal(t, report.Games, seats)
	assert.LessOrEqual(t, report.AverageSwapped(), 3.0)

	total := 0.0
	for _, c := range poker.Categories() {
		total += report.Frequency(c)
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestRunIsIndependentOfWorkers(t *testing.T) {
	run := func(workers int) *Report {
		r, err := Run(context.Background(), Options{
			Games:       120,
			Players:     5,
			Workers:     workers,
			Seed:        1234,
			MaxDiscards: 5,
			Clock:       quartz.NewMock(t),
		})
		require.NoError(t, err)
		return r
	}

	one, four := run(1), run(4)
	assert.Equal(t, one.Dealt, four.Dealt)
	assert.Equal(t, one.Winning, four.Winning)
	assert.Equal(t, one.SeatWins, four.SeatWins)
	assert.Equal(t, one.Ties, four.Ties)
}

func TestRunBotsImproveOnHighCard(t *testing.T) {
	r, err := Run(context.Background(), Options{Games: 500, Players: 2, Seed: 99, MaxDiscards: 5, Clock: quartz.NewMock(t)})
	require.NoError(t, err)

	// About half of undrawn five-card hands are high card; drawing to pairs
	// and high cards must bring that well down.
	assert.Less(t, r.Frequency(poker.HighCard), 0.45)
	assert.Greater(t, r.Frequency(poker.Pair), r.Frequency(poker.FullHouse))
}

func TestRunValidatesOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "no games", opts: Options{Games: 0, Players: 2}},
		{name: "one player", opts: Options{Games: 1, Players: 1}},
		{name: "too many players", opts: Options{Games: 1, Players: 11}},
		{name: "bad discards", opts: Options{Games: 1, Players: 2, MaxDiscards: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(context.Background(), tt.opts)
			assert.Error(t, err)
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Games: 10, Players: 2, Seed: 1, MaxDiscards: 5})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReportEmpty(t *testing.T) {
	r := newReport(3)
	assert.Zero(t, r.Frequency(poker.Pair))
	assert.Zero(t, r.WinShare(poker.Pair))
	assert.Zero(t, r.AverageSwapped())
}
