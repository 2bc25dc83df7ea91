package simulate

import (
	"time"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

// Report aggregates simulation results.
type Report struct {
	Seed    int64
	Games   int
	Hands   int // Games x players
	Ties    int // Games where another player matched the winning category
	Elapsed time.Duration

	Dealt    map[poker.Category]int // Final hand categories, all players
	Winning  map[poker.Category]int // Winning hand categories
	SeatWins []int
	Swapped  int // Total cards exchanged
}

func newReport(players int) *Report {
	return &Report{
		Dealt:    make(map[poker.Category]int),
		Winning:  make(map[poker.Category]int),
		SeatWins: make([]int, players),
	}
}

func (r *Report) add(result *game.Result) {
	r.Games++
	r.Winning[result.Winner.Category]++
	r.SeatWins[result.Winner.Seat]++
	if result.IsTie() {
		r.Ties++
	}
	for _, s := range result.Standings {
		r.Hands++
		r.Dealt[s.Category]++
		r.Swapped += s.Swapped
	}
}

func (r *Report) merge(other *Report) {
	r.Games += other.Games
	r.Hands += other.Hands
	r.Ties += other.Ties
	r.Swapped += other.Swapped
	for c, n := range other.Dealt {
		r.Dealt[c] += n
	}
	for c, n := range other.Winning {
		r.Winning[c] += n
	}
	for i, n := range other.SeatWins {
		r.SeatWins[i] += n
	}
}

// Frequency returns the share of all final hands in category c.
func (r *Report) Frequency(c poker.Category) float64 {
	if r.Hands == 0 {
		return 0
	}
	return float64(r.Dealt[c]) / float64(r.Hands)
}

// WinShare returns the share of games won with category c.
func (r *Report) WinShare(c poker.Category) float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Winning[c]) / float64(r.Games)
}

// AverageSwapped returns the mean number of cards exchanged per hand.
func (r *Report) AverageSwapped() float64 {
	if r.Hands == 0 {
		return 0
	}
	return float64(r.Swapped) / float64(r.Hands)
}
