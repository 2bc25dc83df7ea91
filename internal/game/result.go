package game

import (
	"time"
)

// Result summarises a finished game.
type Result struct {
	GameID     string
	StartedAt  time.Time
	FinishedAt time.Time

	Winner Standing
	// Tied lists other players whose category equals the winner's. The
	// winner was chosen by seat order among them.
	Tied []string
	// Standings are strongest first, seat order within a category.
	Standings []Standing
}

// Duration returns how long the draw took.
func (r *Result) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// IsTie reports whether another player matched the winning category.
func (r *Result) IsTie() bool {
	return len(r.Tied) > 0
}
