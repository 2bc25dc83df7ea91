package game

import (
	"context"

	"github.com/lox/drawpoker/poker"
)

// PlayerView is the read-only state an agent sees when choosing discards.
// Hand is a copy; changing it has no effect on the game.
type PlayerView struct {
	Seat        int
	Name        string
	Hand        []poker.Card
	MaxDiscards int
}

// Agent represents any entity (human or bot) that decides which cards a
// player exchanges. Agents return zero-based indexes into the view's hand;
// an empty slice stands pat.
type Agent interface {
	ChooseDiscards(ctx context.Context, view PlayerView) ([]int, error)
}

// AgentFunc adapts a function to the Agent interface.
type AgentFunc func(ctx context.Context, view PlayerView) ([]int, error)

// ChooseDiscards calls f.
func (f AgentFunc) ChooseDiscards(ctx context.Context, view PlayerView) ([]int, error) {
	return f(ctx, view)
}

// StandPat is an agent that never exchanges cards.
var StandPat Agent = AgentFunc(func(context.Context, PlayerView) ([]int, error) {
	return nil, nil
})
