package game

import (
	"github.com/lox/drawpoker/poker"
)

// Player represents a seat in a game
type Player struct {
	Seat     int
	Name     string
	Hand     []poker.Card
	Category poker.Category // HighCard until the hand is judged
	Swapped  int            // Cards exchanged in the draw
	Judged   bool

	agent Agent
}

// View returns the read-only state handed to the player's agent.
func (p *Player) View(maxDiscards int) PlayerView {
	hand := make([]poker.Card, len(p.Hand))
	copy(hand, p.Hand)
	return PlayerView{
		Seat:        p.Seat,
		Name:        p.Name,
		Hand:        hand,
		MaxDiscards: maxDiscards,
	}
}

// Standing is a player's final position in a game.
type Standing struct {
	Seat     int
	Name     string
	Hand     []poker.Card
	Category poker.Category
	Swapped  int
}

func (p *Player) standing() Standing {
	hand := make([]poker.Card, len(p.Hand))
	copy(hand, p.Hand)
	return Standing{
		Seat:     p.Seat,
		Name:     p.Name,
		Hand:     hand,
		Category: p.Category,
		Swapped:  p.Swapped,
	}
}
