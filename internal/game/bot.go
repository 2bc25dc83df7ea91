package game

import (
	"context"
	"slices"

	"github.com/lox/drawpoker/poker"
)

// BotAgent is a simple automatic player. It stands pat on a straight or
// better, keeps every card that belongs to a pair or set, and otherwise keeps
// only its highest card.
type BotAgent struct{}

// NewBotAgent returns a BotAgent.
func NewBotAgent() *BotAgent {
	return &BotAgent{}
}

// ChooseDiscards implements Agent.
func (b *BotAgent) ChooseDiscards(ctx context.Context, view PlayerView) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cat, err := poker.JudgeHand(view.Hand)
	if err != nil {
		return nil, err
	}
	if cat.Beats(poker.ThreeOfAKind) {
		return nil, nil
	}

	var counts [poker.King + 1]int
	for _, c := range view.Hand {
		counts[c.Rank()]++
	}

	keep := make([]bool, len(view.Hand))
	paired := false
	for i, c := range view.Hand {
		if counts[c.Rank()] > 1 {
			keep[i] = true
			paired = true
		}
	}
	if !paired {
		keep[highestCard(view.Hand)] = true
	}

	var discards []int
	for i, k := range keep {
		if !k {
			discards = append(discards, i)
		}
	}

	// Over the limit: exchange the lowest cards first.
	if len(discards) > view.MaxDiscards {
		slices.SortStableFunc(discards, func(a, b int) int {
			return highValue(view.Hand[a]) - highValue(view.Hand[b])
		})
		discards = discards[:view.MaxDiscards]
	}
	slices.Sort(discards)
	return discards, nil
}

func highestCard(hand []poker.Card) int {
	best := 0
	for i, c := range hand {
		if highValue(c) > highValue(hand[best]) {
			best = i
		}
	}
	return best
}

// highValue orders cards with the Ace above the King.
func highValue(c poker.Card) int {
	if c.Rank() == poker.Ace {
		return 14
	}
	return int(c.Rank())
}
