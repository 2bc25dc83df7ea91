package poker

import (
	"errors"
	"fmt"
	"slices"
)

// HandSize is the number of cards in a draw poker hand.
const HandSize = 5

// ErrInvalidHandSize is returned when a hand does not hold exactly HandSize
// cards.
var ErrInvalidHandSize = errors.New("poker: invalid hand size")

// JudgeHand classifies five cards. Checks run strongest first and the first
// match wins, so four of a kind and full house are tested before flush and
// straight, and the remaining paired categories after them.
func JudgeHand(cards []Card) (Category, error) {
	if len(cards) != HandSize {
		return 0, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidHandSize, len(cards), HandSize)
	}
	for _, c := range cards {
		if !c.Valid() {
			return 0, fmt.Errorf("%w: %v", ErrInvalidCard, c)
		}
	}

	flush := IsFlush(cards)
	straight := IsStraight(cards)
	counts := ValueCounts(cards)

	switch {
	case flush && isRoyalRun(cards):
		return RoyalFlush, nil
	case flush && straight:
		return StraightFlush, nil
	case slices.Equal(counts, []int{4, 1}):
		return FourOfAKind, nil
	case slices.Equal(counts, []int{3, 2}):
		return FullHouse, nil
	case flush:
		return Flush, nil
	case straight:
		return Straight, nil
	case slices.Equal(counts, []int{3, 1, 1}):
		return ThreeOfAKind, nil
	case slices.Equal(counts, []int{2, 2, 1}):
		return TwoPair, nil
	case slices.Equal(counts, []int{2, 1, 1, 1}):
		return Pair, nil
	default:
		return HighCard, nil
	}
}

// IsFlush reports whether every card shares the first card's suit. An empty
// hand is not a flush.
func IsFlush(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	for _, c := range cards[1:] {
		if c.suit != cards[0].suit {
			return false
		}
	}
	return true
}

// IsStraight reports whether the sorted ranks form a consecutive run, or are
// exactly A-10-J-Q-K. Ace is rank 1, so A-2-3-4-5 is consecutive. Runs that
// wrap past the King (Q-K-A-2-3) are not straights.
func IsStraight(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	if isRoyalRun(cards) {
		return true
	}
	ranks := sortedRanks(cards)
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[0]+Rank(i) {
			return false
		}
	}
	return true
}

// ValueCounts returns how often each rank occurs, sorted descending. A full
// house yields [3 2].
func ValueCounts(cards []Card) []int {
	var seen [King + 1]int
	for _, c := range cards {
		seen[c.rank]++
	}
	counts := make([]int, 0, len(cards))
	for _, n := range seen {
		if n > 0 {
			counts = append(counts, n)
		}
	}
	slices.SortFunc(counts, func(a, b int) int { return b - a })
	return counts
}

var royalRun = []Rank{Ace, Ten, Jack, Queen, King}

func isRoyalRun(cards []Card) bool {
	return slices.Equal(sortedRanks(cards), royalRun)
}

func sortedRanks(cards []Card) []Rank {
	ranks := make([]Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.rank
	}
	slices.Sort(ranks)
	return ranks
}
