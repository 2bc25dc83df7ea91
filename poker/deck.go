package poker

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

const DeckSize = 52

var (
	// ErrUnderflow is returned when more cards are drawn than remain.
	ErrUnderflow = errors.New("poker: deck underflow")
	// ErrInvalidCount is returned for a negative draw count.
	ErrInvalidCount = errors.New("poker: invalid card count")
)

// Source is the random dependency used for shuffling. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Deck is the live collection of cards for one game. Cards are drawn from the
// end of the collection and returned cards are appended to the end.
//
// PutBack does not check that cards came from this deck or that they are not
// already present; callers are responsible for conserving cards.
type Deck struct {
	cards []Card
	rng   Source
}

// NewDeck returns a deck holding the 52 standard cards in suit-major,
// rank-minor order. A nil src uses the global math/rand/v2 generator.
func NewDeck(src Source) *Deck {
	if src == nil {
		src = globalSource{}
	}
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   src,
	}
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			d.cards = append(d.cards, Card{suit: suit, rank: rank})
		}
	}
	return d
}

// Shuffle reorders the live cards with Fisher-Yates.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes the last n cards and returns them in pop order: the card that
// was last in the deck is first in the result. Which cards come out depends
// only on the current order, so it is fixed by the most recent Shuffle.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: requested %d, %d remaining", ErrUnderflow, n, len(d.cards))
	}

	drawn := make([]Card, n)
	last := len(d.cards) - 1
	for i := range n {
		drawn[i] = d.cards[last-i]
	}
	d.cards = d.cards[:len(d.cards)-n]
	return drawn, nil
}

// PutBack appends cards to the end of the deck in the given order, making
// them the next cards drawn unless the deck is shuffled.
func (d *Deck) PutBack(cards ...Card) {
	d.cards = append(d.cards, cards...)
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the live cards. The next card drawn is the last
// element.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Contains reports whether c is in the deck.
func (d *Deck) Contains(c Card) bool {
	for _, dc := range d.cards {
		if dc == c {
			return true
		}
	}
	return false
}

func (d *Deck) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(FormatCards(d.cards))
	sb.WriteByte(']')
	return sb.String()
}
