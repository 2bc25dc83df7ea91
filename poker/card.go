package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned for cards outside the 52-card universe and for
// card text that does not parse.
var ErrInvalidCard = errors.New("poker: invalid card")

// Suit represents a card suit. Suits have no ordering beyond identity.
type Suit uint8

const (
	Spades Suit = iota + 1
	Clubs
	Diamonds
	Hearts
)

// Suits lists every suit in deck construction order.
var Suits = [...]Suit{Spades, Clubs, Diamonds, Hearts}

// String returns the single letter used in card notation.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	default:
		return "?"
	}
}

// Symbol returns the suit glyph (e.g. "♠").
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	default:
		return "?"
	}
}

// Name returns the upper-case suit name.
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "SPADES"
	case Clubs:
		return "CLUBS"
	case Diamonds:
		return "DIAMONDS"
	case Hearts:
		return "HEARTS"
	default:
		return "UNKNOWN"
	}
}

// IsRed returns true for Hearts and Diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Spades && s <= Hearts
}

// Rank is the face value of a card, 1 (Ace) through 13 (King).
type Rank uint8

const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// String returns the single character used in card notation.
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r >= Two && r <= Nine {
		return string(rune('0' + r))
	}
	return "?"
}

// Valid reports whether r is within 1..13.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Card is an immutable (suit, rank) pair. Cards compare with ==.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard returns the card for the given suit and rank.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.Valid() || !rank.Valid() {
		return Card{}, fmt.Errorf("%w: suit %d rank %d", ErrInvalidCard, suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// MustCard is like NewCard but panics on invalid input.
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// Suit returns the card's suit.
func (c Card) Suit() Suit { return c.suit }

// Rank returns the card's rank.
func (c Card) Rank() Rank { return c.rank }

// Valid reports whether the card belongs to the 52-card universe. The zero
// Card is not valid.
func (c Card) Valid() bool {
	return c.suit.Valid() && c.rank.Valid()
}

// String returns the card in rank-suit notation (e.g. "As", "Tc").
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// Pretty returns the card with a suit glyph (e.g. "A♠").
func (c Card) Pretty() string {
	return c.rank.String() + c.suit.Symbol()
}

// ParseCard parses a card such as "As", "td" or "10h".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rankPart, suitPart := s[:len(s)-1], s[len(s)-1:]
	rank, ok := parseRank(rankPart)
	if !ok {
		return Card{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidCard, s)
	}

	var suit Suit
	switch strings.ToLower(suitPart) {
	case "s":
		suit = Spades
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	default:
		return Card{}, fmt.Errorf("%w: bad suit in %q", ErrInvalidCard, s)
	}

	return Card{suit: suit, rank: rank}, nil
}

func parseRank(s string) (Rank, bool) {
	switch strings.ToUpper(s) {
	case "A", "1":
		return Ace, true
	case "T", "10":
		return Ten, true
	case "J":
		return Jack, true
	case "Q":
		return Queen, true
	case "K":
		return King, true
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return Rank(s[0] - '0'), true
	}
	return 0, false
}

// ParseCards parses cards separated by spaces and/or commas, e.g.
// "As Ks Qs" or "2c,3c,4c".
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests
// and literals.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards joins cards in rank-suit notation separated by spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
