package poker

import (
	"fmt"
	"strings"
)

// Category is the class of a five-card hand. The zero value is not a valid
// category.
type Category uint8

const (
	HighCard Category = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// categoryOrder lists categories from strongest to weakest. It is the single
// source of truth for hand strength; constant values above carry no meaning.
var categoryOrder = [...]Category{
	RoyalFlush,
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	Pair,
	HighCard,
}

var categoryNames = map[Category]string{
	RoyalFlush:    "Royal Flush",
	StraightFlush: "Straight Flush",
	FourOfAKind:   "Four of a Kind",
	FullHouse:     "Full House",
	Flush:         "Flush",
	Straight:      "Straight",
	ThreeOfAKind:  "Three of a Kind",
	TwoPair:       "Two Pair",
	Pair:          "Pair",
	HighCard:      "High Card",
}

// ordinals maps each category to its 1-based position in categoryOrder.
var ordinals = func() map[Category]int {
	m := make(map[Category]int, len(categoryOrder))
	for i, c := range categoryOrder {
		m[c] = i + 1
	}
	return m
}()

// Categories returns every category, strongest first.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder[:])
	return out
}

// Ordinal returns 1 for RoyalFlush through 10 for HighCard. Lower is
// stronger. Invalid categories return 0.
func (c Category) Ordinal() int {
	return ordinals[c]
}

// Valid reports whether c is one of the ten categories.
func (c Category) Valid() bool {
	_, ok := ordinals[c]
	return ok
}

// Beats reports whether c is strictly stronger than other.
func (c Category) Beats(other Category) bool {
	return Compare(c, other) > 0
}

// Compare returns 1 if a is stronger than b, -1 if weaker and 0 if equal.
// Hands within the same category always compare equal; there is no kicker
// logic. Invalid categories are weaker than any valid one.
func Compare(a, b Category) int {
	oa, ob := a.Ordinal(), b.Ordinal()
	if oa == 0 {
		oa = len(categoryOrder) + 1
	}
	if ob == 0 {
		ob = len(categoryOrder) + 1
	}
	switch {
	case oa < ob:
		return 1
	case oa > ob:
		return -1
	default:
		return 0
	}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Constant returns the upper snake case name, e.g. "FULL_HOUSE".
func (c Category) Constant() string {
	return strings.ToUpper(strings.ReplaceAll(c.String(), " ", "_"))
}

// ParseCategory accepts either the display name or the constant form, case
// insensitive ("full house", "FULL_HOUSE").
func ParseCategory(s string) (Category, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", " "))
	for _, c := range categoryOrder {
		if strings.ToLower(c.String()) == norm {
			return c, nil
		}
	}
	return 0, fmt.Errorf("poker: unknown hand category %q", s)
}
