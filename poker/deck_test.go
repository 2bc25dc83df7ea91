package poker

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestNewDeckCanonical(t *testing.T) {
	t.Parallel()

	deck := NewDeck(seeded(1))
	cards := deck.Cards()
	require.Len(t, cards, DeckSize)

	seen := make(map[Card]bool, DeckSize)
	for _, c := range cards {
		require.True(t, c.Valid())
		require.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}

	// Suit-major, rank-minor.
	assert.Equal(t, MustCard(Spades, Ace), cards[0])
	assert.Equal(t, MustCard(Spades, King), cards[12])
	assert.Equal(t, MustCard(Clubs, Ace), cards[13])
	assert.Equal(t, MustCard(Hearts, King), cards[51])

	assert.True(t, deck.Contains(MustCard(Clubs, Ten)))
}

func TestDeckDrawTakesFromEnd(t *testing.T) {
	t.Parallel()

	deck := NewDeck(seeded(1))
	drawn, err := deck.Draw(3)
	require.NoError(t, err)

	assert.Equal(t, []Card{
		MustCard(Hearts, King),
		MustCard(Hearts, Queen),
		MustCard(Hearts, Jack),
	}, drawn)
	assert.Equal(t, DeckSize-3, deck.Len())
	assert.False(t, deck.Contains(MustCard(Hearts, King)))
}

func TestDeckDrawFive(t *testing.T) {
	t.Parallel()

	deck := NewDeck(seeded(7))
	deck.Shuffle()
	hand, err := deck.Draw(5)
	require.NoError(t, err)
	assert.Len(t, hand, 5)
	assert.Equal(t, 47, deck.Len())
}

func TestDeckUnderflow(t *testing.T) {
	t.Parallel()

	deck := NewDeck(seeded(1))
	_, err := deck.Draw(50)
	require.NoError(t, err)

	before := deck.Cards()
	_, err = deck.Draw(3)
	require.ErrorIs(t, err, ErrUnderflow)
	assert.Equal(t, before, deck.Cards(), "failed draw must not change the deck")

	_, err = NewDeck(seeded(1)).Draw(DeckSize + 1)
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestDeckDrawEdgeCounts(t *testing.T) {
	t.Parallel()

	deck := NewDeck(seeded(1))

	none, err := deck.Draw(0)
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.Equal(t, DeckSize, deck.Len())

	_, err = deck.Draw(-1)
	assert.ErrorIs(t, err, ErrInvalidCount)

	all, err := deck.Draw(DeckSize)
	require.NoError(t, err)
	assert.Len(t, all, DeckSize)
	assert.Zero(t, deck.Len())
}

func TestDeckPutBackRestoresMultiset(t *testing.T) {
	t.Parallel()

	for n := 0; n <= DeckSize; n += 13 {
		deck := NewDeck(seeded(uint64(n)))
		deck.Shuffle()
		before := deck.Cards()

		drawn, err := deck.Draw(n)
		require.NoError(t, err)
		deck.PutBack(drawn...)

		assert.ElementsMatch(t, before, deck.Cards(), "n=%d", n)
	}
}

func TestDeckPutBackAppendsToEnd(t *testing.T) {
	t.Parallel()

	deck := NewDeck(seeded(3))
	drawn, err := deck.Draw(2)
	require.NoError(t, err)

	deck.PutBack(drawn...)
	next, err := deck.Draw(1)
	require.NoError(t, err)
	assert.Equal(t, drawn[1], next[0], "last card put back is the next one drawn")
}

func TestDeckPutBackDoesNotValidate(t *testing.T) {
	t.Parallel()

	deck := NewDeck(seeded(3))
	deck.PutBack(MustCard(Spades, Ace))
	assert.Equal(t, DeckSize+1, deck.Len())
}

func TestDeckShuffleIsPermutation(t *testing.T) {
	t.Parallel()

	deck := NewDeck(seeded(42))
	original := deck.Cards()
	deck.Shuffle()
	shuffled := deck.Cards()

	assert.ElementsMatch(t, original, shuffled)
	assert.NotEqual(t, original, shuffled)
}

func TestDeckShuffleDeterministic(t *testing.T) {
	t.Parallel()

	a := NewDeck(seeded(99))
	b := NewDeck(seeded(99))
	a.Shuffle()
	b.Shuffle()
	assert.Equal(t, a.Cards(), b.Cards())

	a.Shuffle()
	assert.NotEqual(t, a.Cards(), b.Cards(), "each shuffle consumes the source")
}

func TestDeckNilSource(t *testing.T) {
	t.Parallel()

	deck := NewDeck(nil)
	deck.Shuffle()
	assert.Equal(t, DeckSize, deck.Len())
}

type fixedSource struct{}

func (fixedSource) IntN(n int) int { return n - 1 }

func TestDeckShuffleUsesSource(t *testing.T) {
	t.Parallel()

	deck := NewDeck(fixedSource{})
	before := deck.Cards()
	deck.Shuffle()
	assert.Equal(t, before, deck.Cards(), "j == i leaves every card in place")
}
