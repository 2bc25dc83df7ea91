package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJudgeHand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards string
		want  Category
	}{
		{"royal flush", "Ac Tc Jc Qc Kc", RoyalFlush},
		{"royal flush unordered", "Kh Ah Qh Th Jh", RoyalFlush},
		{"straight flush", "2c 3c 4c 5c 6c", StraightFlush},
		{"ace low straight flush", "Ad 2d 3d 4d 5d", StraightFlush},
		{"nine high straight flush", "5s 6s 7s 8s 9s", StraightFlush},
		{"four of a kind", "As Ac Ad Ah 4c", FourOfAKind},
		{"full house", "4h 4d 4s 2c 2s", FullHouse},
		{"flush", "4h 5h 6h Ah 2h", Flush},
		{"straight", "4s 5h 3h Ah 2h", Straight},
		{"ace high straight", "As Th Jd Qc Kh", Straight},
		{"middle straight", "7s 8h 9d Tc Jh", Straight},
		{"three of a kind", "4s 4h 4c Ah 2h", ThreeOfAKind},
		{"two pair", "4s 4h 2c Ah 2h", TwoPair},
		{"pair", "4s 4h 6c Ah 2h", Pair},
		{"high card", "2s 5h 9c Jd Kh", HighCard},
		{"wrap around is not a straight", "Qs Kh Ad 2c 3h", HighCard},
		{"gap is not a straight", "2s 3h 4d 5c 7h", HighCard},
		{"paired run is not a straight", "2s 3h 4d 5c 5h", Pair},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := JudgeHand(MustParseCards(tc.cards))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "%s should be %s, got %s", tc.cards, tc.want, got)
		})
	}
}

func TestJudgeHandInvalidSize(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 4, 6, 7} {
		cards := NewDeck(nil).Cards()[:n]
		_, err := JudgeHand(cards)
		require.ErrorIs(t, err, ErrInvalidHandSize, "n=%d", n)
	}
}

func TestJudgeHandInvalidCard(t *testing.T) {
	t.Parallel()

	cards := MustParseCards("As Ks Qs Js")
	cards = append(cards, Card{})
	_, err := JudgeHand(cards)
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestJudgeHandDeterministic(t *testing.T) {
	t.Parallel()

	deck := NewDeck(seeded(5))
	deck.Shuffle()
	for range 10 {
		hand, err := deck.Draw(5)
		require.NoError(t, err)

		first, err := JudgeHand(hand)
		require.NoError(t, err)
		for range 3 {
			again, err := JudgeHand(hand)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}

func TestJudgeHandDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	hand := MustParseCards("Kh 2c Ah Qd 7s")
	snapshot := append([]Card(nil), hand...)
	_, err := JudgeHand(hand)
	require.NoError(t, err)
	assert.Equal(t, snapshot, hand)
}

func TestIsFlush(t *testing.T) {
	t.Parallel()

	assert.True(t, IsFlush(MustParseCards("Ac Tc Jc Qc Kc")))
	assert.False(t, IsFlush(MustParseCards("Ac Tc Jc Qc Kd")))
	assert.False(t, IsFlush(nil))
}

func TestIsStraight(t *testing.T) {
	t.Parallel()

	assert.True(t, IsStraight(MustParseCards("Ac Tc Jc Qc Kc")), "royal run")
	assert.True(t, IsStraight(MustParseCards("2c 3c 4c 5c 6c")), "normal run")
	assert.True(t, IsStraight(MustParseCards("5d 3c Ah 4s 2c")), "ace low run")
	assert.False(t, IsStraight(MustParseCards("Jc Qc Kc Ac 2c")))
	assert.False(t, IsStraight(nil))
}

func TestValueCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cards string
		want  []int
	}{
		{"As Ac Ad Ah 4c", []int{4, 1}},
		{"4h 4d 4s 2c 2s", []int{3, 2}},
		{"4s 4h 4c Ah 2h", []int{3, 1, 1}},
		{"4s 4h 2c Ah 2h", []int{2, 2, 1}},
		{"4s 4h 6c Ah 2h", []int{2, 1, 1, 1}},
		{"2s 5h 9c Jd Kh", []int{1, 1, 1, 1, 1}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ValueCounts(MustParseCards(tc.cards)), tc.cards)
	}
}

// Every five-card hand from a full deck is classified, and the category
// frequencies match the standard combinatorial counts, with the Ace-low
// straights counted as straights and royal flushes split out.
func TestJudgeHandExhaustive(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive enumeration")
	}
	t.Parallel()

	cards := NewDeck(nil).Cards()
	counts := make(map[Category]int)
	hand := make([]Card, 5)

	for a := 0; a < len(cards); a++ {
		for b := a + 1; b < len(cards); b++ {
			for c := b + 1; c < len(cards); c++ {
				for d := c + 1; d < len(cards); d++ {
					for e := d + 1; e < len(cards); e++ {
						hand[0], hand[1], hand[2], hand[3], hand[4] = cards[a], cards[b], cards[c], cards[d], cards[e]
						cat, err := JudgeHand(hand)
						if err != nil {
							t.Fatal(err)
						}
						counts[cat]++
					}
				}
			}
		}
	}

	assert.Equal(t, 4, counts[RoyalFlush])
	assert.Equal(t, 36, counts[StraightFlush])
	assert.Equal(t, 624, counts[FourOfAKind])
	assert.Equal(t, 3744, counts[FullHouse])
	assert.Equal(t, 5108, counts[Flush])
	assert.Equal(t, 10200, counts[Straight])
	assert.Equal(t, 54912, counts[ThreeOfAKind])
	assert.Equal(t, 123552, counts[TwoPair])
	assert.Equal(t, 1098240, counts[Pair])
	assert.Equal(t, 1302540, counts[HighCard])
}
