package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryOrdinals(t *testing.T) {
	t.Parallel()

	want := []Category{
		RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
		Straight, ThreeOfAKind, TwoPair, Pair, HighCard,
	}
	require.Equal(t, want, Categories())
	for i, c := range want {
		assert.Equal(t, i+1, c.Ordinal(), c.String())
		assert.True(t, c.Valid())
	}

	assert.Zero(t, Category(0).Ordinal())
	assert.False(t, Category(0).Valid())
	assert.Equal(t, "Unknown", Category(0).String())
}

func TestCategoryCompare(t *testing.T) {
	t.Parallel()

	assert.True(t, RoyalFlush.Beats(StraightFlush))
	assert.True(t, FullHouse.Beats(Flush))
	assert.True(t, Pair.Beats(HighCard))
	assert.False(t, HighCard.Beats(Pair))
	assert.False(t, Flush.Beats(Flush))

	assert.Equal(t, 0, Compare(TwoPair, TwoPair))
	assert.Equal(t, 1, Compare(Straight, ThreeOfAKind))
	assert.Equal(t, -1, Compare(Straight, Flush))
	assert.Equal(t, 1, Compare(HighCard, Category(0)))
	assert.Equal(t, -1, Compare(Category(99), HighCard))
}

func TestCategoryOrderIsTotal(t *testing.T) {
	t.Parallel()

	all := Categories()
	for i, a := range all {
		for j, b := range all {
			switch {
			case i < j:
				assert.True(t, a.Beats(b), "%s should beat %s", a, b)
			case i > j:
				assert.True(t, b.Beats(a), "%s should beat %s", b, a)
			default:
				assert.Equal(t, 0, Compare(a, b))
			}
		}
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)

		got, err = ParseCategory(c.Constant())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	assert.Equal(t, "FOUR_OF_A_KIND", FourOfAKind.Constant())

	_, err := ParseCategory("five of a kind")
	assert.Error(t, err)
}
