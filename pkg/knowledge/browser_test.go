package knowledge

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() []Card {
	n := 0
	return Seed(func() string {
		n++
		return fmt.Sprintf("card-%d", n)
	})
}

func TestSeedShape(t *testing.T) {
	cards := seeded()
	require.Len(t, cards, 8)
	for i, c := range cards {
		assert.Equal(t, i, c.Position)
		assert.NotEmpty(t, c.ID)
		assert.True(t, ValidCategory(c.Category), c.Category)
		assert.NotEqual(t, CategoryDaily, c.Category)
		assert.False(t, c.IsFavorite)
	}
}

func TestCursorWraps(t *testing.T) {
	b := NewBrowser(seeded())
	require.Equal(t, 8, b.Len())

	assert.Equal(t, 7, b.Prev(), "prev at 0 wraps to last")
	assert.Equal(t, 0, b.Next(), "next at last wraps to 0")
	for i := 0; i < 3; i++ {
		b.Next()
	}
	assert.Equal(t, 3, b.Index())
}

func TestCategoryResetsCursor(t *testing.T) {
	b := NewBrowser(seeded())
	b.Next()
	b.Next()
	require.NoError(t, b.SetCategory(CategoryEfficiency))
	assert.Equal(t, 0, b.Index())
	assert.Equal(t, 3, b.Len())
	for _, c := range b.View() {
		assert.Equal(t, CategoryEfficiency, c.Category)
	}

	b.Next()
	b.SetCards(seeded())
	assert.Equal(t, 0, b.Index(), "new card set resets cursor")

	assert.Error(t, b.SetCategory("unknown"))
}

func TestDailyPutsFavoritesFirst(t *testing.T) {
	cards := seeded()
	cards[5].IsFavorite = true
	cards[2].IsFavorite = true
	b := NewBrowser(cards)
	view := b.View()
	assert.Equal(t, "card-3", view[0].ID)
	assert.Equal(t, "card-6", view[1].ID)
	assert.Equal(t, "card-1", view[2].ID, "non favorites keep seed order")
}

func TestToggleFavoriteKeepsPosition(t *testing.T) {
	b := NewBrowser(seeded())
	b.Next()
	b.Next()
	cur, ok := b.Current()
	require.True(t, ok)

	fav, found := b.ToggleFavorite(cur.ID)
	require.True(t, found)
	assert.True(t, fav)
	assert.Equal(t, 2, b.Index())

	after, _ := b.Current()
	assert.Equal(t, cur.ID, after.ID, "no reorder until the next rebuild")
	assert.True(t, after.IsFavorite)

	_, found = b.ToggleFavorite("missing")
	assert.False(t, found)
}

func TestEmptyView(t *testing.T) {
	b := NewBrowser(nil)
	_, ok := b.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, b.Next())
	assert.Equal(t, 0, b.Prev())
}
