package knowledge

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownCategory is returned for a category outside Categories.
var ErrUnknownCategory = errors.New("knowledge: unknown category")

// Browser is a circular cursor over the cards of one category.
//
// The view is rebuilt, and the cursor reset to 0, only by SetCards and
// SetCategory. ToggleFavorite flips the flag in place so the card under the
// cursor stays put until the next rebuild.
type Browser struct {
	cards    []Card
	view     []Card
	category string
	index    int
}

// NewBrowser starts on CategoryDaily.
func NewBrowser(cards []Card) *Browser {
	b := &Browser{category: CategoryDaily}
	b.SetCards(cards)
	return b
}

// SetCards replaces the underlying card set.
func (b *Browser) SetCards(cards []Card) {
	b.cards = append([]Card(nil), cards...)
	b.rebuild()
}

// SetCategory switches category.
func (b *Browser) SetCategory(category string) error {
	if !ValidCategory(category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	b.category = category
	b.rebuild()
	return nil
}

func (b *Browser) rebuild() {
	b.index = 0
	if b.category == CategoryDaily {
		b.view = Daily(b.cards)
		return
	}
	b.view = b.view[:0:0]
	for _, c := range b.cards {
		if c.Category == b.category {
			b.view = append(b.view, c)
		}
	}
}

// Daily orders a copy of cards favorites first, keeping the relative order
// otherwise.
func Daily(cards []Card) []Card {
	out := append([]Card(nil), cards...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsFavorite && !out[j].IsFavorite
	})
	return out
}

func (b *Browser) Category() string { return b.category }
func (b *Browser) Index() int       { return b.index }
func (b *Browser) Len() int         { return len(b.view) }

// View returns a copy of the cards currently browsable.
func (b *Browser) View() []Card {
	return append([]Card(nil), b.view...)
}

// Current returns the card under the cursor.
func (b *Browser) Current() (Card, bool) {
	if len(b.view) == 0 {
		return Card{}, false
	}
	return b.view[b.index], true
}

// Next advances the cursor, wrapping from the last card to the first.
func (b *Browser) Next() int {
	if len(b.view) == 0 {
		return 0
	}
	b.index = (b.index + 1) % len(b.view)
	return b.index
}

// Prev moves the cursor back, wrapping from the first card to the last.
func (b *Browser) Prev() int {
	if len(b.view) == 0 {
		return 0
	}
	b.index = (b.index - 1 + len(b.view)) % len(b.view)
	return b.index
}

// ToggleFavorite flips the favorite flag for id and reports the new value.
// found is false when no card has that id.
func (b *Browser) ToggleFavorite(id string) (favorite, found bool) {
	for i := range b.cards {
		if b.cards[i].ID == id {
			b.cards[i].IsFavorite = !b.cards[i].IsFavorite
			favorite, found = b.cards[i].IsFavorite, true
		}
	}
	for i := range b.view {
		if b.view[i].ID == id {
			b.view[i].IsFavorite = favorite
		}
	}
	return favorite, found
}
