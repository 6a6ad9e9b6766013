package store

import (
	"context"
	"sort"

	"tableflip.dev/diary/pkg/knowledge"
)

// Cards returns every knowledge card in seed order.
func (p *persistence) Cards(ctx context.Context) ([]knowledge.Card, error) {
	keys, err := p.keys(ctx, CollectionCards)
	if err != nil {
		return nil, err
	}
	cards := make([]knowledge.Card, 0, len(keys))
	for _, k := range keys {
		var c knowledge.Card
		ok, err := p.get(k, &c)
		if err != nil {
			return nil, err
		}
		if ok {
			cards = append(cards, c)
		}
	}
	sort.SliceStable(cards, func(i, j int) bool {
		if cards[i].Position == cards[j].Position {
			return cards[i].ID < cards[j].ID
		}
		return cards[i].Position < cards[j].Position
	})
	return cards, nil
}

func (p *persistence) filterCards(ctx context.Context, keep func(knowledge.Card) bool) ([]knowledge.Card, error) {
	all, err := p.Cards(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]knowledge.Card, 0, len(all))
	for _, c := range all {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (p *persistence) CardsByCategory(ctx context.Context, category string) ([]knowledge.Card, error) {
	return p.filterCards(ctx, func(c knowledge.Card) bool { return c.Category == category })
}

func (p *persistence) FavoriteCards(ctx context.Context) ([]knowledge.Card, error) {
	return p.filterCards(ctx, func(c knowledge.Card) bool { return c.IsFavorite })
}

// ToggleFavorite flips the favorite flag of card id. found is false, with no
// error, when the card does not exist.
func (p *persistence) ToggleFavorite(ctx context.Context, id string) (favorite, found bool, err error) {
	if !validID(id) {
		return false, false, nil
	}
	k := key(CollectionCards, id)
	var c knowledge.Card
	ok, err := p.get(k, &c)
	if err != nil || !ok {
		return false, false, err
	}
	c.IsFavorite = !c.IsFavorite
	if err := p.put(k, c); err != nil {
		return false, true, err
	}
	return c.IsFavorite, true, nil
}

// EnsureSeeded inserts the built-in cards when the collection is empty and
// reports how many were inserted.
func (p *persistence) EnsureSeeded(ctx context.Context) (int, error) {
	keys, err := p.keys(ctx, CollectionCards)
	if err != nil {
		return 0, err
	}
	if len(keys) > 0 {
		return 0, nil
	}
	seed := knowledge.Seed(p.newID)
	for _, c := range seed {
		if err := p.put(key(CollectionCards, c.ID), c); err != nil {
			return 0, err
		}
	}
	p.log.Info("store: seeded knowledge cards", "count", len(seed))
	return len(seed), nil
}
