// Package cards lists knowledge cards and toggles favorites.
package cards

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/printers"
)

type List struct {
	Category  string
	Favorites bool
	// Full prints every card body instead of the title table.
	Full   bool
	ShowID bool
	JSON   bool

	Service *app.Service
	Out     io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list cards, no persistence")
	}
	cards, err := n.Service.Cards(ctx, n.Category, n.Favorites)
	if err != nil {
		return err
	}
	pp := printers.New(n.Out, n.ShowID)
	switch {
	case n.JSON:
		return pp.JSON(cards)
	case n.Full:
		for i, c := range cards {
			pp.Card(c, i+1, len(cards))
		}
	default:
		pp.Cards(cards)
	}
	return nil
}

// Favorite toggles the favorite flag. Unknown ids report "not found" but are
// not an error.
type Favorite struct {
	ID   string
	JSON bool

	Service *app.Service
	Out     io.Writer
}

func (n *Favorite) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not favorite, no persistence")
	}
	fav, found, err := n.Service.ToggleFavorite(ctx, n.ID)
	if err != nil {
		return err
	}
	pp := printers.New(n.Out, false)
	if n.JSON {
		return pp.JSON(map[string]any{"id": n.ID, "found": found, "isFavorite": fav})
	}
	switch {
	case !found:
		_, _ = fmt.Fprintf(pp.Out, "card %s not found\n", n.ID)
	case fav:
		_, _ = fmt.Fprintf(pp.Out, "★ %s\n", n.ID)
	default:
		_, _ = fmt.Fprintf(pp.Out, "☆ %s\n", n.ID)
	}
	return nil
}
