// Package entries holds the runners that act on single entries, the tag
// list, the draft and the clear-all action.
package entries

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/printers"
)

var errNoService = errors.New("no persistence")

// Show prints one entry in full.
type Show struct {
	ID     string
	JSON   bool
	ShowID bool

	Service *app.Service
	Out     io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	e, err := n.Service.Entry(ctx, n.ID)
	if err != nil {
		return err
	}
	pp := printers.New(n.Out, n.ShowID)
	if n.JSON {
		return pp.JSON(e)
	}
	pp.Entry(e)
	return nil
}

// Delete removes an entry and prints what is left.
type Delete struct {
	ID     string
	JSON   bool
	ShowID bool

	Service *app.Service
	Out     io.Writer
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	left, err := n.Service.Delete(ctx, n.ID)
	if err != nil {
		return err
	}
	pp := printers.New(n.Out, n.ShowID)
	if n.JSON {
		return pp.JSON(map[string]any{"deleted": n.ID, "remaining": len(left)})
	}
	pp.TitleWithCount("Remaining", len(left))
	pp.Entries(left...)
	return nil
}

// Tags lists the distinct tags.
type Tags struct {
	JSON bool

	Service *app.Service
	Out     io.Writer
}

func (n *Tags) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	tags, err := n.Service.Tags(ctx)
	if err != nil {
		return err
	}
	pp := printers.New(n.Out, false)
	if n.JSON {
		return pp.JSON(tags)
	}
	pp.Tags(tags)
	return nil
}

// Draft shows or discards the saved draft.
type Draft struct {
	Clear bool
	JSON  bool

	Service *app.Service
	Out     io.Writer
}

func (n *Draft) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	pp := printers.New(n.Out, false)
	if n.Clear {
		if err := n.Service.ClearDraft(ctx); err != nil {
			return err
		}
		if n.JSON {
			return pp.JSON(map[string]bool{"cleared": true})
		}
		_, _ = fmt.Fprintln(pp.Out, "draft cleared")
		return nil
	}
	d, err := n.Service.Draft(ctx)
	if err != nil {
		return err
	}
	if n.JSON {
		return pp.JSON(d)
	}
	pp.Draft(d)
	return nil
}

// Clear deletes every entry and the draft. Confirmed must be set.
type Clear struct {
	Confirmed bool

	Service *app.Service
	Out     io.Writer
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	if !n.Confirmed {
		return errors.New("refusing to clear all entries without --yes")
	}
	if err := n.Service.ClearAll(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(printers.New(n.Out, false).Out, "all entries deleted")
	return nil
}
