// Package timeline lists diary entries grouped by month.
package timeline

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/mood"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/store"
	tl "tableflip.dev/diary/pkg/timeline"
)

type Timeline struct {
	Search string
	Tag    string
	Mood   string
	ShowID bool
	JSON   bool
	// Follow re-renders whenever the entries change on disk until ctx ends.
	Follow bool

	Service *app.Service
	Out     io.Writer
}

func (n *Timeline) filter() (tl.Filter, error) {
	f := tl.Filter{Keyword: n.Search, Tag: n.Tag}
	if n.Mood != "" {
		m, err := mood.Parse(n.Mood)
		if err != nil {
			return tl.Filter{}, err
		}
		f.Mood = m
	}
	return f, nil
}

func (n *Timeline) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no persistence")
	}
	f, err := n.filter()
	if err != nil {
		return err
	}
	pp := printers.New(n.Out, n.ShowID)

	render := func() error {
		view, err := n.Service.Timeline(ctx, f)
		if err != nil {
			return err
		}
		if n.JSON {
			return pp.JSON(view)
		}
		pp.Timeline(view)
		return nil
	}

	if err := render(); err != nil {
		return err
	}
	if !n.Follow {
		return nil
	}

	events, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type == store.EventCollectionChanged && ev.Collection != store.CollectionEntries {
				continue
			}
			if err := render(); err != nil {
				return err
			}
		}
	}
}
