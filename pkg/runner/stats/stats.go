// Package stats prints the diary overview.
package stats

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/printers"
)

type Stats struct {
	JSON bool
	// Calendar adds the current month grid with the days written on.
	Calendar bool

	Service *app.Service
	Out     io.Writer
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not compute stats, no persistence")
	}
	sum, err := n.Service.Summary(ctx)
	if err != nil {
		return err
	}
	pp := printers.New(n.Out, false)
	if n.JSON {
		return pp.JSON(sum)
	}
	pp.Summary(sum)
	if n.Calendar {
		all, err := n.Service.Entries(ctx)
		if err != nil {
			return err
		}
		now := time.Now()
		if n.Service.Now != nil {
			now = n.Service.Now()
		}
		pp.NewLine()
		pp.Calendar(now, now, all...)
	}
	return nil
}
