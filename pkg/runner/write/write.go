// Package write commits a diary entry from the command line.
package write

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/composer"
	"tableflip.dev/diary/pkg/mood"
	"tableflip.dev/diary/pkg/printers"
)

// Write fills a composer from flags and submits it. Content given here
// replaces the draft text; without any, the saved draft is submitted.
type Write struct {
	Content string
	// Stdin, when set, is read for the content if Content is empty.
	Stdin  io.Reader
	Mood   string
	Tags   []string
	Images []string
	// DraftOnly saves the draft instead of submitting.
	DraftOnly     bool
	AutosaveDelay time.Duration
	ShowID        bool
	JSON          bool

	Service *app.Service
	Out     io.Writer
}

func (n *Write) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not write, no persistence")
	}

	c, err := n.Service.Composer(ctx, composer.WithDelay(n.AutosaveDelay))
	if err != nil {
		return err
	}
	defer c.Close()

	content := n.Content
	if strings.TrimSpace(content) == "" && n.Stdin != nil {
		b, err := io.ReadAll(n.Stdin)
		if err != nil {
			return fmt.Errorf("read content: %w", err)
		}
		content = string(b)
	}
	if strings.TrimSpace(content) != "" {
		c.SetContent(content)
	}
	if n.Mood != "" {
		m, err := mood.Parse(n.Mood)
		if err != nil {
			return err
		}
		c.SetMood(m)
	}
	for _, t := range n.Tags {
		c.AddTag(t)
	}

	pp := printers.New(n.Out, n.ShowID)
	if len(n.Images) > 0 {
		report := c.AttachFiles(n.Images)
		for _, r := range report.Rejected {
			_, _ = fmt.Fprintf(pp.Out, "skipped image %s: %v\n", r.Name, r.Err)
		}
	}

	if n.DraftOnly {
		if err := c.Flush(ctx); err != nil {
			return err
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

	id, err := c.Submit(ctx)
	if err != nil {
		if id != "" {
			_, _ = fmt.Fprintf(pp.Out, "saved entry %s, but the draft is still stored; run `diary draft --clear`\n", id)
		}
		return err
	}
	e, err := n.Service.Entry(ctx, id)
	if err != nil {
		return err
	}
	if n.JSON {
		return pp.JSON(e)
	}
	pp.Entries(e)
	return nil
}
