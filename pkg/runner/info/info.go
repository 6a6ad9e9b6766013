// Package info reports where the diary lives and what it holds.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := printers.New(n.Out, false).Out

	if override := os.Getenv("DIARY_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "DIARY_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "DIARY_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintln(out, "store path:", n.Config.BasePath())

	if n.Service == nil {
		return fmt.Errorf("failed to open the store")
	}
	all, err := n.Service.Entries(ctx)
	if err != nil {
		return err
	}
	cards, err := n.Service.Cards(ctx, "", false)
	if err != nil {
		return err
	}
	d, err := n.Service.Draft(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "entries: %d\n", len(all))
	_, _ = fmt.Fprintf(out, "knowledge cards: %d\n", len(cards))
	_, _ = fmt.Fprintf(out, "draft pending: %t\n", d != nil && !d.Empty())
	return nil
}
