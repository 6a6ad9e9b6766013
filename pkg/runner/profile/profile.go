// Package profile shows and edits the profile and settings records.
package profile

import (
	"context"
	"errors"
	"io"
	"strings"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/profile"
)

var errNoService = errors.New("no persistence")

type Show struct {
	JSON bool

	Service *app.Service
	Out     io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	p, err := n.Service.Profile(ctx)
	if err != nil {
		return err
	}
	pp := printers.New(n.Out, false)
	if n.JSON {
		return pp.JSON(p)
	}
	pp.Profile(p)
	return nil
}

// Edit writes Patch into the profile. With Create the profile is replaced,
// otherwise the patch merges into an existing profile and is a no-op when
// there is none.
type Edit struct {
	Patch  profile.Patch
	Create bool

	Service *app.Service
	Out     io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	if n.Create {
		if strings.TrimSpace(n.Patch.Name) == "" {
			return errors.New("a name is required")
		}
		var p profile.Profile
		p.Apply(n.Patch)
		if err := n.Service.SetProfile(ctx, p); err != nil {
			return err
		}
	} else if err := n.Service.UpdateProfile(ctx, n.Patch); err != nil {
		return err
	}
	return (&Show{Service: n.Service, Out: n.Out}).Do(ctx)
}

// Settings shows the settings, applying any non-nil field first.
type Settings struct {
	Theme         string
	Notifications *bool
	AutoSave      *bool
	JSON          bool

	Service *app.Service
	Out     io.Writer
}

func (n *Settings) changed() bool {
	return n.Theme != "" || n.Notifications != nil || n.AutoSave != nil
}

func (n *Settings) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	st, err := n.Service.Settings(ctx)
	if err != nil {
		return err
	}
	if n.changed() {
		if n.Theme != "" {
			if st.Theme, err = profile.ParseTheme(n.Theme); err != nil {
				return err
			}
		}
		if n.Notifications != nil {
			st.Notifications = *n.Notifications
		}
		if n.AutoSave != nil {
			st.AutoSave = *n.AutoSave
		}
		if err := n.Service.SetSettings(ctx, st); err != nil {
			return err
		}
	}
	pp := printers.New(n.Out, false)
	if n.JSON {
		return pp.JSON(st)
	}
	pp.Settings(st)
	return nil
}
