// Package portability runs export and import from the command line.
package portability

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/portability"
	"tableflip.dev/diary/pkg/printers"
)

// Export writes the dated export file into Dir, or the document to Out when
// Stdout is set.
type Export struct {
	Dir    string
	Stdout bool

	Service *app.Service
	Out     io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no persistence")
	}
	pp := printers.New(n.Out, false)
	if n.Stdout {
		_, err := n.Service.Export(ctx, pp.Out)
		return err
	}
	path, count, err := n.Service.ExportFile(ctx, n.Dir)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(pp.Out, "exported %d entries to %s\n", count, path)
	return nil
}

// Import merges an export document into the diary.
type Import struct {
	Path   string
	Mode   string
	DryRun bool
	JSON   bool

	Service *app.Service
	Out     io.Writer
}

func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not import, no persistence")
	}
	mode, err := portability.ParseMode(n.Mode)
	if err != nil {
		return err
	}
	report, err := n.Service.ImportFile(ctx, n.Path, portability.Options{Mode: mode, DryRun: n.DryRun})
	pp := printers.New(n.Out, false)
	if report != nil && !n.JSON {
		pp.ImportReport(report)
	}
	if err != nil {
		return err
	}
	if n.JSON {
		return pp.JSON(report)
	}
	return nil
}
