package teaui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/diary/pkg/app"
)

// Run launches the knowledge card browser and blocks until the user quits.
func Run(ctx context.Context, svc *app.Service, in io.Reader, out io.Writer) error {
	b, err := svc.Browser(ctx)
	if err != nil {
		return err
	}
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	_, err = tea.NewProgram(New(ctx, svc, b), opts...).Run()
	return err
}
