package commands

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/write"
)

func addWrite(topLevel *cobra.Command) {
	wo := &options.WriteOptions{}
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "write [content]",
		Short: "Write a diary entry.",
		Long: `Write a diary entry.

Content comes from the arguments, or from stdin when it is not a terminal.
Without either the saved draft is submitted. Use --draft to keep working on
the text later instead of committing it.`,
		Example: `
diary write "walked by the river" --mood calm --tag walk
echo "long day" | diary write --mood tired
diary write "half a thought" --draft
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, cfg, err := open(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := write.Write{
				Content:       strings.Join(args, " "),
				Mood:          wo.Mood,
				Tags:          wo.Tags,
				Images:        wo.Images,
				DraftOnly:     wo.Draft,
				AutosaveDelay: cfg.AutosaveDelay,
				ShowID:        io.ShowID,
				JSON:          output.JSON,
				Service:       svc,
				Out:           output.Writer(),
			}
			if len(args) == 0 && !isatty.IsTerminal(os.Stdin.Fd()) {
				s.Stdin = cmd.InOrStdin()
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddWriteArgs(cmd, wo)
	_ = cmd.RegisterFlagCompletionFunc("mood", options.MoodCompletions)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
