package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/timeline"
)

func addTimeline(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "timeline",
		Aliases: []string{"ls", "list"},
		Short:   "List entries grouped by month, newest first.",
		Example: `
diary timeline
diary timeline --search river
diary timeline --tag walk --mood calm
diary timeline --follow
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, _, err := open(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := timeline.Timeline{
				Search:  fo.Search,
				Tag:     fo.Tag,
				Mood:    fo.Mood,
				Follow:  fo.Follow,
				ShowID:  io.ShowID,
				JSON:    output.JSON,
				Service: svc,
				Out:     output.Writer(),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddFollowArg(cmd, fo)
	_ = cmd.RegisterFlagCompletionFunc("mood", options.MoodCompletions)
	_ = cmd.RegisterFlagCompletionFunc("tag", tagCompletions)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
