package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	calendar := false

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Entry, tag and streak counts.",
		Example: `
diary stats
diary stats --calendar
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, _, err := open(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := stats.Stats{
				Calendar: calendar,
				JSON:     output.JSON,
				Service:  svc,
				Out:      output.Writer(),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&calendar, "calendar", "c", false, "Also print this month with the days written on.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
