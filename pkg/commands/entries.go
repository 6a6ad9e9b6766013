package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/entries"
)

func addShow(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one entry in full.",
		Args:  cobra.ExactArgs(1),
		Example: `
diary show 9f1c7a52-8c1e-4bd8-9a6e-2f0d3b1f5e77
`,
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, _, err := open(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := entries.Show{
				ID:      args[0],
				ShowID:  io.ShowID,
				JSON:    output.JSON,
				Service: svc,
				Out:     output.Writer(),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an entry and print what is left.",
		Args:    cobra.ExactArgs(1),
		Example: `
diary delete 9f1c7a52-8c1e-4bd8-9a6e-2f0d3b1f5e77
`,
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, _, err := open(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := entries.Delete{
				ID:      args[0],
				ShowID:  io.ShowID,
				JSON:    output.JSON,
				Service: svc,
				Out:     output.Writer(),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addTags(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List every tag in use.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, _, err := open(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := entries.Tags{
				JSON:    output.JSON,
				Service: svc,
				Out:     output.Writer(),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addDraft(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	discard := false

	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Show or discard the autosaved draft.",
		Example: `
diary draft
diary draft --clear
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, _, err := open(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := entries.Draft{
				Clear:   discard,
				JSON:    output.JSON,
				Service: svc,
				Out:     output.Writer(),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&discard, "clear", false, "Discard the draft.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addClear(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	yes := false

	cmd := &cobra.Command{
		Use:   "clear",
		Short: base.Wrap80("Delete every entry and the draft. The profile and knowledge cards are kept."),
		Example: `
diary export && diary clear --yes
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, _, err := open(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := entries.Clear{
				Confirmed: yes,
				Service:   svc,
				Out:       output.Writer(),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deleting all entries.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
