package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Where the diary is stored and what it holds.",
		Example: `
diary info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, cfg, err := open(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := info.Info{
				Config:  cfg,
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
