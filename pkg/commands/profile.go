package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/profile"
)

func addProfile(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the personal profile.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, _, err := open(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := profile.Show{
				JSON:    output.JSON,
				Service: svc,
				Out:     output.Writer(),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	addProfileEdit(cmd, "set", "Create or replace the profile.", true)
	addProfileEdit(cmd, "update", "Change some profile fields, leaving the rest.", false)

	topLevel.AddCommand(cmd)
}

func addProfileEdit(topLevel *cobra.Command, use, short string, create bool) {
	po := &options.ProfileOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Example: `
diary profile set --name 小林 --motto "慢慢来"
diary profile update --sleep "23:30"
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, _, err := open(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := profile.Edit{
				Patch:   po.Patch,
				Create:  create,
				Service: svc,
				Out:     output.Writer(),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddProfileArgs(cmd, po)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addSettings(topLevel *cobra.Command) {
	so := &options.SettingsOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences.",
		Example: `
diary settings
diary settings --theme dark --autosave=false
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, _, err := open(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			notifications, autosave := so.Changed(cmd)
			s := profile.Settings{
				Theme:         so.Theme,
				Notifications: notifications,
				AutoSave:      autosave,
				JSON:          output.JSON,
				Service:       svc,
				Out:           output.Writer(),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddSettingsArgs(cmd, so)
	_ = cmd.RegisterFlagCompletionFunc("theme", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"light", "dark"}, cobra.ShellCompDirectiveNoFileComp
	})
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
