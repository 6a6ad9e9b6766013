package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/portability"
)

func addExport(topLevel *cobra.Command) {
	eo := &options.ExportOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every entry to a dated JSON backup.",
		Example: `
diary export
diary export --out ~/backups
diary export --stdout > diary.json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, _, err := open(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := portability.Export{
				Dir:     eo.Dir,
				Stdout:  eo.Stdout,
				Service: svc,
				Out:     output.Writer(),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddExportArgs(cmd, eo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	im := &options.ImportOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import entries from an export file.",
		Long: `Import entries from an export file.

The whole document is validated before anything is written. Entries whose id
already exists are skipped and listed, or abort the import with --mode fail.`,
		Args: cobra.ExactArgs(1),
		Example: `
diary import 个人成长日记_2026-10-18.json
diary import backup.json --dry-run
diary import backup.json --mode fail
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := cmd.Context()
			svc, _, err := open(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := portability.Import{
				Path:    args[0],
				Mode:    im.Mode,
				DryRun:  im.DryRun,
				JSON:    output.JSON,
				Service: svc,
				Out:     output.Writer(),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddImportArgs(cmd, im)
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"skip", "fail"}, cobra.ShellCompDirectiveNoFileComp
	})
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
